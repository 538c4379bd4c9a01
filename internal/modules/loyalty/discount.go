// README: Pure shipping-discount rule per loyalty tier.
package loyalty

const silverStandardDiscount = 10000

// ShippingDiscount returns the đồng discount a tier earns on a shipping fee.
// Silver gets a flat cut on standard delivery only, gold waives standard
// delivery entirely, diamond waives any delivery type. Pure, no I/O; the
// caller clamps the resulting fee at zero.
func ShippingDiscount(tier Tier, fee int64, express bool) int64 {
	switch tier {
	case TierSilver:
		if express {
			return 0
		}
		return silverStandardDiscount
	case TierGold:
		if express {
			return 0
		}
		return fee
	case TierDiamond:
		return fee
	default:
		return 0
	}
}
