// README: Loyalty tier enum for the store's reward program.
package loyalty

// Tier is a user's reward-program rank.
type Tier string

const (
	TierNone    Tier = "none"
	TierSilver  Tier = "silver"
	TierGold    Tier = "gold"
	TierDiamond Tier = "diamond"
)

// ParseTier maps a stored tier string to a known Tier. Unrecognized values
// fold to TierNone so a bad row can never unlock a discount.
func ParseTier(s string) Tier {
	switch Tier(s) {
	case TierSilver, TierGold, TierDiamond:
		return Tier(s)
	default:
		return TierNone
	}
}
