// README: Fee composition engine; orchestrates resolver, rates, weather and loyalty.
package shipping

import (
	"context"
	"fmt"
	"math"
	"time"

	"shipviet/internal/modules/loyalty"
	"shipviet/internal/modules/weather"
	"shipviet/internal/types"
)

const (
	defaultWeightGram = 500
	baseWeightGram    = 1000
	weightStepGram    = 500

	freeshipThreshold       = 500000
	freeshipPartialDiscount = 15000

	badWeatherMultiplier = 1.3
	nightSurcharge       = 15000
	peakSurcharge        = 10000
)

// Surcharge hours are evaluated in Vietnam wall-clock time regardless of the
// host timezone.
var vietnamTZ = time.FixedZone("ICT", 7*60*60)

// WeatherProvider returns current conditions for a destination. The contract
// is fail-safe: implementations return a usable summary, never an error.
type WeatherProvider interface {
	Current(ctx context.Context, lat, lng float64) weather.Summary
}

// LoyaltyLookup resolves a user's reward tier.
type LoyaltyLookup interface {
	TierForUser(ctx context.Context, userID types.ID) (loyalty.Tier, error)
}

// LoyaltyFailurePolicy selects what Quote does when the tier lookup fails.
type LoyaltyFailurePolicy int

const (
	// LoyaltyFailOpen degrades a failed lookup to tier none with a note,
	// matching the weather adapter's posture.
	LoyaltyFailOpen LoyaltyFailurePolicy = iota
	// LoyaltyFailPropagate returns the lookup error to the caller.
	LoyaltyFailPropagate
)

type Service struct {
	directory *Directory
	weather   WeatherProvider
	loyalty   LoyaltyLookup
	policy    LoyaltyFailurePolicy
	now       func() time.Time
}

func NewService(directory *Directory, weather WeatherProvider, loyalty LoyaltyLookup, policy LoyaltyFailurePolicy) *Service {
	return &Service{
		directory: directory,
		weather:   weather,
		loyalty:   loyalty,
		policy:    policy,
		now:       time.Now,
	}
}

// Quote computes a shipping fee for one destination. Ordinary bad input never
// errors: missing coordinates degrade to a zero-fee unknown quote, an island
// destination returns Success=false, and an out-of-band express request is
// downgraded to standard. The only returned error is a failed loyalty lookup
// under LoyaltyFailPropagate.
func (s *Service) Quote(ctx context.Context, req Request) (Quote, error) {
	if req.WeightGram <= 0 {
		req.WeightGram = defaultWeightGram
	}
	deliveryType := req.DeliveryType
	if deliveryType == "" {
		deliveryType = DeliveryStandard
	}

	q := Quote{
		Success:      true,
		DeliveryType: deliveryType,
		LoyaltyTier:  loyalty.TierNone,
	}

	wh, distKm, ok := s.directory.Nearest(req.Address.Lat, req.Address.Lng)
	if !ok {
		q.Region = RegionUnknown
		q.Notes = append(q.Notes, NoteNoWarehouse)
		return q, nil
	}
	q.NearestWarehouse = &wh
	q.DistanceKm = round2(distKm)
	q.Region = ClassifyRegion(distKm)

	r := rateTable[q.Region]
	fee := float64(r.Base)
	if req.WeightGram > baseWeightGram {
		steps := math.Ceil(float64(req.WeightGram-baseWeightGram) / weightStepGram)
		fee += steps * float64(r.ExtraPerStep)
	}

	switch {
	case req.HasFreeship && req.OrderValue >= freeshipThreshold:
		fee = 0
		q.Notes = append(q.Notes, NoteFreeship)
	case req.HasFreeship:
		fee = math.Max(fee-freeshipPartialDiscount, 0)
		q.Notes = append(q.Notes, NoteDiscountDelivery)
	case req.OrderValue >= freeshipThreshold:
		fee = 0
		q.Notes = append(q.Notes, NoteFreeship)
	}

	if name, matched := matchIsland(req.Address.Province, req.Address.Line); matched {
		return Quote{
			Success:      false,
			Region:       RegionIsland,
			DeliveryType: deliveryType,
			LoyaltyTier:  loyalty.TierNone,
			Notes:        []string{"unsupported island delivery: " + name},
		}, nil
	}

	q.Weather = s.weather.Current(ctx, *req.Address.Lat, *req.Address.Lng)

	q.IsExpressAllowed = q.Region == RegionInnerCity
	if deliveryType == DeliveryExpress && !q.IsExpressAllowed {
		deliveryType = DeliveryStandard
		q.DeliveryType = DeliveryStandard
		q.Notes = append(q.Notes, NoteExpressDowngraded)
	} else if deliveryType == DeliveryExpress {
		// Multiplier applies to the distance+weight fee; flat surcharges stack
		// on top.
		if q.Weather.IsBad {
			fee = math.Round(fee * badWeatherMultiplier)
		}
		hour := s.now().In(vietnamTZ).Hour()
		if hour >= 20 || hour < 6 {
			fee += nightSurcharge
		}
		if (hour >= 7 && hour < 9) || (hour >= 17 && hour < 19) {
			fee += peakSurcharge
		}
	}

	if req.Address.UserID != nil && s.loyalty != nil {
		tier, err := s.loyalty.TierForUser(ctx, *req.Address.UserID)
		if err != nil {
			if s.policy == LoyaltyFailPropagate {
				return Quote{}, fmt.Errorf("loyalty lookup for %s: %w", *req.Address.UserID, err)
			}
			tier = loyalty.TierNone
			q.Notes = append(q.Notes, NoteLoyaltyUnavailable)
		}
		q.LoyaltyTier = tier
		if tier != loyalty.TierNone {
			discount := loyalty.ShippingDiscount(tier, int64(math.Round(fee)), deliveryType == DeliveryExpress)
			q.LoyaltyDiscount = discount
			fee = math.Max(fee-float64(discount), 0)
			q.Notes = append(q.Notes, "LOYALTY_APPLIED:"+string(tier))
		}
	}

	q.Fee = int64(math.Round(fee))
	return q, nil
}
