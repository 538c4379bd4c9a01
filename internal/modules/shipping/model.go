// README: Quote request/result shapes for the fee engine.
package shipping

import (
	"shipviet/internal/modules/loyalty"
	"shipviet/internal/modules/weather"
	"shipviet/internal/types"
)

type DeliveryType string

const (
	DeliveryStandard DeliveryType = "standard"
	DeliveryExpress  DeliveryType = "express"
)

// Address is the destination subset the engine reads. Lat/Lng are pointers:
// a stored address may not be geocoded yet, and the engine must degrade
// rather than fail when they are absent.
type Address struct {
	Line     string
	Province string
	Lat      *float64
	Lng      *float64
	UserID   *types.ID
}

// Request carries one quote invocation. Zero WeightGram defaults to 500g and
// an empty DeliveryType defaults to standard.
type Request struct {
	Address      Address
	WeightGram   int
	OrderValue   int64
	HasFreeship  bool
	DeliveryType DeliveryType
}

// Quote is a computed value object; it is never persisted and carries no
// identity. Success is false only for the island rejection.
type Quote struct {
	Success          bool
	NearestWarehouse *Warehouse
	Region           Region
	DistanceKm       float64
	DeliveryType     DeliveryType
	IsExpressAllowed bool
	Fee              int64
	Notes            []string
	Weather          weather.Summary
	LoyaltyTier      loyalty.Tier
	LoyaltyDiscount  int64
}

// Standard note tags consumed by the storefront.
const (
	NoteFreeship           = "FREESHIP"
	NoteDiscountDelivery   = "DISCOUNT_DELIVERY"
	NoteNoWarehouse        = "no warehouse found"
	NoteExpressDowngraded  = "express unavailable outside inner city, downgraded to standard"
	NoteLoyaltyUnavailable = "loyalty tier unavailable, treated as none"
)
