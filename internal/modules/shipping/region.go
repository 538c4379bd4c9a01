// README: Delivery-region bands and the per-region rate table.
package shipping

// Region is a delivery-distance band. The four distance bands select the base
// price; RegionIsland and RegionUnknown only ever appear on quotes, never in
// the rate table.
type Region string

const (
	RegionInnerCity Region = "noi_thanh"
	RegionOuterCity Region = "ngoai_thanh"
	RegionNearZone  Region = "lien_vung_gan"
	RegionFarZone   Region = "lien_vung_xa"
	RegionIsland    Region = "dao"
	RegionUnknown   Region = "unknown"
)

// Band thresholds are inclusive upper bounds in km.
const (
	innerCityMaxKm = 20.0
	outerCityMaxKm = 40.0
	nearZoneMaxKm  = 300.0
)

// ClassifyRegion maps a nonnegative distance to exactly one band.
func ClassifyRegion(distanceKm float64) Region {
	switch {
	case distanceKm <= innerCityMaxKm:
		return RegionInnerCity
	case distanceKm <= outerCityMaxKm:
		return RegionOuterCity
	case distanceKm <= nearZoneMaxKm:
		return RegionNearZone
	default:
		return RegionFarZone
	}
}

type rate struct {
	Base         int64
	ExtraPerStep int64
}

// rateTable: base fee plus surcharge per extra 500g step over 1kg, in đồng.
var rateTable = map[Region]rate{
	RegionInnerCity: {Base: 18000, ExtraPerStep: 2000},
	RegionOuterCity: {Base: 25000, ExtraPerStep: 2500},
	RegionNearZone:  {Base: 30000, ExtraPerStep: 3000},
	RegionFarZone:   {Base: 45000, ExtraPerStep: 5000},
}
