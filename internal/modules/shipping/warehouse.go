// README: Warehouse directory and nearest-branch resolution.
package shipping

import "shipviet/internal/types"

// Warehouse is a dispatch branch. The directory is static reference data,
// loaded once at startup and never mutated.
type Warehouse struct {
	Code     types.ID
	Name     string
	Province string
	Position types.Point
}

// DefaultWarehouses are the store's dispatch branches.
var DefaultWarehouses = []Warehouse{
	{Code: "HCM", Name: "Kho Hồ Chí Minh", Province: "Hồ Chí Minh", Position: types.Point{Lat: 10.7769, Lng: 106.7009}},
	{Code: "HN", Name: "Kho Hà Nội", Province: "Hà Nội", Position: types.Point{Lat: 21.0278, Lng: 105.8342}},
	{Code: "DN", Name: "Kho Đà Nẵng", Province: "Đà Nẵng", Position: types.Point{Lat: 16.0544, Lng: 108.2022}},
	{Code: "CT", Name: "Kho Cần Thơ", Province: "Cần Thơ", Position: types.Point{Lat: 10.0452, Lng: 105.7469}},
	{Code: "HP", Name: "Kho Hải Phòng", Province: "Hải Phòng", Position: types.Point{Lat: 20.8449, Lng: 106.6881}},
}

// Directory resolves the nearest warehouse for a destination. Injected at
// construction so tests can use synthetic layouts.
type Directory struct {
	warehouses []Warehouse
}

func NewDirectory(warehouses []Warehouse) *Directory {
	return &Directory{warehouses: warehouses}
}

// Nearest scans all warehouses and returns the closest one with the
// full-precision distance in km. Ties go to the first entry in list order.
// Missing coordinates or an empty directory report ok=false rather than
// an error; the caller degrades the quote.
func (d *Directory) Nearest(lat, lng *float64) (Warehouse, float64, bool) {
	if lat == nil || lng == nil || len(d.warehouses) == 0 {
		return Warehouse{}, 0, false
	}
	best := d.warehouses[0]
	bestKm := haversineKm(*lat, *lng, best.Position.Lat, best.Position.Lng)
	for _, w := range d.warehouses[1:] {
		km := haversineKm(*lat, *lng, w.Position.Lat, w.Position.Lng)
		if km < bestKm {
			best = w
			bestKm = km
		}
	}
	return best, bestKm, true
}
