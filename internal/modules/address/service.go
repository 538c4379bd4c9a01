// README: Address service; geocodes stored addresses that lack coordinates.
package address

import (
	"context"
	"log"

	"shipviet/internal/types"
)

// Geocoder resolves free-text address lines to coordinates.
type Geocoder interface {
	Geocode(ctx context.Context, query string) (types.Point, error)
}

type Service struct {
	store    *Store
	geocoder Geocoder
}

func NewService(store *Store, geocoder Geocoder) *Service {
	return &Service{store: store, geocoder: geocoder}
}

// Get loads an address. If it has no coordinates yet and a geocoder is
// configured, the line is resolved once and the result persisted; a geocoding
// failure is logged and the un-geocoded record returned, letting the quote
// engine degrade on its own terms.
func (s *Service) Get(ctx context.Context, id types.ID) (*Address, error) {
	a, err := s.store.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if a.Lat != nil && a.Lng != nil {
		return a, nil
	}
	if s.geocoder == nil || a.Line == "" {
		return a, nil
	}

	query := a.Line
	if a.Province != "" {
		query += ", " + a.Province
	}
	p, err := s.geocoder.Geocode(ctx, query)
	if err != nil {
		log.Printf("geocode %s: %v", id, err)
		return a, nil
	}
	if err := s.store.SetCoordinates(ctx, id, p); err != nil {
		log.Printf("persist coordinates %s: %v", id, err)
	}
	a.Lat = &p.Lat
	a.Lng = &p.Lng
	return a, nil
}
