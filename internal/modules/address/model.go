// README: Stored delivery address record.
package address

import (
	"shipviet/internal/modules/shipping"
	"shipviet/internal/types"
)

type Address struct {
	ID       types.ID
	UserID   *types.ID
	Line     string
	Province string
	Lat      *float64
	Lng      *float64
}

// Destination projects the record into the fee engine's input shape.
func (a *Address) Destination() shipping.Address {
	return shipping.Address{
		Line:     a.Line,
		Province: a.Province,
		Lat:      a.Lat,
		Lng:      a.Lng,
		UserID:   a.UserID,
	}
}
