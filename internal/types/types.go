// README: Common value types shared across modules.
package types

// ID is an opaque identifier (user, address, warehouse).
type ID string

type Point struct {
	Lat float64
	Lng float64
}

// Money is an amount of Vietnamese đồng. VND has no minor unit, so the
// amount is the full integer price.
type Money struct {
	Amount   int64
	Currency string
}

func VND(amount int64) Money {
	return Money{Amount: amount, Currency: "VND"}
}
