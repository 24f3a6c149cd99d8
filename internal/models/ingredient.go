package models

import "time"

type Ingredient struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Category  string    `json:"category"`
	UnitType  string    `json:"unit_type"`
	PackSize  float64   `json:"pack_size"`  // purchased pack size in the ingredient's unit
	PackPrice float64   `json:"pack_price"` // price paid for one pack
	CreatedAt time.Time `json:"created_at"`
}

// UnitCost returns the cost of one unit of the ingredient. A pack size of
// zero or less yields 0 rather than an error so callers never divide by zero.
func (i *Ingredient) UnitCost() float64 {
	if i.PackSize <= 0 {
		return 0
	}
	return i.PackPrice / i.PackSize
}
