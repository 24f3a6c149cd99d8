package models

import "time"

// MaxPrepSteps caps the ordered preparation step list per menu.
const MaxPrepSteps = 6

// RecipeLine references an ingredient by id only; the ingredient may have
// been deleted since, in which case the line costs nothing.
type RecipeLine struct {
	IngredientID string  `json:"ingredient_id"`
	Amount       float64 `json:"amount"`
	UnitType     string  `json:"unit_type"`
}

type Menu struct {
	ID          string       `json:"id"`
	Name        string       `json:"name"`
	Category    string       `json:"category"`
	Temperature string       `json:"temperature"` // meaningful for drinks only
	SizeLabel   string       `json:"size_label"`
	SellPrice   float64      `json:"sell_price"`
	Recipe      []RecipeLine `json:"recipe"`
	PrepSteps   []string     `json:"prep_steps"`
	CreatedAt   time.Time    `json:"created_at"`
}
