package engine

import (
	"math"

	"github.com/selfbiz/costplan/internal/models"
)

// MenuEconomics is the per-menu result: what a unit costs, what it earns and
// what it should sell for at the target margin.
type MenuEconomics struct {
	MenuID             string  `json:"menu_id"`
	MenuName           string  `json:"menu_name"`
	Category           string  `json:"category"`
	SellPrice          float64 `json:"sell_price"`
	IngredientCost     float64 `json:"ingredient_cost"`
	MissingIngredients int     `json:"missing_ingredients"`
	OverheadPerUnit    float64 `json:"overhead_per_unit"`
	Cost               float64 `json:"cost"`
	NetProfit          float64 `json:"net_profit"`
	MarginPercent      float64 `json:"margin_percent"`
	RecommendedPrice   float64 `json:"recommended_price"`
}

// MenuIngredientCost sums unit cost times amount over the recipe. Lines whose
// ingredient no longer resolves cost nothing and are counted instead; the
// count is how the UI flags stale recipes after an ingredient is deleted.
func (e *Engine) MenuIngredientCost(menu *models.Menu) (float64, int) {
	var cost float64
	missing := 0
	for _, line := range menu.Recipe {
		ingredient := e.resolveIngredient(line.IngredientID)
		if ingredient == nil {
			missing++
			continue
		}
		cost += ingredient.UnitCost() * line.Amount
	}
	return cost, missing
}

// AnalyzeMenu combines recipe cost and allocated overhead into the full
// per-menu economics.
func (e *Engine) AnalyzeMenu(menu *models.Menu) MenuEconomics {
	ingredientCost, missing := e.MenuIngredientCost(menu)
	overheadPerUnit := e.OverheadPerUnitByCategory(menu.Category)

	cost := ingredientCost
	if e.Settings.IncludeOverheadInCost {
		cost += overheadPerUnit
	}

	netProfit := menu.SellPrice - cost
	var margin float64
	if menu.SellPrice > 0 {
		margin = netProfit / menu.SellPrice * 100
	}

	return MenuEconomics{
		MenuID:             menu.ID,
		MenuName:           menu.Name,
		Category:           menu.Category,
		SellPrice:          menu.SellPrice,
		IngredientCost:     ingredientCost,
		MissingIngredients: missing,
		OverheadPerUnit:    overheadPerUnit,
		Cost:               cost,
		NetProfit:          netProfit,
		MarginPercent:      margin,
		RecommendedPrice:   e.RecommendedPrice(cost),
	}
}

// RecommendedPrice is the sell price that hits the target margin, rounded to
// the configured 10- or 100-won unit. A target of 100% or more has no finite
// answer, so the price caps at cost.
func (e *Engine) RecommendedPrice(cost float64) float64 {
	margin := e.Settings.TargetMarginPercent
	if margin >= 100 {
		return cost
	}

	unit := e.Settings.RoundingUnit
	if unit <= 0 {
		unit = 10
	}

	raw := cost / (1 - margin/100)
	return math.Round(raw/unit) * unit
}
