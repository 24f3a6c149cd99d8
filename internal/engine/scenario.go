package engine

import "github.com/selfbiz/costplan/internal/models"

// ScenarioMetrics is one set of per-unit and monthly figures for a what-if run.
type ScenarioMetrics struct {
	Cost          float64 `json:"cost"`
	NetProfit     float64 `json:"net_profit"`
	MarginPercent float64 `json:"margin_percent"`
	MonthlyProfit float64 `json:"monthly_profit"`
}

// ScenarioResult carries the metrics both as configured and with overhead
// forced into cost, so the two can be compared whatever the settings toggle
// says.
type ScenarioResult struct {
	Name              string          `json:"name"`
	AveragePrice      float64         `json:"average_price"`
	IngredientCost    float64         `json:"ingredient_cost"`
	OverheadPerUnit   float64         `json:"overhead_per_unit"`
	AsConfigured      ScenarioMetrics `json:"as_configured"`
	OverheadInclusive ScenarioMetrics `json:"overhead_inclusive"`
}

// RunScenario replays the economics formulas at assumed volume, revenue and
// waste levels. Ingredient cost is a flat mean across all menus, not weighted
// by category mix; scenario planning is a coarse approximation on purpose.
func (e *Engine) RunScenario(scenario models.SimulationScenario) ScenarioResult {
	var averagePrice float64
	if scenario.MonthlyVolume > 0 && scenario.MonthlyRevenue > 0 {
		averagePrice = scenario.MonthlyRevenue / scenario.MonthlyVolume
	}

	ingredientCost := e.meanIngredientCost() * (1 + scenario.WastePercent/100)
	overheadPerUnit := safeDiv(e.TotalMonthlyOverhead(), scenario.MonthlyVolume)

	metrics := func(includeOverhead bool) ScenarioMetrics {
		cost := ingredientCost
		if includeOverhead {
			cost += overheadPerUnit
		}
		netProfit := averagePrice - cost
		var margin float64
		if averagePrice > 0 {
			margin = netProfit / averagePrice * 100
		}
		return ScenarioMetrics{
			Cost:          cost,
			NetProfit:     netProfit,
			MarginPercent: margin,
			MonthlyProfit: netProfit * scenario.MonthlyVolume,
		}
	}

	return ScenarioResult{
		Name:              scenario.Name,
		AveragePrice:      averagePrice,
		IngredientCost:    ingredientCost,
		OverheadPerUnit:   overheadPerUnit,
		AsConfigured:      metrics(e.Settings.IncludeOverheadInCost),
		OverheadInclusive: metrics(true),
	}
}

func (e *Engine) meanIngredientCost() float64 {
	if len(e.Menus) == 0 {
		return 0
	}
	var total float64
	for _, menu := range e.Menus {
		cost, _ := e.MenuIngredientCost(menu)
		total += cost
	}
	return total / float64(len(e.Menus))
}
