package engine

import (
	"encoding/json"
	"fmt"

	"github.com/schollz/progressbar/v3"
)

// WriteReports runs the full analysis and emits every report row to the
// destination: per-menu economics, the overhead ledger and allocation,
// scenario results, and the tax estimate when one is requested.
func (e *Engine) WriteReports(dest OutputDestination, tax *TaxInput) error {
	if err := e.writeMenuEconomics(dest); err != nil {
		return err
	}
	if err := e.writeOverheadReports(dest); err != nil {
		return err
	}
	if err := e.writeScenarioResults(dest); err != nil {
		return err
	}
	if tax != nil {
		if err := e.writeTaxEstimate(dest, *tax); err != nil {
			return err
		}
	}
	return nil
}

func (e *Engine) writeMenuEconomics(dest OutputDestination) error {
	bar := progressbar.Default(int64(len(e.Menus)), "analysing menus")
	for _, menu := range e.Menus {
		economics := e.AnalyzeMenu(menu)
		row := MenuEconomicsRow{
			BaseRow:            NewBaseRow(TopicMenuEconomics, e.Now),
			MenuID:             economics.MenuID,
			MenuName:           economics.MenuName,
			Category:           economics.Category,
			SellPrice:          economics.SellPrice,
			IngredientCost:     economics.IngredientCost,
			MissingIngredients: int32(economics.MissingIngredients),
			OverheadPerUnit:    economics.OverheadPerUnit,
			Cost:               economics.Cost,
			NetProfit:          economics.NetProfit,
			MarginPercent:      economics.MarginPercent,
			RecommendedPrice:   economics.RecommendedPrice,
		}
		if err := e.emit(dest, TopicMenuEconomics, row); err != nil {
			return err
		}
		_ = bar.Add(1)
	}
	return bar.Finish()
}

func (e *Engine) writeOverheadReports(dest OutputDestination) error {
	for _, ov := range e.Overheads {
		row := OverheadMonthlyRow{
			BaseRow:       NewBaseRow(TopicOverheadMonthly, e.Now),
			OverheadID:    ov.ID,
			Category:      ov.Category,
			MonthlyAmount: e.ResolveMonthlyAmount(ov),
		}
		if err := e.emit(dest, TopicOverheadMonthly, row); err != nil {
			return err
		}
	}

	for _, category := range menuCategoriesInUse(e) {
		row := OverheadAllocationRow{
			BaseRow:            NewBaseRow(TopicOverheadAllocation, e.Now),
			Category:           category,
			SalesMixPercent:    e.Settings.SalesMixPercent[category],
			OverheadMixPercent: e.Settings.OverheadMixPercent[category],
			PerUnitOverhead:    e.OverheadPerUnitByCategory(category),
		}
		if err := e.emit(dest, TopicOverheadAllocation, row); err != nil {
			return err
		}
	}
	return nil
}

func (e *Engine) writeScenarioResults(dest OutputDestination) error {
	for _, scenario := range e.Scenarios {
		result := e.RunScenario(scenario)
		variants := []struct {
			name    string
			metrics ScenarioMetrics
		}{
			{"as_configured", result.AsConfigured},
			{"overhead_inclusive", result.OverheadInclusive},
		}
		for _, v := range variants {
			row := ScenarioRow{
				BaseRow:         NewBaseRow(TopicScenarioResults, e.Now),
				Name:            result.Name,
				Variant:         v.name,
				AveragePrice:    result.AveragePrice,
				IngredientCost:  result.IngredientCost,
				OverheadPerUnit: result.OverheadPerUnit,
				Cost:            v.metrics.Cost,
				NetProfit:       v.metrics.NetProfit,
				MarginPercent:   v.metrics.MarginPercent,
				MonthlyProfit:   v.metrics.MonthlyProfit,
			}
			if err := e.emit(dest, TopicScenarioResults, row); err != nil {
				return err
			}
		}
	}
	return nil
}

func (e *Engine) writeTaxEstimate(dest OutputDestination, input TaxInput) error {
	estimate := EstimateTax(input)
	row := TaxEstimateRow{
		BaseRow:        NewBaseRow(TopicTaxEstimates, e.Now),
		Period:         estimate.Period,
		SalesSupply:    estimate.SalesSupply,
		SalesVAT:       estimate.SalesVAT,
		PurchaseSupply: estimate.PurchaseSupply,
		PurchaseVAT:    estimate.PurchaseVAT,
		VATPayable:     estimate.VATPayable,
		ProfitEstimate: estimate.ProfitEstimate,
		AssumedTax:     estimate.AssumedTax,
	}
	return e.emit(dest, TopicTaxEstimates, row)
}

func (e *Engine) emit(dest OutputDestination, topic string, row interface{}) error {
	msg, err := json.Marshal(row)
	if err != nil {
		return fmt.Errorf("failed to marshal %s row: %w", topic, err)
	}
	if err := dest.WriteMessage(topic, msg); err != nil {
		return fmt.Errorf("failed to write %s row: %w", topic, err)
	}
	return nil
}

// menuCategoriesInUse returns the categories present in the snapshot's menus,
// preserving first-seen order.
func menuCategoriesInUse(e *Engine) []string {
	seen := make(map[string]bool)
	var categories []string
	for _, menu := range e.Menus {
		if !seen[menu.Category] {
			seen[menu.Category] = true
			categories = append(categories, menu.Category)
		}
	}
	return categories
}
