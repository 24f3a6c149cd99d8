package snapshotio

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/selfbiz/costplan/internal/models"
)

// ExportSnapshotDir writes a snapshot as one CSV file per entity, in the
// formats LoadSnapshotDir reads back.
func ExportSnapshotDir(dir string, snapshot *models.Snapshot) error {
	if err := os.MkdirAll(dir, os.ModePerm); err != nil {
		return err
	}

	ingredientRows := [][]string{{"id", "name", "category", "unit_type", "pack_size", "pack_price", "created_at"}}
	for _, ingredient := range snapshot.Ingredients {
		ingredientRows = append(ingredientRows, []string{
			ingredient.ID,
			ingredient.Name,
			ingredient.Category,
			ingredient.UnitType,
			formatFloat(ingredient.PackSize),
			formatFloat(ingredient.PackPrice),
			encodeDate(ingredient.CreatedAt),
		})
	}
	if err := writeCSV(filepath.Join(dir, "ingredients.csv"), ingredientRows); err != nil {
		return err
	}

	menuRows := [][]string{{"id", "name", "category", "temperature", "size_label", "sell_price", "recipe", "prep_steps", "created_at"}}
	for _, menu := range snapshot.Menus {
		menuRows = append(menuRows, []string{
			menu.ID,
			menu.Name,
			menu.Category,
			menu.Temperature,
			menu.SizeLabel,
			formatFloat(menu.SellPrice),
			encodeRecipe(menu.Recipe),
			strings.Join(menu.PrepSteps, "|"),
			encodeDate(menu.CreatedAt),
		})
	}
	if err := writeCSV(filepath.Join(dir, "menus.csv"), menuRows); err != nil {
		return err
	}

	overheadRows := [][]string{{"id", "category", "detail"}}
	for _, overhead := range snapshot.Overheads {
		overheadRows = append(overheadRows, []string{
			overhead.ID,
			overhead.Category,
			EncodeOverheadDetail(overhead),
		})
	}
	if err := writeCSV(filepath.Join(dir, "overheads.csv"), overheadRows); err != nil {
		return err
	}

	settingsRows := [][]string{
		{"target_margin_percent", "rounding_unit", "monthly_sales_volume", "include_overhead_in_cost", "sales_mix", "overhead_mix"},
		{
			formatFloat(snapshot.Settings.TargetMarginPercent),
			formatFloat(snapshot.Settings.RoundingUnit),
			formatFloat(snapshot.Settings.MonthlySalesVolume),
			strconv.FormatBool(snapshot.Settings.IncludeOverheadInCost),
			encodeMix(snapshot.Settings.SalesMixPercent),
			encodeMix(snapshot.Settings.OverheadMixPercent),
		},
	}
	if err := writeCSV(filepath.Join(dir, "settings.csv"), settingsRows); err != nil {
		return err
	}

	scenarioRows := [][]string{{"name", "monthly_volume", "monthly_revenue", "waste_percent"}}
	for _, scenario := range snapshot.Scenarios {
		scenarioRows = append(scenarioRows, []string{
			scenario.Name,
			formatFloat(scenario.MonthlyVolume),
			formatFloat(scenario.MonthlyRevenue),
			formatFloat(scenario.WastePercent),
		})
	}
	return writeCSV(filepath.Join(dir, "scenarios.csv"), scenarioRows)
}

func writeCSV(path string, rows [][]string) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	if err := writer.WriteAll(rows); err != nil {
		return fmt.Errorf("failed to write %s: %w", filepath.Base(path), err)
	}
	return writer.Error()
}

func encodeRecipe(lines []models.RecipeLine) string {
	parts := make([]string, 0, len(lines))
	for _, line := range lines {
		parts = append(parts, strings.Join([]string{
			line.IngredientID,
			formatFloat(line.Amount),
			line.UnitType,
		}, ":"))
	}
	return strings.Join(parts, "|")
}

func encodeMix(mix map[string]float64) string {
	items := make([]models.CostItem, 0, len(mix))
	for _, category := range models.MenuCategories {
		if percent, ok := mix[category]; ok {
			items = append(items, models.CostItem{Name: category, Amount: percent})
		}
	}
	return encodeItems(items)
}
