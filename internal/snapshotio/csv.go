package snapshotio

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/selfbiz/costplan/internal/engine"
	"github.com/selfbiz/costplan/internal/models"
)

// LoadSnapshotDir reads a snapshot from a directory of CSV files. Each file
// is optional; a missing one just leaves that part of the snapshot empty.
func LoadSnapshotDir(dir string) (*models.Snapshot, error) {
	snapshot := &models.Snapshot{Settings: models.DefaultSettings(), TakenAt: time.Now()}

	if err := readCSV(filepath.Join(dir, "ingredients.csv"), 7, func(fields []string) {
		snapshot.Ingredients = append(snapshot.Ingredients, &models.Ingredient{
			ID:        fields[0],
			Name:      fields[1],
			Category:  fields[2],
			UnitType:  fields[3],
			PackSize:  engine.SafeFloat(fields[4]),
			PackPrice: engine.SafeFloat(fields[5]),
			CreatedAt: parseDate(fields[6]),
		})
	}); err != nil {
		return nil, err
	}

	if err := readCSV(filepath.Join(dir, "menus.csv"), 9, func(fields []string) {
		snapshot.Menus = append(snapshot.Menus, &models.Menu{
			ID:          fields[0],
			Name:        fields[1],
			Category:    fields[2],
			Temperature: fields[3],
			SizeLabel:   fields[4],
			SellPrice:   engine.SafeFloat(fields[5]),
			Recipe:      parseRecipe(fields[6]),
			PrepSteps:   splitNonEmpty(fields[7], "|"),
			CreatedAt:   parseDate(fields[8]),
		})
	}); err != nil {
		return nil, err
	}

	if err := readCSV(filepath.Join(dir, "overheads.csv"), 3, func(fields []string) {
		snapshot.Overheads = append(snapshot.Overheads, DecodeOverheadDetail(fields[0], fields[1], fields[2]))
	}); err != nil {
		return nil, err
	}

	if err := readCSV(filepath.Join(dir, "settings.csv"), 6, func(fields []string) {
		snapshot.Settings = models.Settings{
			TargetMarginPercent:   engine.SafeFloat(fields[0]),
			RoundingUnit:          engine.SafeFloat(fields[1]),
			MonthlySalesVolume:    engine.SafeFloat(fields[2]),
			IncludeOverheadInCost: fields[3] == "true",
			SalesMixPercent:       parseMix(fields[4]),
			OverheadMixPercent:    parseMix(fields[5]),
		}
		fillSettingsDefaults(&snapshot.Settings)
	}); err != nil {
		return nil, err
	}

	if err := readCSV(filepath.Join(dir, "scenarios.csv"), 4, func(fields []string) {
		snapshot.Scenarios = append(snapshot.Scenarios, models.SimulationScenario{
			Name:           fields[0],
			MonthlyVolume:  engine.SafeFloat(fields[1]),
			MonthlyRevenue: engine.SafeFloat(fields[2]),
			WastePercent:   engine.SafeFloat(fields[3]),
		})
	}); err != nil {
		return nil, err
	}

	return snapshot, nil
}

// readCSV reads a header row and then feeds each record to handle. Short
// records are padded with empty fields so handlers can rely on the width.
func readCSV(path string, width int, handle func(fields []string)) error {
	file, err := os.Open(path)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return err
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1
	reader.Read()

	for {
		fields, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", filepath.Base(path), err)
		}
		for len(fields) < width {
			fields = append(fields, "")
		}
		handle(fields)
	}

	return nil
}

// parseRecipe decodes "ingredientId:amount:unit|..." recipe lines.
func parseRecipe(field string) []models.RecipeLine {
	var lines []models.RecipeLine
	for _, part := range splitNonEmpty(field, "|") {
		fields := strings.Split(part, ":")
		if len(fields) < 2 {
			continue
		}
		line := models.RecipeLine{
			IngredientID: fields[0],
			Amount:       engine.SafeFloat(fields[1]),
		}
		if len(fields) > 2 {
			line.UnitType = fields[2]
		}
		lines = append(lines, line)
	}
	return lines
}

// parseMix decodes "category:percent|category:percent" weight maps.
func parseMix(field string) map[string]float64 {
	mix := make(map[string]float64)
	for _, item := range parseItems(field, "|") {
		mix[item.Name] = item.Amount
	}
	return mix
}
