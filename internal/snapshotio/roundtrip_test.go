package snapshotio

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/selfbiz/costplan/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleSnapshot() *models.Snapshot {
	return &models.Snapshot{
		Ingredients: []*models.Ingredient{
			{
				ID:        "bean",
				Name:      "Espresso Beans",
				Category:  "coffee",
				UnitType:  models.UnitTypeMass,
				PackSize:  1000,
				PackPrice: 24000,
				CreatedAt: day(2024, time.January, 5),
			},
			{
				ID:        "cup",
				Name:      "Paper Cup",
				Category:  "packaging",
				UnitType:  models.UnitTypeCount,
				PackSize:  50,
				PackPrice: 5000,
				CreatedAt: day(2024, time.January, 5),
			},
		},
		Menus: []*models.Menu{
			{
				ID:          "americano",
				Name:        "Americano",
				Category:    models.MenuCategoryDrink,
				Temperature: models.TemperatureHot,
				SizeLabel:   "M",
				SellPrice:   4500,
				Recipe: []models.RecipeLine{
					{IngredientID: "bean", Amount: 18, UnitType: models.UnitTypeMass},
					{IngredientID: "cup", Amount: 1, UnitType: models.UnitTypeCount},
				},
				PrepSteps: []string{"Grind 18g", "Pull double shot", "Add hot water"},
				CreatedAt: day(2024, time.February, 1),
			},
		},
		Overheads: []*models.Overhead{
			{
				ID:       "ov-facility",
				Category: models.OverheadFacility,
				Facility: &models.FacilityDetail{
					FacilityType: models.FacilityLease,
					Lease: &models.LeaseDetail{
						Rent:          1500000,
						ManagementFee: 200000,
						Deposit:       10000000,
						ContractStart: day(2024, time.January, 1),
						ContractEnd:   day(2025, time.December, 31),
					},
				},
			},
			{
				ID:       "ov-labor",
				Category: models.OverheadLabor,
				Labor: &models.ItemizedDetail{Items: []models.CostItem{
					{Name: "Barista A", Amount: 2200000},
				}},
			},
		},
		Settings: models.Settings{
			TargetMarginPercent:   30,
			RoundingUnit:          10,
			MonthlySalesVolume:    2000,
			IncludeOverheadInCost: true,
			SalesMixPercent:       map[string]float64{models.MenuCategoryDrink: 100},
			OverheadMixPercent:    map[string]float64{models.MenuCategoryDrink: 100},
		},
		Scenarios: []models.SimulationScenario{
			{Name: "steady", MonthlyVolume: 2000, MonthlyRevenue: 9000000, WastePercent: 5},
		},
	}
}

func TestCSVExportLoadRoundTrip(t *testing.T) {
	dir := t.TempDir()
	original := sampleSnapshot()

	require.NoError(t, ExportSnapshotDir(dir, original))

	loaded, err := LoadSnapshotDir(dir)
	require.NoError(t, err)

	assert.Equal(t, original.Ingredients, loaded.Ingredients)
	assert.Equal(t, original.Menus, loaded.Menus)
	assert.Equal(t, original.Overheads, loaded.Overheads)
	assert.Equal(t, original.Settings, loaded.Settings)
	assert.Equal(t, original.Scenarios, loaded.Scenarios)
}

func TestLoadSnapshotDirMissingFiles(t *testing.T) {
	// an empty directory yields an empty snapshot with default settings
	loaded, err := LoadSnapshotDir(t.TempDir())
	require.NoError(t, err)

	assert.Empty(t, loaded.Ingredients)
	assert.Empty(t, loaded.Menus)
	assert.Empty(t, loaded.Overheads)
	assert.Equal(t, models.DefaultSettings(), loaded.Settings)
}

func TestJSONSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "snapshots", "snapshot.json")
	original := sampleSnapshot()

	require.NoError(t, SaveSnapshotFile(path, original))

	loaded, err := LoadSnapshotFile(path)
	require.NoError(t, err)

	assert.Equal(t, original.Ingredients, loaded.Ingredients)
	assert.Equal(t, original.Menus, loaded.Menus)
	assert.Equal(t, original.Overheads, loaded.Overheads)
	assert.Equal(t, original.Settings, loaded.Settings)
	assert.Equal(t, original.Scenarios, loaded.Scenarios)
}

func TestLoadSnapshotFileFillsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "snapshot.json")
	require.NoError(t, SaveSnapshotFile(path, &models.Snapshot{
		Settings: models.Settings{TargetMarginPercent: 25},
	}))

	loaded, err := LoadSnapshotFile(path)
	require.NoError(t, err)

	assert.Equal(t, 25.0, loaded.Settings.TargetMarginPercent)
	assert.Equal(t, 10.0, loaded.Settings.RoundingUnit)
	assert.NotNil(t, loaded.Settings.SalesMixPercent)
	assert.NotNil(t, loaded.Settings.OverheadMixPercent)
}

func TestLoadSnapshotFileMissing(t *testing.T) {
	_, err := LoadSnapshotFile(filepath.Join(t.TempDir(), "nope.json"))
	assert.Error(t, err)
}
