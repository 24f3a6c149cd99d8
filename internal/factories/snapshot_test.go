package factories

import (
	"testing"
	"time"

	"github.com/selfbiz/costplan/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildSnapshotCoherence(t *testing.T) {
	now := time.Date(2026, time.February, 1, 0, 0, 0, 0, time.UTC)
	snapshot := BuildSnapshot(15, now)

	require.Len(t, snapshot.Menus, 15)
	require.Len(t, snapshot.Ingredients, 30)
	assert.Equal(t, now, snapshot.TakenAt)

	// every recipe line must reference a generated ingredient
	known := make(map[string]bool, len(snapshot.Ingredients))
	for _, ingredient := range snapshot.Ingredients {
		require.NotEmpty(t, ingredient.ID)
		assert.Greater(t, ingredient.PackSize, 0.0)
		assert.Greater(t, ingredient.PackPrice, 0.0)
		known[ingredient.ID] = true
	}
	for _, menu := range snapshot.Menus {
		require.NotEmpty(t, menu.Recipe)
		assert.LessOrEqual(t, len(menu.PrepSteps), models.MaxPrepSteps)
		for _, line := range menu.Recipe {
			assert.True(t, known[line.IngredientID], "recipe references unknown ingredient")
		}
	}

	// one overhead record per category
	seen := make(map[string]int)
	for _, ov := range snapshot.Overheads {
		seen[ov.Category]++
	}
	for _, category := range models.OverheadCategories {
		assert.Equal(t, 1, seen[category], category)
	}

	assert.Greater(t, snapshot.Settings.MonthlySalesVolume, 0.0)
	assert.NotEmpty(t, snapshot.Scenarios)
}

func TestBuildSnapshotDefaultsMenuCount(t *testing.T) {
	snapshot := BuildSnapshot(0, time.Now())
	assert.Len(t, snapshot.Menus, 10)
}

func TestCreateMenuTemperature(t *testing.T) {
	factory := &MenuFactory{}
	ingredients := []*models.Ingredient{(&IngredientFactory{}).CreateIngredient()}

	for i := 0; i < 50; i++ {
		menu := factory.CreateMenu(ingredients)
		if menu.Category == models.MenuCategoryDrink {
			assert.Contains(t, []string{models.TemperatureHot, models.TemperatureIce}, menu.Temperature)
		} else {
			assert.Equal(t, models.TemperatureNone, menu.Temperature)
		}
	}
}

func TestCreateOverheadsDetailMatchesCategory(t *testing.T) {
	overheads := (&OverheadFactory{}).CreateOverheads(time.Now())

	for _, ov := range overheads {
		switch ov.Category {
		case models.OverheadFacility:
			require.NotNil(t, ov.Facility)
			if ov.Facility.FacilityType == models.FacilityLease {
				assert.NotNil(t, ov.Facility.Lease)
			} else {
				assert.NotNil(t, ov.Facility.Owned)
			}
		case models.OverheadUtilities:
			assert.NotNil(t, ov.Utilities)
		case models.OverheadDepreciation:
			assert.NotNil(t, ov.Depreciation)
		default:
			assert.NotNil(t, ov.Itemized(), ov.Category)
		}
	}
}
