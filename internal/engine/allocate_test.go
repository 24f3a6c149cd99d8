package engine

import (
	"testing"
	"time"

	"github.com/selfbiz/costplan/internal/models"
	"github.com/stretchr/testify/assert"
)

func allocEngine(total float64, volume float64, salesMix, overheadMix map[string]float64) *Engine {
	settings := models.DefaultSettings()
	settings.MonthlySalesVolume = volume
	settings.SalesMixPercent = salesMix
	settings.OverheadMixPercent = overheadMix

	snapshot := &models.Snapshot{
		Overheads: []*models.Overhead{{
			Category: models.OverheadLabor,
			Labor:    &models.ItemizedDetail{Items: []models.CostItem{{Name: "staff", Amount: total}}},
		}},
		Settings: settings,
	}
	return New(snapshot, time.Now())
}

func TestOverheadPerUnitUniform(t *testing.T) {
	e := allocEngine(3000000, 2000, nil, nil)
	assert.Equal(t, 1500.0, e.OverheadPerUnit())

	// zero volume degrades to zero, not a division error
	e = allocEngine(3000000, 0, nil, nil)
	assert.Equal(t, 0.0, e.OverheadPerUnit())
}

func TestOverheadPerUnitByCategory(t *testing.T) {
	e := allocEngine(3000000, 2000,
		map[string]float64{models.MenuCategoryDrink: 50, models.MenuCategoryDessert: 50},
		map[string]float64{models.MenuCategoryDrink: 80, models.MenuCategoryDessert: 20},
	)

	// drinks carry 80% of overhead over 50% of volume
	assert.InDelta(t, 3000000*0.8/(2000*0.5), e.OverheadPerUnitByCategory(models.MenuCategoryDrink), 1e-9)
	assert.InDelta(t, 3000000*0.2/(2000*0.5), e.OverheadPerUnitByCategory(models.MenuCategoryDessert), 1e-9)
}

func TestOverheadPerUnitByCategoryFallsBackToUniform(t *testing.T) {
	uniform := 3000000.0 / 2000

	// missing sales mix entry
	e := allocEngine(3000000, 2000,
		map[string]float64{models.MenuCategoryDrink: 100},
		map[string]float64{models.MenuCategoryDrink: 60, models.MenuCategoryFood: 40},
	)
	assert.Equal(t, uniform, e.OverheadPerUnitByCategory(models.MenuCategoryFood))

	// missing overhead mix entry
	e = allocEngine(3000000, 2000,
		map[string]float64{models.MenuCategoryDrink: 60, models.MenuCategoryFood: 40},
		map[string]float64{models.MenuCategoryDrink: 100},
	)
	assert.Equal(t, uniform, e.OverheadPerUnitByCategory(models.MenuCategoryFood))

	// negative weights fall back too
	e = allocEngine(3000000, 2000,
		map[string]float64{models.MenuCategoryFood: -10},
		map[string]float64{models.MenuCategoryFood: 40},
	)
	assert.Equal(t, uniform, e.OverheadPerUnitByCategory(models.MenuCategoryFood))
}

func TestTotalMonthlyOverheadSumsAllRecords(t *testing.T) {
	snapshot := &models.Snapshot{
		Overheads: []*models.Overhead{
			{
				Category: models.OverheadLabor,
				Labor:    &models.ItemizedDetail{Items: []models.CostItem{{Amount: 2000000}}},
			},
			{
				Category:  models.OverheadUtilities,
				Utilities: &models.UtilitiesDetail{Electric: 300000, Gas: 100000},
			},
			{
				Category: models.OverheadDepreciation,
				Depreciation: &models.DepreciationDetail{Items: []models.DepreciationItem{
					{TotalRepayment: 6000000, UsefulMonths: 60},
				}},
			},
		},
		Settings: models.DefaultSettings(),
	}
	e := New(snapshot, time.Now())

	assert.Equal(t, 2000000.0+400000+100000, e.TotalMonthlyOverhead())
}
