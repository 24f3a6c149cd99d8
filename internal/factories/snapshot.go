package factories

import (
	"time"

	"github.com/schollz/progressbar/v3"
	"github.com/selfbiz/costplan/internal/models"
)

// BuildSnapshot generates a synthetic but coherent snapshot: every recipe
// line references a generated ingredient and every overhead category is
// present, sized around the requested menu count.
func BuildSnapshot(menuCount int, now time.Time) *models.Snapshot {
	if menuCount <= 0 {
		menuCount = 10
	}

	ingredientFactory := &IngredientFactory{}
	menuFactory := &MenuFactory{}
	overheadFactory := &OverheadFactory{}

	bar := progressbar.Default(int64(menuCount), "seeding snapshot")

	ingredientCount := menuCount * 2
	ingredients := make([]*models.Ingredient, ingredientCount)
	for i := 0; i < ingredientCount; i++ {
		ingredients[i] = ingredientFactory.CreateIngredient()
	}

	menus := make([]*models.Menu, menuCount)
	for i := 0; i < menuCount; i++ {
		menus[i] = menuFactory.CreateMenu(ingredients)
		_ = bar.Add(1)
	}
	_ = bar.Finish()

	return &models.Snapshot{
		Ingredients: ingredients,
		Menus:       menus,
		Overheads:   overheadFactory.CreateOverheads(now),
		Settings:    generateSettings(menuCount),
		Scenarios:   generateScenarios(menuCount),
		TakenAt:     now,
	}
}

func generateSettings(menuCount int) models.Settings {
	settings := models.DefaultSettings()
	settings.MonthlySalesVolume = float64(menuCount * fake.IntBetween(80, 200))
	settings.SalesMixPercent = map[string]float64{
		models.MenuCategoryDrink:   55,
		models.MenuCategoryDessert: 20,
		models.MenuCategoryFood:    15,
		models.MenuCategoryBakery:  10,
	}
	settings.OverheadMixPercent = map[string]float64{
		models.MenuCategoryDrink:   50,
		models.MenuCategoryDessert: 20,
		models.MenuCategoryFood:    20,
		models.MenuCategoryBakery:  10,
	}
	return settings
}

func generateScenarios(menuCount int) []models.SimulationScenario {
	baseVolume := float64(menuCount * 100)
	return []models.SimulationScenario{
		{Name: "steady", MonthlyVolume: baseVolume, MonthlyRevenue: baseVolume * 4500, WastePercent: 5},
		{Name: "slow-season", MonthlyVolume: baseVolume * 0.7, MonthlyRevenue: baseVolume * 0.7 * 4300, WastePercent: 8},
		{Name: "expansion", MonthlyVolume: baseVolume * 1.5, MonthlyRevenue: baseVolume * 1.5 * 4600, WastePercent: 6},
	}
}
