package factories

import (
	"time"

	"github.com/lucsky/cuid"
	"github.com/selfbiz/costplan/internal/models"
)

type MenuFactory struct{}

func (f *MenuFactory) CreateMenu(ingredients []*models.Ingredient) *models.Menu {
	category := generateRandomMenuCategory()

	temperature := models.TemperatureNone
	if category == models.MenuCategoryDrink {
		temperatures := []string{models.TemperatureHot, models.TemperatureIce}
		temperature = temperatures[fake.IntBetween(0, 1)]
	}

	return &models.Menu{
		ID:          cuid.New(),
		Name:        generateRandomMenuName(category),
		Category:    category,
		Temperature: temperature,
		SizeLabel:   []string{"S", "M", "L"}[fake.IntBetween(0, 2)],
		SellPrice:   float64(fake.IntBetween(25, 120)) * 100,
		Recipe:      generateRandomRecipe(ingredients),
		PrepSteps:   generateRandomPrepSteps(),
		CreatedAt:   time.Now(),
	}
}

func generateRandomRecipe(ingredients []*models.Ingredient) []models.RecipeLine {
	if len(ingredients) == 0 {
		return nil
	}
	lineCount := fake.IntBetween(2, 5)
	lines := make([]models.RecipeLine, lineCount)
	for i := 0; i < lineCount; i++ {
		ingredient := ingredients[fake.IntBetween(0, len(ingredients)-1)]
		lines[i] = models.RecipeLine{
			IngredientID: ingredient.ID,
			Amount:       float64(fake.IntBetween(1, 40)),
			UnitType:     ingredient.UnitType,
		}
	}
	return lines
}

func generateRandomPrepSteps() []string {
	stepCount := fake.IntBetween(2, models.MaxPrepSteps)
	steps := make([]string, stepCount)
	for i := 0; i < stepCount; i++ {
		steps[i] = fake.Lorem().Sentence(4)
	}
	return steps
}

func generateRandomMenuCategory() string {
	return models.MenuCategories[fake.IntBetween(0, len(models.MenuCategories)-1)]
}

func generateRandomMenuName(category string) string {
	names := map[string][]string{
		models.MenuCategoryDrink:   {"Americano", "Cafe Latte", "Vanilla Latte", "Matcha Latte", "Lemonade"},
		models.MenuCategoryDessert: {"Cheesecake", "Tiramisu", "Brownie", "Macaron", "Pudding"},
		models.MenuCategoryFood:    {"Croque Monsieur", "Bagel Sandwich", "Pasta Salad", "Club Sandwich"},
		models.MenuCategoryBakery:  {"Croissant", "Scone", "Bagel", "Pound Cake", "Muffin"},
	}
	if items, ok := names[category]; ok {
		return items[fake.IntBetween(0, len(items)-1)]
	}
	return "House Special"
}
