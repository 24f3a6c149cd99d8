package factories

import (
	"time"

	"github.com/jaswdr/faker"
	"github.com/lucsky/cuid"
	"github.com/selfbiz/costplan/internal/models"
)

var fake = faker.New()

type IngredientFactory struct{}

var ingredientNames = []string{
	"Espresso Beans", "Milk", "Oat Milk", "Vanilla Syrup", "Caramel Sauce",
	"Chocolate Powder", "Green Tea Powder", "Whipped Cream", "Flour", "Butter",
	"Sugar", "Eggs", "Cream Cheese", "Strawberry Puree", "Lemon", "Ice",
	"Paper Cup", "Cup Lid", "Straw", "Cup Sleeve",
}

func (f *IngredientFactory) CreateIngredient() *models.Ingredient {
	unitType := generateRandomUnitType()
	return &models.Ingredient{
		ID:        cuid.New(),
		Name:      ingredientNames[fake.IntBetween(0, len(ingredientNames)-1)],
		Category:  fake.Lorem().Word(),
		UnitType:  unitType,
		PackSize:  generatePackSize(unitType),
		PackPrice: float64(fake.IntBetween(1, 60)) * 500,
		CreatedAt: time.Now(),
	}
}

func generateRandomUnitType() string {
	types := []string{models.UnitTypeMass, models.UnitTypeVolume, models.UnitTypeCount}
	return types[fake.IntBetween(0, len(types)-1)]
}

func generatePackSize(unitType string) float64 {
	if unitType == models.UnitTypeCount {
		return float64(fake.IntBetween(10, 100))
	}
	return float64(fake.IntBetween(1, 10)) * 500
}
