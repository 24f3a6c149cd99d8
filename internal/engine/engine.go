package engine

import (
	"time"

	"github.com/selfbiz/costplan/internal/models"
)

// Engine computes menu economics, overhead allocation, scenarios and tax
// estimates over one immutable snapshot. It owns no mutable state and does no
// I/O, so a single instance is safe to call from anywhere.
type Engine struct {
	Ingredients map[string]*models.Ingredient
	Menus       []*models.Menu
	Overheads   []*models.Overhead
	Settings    models.Settings
	Scenarios   []models.SimulationScenario
	Now         time.Time // analysis date for contract and loan windows
}

func New(snapshot *models.Snapshot, now time.Time) *Engine {
	e := &Engine{
		Ingredients: make(map[string]*models.Ingredient, len(snapshot.Ingredients)),
		Menus:       snapshot.Menus,
		Overheads:   snapshot.Overheads,
		Settings:    snapshot.Settings,
		Scenarios:   snapshot.Scenarios,
		Now:         now,
	}
	for _, ingredient := range snapshot.Ingredients {
		e.Ingredients[ingredient.ID] = ingredient
	}
	return e
}

// resolveIngredient looks up a recipe line's ingredient. Deleted ingredients
// leave dangling ids behind, so a nil result is an expected condition.
func (e *Engine) resolveIngredient(id string) *models.Ingredient {
	return e.Ingredients[id]
}
