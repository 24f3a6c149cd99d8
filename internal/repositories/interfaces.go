package repositories

import (
	"context"

	"github.com/selfbiz/costplan/internal/models"
)

type IngredientRepository interface {
	BulkCreate(ctx context.Context, ingredients []*models.Ingredient) error
	Create(ctx context.Context, ingredient *models.Ingredient) error
	GetAll(ctx context.Context) ([]*models.Ingredient, error)
	Count(ctx context.Context) (int, error)
	DeleteAll(ctx context.Context) error
}

type MenuRepository interface {
	BulkCreate(ctx context.Context, menus []*models.Menu) error
	Create(ctx context.Context, menu *models.Menu) error
	GetAll(ctx context.Context) ([]*models.Menu, error)
	Count(ctx context.Context) (int, error)
	DeleteAll(ctx context.Context) error
}

type OverheadRepository interface {
	BulkCreate(ctx context.Context, overheads []*models.Overhead) error
	Create(ctx context.Context, overhead *models.Overhead) error
	GetAll(ctx context.Context) ([]*models.Overhead, error)
	Count(ctx context.Context) (int, error)
	DeleteAll(ctx context.Context) error
}

type SettingsRepository interface {
	Save(ctx context.Context, settings models.Settings) error
	Get(ctx context.Context) (models.Settings, error)
}

type ScenarioRepository interface {
	BulkCreate(ctx context.Context, scenarios []models.SimulationScenario) error
	GetAll(ctx context.Context) ([]models.SimulationScenario, error)
	DeleteAll(ctx context.Context) error
}
