package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/selfbiz/costplan/internal/models"
	"github.com/selfbiz/costplan/internal/repositories"
)

var (
	_ repositories.IngredientRepository = (*IngredientRepository)(nil)
	_ repositories.MenuRepository       = (*MenuRepository)(nil)
	_ repositories.OverheadRepository   = (*OverheadRepository)(nil)
	_ repositories.SettingsRepository   = (*SettingsRepository)(nil)
	_ repositories.ScenarioRepository   = (*ScenarioRepository)(nil)
)

const schemaDDL = `
CREATE TABLE IF NOT EXISTS ingredients (
    id TEXT PRIMARY KEY,
    name TEXT NOT NULL,
    category TEXT NOT NULL,
    unit_type TEXT NOT NULL,
    pack_size DOUBLE PRECISION NOT NULL,
    pack_price DOUBLE PRECISION NOT NULL,
    created_at TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS menus (
    id TEXT PRIMARY KEY,
    name TEXT NOT NULL,
    category TEXT NOT NULL,
    temperature TEXT NOT NULL,
    size_label TEXT NOT NULL,
    sell_price DOUBLE PRECISION NOT NULL,
    recipe JSONB NOT NULL DEFAULT '[]',
    prep_steps TEXT[] NOT NULL DEFAULT '{}',
    created_at TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS overheads (
    id TEXT PRIMARY KEY,
    category TEXT NOT NULL,
    amount DOUBLE PRECISION NOT NULL,
    detail JSONB NOT NULL DEFAULT '{}'
);

CREATE TABLE IF NOT EXISTS settings (
    id INT PRIMARY KEY DEFAULT 1,
    payload JSONB NOT NULL
);

CREATE TABLE IF NOT EXISTS scenarios (
    name TEXT PRIMARY KEY,
    monthly_volume DOUBLE PRECISION NOT NULL,
    monthly_revenue DOUBLE PRECISION NOT NULL,
    waste_percent DOUBLE PRECISION NOT NULL
);

CREATE TABLE IF NOT EXISTS reports (
    id BIGSERIAL PRIMARY KEY,
    report_type TEXT NOT NULL,
    payload JSONB NOT NULL,
    created_at TIMESTAMPTZ NOT NULL DEFAULT now()
);
`

// NewPool connects to Postgres using the configured credentials.
func NewPool(ctx context.Context, cfg models.DatabaseConfig) (*pgxpool.Pool, error) {
	connStr := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		cfg.Host, cfg.Port, cfg.User, cfg.Password, cfg.DBName, cfg.SSLMode,
	)

	pool, err := pgxpool.New(ctx, connStr)
	if err != nil {
		return nil, fmt.Errorf("error connecting to database: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		return nil, fmt.Errorf("error pinging database: %w", err)
	}
	return pool, nil
}

// EnsureSchema creates every table the repositories rely on.
func EnsureSchema(ctx context.Context, pool *pgxpool.Pool) error {
	if _, err := pool.Exec(ctx, schemaDDL); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}
	return nil
}

// StoreSnapshot replaces the database contents with the given snapshot.
func StoreSnapshot(ctx context.Context, pool *pgxpool.Pool, snapshot *models.Snapshot) error {
	ingredients := NewIngredientRepository(pool)
	menus := NewMenuRepository(pool)
	overheads := NewOverheadRepository(pool)
	scenarios := NewScenarioRepository(pool)

	if err := ingredients.DeleteAll(ctx); err != nil {
		return fmt.Errorf("failed to clear ingredients: %w", err)
	}
	if err := menus.DeleteAll(ctx); err != nil {
		return fmt.Errorf("failed to clear menus: %w", err)
	}
	if err := overheads.DeleteAll(ctx); err != nil {
		return fmt.Errorf("failed to clear overheads: %w", err)
	}
	if err := scenarios.DeleteAll(ctx); err != nil {
		return fmt.Errorf("failed to clear scenarios: %w", err)
	}

	if err := ingredients.BulkCreate(ctx, snapshot.Ingredients); err != nil {
		return fmt.Errorf("failed to store ingredients: %w", err)
	}
	if err := menus.BulkCreate(ctx, snapshot.Menus); err != nil {
		return fmt.Errorf("failed to store menus: %w", err)
	}
	if err := overheads.BulkCreate(ctx, snapshot.Overheads); err != nil {
		return fmt.Errorf("failed to store overheads: %w", err)
	}
	if err := scenarios.BulkCreate(ctx, snapshot.Scenarios); err != nil {
		return fmt.Errorf("failed to store scenarios: %w", err)
	}
	if err := NewSettingsRepository(pool).Save(ctx, snapshot.Settings); err != nil {
		return fmt.Errorf("failed to store settings: %w", err)
	}
	return nil
}

// LoadSnapshot assembles a full engine snapshot from the database.
func LoadSnapshot(ctx context.Context, pool *pgxpool.Pool) (*models.Snapshot, error) {
	ingredients, err := NewIngredientRepository(pool).GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load ingredients: %w", err)
	}
	menus, err := NewMenuRepository(pool).GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load menus: %w", err)
	}
	overheads, err := NewOverheadRepository(pool).GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load overheads: %w", err)
	}
	settings, err := NewSettingsRepository(pool).Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load settings: %w", err)
	}
	scenarios, err := NewScenarioRepository(pool).GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load scenarios: %w", err)
	}

	return &models.Snapshot{
		Ingredients: ingredients,
		Menus:       menus,
		Overheads:   overheads,
		Settings:    settings,
		Scenarios:   scenarios,
	}, nil
}
