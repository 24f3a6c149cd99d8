package postgres

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/selfbiz/costplan/internal/models"
)

type SettingsRepository struct {
	pool *pgxpool.Pool
}

func NewSettingsRepository(pool *pgxpool.Pool) *SettingsRepository {
	return &SettingsRepository{pool: pool}
}

func (r *SettingsRepository) Save(ctx context.Context, settings models.Settings) error {
	payload, err := json.Marshal(settings)
	if err != nil {
		return err
	}

	query := `
        INSERT INTO settings (id, payload) VALUES (1, $1)
        ON CONFLICT (id) DO UPDATE SET payload = EXCLUDED.payload
    `
	_, err = r.pool.Exec(ctx, query, payload)
	return err
}

// Get returns the stored settings, or the defaults when none were saved yet.
func (r *SettingsRepository) Get(ctx context.Context) (models.Settings, error) {
	var payload []byte
	err := r.pool.QueryRow(ctx, "SELECT payload FROM settings WHERE id = 1").Scan(&payload)
	if errors.Is(err, pgx.ErrNoRows) {
		return models.DefaultSettings(), nil
	}
	if err != nil {
		return models.Settings{}, err
	}

	settings := models.DefaultSettings()
	if err := json.Unmarshal(payload, &settings); err != nil {
		return models.Settings{}, err
	}
	return settings, nil
}
