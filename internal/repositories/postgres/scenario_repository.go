package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/selfbiz/costplan/internal/models"
)

type ScenarioRepository struct {
	pool *pgxpool.Pool
}

func NewScenarioRepository(pool *pgxpool.Pool) *ScenarioRepository {
	return &ScenarioRepository{pool: pool}
}

func (r *ScenarioRepository) BulkCreate(ctx context.Context, scenarios []models.SimulationScenario) error {
	_, err := r.pool.CopyFrom(
		ctx,
		pgx.Identifier{"scenarios"},
		[]string{"name", "monthly_volume", "monthly_revenue", "waste_percent"},
		pgx.CopyFromSlice(len(scenarios), func(i int) ([]interface{}, error) {
			return []interface{}{
				scenarios[i].Name,
				scenarios[i].MonthlyVolume,
				scenarios[i].MonthlyRevenue,
				scenarios[i].WastePercent,
			}, nil
		}),
	)
	return err
}

func (r *ScenarioRepository) GetAll(ctx context.Context) ([]models.SimulationScenario, error) {
	rows, err := r.pool.Query(ctx, `
        SELECT name, monthly_volume, monthly_revenue, waste_percent
        FROM scenarios
    `)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var scenarios []models.SimulationScenario
	for rows.Next() {
		var scenario models.SimulationScenario
		err := rows.Scan(
			&scenario.Name,
			&scenario.MonthlyVolume,
			&scenario.MonthlyRevenue,
			&scenario.WastePercent,
		)
		if err != nil {
			return nil, err
		}
		scenarios = append(scenarios, scenario)
	}
	return scenarios, rows.Err()
}

func (r *ScenarioRepository) DeleteAll(ctx context.Context) error {
	_, err := r.pool.Exec(ctx, "TRUNCATE TABLE scenarios CASCADE")
	return err
}
