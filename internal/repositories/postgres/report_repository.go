package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// ReportRepository persists computed report rows. It satisfies the engine's
// OutputDestination so "postgres" can be picked as a report target.
type ReportRepository struct {
	pool *pgxpool.Pool
}

func NewReportRepository(pool *pgxpool.Pool) *ReportRepository {
	return &ReportRepository{pool: pool}
}

func (r *ReportRepository) WriteMessage(topic string, msg []byte) error {
	ctx := context.Background()
	_, err := r.pool.Exec(ctx,
		"INSERT INTO reports (report_type, payload) VALUES ($1, $2)",
		topic, msg,
	)
	if err != nil {
		return fmt.Errorf("failed to insert %s report: %w", topic, err)
	}
	return nil
}

func (r *ReportRepository) Close() error {
	return nil
}
