package postgres

import (
	"context"
	"encoding/json"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/selfbiz/costplan/internal/models"
)

type OverheadRepository struct {
	pool *pgxpool.Pool
}

func NewOverheadRepository(pool *pgxpool.Pool) *OverheadRepository {
	return &OverheadRepository{pool: pool}
}

// detail holds the whole record as JSON so each category keeps its own shape
// without a column per field.
func (r *OverheadRepository) BulkCreate(ctx context.Context, overheads []*models.Overhead) error {
	_, err := r.pool.CopyFrom(
		ctx,
		pgx.Identifier{"overheads"},
		[]string{"id", "category", "amount", "detail"},
		pgx.CopyFromSlice(len(overheads), func(i int) ([]interface{}, error) {
			detail, err := json.Marshal(overheads[i])
			if err != nil {
				return nil, err
			}
			return []interface{}{
				overheads[i].ID,
				overheads[i].Category,
				overheads[i].Amount,
				detail,
			}, nil
		}),
	)
	return err
}

func (r *OverheadRepository) Create(ctx context.Context, overhead *models.Overhead) error {
	detail, err := json.Marshal(overhead)
	if err != nil {
		return err
	}

	query := `
        INSERT INTO overheads (id, category, amount, detail)
        VALUES ($1, $2, $3, $4)
    `

	_, err = r.pool.Exec(ctx, query,
		overhead.ID,
		overhead.Category,
		overhead.Amount,
		detail,
	)
	return err
}

func (r *OverheadRepository) GetAll(ctx context.Context) ([]*models.Overhead, error) {
	rows, err := r.pool.Query(ctx, "SELECT detail FROM overheads")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var overheads []*models.Overhead
	for rows.Next() {
		var detail []byte
		if err := rows.Scan(&detail); err != nil {
			return nil, err
		}
		overhead := &models.Overhead{}
		if err := json.Unmarshal(detail, overhead); err != nil {
			return nil, err
		}
		overheads = append(overheads, overhead)
	}
	return overheads, rows.Err()
}

func (r *OverheadRepository) Count(ctx context.Context) (int, error) {
	var count int
	err := r.pool.QueryRow(ctx, "SELECT COUNT(*) FROM overheads").Scan(&count)
	return count, err
}

func (r *OverheadRepository) DeleteAll(ctx context.Context) error {
	_, err := r.pool.Exec(ctx, "TRUNCATE TABLE overheads CASCADE")
	return err
}
