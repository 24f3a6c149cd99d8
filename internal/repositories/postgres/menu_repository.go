package postgres

import (
	"context"
	"encoding/json"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/selfbiz/costplan/internal/models"
)

type MenuRepository struct {
	pool *pgxpool.Pool
}

func NewMenuRepository(pool *pgxpool.Pool) *MenuRepository {
	return &MenuRepository{pool: pool}
}

func (r *MenuRepository) BulkCreate(ctx context.Context, menus []*models.Menu) error {
	_, err := r.pool.CopyFrom(
		ctx,
		pgx.Identifier{"menus"},
		[]string{
			"id", "name", "category", "temperature", "size_label",
			"sell_price", "recipe", "prep_steps", "created_at",
		},
		pgx.CopyFromSlice(len(menus), func(i int) ([]interface{}, error) {
			recipe, err := json.Marshal(menus[i].Recipe)
			if err != nil {
				return nil, err
			}
			return []interface{}{
				menus[i].ID,
				menus[i].Name,
				menus[i].Category,
				menus[i].Temperature,
				menus[i].SizeLabel,
				menus[i].SellPrice,
				recipe,
				menus[i].PrepSteps,
				menus[i].CreatedAt,
			}, nil
		}),
	)
	return err
}

func (r *MenuRepository) Create(ctx context.Context, menu *models.Menu) error {
	recipe, err := json.Marshal(menu.Recipe)
	if err != nil {
		return err
	}

	query := `
        INSERT INTO menus (
            id, name, category, temperature, size_label,
            sell_price, recipe, prep_steps, created_at
        ) VALUES (
            $1, $2, $3, $4, $5, $6, $7, $8, $9
        )
    `

	_, err = r.pool.Exec(ctx, query,
		menu.ID,
		menu.Name,
		menu.Category,
		menu.Temperature,
		menu.SizeLabel,
		menu.SellPrice,
		recipe,
		menu.PrepSteps,
		menu.CreatedAt,
	)
	return err
}

func (r *MenuRepository) GetAll(ctx context.Context) ([]*models.Menu, error) {
	query := `
        SELECT
            id,
            name,
            category,
            temperature,
            size_label,
            sell_price,
            recipe,
            prep_steps,
            created_at
        FROM menus
    `
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var menus []*models.Menu
	for rows.Next() {
		menu := &models.Menu{}
		var recipe []byte
		err := rows.Scan(
			&menu.ID,
			&menu.Name,
			&menu.Category,
			&menu.Temperature,
			&menu.SizeLabel,
			&menu.SellPrice,
			&recipe,
			&menu.PrepSteps,
			&menu.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		if err := json.Unmarshal(recipe, &menu.Recipe); err != nil {
			return nil, err
		}
		menus = append(menus, menu)
	}
	return menus, rows.Err()
}

func (r *MenuRepository) Count(ctx context.Context) (int, error) {
	var count int
	err := r.pool.QueryRow(ctx, "SELECT COUNT(*) FROM menus").Scan(&count)
	return count, err
}

func (r *MenuRepository) DeleteAll(ctx context.Context) error {
	_, err := r.pool.Exec(ctx, "TRUNCATE TABLE menus CASCADE")
	return err
}
