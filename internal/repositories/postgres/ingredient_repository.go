package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/selfbiz/costplan/internal/models"
)

type IngredientRepository struct {
	pool *pgxpool.Pool
}

func NewIngredientRepository(pool *pgxpool.Pool) *IngredientRepository {
	return &IngredientRepository{pool: pool}
}

func (r *IngredientRepository) BulkCreate(ctx context.Context, ingredients []*models.Ingredient) error {
	_, err := r.pool.CopyFrom(
		ctx,
		pgx.Identifier{"ingredients"},
		[]string{"id", "name", "category", "unit_type", "pack_size", "pack_price", "created_at"},
		pgx.CopyFromSlice(len(ingredients), func(i int) ([]interface{}, error) {
			return []interface{}{
				ingredients[i].ID,
				ingredients[i].Name,
				ingredients[i].Category,
				ingredients[i].UnitType,
				ingredients[i].PackSize,
				ingredients[i].PackPrice,
				ingredients[i].CreatedAt,
			}, nil
		}),
	)
	return err
}

func (r *IngredientRepository) Create(ctx context.Context, ingredient *models.Ingredient) error {
	query := `
        INSERT INTO ingredients (
            id, name, category, unit_type, pack_size, pack_price, created_at
        ) VALUES (
            $1, $2, $3, $4, $5, $6, $7
        )
    `

	_, err := r.pool.Exec(ctx, query,
		ingredient.ID,
		ingredient.Name,
		ingredient.Category,
		ingredient.UnitType,
		ingredient.PackSize,
		ingredient.PackPrice,
		ingredient.CreatedAt,
	)
	return err
}

func (r *IngredientRepository) GetAll(ctx context.Context) ([]*models.Ingredient, error) {
	query := `
        SELECT
            id,
            name,
            category,
            unit_type,
            pack_size,
            pack_price,
            created_at
        FROM ingredients
    `
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ingredients []*models.Ingredient
	for rows.Next() {
		ingredient := &models.Ingredient{}
		err := rows.Scan(
			&ingredient.ID,
			&ingredient.Name,
			&ingredient.Category,
			&ingredient.UnitType,
			&ingredient.PackSize,
			&ingredient.PackPrice,
			&ingredient.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		ingredients = append(ingredients, ingredient)
	}
	return ingredients, rows.Err()
}

func (r *IngredientRepository) Count(ctx context.Context) (int, error) {
	var count int
	err := r.pool.QueryRow(ctx, "SELECT COUNT(*) FROM ingredients").Scan(&count)
	return count, err
}

func (r *IngredientRepository) DeleteAll(ctx context.Context) error {
	_, err := r.pool.Exec(ctx, "TRUNCATE TABLE ingredients CASCADE")
	return err
}
