package pg

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/ibeloyar/chawp-vendor/internal/model"
)

const mealColumns = `id, vendor_id, title, COALESCE(description, ''), price, COALESCE(image, ''),
	COALESCE(category, ''), status, created_at`

func scanMeal(row rowScanner) (*model.Meal, error) {
	var m model.Meal

	err := row.Scan(&m.ID, &m.VendorID, &m.Title, &m.Description, &m.Price, &m.Image,
		&m.Category, &m.Status, &m.CreatedAt)
	if err != nil {
		return nil, err
	}

	return &m, nil
}

func (r *Repository) GetMeals(ctx context.Context, vendorID uuid.UUID) ([]model.Meal, error) {
	result := make([]model.Meal, 0)

	err := r.executeWithRetry(ctx, func(ctx context.Context, db *sql.DB) error {
		result = result[:0]

		rows, err := db.QueryContext(ctx,
			`SELECT `+mealColumns+` FROM meals WHERE vendor_id = $1 ORDER BY created_at DESC`, vendorID)
		if err != nil {
			return err
		}
		defer rows.Close()

		for rows.Next() {
			meal, err := scanMeal(rows)
			if err != nil {
				return err
			}
			result = append(result, *meal)
		}

		return rows.Err()
	})

	return result, err
}

func (r *Repository) CreateMeal(ctx context.Context, vendorID uuid.UUID, dto model.CreateMealDTO) (*model.Meal, error) {
	row := r.db.QueryRowContext(ctx, `INSERT INTO meals
		(vendor_id, title, description, price, image, category, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING `+mealColumns,
		vendorID, dto.Title, dto.Description, dto.Price, dto.Image, dto.Category, dto.Status)

	return scanMeal(row)
}

func (r *Repository) UpdateMeal(ctx context.Context, vendorID, mealID uuid.UUID, dto model.UpdateMealDTO) (*model.Meal, error) {
	row := r.db.QueryRowContext(ctx, `UPDATE meals SET
		title = COALESCE($3, title),
		description = COALESCE($4, description),
		price = COALESCE($5, price),
		image = COALESCE($6, image),
		category = COALESCE($7, category),
		status = COALESCE($8, status),
		updated_at = NOW()
	WHERE id = $1 AND vendor_id = $2
	RETURNING `+mealColumns,
		mealID, vendorID, dto.Title, dto.Description, dto.Price, dto.Image, dto.Category, dto.Status)

	meal, err := scanMeal(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, model.ErrMealNotFound
	}

	return meal, err
}

// ToggleMealAvailability - переключение available <-> unavailable одним UPDATE
func (r *Repository) ToggleMealAvailability(ctx context.Context, vendorID, mealID uuid.UUID) (*model.Meal, error) {
	row := r.db.QueryRowContext(ctx, `UPDATE meals SET
		status = CASE WHEN status = 'available' THEN 'unavailable' ELSE 'available' END,
		updated_at = NOW()
	WHERE id = $1 AND vendor_id = $2
	RETURNING `+mealColumns,
		mealID, vendorID)

	meal, err := scanMeal(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, model.ErrMealNotFound
	}

	return meal, err
}

func (r *Repository) DeleteMeal(ctx context.Context, vendorID, mealID uuid.UUID) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM meals WHERE id = $1 AND vendor_id = $2`, mealID, vendorID)
	if err != nil {
		return err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return model.ErrMealNotFound
	}

	return nil
}
