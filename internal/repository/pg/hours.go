package pg

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/ibeloyar/chawp-vendor/internal/model"
)

const hourColumns = `id, vendor_id, day_of_week, is_closed,
	to_char(open_time, 'HH24:MI:SS'), to_char(close_time, 'HH24:MI:SS')`

func scanHour(row rowScanner) (*model.VendorHour, error) {
	var h model.VendorHour

	if err := row.Scan(&h.ID, &h.VendorID, &h.DayOfWeek, &h.IsClosed, &h.OpenTime, &h.CloseTime); err != nil {
		return nil, err
	}

	return &h, nil
}

func (r *Repository) GetVendorHours(ctx context.Context, vendorID uuid.UUID) ([]model.VendorHour, error) {
	result := make([]model.VendorHour, 0, model.DaysInWeek)

	err := r.executeWithRetry(ctx, func(ctx context.Context, db *sql.DB) error {
		result = result[:0]

		rows, err := db.QueryContext(ctx,
			`SELECT `+hourColumns+` FROM vendor_hours WHERE vendor_id = $1 ORDER BY day_of_week`, vendorID)
		if err != nil {
			return err
		}
		defer rows.Close()

		for rows.Next() {
			hour, err := scanHour(rows)
			if err != nil {
				return err
			}
			result = append(result, *hour)
		}

		return rows.Err()
	})

	return result, err
}

// CreateVendorHours - вставляет недостающие дни одной транзакцией и возвращает всю неделю
func (r *Repository) CreateVendorHours(ctx context.Context, vendorID uuid.UUID, hours []model.VendorHour) ([]model.VendorHour, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	for _, h := range hours {
		_, err := tx.ExecContext(ctx, `INSERT INTO vendor_hours (vendor_id, day_of_week, is_closed, open_time, close_time)
			VALUES ($1, $2, $3, $4::time, $5::time)
			ON CONFLICT (vendor_id, day_of_week) DO NOTHING`,
			vendorID, h.DayOfWeek, h.IsClosed, h.OpenTime, h.CloseTime)
		if err != nil {
			return nil, err
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}

	return r.GetVendorHours(ctx, vendorID)
}

func (r *Repository) UpdateVendorHour(ctx context.Context, vendorID, hourID uuid.UUID, dto model.UpdateVendorHourDTO) (*model.VendorHour, error) {
	row := r.db.QueryRowContext(ctx, `UPDATE vendor_hours SET
		is_closed = COALESCE($3, is_closed),
		open_time = COALESCE($4::time, open_time),
		close_time = COALESCE($5::time, close_time),
		updated_at = NOW()
	WHERE id = $1 AND vendor_id = $2
	RETURNING `+hourColumns,
		hourID, vendorID, dto.IsClosed, dto.OpenTime, dto.CloseTime)

	hour, err := scanHour(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, model.ErrHourNotFound
	}
	if IsCheckViolation(err) {
		return nil, model.ErrInvalidVendorHours
	}

	return hour, err
}
