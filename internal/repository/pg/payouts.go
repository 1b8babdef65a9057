package pg

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/ibeloyar/chawp-vendor/internal/model"
)

func (r *Repository) GetPayouts(ctx context.Context, vendorID uuid.UUID) ([]model.Payout, error) {
	result := make([]model.Payout, 0)

	err := r.executeWithRetry(ctx, func(ctx context.Context, db *sql.DB) error {
		result = result[:0]

		rows, err := db.QueryContext(ctx, `SELECT id, vendor_id, amount, status,
			COALESCE(payment_method, ''), COALESCE(reference_number, ''), COALESCE(notes, ''),
			created_at, completed_at
		FROM vendor_payouts WHERE vendor_id = $1 ORDER BY created_at DESC`, vendorID)
		if err != nil {
			return err
		}
		defer rows.Close()

		for rows.Next() {
			var (
				payout      model.Payout
				completedAt sql.NullTime
			)

			if err := rows.Scan(&payout.ID, &payout.VendorID, &payout.Amount, &payout.Status,
				&payout.PaymentMethod, &payout.ReferenceNumber, &payout.Notes,
				&payout.CreatedAt, &completedAt); err != nil {
				return err
			}

			if completedAt.Valid {
				payout.CompletedAt = &completedAt.Time
			}

			result = append(result, payout)
		}

		return rows.Err()
	})

	return result, err
}
