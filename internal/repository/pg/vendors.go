package pg

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/ibeloyar/chawp-vendor/internal/model"
)

const vendorColumns = `id, user_id, name, COALESCE(email, ''), COALESCE(phone, ''), COALESCE(address, ''),
	COALESCE(description, ''), COALESCE(image, ''), rating, COALESCE(delivery_time, ''), status, created_at`

func scanVendor(row rowScanner) (*model.VendorProfile, error) {
	var v model.VendorProfile

	err := row.Scan(&v.ID, &v.UserID, &v.Name, &v.Email, &v.Phone, &v.Address,
		&v.Description, &v.Image, &v.Rating, &v.DeliveryTime, &v.Status, &v.CreatedAt)
	if err != nil {
		return nil, err
	}

	return &v, nil
}

func (r *Repository) GetUserByEmail(ctx context.Context, email string) (*model.User, error) {
	var user model.User

	err := r.executeWithRetry(ctx, func(ctx context.Context, db *sql.DB) error {
		return db.QueryRowContext(ctx, `SELECT id, email, password, created_at FROM users WHERE email = $1`, email).
			Scan(&user.ID, &user.Email, &user.Password, &user.CreatedAt)
	})
	if errors.Is(err, sql.ErrNoRows) {
		return nil, model.ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}

	return &user, nil
}

func (r *Repository) GetVendorByUserID(ctx context.Context, userID uuid.UUID) (*model.VendorProfile, error) {
	return r.getVendor(ctx, `SELECT `+vendorColumns+` FROM vendors WHERE user_id = $1`, userID)
}

func (r *Repository) GetVendorByID(ctx context.Context, vendorID uuid.UUID) (*model.VendorProfile, error) {
	return r.getVendor(ctx, `SELECT `+vendorColumns+` FROM vendors WHERE id = $1`, vendorID)
}

func (r *Repository) getVendor(ctx context.Context, query string, arg uuid.UUID) (*model.VendorProfile, error) {
	var vendor *model.VendorProfile

	err := r.executeWithRetry(ctx, func(ctx context.Context, db *sql.DB) error {
		var err error
		vendor, err = scanVendor(db.QueryRowContext(ctx, query, arg))
		return err
	})
	if errors.Is(err, sql.ErrNoRows) {
		return nil, model.ErrVendorNotFound
	}

	return vendor, err
}

// UpdateVendor - частичное обновление профиля, nil-поля не меняются
func (r *Repository) UpdateVendor(ctx context.Context, vendorID uuid.UUID, upd model.VendorProfileUpdate) (*model.VendorProfile, error) {
	row := r.db.QueryRowContext(ctx, `UPDATE vendors SET
		name = COALESCE($2, name),
		email = COALESCE($3, email),
		phone = COALESCE($4, phone),
		address = COALESCE($5, address),
		description = COALESCE($6, description),
		image = COALESCE($7, image),
		delivery_time = COALESCE($8, delivery_time),
		status = COALESCE($9, status),
		updated_at = NOW()
	WHERE id = $1
	RETURNING `+vendorColumns,
		vendorID, upd.Name, upd.Email, upd.Phone, upd.Address,
		upd.Description, upd.Image, upd.DeliveryTime, upd.Status,
	)

	vendor, err := scanVendor(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, model.ErrVendorNotFound
	}

	return vendor, err
}

// GetVendorStats - счетчики заказов и выручка; today - выручка с момента since
func (r *Repository) GetVendorStats(ctx context.Context, vendorID uuid.UUID, since time.Time) (model.VendorStats, error) {
	var stats model.VendorStats

	err := r.executeWithRetry(ctx, func(ctx context.Context, db *sql.DB) error {
		return db.QueryRowContext(ctx, `SELECT
			COUNT(*),
			COALESCE(SUM(total_amount) FILTER (WHERE created_at >= $2), 0),
			COUNT(*) FILTER (WHERE status = 'pending'),
			COALESCE(SUM(total_amount), 0)
		FROM orders WHERE vendor_id = $1`, vendorID, since).
			Scan(&stats.TotalOrders, &stats.TodayRevenue, &stats.PendingOrders, &stats.TotalRevenue)
	})

	return stats, err
}

// GetPreferences - nil, если вендор еще ничего не сохранял
func (r *Repository) GetPreferences(ctx context.Context, vendorID uuid.UUID) (*model.NotificationPreferences, error) {
	prefs := model.NotificationPreferences{VendorID: vendorID}

	err := r.executeWithRetry(ctx, func(ctx context.Context, db *sql.DB) error {
		return db.QueryRowContext(ctx, `SELECT order_notifications, promotion_notifications, email_notifications
			FROM vendor_preferences WHERE vendor_id = $1`, vendorID).
			Scan(&prefs.OrderNotifications, &prefs.PromotionNotifications, &prefs.EmailNotifications)
	})
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &prefs, nil
}

func (r *Repository) SavePreferences(ctx context.Context, prefs model.NotificationPreferences) error {
	_, err := r.db.ExecContext(ctx, `INSERT INTO vendor_preferences
		(vendor_id, order_notifications, promotion_notifications, email_notifications)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (vendor_id) DO UPDATE SET
			order_notifications = EXCLUDED.order_notifications,
			promotion_notifications = EXCLUDED.promotion_notifications,
			email_notifications = EXCLUDED.email_notifications,
			updated_at = NOW()`,
		prefs.VendorID, prefs.OrderNotifications, prefs.PromotionNotifications, prefs.EmailNotifications)

	return err
}
