package pg

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/ibeloyar/chawp-vendor/internal/model"
)

// orderContextProjection - заказ вместе с названием вендора, профилем покупателя
// и позициями (с названиями блюд) одним запросом. %s - источник строк заказа.
const orderContextProjection = `SELECT o.id, o.vendor_id, o.user_id, o.status, o.total_amount, o.created_at,
	COALESCE(v.name, ''),
	p.id, COALESCE(p.full_name, ''), COALESCE(p.username, ''), COALESCE(p.phone, ''),
	COALESCE(p.address, ''), COALESCE(p.push_token, ''),
	COALESCE(items.list, '[]'::json)
FROM %s o
LEFT JOIN vendors v ON v.id = o.vendor_id
LEFT JOIN user_profiles p ON p.id = o.user_id
LEFT JOIN LATERAL (
	SELECT json_agg(json_build_object(
		'meal_id', i.meal_id, 'quantity', i.quantity, 'title', m.title, 'price', m.price
	) ORDER BY i.created_at) AS list
	FROM order_items i
	LEFT JOIN meals m ON m.id = i.meal_id
	WHERE i.order_id = o.id
) items ON TRUE`

var (
	updateOrderStatusQuery = `WITH updated AS (
	UPDATE orders SET status = $1, updated_at = NOW()
	WHERE id = $2 AND vendor_id = $3 AND status = ANY(string_to_array($4, ','))
	RETURNING id, vendor_id, user_id, status, total_amount, created_at
) ` + fmt.Sprintf(orderContextProjection, "updated")

	ordersByVendorQuery = fmt.Sprintf(orderContextProjection, "orders") + `
WHERE o.vendor_id = $1 AND ($2::text = '' OR o.status = $2::text)
ORDER BY o.created_at DESC
LIMIT $3`
)

type rowScanner interface {
	Scan(dest ...any) error
}

func scanOrderWithContext(row rowScanner) (*model.OrderWithContext, error) {
	var (
		order      model.OrderWithContext
		customer   model.CustomerProfile
		customerID uuid.NullUUID
		items      []byte
	)

	err := row.Scan(
		&order.ID, &order.VendorID, &order.CustomerID, &order.Status, &order.TotalAmount, &order.CreatedAt,
		&order.VendorName,
		&customerID, &customer.FullName, &customer.Username, &customer.Phone,
		&customer.Address, &customer.PushToken,
		&items,
	)
	if err != nil {
		return nil, err
	}

	if customerID.Valid {
		customer.ID = customerID.UUID
		order.Customer = &customer
	}

	order.Items = make([]model.OrderItem, 0)
	if len(items) > 0 {
		if err := json.Unmarshal(items, &order.Items); err != nil {
			return nil, fmt.Errorf("decode order items: %w", err)
		}
	}

	return &order, nil
}

// UpdateOrderStatus - переводит заказ вендора в статус status, если текущий статус входит в from.
// Без повторов: запись выполняется ровно один раз.
func (r *Repository) UpdateOrderStatus(ctx context.Context, vendorID, orderID uuid.UUID, status model.OrderStatus, from []model.OrderStatus) (*model.OrderWithContext, error) {
	row := r.db.QueryRowContext(ctx, updateOrderStatusQuery,
		status,
		orderID,
		vendorID,
		strings.Join(model.StatusStrings(from), ","),
	)

	order, err := scanOrderWithContext(row)
	if err == nil {
		return order, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return nil, err
	}

	// Ни одна строка не обновилась: заказа нет или статус уже другой
	current, err := r.getOrderStatus(ctx, vendorID, orderID)
	if err != nil {
		return nil, err
	}

	return nil, fmt.Errorf("%w: %s -> %s", model.ErrInvalidStatusTransition, current, status)
}

func (r *Repository) getOrderStatus(ctx context.Context, vendorID, orderID uuid.UUID) (model.OrderStatus, error) {
	var status model.OrderStatus

	err := r.executeWithRetry(ctx, func(ctx context.Context, db *sql.DB) error {
		return db.QueryRowContext(ctx, `SELECT status FROM orders WHERE id = $1 AND vendor_id = $2`,
			orderID, vendorID).Scan(&status)
	})
	if errors.Is(err, sql.ErrNoRows) {
		return "", model.ErrOrderNotFound
	}

	return status, err
}

// GetOrdersByVendor - заказы вендора, новые первыми
func (r *Repository) GetOrdersByVendor(ctx context.Context, vendorID uuid.UUID, filter model.OrderFilter) ([]model.OrderWithContext, error) {
	result := make([]model.OrderWithContext, 0)

	var limit any
	if filter.Limit > 0 {
		limit = filter.Limit
	}

	err := r.executeWithRetry(ctx, func(ctx context.Context, db *sql.DB) error {
		result = result[:0]

		rows, err := db.QueryContext(ctx, ordersByVendorQuery, vendorID, string(filter.Status), limit)
		if err != nil {
			return err
		}
		defer rows.Close()

		for rows.Next() {
			order, err := scanOrderWithContext(rows)
			if err != nil {
				return err
			}
			result = append(result, *order)
		}

		return rows.Err()
	})

	return result, err
}

// GetPushTokens - push-токены устройств пользователя указанного типа
func (r *Repository) GetPushTokens(ctx context.Context, userID uuid.UUID, deviceType model.DeviceType) ([]string, error) {
	result := make([]string, 0)

	err := r.executeWithRetry(ctx, func(ctx context.Context, db *sql.DB) error {
		result = result[:0]

		rows, err := db.QueryContext(ctx,
			`SELECT push_token FROM device_tokens WHERE user_id = $1 AND device_type = $2 ORDER BY updated_at DESC`,
			userID, deviceType)
		if err != nil {
			return err
		}
		defer rows.Close()

		for rows.Next() {
			var token string
			if err := rows.Scan(&token); err != nil {
				return err
			}
			result = append(result, token)
		}

		return rows.Err()
	})

	return result, err
}
