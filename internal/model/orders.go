package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Order struct {
	ID          uuid.UUID       `json:"id"`
	VendorID    uuid.UUID       `json:"vendor_id"`
	CustomerID  uuid.UUID       `json:"user_id"`
	Status      OrderStatus     `json:"status"`
	TotalAmount decimal.Decimal `json:"total_amount"`
	CreatedAt   time.Time       `json:"created_at"`
	Items       []OrderItem     `json:"items"`
}

type OrderItem struct {
	MealID   uuid.UUID       `json:"meal_id"`
	Quantity int             `json:"quantity"`
	Title    string          `json:"title"`
	Price    decimal.Decimal `json:"price"`
}

type CustomerProfile struct {
	ID        uuid.UUID `json:"id"`
	FullName  string    `json:"full_name"`
	Username  string    `json:"username"`
	Phone     string    `json:"phone"`
	Address   string    `json:"address"`
	PushToken string    `json:"-"`
}

// OrderWithContext - заказ вместе со связанными данными из того же запроса:
// имя вендора, профиль покупателя и названия блюд в позициях.
// Customer nil, если профиля нет.
type OrderWithContext struct {
	Order
	VendorName string           `json:"vendor_name"`
	Customer   *CustomerProfile `json:"customer,omitempty"`
}

type OrderFilter struct {
	Status OrderStatus
	Limit  int
}

type TransitionOrderDTO struct {
	Status OrderStatus `json:"status"`
}

// TransitionResult - ответ на смену статуса заказа
type TransitionResult struct {
	Success bool              `json:"success"`
	Data    *OrderWithContext `json:"data,omitempty"`
	Error   string            `json:"error,omitempty"`
}

// OrderChange - событие ленты изменений заказов
type OrderChange struct {
	Event     string      `json:"event"`
	OrderID   uuid.UUID   `json:"order_id"`
	VendorID  uuid.UUID   `json:"vendor_id"`
	Status    OrderStatus `json:"status,omitempty"`
	OldStatus OrderStatus `json:"old_status,omitempty"`
}
