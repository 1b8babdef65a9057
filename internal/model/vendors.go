package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type VendorProfile struct {
	ID           uuid.UUID       `json:"id"`
	UserID       uuid.UUID       `json:"user_id"`
	Name         string          `json:"name"`
	Email        string          `json:"email"`
	Phone        string          `json:"phone"`
	Address      string          `json:"address"`
	Description  string          `json:"description"`
	Image        string          `json:"image"`
	Rating       decimal.Decimal `json:"rating"`
	DeliveryTime string          `json:"delivery_time"`
	Status       string          `json:"status"`
	CreatedAt    time.Time       `json:"created_at"`
}

// VendorProfileUpdate - частичное обновление, nil поля не меняются
type VendorProfileUpdate struct {
	Name         *string `json:"name,omitempty"`
	Email        *string `json:"email,omitempty"`
	Phone        *string `json:"phone,omitempty"`
	Address      *string `json:"address,omitempty"`
	Description  *string `json:"description,omitempty"`
	Image        *string `json:"image,omitempty"`
	DeliveryTime *string `json:"delivery_time,omitempty"`
	Status       *string `json:"status,omitempty"`
}

type VendorStats struct {
	TotalOrders   int64           `json:"total_orders"`
	TodayRevenue  decimal.Decimal `json:"today_revenue"`
	PendingOrders int64           `json:"pending_orders"`
	TotalRevenue  decimal.Decimal `json:"total_revenue"`
}

type NotificationPreferences struct {
	VendorID               uuid.UUID `json:"vendor_id"`
	OrderNotifications     bool      `json:"order_notifications"`
	PromotionNotifications bool      `json:"promotion_notifications"`
	EmailNotifications     bool      `json:"email_notifications"`
}
