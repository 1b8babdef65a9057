package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type MealStatus string

const (
	MealStatusAvailable   MealStatus = "available"
	MealStatusUnavailable MealStatus = "unavailable"
)

func (s MealStatus) IsValid() bool {
	return s == MealStatusAvailable || s == MealStatusUnavailable
}

type Meal struct {
	ID          uuid.UUID       `json:"id"`
	VendorID    uuid.UUID       `json:"vendor_id"`
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Image       string          `json:"image"`
	Category    string          `json:"category"`
	Status      MealStatus      `json:"status"`
	CreatedAt   time.Time       `json:"created_at"`
}

type CreateMealDTO struct {
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Image       string          `json:"image"`
	Category    string          `json:"category"`
	Status      MealStatus      `json:"status"`
}

type UpdateMealDTO struct {
	Title       *string          `json:"title,omitempty"`
	Description *string          `json:"description,omitempty"`
	Price       *decimal.Decimal `json:"price,omitempty"`
	Image       *string          `json:"image,omitempty"`
	Category    *string          `json:"category,omitempty"`
	Status      *MealStatus      `json:"status,omitempty"`
}
