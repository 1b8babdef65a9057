package model

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID        uuid.UUID `json:"id"`
	Email     string    `json:"email"`
	Password  string    `json:"-"`
	CreatedAt time.Time `json:"created_at"`
}

type SignInDTO struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type SignInResult struct {
	Token  string        `json:"token"`
	User   User          `json:"user"`
	Vendor VendorProfile `json:"vendor"`
}

// TokenInfo - данные внутри bearer токена
type TokenInfo struct {
	UserID   uuid.UUID `json:"user_id"`
	VendorID uuid.UUID `json:"vendor_id"`
	Email    string    `json:"email"`
}
