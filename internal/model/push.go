package model

import "github.com/google/uuid"

type DeviceType string

const (
	DeviceTypeCustomer DeviceType = "customer"
	DeviceTypeVendor   DeviceType = "vendor"
)

// DeviceToken - адрес push: одна установка приложения пользователя
type DeviceToken struct {
	UserID     uuid.UUID         `json:"user_id"`
	PushToken  string            `json:"push_token"`
	DeviceType DeviceType        `json:"device_type"`
	DeviceInfo map[string]string `json:"device_info,omitempty"`
}

type RegisterDeviceDTO struct {
	PushToken  string            `json:"push_token"`
	DeviceInfo map[string]string `json:"device_info,omitempty"`
}

// PushMessage - тело запроса к функции отправки push
type PushMessage struct {
	Tokens []string          `json:"tokens"`
	Title  string            `json:"title"`
	Body   string            `json:"body"`
	Data   map[string]string `json:"data"`
}
