package model

import "errors"

type APIError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func (e *APIError) Error() string {
	return e.Message
}

const (
	ErrInternalServerMessage         = "internal server error"
	ErrInvalidLoginOrPasswordMessage = "invalid email or password"
	ErrNoVendorProfileMessage        = "no vendor profile for this account"
	ErrVendorNotFoundMessage         = "vendor not found"
	ErrOrderNotFoundMessage          = "order not found"
	ErrOrderInvalidIDMessage         = "invalid order id"
	ErrOrderInvalidStatusMessage     = "invalid order status"
	ErrMealNotFoundMessage           = "meal not found"
	ErrMealInvalidIDMessage          = "invalid meal id"
	ErrHourNotFoundMessage           = "vendor hour not found"
	ErrHourInvalidIDMessage          = "invalid vendor hour id"
	ErrDeviceTokenRequiredMessage    = "push token is required"
	ErrInvalidVendorHoursMessage     = "close time must be after open time"
	ErrInvalidTimeFormatMessage      = "time must be in HH:MM:SS format"
	ErrMealTitleRequiredMessage      = "meal title is required"
	ErrMealInvalidPriceMessage       = "meal price must not be negative"
	ErrMealInvalidStatusMessage      = "invalid meal status"
	ErrInvalidRequestBodyMessage     = "invalid request body"
)

var (
	ErrInvalidLoginOrPassword = errors.New(ErrInvalidLoginOrPasswordMessage)

	ErrUserNotFound            = errors.New("user not found")
	ErrVendorNotFound          = errors.New(ErrVendorNotFoundMessage)
	ErrOrderNotFound           = errors.New(ErrOrderNotFoundMessage)
	ErrInvalidStatusTransition = errors.New("status transition not allowed")
	ErrMealNotFound            = errors.New(ErrMealNotFoundMessage)
	ErrHourNotFound            = errors.New(ErrHourNotFoundMessage)
	ErrInvalidVendorHours      = errors.New(ErrInvalidVendorHoursMessage)
)
