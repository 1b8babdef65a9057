package service

import (
	"errors"
	"net/mail"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/ibeloyar/chawp-vendor/internal/model"
)

const (
	maxPassLen  = 64
	maxEmailLen = 254

	timeOfDayLayout = "15:04:05"
)

func parseID(raw, message string) (uuid.UUID, *model.APIError) {
	id, err := uuid.Parse(strings.TrimSpace(raw))
	if err != nil {
		return uuid.Nil, badRequest(message)
	}

	return id, nil
}

func validateSignInDTO(input model.SignInDTO) error {
	if err := validateEmail(input.Email); err != nil {
		return err
	}

	if err := validatePassword(input.Password); err != nil {
		return err
	}

	return nil
}

func validateEmail(email string) error {
	if email == "" || len(email) > maxEmailLen {
		return errors.New(model.ErrInvalidLoginOrPasswordMessage)
	}

	if _, err := mail.ParseAddress(email); err != nil {
		return errors.New(model.ErrInvalidLoginOrPasswordMessage)
	}

	return nil
}

// bcrypt не различает пароли длиннее 72 байт, больше 64 не принимаем
func validatePassword(password string) error {
	if password == "" || len(password) > maxPassLen {
		return errors.New(model.ErrInvalidLoginOrPasswordMessage)
	}

	return nil
}

func validateVendorProfileUpdate(upd model.VendorProfileUpdate) error {
	if upd.Name != nil && strings.TrimSpace(*upd.Name) == "" {
		return errors.New("vendor name must not be empty")
	}

	if upd.Email != nil && *upd.Email != "" {
		if _, err := mail.ParseAddress(*upd.Email); err != nil {
			return errors.New("invalid vendor email")
		}
	}

	return nil
}

func validateCreateMealDTO(input model.CreateMealDTO) error {
	if strings.TrimSpace(input.Title) == "" {
		return errors.New(model.ErrMealTitleRequiredMessage)
	}

	if input.Price.IsNegative() {
		return errors.New(model.ErrMealInvalidPriceMessage)
	}

	if !input.Status.IsValid() {
		return errors.New(model.ErrMealInvalidStatusMessage)
	}

	return nil
}

func validateUpdateMealDTO(input model.UpdateMealDTO) error {
	if input.Title != nil && strings.TrimSpace(*input.Title) == "" {
		return errors.New(model.ErrMealTitleRequiredMessage)
	}

	if input.Price != nil && input.Price.IsNegative() {
		return errors.New(model.ErrMealInvalidPriceMessage)
	}

	if input.Status != nil && !input.Status.IsValid() {
		return errors.New(model.ErrMealInvalidStatusMessage)
	}

	return nil
}

func validateUpdateVendorHourDTO(input model.UpdateVendorHourDTO) error {
	var open, closing time.Time
	var err error

	if input.OpenTime != nil {
		if open, err = time.Parse(timeOfDayLayout, *input.OpenTime); err != nil {
			return errors.New(model.ErrInvalidTimeFormatMessage)
		}
	}

	if input.CloseTime != nil {
		if closing, err = time.Parse(timeOfDayLayout, *input.CloseTime); err != nil {
			return errors.New(model.ErrInvalidTimeFormatMessage)
		}
	}

	// Если меняется только одна граница, порядок проверит ограничение в БД
	if input.OpenTime != nil && input.CloseTime != nil && !closing.After(open) {
		return errors.New(model.ErrInvalidVendorHoursMessage)
	}

	return nil
}

func validateRegisterDeviceDTO(input model.RegisterDeviceDTO) error {
	if strings.TrimSpace(input.PushToken) == "" {
		return errors.New(model.ErrDeviceTokenRequiredMessage)
	}

	return nil
}
