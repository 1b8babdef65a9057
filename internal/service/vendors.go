package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/ibeloyar/chawp-vendor/internal/model"
)

func (s *Service) GetVendorProfile(ctx context.Context, vendorID uuid.UUID) (*model.VendorProfile, *model.APIError) {
	vendor, err := s.storage.GetVendorByID(ctx, vendorID)
	if err != nil {
		if errors.Is(err, model.ErrVendorNotFound) {
			return nil, notFound(model.ErrVendorNotFoundMessage)
		}
		s.lg.Errorf("get vendor %s error: %v", vendorID, err)
		return nil, internalError()
	}

	return vendor, nil
}

// UpdateVendorProfile - частичное обновление, пустой запрос просто возвращает текущий профиль
func (s *Service) UpdateVendorProfile(ctx context.Context, vendorID uuid.UUID, upd model.VendorProfileUpdate) (*model.VendorProfile, *model.APIError) {
	if err := validateVendorProfileUpdate(upd); err != nil {
		return nil, badRequest(err.Error())
	}

	vendor, err := s.storage.UpdateVendor(ctx, vendorID, upd)
	if err != nil {
		if errors.Is(err, model.ErrVendorNotFound) {
			return nil, notFound(model.ErrVendorNotFoundMessage)
		}
		s.lg.Errorf("update vendor %s error: %v", vendorID, err)
		return nil, internalError()
	}

	return vendor, nil
}

// GetVendorStats - "сегодня" считается от локальной полуночи
func (s *Service) GetVendorStats(ctx context.Context, vendorID uuid.UUID) (*model.VendorStats, *model.APIError) {
	now := s.now()
	since := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	stats, err := s.storage.GetVendorStats(ctx, vendorID, since)
	if err != nil {
		s.lg.Errorf("get stats of vendor %s error: %v", vendorID, err)
		return nil, internalError()
	}

	return &stats, nil
}

func (s *Service) GetPayouts(ctx context.Context, vendorID uuid.UUID) ([]model.Payout, *model.APIError) {
	payouts, err := s.storage.GetPayouts(ctx, vendorID)
	if err != nil {
		s.lg.Errorf("get payouts of vendor %s error: %v", vendorID, err)
		return nil, internalError()
	}

	return payouts, nil
}

// GetPreferences - если вендор ничего не сохранял, все уведомления включены
func (s *Service) GetPreferences(ctx context.Context, vendorID uuid.UUID) (*model.NotificationPreferences, *model.APIError) {
	prefs, err := s.storage.GetPreferences(ctx, vendorID)
	if err != nil {
		s.lg.Errorf("get preferences of vendor %s error: %v", vendorID, err)
		return nil, internalError()
	}

	if prefs == nil {
		prefs = &model.NotificationPreferences{
			VendorID:               vendorID,
			OrderNotifications:     true,
			PromotionNotifications: true,
			EmailNotifications:     true,
		}
	}

	return prefs, nil
}

func (s *Service) SavePreferences(ctx context.Context, vendorID uuid.UUID, prefs model.NotificationPreferences) (*model.NotificationPreferences, *model.APIError) {
	prefs.VendorID = vendorID

	if err := s.storage.SavePreferences(ctx, prefs); err != nil {
		s.lg.Errorf("save preferences of vendor %s error: %v", vendorID, err)
		return nil, internalError()
	}

	return &prefs, nil
}

// RegisterDevice - сохраняет push-токен устройства вендора
func (s *Service) RegisterDevice(ctx context.Context, userID uuid.UUID, input model.RegisterDeviceDTO) *model.APIError {
	if err := validateRegisterDeviceDTO(input); err != nil {
		return badRequest(err.Error())
	}

	err := s.storage.SaveDeviceToken(ctx, model.DeviceToken{
		UserID:     userID,
		PushToken:  input.PushToken,
		DeviceType: model.DeviceTypeVendor,
		DeviceInfo: input.DeviceInfo,
	})
	if err != nil {
		s.lg.Errorf("save device token of user %s error: %v", userID, err)
		return internalError()
	}

	return nil
}
