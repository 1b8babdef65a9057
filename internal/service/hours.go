package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/ibeloyar/chawp-vendor/internal/model"
)

// GetVendorHours - при первом чтении создает неделю по умолчанию
func (s *Service) GetVendorHours(ctx context.Context, vendorID uuid.UUID) ([]model.VendorHour, *model.APIError) {
	hours, err := s.storage.GetVendorHours(ctx, vendorID)
	if err != nil {
		s.lg.Errorf("get hours of vendor %s error: %v", vendorID, err)
		return nil, internalError()
	}

	if len(hours) > 0 {
		return hours, nil
	}

	hours, err = s.storage.CreateVendorHours(ctx, vendorID, model.DefaultVendorHours(vendorID))
	if err != nil {
		s.lg.Errorf("create default hours of vendor %s error: %v", vendorID, err)
		return nil, internalError()
	}

	return hours, nil
}

func (s *Service) UpdateVendorHour(ctx context.Context, vendorID uuid.UUID, hourID string, input model.UpdateVendorHourDTO) (*model.VendorHour, *model.APIError) {
	id, apiErr := parseID(hourID, model.ErrHourInvalidIDMessage)
	if apiErr != nil {
		return nil, apiErr
	}

	if err := validateUpdateVendorHourDTO(input); err != nil {
		return nil, badRequest(err.Error())
	}

	hour, err := s.storage.UpdateVendorHour(ctx, vendorID, id, input)
	if err != nil {
		switch {
		case errors.Is(err, model.ErrHourNotFound):
			return nil, notFound(model.ErrHourNotFoundMessage)
		case errors.Is(err, model.ErrInvalidVendorHours):
			return nil, badRequest(model.ErrInvalidVendorHoursMessage)
		}
		s.lg.Errorf("update hour %s of vendor %s error: %v", id, vendorID, err)
		return nil, internalError()
	}

	return hour, nil
}
