package service

import (
	"context"
	"net/http"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/ibeloyar/chawp-vendor/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestService_GetVendorHours_CreatesDefaults(t *testing.T) {
	deps := newTestService(t)

	vendorID := uuid.New()
	defaults := model.DefaultVendorHours(vendorID)

	deps.storage.EXPECT().GetVendorHours(gomock.Any(), vendorID).Return([]model.VendorHour{}, nil)
	deps.storage.EXPECT().CreateVendorHours(gomock.Any(), vendorID, defaults).Return(defaults, nil)

	hours, apiErr := deps.svc.GetVendorHours(context.Background(), vendorID)

	require.Nil(t, apiErr)
	assert.Len(t, hours, model.DaysInWeek)
}

func TestService_GetVendorHours_Existing(t *testing.T) {
	deps := newTestService(t)

	vendorID := uuid.New()
	existing := []model.VendorHour{{ID: uuid.New(), VendorID: vendorID, DayOfWeek: 1, IsClosed: true}}

	deps.storage.EXPECT().GetVendorHours(gomock.Any(), vendorID).Return(existing, nil)
	deps.storage.EXPECT().CreateVendorHours(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	hours, apiErr := deps.svc.GetVendorHours(context.Background(), vendorID)

	require.Nil(t, apiErr)
	assert.Equal(t, existing, hours)
}

func TestService_UpdateVendorHour(t *testing.T) {
	deps := newTestService(t)

	vendorID, hourID := uuid.New(), uuid.New()
	open, closing := "09:00:00", "21:30:00"
	input := model.UpdateVendorHourDTO{OpenTime: &open, CloseTime: &closing}

	deps.storage.EXPECT().UpdateVendorHour(gomock.Any(), vendorID, hourID, input).
		Return(&model.VendorHour{ID: hourID, OpenTime: open, CloseTime: closing}, nil)

	hour, apiErr := deps.svc.UpdateVendorHour(context.Background(), vendorID, hourID.String(), input)

	require.Nil(t, apiErr)
	assert.Equal(t, "09:00:00", hour.OpenTime)
}

func TestService_UpdateVendorHour_Invalid(t *testing.T) {
	deps := newTestService(t)

	bad, early, late := "9am", "08:00:00", "22:00:00"

	tests := map[string]model.UpdateVendorHourDTO{
		"bad format":        {OpenTime: &bad},
		"close before open": {OpenTime: &late, CloseTime: &early},
		"close equals open": {OpenTime: &early, CloseTime: &early},
	}

	for name, input := range tests {
		t.Run(name, func(t *testing.T) {
			_, apiErr := deps.svc.UpdateVendorHour(context.Background(), uuid.New(), uuid.NewString(), input)
			require.NotNil(t, apiErr)
			assert.Equal(t, http.StatusBadRequest, apiErr.Code)
		})
	}
}

func TestService_UpdateVendorHour_StorageErrors(t *testing.T) {
	deps := newTestService(t)

	closed := true

	deps.storage.EXPECT().UpdateVendorHour(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, model.ErrHourNotFound)

	_, apiErr := deps.svc.UpdateVendorHour(context.Background(), uuid.New(), uuid.NewString(),
		model.UpdateVendorHourDTO{IsClosed: &closed})
	require.NotNil(t, apiErr)
	assert.Equal(t, http.StatusNotFound, apiErr.Code)

	late := "23:00:00"
	deps.storage.EXPECT().UpdateVendorHour(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, model.ErrInvalidVendorHours)

	_, apiErr = deps.svc.UpdateVendorHour(context.Background(), uuid.New(), uuid.NewString(),
		model.UpdateVendorHourDTO{OpenTime: &late})
	require.NotNil(t, apiErr)
	assert.Equal(t, http.StatusBadRequest, apiErr.Code)
	assert.Equal(t, model.ErrInvalidVendorHoursMessage, apiErr.Message)
}
