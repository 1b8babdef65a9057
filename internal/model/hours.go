package model

import "github.com/google/uuid"

const (
	DefaultOpenTime  = "08:00:00"
	DefaultCloseTime = "22:00:00"
	DaysInWeek       = 7
)

type VendorHour struct {
	ID        uuid.UUID `json:"id"`
	VendorID  uuid.UUID `json:"vendor_id"`
	DayOfWeek int       `json:"day_of_week"`
	IsClosed  bool      `json:"is_closed"`
	OpenTime  string    `json:"open_time"`
	CloseTime string    `json:"close_time"`
}

type UpdateVendorHourDTO struct {
	IsClosed  *bool   `json:"is_closed,omitempty"`
	OpenTime  *string `json:"open_time,omitempty"`
	CloseTime *string `json:"close_time,omitempty"`
}

// DefaultVendorHours - стартовая неделя вендора: каждый день с DefaultOpenTime до DefaultCloseTime
func DefaultVendorHours(vendorID uuid.UUID) []VendorHour {
	hours := make([]VendorHour, 0, DaysInWeek)
	for day := 0; day < DaysInWeek; day++ {
		hours = append(hours, VendorHour{
			VendorID:  vendorID,
			DayOfWeek: day,
			OpenTime:  DefaultOpenTime,
			CloseTime: DefaultCloseTime,
		})
	}
	return hours
}
