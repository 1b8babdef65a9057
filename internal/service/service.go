package service

import (
	"context"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/ibeloyar/chawp-vendor/internal/model"
	"go.uber.org/zap"
)

type StorageRepo interface {
	Ping(ctx context.Context) error

	GetUserByEmail(ctx context.Context, email string) (*model.User, error)
	GetVendorByUserID(ctx context.Context, userID uuid.UUID) (*model.VendorProfile, error)
	GetVendorByID(ctx context.Context, vendorID uuid.UUID) (*model.VendorProfile, error)
	UpdateVendor(ctx context.Context, vendorID uuid.UUID, upd model.VendorProfileUpdate) (*model.VendorProfile, error)
	GetVendorStats(ctx context.Context, vendorID uuid.UUID, since time.Time) (model.VendorStats, error)

	UpdateOrderStatus(ctx context.Context, vendorID, orderID uuid.UUID, status model.OrderStatus, from []model.OrderStatus) (*model.OrderWithContext, error)
	GetOrdersByVendor(ctx context.Context, vendorID uuid.UUID, filter model.OrderFilter) ([]model.OrderWithContext, error)
	GetPushTokens(ctx context.Context, userID uuid.UUID, deviceType model.DeviceType) ([]string, error)
	SubscribeVendorOrders(ctx context.Context, vendorID uuid.UUID) (<-chan model.OrderChange, error)

	GetMeals(ctx context.Context, vendorID uuid.UUID) ([]model.Meal, error)
	CreateMeal(ctx context.Context, vendorID uuid.UUID, dto model.CreateMealDTO) (*model.Meal, error)
	UpdateMeal(ctx context.Context, vendorID, mealID uuid.UUID, dto model.UpdateMealDTO) (*model.Meal, error)
	ToggleMealAvailability(ctx context.Context, vendorID, mealID uuid.UUID) (*model.Meal, error)
	DeleteMeal(ctx context.Context, vendorID, mealID uuid.UUID) error

	GetPayouts(ctx context.Context, vendorID uuid.UUID) ([]model.Payout, error)

	GetVendorHours(ctx context.Context, vendorID uuid.UUID) ([]model.VendorHour, error)
	CreateVendorHours(ctx context.Context, vendorID uuid.UUID, hours []model.VendorHour) ([]model.VendorHour, error)
	UpdateVendorHour(ctx context.Context, vendorID, hourID uuid.UUID, dto model.UpdateVendorHourDTO) (*model.VendorHour, error)

	GetPreferences(ctx context.Context, vendorID uuid.UUID) (*model.NotificationPreferences, error)
	SavePreferences(ctx context.Context, prefs model.NotificationPreferences) error

	SaveDeviceToken(ctx context.Context, device model.DeviceToken) error
}

// Notifier - отправка push-уведомления (синхронно или через очередь)
type Notifier interface {
	Notify(ctx context.Context, msg model.PushMessage) error
}

type Service struct {
	storage  StorageRepo
	notifier Notifier
	lg       *zap.SugaredLogger

	tokenSecret string
	tokenExp    time.Duration

	now func() time.Time
}

func New(s StorageRepo, n Notifier, tokenExp time.Duration, tokenSecret string, lg *zap.SugaredLogger) *Service {
	return &Service{
		storage:  s,
		notifier: n,
		lg:       lg,

		tokenExp:    tokenExp,
		tokenSecret: tokenSecret,

		now: time.Now,
	}
}

func (s *Service) Ping(ctx context.Context) *model.APIError {
	if err := s.storage.Ping(ctx); err != nil {
		s.lg.Errorf("storage ping error: %v", err)
		return internalError()
	}

	return nil
}

func internalError() *model.APIError {
	return &model.APIError{
		Code:    http.StatusInternalServerError,
		Message: model.ErrInternalServerMessage,
	}
}

func badRequest(message string) *model.APIError {
	return &model.APIError{
		Code:    http.StatusBadRequest,
		Message: message,
	}
}

func notFound(message string) *model.APIError {
	return &model.APIError{
		Code:    http.StatusNotFound,
		Message: message,
	}
}
