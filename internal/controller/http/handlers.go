package http

import (
	"context"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/ibeloyar/chawp-vendor/internal/model"
	"go.uber.org/zap"
)

type Service interface {
	Ping(ctx context.Context) *model.APIError
	SignIn(ctx context.Context, input model.SignInDTO) (*model.SignInResult, *model.APIError)

	GetVendorProfile(ctx context.Context, vendorID uuid.UUID) (*model.VendorProfile, *model.APIError)
	UpdateVendorProfile(ctx context.Context, vendorID uuid.UUID, upd model.VendorProfileUpdate) (*model.VendorProfile, *model.APIError)
	GetVendorStats(ctx context.Context, vendorID uuid.UUID) (*model.VendorStats, *model.APIError)

	GetOrders(ctx context.Context, vendorID uuid.UUID, filter model.OrderFilter) ([]model.OrderWithContext, *model.APIError)
	SubscribeOrders(ctx context.Context, vendorID uuid.UUID) (<-chan model.OrderChange, *model.APIError)
	TransitionOrder(ctx context.Context, vendorID uuid.UUID, orderID string, target model.OrderStatus) (*model.OrderWithContext, *model.APIError)
	AcceptOrder(ctx context.Context, vendorID uuid.UUID, orderID string) (*model.OrderWithContext, *model.APIError)
	DeclineOrder(ctx context.Context, vendorID uuid.UUID, orderID string) (*model.OrderWithContext, *model.APIError)
	MarkOrderPreparing(ctx context.Context, vendorID uuid.UUID, orderID string) (*model.OrderWithContext, *model.APIError)
	MarkOrderReady(ctx context.Context, vendorID uuid.UUID, orderID string) (*model.OrderWithContext, *model.APIError)

	GetMeals(ctx context.Context, vendorID uuid.UUID) ([]model.Meal, *model.APIError)
	CreateMeal(ctx context.Context, vendorID uuid.UUID, input model.CreateMealDTO) (*model.Meal, *model.APIError)
	UpdateMeal(ctx context.Context, vendorID uuid.UUID, mealID string, input model.UpdateMealDTO) (*model.Meal, *model.APIError)
	ToggleMealAvailability(ctx context.Context, vendorID uuid.UUID, mealID string) (*model.Meal, *model.APIError)
	DeleteMeal(ctx context.Context, vendorID uuid.UUID, mealID string) *model.APIError

	GetPayouts(ctx context.Context, vendorID uuid.UUID) ([]model.Payout, *model.APIError)

	GetVendorHours(ctx context.Context, vendorID uuid.UUID) ([]model.VendorHour, *model.APIError)
	UpdateVendorHour(ctx context.Context, vendorID uuid.UUID, hourID string, input model.UpdateVendorHourDTO) (*model.VendorHour, *model.APIError)

	GetPreferences(ctx context.Context, vendorID uuid.UUID) (*model.NotificationPreferences, *model.APIError)
	SavePreferences(ctx context.Context, vendorID uuid.UUID, prefs model.NotificationPreferences) (*model.NotificationPreferences, *model.APIError)

	RegisterDevice(ctx context.Context, userID uuid.UUID, input model.RegisterDeviceDTO) *model.APIError
}

type Controller struct {
	service Service
	lg      *zap.SugaredLogger

	// живые ленты закрываются вместе с сервером
	feedsCtx   context.Context
	closeFeeds context.CancelFunc
}

func New(s Service, lg *zap.SugaredLogger) *Controller {
	feedsCtx, closeFeeds := context.WithCancel(context.Background())

	return &Controller{
		lg:      lg,
		service: s,

		feedsCtx:   feedsCtx,
		closeFeeds: closeFeeds,
	}
}

// CloseLiveFeeds - для http.Server.RegisterOnShutdown: Shutdown не ждет hijacked соединения
func (c *Controller) CloseLiveFeeds() {
	c.closeFeeds()
}

func (c *Controller) Ping(w http.ResponseWriter, r *http.Request) {
	if apiErr := c.service.Ping(r.Context()); apiErr != nil {
		writeAPIError(w, apiErr)
		return
	}

	w.WriteHeader(http.StatusOK)
}

func (c *Controller) Login(w http.ResponseWriter, r *http.Request) {
	body, err := readBody[model.SignInDTO](r)
	if err != nil {
		c.lg.Warnf("failed to parse request body: %v", err)
		http.Error(w, model.ErrInvalidRequestBodyMessage, http.StatusBadRequest)
		return
	}

	result, apiErr := c.service.SignIn(r.Context(), body)
	if apiErr != nil {
		writeAPIError(w, apiErr)
		return
	}

	w.Header().Set("Authorization", result.Token)
	writeJSON(w, result, http.StatusOK)
}

func (c *Controller) GetProfile(w http.ResponseWriter, r *http.Request) {
	info, ok := tokenInfo(w, r)
	if !ok {
		return
	}

	vendor, apiErr := c.service.GetVendorProfile(r.Context(), info.VendorID)
	if apiErr != nil {
		writeAPIError(w, apiErr)
		return
	}

	writeJSON(w, vendor, http.StatusOK)
}

func (c *Controller) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	info, ok := tokenInfo(w, r)
	if !ok {
		return
	}

	body, err := readBody[model.VendorProfileUpdate](r)
	if err != nil {
		c.lg.Warnf("failed to parse request body: %v", err)
		http.Error(w, model.ErrInvalidRequestBodyMessage, http.StatusBadRequest)
		return
	}

	vendor, apiErr := c.service.UpdateVendorProfile(r.Context(), info.VendorID, body)
	if apiErr != nil {
		writeAPIError(w, apiErr)
		return
	}

	writeJSON(w, vendor, http.StatusOK)
}

func (c *Controller) GetStats(w http.ResponseWriter, r *http.Request) {
	info, ok := tokenInfo(w, r)
	if !ok {
		return
	}

	stats, apiErr := c.service.GetVendorStats(r.Context(), info.VendorID)
	if apiErr != nil {
		writeAPIError(w, apiErr)
		return
	}

	writeJSON(w, stats, http.StatusOK)
}

func (c *Controller) GetOrders(w http.ResponseWriter, r *http.Request) {
	info, ok := tokenInfo(w, r)
	if !ok {
		return
	}

	filter := model.OrderFilter{Status: model.OrderStatus(r.URL.Query().Get("status"))}

	if raw := r.URL.Query().Get("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil {
			http.Error(w, "invalid limit", http.StatusBadRequest)
			return
		}
		filter.Limit = limit
	}

	orders, apiErr := c.service.GetOrders(r.Context(), info.VendorID, filter)
	if apiErr != nil {
		writeAPIError(w, apiErr)
		return
	}

	writeJSON(w, orders, http.StatusOK)
}

func (c *Controller) TransitionOrder(w http.ResponseWriter, r *http.Request) {
	info, ok := tokenInfo(w, r)
	if !ok {
		return
	}

	body, err := readBody[model.TransitionOrderDTO](r)
	if err != nil {
		c.lg.Warnf("failed to parse request body: %v", err)
		writeTransition(w, nil, &model.APIError{Code: http.StatusBadRequest, Message: model.ErrInvalidRequestBodyMessage})
		return
	}

	order, apiErr := c.service.TransitionOrder(r.Context(), info.VendorID, chi.URLParam(r, "id"), body.Status)
	writeTransition(w, order, apiErr)
}

func (c *Controller) AcceptOrder(w http.ResponseWriter, r *http.Request) {
	c.fixedTransition(w, r, c.service.AcceptOrder)
}

func (c *Controller) DeclineOrder(w http.ResponseWriter, r *http.Request) {
	c.fixedTransition(w, r, c.service.DeclineOrder)
}

func (c *Controller) MarkOrderPreparing(w http.ResponseWriter, r *http.Request) {
	c.fixedTransition(w, r, c.service.MarkOrderPreparing)
}

func (c *Controller) MarkOrderReady(w http.ResponseWriter, r *http.Request) {
	c.fixedTransition(w, r, c.service.MarkOrderReady)
}

type transitionFunc func(ctx context.Context, vendorID uuid.UUID, orderID string) (*model.OrderWithContext, *model.APIError)

func (c *Controller) fixedTransition(w http.ResponseWriter, r *http.Request, transition transitionFunc) {
	info, ok := tokenInfo(w, r)
	if !ok {
		return
	}

	order, apiErr := transition(r.Context(), info.VendorID, chi.URLParam(r, "id"))
	writeTransition(w, order, apiErr)
}

func (c *Controller) GetMeals(w http.ResponseWriter, r *http.Request) {
	info, ok := tokenInfo(w, r)
	if !ok {
		return
	}

	meals, apiErr := c.service.GetMeals(r.Context(), info.VendorID)
	if apiErr != nil {
		writeAPIError(w, apiErr)
		return
	}

	writeJSON(w, meals, http.StatusOK)
}

func (c *Controller) CreateMeal(w http.ResponseWriter, r *http.Request) {
	info, ok := tokenInfo(w, r)
	if !ok {
		return
	}

	body, err := readBody[model.CreateMealDTO](r)
	if err != nil {
		c.lg.Warnf("failed to parse request body: %v", err)
		http.Error(w, model.ErrInvalidRequestBodyMessage, http.StatusBadRequest)
		return
	}

	meal, apiErr := c.service.CreateMeal(r.Context(), info.VendorID, body)
	if apiErr != nil {
		writeAPIError(w, apiErr)
		return
	}

	writeJSON(w, meal, http.StatusCreated)
}

func (c *Controller) UpdateMeal(w http.ResponseWriter, r *http.Request) {
	info, ok := tokenInfo(w, r)
	if !ok {
		return
	}

	body, err := readBody[model.UpdateMealDTO](r)
	if err != nil {
		c.lg.Warnf("failed to parse request body: %v", err)
		http.Error(w, model.ErrInvalidRequestBodyMessage, http.StatusBadRequest)
		return
	}

	meal, apiErr := c.service.UpdateMeal(r.Context(), info.VendorID, chi.URLParam(r, "id"), body)
	if apiErr != nil {
		writeAPIError(w, apiErr)
		return
	}

	writeJSON(w, meal, http.StatusOK)
}

func (c *Controller) ToggleMeal(w http.ResponseWriter, r *http.Request) {
	info, ok := tokenInfo(w, r)
	if !ok {
		return
	}

	meal, apiErr := c.service.ToggleMealAvailability(r.Context(), info.VendorID, chi.URLParam(r, "id"))
	if apiErr != nil {
		writeAPIError(w, apiErr)
		return
	}

	writeJSON(w, meal, http.StatusOK)
}

func (c *Controller) DeleteMeal(w http.ResponseWriter, r *http.Request) {
	info, ok := tokenInfo(w, r)
	if !ok {
		return
	}

	if apiErr := c.service.DeleteMeal(r.Context(), info.VendorID, chi.URLParam(r, "id")); apiErr != nil {
		writeAPIError(w, apiErr)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (c *Controller) GetPayouts(w http.ResponseWriter, r *http.Request) {
	info, ok := tokenInfo(w, r)
	if !ok {
		return
	}

	payouts, apiErr := c.service.GetPayouts(r.Context(), info.VendorID)
	if apiErr != nil {
		writeAPIError(w, apiErr)
		return
	}

	writeJSON(w, payouts, http.StatusOK)
}

func (c *Controller) GetHours(w http.ResponseWriter, r *http.Request) {
	info, ok := tokenInfo(w, r)
	if !ok {
		return
	}

	hours, apiErr := c.service.GetVendorHours(r.Context(), info.VendorID)
	if apiErr != nil {
		writeAPIError(w, apiErr)
		return
	}

	writeJSON(w, hours, http.StatusOK)
}

func (c *Controller) UpdateHour(w http.ResponseWriter, r *http.Request) {
	info, ok := tokenInfo(w, r)
	if !ok {
		return
	}

	body, err := readBody[model.UpdateVendorHourDTO](r)
	if err != nil {
		c.lg.Warnf("failed to parse request body: %v", err)
		http.Error(w, model.ErrInvalidRequestBodyMessage, http.StatusBadRequest)
		return
	}

	hour, apiErr := c.service.UpdateVendorHour(r.Context(), info.VendorID, chi.URLParam(r, "id"), body)
	if apiErr != nil {
		writeAPIError(w, apiErr)
		return
	}

	writeJSON(w, hour, http.StatusOK)
}

func (c *Controller) GetPreferences(w http.ResponseWriter, r *http.Request) {
	info, ok := tokenInfo(w, r)
	if !ok {
		return
	}

	prefs, apiErr := c.service.GetPreferences(r.Context(), info.VendorID)
	if apiErr != nil {
		writeAPIError(w, apiErr)
		return
	}

	writeJSON(w, prefs, http.StatusOK)
}

func (c *Controller) SavePreferences(w http.ResponseWriter, r *http.Request) {
	info, ok := tokenInfo(w, r)
	if !ok {
		return
	}

	body, err := readBody[model.NotificationPreferences](r)
	if err != nil {
		c.lg.Warnf("failed to parse request body: %v", err)
		http.Error(w, model.ErrInvalidRequestBodyMessage, http.StatusBadRequest)
		return
	}

	prefs, apiErr := c.service.SavePreferences(r.Context(), info.VendorID, body)
	if apiErr != nil {
		writeAPIError(w, apiErr)
		return
	}

	writeJSON(w, prefs, http.StatusOK)
}

func (c *Controller) RegisterDevice(w http.ResponseWriter, r *http.Request) {
	info, ok := tokenInfo(w, r)
	if !ok {
		return
	}

	body, err := readBody[model.RegisterDeviceDTO](r)
	if err != nil {
		c.lg.Warnf("failed to parse request body: %v", err)
		http.Error(w, model.ErrInvalidRequestBodyMessage, http.StatusBadRequest)
		return
	}

	if apiErr := c.service.RegisterDevice(r.Context(), info.UserID, body); apiErr != nil {
		writeAPIError(w, apiErr)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
