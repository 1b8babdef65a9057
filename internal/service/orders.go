package service

import (
	"context"
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/ibeloyar/chawp-vendor/internal/model"
)

// TransitionOrder - смена статуса заказа вендором с уведомлением покупателя.
// Результат определяется только обновлением в БД: ошибки уведомления логируются и не возвращаются.
func (s *Service) TransitionOrder(ctx context.Context, vendorID uuid.UUID, orderID string, target model.OrderStatus) (*model.OrderWithContext, *model.APIError) {
	id, apiErr := parseID(orderID, model.ErrOrderInvalidIDMessage)
	if apiErr != nil {
		return nil, apiErr
	}

	if !target.IsVendorTarget() {
		return nil, badRequest(model.ErrOrderInvalidStatusMessage + ": " + target.String())
	}

	order, err := s.storage.UpdateOrderStatus(ctx, vendorID, id, target, target.Sources())
	if err != nil {
		switch {
		case errors.Is(err, model.ErrOrderNotFound):
			return nil, notFound(model.ErrOrderNotFoundMessage)
		case errors.Is(err, model.ErrInvalidStatusTransition):
			return nil, &model.APIError{
				Code:    http.StatusConflict,
				Message: err.Error(),
			}
		}
		s.lg.Errorf("update order %s status to %s error: %v", id, target, err)
		return nil, internalError()
	}

	s.notifyCustomer(ctx, order)

	return order, nil
}

func (s *Service) AcceptOrder(ctx context.Context, vendorID uuid.UUID, orderID string) (*model.OrderWithContext, *model.APIError) {
	return s.TransitionOrder(ctx, vendorID, orderID, model.OrderStatusConfirmed)
}

func (s *Service) DeclineOrder(ctx context.Context, vendorID uuid.UUID, orderID string) (*model.OrderWithContext, *model.APIError) {
	return s.TransitionOrder(ctx, vendorID, orderID, model.OrderStatusCancelled)
}

func (s *Service) MarkOrderPreparing(ctx context.Context, vendorID uuid.UUID, orderID string) (*model.OrderWithContext, *model.APIError) {
	return s.TransitionOrder(ctx, vendorID, orderID, model.OrderStatusPreparing)
}

func (s *Service) MarkOrderReady(ctx context.Context, vendorID uuid.UUID, orderID string) (*model.OrderWithContext, *model.APIError) {
	return s.TransitionOrder(ctx, vendorID, orderID, model.OrderStatusReady)
}

func (s *Service) GetOrders(ctx context.Context, vendorID uuid.UUID, filter model.OrderFilter) ([]model.OrderWithContext, *model.APIError) {
	if filter.Status != "" && !filter.Status.IsValid() {
		return nil, badRequest(model.ErrOrderInvalidStatusMessage + ": " + filter.Status.String())
	}
	if filter.Limit < 0 {
		return nil, badRequest("limit must not be negative")
	}

	orders, err := s.storage.GetOrdersByVendor(ctx, vendorID, filter)
	if err != nil {
		s.lg.Errorf("get orders of vendor %s error: %v", vendorID, err)
		return nil, internalError()
	}

	return orders, nil
}

// SubscribeOrders - поток изменений заказов вендора до завершения ctx
func (s *Service) SubscribeOrders(ctx context.Context, vendorID uuid.UUID) (<-chan model.OrderChange, *model.APIError) {
	changes, err := s.storage.SubscribeVendorOrders(ctx, vendorID)
	if err != nil {
		s.lg.Errorf("subscribe to orders of vendor %s error: %v", vendorID, err)
		return nil, internalError()
	}

	return changes, nil
}
