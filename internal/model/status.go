package model

import "fmt"

// OrderStatus - статус заказа (orders.status).
//
// Переходы, доступные вендору:
//
//	pending ──> confirmed ──> preparing ──> ready
//	   │            │             │
//	   └────────────┴─────────────┴──> cancelled
//
// delivering и delivered выставляет курьер, вендор их не пишет.
type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "pending"
	OrderStatusConfirmed  OrderStatus = "confirmed"
	OrderStatusPreparing  OrderStatus = "preparing"
	OrderStatusReady      OrderStatus = "ready"
	OrderStatusDelivering OrderStatus = "delivering"
	OrderStatusDelivered  OrderStatus = "delivered"
	OrderStatusCancelled  OrderStatus = "cancelled"
)

// statusSources - для каждого статуса, который пишет вендор, статусы, из которых он допустим
var statusSources = map[OrderStatus][]OrderStatus{
	OrderStatusPending:   {},
	OrderStatusConfirmed: {OrderStatusPending},
	OrderStatusPreparing: {OrderStatusConfirmed},
	OrderStatusReady:     {OrderStatusPreparing},
	OrderStatusCancelled: {OrderStatusPending, OrderStatusConfirmed, OrderStatusPreparing},
}

func ParseOrderStatus(s string) (OrderStatus, error) {
	status := OrderStatus(s)
	if !status.IsValid() {
		return "", fmt.Errorf("%s: %q", ErrOrderInvalidStatusMessage, s)
	}
	return status, nil
}

func (s OrderStatus) String() string {
	return string(s)
}

func (s OrderStatus) IsValid() bool {
	switch s {
	case OrderStatusPending, OrderStatusConfirmed, OrderStatusPreparing, OrderStatusReady,
		OrderStatusDelivering, OrderStatusDelivered, OrderStatusCancelled:
		return true
	default:
		return false
	}
}

// IsVendorTarget - может ли вендор запросить этот статус
func (s OrderStatus) IsVendorTarget() bool {
	_, ok := statusSources[s]
	return ok
}

// Sources - копия списка исходных статусов для s.
// Пусто для pending и для статусов, которые вендор не пишет.
func (s OrderStatus) Sources() []OrderStatus {
	src := statusSources[s]
	out := make([]OrderStatus, len(src))
	copy(out, src)
	return out
}

func (s OrderStatus) CanTransitionTo(target OrderStatus) bool {
	for _, src := range statusSources[target] {
		if src == s {
			return true
		}
	}
	return false
}

func StatusStrings(statuses []OrderStatus) []string {
	out := make([]string, 0, len(statuses))
	for _, s := range statuses {
		out = append(out, string(s))
	}
	return out
}
