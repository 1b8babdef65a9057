package notify

import (
	"fmt"
	"strings"

	"github.com/ibeloyar/chawp-vendor/internal/model"
)

const (
	MessageTypeOrderStatusUpdate = "order_status_update"
	OrderUpdatesChannel          = "order-updates"

	defaultGivenName  = "Customer"
	defaultVendorName = "the restaurant"
	defaultItemTitle  = "an item"
	emptyItemsSummary = "your order"
)

// GivenName - имя для обращения: username, затем полное имя, затем "Customer".
// Берется только первое слово.
func GivenName(customer *model.CustomerProfile) string {
	if customer == nil {
		return defaultGivenName
	}

	for _, candidate := range []string{customer.Username, customer.FullName} {
		if fields := strings.Fields(candidate); len(fields) > 0 {
			return fields[0]
		}
	}

	return defaultGivenName
}

// SummarizeItems - "A", "A" and "B", "A" and N other items
func SummarizeItems(items []model.OrderItem) string {
	titles := make([]string, 0, len(items))
	for _, item := range items {
		title := strings.TrimSpace(item.Title)
		if title == "" {
			title = defaultItemTitle
		}
		titles = append(titles, title)
	}

	switch len(titles) {
	case 0:
		return emptyItemsSummary
	case 1:
		return fmt.Sprintf("%q", titles[0])
	case 2:
		return fmt.Sprintf("%q and %q", titles[0], titles[1])
	}

	return fmt.Sprintf("%q and %d other items", titles[0], len(titles)-1)
}

// MessageFor - заголовок и текст уведомления для статуса заказа
func MessageFor(status model.OrderStatus, givenName, vendorName, itemsSummary string) (title, body string) {
	if vendorName == "" {
		vendorName = defaultVendorName
	}

	switch status {
	case model.OrderStatusConfirmed:
		return "Order Confirmed",
			fmt.Sprintf("Good news, %s! %s has confirmed your order of %s.", givenName, vendorName, itemsSummary)
	case model.OrderStatusPreparing:
		return "Order Being Prepared",
			fmt.Sprintf("%s, %s is now preparing %s.", givenName, vendorName, itemsSummary)
	case model.OrderStatusReady:
		return "Order Ready",
			fmt.Sprintf("%s, %s from %s is ready!", givenName, itemsSummary, vendorName)
	case model.OrderStatusCancelled:
		return "Order Cancelled",
			fmt.Sprintf("Sorry %s, %s has cancelled your order of %s.", givenName, vendorName, itemsSummary)
	default:
		return "Order Update",
			fmt.Sprintf("%s, your order status has been updated to %s.", givenName, status)
	}
}

// Compose - готовое уведомление о смене статуса заказа без адресатов
func Compose(order *model.OrderWithContext) model.PushMessage {
	title, body := MessageFor(order.Status, GivenName(order.Customer), order.VendorName, SummarizeItems(order.Items))

	return model.PushMessage{
		Title: title,
		Body:  body,
		Data: map[string]string{
			"order_id":  order.ID.String(),
			"type":      MessageTypeOrderStatusUpdate,
			"status":    order.Status.String(),
			"channelId": OrderUpdatesChannel,
		},
	}
}

// MergeTokens - объединяет токены без пустых значений и повторов, сохраняя порядок
func MergeTokens(groups ...[]string) []string {
	seen := make(map[string]struct{})
	result := make([]string, 0)

	for _, group := range groups {
		for _, token := range group {
			token = strings.TrimSpace(token)
			if token == "" {
				continue
			}
			if _, ok := seen[token]; ok {
				continue
			}
			seen[token] = struct{}{}
			result = append(result, token)
		}
	}

	return result
}
