package service

import (
	"context"

	"github.com/ibeloyar/chawp-vendor/internal/model"
	"github.com/ibeloyar/chawp-vendor/internal/notify"
)

// notifyCustomer - best effort: все токены покупателя одним вызовом
func (s *Service) notifyCustomer(ctx context.Context, order *model.OrderWithContext) {
	if s.notifier == nil {
		return
	}

	tokens, err := s.storage.GetPushTokens(ctx, order.CustomerID, model.DeviceTypeCustomer)
	if err != nil {
		s.lg.Warnf("get push tokens for customer %s error: %v", order.CustomerID, err)
	}

	var profileToken string
	if order.Customer != nil {
		profileToken = order.Customer.PushToken
	}

	msg := notify.Compose(order)
	msg.Tokens = notify.MergeTokens(tokens, []string{profileToken})

	if len(msg.Tokens) == 0 {
		s.lg.Debugf("no push destinations for order %s, notification skipped", order.ID)
		return
	}

	if err := s.notifier.Notify(ctx, msg); err != nil {
		s.lg.Errorf("notify customer about order %s error: %v", order.ID, err)
	}
}
