package model

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseOrderStatus(t *testing.T) {
	for _, s := range []string{"pending", "confirmed", "preparing", "ready", "delivering", "delivered", "cancelled"} {
		t.Run(s, func(t *testing.T) {
			status, err := ParseOrderStatus(s)
			require.NoError(t, err)
			assert.Equal(t, OrderStatus(s), status)
		})
	}

	for _, s := range []string{"", "PENDING", "shipped", "ready "} {
		t.Run("invalid_"+s, func(t *testing.T) {
			_, err := ParseOrderStatus(s)
			assert.Error(t, err)
		})
	}
}

func TestOrderStatus_IsVendorTarget(t *testing.T) {
	assert.True(t, OrderStatusPending.IsVendorTarget())
	assert.True(t, OrderStatusConfirmed.IsVendorTarget())
	assert.True(t, OrderStatusPreparing.IsVendorTarget())
	assert.True(t, OrderStatusReady.IsVendorTarget())
	assert.True(t, OrderStatusCancelled.IsVendorTarget())

	assert.False(t, OrderStatusDelivering.IsVendorTarget())
	assert.False(t, OrderStatusDelivered.IsVendorTarget())
	assert.False(t, OrderStatus("unknown").IsVendorTarget())
}

func TestOrderStatus_CanTransitionTo(t *testing.T) {
	tests := []struct {
		from, to OrderStatus
		ok       bool
	}{
		{OrderStatusPending, OrderStatusConfirmed, true},
		{OrderStatusConfirmed, OrderStatusPreparing, true},
		{OrderStatusPreparing, OrderStatusReady, true},
		{OrderStatusPending, OrderStatusCancelled, true},
		{OrderStatusConfirmed, OrderStatusCancelled, true},
		{OrderStatusPreparing, OrderStatusCancelled, true},

		{OrderStatusConfirmed, OrderStatusPending, false},
		{OrderStatusReady, OrderStatusPreparing, false},
		{OrderStatusReady, OrderStatusCancelled, false},
		{OrderStatusCancelled, OrderStatusConfirmed, false},
		{OrderStatusPending, OrderStatusReady, false},
		{OrderStatusReady, OrderStatusReady, false},
		{OrderStatusPreparing, OrderStatusDelivering, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.from)+"->"+string(tt.to), func(t *testing.T) {
			assert.Equal(t, tt.ok, tt.from.CanTransitionTo(tt.to))
		})
	}
}

func TestOrderStatus_SourcesIsACopy(t *testing.T) {
	src := OrderStatusCancelled.Sources()
	require.Len(t, src, 3)

	src[0] = OrderStatusReady

	assert.Equal(t, OrderStatusPending, OrderStatusCancelled.Sources()[0])
	assert.Empty(t, OrderStatusPending.Sources())
	assert.Empty(t, OrderStatusDelivered.Sources())
}

func TestDefaultVendorHours(t *testing.T) {
	hours := DefaultVendorHours(uuid.New())

	require.Len(t, hours, DaysInWeek)
	for i, h := range hours {
		assert.Equal(t, i, h.DayOfWeek)
		assert.False(t, h.IsClosed)
		assert.Equal(t, DefaultOpenTime, h.OpenTime)
		assert.Equal(t, DefaultCloseTime, h.CloseTime)
	}
}
