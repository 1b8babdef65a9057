package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/ibeloyar/chawp-vendor/internal/model"
	"github.com/ibeloyar/chawp-vendor/pgk/auth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newLiveServer(c *Controller) *httptest.Server {
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		info := &model.TokenInfo{UserID: testUserID, VendorID: testVendorID}
		c.LiveOrders(w, r.WithContext(auth.WithTokenInfo(r.Context(), info)))
	}))
}

func TestController_LiveOrders(t *testing.T) {
	controller, mockSvc := newTestController(t)

	changes := make(chan model.OrderChange, 1)
	mockSvc.EXPECT().
		SubscribeOrders(gomock.Any(), testVendorID).
		Return((<-chan model.OrderChange)(changes), nil).
		Times(1)

	srv := newLiveServer(controller)
	defer srv.Close()

	conn, _, err := websocket.DefaultDialer.Dial("ws"+strings.TrimPrefix(srv.URL, "http"), nil)
	require.NoError(t, err)
	defer conn.Close()

	change := model.OrderChange{
		Event:     "UPDATE",
		OrderID:   uuid.New(),
		VendorID:  testVendorID,
		Status:    model.OrderStatusConfirmed,
		OldStatus: model.OrderStatusPending,
	}
	changes <- change

	conn.SetReadDeadline(time.Now().Add(5 * time.Second))

	var got model.OrderChange
	require.NoError(t, conn.ReadJSON(&got))
	assert.Equal(t, change, got)

	close(changes)

	_, _, err = conn.ReadMessage()
	require.Error(t, err)
	assert.True(t, websocket.IsCloseError(err, websocket.CloseGoingAway))
}

func TestController_LiveOrders_SubscribeFailed(t *testing.T) {
	controller, mockSvc := newTestController(t)

	mockSvc.EXPECT().
		SubscribeOrders(gomock.Any(), testVendorID).
		Return(nil, &model.APIError{Code: http.StatusInternalServerError, Message: model.ErrInternalServerMessage}).
		Times(1)

	srv := newLiveServer(controller)
	defer srv.Close()

	_, resp, err := websocket.DefaultDialer.Dial("ws"+strings.TrimPrefix(srv.URL, "http"), nil)
	require.Error(t, err)
	require.NotNil(t, resp)
	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
}

func TestController_LiveOrders_ClosedOnShutdown(t *testing.T) {
	controller, mockSvc := newTestController(t)

	changes := make(chan model.OrderChange)
	subscribed := make(chan struct{})
	mockSvc.EXPECT().
		SubscribeOrders(gomock.Any(), testVendorID).
		DoAndReturn(func(ctx context.Context, _ uuid.UUID) (<-chan model.OrderChange, *model.APIError) {
			close(subscribed)
			return changes, nil
		}).
		Times(1)

	srv := newLiveServer(controller)
	defer srv.Close()

	conn, _, err := websocket.DefaultDialer.Dial("ws"+strings.TrimPrefix(srv.URL, "http"), nil)
	require.NoError(t, err)
	defer conn.Close()

	<-subscribed
	controller.CloseLiveFeeds()

	conn.SetReadDeadline(time.Now().Add(5 * time.Second))
	_, _, err = conn.ReadMessage()
	require.Error(t, err)
	assert.True(t, websocket.IsCloseError(err, websocket.CloseGoingAway))
}
