package http

import (
	"context"
	"net/http"
	"time"

	"github.com/gorilla/websocket"
)

const (
	wsWriteWait  = 10 * time.Second
	wsPongWait   = 60 * time.Second
	wsPingPeriod = (wsPongWait * 9) / 10
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// LiveOrders - websocket с изменениями заказов вендора (INSERT/UPDATE/DELETE)
func (c *Controller) LiveOrders(w http.ResponseWriter, r *http.Request) {
	info, ok := tokenInfo(w, r)
	if !ok {
		return
	}

	// После Hijack контекст запроса не отменяется при разрыве, поэтому свой
	ctx, cancel := context.WithCancel(c.feedsCtx)
	defer cancel()

	changes, apiErr := c.service.SubscribeOrders(ctx, info.VendorID)
	if apiErr != nil {
		writeAPIError(w, apiErr)
		return
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		c.lg.Warnf("websocket upgrade error: %v", err)
		return
	}
	defer conn.Close()

	conn.SetReadDeadline(time.Now().Add(wsPongWait))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(wsPongWait))
	})

	// Входящие сообщения не нужны, читаем только чтобы заметить закрытие
	go func() {
		defer cancel()
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	ticker := time.NewTicker(wsPingPeriod)
	defer ticker.Stop()

	c.lg.Infof("live orders feed opened for vendor %s", info.VendorID)
	defer c.lg.Infof("live orders feed closed for vendor %s", info.VendorID)

	for {
		select {
		case change, ok := <-changes:
			conn.SetWriteDeadline(time.Now().Add(wsWriteWait))
			if !ok {
				conn.WriteMessage(websocket.CloseMessage,
					websocket.FormatCloseMessage(websocket.CloseGoingAway, "feed closed"))
				return
			}

			if err := conn.WriteJSON(change); err != nil {
				c.lg.Warnf("websocket write error: %v", err)
				return
			}
		case <-ticker.C:
			if err := conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(wsWriteWait)); err != nil {
				return
			}
		case <-ctx.Done():
			if c.feedsCtx.Err() != nil {
				conn.WriteControl(websocket.CloseMessage,
					websocket.FormatCloseMessage(websocket.CloseGoingAway, "server shutting down"),
					time.Now().Add(wsWriteWait))
			}
			return
		}
	}
}
