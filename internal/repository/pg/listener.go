package pg

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/ibeloyar/chawp-vendor/internal/model"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

const (
	orderChangesChannel = "vendor_order_changes"

	// буфер на подписчика; кто не успевает читать - отключается
	subscriberBuffer = 16
	listenRetryDelay = 2 * time.Second
)

var ErrFeedClosed = errors.New("order changes feed is closed")

// orderFeed - одно выделенное соединение с LISTEN (вне пула) и раздача
// уведомлений подписчикам по vendor_id
type orderFeed struct {
	mu     sync.Mutex
	subs   map[uuid.UUID]map[chan model.OrderChange]struct{}
	closed bool

	lg      *zap.SugaredLogger
	started bool
	stop    context.CancelFunc
	done    chan struct{}
}

func newOrderFeed(lg *zap.SugaredLogger) *orderFeed {
	return &orderFeed{
		subs: make(map[uuid.UUID]map[chan model.OrderChange]struct{}),
		lg:   lg,
		stop: func() {},
		done: make(chan struct{}),
	}
}

// start - запускает слушателя; переподключается, пока не вызван Close
func (f *orderFeed) start(databaseURI string) {
	ctx, cancel := context.WithCancel(context.Background())
	f.stop = cancel
	f.started = true

	go func() {
		defer close(f.done)

		for {
			err := f.listen(ctx, databaseURI)
			if ctx.Err() != nil {
				return
			}

			f.lg.Errorf("order changes listener stopped, reconnect in %s: %v", listenRetryDelay, err)

			select {
			case <-ctx.Done():
				return
			case <-time.After(listenRetryDelay):
			}
		}
	}()
}

func (f *orderFeed) listen(ctx context.Context, databaseURI string) error {
	conn, err := pgx.Connect(ctx, databaseURI)
	if err != nil {
		return err
	}
	defer conn.Close(context.Background())

	if _, err := conn.Exec(ctx, "LISTEN "+orderChangesChannel); err != nil {
		return err
	}

	for {
		notification, err := conn.WaitForNotification(ctx)
		if err != nil {
			return err
		}

		f.dispatch(notification.Payload)
	}
}

func (f *orderFeed) subscribe(ctx context.Context, vendorID uuid.UUID) (<-chan model.OrderChange, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.closed {
		return nil, ErrFeedClosed
	}

	ch := make(chan model.OrderChange, subscriberBuffer)
	if f.subs[vendorID] == nil {
		f.subs[vendorID] = make(map[chan model.OrderChange]struct{})
	}
	f.subs[vendorID][ch] = struct{}{}

	go func() {
		<-ctx.Done()
		f.unsubscribe(vendorID, ch)
	}()

	return ch, nil
}

func (f *orderFeed) unsubscribe(vendorID uuid.UUID, ch chan model.OrderChange) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.remove(vendorID, ch)
}

// remove - вызывается под f.mu
func (f *orderFeed) remove(vendorID uuid.UUID, ch chan model.OrderChange) {
	vendorSubs, ok := f.subs[vendorID]
	if !ok {
		return
	}
	if _, ok := vendorSubs[ch]; !ok {
		return
	}

	delete(vendorSubs, ch)
	if len(vendorSubs) == 0 {
		delete(f.subs, vendorID)
	}
	close(ch)
}

func (f *orderFeed) dispatch(payload string) {
	var change model.OrderChange
	if err := json.Unmarshal([]byte(payload), &change); err != nil {
		f.lg.Warnf("skip malformed order change %q: %v", payload, err)
		return
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	for ch := range f.subs[change.VendorID] {
		select {
		case ch <- change:
		default:
			f.lg.Warnf("order changes subscriber for vendor %s is too slow, disconnecting", change.VendorID)
			f.remove(change.VendorID, ch)
		}
	}
}

// Close - останавливает слушателя и закрывает каналы всех подписчиков
func (f *orderFeed) Close() {
	f.mu.Lock()
	if f.closed {
		f.mu.Unlock()
		return
	}
	f.closed = true
	for vendorID, vendorSubs := range f.subs {
		for ch := range vendorSubs {
			close(ch)
		}
		delete(f.subs, vendorID)
	}
	f.mu.Unlock()

	f.stop()
	if f.started {
		<-f.done
	}
}

// SubscribeVendorOrders - изменения заказов вендора (триггер orders_notify_change).
// Канал закрывается, когда ctx завершен, подписчик не успевает читать или хранилище остановлено.
func (r *Repository) SubscribeVendorOrders(ctx context.Context, vendorID uuid.UUID) (<-chan model.OrderChange, error) {
	if r.feed == nil {
		return nil, ErrFeedClosed
	}

	return r.feed.subscribe(ctx, vendorID)
}
