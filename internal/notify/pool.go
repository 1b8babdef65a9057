package notify

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/ibeloyar/chawp-vendor/internal/model"
	"go.uber.org/zap"
)

var (
	ErrQueueFull  = errors.New("notification queue is full")
	ErrPoolClosed = errors.New("notification pool is closed")
)

// Sender - то, что реально отправляет уведомление (обычно *PushClient)
type Sender interface {
	Notify(ctx context.Context, msg model.PushMessage) error
}

// Pool - очередь уведомлений перед Sender. Notify не блокируется: сообщение
// ставится в очередь, отправку выполняют воркеры. На RateLimitError весь пул
// встает на паузу на RetryAfter.
type Pool struct {
	sender Sender
	lg     *zap.SugaredLogger

	jobsQueue  chan model.PushMessage
	ctx        context.Context
	cancel     context.CancelFunc
	wg         sync.WaitGroup
	numWorkers int

	closeMu sync.RWMutex
	closed  bool

	pauseMu   sync.Mutex
	pauseCond *sync.Cond
	paused    bool
}

func NewPool(sender Sender, numWorkers, queueSize int, lg *zap.SugaredLogger) *Pool {
	if numWorkers < 1 {
		numWorkers = 1
	}
	if queueSize < 1 {
		queueSize = 1
	}

	ctx, cancel := context.WithCancel(context.Background())

	p := &Pool{
		sender:     sender,
		lg:         lg,
		jobsQueue:  make(chan model.PushMessage, queueSize),
		ctx:        ctx,
		cancel:     cancel,
		numWorkers: numWorkers,
	}

	p.pauseCond = sync.NewCond(&p.pauseMu)

	p.wg.Add(numWorkers)
	for i := 0; i < numWorkers; i++ {
		go func() {
			defer p.wg.Done()
			for msg := range p.jobsQueue {
				p.worker(msg)
			}
		}()
	}

	return p
}

// Notify - ставит сообщение в очередь. ctx вызывающего не используется:
// отправка идет после завершения запроса.
func (p *Pool) Notify(_ context.Context, msg model.PushMessage) error {
	p.closeMu.RLock()
	defer p.closeMu.RUnlock()

	if p.closed {
		return ErrPoolClosed
	}

	select {
	case p.jobsQueue <- msg:
		return nil
	default:
		return ErrQueueFull
	}
}

func (p *Pool) worker(msg model.PushMessage) {
	p.waitIfPaused()

	if p.ctx.Err() != nil {
		p.lg.Warnf("push notification for order %s dropped: pool stopped", msg.Data["order_id"])
		return
	}

	err := p.sender.Notify(p.ctx, msg)
	if err == nil {
		return
	}

	var rateLimitErr *RateLimitError
	if errors.As(err, &rateLimitErr) {
		p.lg.Warnf("push dispatch rate limited, pausing pool for %s", rateLimitErr.RetryAfter)
		p.pausePoolWithTimer(rateLimitErr.RetryAfter)
	}

	p.lg.Errorf("push notification for order %s failed: %v", msg.Data["order_id"], err)
}

func (p *Pool) waitIfPaused() {
	p.pauseMu.Lock()
	defer p.pauseMu.Unlock()

	for p.paused && p.ctx.Err() == nil {
		p.pauseCond.Wait() // БЛОКИРУЕМСЯ до resume
	}
}

func (p *Pool) pausePoolWithTimer(duration time.Duration) {
	p.pauseMu.Lock()
	defer p.pauseMu.Unlock()

	if p.paused {
		return
	}

	p.paused = true

	go func() {
		select {
		case <-time.After(duration):
		case <-p.ctx.Done():
		}
		p.resumePool()
	}()
}

func (p *Pool) resumePool() {
	p.pauseMu.Lock()
	defer p.pauseMu.Unlock()

	if !p.paused {
		return
	}

	p.paused = false

	// разблокируем все воркеры
	p.pauseCond.Broadcast()
}

// Shutdown - закрывает очередь и ждет, пока воркеры отправят оставшееся.
// Если ctx истек раньше, текущие отправки отменяются, остаток очереди отбрасывается.
func (p *Pool) Shutdown(ctx context.Context) error {
	p.closeMu.Lock()
	if !p.closed {
		p.closed = true
		close(p.jobsQueue)
	}
	p.closeMu.Unlock()

	done := make(chan struct{})
	go func() {
		defer close(done)
		p.wg.Wait()
	}()

	select {
	case <-done:
		p.cancel()
		p.lg.Info("notification pool stopped")
		return nil
	case <-ctx.Done():
		p.lg.Warn("notification pool force shutdown after timeout")
		p.cancel()
		p.resumePool()
		<-done
		return ctx.Err()
	}
}
