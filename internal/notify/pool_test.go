package notify

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/ibeloyar/chawp-vendor/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type MockSender struct {
	mock.Mock
}

func (m *MockSender) Notify(ctx context.Context, msg model.PushMessage) error {
	args := m.Called(ctx, msg)
	return args.Error(0)
}

// blockingSender держит отправку, пока не закроют release
type blockingSender struct {
	started chan struct{}
	release chan struct{}
	once    sync.Once
}

func (s *blockingSender) Notify(ctx context.Context, _ model.PushMessage) error {
	s.once.Do(func() { close(s.started) })
	select {
	case <-s.release:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func message(orderID string) model.PushMessage {
	return model.PushMessage{
		Tokens: []string{"tok"},
		Title:  "Order Ready",
		Data:   map[string]string{"order_id": orderID},
	}
}

func TestNewPool(t *testing.T) {
	p := NewPool(&MockSender{}, 0, 0, zap.NewNop().Sugar())
	defer p.Shutdown(context.Background())

	assert.Equal(t, 1, p.numWorkers)
	assert.Equal(t, 1, cap(p.jobsQueue))
	assert.NotNil(t, p.pauseCond)
	assert.False(t, p.paused)
}

func TestPool_Notify_DeliversAllOnShutdown(t *testing.T) {
	sender := &MockSender{}
	sender.On("Notify", mock.Anything, mock.Anything).Return(nil).Times(3)

	p := NewPool(sender, 2, 8, zap.NewNop().Sugar())

	for _, id := range []string{"1", "2", "3"} {
		require.NoError(t, p.Notify(context.Background(), message(id)))
	}

	require.NoError(t, p.Shutdown(context.Background()))
	sender.AssertExpectations(t)
}

func TestPool_Notify_QueueFull(t *testing.T) {
	sender := &blockingSender{started: make(chan struct{}), release: make(chan struct{})}
	p := NewPool(sender, 1, 1, zap.NewNop().Sugar())

	require.NoError(t, p.Notify(context.Background(), message("1")))
	<-sender.started // воркер занят первым сообщением

	require.NoError(t, p.Notify(context.Background(), message("2")))
	assert.ErrorIs(t, p.Notify(context.Background(), message("3")), ErrQueueFull)

	close(sender.release)
	require.NoError(t, p.Shutdown(context.Background()))
}

func TestPool_Notify_AfterShutdown(t *testing.T) {
	p := NewPool(&MockSender{}, 1, 1, zap.NewNop().Sugar())
	require.NoError(t, p.Shutdown(context.Background()))

	assert.ErrorIs(t, p.Notify(context.Background(), message("1")), ErrPoolClosed)
	// повторный Shutdown не паникует
	assert.NoError(t, p.Shutdown(context.Background()))
}

func TestPool_Shutdown_Timeout(t *testing.T) {
	sender := &blockingSender{started: make(chan struct{}), release: make(chan struct{})}
	p := NewPool(sender, 1, 4, zap.NewNop().Sugar())

	require.NoError(t, p.Notify(context.Background(), message("1")))
	require.NoError(t, p.Notify(context.Background(), message("2")))
	<-sender.started

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	start := time.Now()
	err := p.Shutdown(ctx)

	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Less(t, time.Since(start), time.Second)
}

func TestPool_RateLimitPausesPool(t *testing.T) {
	sender := &MockSender{}
	sender.On("Notify", mock.Anything, message("1")).
		Return(&RateLimitError{RetryAfter: 100 * time.Millisecond}).Once()
	sender.On("Notify", mock.Anything, message("2")).Return(nil).Once()

	p := NewPool(sender, 1, 4, zap.NewNop().Sugar())

	require.NoError(t, p.Notify(context.Background(), message("1")))

	assert.Eventually(t, func() bool {
		p.pauseMu.Lock()
		defer p.pauseMu.Unlock()
		return p.paused
	}, time.Second, 5*time.Millisecond)

	require.NoError(t, p.Notify(context.Background(), message("2")))

	assert.Eventually(t, func() bool {
		p.pauseMu.Lock()
		defer p.pauseMu.Unlock()
		return !p.paused
	}, time.Second, 5*time.Millisecond)

	require.NoError(t, p.Shutdown(context.Background()))
	sender.AssertExpectations(t)
}

func TestPausePoolWithTimer(t *testing.T) {
	p := NewPool(&MockSender{}, 1, 1, zap.NewNop().Sugar())
	defer p.Shutdown(context.Background())

	// пауза
	p.pausePoolWithTimer(100 * time.Millisecond)

	p.pauseMu.Lock()
	assert.True(t, p.paused)
	p.pauseMu.Unlock()

	// возобновление
	time.Sleep(150 * time.Millisecond)

	p.pauseMu.Lock()
	assert.False(t, p.paused)
	p.pauseMu.Unlock()
}

func TestPauseResumeRaceCondition(t *testing.T) {
	p := NewPool(&MockSender{}, 2, 2, zap.NewNop().Sugar())
	defer p.Shutdown(context.Background())

	var wg sync.WaitGroup

	// многократные паузы/возобновления
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			p.pausePoolWithTimer(20 * time.Millisecond)
		}()
	}

	wg.Wait()

	assert.Eventually(t, func() bool {
		p.pauseMu.Lock()
		defer p.pauseMu.Unlock()
		return !p.paused
	}, time.Second, 5*time.Millisecond)
}
