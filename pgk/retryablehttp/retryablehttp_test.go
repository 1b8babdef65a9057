package retryablehttp

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fastConfig(retries int) RetryConfig {
	return RetryConfig{
		MaxRetries: retries,
		BaseDelay:  time.Millisecond,
		MaxDelay:   10 * time.Millisecond,
		MaxJitter:  time.Millisecond,
	}
}

func TestNewRetryableClient_Config(t *testing.T) {
	defaults := NewRetryableClient(RetryConfig{})
	assert.Equal(t, RetryConfig{
		MaxRetries: 3,
		BaseDelay:  100 * time.Millisecond,
		MaxDelay:   5 * time.Second,
		MaxJitter:  100 * time.Millisecond,
	}, defaults.retryConfig)

	custom := RetryConfig{MaxRetries: 5, BaseDelay: time.Second, MaxDelay: time.Minute, MaxJitter: time.Second}
	assert.Equal(t, custom, NewRetryableClient(custom).retryConfig)
}

func TestIsRetryable(t *testing.T) {
	client := NewRetryableClient(RetryConfig{})

	assert.True(t, client.isRetryable(nil, errors.New("dial tcp: connection refused")))
	assert.False(t, client.isRetryable(nil, nil))

	tests := map[int]bool{
		http.StatusOK:                  false,
		http.StatusNoContent:           false,
		http.StatusBadRequest:          false,
		http.StatusUnauthorized:        false,
		http.StatusNotFound:            false,
		http.StatusConflict:            false,
		http.StatusRequestTimeout:      true,
		http.StatusTooManyRequests:     true,
		http.StatusInternalServerError: true,
		http.StatusBadGateway:          true,
		http.StatusServiceUnavailable:  true,
		599:                            true,
	}

	for code, want := range tests {
		t.Run(strconv.Itoa(code), func(t *testing.T) {
			assert.Equal(t, want, client.isRetryable(&http.Response{StatusCode: code}, nil))
		})
	}
}

func TestBackoffDelay(t *testing.T) {
	client := &RetryableClient{retryConfig: RetryConfig{
		BaseDelay: 100 * time.Millisecond,
		MaxDelay:  time.Second,
		MaxJitter: 10 * time.Millisecond,
	}}

	tests := []struct {
		attempt int
		min     time.Duration
	}{
		{0, 100 * time.Millisecond},
		{1, 200 * time.Millisecond},
		{2, 400 * time.Millisecond},
		{3, 800 * time.Millisecond},
		{6, time.Second}, // потолок MaxDelay
	}

	for _, tt := range tests {
		delay := client.backoffDelay(tt.attempt)
		assert.GreaterOrEqual(t, delay, tt.min, "attempt %d", tt.attempt)
		assert.Less(t, delay, tt.min+10*time.Millisecond, "attempt %d", tt.attempt)
	}
}

func TestDo_Retries(t *testing.T) {
	tests := []struct {
		name      string
		statuses  []int
		retries   int
		wantCode  int
		wantCalls int32
		wantErr   bool
	}{
		{name: "first try", statuses: []int{http.StatusOK}, retries: 3, wantCode: http.StatusOK, wantCalls: 1},
		{name: "client error is final", statuses: []int{http.StatusBadRequest}, retries: 3, wantCode: http.StatusBadRequest, wantCalls: 1},
		{name: "unavailable then ok", statuses: []int{http.StatusServiceUnavailable, http.StatusOK}, retries: 1, wantCode: http.StatusOK, wantCalls: 2},
		{name: "rate limited then ok", statuses: []int{http.StatusTooManyRequests, http.StatusOK}, retries: 1, wantCode: http.StatusOK, wantCalls: 2},
		{name: "gives up", statuses: []int{http.StatusInternalServerError}, retries: 2, wantCode: http.StatusInternalServerError, wantCalls: 3, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var calls atomic.Int32
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				n := int(calls.Add(1)) - 1
				if n >= len(tt.statuses) {
					n = len(tt.statuses) - 1
				}
				w.Header().Set("Retry-After", "0")
				w.WriteHeader(tt.statuses[n])
			}))
			defer server.Close()

			req, err := http.NewRequest(http.MethodGet, server.URL+"/api/vendor/stats", nil)
			require.NoError(t, err)

			resp, err := NewRetryableClient(fastConfig(tt.retries)).Do(context.Background(), req)

			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), "last attempt failed")
			} else {
				require.NoError(t, err)
				defer resp.Body.Close()
			}
			require.NotNil(t, resp)
			assert.Equal(t, tt.wantCode, resp.StatusCode)
			assert.Equal(t, tt.wantCalls, calls.Load())
		})
	}
}

func TestDo_NetworkErrorAfterRetries(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := server.URL
	server.Close()

	req, err := http.NewRequest(http.MethodGet, url, nil)
	require.NoError(t, err)

	resp, err := NewRetryableClient(fastConfig(1)).Do(context.Background(), req)

	assert.Error(t, err)
	assert.Nil(t, resp)
}

func TestDo_Context(t *testing.T) {
	t.Run("already cancelled", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			t.Error("request must not be sent")
		}))
		defer server.Close()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		req, _ := http.NewRequest(http.MethodGet, server.URL, nil)
		resp, err := NewRetryableClient(RetryConfig{}).Do(ctx, req)

		assert.ErrorIs(t, err, context.Canceled)
		assert.Nil(t, resp)
	})

	t.Run("deadline during request", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			select {
			case <-r.Context().Done():
			case <-time.After(time.Second):
			}
		}))
		defer server.Close()

		ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
		defer cancel()

		req, _ := http.NewRequest(http.MethodGet, server.URL, nil)
		resp, err := NewRetryableClient(RetryConfig{}).Do(ctx, req)

		assert.ErrorIs(t, err, context.DeadlineExceeded)
		assert.Nil(t, resp)
	})
}

func TestDo_RewindsBodyOnRetry(t *testing.T) {
	var bodies []string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		b, _ := io.ReadAll(r.Body)
		bodies = append(bodies, string(b))
		if len(bodies) == 1 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	client := NewRetryableClient(RetryConfig{MaxRetries: 1, BaseDelay: time.Millisecond, MaxJitter: time.Millisecond})
	req, err := http.NewRequest(http.MethodPost, server.URL, strings.NewReader(`{"tokens":["a"]}`))
	require.NoError(t, err)

	result, err := client.Do(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, result.StatusCode)
	assert.Equal(t, []string{`{"tokens":["a"]}`, `{"tokens":["a"]}`}, bodies)
}

func TestDo_RateLimitedReturnsLastResponse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Retry-After", "0")
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer server.Close()

	client := NewRetryableClient(RetryConfig{MaxRetries: 1, BaseDelay: time.Millisecond, MaxJitter: time.Millisecond})
	req, _ := http.NewRequest(http.MethodGet, server.URL, nil)

	result, err := client.Do(context.Background(), req)
	require.Error(t, err)
	require.NotNil(t, result)
	assert.Equal(t, http.StatusTooManyRequests, result.StatusCode)
}

func TestRetryAfter(t *testing.T) {
	tests := []struct {
		name   string
		header string
		want   time.Duration
	}{
		{name: "seconds", header: "30", want: 30 * time.Second},
		{name: "zero", header: "0", want: 0},
		{name: "missing", header: "", want: DefaultRetryAfter},
		{name: "garbage", header: "soon", want: DefaultRetryAfter},
		{name: "negative", header: "-5", want: DefaultRetryAfter},
		{name: "date in the past", header: "Mon, 02 Jan 2006 15:04:05 GMT", want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := &http.Response{Header: http.Header{}}
			if tt.header != "" {
				resp.Header.Set("Retry-After", tt.header)
			}
			assert.Equal(t, tt.want, RetryAfter(resp))
		})
	}

	assert.Equal(t, DefaultRetryAfter, RetryAfter(nil))
}

func TestRetryAfter_FutureDate(t *testing.T) {
	resp := &http.Response{Header: http.Header{}}
	resp.Header.Set("Retry-After", time.Now().Add(time.Hour).UTC().Format(http.TimeFormat))

	wait := RetryAfter(resp)

	assert.Greater(t, wait, 58*time.Minute)
	assert.LessOrEqual(t, wait, time.Hour)
}
