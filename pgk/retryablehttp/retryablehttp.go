package retryablehttp

import (
	"context"
	"fmt"
	"math/rand"
	"net/http"
	"strconv"
	"time"
)

// DefaultRetryAfter - если в ответе 429 нет пригодного Retry-After
const DefaultRetryAfter = 60 * time.Second

type RetryConfig struct {
	MaxRetries int           // Повторов после первой попытки (по умолчанию 3)
	BaseDelay  time.Duration // Базовая задержка (по умолчанию 100ms)
	MaxDelay   time.Duration // Максимальная задержка (по умолчанию 5s)
	MaxJitter  time.Duration // Максимальный jitter (по умолчанию 100ms)
}

type RetryableClient struct {
	client      *http.Client
	retryConfig RetryConfig
}

func NewRetryableClient(config RetryConfig) *RetryableClient {
	if config.MaxRetries == 0 {
		config.MaxRetries = 3
	}
	if config.BaseDelay == 0 {
		config.BaseDelay = 100 * time.Millisecond
	}
	if config.MaxDelay == 0 {
		config.MaxDelay = 5 * time.Second
	}
	if config.MaxJitter == 0 {
		config.MaxJitter = 100 * time.Millisecond
	}

	return &RetryableClient{
		client:      &http.Client{},
		retryConfig: config,
	}
}

// isRetryable определяет, нужно ли повторять попытку
func (c *RetryableClient) isRetryable(resp *http.Response, err error) bool {
	if err != nil {
		// Сетевые ошибки всегда повторяем
		return true
	}

	if resp == nil {
		return false
	}

	statusCode := resp.StatusCode
	return statusCode == 0 ||
		(statusCode >= 500 && statusCode <= 599) ||
		statusCode == http.StatusTooManyRequests ||
		statusCode == http.StatusRequestTimeout
}

// Do - запрос с повторами (сетевые ошибки, 5xx, 408, 429) и экспоненциальной задержкой.
// Тело запроса должно перечитываться через req.GetBody. Если все попытки неуспешны,
// возвращается последний ответ (тело уже закрыто) вместе с ошибкой.
func (c *RetryableClient) Do(ctx context.Context, req *http.Request) (*http.Response, error) {
	var resp *http.Response
	var err error

	req = req.WithContext(ctx)

	for attempt := 0; attempt <= c.retryConfig.MaxRetries; attempt++ {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}

		if attempt > 0 && req.Body != nil && req.GetBody != nil {
			body, bodyErr := req.GetBody()
			if bodyErr != nil {
				return nil, fmt.Errorf("rewind request body: %w", bodyErr)
			}
			req.Body = body
		}

		resp, err = c.client.Do(req)

		if err == nil && !c.isRetryable(resp, nil) {
			return resp, nil
		}

		if resp != nil && resp.Body != nil {
			resp.Body.Close()
		}

		if ctx.Err() != nil {
			return nil, ctx.Err()
		}

		if attempt == c.retryConfig.MaxRetries {
			if resp != nil {
				return resp, fmt.Errorf("last attempt failed: %s", resp.Status)
			}
			return nil, fmt.Errorf("last attempt failed: %w", err)
		}

		delay := c.backoffDelay(attempt)
		if resp != nil && resp.StatusCode == http.StatusTooManyRequests {
			if wait := RetryAfter(resp); wait > delay && wait <= c.retryConfig.MaxDelay {
				delay = wait
			}
		}

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(delay):
		}
	}

	return nil, fmt.Errorf("unexpected error")
}

// backoffDelay вычисляет задержку с экспоненциальным ростом и jitter
func (c *RetryableClient) backoffDelay(attempt int) time.Duration {
	backoff := time.Duration(1<<uint(attempt)) * c.retryConfig.BaseDelay
	if backoff > c.retryConfig.MaxDelay {
		backoff = c.retryConfig.MaxDelay
	}

	jitter := time.Duration(rand.Int63n(int64(c.retryConfig.MaxJitter)))
	return backoff + jitter
}

// RetryAfter - значение заголовка Retry-After (секунды или HTTP-дата)
func RetryAfter(resp *http.Response) time.Duration {
	if resp == nil {
		return DefaultRetryAfter
	}

	value := resp.Header.Get("Retry-After")
	if value == "" {
		return DefaultRetryAfter
	}

	if seconds, err := strconv.ParseInt(value, 10, 64); err == nil && seconds >= 0 {
		return time.Duration(seconds) * time.Second
	}

	if at, err := http.ParseTime(value); err == nil {
		if wait := time.Until(at); wait > 0 {
			return wait
		}
		return 0
	}

	return DefaultRetryAfter
}
