package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/ibeloyar/chawp-vendor/internal/model"
	"github.com/ibeloyar/chawp-vendor/pgk/retryablehttp"
)

var ErrNoTokens = errors.New("push message has no destination tokens")

// RateLimitError - функция отправки ответила 429, повторять не раньше RetryAfter
type RateLimitError struct {
	RetryAfter time.Duration
}

func (e *RateLimitError) Error() string {
	return fmt.Sprintf("push dispatch rate limited, retry after %s", e.RetryAfter)
}

const dispatchTimeout = 15 * time.Second

type PushClient struct {
	url    string
	key    string
	client *http.Client
}

// NewPushClient - без повторов: функция сама рассылает по токенам, повтор POST
// после 5xx или таймаута может продублировать уведомление
func NewPushClient(url, key string, client *http.Client) *PushClient {
	if client == nil {
		client = &http.Client{Timeout: dispatchTimeout}
	}

	return &PushClient{
		url:    url,
		key:    key,
		client: client,
	}
}

// Notify - один POST со всеми токенами
func (c *PushClient) Notify(ctx context.Context, msg model.PushMessage) error {
	if len(msg.Tokens) == 0 {
		return ErrNoTokens
	}

	payload, err := json.Marshal(msg)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(payload))
	if err != nil {
		return err
	}

	req.Header.Set("Content-Type", "application/json")
	if c.key != "" {
		req.Header.Set("Authorization", "Bearer "+c.key)
	}

	response, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("push dispatch request failed: %w", err)
	}
	defer response.Body.Close()

	if response.StatusCode == http.StatusTooManyRequests {
		return &RateLimitError{RetryAfter: retryablehttp.RetryAfter(response)}
	}

	if response.StatusCode < 200 || response.StatusCode > 299 {
		detail, _ := io.ReadAll(io.LimitReader(response.Body, 512))
		return fmt.Errorf("push dispatch failed: %s: %s", response.Status, bytes.TrimSpace(detail))
	}

	return nil
}
