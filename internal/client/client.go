// Package client - HTTP клиент API вендора для vendorctl.
// Чтение идет через retryablehttp, записи отправляются один раз.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/ibeloyar/chawp-vendor/internal/model"
	"github.com/ibeloyar/chawp-vendor/pgk/retryablehttp"
)

const (
	defaultTimeout = 15 * time.Second
	maxErrorBody   = 512
)

var ErrUnauthorized = errors.New("not signed in or session expired")

type Client struct {
	baseURL string
	token   func() string

	reads  *retryablehttp.RetryableClient
	writes *http.Client
}

// New - клиент для baseURL; token вызывается на каждый запрос для заголовка Authorization, может вернуть ""
func New(baseURL string, token func() string) *Client {
	if token == nil {
		token = func() string { return "" }
	}

	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		token:   token,
		reads:   retryablehttp.NewRetryableClient(retryablehttp.RetryConfig{}),
		writes:  &http.Client{Timeout: defaultTimeout},
	}
}

func (c *Client) SignIn(ctx context.Context, email, password string) (*model.SignInResult, error) {
	var result model.SignInResult
	err := c.write(ctx, http.MethodPost, "/api/vendor/login", model.SignInDTO{Email: email, Password: password}, &result)
	if errors.Is(err, ErrUnauthorized) {
		return nil, model.ErrInvalidLoginOrPassword
	}
	if err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *Client) GetProfile(ctx context.Context) (*model.VendorProfile, error) {
	var vendor model.VendorProfile
	if err := c.read(ctx, "/api/vendor/profile", &vendor); err != nil {
		return nil, err
	}
	return &vendor, nil
}

func (c *Client) GetStats(ctx context.Context) (*model.VendorStats, error) {
	var stats model.VendorStats
	if err := c.read(ctx, "/api/vendor/stats", &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}

func (c *Client) GetOrders(ctx context.Context, filter model.OrderFilter) ([]model.OrderWithContext, error) {
	query := url.Values{}
	if filter.Status != "" {
		query.Set("status", filter.Status.String())
	}
	if filter.Limit > 0 {
		query.Set("limit", strconv.Itoa(filter.Limit))
	}

	path := "/api/vendor/orders"
	if len(query) > 0 {
		path += "?" + query.Encode()
	}

	var orders []model.OrderWithContext
	if err := c.read(ctx, path, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

// TransitionOrder - ответ сервера как есть: отклоненный переход это Success false, а не ошибка
func (c *Client) TransitionOrder(ctx context.Context, orderID string, status model.OrderStatus) (*model.TransitionResult, error) {
	return c.transition(ctx, orderID, "status", model.TransitionOrderDTO{Status: status})
}

func (c *Client) AcceptOrder(ctx context.Context, orderID string) (*model.TransitionResult, error) {
	return c.transition(ctx, orderID, "accept", nil)
}

func (c *Client) DeclineOrder(ctx context.Context, orderID string) (*model.TransitionResult, error) {
	return c.transition(ctx, orderID, "decline", nil)
}

func (c *Client) MarkOrderPreparing(ctx context.Context, orderID string) (*model.TransitionResult, error) {
	return c.transition(ctx, orderID, "preparing", nil)
}

func (c *Client) MarkOrderReady(ctx context.Context, orderID string) (*model.TransitionResult, error) {
	return c.transition(ctx, orderID, "ready", nil)
}

func (c *Client) transition(ctx context.Context, orderID, action string, body any) (*model.TransitionResult, error) {
	path := "/api/vendor/orders/" + url.PathEscape(orderID) + "/" + action

	resp, err := c.send(ctx, http.MethodPost, path, body)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized {
		return nil, ErrUnauthorized
	}

	var result model.TransitionResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("decode transition result (%s): %w", resp.Status, err)
	}
	return &result, nil
}

func (c *Client) read(ctx context.Context, path string, out any) error {
	req, err := http.NewRequest(http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return err
	}
	c.authorize(req)

	resp, err := c.reads.Do(ctx, req)
	if err != nil {
		// тело последнего ответа уже закрыто клиентом
		if resp != nil {
			return statusError(resp, "")
		}
		return err
	}
	defer resp.Body.Close()

	return decodeResponse(resp, out)
}

func (c *Client) write(ctx context.Context, method, path string, body, out any) error {
	resp, err := c.send(ctx, method, path, body)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	return decodeResponse(resp, out)
}

func (c *Client) send(ctx context.Context, method, path string, body any) (*http.Response, error) {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, err
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	c.authorize(req)

	return c.writes.Do(req)
}

func (c *Client) authorize(req *http.Request) {
	if token := c.token(); token != "" {
		req.Header.Set("Authorization", token)
	}
}

func decodeResponse(resp *http.Response, out any) error {
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return statusError(resp, string(body))
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func statusError(resp *http.Response, body string) error {
	if resp.StatusCode == http.StatusUnauthorized {
		return ErrUnauthorized
	}

	message := strings.TrimSpace(body)
	if message == "" {
		message = http.StatusText(resp.StatusCode)
	}
	return &model.APIError{Code: resp.StatusCode, Message: message}
}
