package main

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/google/uuid"
	"github.com/ibeloyar/chawp-vendor/internal/model"
	"github.com/ibeloyar/chawp-vendor/internal/session"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

var (
	testUserID   = uuid.MustParse("0b6f0d1e-5d2c-4b7a-8f33-6a1c2d3e4f50")
	testVendorID = uuid.MustParse("8d5e3c1a-3b4f-4e58-9a0d-2f3c1e6b7a10")
)

func run(t *testing.T, apiURL, dir string, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer
	argv := append([]string{"vendorctl", "--api", apiURL, "--session-dir", dir}, args...)
	err := newApp(&out, zap.NewNop().Sugar()).Run(argv)
	return out.String(), err
}

func fakeAPI(t *testing.T, transitions *atomic.Int32) *httptest.Server {
	mux := http.NewServeMux()

	mux.HandleFunc("POST /api/vendor/login", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(model.SignInResult{
			Token:  "Bearer token123",
			User:   model.User{ID: testUserID, Email: "vendor@example.com"},
			Vendor: model.VendorProfile{ID: testVendorID, UserID: testUserID, Name: "Mama Put", Status: "active"},
		})
	})
	mux.HandleFunc("GET /api/vendor/stats", func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer token123" {
			http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
			return
		}
		json.NewEncoder(w).Encode(model.VendorStats{TotalOrders: 7, PendingOrders: 1, TodayRevenue: decimal.NewFromInt(1500)})
	})
	mux.HandleFunc("GET /api/vendor/orders", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "pending", r.URL.Query().Get("status"))
		json.NewEncoder(w).Encode([]model.OrderWithContext{{
			Order: model.Order{
				ID:     uuid.MustParse("5f0c6f1e-7a9b-4c2d-8e3f-1a2b3c4d5e6f"),
				Status: model.OrderStatusPending,
				Items:  []model.OrderItem{{Quantity: 2, Title: "Jollof Rice"}},
			},
			Customer: &model.CustomerProfile{FullName: "Ada Obi"},
		}})
	})
	mux.HandleFunc("POST /api/vendor/orders/{id}/accept", func(w http.ResponseWriter, r *http.Request) {
		transitions.Add(1)
		json.NewEncoder(w).Encode(model.TransitionResult{
			Success: true,
			Data:    &model.OrderWithContext{Order: model.Order{ID: uuid.MustParse(r.PathValue("id")), Status: model.OrderStatusConfirmed}},
		})
	})
	mux.HandleFunc("POST /api/vendor/orders/{id}/status", func(w http.ResponseWriter, r *http.Request) {
		transitions.Add(1)
		w.WriteHeader(http.StatusConflict)
		json.NewEncoder(w).Encode(model.TransitionResult{Error: "status transition not allowed: ready -> confirmed"})
	})

	return httptest.NewServer(mux)
}

func TestVendorctl_LoginWhoamiLogout(t *testing.T) {
	var transitions atomic.Int32
	srv := fakeAPI(t, &transitions)
	defer srv.Close()

	dir := t.TempDir()

	out, err := run(t, srv.URL, dir, "login", "vendor@example.com", "secret123")
	require.NoError(t, err)
	assert.Contains(t, out, "signed in as Mama Put")

	// whoami работает без сети, из кеша
	out, err = run(t, "http://127.0.0.1:1", dir, "whoami")
	require.NoError(t, err)
	assert.Contains(t, out, "vendor@example.com")
	assert.Contains(t, out, "Mama Put")

	out, err = run(t, srv.URL, dir, "logout")
	require.NoError(t, err)
	assert.Contains(t, out, "signed out")

	_, err = run(t, srv.URL, dir, "whoami")
	assert.ErrorIs(t, err, errNotSignedIn)
}

func TestVendorctl_RequiresLogin(t *testing.T) {
	var transitions atomic.Int32
	srv := fakeAPI(t, &transitions)
	defer srv.Close()

	_, err := run(t, srv.URL, t.TempDir(), "stats")
	assert.ErrorIs(t, err, errNotSignedIn)
}

func TestVendorctl_StatsAndOrders(t *testing.T) {
	var transitions atomic.Int32
	srv := fakeAPI(t, &transitions)
	defer srv.Close()

	dir := t.TempDir()
	_, err := run(t, srv.URL, dir, "login", "vendor@example.com", "secret123")
	require.NoError(t, err)

	out, err := run(t, srv.URL, dir, "stats")
	require.NoError(t, err)
	assert.Contains(t, out, "1500.00")

	out, err = run(t, srv.URL, dir, "orders", "list", "--status", "pending")
	require.NoError(t, err)
	assert.Contains(t, out, "Ada Obi")
	assert.Contains(t, out, "2x Jollof Rice")
}

func TestVendorctl_OrdersAccept(t *testing.T) {
	var transitions atomic.Int32
	srv := fakeAPI(t, &transitions)
	defer srv.Close()

	dir := t.TempDir()
	_, err := run(t, srv.URL, dir, "login", "vendor@example.com", "secret123")
	require.NoError(t, err)

	out, err := run(t, srv.URL, dir, "orders", "accept", "5f0c6f1e-7a9b-4c2d-8e3f-1a2b3c4d5e6f")
	require.NoError(t, err)
	assert.Contains(t, out, "is now confirmed")
	assert.Equal(t, int32(1), transitions.Load())
}

func TestVendorctl_OrdersTransition_Rejected(t *testing.T) {
	var transitions atomic.Int32
	srv := fakeAPI(t, &transitions)
	defer srv.Close()

	dir := t.TempDir()
	_, err := run(t, srv.URL, dir, "login", "vendor@example.com", "secret123")
	require.NoError(t, err)

	_, err = run(t, srv.URL, dir, "orders", "transition", "5f0c6f1e-7a9b-4c2d-8e3f-1a2b3c4d5e6f", "confirmed")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status transition not allowed")
	assert.Equal(t, int32(1), transitions.Load(), "transitions are never retried")
}

func TestVendorctl_OrdersTransition_InvalidStatus(t *testing.T) {
	var transitions atomic.Int32
	srv := fakeAPI(t, &transitions)
	defer srv.Close()

	dir := t.TempDir()
	_, err := run(t, srv.URL, dir, "login", "vendor@example.com", "secret123")
	require.NoError(t, err)

	_, err = run(t, srv.URL, dir, "orders", "transition", "5f0c6f1e-7a9b-4c2d-8e3f-1a2b3c4d5e6f", "shipped")
	require.Error(t, err)
	assert.Equal(t, int32(0), transitions.Load())
}

func TestVendorctl_ExpiredSessionSignsOut(t *testing.T) {
	var transitions atomic.Int32
	srv := fakeAPI(t, &transitions)
	defer srv.Close()

	dir := t.TempDir()
	store, err := session.NewFileStore(dir)
	require.NoError(t, err)
	require.NoError(t, store.SaveIdentity(session.Identity{UserID: testUserID, Email: "vendor@example.com", Token: "Bearer expired"}))

	_, err = run(t, srv.URL, dir, "stats")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "session expired")

	identity, err := store.LoadIdentity()
	require.NoError(t, err)
	assert.Nil(t, identity)
}
