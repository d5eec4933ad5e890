package main

import (
	"context"
	"net"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strconv"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"

	"github.com/rafaelleal24/products-api/internal/adapters/config"
	"github.com/rafaelleal24/products-api/internal/adapters/outbox"
	outboxmock "github.com/rafaelleal24/products-api/internal/adapters/outbox/mock"
	portmock "github.com/rafaelleal24/products-api/internal/core/port/mock"
)

func sqliteConfig(t *testing.T) *config.Config {
	t.Helper()
	cfg := config.NewConfig()
	cfg.Store.Driver = config.StoreDriverSQLite
	cfg.SQLite.Path = filepath.Join(t.TempDir(), "App_Data", "products.db")
	cfg.Redis.Enabled = false
	cfg.RabbitMQ.Enabled = false
	return cfg
}

func TestNewApplication_SQLite(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctx := context.Background()

	app, err := newApplication(ctx, sqliteConfig(t))
	if err != nil {
		t.Fatalf("expected application, got %v", err)
	}
	t.Cleanup(func() { _ = app.Close() })

	if app.relay != nil {
		t.Fatal("expected no outbox relay without a broker")
	}

	engine := app.router.Engine()

	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/v1/products",
		strings.NewReader(`{"name":"Pen","price":1.5,"deliveryPrice":0.5}`)))
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}

	rec = httptest.NewRecorder()
	engine.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/health", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected healthy store, got %d: %s", rec.Code, rec.Body.String())
	}
	if strings.Contains(rec.Body.String(), "redis") || strings.Contains(rec.Body.String(), "rabbitmq") {
		t.Fatalf("disabled dependencies must not be checked: %s", rec.Body.String())
	}
}

func TestNewApplication_ReopensExistingDatabase(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctx := context.Background()
	cfg := sqliteConfig(t)

	first, err := newApplication(ctx, cfg)
	if err != nil {
		t.Fatalf("first start: %v", err)
	}
	rec := httptest.NewRecorder()
	first.router.Engine().ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/v1/products",
		strings.NewReader(`{"name":"Persisted","price":1,"deliveryPrice":0}`)))
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
	if err := first.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	second, err := newApplication(ctx, cfg)
	if err != nil {
		t.Fatalf("second start: %v", err)
	}
	t.Cleanup(func() { _ = second.Close() })

	rec = httptest.NewRecorder()
	second.router.Engine().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/products?name=persisted", nil))
	if !strings.Contains(rec.Body.String(), `"name":"Persisted"`) {
		t.Fatalf("expected product to survive restart, got %s", rec.Body.String())
	}
}

func TestNewApplication_UnsupportedDriver(t *testing.T) {
	cfg := sqliteConfig(t)
	cfg.Store.Driver = "postgres"

	if _, err := newApplication(context.Background(), cfg); err == nil {
		t.Fatal("expected error for unsupported driver")
	}
}

func TestApplication_RunStopsOnCancel(t *testing.T) {
	gin.SetMode(gin.TestMode)
	cfg := sqliteConfig(t)
	cfg.HTTP.BindInterface = "127.0.0.1"
	cfg.HTTP.Port = "0"

	app, err := newApplication(context.Background(), cfg)
	if err != nil {
		t.Fatalf("expected application, got %v", err)
	}
	t.Cleanup(func() { _ = app.Close() })

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- app.Run(ctx) }()

	cancel()
	if err := <-done; err != nil {
		t.Fatalf("expected clean stop, got %v", err)
	}
}

func TestApplication_RunStopsRelayWhenListenFails(t *testing.T) {
	gin.SetMode(gin.TestMode)

	busy, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("setup: listen failed: %v", err)
	}
	t.Cleanup(func() { _ = busy.Close() })

	cfg := sqliteConfig(t)
	cfg.HTTP.BindInterface = "127.0.0.1"
	cfg.HTTP.Port = strconv.Itoa(busy.Addr().(*net.TCPAddr).Port)

	app, err := newApplication(context.Background(), cfg)
	if err != nil {
		t.Fatalf("expected application, got %v", err)
	}
	t.Cleanup(func() { _ = app.Close() })

	ctrl := gomock.NewController(t)
	repo := outboxmock.NewMockRepository(ctrl)
	broker := portmock.NewMockBrokerPort(ctrl)

	var drained atomic.Bool
	repo.EXPECT().FetchPending(gomock.Any(), gomock.Any()).DoAndReturn(func(context.Context, int) ([]outbox.Entry, error) {
		drained.Store(true)
		return nil, nil
	}).AnyTimes()
	app.relay = outbox.NewHandler(repo, broker, config.OutboxConfig{Interval: time.Hour, BatchSize: 10})

	done := make(chan error, 1)
	go func() { done <- app.Run(context.Background()) }()

	select {
	case err := <-done:
		if err == nil {
			t.Fatal("expected listen error on a busy port")
		}
	case <-time.After(10 * time.Second):
		t.Fatal("Run did not return after the listener failed")
	}

	if !drained.Load() {
		t.Fatal("expected the relay to stop and drain before Run returned")
	}
}
