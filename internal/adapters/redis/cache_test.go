package redis_test

import (
	"context"
	"testing"
	"time"

	adaptredis "github.com/rafaelleal24/products-api/internal/adapters/redis"
	"github.com/rafaelleal24/products-api/internal/core/domain"
	"github.com/shopspring/decimal"
)

func TestCache_ProductRoundTrip(t *testing.T) {
	cache := adaptredis.NewCache[domain.Product](testClient, "test-products")
	ctx := context.Background()

	product := domain.NewProduct("Pen", "Blue pen", decimal.RequireFromString("1.50"), decimal.RequireFromString("0.05"))

	if err := cache.Set(ctx, string(product.ID), product, time.Minute); err != nil {
		t.Fatalf("expected no error on set, got %v", err)
	}

	got, err := cache.Get(ctx, string(product.ID))
	if err != nil {
		t.Fatalf("expected no error on get, got %v", err)
	}
	if got == nil {
		t.Fatal("expected product, got nil")
	}
	if got.ID != product.ID || got.Name != product.Name || got.Description != product.Description {
		t.Fatalf("expected %+v, got %+v", product, got)
	}
	if !got.Price.Equal(product.Price) || !got.DeliveryPrice.Equal(product.DeliveryPrice) {
		t.Fatalf("expected prices %s / %s, got %s / %s", product.Price, product.DeliveryPrice, got.Price, got.DeliveryPrice)
	}
	if !got.CreatedAt.Equal(product.CreatedAt) {
		t.Fatalf("expected createdAt %v, got %v", product.CreatedAt, got.CreatedAt)
	}
}

func TestCache_Get(t *testing.T) {
	cache := adaptredis.NewCache[domain.Product](testClient, "test-get")
	ctx := context.Background()

	t.Run("miss returns nil", func(t *testing.T) {
		got, err := cache.Get(ctx, "nonexistent-key")
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if got != nil {
			t.Fatalf("expected nil, got %+v", got)
		}
	})

	t.Run("ttl expires value", func(t *testing.T) {
		product := domain.NewProduct("Ephemeral", "", decimal.Zero, decimal.Zero)
		if err := cache.Set(ctx, "ttl-item", product, 100*time.Millisecond); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}

		time.Sleep(200 * time.Millisecond)

		got, err := cache.Get(ctx, "ttl-item")
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if got != nil {
			t.Fatalf("expected nil (expired), got %+v", got)
		}
	})

	t.Run("corrupt entry is evicted", func(t *testing.T) {
		if err := testClient.Set(ctx, "test-get:corrupt", "{not json", time.Minute); err != nil {
			t.Fatalf("setup: %v", err)
		}

		if _, err := cache.Get(ctx, "corrupt"); err == nil {
			t.Fatal("expected decode error, got nil")
		}

		got, err := cache.Get(ctx, "corrupt")
		if err != nil || got != nil {
			t.Fatalf("expected clean miss after eviction, got %+v / %v", got, err)
		}
	})
}

func TestCache_SetNX(t *testing.T) {
	cache := adaptredis.NewCache[domain.Product](testClient, "test-setnx")
	ctx := context.Background()

	first := domain.NewProduct("First", "", decimal.Zero, decimal.Zero)
	second := domain.NewProduct("Second", "", decimal.Zero, decimal.Zero)

	ok, err := cache.SetNX(ctx, "nx-key", first, time.Minute)
	if err != nil || !ok {
		t.Fatalf("expected first SetNX to succeed, got %v / %v", ok, err)
	}

	ok, err = cache.SetNX(ctx, "nx-key", second, time.Minute)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if ok {
		t.Fatal("expected SetNX to fail (key already exists)")
	}

	got, _ := cache.Get(ctx, "nx-key")
	if got == nil || got.Name != "First" {
		t.Fatalf("expected original entry, got %+v", got)
	}
}

func TestCache_Del(t *testing.T) {
	cache := adaptredis.NewCache[domain.Product](testClient, "test-del")
	ctx := context.Background()

	_ = cache.Set(ctx, "del-key", domain.NewProduct("Gone", "", decimal.Zero, decimal.Zero), time.Minute)

	if err := cache.Del(ctx, "del-key"); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if got, _ := cache.Get(ctx, "del-key"); got != nil {
		t.Fatalf("expected nil after delete, got %+v", got)
	}
	if err := cache.Del(ctx, "nonexistent-del-key"); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
}

func TestNoopCache(t *testing.T) {
	cache := adaptredis.NewNoopCache[domain.Product]()
	ctx := context.Background()
	product := domain.NewProduct("Pen", "", decimal.Zero, decimal.Zero)

	if err := cache.Set(ctx, "k", product, time.Minute); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if got, err := cache.Get(ctx, "k"); got != nil || err != nil {
		t.Fatalf("expected permanent miss, got %+v / %v", got, err)
	}
	for i := 0; i < 2; i++ {
		if ok, err := cache.SetNX(ctx, "k", product, time.Minute); !ok || err != nil {
			t.Fatalf("expected SetNX to always claim, got %v / %v", ok, err)
		}
	}
}
