package config

import (
	"testing"
	"time"
)

func TestNewConfig_Defaults(t *testing.T) {
	cfg := NewConfig()

	if cfg.Store.Driver != StoreDriverSQLite {
		t.Fatalf("expected sqlite driver, got %q", cfg.Store.Driver)
	}
	if cfg.SQLite.Path != "App_Data/products.db" {
		t.Fatalf("unexpected sqlite path %q", cfg.SQLite.Path)
	}
	if cfg.Redis.Enabled || cfg.RabbitMQ.Enabled {
		t.Fatal("expected redis and rabbitmq to be disabled by default")
	}
	if cfg.Products.UpdateMode != "merge" {
		t.Fatalf("expected merge mode, got %q", cfg.Products.UpdateMode)
	}
	if cfg.Products.CacheTTL != 5*time.Minute {
		t.Fatalf("expected 5m cache ttl, got %v", cfg.Products.CacheTTL)
	}
	if len(cfg.HTTP.CORSAllowedOrigins) != 1 || cfg.HTTP.CORSAllowedOrigins[0] != "*" {
		t.Fatalf("unexpected cors origins %v", cfg.HTTP.CORSAllowedOrigins)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("expected defaults to be valid, got %v", err)
	}
}

func TestNewConfig_FromEnv(t *testing.T) {
	t.Setenv("STORE_DRIVER", "mongo")
	t.Setenv("REDIS_ENABLED", "true")
	t.Setenv("PRODUCT_UPDATE_MODE", "replace")
	t.Setenv("PRODUCT_CACHE_TTL", "30")
	t.Setenv("RATE_LIMIT_WRITES", "not-a-number")
	t.Setenv("CORS_ALLOWED_ORIGINS", "http://a.test, http://b.test,")

	cfg := NewConfig()

	if cfg.Store.Driver != StoreDriverMongo {
		t.Fatalf("expected mongo driver, got %q", cfg.Store.Driver)
	}
	if !cfg.Redis.Enabled {
		t.Fatal("expected redis enabled")
	}
	if cfg.Products.CacheTTL != 30*time.Second {
		t.Fatalf("expected 30s, got %v", cfg.Products.CacheTTL)
	}
	if cfg.Products.RateLimitWrites != 60 {
		t.Fatalf("expected default on parse failure, got %d", cfg.Products.RateLimitWrites)
	}
	if len(cfg.HTTP.CORSAllowedOrigins) != 2 || cfg.HTTP.CORSAllowedOrigins[1] != "http://b.test" {
		t.Fatalf("unexpected cors origins %v", cfg.HTTP.CORSAllowedOrigins)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("expected valid config, got %v", err)
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"unknown driver", func(c *Config) { c.Store.Driver = "postgres" }},
		{"empty sqlite path", func(c *Config) { c.SQLite.Path = "" }},
		{"unknown update mode", func(c *Config) { c.Products.UpdateMode = "patch" }},
		{"negative rate limit", func(c *Config) { c.Products.RateLimitWrites = -1 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := NewConfig()
			tt.mutate(cfg)
			if err := cfg.Validate(); err == nil {
				t.Fatal("expected validation error, got nil")
			}
		})
	}
}
