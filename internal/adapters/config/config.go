package config

import (
	"fmt"
	"time"

	"github.com/joho/godotenv"
)

const (
	StoreDriverSQLite = "sqlite"
	StoreDriverMongo  = "mongo"
)

type StoreConfig struct {
	Driver string
}

type SQLiteConfig struct {
	Path string
}

type MongoConfig struct {
	URI                    string
	Database               string
	Timeout                time.Duration
	MaxPoolSize            uint64
	MinPoolSize            uint64
	ConnectTimeout         time.Duration
	ServerSelectionTimeout time.Duration
	DirectConnection       bool
}

type RabbitMQConfig struct {
	Enabled         bool
	URL             string
	MaxRetries      int
	RetryDelay      time.Duration
	ExchangeConfigs []ExchangeConfig
}

type ExchangeConfig struct {
	Name       string
	Type       string // direct, topic, fanout, headers
	Durable    bool
	AutoDelete bool
}

type RedisConfig struct {
	Enabled  bool
	URL      string
	Password string
	DB       int
}

type OutboxConfig struct {
	BatchSize int
	Interval  time.Duration
}

type HTTPConfig struct {
	Port               string
	BindInterface      string
	CORSAllowedOrigins []string
}

type ProductsConfig struct {
	UpdateMode      string
	CacheTTL        time.Duration
	IdempotencyTTL  time.Duration
	RateLimitWrites int
}

type Config struct {
	Store    StoreConfig
	SQLite   SQLiteConfig
	Mongo    MongoConfig
	Redis    RedisConfig
	RabbitMQ RabbitMQConfig
	Outbox   OutboxConfig
	HTTP     HTTPConfig
	Products ProductsConfig
	Logger   LoggerConfig
}

type LoggerConfig struct {
	Level        string
	Endpoint     string
	ServiceName  string
	IsProduction bool
}

func NewConfig() *Config {
	_ = godotenv.Load()
	return &Config{
		Store: StoreConfig{
			Driver: getStringEnv("STORE_DRIVER", StoreDriverSQLite),
		},
		SQLite: SQLiteConfig{
			Path: getStringEnv("SQLITE_PATH", "App_Data/products.db"),
		},
		Mongo: MongoConfig{
			URI:                    getStringEnv("MONGO_URI", "mongodb://localhost:27017"),
			Database:               getStringEnv("MONGO_DATABASE", "products"),
			Timeout:                time.Duration(getIntEnv("MONGO_TIMEOUT", 10)) * time.Second,
			MaxPoolSize:            uint64(getIntEnv("MONGO_MAX_POOL_SIZE", 100)),
			MinPoolSize:            uint64(getIntEnv("MONGO_MIN_POOL_SIZE", 10)),
			ConnectTimeout:         time.Duration(getIntEnv("MONGO_CONNECT_TIMEOUT", 10)) * time.Second,
			ServerSelectionTimeout: time.Duration(getIntEnv("MONGO_SERVER_SELECTION_TIMEOUT", 5)) * time.Second,
			DirectConnection:       getBoolEnv("MONGO_DIRECT_CONNECTION", false),
		},
		Redis: RedisConfig{
			Enabled:  getBoolEnv("REDIS_ENABLED", false),
			URL:      getStringEnv("REDIS_URL", "redis://localhost:6379"),
			Password: getStringEnv("REDIS_PASSWORD", ""),
			DB:       getIntEnv("REDIS_DB", 0),
		},
		Outbox: OutboxConfig{
			BatchSize: getIntEnv("OUTBOX_BATCH_SIZE", 100),
			Interval:  time.Duration(getIntEnv("OUTBOX_INTERVAL", 500)) * time.Millisecond,
		},
		HTTP: HTTPConfig{
			Port:               getStringEnv("HTTP_PORT", "8080"),
			BindInterface:      getStringEnv("HTTP_BIND_INTERFACE", "0.0.0.0"),
			CORSAllowedOrigins: getListEnv("CORS_ALLOWED_ORIGINS", []string{"*"}),
		},
		RabbitMQ: RabbitMQConfig{
			Enabled:    getBoolEnv("RABBITMQ_ENABLED", false),
			URL:        getStringEnv("RABBITMQ_URL", "amqp://localhost:5672"),
			MaxRetries: getIntEnv("RABBITMQ_MAX_RETRIES", 3),
			RetryDelay: time.Duration(getIntEnv("RABBITMQ_RETRY_DELAY", 1)) * time.Second,
			ExchangeConfigs: []ExchangeConfig{
				{
					Name:       "exchange.product",
					Type:       getStringEnv("RABBITMQ_EXCHANGE_TYPE", "direct"),
					Durable:    getBoolEnv("RABBITMQ_EXCHANGE_DURABLE", true),
					AutoDelete: getBoolEnv("RABBITMQ_EXCHANGE_AUTO_DELETE", false),
				},
				{
					Name:       "exchange.product_option",
					Type:       getStringEnv("RABBITMQ_EXCHANGE_TYPE", "direct"),
					Durable:    getBoolEnv("RABBITMQ_EXCHANGE_DURABLE", true),
					AutoDelete: getBoolEnv("RABBITMQ_EXCHANGE_AUTO_DELETE", false),
				},
			},
		},
		Products: ProductsConfig{
			UpdateMode:      getStringEnv("PRODUCT_UPDATE_MODE", "merge"),
			CacheTTL:        time.Duration(getIntEnv("PRODUCT_CACHE_TTL", 300)) * time.Second,
			IdempotencyTTL:  time.Duration(getIntEnv("IDEMPOTENCY_TTL", 900)) * time.Second,
			RateLimitWrites: getIntEnv("RATE_LIMIT_WRITES", 60),
		},
		Logger: LoggerConfig{
			Level:        getStringEnv("LOG_LEVEL", "INFO"),
			Endpoint:     getStringEnv("OTEL_ENDPOINT", "localhost:4317"),
			ServiceName:  getStringEnv("OTEL_SERVICE_NAME", "products-api"),
			IsProduction: getBoolEnv("IS_PRODUCTION", false),
		},
	}
}

// Validate rejects settings that would otherwise only fail once traffic arrives.
func (c *Config) Validate() error {
	switch c.Store.Driver {
	case StoreDriverSQLite:
		if c.SQLite.Path == "" {
			return fmt.Errorf("SQLITE_PATH must not be empty")
		}
	case StoreDriverMongo:
	default:
		return fmt.Errorf("unsupported STORE_DRIVER %q", c.Store.Driver)
	}

	switch c.Products.UpdateMode {
	case "merge", "replace":
	default:
		return fmt.Errorf("unsupported PRODUCT_UPDATE_MODE %q", c.Products.UpdateMode)
	}

	if c.Products.RateLimitWrites < 0 {
		return fmt.Errorf("RATE_LIMIT_WRITES must not be negative")
	}
	return nil
}
