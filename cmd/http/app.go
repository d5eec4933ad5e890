package main

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rafaelleal24/products-api/internal/adapters/config"
	adapthttp "github.com/rafaelleal24/products-api/internal/adapters/http"
	"github.com/rafaelleal24/products-api/internal/adapters/http/controllers"
	"github.com/rafaelleal24/products-api/internal/adapters/http/middleware"
	"github.com/rafaelleal24/products-api/internal/adapters/mongo"
	mongorepository "github.com/rafaelleal24/products-api/internal/adapters/mongo/repository"
	"github.com/rafaelleal24/products-api/internal/adapters/outbox"
	"github.com/rafaelleal24/products-api/internal/adapters/rabbitmq"
	"github.com/rafaelleal24/products-api/internal/adapters/redis"
	"github.com/rafaelleal24/products-api/internal/adapters/sqlite"
	sqliterepository "github.com/rafaelleal24/products-api/internal/adapters/sqlite/repository"
	"github.com/rafaelleal24/products-api/internal/core/domain"
	"github.com/rafaelleal24/products-api/internal/core/logger"
	"github.com/rafaelleal24/products-api/internal/core/port"
	"github.com/rafaelleal24/products-api/internal/core/service"
)

const (
	idempotencyPollInterval = time.Second
	idempotencyPollTimeout  = 10 * time.Second
)

// store groups what the services need from whichever driver is configured.
type store struct {
	products  port.ProductPort
	options   port.ProductOptionPort
	outbox    outbox.Repository
	txManager port.TransactionManager
	ping      func(ctx context.Context) error
	close     func() error
}

func openStore(ctx context.Context, cfg *config.Config) (*store, error) {
	switch cfg.Store.Driver {
	case config.StoreDriverMongo:
		client, err := mongo.NewConnection(cfg.Mongo)
		if err != nil {
			return nil, err
		}
		database := client.Database(cfg.Mongo.Database)
		if err := mongo.EnsureIndexes(ctx, database); err != nil {
			_ = mongo.Disconnect(client)
			return nil, err
		}
		logger.Info(ctx, "Connected to MongoDB", map[string]any{"database": cfg.Mongo.Database})
		return &store{
			products:  mongorepository.NewProductRepository(database),
			options:   mongorepository.NewProductOptionRepository(database),
			outbox:    mongorepository.NewOutboxRepository(database),
			txManager: mongo.NewTransactionManager(client),
			ping:      func(ctx context.Context) error { return mongo.Ping(ctx, client) },
			close:     func() error { return mongo.Disconnect(client) },
		}, nil
	case config.StoreDriverSQLite:
		db, err := sqlite.NewConnection(cfg.SQLite)
		if err != nil {
			return nil, err
		}
		logger.Info(ctx, "Opened SQLite database", map[string]any{"path": cfg.SQLite.Path})
		return &store{
			products:  sqliterepository.NewProductRepository(db),
			options:   sqliterepository.NewProductOptionRepository(db),
			outbox:    sqliterepository.NewOutboxRepository(db),
			txManager: sqlite.NewTransactionManager(db),
			ping:      func(ctx context.Context) error { return sqlite.Ping(ctx, db) },
			close:     func() error { return sqlite.Close(db) },
		}, nil
	default:
		return nil, fmt.Errorf("unsupported store driver %q", cfg.Store.Driver)
	}
}

// application owns every connection opened for the process.
type application struct {
	router  *adapthttp.Router
	relay   *outbox.Handler
	closers []func() error
}

func newApplication(ctx context.Context, cfg *config.Config) (_ *application, err error) {
	app := &application{}
	defer func() {
		if err != nil {
			_ = app.Close()
		}
	}()

	st, err := openStore(ctx, cfg)
	if err != nil {
		return nil, err
	}
	app.closers = append(app.closers, st.close)

	checkers := []controllers.HealthChecker{{Name: "store", Check: st.ping}}

	// caches, idempotency and rate limiting degrade to no-ops without Redis
	productCache := redis.NewNoopCache[domain.Product]()
	productIdempotencyCache := redis.NewNoopCache[service.IdempotencyEntry[domain.Product]]()
	optionIdempotencyCache := redis.NewNoopCache[service.IdempotencyEntry[domain.ProductOption]]()
	var rateLimiter middleware.RateLimiter
	if cfg.Redis.Enabled {
		redisClient, err := redis.NewConnection(ctx, cfg.Redis)
		if err != nil {
			return nil, err
		}
		app.closers = append(app.closers, redisClient.Close)
		checkers = append(checkers, controllers.HealthChecker{Name: "redis", Check: redisClient.Ping})

		productCache = redis.NewCache[domain.Product](redisClient, "product-cache")
		productIdempotencyCache = redis.NewCache[service.IdempotencyEntry[domain.Product]](redisClient, "idempotency-product")
		optionIdempotencyCache = redis.NewCache[service.IdempotencyEntry[domain.ProductOption]](redisClient, "idempotency-product-option")
		rateLimiter = redis.NewRateLimiter(redisClient)
	}

	// events go through the outbox only when there is a broker to relay them to
	events := outbox.NewNoopRecorder()
	if cfg.RabbitMQ.Enabled {
		broker, err := rabbitmq.NewRabbitMQAdapter(ctx, cfg.RabbitMQ)
		if err != nil {
			return nil, err
		}
		app.closers = append(app.closers, broker.Close)
		checkers = append(checkers, controllers.HealthChecker{Name: "rabbitmq", Check: broker.HealthCheck})

		events = outbox.NewRecorder(st.outbox)
		app.relay = outbox.NewHandler(st.outbox, broker, cfg.Outbox)
	}

	updateMode := domain.UpdateMode(cfg.Products.UpdateMode)
	productService := service.NewProductService(
		st.products,
		st.options,
		productCache,
		service.NewIdempotencyService(productIdempotencyCache, cfg.Products.IdempotencyTTL, idempotencyPollInterval, idempotencyPollTimeout),
		events,
		st.txManager,
		service.ProductSettings{UpdateMode: updateMode, CacheTTL: cfg.Products.CacheTTL},
	)
	optionService := service.NewProductOptionService(
		st.options,
		productService,
		service.NewIdempotencyService(optionIdempotencyCache, cfg.Products.IdempotencyTTL, idempotencyPollInterval, idempotencyPollTimeout),
		events,
		st.txManager,
		updateMode,
	)

	app.router = adapthttp.NewRouter(
		controllers.NewHealthController(checkers),
		controllers.NewProductController(productService),
		controllers.NewProductOptionController(optionService),
		rateLimiter,
		*cfg,
	)
	return app, nil
}

// Run serves HTTP until ctx is cancelled or the listener fails. Either way
// the outbox relay is stopped and waited for before Run returns, so Close
// never races a relay still using the store or the broker.
func (a *application) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	relayDone := make(chan struct{})
	if a.relay != nil {
		go func() {
			defer close(relayDone)
			a.relay.Start(ctx)
		}()
	} else {
		close(relayDone)
	}

	err := a.router.ListenAndServe(ctx)
	cancel()
	<-relayDone
	return err
}

// Close releases connections in reverse order of opening.
func (a *application) Close() error {
	var errs []error
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i](); err != nil {
			errs = append(errs, err)
		}
	}
	a.closers = nil
	return errors.Join(errs...)
}
