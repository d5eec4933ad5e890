package rabbitmq

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/rafaelleal24/products-api/internal/adapters/config"
	"github.com/rafaelleal24/products-api/internal/core/logger"
	"github.com/rafaelleal24/products-api/internal/core/port"
)

var ErrUnknownExchange = errors.New("rabbitmq: exchange not declared")

// RabbitMQAdapter publishes outbox payloads. Each entity has its own
// exchange, named exchange.<entity>, and the event name is the routing key.
type RabbitMQAdapter struct {
	mu        sync.Mutex
	conn      *amqp.Connection
	channel   *amqp.Channel
	config    config.RabbitMQConfig
	exchanges map[string]struct{}
}

var _ port.BrokerPort = (*RabbitMQAdapter)(nil)

func NewRabbitMQAdapter(ctx context.Context, cfg config.RabbitMQConfig) (*RabbitMQAdapter, error) {
	adapter := &RabbitMQAdapter{
		config:    cfg,
		exchanges: make(map[string]struct{}, len(cfg.ExchangeConfigs)),
	}
	for _, ec := range cfg.ExchangeConfigs {
		adapter.exchanges[ec.Name] = struct{}{}
	}

	if err := adapter.connect(); err != nil {
		return nil, fmt.Errorf("failed to connect to RabbitMQ: %w", err)
	}

	logger.Info(ctx, "rabbitmq: connected", map[string]any{
		"exchanges": len(adapter.exchanges),
	})
	return adapter, nil
}

func ExchangeName(entityName string) string {
	return fmt.Sprintf("exchange.%s", entityName)
}

func (r *RabbitMQAdapter) connect() error {
	conn, err := amqp.Dial(r.config.URL)
	if err != nil {
		return fmt.Errorf("failed to dial: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return fmt.Errorf("failed to open channel: %w", err)
	}

	for _, ec := range r.config.ExchangeConfigs {
		if err := ch.ExchangeDeclare(ec.Name, ec.Type, ec.Durable, ec.AutoDelete, false, false, nil); err != nil {
			ch.Close()
			conn.Close()
			return fmt.Errorf("failed to declare exchange %s: %w", ec.Name, err)
		}
	}

	r.conn = conn
	r.channel = ch
	return nil
}

func (r *RabbitMQAdapter) reconnect() error {
	if r.channel != nil {
		r.channel.Close()
		r.channel = nil
	}
	if r.conn != nil {
		r.conn.Close()
		r.conn = nil
	}
	return r.connect()
}

// PublishRaw retries up to MaxRetries times, reconnecting between attempts.
// Publishing to an entity without a declared exchange fails immediately.
func (r *RabbitMQAdapter) PublishRaw(ctx context.Context, eventName, entityName string, data []byte) error {
	exchange := ExchangeName(entityName)
	if _, ok := r.exchanges[exchange]; !ok {
		return fmt.Errorf("%w: %s", ErrUnknownExchange, exchange)
	}

	msg := amqp.Publishing{
		ContentType:  "application/json",
		Body:         data,
		DeliveryMode: amqp.Persistent,
		Timestamp:    time.Now(),
		Type:         eventName,
	}

	var lastErr error
	for attempt := 0; attempt <= r.config.MaxRetries; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(r.config.RetryDelay):
			}
		}
		if err := ctx.Err(); err != nil {
			return err
		}

		if lastErr = r.publishOnce(ctx, exchange, eventName, msg); lastErr == nil {
			return nil
		}
		logger.Error(ctx, "rabbitmq: publish failed", lastErr, map[string]any{
			"attempt":  attempt + 1,
			"exchange": exchange,
			"event":    eventName,
		})
	}

	return fmt.Errorf("failed to publish after %d attempts: %w", r.config.MaxRetries+1, lastErr)
}

func (r *RabbitMQAdapter) publishOnce(ctx context.Context, exchange, routingKey string, msg amqp.Publishing) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.channel == nil {
		if err := r.reconnect(); err != nil {
			return fmt.Errorf("reconnect failed: %w", err)
		}
	}

	if err := r.channel.PublishWithContext(ctx, exchange, routingKey, false, false, msg); err != nil {
		r.channel = nil
		return err
	}
	return nil
}

func (r *RabbitMQAdapter) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	var errs []error
	if r.channel != nil {
		if err := r.channel.Close(); err != nil {
			errs = append(errs, fmt.Errorf("closing channel: %w", err))
		}
		r.channel = nil
	}
	if r.conn != nil {
		if err := r.conn.Close(); err != nil {
			errs = append(errs, fmt.Errorf("closing connection: %w", err))
		}
		r.conn = nil
	}
	return errors.Join(errs...)
}

func (r *RabbitMQAdapter) HealthCheck(_ context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.conn == nil || r.conn.IsClosed() {
		return fmt.Errorf("connection is closed")
	}
	if r.channel == nil {
		return fmt.Errorf("channel is nil")
	}
	return nil
}
