package rabbitmq_test

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"os"
	"testing"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	tcrabbit "github.com/testcontainers/testcontainers-go/modules/rabbitmq"

	"github.com/rafaelleal24/products-api/internal/adapters/config"
	"github.com/rafaelleal24/products-api/internal/adapters/rabbitmq"
	"github.com/rafaelleal24/products-api/internal/core/domain"
)

var (
	testAdapter      *rabbitmq.RabbitMQAdapter
	testAmqpEndpoint string
)

func testConfig(maxRetries int) config.RabbitMQConfig {
	return config.RabbitMQConfig{
		Enabled:    true,
		URL:        testAmqpEndpoint,
		MaxRetries: maxRetries,
		RetryDelay: 100 * time.Millisecond,
		ExchangeConfigs: []config.ExchangeConfig{
			{Name: "exchange.product", Type: "direct", Durable: true},
			{Name: "exchange.product_option", Type: "direct", Durable: true},
		},
	}
}

func TestMain(m *testing.M) {
	ctx := context.Background()

	container, err := tcrabbit.Run(ctx, "rabbitmq:3-management-alpine")
	if err != nil {
		log.Fatalf("failed to start rabbitmq container: %v", err)
	}

	testAmqpEndpoint, err = container.AmqpURL(ctx)
	if err != nil {
		log.Fatalf("failed to get amqp url: %v", err)
	}

	testAdapter, err = rabbitmq.NewRabbitMQAdapter(ctx, testConfig(2))
	if err != nil {
		log.Fatalf("failed to create rabbitmq adapter: %v", err)
	}

	code := m.Run()

	_ = testAdapter.Close()
	_ = container.Terminate(ctx)

	os.Exit(code)
}

func consume(t *testing.T, exchange, routingKey string) <-chan amqp.Delivery {
	t.Helper()

	conn, err := amqp.Dial(testAmqpEndpoint)
	if err != nil {
		t.Fatalf("consumer dial failed: %v", err)
	}
	t.Cleanup(func() { conn.Close() })

	ch, err := conn.Channel()
	if err != nil {
		t.Fatalf("consumer channel failed: %v", err)
	}

	q, err := ch.QueueDeclare("", false, true, true, false, nil)
	if err != nil {
		t.Fatalf("queue declare failed: %v", err)
	}
	if err := ch.QueueBind(q.Name, routingKey, exchange, false, nil); err != nil {
		t.Fatalf("queue bind failed: %v", err)
	}

	msgs, err := ch.Consume(q.Name, "", true, false, false, false, nil)
	if err != nil {
		t.Fatalf("consume failed: %v", err)
	}
	return msgs
}

func TestRabbitMQAdapter_HealthCheck(t *testing.T) {
	t.Run("healthy after connection", func(t *testing.T) {
		if err := testAdapter.HealthCheck(context.Background()); err != nil {
			t.Fatalf("expected healthy, got %v", err)
		}
	})
}

func TestRabbitMQAdapter_PublishRaw(t *testing.T) {
	ctx := context.Background()

	t.Run("product event reaches the product exchange", func(t *testing.T) {
		msgs := consume(t, "exchange.product", domain.EventProductCreated)

		product := domain.NewProduct("Pen", "Blue pen", domain.NewAmountFromCents(150), domain.NewAmountFromCents(0))
		body, _ := json.Marshal(domain.NewProductEvent(domain.EventProductCreated, product, product.CreatedAt))

		if err := testAdapter.PublishRaw(ctx, domain.EventProductCreated, "product", body); err != nil {
			t.Fatalf("publish failed: %v", err)
		}

		select {
		case msg := <-msgs:
			var received domain.ProductEvent
			if err := json.Unmarshal(msg.Body, &received); err != nil {
				t.Fatalf("unmarshal failed: %v", err)
			}
			if received.ProductID != product.ID {
				t.Fatalf("expected product %s, got %s", product.ID, received.ProductID)
			}
			if msg.Type != domain.EventProductCreated {
				t.Fatalf("expected type %q, got %q", domain.EventProductCreated, msg.Type)
			}
		case <-time.After(5 * time.Second):
			t.Fatal("timed out waiting for message")
		}
	})

	t.Run("option event reaches the option exchange", func(t *testing.T) {
		msgs := consume(t, "exchange.product_option", domain.EventProductOptionDeleted)

		if err := testAdapter.PublishRaw(ctx, domain.EventProductOptionDeleted, "product_option", []byte(`{"type":"product_option.deleted"}`)); err != nil {
			t.Fatalf("publish failed: %v", err)
		}

		select {
		case <-msgs:
		case <-time.After(5 * time.Second):
			t.Fatal("timed out waiting for message")
		}
	})

	t.Run("unknown entity is rejected", func(t *testing.T) {
		err := testAdapter.PublishRaw(ctx, "order.created", "order", []byte(`{}`))
		if !errors.Is(err, rabbitmq.ErrUnknownExchange) {
			t.Fatalf("expected ErrUnknownExchange, got %v", err)
		}
	})

	t.Run("cancelled context is returned", func(t *testing.T) {
		cancelled, cancel := context.WithCancel(ctx)
		cancel()

		err := testAdapter.PublishRaw(cancelled, domain.EventProductUpdated, "product", []byte(`{}`))
		if !errors.Is(err, context.Canceled) {
			t.Fatalf("expected context.Canceled, got %v", err)
		}
	})
}

func TestRabbitMQAdapter_Close(t *testing.T) {
	ctx := context.Background()

	t.Run("health check fails after close", func(t *testing.T) {
		adapter, err := rabbitmq.NewRabbitMQAdapter(ctx, testConfig(0))
		if err != nil {
			t.Fatalf("failed to create adapter: %v", err)
		}

		if err := adapter.Close(); err != nil {
			t.Fatalf("expected clean close, got %v", err)
		}

		if err := adapter.HealthCheck(ctx); err == nil {
			t.Fatal("expected health check to fail after close")
		}
	})

	t.Run("publish after close reconnects", func(t *testing.T) {
		adapter, err := rabbitmq.NewRabbitMQAdapter(ctx, testConfig(1))
		if err != nil {
			t.Fatalf("failed to create adapter: %v", err)
		}
		defer adapter.Close()

		_ = adapter.Close()

		if err := adapter.PublishRaw(ctx, domain.EventProductDeleted, "product", []byte(`{}`)); err != nil {
			t.Fatalf("expected publish to reconnect, got %v", err)
		}
		if err := adapter.HealthCheck(ctx); err != nil {
			t.Fatalf("expected healthy after reconnect, got %v", err)
		}
	})
}
