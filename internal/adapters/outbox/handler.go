package outbox

import (
	"context"
	"time"

	"github.com/rafaelleal24/products-api/internal/adapters/config"
	"github.com/rafaelleal24/products-api/internal/core/logger"
	"github.com/rafaelleal24/products-api/internal/core/port"
)

const drainTimeout = 5 * time.Second

// Handler relays outbox entries to the broker. Entries are deleted only after
// a successful publish, so delivery is at least once.
type Handler struct {
	outbox   Repository
	broker   port.BrokerPort
	interval time.Duration
	batch    int
}

func NewHandler(outbox Repository, broker port.BrokerPort, config config.OutboxConfig) *Handler {
	if config.BatchSize <= 0 {
		config.BatchSize = 100
	}
	if config.Interval <= 0 {
		config.Interval = 500 * time.Millisecond
	}
	return &Handler{
		outbox:   outbox,
		broker:   broker,
		interval: config.Interval,
		batch:    config.BatchSize,
	}
}

// Start polls until ctx is cancelled, then makes one last pass so events
// recorded just before shutdown are not left behind.
func (h *Handler) Start(ctx context.Context) {
	ticker := time.NewTicker(h.interval)
	defer ticker.Stop()

	logger.Info(ctx, "outbox: relay started", map[string]any{
		"interval_ms": h.interval.Milliseconds(),
		"batch":       h.batch,
	})

	for {
		select {
		case <-ctx.Done():
			drainCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), drainTimeout)
			published := h.ProcessPending(drainCtx)
			cancel()
			logger.Info(ctx, "outbox: relay stopped", map[string]any{"drained": published})
			return
		case <-ticker.C:
			h.ProcessPending(ctx)
		}
	}
}

// ProcessPending publishes one batch and returns how many entries were delivered.
func (h *Handler) ProcessPending(ctx context.Context) int {
	entries, err := h.outbox.FetchPending(ctx, h.batch)
	if err != nil {
		logger.Error(ctx, "outbox: failed to fetch pending events", err, map[string]any{
			"batch": h.batch,
		})
		return 0
	}

	published := 0
	for _, entry := range entries {
		eventLogAttributes := map[string]any{
			"event_id":    entry.ID,
			"event_name":  entry.EventName,
			"entity_name": entry.EntityName,
		}
		if err := h.broker.PublishRaw(ctx, entry.EventName, entry.EntityName, entry.EventData); err != nil {
			logger.Error(ctx, "outbox: failed to publish event", err, eventLogAttributes)
			continue
		}
		published++

		eventLogAttributes["lag_ms"] = entry.Lag(time.Now()).Milliseconds()
		logger.Debug(ctx, "outbox: event published", eventLogAttributes)

		if err := h.outbox.Delete(ctx, entry.ID); err != nil {
			logger.Error(ctx, "outbox: failed to delete event after publish", err, eventLogAttributes)
		}
	}

	return published
}
