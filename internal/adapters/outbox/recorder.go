package outbox

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/rafaelleal24/products-api/internal/core/domain"
	"github.com/rafaelleal24/products-api/internal/core/port"
)

// Recorder writes events to the outbox; the Handler relays them to the broker.
type Recorder struct {
	outbox Repository
}

func NewRecorder(outbox Repository) port.EventRecorder {
	return &Recorder{outbox: outbox}
}

func (r *Recorder) Record(ctx context.Context, event domain.Event) error {
	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("outbox: failed to encode %s: %w", event.GetName(), err)
	}

	return r.outbox.Insert(ctx, Entry{
		EventName:  event.GetName(),
		EntityName: event.GetEntityName(),
		EventData:  data,
	})
}

// NoopRecorder drops events. Used when no broker is configured.
type NoopRecorder struct{}

func NewNoopRecorder() port.EventRecorder {
	return NoopRecorder{}
}

func (NoopRecorder) Record(context.Context, domain.Event) error {
	return nil
}
