package outbox

import (
	"context"
	"time"
)

// Entry is a recorded domain event that has not reached the broker yet.
// EntityName picks the exchange and EventName is the routing key.
type Entry struct {
	ID         string
	EventName  string
	EntityName string
	EventData  []byte
	CreatedAt  time.Time
}

// Lag is how long the entry has been waiting for delivery.
func (e Entry) Lag(now time.Time) time.Duration {
	if e.CreatedAt.IsZero() || now.Before(e.CreatedAt) {
		return 0
	}
	return now.Sub(e.CreatedAt)
}

// Repository stores pending entries. Insert joins the transaction carried by
// ctx so an entry commits or rolls back together with the product write.
// FetchPending returns the oldest entries first.
//
//go:generate mockgen -source=$GOFILE -destination=mock/$GOFILE -package=mock
type Repository interface {
	Insert(ctx context.Context, entry Entry) error
	FetchPending(ctx context.Context, limit int) ([]Entry, error)
	Delete(ctx context.Context, id string) error
}
