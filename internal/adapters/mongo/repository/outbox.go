package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rafaelleal24/products-api/internal/adapters/mongo/document"
	"github.com/rafaelleal24/products-api/internal/adapters/outbox"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

const outboxCollection = "outbox"

type OutboxRepository struct {
	*BaseRepository[document.OutboxDocument]
}

func NewOutboxRepository(db *mongo.Database) outbox.Repository {
	return &OutboxRepository{
		BaseRepository: NewBaseRepository[document.OutboxDocument](db, outboxCollection),
	}
}

func (r *OutboxRepository) Insert(ctx context.Context, entry outbox.Entry) error {
	createdAt := entry.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now().UTC()
	}
	return r.Create(ctx, &document.OutboxDocument{
		ID:         uuid.NewString(),
		EventName:  entry.EventName,
		EntityName: entry.EntityName,
		EventData:  string(entry.EventData),
		CreatedAt:  createdAt,
	})
}

// FetchPending returns the oldest entries first so consumers see events in
// the order the writes committed.
func (r *OutboxRepository) FetchPending(ctx context.Context, limit int) ([]outbox.Entry, error) {
	docs, err := r.Find(ctx, bson.M{}, sortByCreation().SetLimit(int64(limit)))
	if err != nil {
		return nil, err
	}

	entries := make([]outbox.Entry, len(docs))
	for i := range docs {
		entries[i] = docs[i].ToEntry()
	}
	return entries, nil
}

// Delete ignores unknown ids; a relay retrying after a crash may delete twice.
func (r *OutboxRepository) Delete(ctx context.Context, id string) error {
	_, err := r.DeleteMany(ctx, bson.M{"_id": id})
	return err
}
