package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rafaelleal24/products-api/internal/adapters/outbox"
	"github.com/rafaelleal24/products-api/internal/adapters/sqlite/model"
	"gorm.io/gorm"
)

type OutboxRepository struct {
	*BaseRepository[model.OutboxModel]
}

func NewOutboxRepository(db *gorm.DB) outbox.Repository {
	return &OutboxRepository{
		BaseRepository: NewBaseRepository[model.OutboxModel](db),
	}
}

func (r *OutboxRepository) Insert(ctx context.Context, entry outbox.Entry) error {
	createdAt := entry.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now().UTC()
	}
	return r.Create(ctx, &model.OutboxModel{
		ID:         uuid.NewString(),
		EventName:  entry.EventName,
		EntityName: entry.EntityName,
		EventData:  string(entry.EventData),
		CreatedAt:  createdAt,
	})
}

func (r *OutboxRepository) FetchPending(ctx context.Context, limit int) ([]outbox.Entry, error) {
	var models []model.OutboxModel
	if err := r.conn(ctx).Order("created_at, id").Limit(limit).Find(&models).Error; err != nil {
		return nil, parseError(err)
	}

	entries := make([]outbox.Entry, len(models))
	for i, m := range models {
		entries[i] = outbox.Entry{
			ID:         m.ID,
			EventName:  m.EventName,
			EntityName: m.EntityName,
			EventData:  []byte(m.EventData),
			CreatedAt:  m.CreatedAt,
		}
	}

	return entries, nil
}

func (r *OutboxRepository) Delete(ctx context.Context, id string) error {
	_, err := r.DeleteWhere(ctx, "id = ?", id)
	return err
}
