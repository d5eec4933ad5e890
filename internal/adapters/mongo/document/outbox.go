package document

import (
	"time"

	"github.com/rafaelleal24/products-api/internal/adapters/outbox"
)

type OutboxDocument struct {
	ID         string    `bson:"_id"`
	EventName  string    `bson:"event_name"`
	EntityName string    `bson:"entity_name"`
	EventData  string    `bson:"event_data"`
	CreatedAt  time.Time `bson:"created_at"`
}

func (doc OutboxDocument) GetID() string {
	return doc.ID
}

func (doc OutboxDocument) ToEntry() outbox.Entry {
	return outbox.Entry{
		ID:         doc.ID,
		EventName:  doc.EventName,
		EntityName: doc.EntityName,
		EventData:  []byte(doc.EventData),
		CreatedAt:  doc.CreatedAt.UTC(),
	}
}
