package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/rafaelleal24/products-api/internal/adapters/mongo/document"
	"github.com/rafaelleal24/products-api/internal/core/serviceerrors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// BaseRepository holds the collection access shared by the product, option
// and outbox repositories. Every call uses ctx, so a session bound by the
// transaction manager is picked up automatically.
type BaseRepository[T document.Document] struct {
	collection *mongo.Collection
}

func NewBaseRepository[T document.Document](db *mongo.Database, collectionName string) *BaseRepository[T] {
	return &BaseRepository[T]{collection: db.Collection(collectionName)}
}

func (r *BaseRepository[T]) FindByID(ctx context.Context, id string) (*T, error) {
	return r.FindOne(ctx, bson.M{"_id": id})
}

func (r *BaseRepository[T]) FindOne(ctx context.Context, filter bson.M) (*T, error) {
	var doc T
	if err := r.collection.FindOne(ctx, filter).Decode(&doc); err != nil {
		return nil, r.parseError(err)
	}
	return &doc, nil
}

// Find never returns a nil slice.
func (r *BaseRepository[T]) Find(ctx context.Context, filter bson.M, opts ...*options.FindOptions) ([]T, error) {
	cursor, err := r.collection.Find(ctx, filter, opts...)
	if err != nil {
		return nil, r.parseError(err)
	}
	defer cursor.Close(ctx)

	docs := make([]T, 0)
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, r.parseError(err)
	}
	return docs, nil
}

func (r *BaseRepository[T]) Create(ctx context.Context, doc *T) error {
	if _, err := r.collection.InsertOne(ctx, doc); err != nil {
		return r.parseError(err)
	}
	return nil
}

// Update sets fields on the single document matching filter.
func (r *BaseRepository[T]) Update(ctx context.Context, filter bson.M, fields bson.M) error {
	result, err := r.collection.UpdateOne(ctx, filter, bson.M{"$set": fields})
	if err != nil {
		return r.parseError(err)
	}
	if result.MatchedCount == 0 {
		return r.notFound()
	}
	return nil
}

func (r *BaseRepository[T]) DeleteByID(ctx context.Context, id string) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return r.parseError(err)
	}
	if result.DeletedCount == 0 {
		return r.notFound()
	}
	return nil
}

func (r *BaseRepository[T]) DeleteMany(ctx context.Context, filter bson.M) (int64, error) {
	result, err := r.collection.DeleteMany(ctx, filter)
	if err != nil {
		return 0, r.parseError(err)
	}
	return result.DeletedCount, nil
}

func (r *BaseRepository[T]) notFound() error {
	return serviceerrors.NewNotFoundError(fmt.Sprintf("%s: document not found", r.collection.Name()))
}

func (r *BaseRepository[T]) parseError(err error) error {
	switch {
	case errors.Is(err, mongo.ErrNoDocuments):
		return r.notFound()
	case mongo.IsDuplicateKeyError(err):
		return serviceerrors.NewConflictError(fmt.Sprintf("%s: duplicate key", r.collection.Name()))
	default:
		return fmt.Errorf("%s: %w", r.collection.Name(), err)
	}
}
