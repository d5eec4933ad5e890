package repository

import (
	"context"
	"errors"
	"strings"

	"github.com/rafaelleal24/products-api/internal/adapters/sqlite"
	"github.com/rafaelleal24/products-api/internal/core/serviceerrors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type BaseRepository[T any] struct {
	db *gorm.DB
}

func NewBaseRepository[T any](db *gorm.DB) *BaseRepository[T] {
	return &BaseRepository[T]{db: db}
}

func (r *BaseRepository[T]) conn(ctx context.Context) *gorm.DB {
	return sqlite.Conn(ctx, r.db)
}

func (r *BaseRepository[T]) FindOne(ctx context.Context, query string, args ...any) (*T, error) {
	var entity T
	if err := r.conn(ctx).Where(query, args...).Take(&entity).Error; err != nil {
		return nil, parseError(err)
	}
	return &entity, nil
}

func (r *BaseRepository[T]) Find(ctx context.Context, order string, query string, args ...any) ([]T, error) {
	entities := []T{}
	tx := r.conn(ctx)
	if query != "" {
		tx = tx.Where(query, args...)
	}
	if order != "" {
		tx = tx.Order(order)
	}
	if err := tx.Find(&entities).Error; err != nil {
		return nil, parseError(err)
	}
	return entities, nil
}

func (r *BaseRepository[T]) Create(ctx context.Context, entity *T) error {
	if err := r.conn(ctx).Omit(clause.Associations).Create(entity).Error; err != nil {
		return parseError(err)
	}
	return nil
}

// Update writes every column of entity, keyed by its primary key. It never
// inserts; a missing row is reported as not found.
func (r *BaseRepository[T]) Update(ctx context.Context, entity *T) error {
	result := r.conn(ctx).Model(entity).Select("*").Omit(clause.Associations).Updates(entity)
	if result.Error != nil {
		return parseError(result.Error)
	}
	if result.RowsAffected == 0 {
		return serviceerrors.NewNotFoundError("entity not found")
	}
	return nil
}

func (r *BaseRepository[T]) DeleteWhere(ctx context.Context, query string, args ...any) (int64, error) {
	var entity T
	result := r.conn(ctx).Where(query, args...).Delete(&entity)
	if result.Error != nil {
		return 0, parseError(result.Error)
	}
	return result.RowsAffected, nil
}

func (r *BaseRepository[T]) DeleteByID(ctx context.Context, id string) error {
	deleted, err := r.DeleteWhere(ctx, "id = ?", id)
	if err != nil {
		return err
	}
	if deleted == 0 {
		return serviceerrors.NewNotFoundError("entity not found")
	}
	return nil
}

func parseError(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return serviceerrors.NewNotFoundError("entity not found")
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) || isConstraintError(err, "UNIQUE constraint failed") {
		return serviceerrors.NewConflictError("duplicate key error")
	}
	if errors.Is(err, gorm.ErrForeignKeyViolated) || isConstraintError(err, "FOREIGN KEY constraint failed") {
		return serviceerrors.NewNotFoundError("referenced entity not found")
	}
	return err
}

func isConstraintError(err error, text string) bool {
	return err != nil && strings.Contains(err.Error(), text)
}
