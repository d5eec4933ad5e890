package repository

import (
	"context"

	"github.com/rafaelleal24/products-api/internal/adapters/sqlite/model"
	"github.com/rafaelleal24/products-api/internal/core/domain"
	"github.com/rafaelleal24/products-api/internal/core/port"
	"gorm.io/gorm"
)

type ProductOptionRepository struct {
	*BaseRepository[model.ProductOptionModel]
}

func NewProductOptionRepository(db *gorm.DB) port.ProductOptionPort {
	return &ProductOptionRepository{
		BaseRepository: NewBaseRepository[model.ProductOptionModel](db),
	}
}

func (r *ProductOptionRepository) Create(ctx context.Context, option *domain.ProductOption) error {
	return r.BaseRepository.Create(ctx, model.ToProductOptionModel(option))
}

func (r *ProductOptionRepository) GetByID(ctx context.Context, productID, optionID domain.ID) (*domain.ProductOption, error) {
	m, err := r.FindOne(ctx, "id = ? AND product_id = ?", string(optionID), string(productID))
	if err != nil {
		return nil, err
	}
	return m.ToDomain(), nil
}

func (r *ProductOptionRepository) GetByProductID(ctx context.Context, productID domain.ID) ([]*domain.ProductOption, error) {
	models, err := r.Find(ctx, "created_at, id", "product_id = ?", string(productID))
	if err != nil {
		return nil, err
	}

	options := make([]*domain.ProductOption, len(models))
	for i := range models {
		options[i] = models[i].ToDomain()
	}
	return options, nil
}

func (r *ProductOptionRepository) Update(ctx context.Context, option *domain.ProductOption) error {
	return r.BaseRepository.Update(ctx, model.ToProductOptionModel(option))
}

func (r *ProductOptionRepository) Delete(ctx context.Context, id domain.ID) error {
	return r.DeleteByID(ctx, string(id))
}

func (r *ProductOptionRepository) DeleteByProductID(ctx context.Context, productID domain.ID) error {
	_, err := r.DeleteWhere(ctx, "product_id = ?", string(productID))
	return err
}
