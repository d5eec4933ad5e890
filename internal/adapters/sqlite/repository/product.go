package repository

import (
	"context"

	"github.com/rafaelleal24/products-api/internal/adapters/sqlite/model"
	"github.com/rafaelleal24/products-api/internal/core/domain"
	"github.com/rafaelleal24/products-api/internal/core/port"
	"gorm.io/gorm"
)

const productOrder = "created_at, id"

type ProductRepository struct {
	*BaseRepository[model.ProductModel]
}

func NewProductRepository(db *gorm.DB) port.ProductPort {
	return &ProductRepository{
		BaseRepository: NewBaseRepository[model.ProductModel](db),
	}
}

func (r *ProductRepository) Create(ctx context.Context, product *domain.Product) error {
	return r.BaseRepository.Create(ctx, model.ToProductModel(product))
}

func (r *ProductRepository) GetByID(ctx context.Context, id domain.ID) (*domain.Product, error) {
	m, err := r.FindOne(ctx, "id = ?", string(id))
	if err != nil {
		return nil, err
	}
	return m.ToDomain(), nil
}

func (r *ProductRepository) GetAll(ctx context.Context) ([]*domain.Product, error) {
	models, err := r.Find(ctx, productOrder, "")
	if err != nil {
		return nil, err
	}
	return toProducts(models), nil
}

// GetByName matches the whole name ignoring ASCII case.
func (r *ProductRepository) GetByName(ctx context.Context, name string) ([]*domain.Product, error) {
	models, err := r.Find(ctx, productOrder, "name = ? COLLATE NOCASE", name)
	if err != nil {
		return nil, err
	}
	return toProducts(models), nil
}

func (r *ProductRepository) Update(ctx context.Context, product *domain.Product) error {
	return r.BaseRepository.Update(ctx, model.ToProductModel(product))
}

func (r *ProductRepository) Delete(ctx context.Context, id domain.ID) error {
	return r.DeleteByID(ctx, string(id))
}

func toProducts(models []model.ProductModel) []*domain.Product {
	products := make([]*domain.Product, len(models))
	for i := range models {
		products[i] = models[i].ToDomain()
	}
	return products
}
