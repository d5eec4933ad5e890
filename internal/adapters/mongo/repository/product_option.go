package repository

import (
	"context"

	"github.com/rafaelleal24/products-api/internal/adapters/mongo/document"
	"github.com/rafaelleal24/products-api/internal/core/domain"
	"github.com/rafaelleal24/products-api/internal/core/port"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

const productOptionsCollection = "product_options"

type ProductOptionRepository struct {
	*BaseRepository[document.ProductOptionDocument]
}

func NewProductOptionRepository(db *mongo.Database) port.ProductOptionPort {
	return &ProductOptionRepository{
		BaseRepository: NewBaseRepository[document.ProductOptionDocument](db, productOptionsCollection),
	}
}

func (r *ProductOptionRepository) Create(ctx context.Context, option *domain.ProductOption) error {
	return r.BaseRepository.Create(ctx, document.ToProductOptionDocument(option))
}

func (r *ProductOptionRepository) GetByID(ctx context.Context, productID, optionID domain.ID) (*domain.ProductOption, error) {
	doc, err := r.FindOne(ctx, bson.M{"_id": string(optionID), "product_id": string(productID)})
	if err != nil {
		return nil, err
	}

	return doc.ToDomain(), nil
}

func (r *ProductOptionRepository) GetByProductID(ctx context.Context, productID domain.ID) ([]*domain.ProductOption, error) {
	docs, err := r.Find(ctx, bson.M{"product_id": string(productID)}, sortByCreation())
	if err != nil {
		return nil, err
	}

	options := make([]*domain.ProductOption, len(docs))
	for i := range docs {
		options[i] = docs[i].ToDomain()
	}

	return options, nil
}

func (r *ProductOptionRepository) Update(ctx context.Context, option *domain.ProductOption) error {
	return r.BaseRepository.Update(ctx,
		bson.M{"_id": string(option.ID), "product_id": string(option.ProductID)},
		bson.M{
			"name":        option.Name,
			"description": option.Description,
			"updated_at":  option.UpdatedAt,
		},
	)
}

func (r *ProductOptionRepository) Delete(ctx context.Context, id domain.ID) error {
	return r.DeleteByID(ctx, string(id))
}

func (r *ProductOptionRepository) DeleteByProductID(ctx context.Context, productID domain.ID) error {
	_, err := r.DeleteMany(ctx, bson.M{"product_id": string(productID)})
	return err
}
