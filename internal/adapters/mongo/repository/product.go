package repository

import (
	"context"

	"github.com/rafaelleal24/products-api/internal/adapters/mongo/document"
	"github.com/rafaelleal24/products-api/internal/core/domain"
	"github.com/rafaelleal24/products-api/internal/core/port"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const productsCollection = "products"

// caseInsensitive compares strings ignoring case.
var caseInsensitive = &options.Collation{Locale: "en", Strength: 2}

type ProductRepository struct {
	*BaseRepository[document.ProductDocument]
}

func NewProductRepository(db *mongo.Database) port.ProductPort {
	return &ProductRepository{
		BaseRepository: NewBaseRepository[document.ProductDocument](db, productsCollection),
	}
}

func (r *ProductRepository) Create(ctx context.Context, product *domain.Product) error {
	doc, err := document.ToProductDocument(product)
	if err != nil {
		return err
	}
	return r.BaseRepository.Create(ctx, doc)
}

func (r *ProductRepository) GetByID(ctx context.Context, id domain.ID) (*domain.Product, error) {
	doc, err := r.FindByID(ctx, string(id))
	if err != nil {
		return nil, err
	}

	return doc.ToDomain()
}

func (r *ProductRepository) GetAll(ctx context.Context) ([]*domain.Product, error) {
	docs, err := r.Find(ctx, bson.M{}, sortByCreation())
	if err != nil {
		return nil, err
	}

	return toProducts(docs)
}

func (r *ProductRepository) GetByName(ctx context.Context, name string) ([]*domain.Product, error) {
	docs, err := r.Find(ctx, bson.M{"name": name}, sortByCreation().SetCollation(caseInsensitive))
	if err != nil {
		return nil, err
	}

	return toProducts(docs)
}

func (r *ProductRepository) Update(ctx context.Context, product *domain.Product) error {
	doc, err := document.ToProductDocument(product)
	if err != nil {
		return err
	}

	return r.BaseRepository.Update(ctx, bson.M{"_id": doc.ID}, bson.M{
		"name":           doc.Name,
		"description":    doc.Description,
		"price":          doc.Price,
		"delivery_price": doc.DeliveryPrice,
		"updated_at":     doc.UpdatedAt,
	})
}

func (r *ProductRepository) Delete(ctx context.Context, id domain.ID) error {
	return r.DeleteByID(ctx, string(id))
}

func sortByCreation() *options.FindOptions {
	return options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}, {Key: "_id", Value: 1}})
}

func toProducts(docs []document.ProductDocument) ([]*domain.Product, error) {
	products := make([]*domain.Product, len(docs))
	for i := range docs {
		product, err := docs[i].ToDomain()
		if err != nil {
			return nil, err
		}
		products[i] = product
	}

	return products, nil
}
