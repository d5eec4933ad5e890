package document

import (
	"time"

	"github.com/rafaelleal24/products-api/internal/core/domain"
)

type ProductOptionDocument struct {
	ID          string    `bson:"_id"`
	ProductID   string    `bson:"product_id"`
	Name        string    `bson:"name"`
	Description string    `bson:"description"`
	CreatedAt   time.Time `bson:"created_at"`
	UpdatedAt   time.Time `bson:"updated_at"`
}

func (doc ProductOptionDocument) GetID() string {
	return doc.ID
}

func (doc *ProductOptionDocument) ToDomain() *domain.ProductOption {
	return &domain.ProductOption{
		ID:          domain.ID(doc.ID),
		ProductID:   domain.ID(doc.ProductID),
		Name:        doc.Name,
		Description: doc.Description,
		CreatedAt:   doc.CreatedAt.UTC(),
		UpdatedAt:   doc.UpdatedAt.UTC(),
	}
}

func ToProductOptionDocument(o *domain.ProductOption) *ProductOptionDocument {
	return &ProductOptionDocument{
		ID:          string(o.ID),
		ProductID:   string(o.ProductID),
		Name:        o.Name,
		Description: o.Description,
		CreatedAt:   o.CreatedAt,
		UpdatedAt:   o.UpdatedAt,
	}
}
