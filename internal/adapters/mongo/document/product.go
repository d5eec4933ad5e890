package document

import (
	"fmt"
	"time"

	"github.com/rafaelleal24/products-api/internal/core/domain"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type ProductDocument struct {
	ID            string               `bson:"_id"`
	Name          string               `bson:"name"`
	Description   string               `bson:"description"`
	Price         primitive.Decimal128 `bson:"price"`
	DeliveryPrice primitive.Decimal128 `bson:"delivery_price"`
	CreatedAt     time.Time            `bson:"created_at"`
	UpdatedAt     time.Time            `bson:"updated_at"`
}

func (doc ProductDocument) GetID() string {
	return doc.ID
}

func (doc *ProductDocument) ToDomain() (*domain.Product, error) {
	price, err := FromDecimal128(doc.Price)
	if err != nil {
		return nil, fmt.Errorf("product %s: invalid price: %w", doc.ID, err)
	}
	deliveryPrice, err := FromDecimal128(doc.DeliveryPrice)
	if err != nil {
		return nil, fmt.Errorf("product %s: invalid delivery price: %w", doc.ID, err)
	}

	return &domain.Product{
		ID:            domain.ID(doc.ID),
		Name:          doc.Name,
		Description:   doc.Description,
		Price:         price,
		DeliveryPrice: deliveryPrice,
		CreatedAt:     doc.CreatedAt.UTC(),
		UpdatedAt:     doc.UpdatedAt.UTC(),
	}, nil
}

func ToProductDocument(p *domain.Product) (*ProductDocument, error) {
	price, err := ToDecimal128(p.Price)
	if err != nil {
		return nil, err
	}
	deliveryPrice, err := ToDecimal128(p.DeliveryPrice)
	if err != nil {
		return nil, err
	}

	return &ProductDocument{
		ID:            string(p.ID),
		Name:          p.Name,
		Description:   p.Description,
		Price:         price,
		DeliveryPrice: deliveryPrice,
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
	}, nil
}
