package port

import (
	"context"

	"github.com/rafaelleal24/products-api/internal/core/domain"
)

//go:generate mockgen -source=$GOFILE -destination=mock/$GOFILE -package=mock

type ProductOptionPort interface {
	Create(ctx context.Context, option *domain.ProductOption) error
	GetByID(ctx context.Context, productID, optionID domain.ID) (*domain.ProductOption, error)
	GetByProductID(ctx context.Context, productID domain.ID) ([]*domain.ProductOption, error)
	Update(ctx context.Context, option *domain.ProductOption) error
	Delete(ctx context.Context, id domain.ID) error
	DeleteByProductID(ctx context.Context, productID domain.ID) error
}
