package model

import (
	"time"

	"github.com/rafaelleal24/products-api/internal/core/domain"
)

type ProductOptionModel struct {
	ID          string    `gorm:"primaryKey;type:text"`
	ProductID   string    `gorm:"type:text;not null;index"`
	Name        string    `gorm:"type:text;not null"`
	Description string    `gorm:"type:text;not null;default:''"`
	CreatedAt   time.Time `gorm:"not null;autoCreateTime:false"`
	UpdatedAt   time.Time `gorm:"not null;autoUpdateTime:false"`
}

func (ProductOptionModel) TableName() string {
	return "product_options"
}

func (m *ProductOptionModel) ToDomain() *domain.ProductOption {
	return &domain.ProductOption{
		ID:          domain.ID(m.ID),
		ProductID:   domain.ID(m.ProductID),
		Name:        m.Name,
		Description: m.Description,
		CreatedAt:   m.CreatedAt.UTC(),
		UpdatedAt:   m.UpdatedAt.UTC(),
	}
}

func ToProductOptionModel(o *domain.ProductOption) *ProductOptionModel {
	return &ProductOptionModel{
		ID:          string(o.ID),
		ProductID:   string(o.ProductID),
		Name:        o.Name,
		Description: o.Description,
		CreatedAt:   o.CreatedAt,
		UpdatedAt:   o.UpdatedAt,
	}
}
