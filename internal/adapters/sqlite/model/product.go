package model

import (
	"time"

	"github.com/rafaelleal24/products-api/internal/core/domain"
	"github.com/shopspring/decimal"
)

// Prices are stored as TEXT so no precision is lost to REAL affinity.
type ProductModel struct {
	ID            string               `gorm:"primaryKey;type:text"`
	Name          string               `gorm:"type:text;not null"`
	Description   string               `gorm:"type:text;not null;default:''"`
	Price         decimal.Decimal      `gorm:"type:text;not null"`
	DeliveryPrice decimal.Decimal      `gorm:"type:text;not null"`
	CreatedAt     time.Time            `gorm:"not null;index;autoCreateTime:false"`
	UpdatedAt     time.Time            `gorm:"not null;autoUpdateTime:false"`
	Options       []ProductOptionModel `gorm:"foreignKey:ProductID;references:ID;constraint:OnDelete:CASCADE"`
}

func (ProductModel) TableName() string {
	return "products"
}

func (m *ProductModel) ToDomain() *domain.Product {
	return &domain.Product{
		ID:            domain.ID(m.ID),
		Name:          m.Name,
		Description:   m.Description,
		Price:         m.Price,
		DeliveryPrice: m.DeliveryPrice,
		CreatedAt:     m.CreatedAt.UTC(),
		UpdatedAt:     m.UpdatedAt.UTC(),
	}
}

func ToProductModel(p *domain.Product) *ProductModel {
	return &ProductModel{
		ID:            string(p.ID),
		Name:          p.Name,
		Description:   p.Description,
		Price:         p.Price,
		DeliveryPrice: p.DeliveryPrice,
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
	}
}
