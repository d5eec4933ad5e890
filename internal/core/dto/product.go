package dto

import "github.com/shopspring/decimal"

type CreateProductRequest struct {
	Name          string          `json:"name" binding:"required" example:"Pen"`
	Description   string          `json:"description" example:"Blue pen"`
	Price         decimal.Decimal `json:"price" swaggertype:"number" example:"1.50"`
	DeliveryPrice decimal.Decimal `json:"deliveryPrice" swaggertype:"number" example:"0.50"`
}

// UpdateProductRequest fields are optional; how absent fields are treated
// depends on the configured update mode.
type UpdateProductRequest struct {
	Name          *string          `json:"name"`
	Description   *string          `json:"description"`
	Price         *decimal.Decimal `json:"price" swaggertype:"number"`
	DeliveryPrice *decimal.Decimal `json:"deliveryPrice" swaggertype:"number"`
}
