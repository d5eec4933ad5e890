package domain

import "time"

const (
	EventProductCreated = "product.created"
	EventProductUpdated = "product.updated"
	EventProductDeleted = "product.deleted"

	EventProductOptionCreated = "product_option.created"
	EventProductOptionUpdated = "product_option.updated"
	EventProductOptionDeleted = "product_option.deleted"
)

type ProductEvent struct {
	Type          string    `json:"type"`
	ProductID     ID        `json:"product_id"`
	Name          string    `json:"name,omitempty"`
	Price         string    `json:"price,omitempty"`
	DeliveryPrice string    `json:"delivery_price,omitempty"`
	OccurredAt    time.Time `json:"occurred_at"`
}

func (e *ProductEvent) GetName() string {
	return e.Type
}

func (e *ProductEvent) GetEntityName() string {
	return "product"
}

func NewProductEvent(eventType string, product *Product, occurredAt time.Time) *ProductEvent {
	return &ProductEvent{
		Type:          eventType,
		ProductID:     product.ID,
		Name:          product.Name,
		Price:         product.Price.StringFixed(PriceScale),
		DeliveryPrice: product.DeliveryPrice.StringFixed(PriceScale),
		OccurredAt:    occurredAt,
	}
}

func NewProductDeletedEvent(productID ID, occurredAt time.Time) *ProductEvent {
	return &ProductEvent{
		Type:       EventProductDeleted,
		ProductID:  productID,
		OccurredAt: occurredAt,
	}
}

type ProductOptionEvent struct {
	Type       string    `json:"type"`
	ProductID  ID        `json:"product_id"`
	OptionID   ID        `json:"option_id"`
	Name       string    `json:"name,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
}

func (e *ProductOptionEvent) GetName() string {
	return e.Type
}

func (e *ProductOptionEvent) GetEntityName() string {
	return "product_option"
}

func NewProductOptionEvent(eventType string, option *ProductOption, occurredAt time.Time) *ProductOptionEvent {
	return &ProductOptionEvent{
		Type:       eventType,
		ProductID:  option.ProductID,
		OptionID:   option.ID,
		Name:       option.Name,
		OccurredAt: occurredAt,
	}
}
