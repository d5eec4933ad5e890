package domain

import (
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/shopspring/decimal"
)

var (
	ErrNameRequired      = errors.New("name is required")
	ErrNameTooLong       = fmt.Errorf("name must be at most %d characters", MaxNameLength)
	ErrNegativeAmount    = errors.New("price must not be negative")
	ErrAmountPrecision   = fmt.Errorf("price must have at most %d decimal places", PriceScale)
	ErrInvalidUpdateMode = errors.New("invalid update mode")
)

// UpdateMode decides how an update request is applied to a stored entity.
type UpdateMode string

const (
	// UpdateModeMerge only overwrites the fields that were supplied.
	UpdateModeMerge UpdateMode = "merge"
	// UpdateModeReplace treats the request as the full new state.
	UpdateModeReplace UpdateMode = "replace"
)

func (m UpdateMode) IsValid() bool {
	return m == UpdateModeMerge || m == UpdateModeReplace
}

type Product struct {
	ID            ID
	Name          string
	Description   string
	Price         Amount
	DeliveryPrice Amount
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func NewProduct(name string, description string, price Amount, deliveryPrice Amount) *Product {
	now := time.Now().UTC()
	return &Product{
		ID:            NewID(),
		Name:          strings.TrimSpace(name),
		Description:   description,
		Price:         price,
		DeliveryPrice: deliveryPrice,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

func (p *Product) Validate() error {
	if err := ValidateName(p.Name); err != nil {
		return err
	}
	if err := ValidateAmount(p.Price); err != nil {
		return err
	}
	return ValidateAmount(p.DeliveryPrice)
}

// ProductPatch carries the fields of an update request; nil means "not supplied".
type ProductPatch struct {
	Name          *string
	Description   *string
	Price         *Amount
	DeliveryPrice *Amount
}

// Apply updates p in place and stamps UpdatedAt. The caller validates the result.
func (p *Product) Apply(patch ProductPatch, mode UpdateMode, now time.Time) error {
	switch mode {
	case UpdateModeMerge:
		if supplied(patch.Name) {
			p.Name = strings.TrimSpace(*patch.Name)
		}
		if supplied(patch.Description) {
			p.Description = *patch.Description
		}
		if patch.Price != nil {
			p.Price = *patch.Price
		}
		if patch.DeliveryPrice != nil {
			p.DeliveryPrice = *patch.DeliveryPrice
		}
	case UpdateModeReplace:
		p.Name = strings.TrimSpace(valueOf(patch.Name))
		p.Description = valueOf(patch.Description)
		p.Price = amountOf(patch.Price)
		p.DeliveryPrice = amountOf(patch.DeliveryPrice)
	default:
		return ErrInvalidUpdateMode
	}

	p.UpdatedAt = touch(p.CreatedAt, now)
	return nil
}

type ProductOption struct {
	ID          ID
	ProductID   ID
	Name        string
	Description string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func NewProductOption(productID ID, name string, description string) *ProductOption {
	now := time.Now().UTC()
	return &ProductOption{
		ID:          NewID(),
		ProductID:   productID,
		Name:        strings.TrimSpace(name),
		Description: description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

func (o *ProductOption) Validate() error {
	return ValidateName(o.Name)
}

type ProductOptionPatch struct {
	Name        *string
	Description *string
}

func (o *ProductOption) Apply(patch ProductOptionPatch, mode UpdateMode, now time.Time) error {
	switch mode {
	case UpdateModeMerge:
		if supplied(patch.Name) {
			o.Name = strings.TrimSpace(*patch.Name)
		}
		if supplied(patch.Description) {
			o.Description = *patch.Description
		}
	case UpdateModeReplace:
		o.Name = strings.TrimSpace(valueOf(patch.Name))
		o.Description = valueOf(patch.Description)
	default:
		return ErrInvalidUpdateMode
	}

	o.UpdatedAt = touch(o.CreatedAt, now)
	return nil
}

func ValidateName(name string) error {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return ErrNameRequired
	}
	if utf8.RuneCountInString(trimmed) > MaxNameLength {
		return ErrNameTooLong
	}
	return nil
}

func ValidateAmount(amount Amount) error {
	if amount.IsNegative() {
		return ErrNegativeAmount
	}
	if !amount.Equal(amount.Truncate(PriceScale)) {
		return ErrAmountPrecision
	}
	return nil
}

func supplied(value *string) bool {
	return value != nil && strings.TrimSpace(*value) != ""
}

func valueOf(value *string) string {
	if value == nil {
		return ""
	}
	return *value
}

func amountOf(value *Amount) Amount {
	if value == nil {
		return decimal.Zero
	}
	return *value
}

// touch keeps UpdatedAt from ever going behind CreatedAt when clocks skew.
func touch(createdAt, now time.Time) time.Time {
	now = now.UTC()
	if now.Before(createdAt) {
		return createdAt
	}
	return now
}
