package domain

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type ID string

func NewID() ID {
	return ID(uuid.NewString())
}

// MaxNameLength bounds product and option names, counted in runes.
const MaxNameLength = 20

// PriceScale is the number of decimal places an amount may carry.
const PriceScale = 2

type Amount = decimal.Decimal

func NewAmountFromCents(cents int64) Amount {
	return decimal.New(cents, -PriceScale)
}

func ParseAmount(value string) (Amount, error) {
	return decimal.NewFromString(value)
}

type Event interface {
	GetName() string
	GetEntityName() string
}
