package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Discount is a percentage off a unit price, on the 0-100 scale.
// Discount is immutable once created.
type Discount struct {
	percent decimal.Decimal
}

// NoDiscount is the zero discount used for purchase lines.
var NoDiscount = Discount{percent: decimal.Zero}

// NewDiscount validates the percentage and returns a Discount.
// Returns ErrInvalidDiscount when the percentage is outside [0, 100].
func NewDiscount(percent decimal.Decimal) (Discount, error) {
	if percent.IsNegative() || percent.GreaterThan(hundred) {
		return Discount{}, fmt.Errorf("%w: %s", ErrInvalidDiscount, percent.String())
	}
	return Discount{percent: percent}, nil
}

// Percent returns the discount on the 0-100 scale.
func (d Discount) Percent() decimal.Decimal {
	return d.percent
}

// IsZero reports whether the discount takes nothing off.
func (d Discount) IsZero() bool {
	return d.percent.IsZero()
}

// ApplyTo returns the discounted, currency-rounded unit price.
func (d Discount) ApplyTo(price *Money) *Money {
	return ApplyDiscount(price, d.percent)
}

// String returns a string representation of the discount.
func (d Discount) String() string {
	return d.percent.String() + "% off"
}
