package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// CurrencyPlaces is the number of decimal places every currency amount is rounded to.
const CurrencyPlaces int32 = 2

var hundred = decimal.NewFromInt(100)

// Money represents a monetary value with precise decimal arithmetic.
// Money is immutable - all operations return new instances.
type Money struct {
	amount decimal.Decimal
}

// NewMoney creates a new Money instance from numerator and denominator.
// For example: NewMoney(1999, 100) represents $19.99
func NewMoney(numerator, denominator int64) *Money {
	if denominator == 0 {
		panic("money: denominator cannot be zero")
	}
	return &Money{
		amount: decimal.NewFromInt(numerator).Div(decimal.NewFromInt(denominator)),
	}
}

// NewMoneyFromDecimal creates Money from a decimal string.
// For example: "19.99", "100.00", "0.01"
func NewMoneyFromDecimal(s string) (*Money, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid decimal format %q", ErrInvalidPrice, s)
	}
	return &Money{amount: d}, nil
}

// MustMoney is NewMoneyFromDecimal for literals known to be valid.
func MustMoney(s string) *Money {
	m, err := NewMoneyFromDecimal(s)
	if err != nil {
		panic(err)
	}
	return m
}

// Zero returns a Money instance representing zero.
func Zero() *Money {
	return &Money{amount: decimal.Zero}
}

// Add returns a new Money that is the sum of m and other.
func (m *Money) Add(other *Money) *Money {
	return &Money{amount: m.amount.Add(other.amount)}
}

// Subtract returns a new Money that is the difference of m and other.
func (m *Money) Subtract(other *Money) *Money {
	return &Money{amount: m.amount.Sub(other.amount)}
}

// MultiplyByQuantity multiplies the amount by a unit count.
func (m *Money) MultiplyByQuantity(quantity int) *Money {
	return &Money{amount: m.amount.Mul(decimal.NewFromInt(int64(quantity)))}
}

// Round returns the amount rounded to CurrencyPlaces, half away from zero.
func (m *Money) Round() *Money {
	return &Money{amount: m.amount.Round(CurrencyPlaces)}
}

// IsZero returns true if the money amount is zero.
func (m *Money) IsZero() bool {
	return m.amount.IsZero()
}

// IsNegative returns true if the money amount is negative.
func (m *Money) IsNegative() bool {
	return m.amount.IsNegative()
}

// IsPositive returns true if the money amount is positive.
func (m *Money) IsPositive() bool {
	return m.amount.IsPositive()
}

// GreaterThan returns true if m is greater than other.
func (m *Money) GreaterThan(other *Money) bool {
	return m.amount.GreaterThan(other.amount)
}

// LessThan returns true if m is less than other.
func (m *Money) LessThan(other *Money) bool {
	return m.amount.LessThan(other.amount)
}

// Equals returns true if m equals other.
func (m *Money) Equals(other *Money) bool {
	if other == nil {
		return false
	}
	return m.amount.Equal(other.amount)
}

// Numerator returns the numerator of the exact rational representation.
// Used for database persistence.
func (m *Money) Numerator() int64 {
	return m.amount.Rat().Num().Int64()
}

// Denominator returns the denominator of the exact rational representation.
// Used for database persistence.
func (m *Money) Denominator() int64 {
	return m.amount.Rat().Denom().Int64()
}

// Decimal returns the underlying decimal value.
func (m *Money) Decimal() decimal.Decimal {
	return m.amount
}

// Float64 returns the money amount as a float64.
// Note: This may lose precision and should only be used for display purposes.
func (m *Money) Float64() float64 {
	f, _ := m.amount.Float64()
	return f
}

// String returns the amount with two decimals, e.g. "19.99".
func (m *Money) String() string {
	return m.amount.StringFixed(CurrencyPlaces)
}

// RoundCurrency rounds a value to two decimal places, half-up.
// Negative inputs are allowed (change owed) and round half away from zero.
func RoundCurrency(value *Money) *Money {
	return value.Round()
}

// ApplyDiscount returns unitPrice * (1 - discountPercent/100) rounded to currency.
// The percentage is not clamped here; callers validate it with NewDiscount.
func ApplyDiscount(unitPrice *Money, discountPercent decimal.Decimal) *Money {
	factor := decimal.NewFromInt(1).Sub(discountPercent.Div(hundred))
	return RoundCurrency(&Money{amount: unitPrice.amount.Mul(factor)})
}

// LineTotal returns discountedUnitPrice * quantity rounded to currency.
func LineTotal(discountedUnitPrice *Money, quantity int) *Money {
	return RoundCurrency(discountedUnitPrice.MultiplyByQuantity(quantity))
}
