package domain

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoundCurrency_HalfUp(t *testing.T) {
	cases := map[string]string{
		"27.3125": "27.31",
		"0.005":   "0.01",
		"1.994":   "1.99",
		"1.995":   "2.00",
		"10":      "10.00",
		"-0.005":  "-0.01",
	}
	for in, want := range cases {
		got := RoundCurrency(MustMoney(in))
		assert.Equal(t, want, got.String(), "round %s", in)
	}
}

func TestApplyDiscount(t *testing.T) {
	// 28.75 at 5% off is 27.3125, rounded to 27.31.
	got := ApplyDiscount(MustMoney("28.75"), decimal.NewFromInt(5))
	assert.True(t, got.Equals(MustMoney("27.31")), "got %s", got)

	assert.True(t, ApplyDiscount(MustMoney("10.00"), decimal.Zero).Equals(MustMoney("10")))
	assert.True(t, ApplyDiscount(MustMoney("10.00"), decimal.NewFromInt(100)).IsZero())
}

func TestLineTotal(t *testing.T) {
	got := LineTotal(MustMoney("27.31"), 3)
	assert.Equal(t, "81.93", got.String())
}

func TestNewMoney_Fraction(t *testing.T) {
	m := NewMoney(1999, 100)
	assert.Equal(t, "19.99", m.String())
	assert.Equal(t, int64(1999), m.Numerator())
	assert.Equal(t, int64(100), m.Denominator())
}

func TestNewMoneyFromDecimal_Invalid(t *testing.T) {
	_, err := NewMoneyFromDecimal("12,50")
	require.ErrorIs(t, err, ErrInvalidPrice)
}

func TestNewDiscount_Range(t *testing.T) {
	_, err := NewDiscount(decimal.NewFromInt(-1))
	assert.ErrorIs(t, err, ErrInvalidDiscount)

	_, err = NewDiscount(decimal.NewFromFloat(100.01))
	assert.ErrorIs(t, err, ErrInvalidDiscount)

	d, err := NewDiscount(decimal.NewFromInt(100))
	require.NoError(t, err)
	assert.True(t, d.Percent().Equal(decimal.NewFromInt(100)))
}
