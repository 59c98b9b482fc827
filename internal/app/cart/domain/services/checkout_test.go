package services

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/murkotick/grocery-pos-service/internal/app/cart/domain"
)

func saleCartWith(t *testing.T, price string, discount int64, qty int) *domain.Cart {
	t.Helper()
	c, err := domain.NewCart(domain.KindSale)
	require.NoError(t, err)
	d, err := domain.NewDiscount(decimal.NewFromInt(discount))
	require.NoError(t, err)
	p, err := domain.NewProduct(1, "rice 1kg", domain.MustMoney(price), domain.MustMoney("1.00"), d, nil, "")
	require.NoError(t, err)
	require.NoError(t, c.AddProduct(p, qty))
	return c
}

func TestCheckout_PrepareRejectsEmptyCart(t *testing.T) {
	c, err := domain.NewCart(domain.KindSale)
	require.NoError(t, err)

	_, err = NewCheckout().Prepare(c, 1)
	assert.ErrorIs(t, err, domain.ErrEmptyCart)
	assert.Equal(t, domain.PhaseEmpty, c.Phase())
}

func TestCheckout_PrepareRejectsShortTender(t *testing.T) {
	c := saleCartWith(t, "28.75", 5, 1)
	require.NoError(t, c.SetTendered(domain.MustMoney("27.30")))

	_, err := NewCheckout().Prepare(c, 1)
	assert.ErrorIs(t, err, domain.ErrInsufficientTender)
	assert.Equal(t, domain.PhaseBuilding, c.Phase())
	assert.Len(t, c.Lines(), 1)
}

func TestCheckout_PrepareAndComplete(t *testing.T) {
	c := saleCartWith(t, "28.75", 5, 2)
	require.NoError(t, c.SetTendered(domain.MustMoney("60")))

	co := NewCheckout()
	req, err := co.Prepare(c, 9)
	require.NoError(t, err)
	assert.Equal(t, "54.62", req.Total.String())
	assert.Equal(t, int64(9), req.UserID)
	assert.Equal(t, domain.PhaseValidated, c.Phase())

	require.NoError(t, co.Complete(c))
	assert.Equal(t, domain.PhaseEmpty, c.Phase())
	assert.True(t, c.IsEmpty())
}

func TestCheckout_CompleteRequiresValidation(t *testing.T) {
	c := saleCartWith(t, "1.00", 0, 1)
	assert.ErrorIs(t, NewCheckout().Complete(c), domain.ErrCartNotValidated)
	assert.False(t, c.IsEmpty())
}

func TestCheckout_Summarize(t *testing.T) {
	c := saleCartWith(t, "28.75", 5, 2)
	require.NoError(t, c.SetTendered(domain.MustMoney("50")))

	s := NewCheckout().Summarize(c)
	assert.Equal(t, "54.62", s.Subtotal.String())
	assert.Equal(t, "2.88", s.TotalDiscount.String())
	assert.Equal(t, 2, s.ItemCount)
	assert.Equal(t, 1, s.LineCount)
	assert.Equal(t, "-4.62", s.ChangeDue.String())
}
