package reset_cart

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/murkotick/grocery-pos-service/internal/app/cart/contracts"
	"github.com/murkotick/grocery-pos-service/internal/app/cart/domain"
	"github.com/murkotick/grocery-pos-service/internal/app/cart/session"
)

func TestResetCart(t *testing.T) {
	store := session.NewMemoryStore(nil)
	s, err := store.Create(domain.KindSale, 2)
	require.NoError(t, err)

	p, err := domain.NewProduct(8, "coffee 250g", domain.MustMoney("6.99"), domain.MustMoney("4.00"), domain.NoDiscount, nil, "")
	require.NoError(t, err)
	require.NoError(t, s.Cart.AddProduct(p, 3))
	client := int64(12)
	s.Cart.SetCounterparty(&client)
	require.NoError(t, s.Cart.SetPaymentState(domain.PaymentPending))

	view, err := NewInteractor(store).Execute(context.Background(), Request{CartID: s.ID, UserID: 2})
	require.NoError(t, err)
	assert.Empty(t, view.Lines)
	assert.Nil(t, view.CounterpartyID)
	assert.Equal(t, string(domain.PaymentPaid), view.PaymentState)
	assert.Equal(t, "0.00", view.Subtotal)
	assert.Equal(t, 0, view.ItemCount)
}

func TestResetCart_UnknownSession(t *testing.T) {
	_, err := NewInteractor(session.NewMemoryStore(nil)).Execute(context.Background(), Request{CartID: "missing", UserID: 2})
	assert.ErrorIs(t, err, contracts.ErrSessionNotFound)
}
