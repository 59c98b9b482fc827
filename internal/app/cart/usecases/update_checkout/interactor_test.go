package update_checkout

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/murkotick/grocery-pos-service/internal/app/cart/domain"
	"github.com/murkotick/grocery-pos-service/internal/app/cart/session"
)

func strPtr(s string) *string { return &s }
func int64Ptr(v int64) *int64 { return &v }

func newCart(t *testing.T, kind domain.Kind) (*Interactor, string) {
	t.Helper()
	store := session.NewMemoryStore(nil)
	s, err := store.Create(kind, 1)
	require.NoError(t, err)
	p, err := domain.NewProduct(1, "coffee", domain.MustMoney("12.00"), domain.MustMoney("8.00"), domain.NoDiscount, nil, "")
	require.NoError(t, err)
	require.NoError(t, s.Cart.AddProduct(p, 1))
	return NewInteractor(store), s.ID
}

func TestUpdateCheckout_Sale(t *testing.T) {
	it, cartID := newCart(t, domain.KindSale)

	view, err := it.Execute(context.Background(), Request{
		CartID:         cartID,
		UserID:         1,
		CounterpartyID: int64Ptr(42),
		Tendered:       strPtr("20"),
		PaymentState:   strPtr("pending"),
	})
	require.NoError(t, err)
	require.NotNil(t, view.CounterpartyID)
	assert.Equal(t, int64(42), *view.CounterpartyID)
	assert.Equal(t, "20.00", view.Tendered)
	assert.Equal(t, "8.00", view.ChangeDue)
	assert.Equal(t, "pending", view.PaymentState)

	view, err = it.Execute(context.Background(), Request{CartID: cartID, UserID: 1, ClearCounterparty: true})
	require.NoError(t, err)
	assert.Nil(t, view.CounterpartyID)
}

func TestUpdateCheckout_Rejections(t *testing.T) {
	it, cartID := newCart(t, domain.KindPurchase)
	ctx := context.Background()

	_, err := it.Execute(ctx, Request{CartID: cartID, UserID: 1, PaymentState: strPtr("pending")})
	assert.ErrorIs(t, err, domain.ErrPaymentStateNotApplicable)

	_, err = it.Execute(ctx, Request{CartID: cartID, UserID: 1, PaymentState: strPtr("later")})
	assert.ErrorIs(t, err, domain.ErrInvalidPaymentState)

	_, err = it.Execute(ctx, Request{CartID: cartID, UserID: 1, Tendered: strPtr("-1")})
	assert.ErrorIs(t, err, domain.ErrInvalidTender)

	_, err = it.Execute(ctx, Request{CartID: cartID, UserID: 1, Tendered: strPtr("abc")})
	assert.ErrorIs(t, err, domain.ErrInvalidTender)
}
