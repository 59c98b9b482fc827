package finalize_cart

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/murkotick/grocery-pos-service/internal/app/cart/contracts"
	"github.com/murkotick/grocery-pos-service/internal/app/cart/domain"
	"github.com/murkotick/grocery-pos-service/internal/app/cart/session"
	"github.com/murkotick/grocery-pos-service/internal/app/cart/usecases/usecasetest"
)

func setup(t *testing.T, gw *usecasetest.Gateway) (*Interactor, *contracts.Session) {
	t.Helper()
	store := session.NewMemoryStore(nil)
	s, err := store.Create(domain.KindSale, 3)
	require.NoError(t, err)

	d, err := domain.NewDiscount(domain.MustMoney("5").Decimal())
	require.NoError(t, err)
	p, err := domain.NewProduct(1, "olive oil", domain.MustMoney("28.75"), domain.MustMoney("19.10"), d, nil, "")
	require.NoError(t, err)
	require.NoError(t, s.Cart.AddProduct(p, 2))
	return NewInteractor(store, gw, zaptest.NewLogger(t)), s
}

func TestFinalize_Success(t *testing.T) {
	gw := &usecasetest.Gateway{}
	it, s := setup(t, gw)
	require.NoError(t, s.Cart.SetTendered(domain.MustMoney("60")))

	resp, err := it.Execute(context.Background(), Request{CartID: s.ID, UserID: 3})
	require.NoError(t, err)
	assert.Equal(t, "tx-1", resp.Result.TransactionID)
	assert.Equal(t, "54.62", resp.Result.Total)
	assert.Equal(t, "empty", resp.Cart.Phase)
	assert.Empty(t, resp.Cart.Lines)

	require.Len(t, gw.Requests, 1)
	req := gw.Requests[0]
	assert.Equal(t, int64(3), req.UserID)
	assert.Equal(t, "60.00", req.Amount.String())
	assert.Equal(t, domain.PaymentPaid, req.PaymentState)
	require.Len(t, req.Lines, 1)
	assert.Equal(t, 2, req.Lines[0].Quantity)
}

func TestFinalize_GateFailureSubmitsNothing(t *testing.T) {
	gw := &usecasetest.Gateway{}
	it, s := setup(t, gw)

	_, err := it.Execute(context.Background(), Request{CartID: s.ID, UserID: 3})
	assert.ErrorIs(t, err, domain.ErrInsufficientTender)
	assert.Empty(t, gw.Requests)
}

func TestFinalize_SubmissionFailureKeepsCart(t *testing.T) {
	gw := &usecasetest.Gateway{Err: errors.New("connection refused")}
	it, s := setup(t, gw)
	require.NoError(t, s.Cart.SetTendered(domain.MustMoney("60")))

	_, err := it.Execute(context.Background(), Request{CartID: s.ID, UserID: 3})
	assert.ErrorIs(t, err, contracts.ErrSubmissionFailed)
	assert.Contains(t, err.Error(), "connection refused")
	assert.Len(t, s.Cart.Lines(), 1)
	assert.Equal(t, "54.62", s.Cart.Subtotal().String())

	// retry goes through once the backend recovers
	gw.Err = nil
	resp, err := it.Execute(context.Background(), Request{CartID: s.ID, UserID: 3})
	require.NoError(t, err)
	assert.Empty(t, resp.Cart.Lines)
	assert.Len(t, gw.Requests, 2)
}

func TestFinalize_PendingSaleNeedsClient(t *testing.T) {
	gw := &usecasetest.Gateway{}
	it, s := setup(t, gw)
	require.NoError(t, s.Cart.SetPaymentState(domain.PaymentPending))

	_, err := it.Execute(context.Background(), Request{CartID: s.ID, UserID: 3})
	assert.ErrorIs(t, err, domain.ErrMissingCounterparty)

	id := int64(77)
	s.Cart.SetCounterparty(&id)
	resp, err := it.Execute(context.Background(), Request{CartID: s.ID, UserID: 3})
	require.NoError(t, err)
	assert.NotNil(t, resp.Result)
	require.NotNil(t, gw.Requests[0].CounterpartyID)
	assert.Equal(t, int64(77), *gw.Requests[0].CounterpartyID)
}
