package open_cart

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/murkotick/grocery-pos-service/internal/app/cart/domain"
	"github.com/murkotick/grocery-pos-service/internal/app/cart/session"
)

func TestOpenCart(t *testing.T) {
	it := NewInteractor(session.NewMemoryStore(nil))

	view, err := it.Execute(context.Background(), Request{Kind: "sale", UserID: 1})
	require.NoError(t, err)
	assert.NotEmpty(t, view.CartID)
	assert.Equal(t, "paid", view.PaymentState)
	assert.Equal(t, "0.00", view.Tendered)

	_, err = it.Execute(context.Background(), Request{Kind: "refund", UserID: 1})
	assert.ErrorIs(t, err, domain.ErrInvalidKind)
}
