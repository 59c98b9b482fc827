package remove_product

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/murkotick/grocery-pos-service/internal/app/cart/domain"
	"github.com/murkotick/grocery-pos-service/internal/app/cart/session"
)

func TestRemoveProduct(t *testing.T) {
	store := session.NewMemoryStore(nil)
	s, err := store.Create(domain.KindSale, 1)
	require.NoError(t, err)
	for _, id := range []int64{1, 2, 3} {
		p, err := domain.NewProduct(id, "item", domain.MustMoney("1.00"), domain.MustMoney("0.50"), domain.NoDiscount, nil, "")
		require.NoError(t, err)
		require.NoError(t, s.Cart.AddProduct(p, 1))
	}

	it := NewInteractor(store)
	resp, err := it.Execute(context.Background(), Request{CartID: s.ID, UserID: 1, ProductID: 2})
	require.NoError(t, err)
	assert.True(t, resp.Removed)
	require.Len(t, resp.Cart.Lines, 2)
	assert.Equal(t, int64(1), resp.Cart.Lines[0].ProductID)
	assert.Equal(t, int64(3), resp.Cart.Lines[1].ProductID)

	resp, err = it.Execute(context.Background(), Request{CartID: s.ID, UserID: 1, ProductID: 2})
	require.NoError(t, err)
	assert.False(t, resp.Removed)
	assert.Len(t, resp.Cart.Lines, 2)
}
