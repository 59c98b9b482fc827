package list_products

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/murkotick/grocery-pos-service/internal/app/cart/usecases/usecasetest"
)

func TestHandler_Paging(t *testing.T) {
	catalog := usecasetest.NewCatalog(
		usecasetest.Product(1, "apples", "1.00", "0.50", "", nil, ""),
		usecasetest.Product(2, "bananas", "1.00", "0.50", "", nil, ""),
		usecasetest.Product(3, "cherries", "1.00", "0.50", "", nil, ""),
	)
	h := NewHandler(catalog)

	got, err := h.Execute(context.Background(), nil, 2, 1)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "bananas", got[0].Name)

	got, err = h.Execute(context.Background(), nil, 0, -5)
	require.NoError(t, err)
	assert.Len(t, got, 3)

	empty := ""
	got, err = h.Execute(context.Background(), &empty, MaxLimit+10, 0)
	require.NoError(t, err)
	assert.Len(t, got, 3)
}
