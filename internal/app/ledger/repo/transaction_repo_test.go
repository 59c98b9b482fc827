package repo

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/murkotick/grocery-pos-service/internal/app/cart/domain"
	"github.com/murkotick/grocery-pos-service/internal/models/m_sale"
	"github.com/murkotick/grocery-pos-service/internal/models/m_shopping"
)

var at = time.Date(2026, 2, 14, 12, 0, 0, 0, time.UTC)

func request(t *testing.T, kind domain.Kind) *domain.TransactionRequest {
	t.Helper()
	c, err := domain.NewCart(kind)
	require.NoError(t, err)
	d, err := domain.NewDiscount(domain.MustMoney("10").Decimal())
	require.NoError(t, err)
	for _, id := range []int64{1, 2} {
		p, err := domain.NewProduct(id, "item", domain.MustMoney("2.50"), domain.MustMoney("1.00"), d, nil, "")
		require.NoError(t, err)
		require.NoError(t, c.AddProduct(p, 2))
	}
	require.NoError(t, c.SetTendered(domain.MustMoney("10")))
	require.NoError(t, c.Validate())
	return domain.ToRequest(c, 5)
}

// TestBuildSaleValues checks the money columns and the wire spelling of the state.
func TestBuildSaleValues(t *testing.T) {
	req := request(t, domain.KindSale)

	values := buildSaleValues("s-1", req, at)
	assert.Equal(t, "s-1", values[m_sale.ColSaleID])
	assert.Equal(t, "pagada", values[m_sale.ColState])
	assert.Equal(t, int64(4), values[m_sale.ColItemCount])
	assert.Nil(t, values[m_sale.ColClientID])

	// 2 x 2.25 x 2 = 9.00
	assert.Equal(t, req.Total.Numerator(), values[m_sale.ColTotalNumerator])
	assert.Equal(t, req.Total.Denominator(), values[m_sale.ColTotalDenominator])
	assert.Equal(t, "9.00", req.Total.String())
	assert.Equal(t, int64(10), values[m_sale.ColAmountNumerator])
	assert.Equal(t, int64(1), values[m_sale.ColAmountDenominator])
}

func TestBuildShoppingValues(t *testing.T) {
	req := request(t, domain.KindPurchase)
	supplier := int64(12)
	req.CounterpartyID = &supplier

	values := buildShoppingValues("p-1", req, at)
	assert.Equal(t, int64(12), values[m_shopping.ColSupplierID])
	assert.Equal(t, at, values[m_shopping.ColCreatedAt])
	assert.Equal(t, "4.00", req.Total.String())
}

func TestInsertMuts(t *testing.T) {
	r := NewTransactionRepo()

	muts, err := r.InsertMuts("s-1", request(t, domain.KindSale), at)
	require.NoError(t, err)
	assert.Len(t, muts, 3)

	muts, err = r.InsertMuts("p-1", request(t, domain.KindPurchase), at)
	require.NoError(t, err)
	assert.Len(t, muts, 3)

	req := request(t, domain.KindSale)
	req.Kind = "refund"
	_, err = r.InsertMuts("x", req, at)
	assert.ErrorIs(t, err, domain.ErrInvalidKind)
}

func TestOutboxRepo_NilEvent(t *testing.T) {
	m, err := NewOutboxRepo().InsertMut(nil)
	assert.NoError(t, err)
	assert.Nil(t, m)
}
