package shared

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/murkotick/grocery-pos-service/internal/app/cart/domain"
	"github.com/murkotick/grocery-pos-service/internal/app/cart/dto"
)

func strPtr(s string) *string { return &s }
func i64Ptr(v int64) *int64 { return &v }

func TestProductFromDTO(t *testing.T) {
	p, err := ProductFromDTO(&dto.ProductDTO{
		ProductID:       11,
		Name:            "olive oil 500ml",
		Barcode:         strPtr("7790001000011"),
		Price:           "28.75",
		Cost:            "19.10",
		DiscountPercent: strPtr("5"),
		Stock:           i64Ptr(4),
		Status:          StatusActive,
	})
	require.NoError(t, err)

	assert.Equal(t, int64(11), p.ID)
	assert.Equal(t, "28.75", p.Price.String())
	assert.Equal(t, "19.10", p.Cost.String())
	assert.Equal(t, "5", p.Discount.Percent().String())
	require.NotNil(t, p.Stock)
	assert.Equal(t, 4, *p.Stock)
	assert.Equal(t, "7790001000011", p.Barcode)
}

func TestProductFromDTO_Defaults(t *testing.T) {
	p, err := ProductFromDTO(&dto.ProductDTO{ProductID: 2, Name: "bread", Price: "1.20", Cost: "0.80"})
	require.NoError(t, err)
	assert.True(t, p.Discount.IsZero())
	assert.Nil(t, p.Stock)
	assert.False(t, p.HasKnownStock())
}

func TestProductFromDTO_Errors(t *testing.T) {
	tests := []struct {
		name string
		in   *dto.ProductDTO
		want error
	}{
		{"nil", nil, domain.ErrProductNotFound},
		{"inactive", &dto.ProductDTO{ProductID: 1, Price: "1", Cost: "1", Status: "inactive"}, ErrProductInactive},
		{"discount above range", &dto.ProductDTO{ProductID: 1, Price: "1", Cost: "1", DiscountPercent: strPtr("120")}, domain.ErrInvalidDiscount},
		{"discount not a number", &dto.ProductDTO{ProductID: 1, Price: "1", Cost: "1", DiscountPercent: strPtr("ten")}, domain.ErrInvalidDiscount},
		{"negative price", &dto.ProductDTO{ProductID: 1, Price: "-1", Cost: "1"}, domain.ErrInvalidPrice},
		{"negative stock", &dto.ProductDTO{ProductID: 1, Price: "1", Cost: "1", Stock: i64Ptr(-2)}, domain.ErrInvalidStock},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ProductFromDTO(tt.in)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}
