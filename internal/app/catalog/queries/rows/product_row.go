package rows

import (
	"fmt"

	"github.com/murkotick/grocery-pos-service/internal/app/cart/domain"
	"github.com/murkotick/grocery-pos-service/internal/app/cart/dto"
	"github.com/murkotick/grocery-pos-service/internal/models/m_product"
)

// ToDTO converts a products row into its catalog view.
func ToDTO(r m_product.Row) (*dto.ProductDTO, error) {
	price, err := money(r.PriceNumerator, r.PriceDenominator)
	if err != nil {
		return nil, fmt.Errorf("product %d price: %w", r.ProductID, err)
	}
	cost, err := money(r.CostNumerator, r.CostDenominator)
	if err != nil {
		return nil, fmt.Errorf("product %d cost: %w", r.ProductID, err)
	}

	out := &dto.ProductDTO{
		ProductID: r.ProductID,
		Name:      r.Name,
		Category:  r.Category,
		Price:     price,
		Cost:      cost,
		Status:    r.Status,
	}
	if r.Barcode.Valid {
		b := r.Barcode.StringVal
		out.Barcode = &b
	}
	if r.DiscountPercent.Valid && r.DiscountPercent.StringVal != "" {
		d := r.DiscountPercent.StringVal
		out.DiscountPercent = &d
	}
	if r.Stock.Valid {
		s := r.Stock.Int64
		out.Stock = &s
	}
	return out, nil
}

func money(num, den int64) (string, error) {
	if den == 0 {
		return "", domain.ErrInvalidPrice
	}
	return domain.NewMoney(num, den).String(), nil
}
