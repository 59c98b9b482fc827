package shared

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/murkotick/grocery-pos-service/internal/app/cart/domain"
	"github.com/murkotick/grocery-pos-service/internal/app/cart/dto"
)

const StatusActive = "active"

var (
	// ErrProductReferenceRequired indicates an add request with neither a product id nor a barcode.
	ErrProductReferenceRequired = errors.New("product id or barcode is required")

	// ErrProductInactive indicates a catalog product that can no longer be sold or bought.
	ErrProductInactive = errors.New("product is not active")
)

// ProductFromDTO rebuilds the domain product from its catalog view.
func ProductFromDTO(p *dto.ProductDTO) (domain.Product, error) {
	if p == nil {
		return domain.Product{}, domain.ErrProductNotFound
	}
	if p.Status != "" && p.Status != StatusActive {
		return domain.Product{}, fmt.Errorf("%w: %d", ErrProductInactive, p.ProductID)
	}

	price, err := domain.NewMoneyFromDecimal(p.Price)
	if err != nil {
		return domain.Product{}, fmt.Errorf("product %d price: %w", p.ProductID, err)
	}
	cost, err := domain.NewMoneyFromDecimal(p.Cost)
	if err != nil {
		return domain.Product{}, fmt.Errorf("product %d cost: %w", p.ProductID, err)
	}

	discount := domain.NoDiscount
	if p.DiscountPercent != nil && *p.DiscountPercent != "" {
		pct, err := decimal.NewFromString(*p.DiscountPercent)
		if err != nil {
			return domain.Product{}, fmt.Errorf("%w: %q", domain.ErrInvalidDiscount, *p.DiscountPercent)
		}
		if discount, err = domain.NewDiscount(pct); err != nil {
			return domain.Product{}, err
		}
	}

	var stock *int
	if p.Stock != nil {
		s := int(*p.Stock)
		stock = &s
	}

	barcode := ""
	if p.Barcode != nil {
		barcode = *p.Barcode
	}
	return domain.NewProduct(p.ProductID, p.Name, price, cost, discount, stock, barcode)
}
