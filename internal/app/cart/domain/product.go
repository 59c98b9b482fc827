package domain

import "strings"

// Product is the read-only view of a catalog product consumed by the cart.
// It is owned by the catalog; the cart snapshots what it needs at add time.
type Product struct {
	ID       int64
	Name     string
	Price    *Money
	Cost     *Money
	Discount Discount
	// Stock is nil when the quantity on hand is unknown (unbounded).
	Stock   *int
	Barcode string
}

// NewProduct validates catalog fields and builds a Product.
func NewProduct(id int64, name string, price, cost *Money, discount Discount, stock *int, barcode string) (Product, error) {
	if err := validatePrice(price); err != nil {
		return Product{}, err
	}
	if err := validatePrice(cost); err != nil {
		return Product{}, err
	}
	if stock != nil && *stock < 0 {
		return Product{}, ErrInvalidStock
	}
	return Product{
		ID:       id,
		Name:     strings.TrimSpace(name),
		Price:    price,
		Cost:     cost,
		Discount: discount,
		Stock:    stock,
		Barcode:  strings.TrimSpace(barcode),
	}, nil
}

// HasKnownStock reports whether the product carries a stock ceiling.
func (p Product) HasKnownStock() bool {
	return p.Stock != nil
}

// FindByBarcode returns the product whose barcode equals code exactly.
// Returns ErrProductNotFound when nothing matches or code is empty.
func FindByBarcode(products []Product, code string) (Product, error) {
	if code == "" {
		return Product{}, ErrProductNotFound
	}
	for _, p := range products {
		if p.Barcode != "" && p.Barcode == code {
			return p, nil
		}
	}
	return Product{}, ErrProductNotFound
}

func validatePrice(price *Money) error {
	if price == nil || price.IsNegative() {
		return ErrInvalidPrice
	}
	return nil
}
