package domain

// MaxLineQuantity caps the units on a single line so quantity and item
// count arithmetic stays well inside int.
const MaxLineQuantity = 1_000_000

// LineItem is one product row of an in-progress transaction.
// Unit price and discount are snapshotted when the line is created and never change;
// only the quantity is mutable.
type LineItem struct {
	productID  int64
	name       string
	quantity   int
	unitPrice  *Money
	discount   Discount
	discounted *Money
	stockLimit *int
}

// NewLineItem validates the inputs and snapshots pricing for a new line.
// unitPrice is rounded to currency; the discount must already be a valid Discount.
func NewLineItem(productID int64, name string, unitPrice *Money, discount Discount, quantity int) (*LineItem, error) {
	if quantity < 1 || quantity > MaxLineQuantity {
		return nil, ErrInvalidQuantity
	}
	if err := validatePrice(unitPrice); err != nil {
		return nil, err
	}
	// Guard against a zero-value Discount built outside NewDiscount.
	if _, err := NewDiscount(discount.Percent()); err != nil {
		return nil, err
	}

	price := RoundCurrency(unitPrice)
	return &LineItem{
		productID:  productID,
		name:       name,
		quantity:   quantity,
		unitPrice:  price,
		discount:   discount,
		discounted: discount.ApplyTo(price),
	}, nil
}

func (li *LineItem) ProductID() int64 {
	return li.productID
}

func (li *LineItem) Name() string {
	return li.name
}

func (li *LineItem) Quantity() int {
	return li.quantity
}

func (li *LineItem) UnitPrice() *Money {
	return li.unitPrice
}

func (li *LineItem) Discount() Discount {
	return li.discount
}

// DiscountedUnitPrice is unitPrice with the snapshotted discount applied, rounded to currency.
func (li *LineItem) DiscountedUnitPrice() *Money {
	return li.discounted
}

// LineTotal is DiscountedUnitPrice * Quantity, rounded to currency.
func (li *LineItem) LineTotal() *Money {
	return LineTotal(li.discounted, li.quantity)
}

// GrossTotal is UnitPrice * Quantity before any discount.
func (li *LineItem) GrossTotal() *Money {
	return li.unitPrice.MultiplyByQuantity(li.quantity)
}

// Savings is what the discount took off this line. Never negative.
func (li *LineItem) Savings() *Money {
	s := li.GrossTotal().Subtract(li.LineTotal())
	if s.IsNegative() {
		return Zero()
	}
	return s
}

// StockLimit is the stock ceiling recorded for sale lines, nil when unbounded.
func (li *LineItem) StockLimit() *int {
	return li.stockLimit
}

// AtStockLimit reports whether one more unit would exceed the recorded ceiling.
func (li *LineItem) AtStockLimit() bool {
	return li.stockLimit != nil && li.quantity >= *li.stockLimit
}
