package domain

// Cart is the in-progress collection of line items for one sale or purchase.
// Lines are unique by product id and kept in insertion order. Totals are
// never stored; every aggregate is computed from the current lines on read.
//
// A Cart has a single owner and is not safe for concurrent use.
type Cart struct {
	kind           Kind
	lines          []*LineItem
	counterpartyID *int64
	tendered       *Money
	paymentState   PaymentState
	phase          Phase
}

// NewCart creates an empty cart of the given kind.
func NewCart(kind Kind) (*Cart, error) {
	if _, err := ParseKind(string(kind)); err != nil {
		return nil, err
	}
	c := &Cart{kind: kind}
	c.Reset()
	return c, nil
}

// Getters

func (c *Cart) Kind() Kind {
	return c.kind
}

// Lines returns the line items in insertion order. The slice is a copy.
func (c *Cart) Lines() []*LineItem {
	out := make([]*LineItem, len(c.lines))
	copy(out, c.lines)
	return out
}

// Line returns the line for productID, if present.
func (c *Cart) Line(productID int64) (*LineItem, bool) {
	if i := c.indexOf(productID); i >= 0 {
		return c.lines[i], true
	}
	return nil, false
}

func (c *Cart) CounterpartyID() *int64 {
	return c.counterpartyID
}

func (c *Cart) Tendered() *Money {
	return c.tendered
}

func (c *Cart) PaymentState() PaymentState {
	return c.paymentState
}

func (c *Cart) Phase() Phase {
	return c.phase
}

func (c *Cart) IsEmpty() bool {
	return len(c.lines) == 0
}

// Line operations

// AddProduct adds quantity units of product. An existing line for the product
// is incremented and keeps its original price and discount snapshot.
//
// Sale carts enforce the product's known stock against the resulting quantity
// and fail with *InsufficientStockError without changing the cart.
func (c *Cart) AddProduct(product Product, quantity int) error {
	if quantity < 1 {
		return ErrInvalidQuantity
	}

	existing := 0
	idx := c.indexOf(product.ID)
	if idx >= 0 {
		existing = c.lines[idx].quantity
	}

	if quantity > MaxLineQuantity-existing {
		return ErrInvalidQuantity
	}

	if c.kind == KindSale && product.Stock != nil && quantity > *product.Stock-existing {
		available := *product.Stock - existing
		if available < 0 {
			available = 0
		}
		return &InsufficientStockError{
			ProductID: product.ID,
			Requested: quantity,
			Available: available,
		}
	}

	if idx >= 0 {
		line := c.lines[idx]
		line.quantity += quantity
		if c.kind == KindSale {
			line.stockLimit = copyStock(product.Stock)
		}
		c.touch()
		return nil
	}

	line, err := c.newLine(product, quantity)
	if err != nil {
		return err
	}
	c.lines = append(c.lines, line)
	c.touch()
	return nil
}

func (c *Cart) newLine(product Product, quantity int) (*LineItem, error) {
	if c.kind == KindPurchase {
		return NewLineItem(product.ID, product.Name, product.Cost, NoDiscount, quantity)
	}

	line, err := NewLineItem(product.ID, product.Name, product.Price, product.Discount, quantity)
	if err != nil {
		return nil, err
	}
	line.stockLimit = copyStock(product.Stock)
	return line, nil
}

// IncrementQuantity adds one unit to the line for productID.
// On a sale cart already at its stock ceiling this is a no-op and returns false.
func (c *Cart) IncrementQuantity(productID int64) (bool, error) {
	idx := c.indexOf(productID)
	if idx < 0 {
		return false, ErrLineNotFound
	}
	line := c.lines[idx]
	if c.kind == KindSale && line.AtStockLimit() {
		return false, nil
	}
	if line.quantity >= MaxLineQuantity {
		return false, ErrInvalidQuantity
	}
	line.quantity++
	c.touch()
	return true, nil
}

// DecrementQuantity removes one unit from the line for productID.
// A line at quantity 1 is left unchanged and false is returned; use RemoveProduct to delete it.
func (c *Cart) DecrementQuantity(productID int64) (bool, error) {
	idx := c.indexOf(productID)
	if idx < 0 {
		return false, ErrLineNotFound
	}
	line := c.lines[idx]
	if line.quantity <= 1 {
		return false, nil
	}
	line.quantity--
	c.touch()
	return true, nil
}

// RemoveProduct deletes the line for productID. Returns false when no such line exists.
func (c *Cart) RemoveProduct(productID int64) bool {
	idx := c.indexOf(productID)
	if idx < 0 {
		return false
	}
	c.lines = append(c.lines[:idx], c.lines[idx+1:]...)
	c.touch()
	return true
}

// Reset empties the cart and restores counterparty, tender and payment state to defaults.
func (c *Cart) Reset() {
	c.lines = nil
	c.counterpartyID = nil
	c.tendered = Zero()
	c.paymentState = PaymentPaid
	c.phase = PhaseEmpty
}

// Checkout fields

// SetCounterparty sets the client (sale) or supplier (purchase). nil clears it.
func (c *Cart) SetCounterparty(id *int64) {
	if id != nil {
		v := *id
		id = &v
	}
	c.counterpartyID = id
	c.touch()
}

// SetTendered sets the amount offered by the counterparty.
func (c *Cart) SetTendered(amount *Money) error {
	if amount == nil {
		amount = Zero()
	}
	if amount.IsNegative() {
		return ErrInvalidTender
	}
	c.tendered = amount
	c.touch()
	return nil
}

// SetPaymentState marks a sale as paid or pending. Purchases are always settled up front.
func (c *Cart) SetPaymentState(state PaymentState) error {
	if c.kind != KindSale {
		return ErrPaymentStateNotApplicable
	}
	if _, err := ParsePaymentState(string(state)); err != nil {
		return err
	}
	c.paymentState = state
	c.touch()
	return nil
}

// Aggregates

// Subtotal is the sum of all line totals.
func (c *Cart) Subtotal() *Money {
	sum := Zero()
	for _, line := range c.lines {
		sum = sum.Add(line.LineTotal())
	}
	return sum
}

// TotalDiscount is what the discounts took off across all lines.
func (c *Cart) TotalDiscount() *Money {
	sum := Zero()
	for _, line := range c.lines {
		sum = sum.Add(line.Savings())
	}
	return sum
}

// ItemCount is the total number of units, not the number of lines.
func (c *Cart) ItemCount() int {
	n := 0
	for _, line := range c.lines {
		n += line.quantity
	}
	return n
}

// ChangeDue is tendered - Subtotal. Negative means the tender is short.
func (c *Cart) ChangeDue(tendered *Money) *Money {
	return tendered.Subtract(c.Subtotal())
}

// Finalize gate

// RequiresCounterparty reports whether finalizing needs a counterparty.
func (c *Cart) RequiresCounterparty() bool {
	return c.kind == KindSale && c.paymentState == PaymentPending
}

// RequiresFullTender reports whether finalizing needs tender >= subtotal.
func (c *Cart) RequiresFullTender() bool {
	return c.kind == KindPurchase || c.paymentState == PaymentPaid
}

// Validate runs the finalize gate and, on success, moves the cart to PhaseValidated.
// The cart contents are never changed.
func (c *Cart) Validate() error {
	if len(c.lines) == 0 {
		return ErrEmptyCart
	}
	if c.RequiresCounterparty() && c.counterpartyID == nil {
		return ErrMissingCounterparty
	}
	if c.RequiresFullTender() && c.tendered.LessThan(c.Subtotal()) {
		return ErrInsufficientTender
	}
	c.phase = PhaseValidated
	return nil
}

// MarkSubmitted records that the validated cart was accepted by the backend.
func (c *Cart) MarkSubmitted() error {
	if c.phase != PhaseValidated {
		return ErrCartNotValidated
	}
	c.phase = PhaseSubmitted
	return nil
}

// touch invalidates any previous validation after a mutation.
func (c *Cart) touch() {
	if len(c.lines) == 0 {
		c.phase = PhaseEmpty
		return
	}
	c.phase = PhaseBuilding
}

func (c *Cart) indexOf(productID int64) int {
	for i, line := range c.lines {
		if line.productID == productID {
			return i
		}
	}
	return -1
}

func copyStock(stock *int) *int {
	if stock == nil {
		return nil
	}
	v := *stock
	return &v
}
