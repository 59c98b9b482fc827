package domain

// RequestLine is one {product, quantity} pair of an outbound request.
// Discount is set for sale lines only.
type RequestLine struct {
	ProductID int64
	Quantity  int
	Discount  *Discount
}

// TransactionRequest is the read-only projection of a finalized cart handed to
// the create-sale / create-purchase collaborator.
type TransactionRequest struct {
	Kind           Kind
	CounterpartyID *int64
	UserID         int64
	Lines          []RequestLine
	Amount         *Money
	Total          *Money
	// PaymentState is empty for purchases.
	PaymentState PaymentState
}

// ToRequest projects the cart into a TransactionRequest on behalf of userID.
// It never mutates the cart; call it only after Validate succeeded.
func ToRequest(c *Cart, userID int64) *TransactionRequest {
	req := &TransactionRequest{
		Kind:   c.kind,
		UserID: userID,
		Lines:  make([]RequestLine, 0, len(c.lines)),
		Amount: c.tendered,
		Total:  c.Subtotal(),
	}
	if c.counterpartyID != nil {
		id := *c.counterpartyID
		req.CounterpartyID = &id
	}
	if c.kind == KindSale {
		req.PaymentState = c.paymentState
	}

	for _, line := range c.lines {
		rl := RequestLine{ProductID: line.productID, Quantity: line.quantity}
		if c.kind == KindSale {
			d := line.discount
			rl.Discount = &d
		}
		req.Lines = append(req.Lines, rl)
	}
	return req
}

// ItemCount is the total number of units in the request.
func (r *TransactionRequest) ItemCount() int {
	n := 0
	for _, l := range r.Lines {
		n += l.Quantity
	}
	return n
}
