package services

import (
	"github.com/murkotick/grocery-pos-service/internal/app/cart/domain"
)

// Checkout is a domain service for the finalize step of a cart.
// It sits between the cart aggregate and whatever submits the transaction.
type Checkout struct{}

// NewCheckout creates a new Checkout instance.
func NewCheckout() *Checkout {
	return &Checkout{}
}

// Prepare validates the cart and projects it into a request on behalf of userID.
// The cart contents are left unchanged whether or not validation passes.
func (c *Checkout) Prepare(cart *domain.Cart, userID int64) (*domain.TransactionRequest, error) {
	if err := cart.Validate(); err != nil {
		return nil, err
	}
	return domain.ToRequest(cart, userID), nil
}

// Complete marks the cart as submitted and returns it to the empty state.
func (c *Checkout) Complete(cart *domain.Cart) error {
	if err := cart.MarkSubmitted(); err != nil {
		return err
	}
	cart.Reset()
	return nil
}

// Summary is a read-only snapshot of the cart aggregates.
type Summary struct {
	Subtotal      *domain.Money
	TotalDiscount *domain.Money
	ItemCount     int
	LineCount     int
	Tendered      *domain.Money
	ChangeDue     *domain.Money
}

// Summarize computes the aggregates the checkout screen shows.
func (c *Checkout) Summarize(cart *domain.Cart) Summary {
	return Summary{
		Subtotal:      cart.Subtotal(),
		TotalDiscount: cart.TotalDiscount(),
		ItemCount:     cart.ItemCount(),
		LineCount:     len(cart.Lines()),
		Tendered:      cart.Tendered(),
		ChangeDue:     cart.ChangeDue(cart.Tendered()),
	}
}
