package domain

import (
	"errors"
	"fmt"
)

// Domain errors for input boundaries. These indicate a caller bug.
var (
	// ErrInvalidQuantity indicates a quantity below 1 or above MaxLineQuantity.
	ErrInvalidQuantity = errors.New("quantity must be a positive integer")

	// ErrInvalidDiscount indicates a discount percentage outside [0, 100].
	ErrInvalidDiscount = errors.New("discount percentage must be between 0 and 100")

	// ErrInvalidPrice indicates a missing or negative unit price or cost.
	ErrInvalidPrice = errors.New("price must be a non-negative amount")

	// ErrInvalidStock indicates a negative stock quantity.
	ErrInvalidStock = errors.New("stock cannot be negative")

	// ErrInvalidTender indicates a negative tendered amount.
	ErrInvalidTender = errors.New("tendered amount cannot be negative")
)

// Domain errors for the cart engine.
var (
	// ErrInsufficientStock indicates a sale add that would exceed the known stock.
	// The concrete error is *InsufficientStockError.
	ErrInsufficientStock = errors.New("insufficient stock")

	// ErrProductNotFound indicates that no catalog product matches an id or barcode.
	ErrProductNotFound = errors.New("product not found")

	// ErrLineNotFound indicates that the cart has no line for the product.
	ErrLineNotFound = errors.New("product is not in the cart")

	// ErrPaymentStateNotApplicable indicates a payment state change on a purchase cart.
	ErrPaymentStateNotApplicable = errors.New("payment state only applies to sales")

	// ErrInvalidPaymentState indicates an unknown payment state.
	ErrInvalidPaymentState = errors.New("unknown payment state")

	// ErrInvalidKind indicates an unknown cart kind.
	ErrInvalidKind = errors.New("unknown cart kind")
)

// Domain errors raised by the finalize gate.
var (
	// ErrEmptyCart indicates a finalize attempt with no line items.
	ErrEmptyCart = errors.New("cart is empty")

	// ErrMissingCounterparty indicates a pending sale without a client.
	ErrMissingCounterparty = errors.New("a client is required for pending sales")

	// ErrInsufficientTender indicates a tendered amount below the subtotal where full payment is required.
	ErrInsufficientTender = errors.New("tendered amount is less than the total")

	// ErrCartNotValidated indicates a submission without a fresh validation.
	ErrCartNotValidated = errors.New("cart must be validated before submission")
)

// InsufficientStockError carries the units that can still be added for a product.
type InsufficientStockError struct {
	ProductID int64
	Requested int
	Available int
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("insufficient stock for product %d: requested %d, available %d",
		e.ProductID, e.Requested, e.Available)
}

// Is lets errors.Is(err, ErrInsufficientStock) match.
func (e *InsufficientStockError) Is(target error) bool {
	return target == ErrInsufficientStock
}
