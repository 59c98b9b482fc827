package domain

// Kind distinguishes the two cart variants.
type Kind string

const (
	// KindSale sells to a client: discounts apply and stock is a ceiling.
	KindSale Kind = "sale"

	// KindPurchase buys from a supplier: cost price, no discount, no stock ceiling.
	KindPurchase Kind = "purchase"
)

// ParseKind validates a kind string.
func ParseKind(s string) (Kind, error) {
	switch Kind(s) {
	case KindSale, KindPurchase:
		return Kind(s), nil
	}
	return "", ErrInvalidKind
}

// PaymentState is the settlement status of a sale.
type PaymentState string

const (
	// PaymentPaid requires the full total to be tendered up front.
	PaymentPaid PaymentState = "paid"

	// PaymentPending is a credit sale; a client must be set.
	PaymentPending PaymentState = "pending"
)

// ParsePaymentState validates a payment state string.
func ParsePaymentState(s string) (PaymentState, error) {
	switch PaymentState(s) {
	case PaymentPaid, PaymentPending:
		return PaymentState(s), nil
	}
	return "", ErrInvalidPaymentState
}

// Phase is the lifecycle position of an in-progress transaction.
type Phase string

const (
	PhaseEmpty     Phase = "empty"
	PhaseBuilding  Phase = "building"
	PhaseValidated Phase = "validated"
	PhaseSubmitted Phase = "submitted"
)
