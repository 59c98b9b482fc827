package dto

import (
	"encoding/json"

	"github.com/murkotick/grocery-pos-service/internal/app/cart/domain"
)

// Wire values of the sale state expected by the backend.
const (
	SaleStatePaid    = "pagada"
	SaleStatePending = "pendiente"
)

// IDRef is the {"id": n} object the backend uses for references.
type IDRef struct {
	ID int64 `json:"id"`
}

// SaleProduct is one line of a SaleRequest.
type SaleProduct struct {
	Product  IDRef        `json:"product"`
	Quantity int          `json:"quantity"`
	Discount *json.Number `json:"discount,omitempty"`
}

// SaleRequest is the create-sale payload.
type SaleRequest struct {
	Client       *IDRef        `json:"client,omitempty"`
	User         IDRef         `json:"user"`
	SaleProducts []SaleProduct `json:"saleProducts"`
	Amount       *json.Number  `json:"amount,omitempty"`
	State        string        `json:"state,omitempty"`
	Total        *json.Number  `json:"total,omitempty"`
}

// ShoppingProduct is one line of a ShoppingRequest.
type ShoppingProduct struct {
	Product  IDRef `json:"product"`
	Quantity int   `json:"quantity"`
}

// ShoppingRequest is the create-purchase payload.
type ShoppingRequest struct {
	Supplier         *IDRef            `json:"supplier,omitempty"`
	User             IDRef             `json:"user"`
	ShoppingProducts []ShoppingProduct `json:"shoppingProducts"`
	Amount           *json.Number      `json:"amount,omitempty"`
	Total            *json.Number      `json:"total,omitempty"`
}

// NewSaleRequest maps a sale projection onto the wire shape.
func NewSaleRequest(req *domain.TransactionRequest) SaleRequest {
	out := SaleRequest{
		User:         IDRef{ID: req.UserID},
		SaleProducts: make([]SaleProduct, 0, len(req.Lines)),
		Amount:       moneyNumber(req.Amount),
		State:        SaleStateFromDomain(req.PaymentState),
		Total:        moneyNumber(req.Total),
	}
	if req.CounterpartyID != nil {
		out.Client = &IDRef{ID: *req.CounterpartyID}
	}
	for _, l := range req.Lines {
		sp := SaleProduct{Product: IDRef{ID: l.ProductID}, Quantity: l.Quantity}
		if l.Discount != nil && !l.Discount.IsZero() {
			n := json.Number(l.Discount.Percent().String())
			sp.Discount = &n
		}
		out.SaleProducts = append(out.SaleProducts, sp)
	}
	return out
}

// NewShoppingRequest maps a purchase projection onto the wire shape.
func NewShoppingRequest(req *domain.TransactionRequest) ShoppingRequest {
	out := ShoppingRequest{
		User:             IDRef{ID: req.UserID},
		ShoppingProducts: make([]ShoppingProduct, 0, len(req.Lines)),
		Amount:           moneyNumber(req.Amount),
		Total:            moneyNumber(req.Total),
	}
	if req.CounterpartyID != nil {
		out.Supplier = &IDRef{ID: *req.CounterpartyID}
	}
	for _, l := range req.Lines {
		out.ShoppingProducts = append(out.ShoppingProducts, ShoppingProduct{
			Product:  IDRef{ID: l.ProductID},
			Quantity: l.Quantity,
		})
	}
	return out
}

// SaleStateFromDomain returns the backend spelling of a payment state.
func SaleStateFromDomain(s domain.PaymentState) string {
	switch s {
	case domain.PaymentPaid:
		return SaleStatePaid
	case domain.PaymentPending:
		return SaleStatePending
	}
	return ""
}

func moneyNumber(m *domain.Money) *json.Number {
	if m == nil {
		return nil
	}
	n := json.Number(m.String())
	return &n
}
