package cart

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"github.com/murkotick/grocery-pos-service/internal/app/cart/dto"
	"github.com/murkotick/grocery-pos-service/internal/app/cart/usecases/add_product"
	"github.com/murkotick/grocery-pos-service/internal/app/cart/usecases/update_checkout"
)

type openCartBody struct {
	Kind string `json:"kind"`
}

type addItemBody struct {
	ProductID *int64 `json:"product_id"`
	Barcode   string `json:"barcode"`
	Quantity  *int   `json:"quantity"`
}

type checkoutBody struct {
	CounterpartyID    *int64       `json:"counterparty_id"`
	ClearCounterparty bool         `json:"clear_counterparty"`
	Tendered          *json.Number `json:"tendered"`
	PaymentState      *string      `json:"payment_state"`
}

type adjustReply struct {
	Applied bool          `json:"applied"`
	Cart    *dto.CartView `json:"cart"`
}

type removeReply struct {
	Removed bool          `json:"removed"`
	Cart    *dto.CartView `json:"cart"`
}

type finalizeReply struct {
	Transaction *dto.SubmitResult `json:"transaction"`
	Cart        *dto.CartView     `json:"cart"`
}

type productsReply struct {
	Products []*dto.ProductDTO `json:"products"`
	Limit    int               `json:"limit"`
	Offset   int               `json:"offset"`
	// NextOffset is omitted on the last page.
	NextOffset *int `json:"next_offset,omitempty"`
}

func mapAddItemRequest(cartID string, userID int64, b *addItemBody) add_product.Request {
	qty := 1
	if b.Quantity != nil {
		qty = *b.Quantity
	}
	return add_product.Request{
		CartID:    cartID,
		UserID:    userID,
		ProductID: b.ProductID,
		Barcode:   b.Barcode,
		Quantity:  qty,
	}
}

func mapCheckoutRequest(cartID string, userID int64, b *checkoutBody) update_checkout.Request {
	req := update_checkout.Request{
		CartID:            cartID,
		UserID:            userID,
		CounterpartyID:    b.CounterpartyID,
		ClearCounterparty: b.ClearCounterparty,
		PaymentState:      b.PaymentState,
	}
	if b.Tendered != nil {
		s := b.Tendered.String()
		req.Tendered = &s
	}
	return req
}

func (h *Handler) respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.logger.Warn("failed to encode response", zap.Error(err))
	}
}

func (h *Handler) respondError(w http.ResponseWriter, r *http.Request, err error) {
	status, body := mapError(err)
	if status >= http.StatusInternalServerError {
		h.logger.Error("request failed",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Int("status", status),
			zap.Error(err),
		)
	}
	h.respondJSON(w, status, body)
}
