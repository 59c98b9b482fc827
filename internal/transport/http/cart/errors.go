package cart

import (
	"context"
	"errors"
	"net/http"

	"github.com/murkotick/grocery-pos-service/internal/app/cart/contracts"
	"github.com/murkotick/grocery-pos-service/internal/app/cart/domain"
	"github.com/murkotick/grocery-pos-service/internal/app/cart/usecases/adjust_quantity"
	shared "github.com/murkotick/grocery-pos-service/internal/app/cart/usecases/shared"
)

// statusClientClosedRequest is the nginx convention for a caller that went away.
const statusClientClosedRequest = 499

// ErrorResponse is the JSON body of every non-2xx reply.
type ErrorResponse struct {
	Error   string                 `json:"error"`
	Code    string                 `json:"code"`
	Details map[string]interface{} `json:"details,omitempty"`
}

// mapError translates application errors into an HTTP status and a stable code.
// Unknown errors become 500.
func mapError(err error) (int, ErrorResponse) {
	resp := ErrorResponse{Error: err.Error()}

	if errors.Is(err, context.Canceled) {
		resp.Code = "canceled"
		return statusClientClosedRequest, resp
	}
	if errors.Is(err, context.DeadlineExceeded) {
		resp.Code = "timeout"
		return http.StatusGatewayTimeout, resp
	}

	// Stock ceiling carries how many units are still available.
	var stockErr *domain.InsufficientStockError
	if errors.As(err, &stockErr) {
		resp.Code = "insufficient_stock"
		resp.Details = map[string]interface{}{
			"product_id": stockErr.ProductID,
			"requested":  stockErr.Requested,
			"available":  stockErr.Available,
		}
		return http.StatusConflict, resp
	}

	// Not found
	switch {
	case errors.Is(err, contracts.ErrSessionNotFound):
		resp.Code = "cart_not_found"
		return http.StatusNotFound, resp
	case errors.Is(err, domain.ErrProductNotFound):
		resp.Code = "product_not_found"
		return http.StatusNotFound, resp
	case errors.Is(err, domain.ErrLineNotFound):
		resp.Code = "line_not_found"
		return http.StatusNotFound, resp
	}

	if errors.Is(err, contracts.ErrSessionForbidden) {
		resp.Code = "forbidden"
		return http.StatusForbidden, resp
	}

	// Invalid argument (validation)
	switch {
	case errors.Is(err, domain.ErrInvalidQuantity),
		errors.Is(err, domain.ErrInvalidDiscount),
		errors.Is(err, domain.ErrInvalidPrice),
		errors.Is(err, domain.ErrInvalidStock),
		errors.Is(err, domain.ErrInvalidTender),
		errors.Is(err, domain.ErrInvalidPaymentState),
		errors.Is(err, domain.ErrInvalidKind),
		errors.Is(err, shared.ErrProductReferenceRequired),
		errors.Is(err, adjust_quantity.ErrInvalidDirection),
		errors.Is(err, errInvalidRequest):
		resp.Code = "invalid_argument"
		return http.StatusBadRequest, resp
	}

	// Failed precondition (state)
	switch {
	case errors.Is(err, domain.ErrPaymentStateNotApplicable),
		errors.Is(err, domain.ErrCartNotValidated),
		errors.Is(err, shared.ErrProductInactive):
		resp.Code = "failed_precondition"
		return http.StatusConflict, resp
	}

	// Finalize gate
	switch {
	case errors.Is(err, domain.ErrEmptyCart):
		resp.Code = "empty_cart"
		return http.StatusUnprocessableEntity, resp
	case errors.Is(err, domain.ErrMissingCounterparty):
		resp.Code = "missing_client"
		return http.StatusUnprocessableEntity, resp
	case errors.Is(err, domain.ErrInsufficientTender):
		resp.Code = "insufficient_tender"
		return http.StatusUnprocessableEntity, resp
	}

	if errors.Is(err, contracts.ErrSubmissionFailed) {
		resp.Code = "submission_failed"
		return http.StatusBadGateway, resp
	}

	resp.Code = "internal"
	resp.Error = "internal error"
	return http.StatusInternalServerError, resp
}
