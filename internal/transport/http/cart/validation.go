package cart

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/murkotick/grocery-pos-service/internal/app/cart/domain"
)

const maxRequestBodySize = 1 << 20

var errInvalidRequest = errors.New("invalid request")

func invalid(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", errInvalidRequest, fmt.Sprintf(format, args...))
}

// decodeJSON reads a JSON body into dst. An empty body leaves dst untouched.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst interface{}) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxRequestBodySize))
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		return invalid("malformed JSON body: %v", err)
	}
	if dec.More() {
		return invalid("body must contain a single JSON object")
	}
	return nil
}

func parseID(name, raw string) (int64, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, invalid("%s must be a positive integer", name)
	}
	return id, nil
}

func parseUserID(raw string) (int64, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, errMissingUser
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, errMissingUser
	}
	return id, nil
}

func queryInt(r *http.Request, key string, def int) (int, error) {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return def, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, invalid("%s must be an integer", key)
	}
	return n, nil
}

func validateAddItem(req *addItemBody) error {
	if req.ProductID == nil && strings.TrimSpace(req.Barcode) == "" {
		return invalid("product_id or barcode is required")
	}
	if req.ProductID != nil && *req.ProductID <= 0 {
		return invalid("product_id must be positive")
	}
	if req.Quantity != nil && (*req.Quantity <= 0 || *req.Quantity > domain.MaxLineQuantity) {
		return invalid("quantity must be an integer between 1 and %d", domain.MaxLineQuantity)
	}
	return nil
}

func validateCheckout(req *checkoutBody) error {
	if req.CounterpartyID != nil && *req.CounterpartyID <= 0 {
		return invalid("counterparty_id must be positive")
	}
	if req.ClearCounterparty && req.CounterpartyID != nil {
		return invalid("counterparty_id and clear_counterparty are mutually exclusive")
	}
	if req.CounterpartyID == nil && !req.ClearCounterparty && req.Tendered == nil && req.PaymentState == nil {
		return invalid("at least one field must be provided")
	}
	return nil
}
