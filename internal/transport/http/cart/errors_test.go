package cart

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/murkotick/grocery-pos-service/internal/app/cart/contracts"
	"github.com/murkotick/grocery-pos-service/internal/app/cart/domain"
)

func TestMapError(t *testing.T) {
	tests := []struct {
		err    error
		status int
		code   string
	}{
		{context.DeadlineExceeded, http.StatusGatewayTimeout, "timeout"},
		{fmt.Errorf("wrap: %w", domain.ErrInvalidQuantity), http.StatusBadRequest, "invalid_argument"},
		{domain.ErrCartNotValidated, http.StatusConflict, "failed_precondition"},
		{domain.ErrPaymentStateNotApplicable, http.StatusConflict, "failed_precondition"},
		{fmt.Errorf("%w: boom", contracts.ErrSubmissionFailed), http.StatusBadGateway, "submission_failed"},
		{errors.New("disk on fire"), http.StatusInternalServerError, "internal"},
	}
	for _, tt := range tests {
		status, body := mapError(tt.err)
		assert.Equal(t, tt.status, status, tt.err.Error())
		assert.Equal(t, tt.code, body.Code)
	}

	_, body := mapError(errors.New("secret details"))
	assert.Equal(t, "internal error", body.Error)
}
