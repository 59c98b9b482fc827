package contracts

import (
	"context"
	"errors"

	"github.com/murkotick/grocery-pos-service/internal/app/cart/domain"
	"github.com/murkotick/grocery-pos-service/internal/app/cart/dto"
)

// ErrSubmissionFailed wraps every failure to hand a finalized cart over.
var ErrSubmissionFailed = errors.New("transaction submission failed")

// TransactionGateway persists a finalized sale or purchase.
type TransactionGateway interface {
	Submit(ctx context.Context, req *domain.TransactionRequest) (*dto.SubmitResult, error)
}
