package contracts

import (
	"time"

	"cloud.google.com/go/spanner"

	"github.com/murkotick/grocery-pos-service/internal/app/cart/domain"
)

// TransactionRepo builds the rows of a recorded sale or purchase.
type TransactionRepo interface {
	// InsertMuts returns the header row mutation followed by one mutation per line.
	InsertMuts(transactionID string, req *domain.TransactionRequest, at time.Time) ([]*spanner.Mutation, error)
}
