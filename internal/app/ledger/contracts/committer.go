package contracts

import (
	"context"

	commitplan "github.com/murkotick/grocery-pos-service/internal/pkg/committer"
)

// Committer applies a collection of mutations atomically.
type Committer interface {
	Apply(ctx context.Context, plan *commitplan.Plan) error
}
