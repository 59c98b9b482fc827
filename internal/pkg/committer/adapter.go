package committer

import (
	"context"
	"errors"
	"fmt"

	"cloud.google.com/go/spanner"
)

var ErrNoClient = errors.New("committer: spanner client is nil")

// Adapter applies a Plan in a single read-write transaction.
type Adapter struct {
	client *spanner.Client
}

func NewAdapter(client *spanner.Client) *Adapter {
	return &Adapter{client: client}
}

func (a *Adapter) Apply(ctx context.Context, plan *Plan) error {
	if plan == nil || plan.IsEmpty() {
		return nil
	}
	if a.client == nil {
		return ErrNoClient
	}

	_, err := a.client.ReadWriteTransaction(ctx, func(ctx context.Context, tx *spanner.ReadWriteTransaction) error {
		return tx.BufferWrite(plan.Mutations())
	})
	if err != nil {
		return fmt.Errorf("committer: apply %d mutations: %w", plan.Len(), err)
	}
	return nil
}
