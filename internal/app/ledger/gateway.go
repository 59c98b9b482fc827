package ledger

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	cartcontracts "github.com/murkotick/grocery-pos-service/internal/app/cart/contracts"
	"github.com/murkotick/grocery-pos-service/internal/app/cart/domain"
	"github.com/murkotick/grocery-pos-service/internal/app/cart/dto"
	contracts "github.com/murkotick/grocery-pos-service/internal/app/ledger/contracts"
	"github.com/murkotick/grocery-pos-service/internal/pkg/clock"
	commitplan "github.com/murkotick/grocery-pos-service/internal/pkg/committer"
)

// Gateway records finalized carts directly in Spanner. The transaction rows
// and the matching outbox event are written in one commit.
type Gateway struct {
	Transactions contracts.TransactionRepo
	Outbox       contracts.OutboxRepo
	Committer    contracts.Committer
	Clock        clock.Clock
}

func NewGateway(transactions contracts.TransactionRepo, outbox contracts.OutboxRepo, committer contracts.Committer, clk clock.Clock) *Gateway {
	return &Gateway{
		Transactions: transactions,
		Outbox:       outbox,
		Committer:    committer,
		Clock:        clk,
	}
}

func (g *Gateway) Submit(ctx context.Context, req *domain.TransactionRequest) (*dto.SubmitResult, error) {
	now := g.Clock.Now()
	id := uuid.New().String()

	// 1. Build commit plan
	plan := commitplan.NewPlan()

	// 2. Transaction rows
	muts, err := g.Transactions.InsertMuts(id, req, now)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", cartcontracts.ErrSubmissionFailed, err)
	}
	plan.Add(muts...)

	// 3. Outbox event
	ev := domain.NewTransactionRecordedEvent(id, req, now)
	payload, err := MarshalDomainEventPayload(ev)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", cartcontracts.ErrSubmissionFailed, err)
	}
	outboxMut, err := g.Outbox.InsertMut(&contracts.OutboxEvent{
		EventID:      uuid.New().String(),
		EventType:    ev.EventType(),
		AggregateID:  ev.AggregateID(),
		PayloadJSON:  payload,
		CreatedAtUTC: now,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", cartcontracts.ErrSubmissionFailed, err)
	}
	plan.Add(outboxMut)

	// 4. Apply plan
	if err := g.Committer.Apply(ctx, plan); err != nil {
		return nil, fmt.Errorf("%w: %w", cartcontracts.ErrSubmissionFailed, err)
	}

	return &dto.SubmitResult{
		TransactionID: id,
		Kind:          string(req.Kind),
		Total:         req.Total.String(),
		ItemCount:     req.ItemCount(),
		RecordedAt:    now,
	}, nil
}
