package repo

import (
	"cloud.google.com/go/spanner"

	contracts "github.com/murkotick/grocery-pos-service/internal/app/ledger/contracts"
	"github.com/murkotick/grocery-pos-service/internal/models/m_outbox"
)

// OutboxRepo is the Spanner implementation of the transactional outbox repository.
type OutboxRepo struct{}

func NewOutboxRepo() *OutboxRepo {
	return &OutboxRepo{}
}

// InsertMut stores the event as pending for the relay to pick up.
func (r *OutboxRepo) InsertMut(e *contracts.OutboxEvent) (*spanner.Mutation, error) {
	if e == nil {
		return nil, nil
	}
	return m_outbox.InsertMutation(m_outbox.Row{
		EventID:     e.EventID,
		EventType:   e.EventType,
		AggregateID: e.AggregateID,
		Payload:     e.PayloadJSON,
		Status:      m_outbox.StatusPending,
		CreatedAt:   e.CreatedAtUTC,
	})
}
