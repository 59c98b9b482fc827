package m_outbox

import (
	"time"

	"cloud.google.com/go/spanner"
)

// Row is one outbox_events record.
type Row struct {
	EventID     string           `spanner:"event_id"`
	EventType   string           `spanner:"event_type"`
	AggregateID string           `spanner:"aggregate_id"`
	Payload     string           `spanner:"payload"`
	Status      string           `spanner:"status"`
	CreatedAt   time.Time        `spanner:"created_at"`
	ProcessedAt spanner.NullTime `spanner:"processed_at"`
}

// InsertMutation constructs a mutation for the outbox table.
func InsertMutation(r Row) (*spanner.Mutation, error) {
	return spanner.InsertStruct(TableName, r)
}
