package m_outbox

// Columns of outbox_events. One row per recorded sale or purchase.
const (
	TableName = "outbox_events"

	ColEventID     = "event_id"
	ColEventType   = "event_type"
	ColAggregateID = "aggregate_id"
	ColPayload     = "payload"
	ColStatus      = "status"
	ColCreatedAt   = "created_at"
	ColProcessedAt = "processed_at"
)

// StatusPending is the state every event is written in; a relay picks it up from there.
const StatusPending = "pending"

const SelectList = ColEventID + ", " + ColEventType + ", " + ColAggregateID + ", " +
	ColPayload + ", " + ColStatus + ", " + ColCreatedAt + ", " + ColProcessedAt
