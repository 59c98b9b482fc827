package domain

import "time"

// DomainEvent is a marker interface for all domain events.
// Domain events represent facts about things that have happened in the domain.
type DomainEvent interface {
	EventType() string
	AggregateID() string
	OccurredAt() time.Time
}

// TransactionRecordedEvent is raised when a sale or purchase has been persisted.
type TransactionRecordedEvent struct {
	TransactionID  string
	Kind           Kind
	CounterpartyID *int64
	UserID         int64
	ItemCount      int
	Total          *Money
	Amount         *Money
	PaymentState   PaymentState
	RecordedAt     time.Time
}

func (e *TransactionRecordedEvent) EventType() string {
	if e.Kind == KindPurchase {
		return "shopping.recorded"
	}
	return "sale.recorded"
}

func (e *TransactionRecordedEvent) AggregateID() string {
	return e.TransactionID
}

func (e *TransactionRecordedEvent) OccurredAt() time.Time {
	return e.RecordedAt
}

// NewTransactionRecordedEvent captures the recorded facts of a request.
func NewTransactionRecordedEvent(transactionID string, req *TransactionRequest, at time.Time) *TransactionRecordedEvent {
	return &TransactionRecordedEvent{
		TransactionID:  transactionID,
		Kind:           req.Kind,
		CounterpartyID: req.CounterpartyID,
		UserID:         req.UserID,
		ItemCount:      req.ItemCount(),
		Total:          req.Total,
		Amount:         req.Amount,
		PaymentState:   req.PaymentState,
		RecordedAt:     at,
	}
}
