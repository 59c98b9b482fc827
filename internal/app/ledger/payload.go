package ledger

import (
	"encoding/json"
	"fmt"

	"github.com/murkotick/grocery-pos-service/internal/app/cart/domain"
)

// MarshalDomainEventPayload converts a domain event into a JSON payload suitable for the outbox.
// Money is written as numerator/denominator plus its 2-decimal rendering.
func MarshalDomainEventPayload(ev domain.DomainEvent) (string, error) {
	if ev == nil {
		return "{}", nil
	}

	switch e := ev.(type) {
	case *domain.TransactionRecordedEvent:
		payload := map[string]interface{}{
			"transaction_id":  e.TransactionID,
			"kind":            e.Kind,
			"counterparty_id": e.CounterpartyID,
			"user_id":         e.UserID,
			"item_count":      e.ItemCount,
			"total":           moneyPayload(e.Total),
			"amount":          moneyPayload(e.Amount),
			"recorded_at":     e.RecordedAt,
		}
		if e.PaymentState != "" {
			payload["payment_state"] = e.PaymentState
		}
		b, err := json.Marshal(payload)
		return string(b), err
	}

	b, err := json.Marshal(ev)
	if err != nil {
		return "", fmt.Errorf("marshal outbox payload for %T: %w", ev, err)
	}
	return string(b), nil
}

func moneyPayload(m *domain.Money) interface{} {
	if m == nil {
		return nil
	}
	return map[string]interface{}{
		"numerator":   m.Numerator(),
		"denominator": m.Denominator(),
		"value":       m.String(),
	}
}
