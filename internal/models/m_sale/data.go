package m_sale

import (
	"time"

	"cloud.google.com/go/spanner"
)

// BuildInsertMap prepares a sales row. clientID is nil for walk-in sales.
func BuildInsertMap(saleID string, clientID *int64, userID int64, state string,
	totalNum, totalDen, amountNum, amountDen int64, itemCount int, createdAt time.Time) map[string]interface{} {

	m := map[string]interface{}{
		ColSaleID:            saleID,
		ColUserID:            userID,
		ColState:             state,
		ColTotalNumerator:    totalNum,
		ColTotalDenominator:  totalDen,
		ColAmountNumerator:   amountNum,
		ColAmountDenominator: amountDen,
		ColItemCount:         int64(itemCount),
		ColCreatedAt:         createdAt,
	}
	if clientID != nil {
		m[ColClientID] = *clientID
	} else {
		m[ColClientID] = nil
	}
	return m
}

// InsertMutation constructs a mutation for the sales table.
func InsertMutation(values map[string]interface{}) *spanner.Mutation {
	cols := make([]string, 0, len(values))
	vals := make([]interface{}, 0, len(values))
	for c, v := range values {
		cols = append(cols, c)
		vals = append(vals, v)
	}
	return spanner.Insert(TableName, cols, vals)
}
