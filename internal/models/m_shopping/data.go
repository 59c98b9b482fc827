package m_shopping

import (
	"time"

	"cloud.google.com/go/spanner"
)

// BuildInsertMap prepares a shoppings row. supplierID may be nil.
func BuildInsertMap(shoppingID string, supplierID *int64, userID int64,
	totalNum, totalDen, amountNum, amountDen int64, itemCount int, createdAt time.Time) map[string]interface{} {

	m := map[string]interface{}{
		ColShoppingID:        shoppingID,
		ColUserID:            userID,
		ColTotalNumerator:    totalNum,
		ColTotalDenominator:  totalDen,
		ColAmountNumerator:   amountNum,
		ColAmountDenominator: amountDen,
		ColItemCount:         int64(itemCount),
		ColCreatedAt:         createdAt,
	}
	if supplierID != nil {
		m[ColSupplierID] = *supplierID
	} else {
		m[ColSupplierID] = nil
	}
	return m
}

// InsertMutation constructs a mutation for the shoppings table.
func InsertMutation(values map[string]interface{}) *spanner.Mutation {
	cols := make([]string, 0, len(values))
	vals := make([]interface{}, 0, len(values))
	for c, v := range values {
		cols = append(cols, c)
		vals = append(vals, v)
	}
	return spanner.Insert(TableName, cols, vals)
}
