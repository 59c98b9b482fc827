package m_product

import (
	"time"

	"cloud.google.com/go/spanner"
)

// Row mirrors the columns in SelectList and is filled with row.ToStruct.
type Row struct {
	ProductID        int64              `spanner:"product_id"`
	Name             string             `spanner:"name"`
	Barcode          spanner.NullString `spanner:"barcode"`
	Category         string             `spanner:"category"`
	PriceNumerator   int64              `spanner:"price_numerator"`
	PriceDenominator int64              `spanner:"price_denominator"`
	CostNumerator    int64              `spanner:"cost_numerator"`
	CostDenominator  int64              `spanner:"cost_denominator"`
	DiscountPercent  spanner.NullString `spanner:"discount_percent"`
	Stock            spanner.NullInt64  `spanner:"stock"`
	Status           string             `spanner:"status"`
}

// InsertMutation builds a spanner.Insert mutation for a product using a map of values.
// expected keys are the column names declared in fields.go
func InsertMutation(values map[string]interface{}) *spanner.Mutation {
	cols := make([]string, 0, len(values))
	vals := make([]interface{}, 0, len(values))
	for col, v := range values {
		cols = append(cols, col)
		vals = append(vals, v)
	}
	return spanner.Insert(TableName, cols, vals)
}

// BuildInsertMap prepares the canonical fields for insertion of a catalog row.
func BuildInsertMap(r Row, createdAt time.Time) map[string]interface{} {
	return map[string]interface{}{
		ColProductID:        r.ProductID,
		ColName:             r.Name,
		ColBarcode:          r.Barcode,
		ColCategory:         r.Category,
		ColPriceNumerator:   r.PriceNumerator,
		ColPriceDenominator: r.PriceDenominator,
		ColCostNumerator:    r.CostNumerator,
		ColCostDenominator:  r.CostDenominator,
		ColDiscountPercent:  r.DiscountPercent,
		ColStock:            r.Stock,
		ColStatus:           r.Status,
		ColCreatedAt:        createdAt,
		ColUpdatedAt:        createdAt,
	}
}
