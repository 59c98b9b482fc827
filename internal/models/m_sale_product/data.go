package m_sale_product

import "cloud.google.com/go/spanner"

// InsertMutation builds the insert for one sale line. discountPct is nil when no discount applies.
func InsertMutation(saleID string, lineNo int, productID int64, quantity int, discountPct *string) *spanner.Mutation {
	var discount interface{}
	if discountPct != nil {
		discount = *discountPct
	}
	return spanner.Insert(TableName,
		[]string{ColSaleID, ColLineNo, ColProductID, ColQuantity, ColDiscountPercent},
		[]interface{}{saleID, int64(lineNo), productID, int64(quantity), discount},
	)
}
