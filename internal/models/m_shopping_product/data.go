package m_shopping_product

import "cloud.google.com/go/spanner"

// InsertMutation builds the insert for one purchase line.
func InsertMutation(shoppingID string, lineNo int, productID int64, quantity int) *spanner.Mutation {
	return spanner.Insert(TableName,
		[]string{ColShoppingID, ColLineNo, ColProductID, ColQuantity},
		[]interface{}{shoppingID, int64(lineNo), productID, int64(quantity)},
	)
}
