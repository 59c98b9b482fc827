package m_shopping

// Field constants for the shoppings (stock purchases) table.
const (
	TableName = "shoppings"

	ColShoppingID        = "shopping_id"
	ColSupplierID        = "supplier_id"
	ColUserID            = "user_id"
	ColTotalNumerator    = "total_numerator"
	ColTotalDenominator  = "total_denominator"
	ColAmountNumerator   = "amount_numerator"
	ColAmountDenominator = "amount_denominator"
	ColItemCount         = "item_count"
	ColCreatedAt         = "created_at"
)
