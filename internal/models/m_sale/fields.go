package m_sale

// Field constants for the sales table.
const (
	TableName = "sales"

	ColSaleID            = "sale_id"
	ColClientID          = "client_id"
	ColUserID            = "user_id"
	ColState             = "state"
	ColTotalNumerator    = "total_numerator"
	ColTotalDenominator  = "total_denominator"
	ColAmountNumerator   = "amount_numerator"
	ColAmountDenominator = "amount_denominator"
	ColItemCount         = "item_count"
	ColCreatedAt         = "created_at"
)
