package m_sale_product

// Field constants for the sale_products table (interleaved in sales).
const (
	TableName = "sale_products"

	ColSaleID          = "sale_id"
	ColLineNo          = "line_no"
	ColProductID       = "product_id"
	ColQuantity        = "quantity"
	ColDiscountPercent = "discount_percent"
)
