package m_shopping_product

// Field constants for the shopping_products table (interleaved in shoppings).
const (
	TableName = "shopping_products"

	ColShoppingID = "shopping_id"
	ColLineNo     = "line_no"
	ColProductID  = "product_id"
	ColQuantity   = "quantity"
)
