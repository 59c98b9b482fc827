package m_product

// Field constants for the products table.
const (
	TableName = "products"

	ColProductID        = "product_id"
	ColName             = "name"
	ColBarcode          = "barcode"
	ColCategory         = "category"
	ColPriceNumerator   = "price_numerator"
	ColPriceDenominator = "price_denominator"
	ColCostNumerator    = "cost_numerator"
	ColCostDenominator  = "cost_denominator"
	ColDiscountPercent  = "discount_percent"
	ColStock            = "stock"
	ColStatus           = "status"
	ColCreatedAt        = "created_at"
	ColUpdatedAt        = "updated_at"
)

// StatusActive marks a product that can be sold or bought.
const StatusActive = "active"

// SelectList is the column list read by catalog queries, in Row field order.
const SelectList = ColProductID + ", " + ColName + ", " + ColBarcode + ", " + ColCategory + ", " +
	ColPriceNumerator + ", " + ColPriceDenominator + ", " +
	ColCostNumerator + ", " + ColCostDenominator + ", " +
	ColDiscountPercent + ", " + ColStock + ", " + ColStatus
