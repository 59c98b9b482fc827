package dto

import "time"

// ProductDTO is the catalog view of a product as returned by read queries.
// Money fields are decimal strings ("28.75"); DiscountPercent is on the 0-100 scale.
type ProductDTO struct {
	ProductID       int64   `json:"product_id"`
	Name            string  `json:"name"`
	Category        string  `json:"category,omitempty"`
	Barcode         *string `json:"barcode,omitempty"`
	Price           string  `json:"price"`
	Cost            string  `json:"cost"`
	DiscountPercent *string `json:"discount_percent,omitempty"`
	// Stock is nil when the quantity on hand is unknown.
	Stock  *int64 `json:"stock,omitempty"`
	Status string `json:"status"`
}

// LineView is one cart line as shown to the cashier.
type LineView struct {
	ProductID           int64  `json:"product_id"`
	Name                string `json:"name"`
	Quantity            int    `json:"quantity"`
	UnitPrice           string `json:"unit_price"`
	DiscountPercent     string `json:"discount_percent"`
	DiscountedUnitPrice string `json:"discounted_unit_price"`
	LineTotal           string `json:"line_total"`
	AtStockLimit        bool   `json:"at_stock_limit"`
}

// CartView is the read model of an in-progress transaction.
type CartView struct {
	CartID         string     `json:"cart_id"`
	Kind           string     `json:"kind"`
	Phase          string     `json:"phase"`
	Lines          []LineView `json:"lines"`
	Subtotal       string     `json:"subtotal"`
	TotalDiscount  string     `json:"total_discount"`
	ItemCount      int        `json:"item_count"`
	CounterpartyID *int64     `json:"counterparty_id,omitempty"`
	Tendered       string     `json:"tendered"`
	ChangeDue      string     `json:"change_due"`
	PaymentState   string     `json:"payment_state,omitempty"`
	UpdatedAt      time.Time  `json:"updated_at"`
}

// SubmitResult is what the create-sale / create-purchase collaborator returns.
type SubmitResult struct {
	TransactionID string    `json:"transaction_id"`
	Kind          string    `json:"kind"`
	Total         string    `json:"total"`
	ItemCount     int       `json:"item_count"`
	RecordedAt    time.Time `json:"recorded_at"`
}
