package list_products

import (
	"context"

	contracts "github.com/murkotick/grocery-pos-service/internal/app/cart/contracts"
	"github.com/murkotick/grocery-pos-service/internal/app/cart/dto"
)

const (
	DefaultLimit = 50
	MaxLimit     = 200
)

type Handler struct {
	catalog contracts.Catalog
}

func NewHandler(c contracts.Catalog) *Handler {
	return &Handler{catalog: c}
}

// Execute clamps paging to [1, MaxLimit] and a non-negative offset.
func (h *Handler) Execute(ctx context.Context, category *string, limit, offset int) ([]*dto.ProductDTO, error) {
	if limit <= 0 {
		limit = DefaultLimit
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}
	if offset < 0 {
		offset = 0
	}
	if category != nil && *category == "" {
		category = nil
	}
	return h.catalog.ListProducts(ctx, category, limit, offset)
}
