package get_product

import (
	"context"

	contracts "github.com/murkotick/grocery-pos-service/internal/app/cart/contracts"
	"github.com/murkotick/grocery-pos-service/internal/app/cart/dto"
)

type Handler struct {
	catalog contracts.Catalog
}

func NewHandler(c contracts.Catalog) *Handler {
	return &Handler{catalog: c}
}

func (h *Handler) Execute(ctx context.Context, productID int64) (*dto.ProductDTO, error) {
	return h.catalog.GetProduct(ctx, productID)
}
