package find_by_barcode

import (
	"context"
	"strings"

	contracts "github.com/murkotick/grocery-pos-service/internal/app/cart/contracts"
	"github.com/murkotick/grocery-pos-service/internal/app/cart/domain"
	"github.com/murkotick/grocery-pos-service/internal/app/cart/dto"
)

type Handler struct {
	catalog contracts.Catalog
}

func NewHandler(c contracts.Catalog) *Handler {
	return &Handler{catalog: c}
}

// Execute looks a scanned code up. Blank codes never match.
func (h *Handler) Execute(ctx context.Context, code string) (*dto.ProductDTO, error) {
	code = strings.TrimSpace(code)
	if code == "" {
		return nil, domain.ErrProductNotFound
	}
	return h.catalog.FindByBarcode(ctx, code)
}
