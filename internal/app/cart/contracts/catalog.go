package contracts

import (
	"context"

	"github.com/murkotick/grocery-pos-service/internal/app/cart/dto"
)

// Catalog is the read-only product lookup the cart depends on.
// Implementations return domain.ErrProductNotFound when nothing matches.
type Catalog interface {
	GetProduct(ctx context.Context, productID int64) (*dto.ProductDTO, error)
	FindByBarcode(ctx context.Context, code string) (*dto.ProductDTO, error)
	ListProducts(ctx context.Context, category *string, limit, offset int) ([]*dto.ProductDTO, error)
}
