package add_product

import (
	"context"
	"strings"

	contracts "github.com/murkotick/grocery-pos-service/internal/app/cart/contracts"
	"github.com/murkotick/grocery-pos-service/internal/app/cart/dto"
	shared "github.com/murkotick/grocery-pos-service/internal/app/cart/usecases/shared"
)

// Request to add a product to a cart. Exactly one of ProductID or Barcode is used;
// ProductID wins when both are set.
type Request struct {
	CartID    string
	UserID    int64
	ProductID *int64
	Barcode   string
	Quantity  int
}

type Interactor struct {
	Sessions contracts.SessionStore
	Catalog  contracts.Catalog
}

func NewInteractor(sessions contracts.SessionStore, catalog contracts.Catalog) *Interactor {
	return &Interactor{
		Sessions: sessions,
		Catalog:  catalog,
	}
}

func (it *Interactor) Execute(ctx context.Context, req Request) (*dto.CartView, error) {
	// 1. Resolve the product outside the session lock
	found, err := it.lookup(ctx, req)
	if err != nil {
		return nil, err
	}
	product, err := shared.ProductFromDTO(found)
	if err != nil {
		return nil, err
	}

	// 2. Domain call
	var view *dto.CartView
	err = it.Sessions.Update(ctx, req.CartID, func(s *contracts.Session) error {
		if err := shared.CheckOwner(s, req.UserID); err != nil {
			return err
		}
		if err := s.Cart.AddProduct(product, req.Quantity); err != nil {
			return err
		}
		view = shared.NewCartView(s)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return view, nil
}

func (it *Interactor) lookup(ctx context.Context, req Request) (*dto.ProductDTO, error) {
	if req.ProductID != nil {
		return it.Catalog.GetProduct(ctx, *req.ProductID)
	}
	code := strings.TrimSpace(req.Barcode)
	if code == "" {
		return nil, shared.ErrProductReferenceRequired
	}
	return it.Catalog.FindByBarcode(ctx, code)
}
