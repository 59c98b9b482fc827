package remove_product

import (
	"context"

	contracts "github.com/murkotick/grocery-pos-service/internal/app/cart/contracts"
	"github.com/murkotick/grocery-pos-service/internal/app/cart/dto"
	shared "github.com/murkotick/grocery-pos-service/internal/app/cart/usecases/shared"
)

type Request struct {
	CartID    string
	UserID    int64
	ProductID int64
}

// Response reports whether a line was removed; removing an absent product is a no-op.
type Response struct {
	Removed bool
	Cart    *dto.CartView
}

type Interactor struct {
	Sessions contracts.SessionStore
}

func NewInteractor(sessions contracts.SessionStore) *Interactor {
	return &Interactor{Sessions: sessions}
}

func (it *Interactor) Execute(ctx context.Context, req Request) (*Response, error) {
	resp := &Response{}
	err := it.Sessions.Update(ctx, req.CartID, func(s *contracts.Session) error {
		if err := shared.CheckOwner(s, req.UserID); err != nil {
			return err
		}
		resp.Removed = s.Cart.RemoveProduct(req.ProductID)
		resp.Cart = shared.NewCartView(s)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return resp, nil
}
