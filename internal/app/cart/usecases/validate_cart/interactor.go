package validate_cart

import (
	"context"

	contracts "github.com/murkotick/grocery-pos-service/internal/app/cart/contracts"
	"github.com/murkotick/grocery-pos-service/internal/app/cart/dto"
	shared "github.com/murkotick/grocery-pos-service/internal/app/cart/usecases/shared"
)

type Request struct {
	CartID string
	UserID int64
}

type Interactor struct {
	Sessions contracts.SessionStore
}

func NewInteractor(sessions contracts.SessionStore) *Interactor {
	return &Interactor{Sessions: sessions}
}

// Execute runs the finalize gate without submitting anything.
func (it *Interactor) Execute(ctx context.Context, req Request) (*dto.CartView, error) {
	var view *dto.CartView
	err := it.Sessions.Update(ctx, req.CartID, func(s *contracts.Session) error {
		if err := shared.CheckOwner(s, req.UserID); err != nil {
			return err
		}
		if err := s.Cart.Validate(); err != nil {
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
