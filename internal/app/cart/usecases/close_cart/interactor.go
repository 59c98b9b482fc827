package close_cart

import (
	"context"

	contracts "github.com/murkotick/grocery-pos-service/internal/app/cart/contracts"
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

// Execute discards the cart. Any unsubmitted lines are lost.
func (it *Interactor) Execute(ctx context.Context, req Request) error {
	err := it.Sessions.View(ctx, req.CartID, func(s *contracts.Session) error {
		return shared.CheckOwner(s, req.UserID)
	})
	if err != nil {
		return err
	}
	if !it.Sessions.Delete(req.CartID) {
		return contracts.ErrSessionNotFound
	}
	return nil
}
