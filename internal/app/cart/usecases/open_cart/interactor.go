package open_cart

import (
	"context"

	contracts "github.com/murkotick/grocery-pos-service/internal/app/cart/contracts"
	"github.com/murkotick/grocery-pos-service/internal/app/cart/domain"
	"github.com/murkotick/grocery-pos-service/internal/app/cart/dto"
	shared "github.com/murkotick/grocery-pos-service/internal/app/cart/usecases/shared"
)

// Request to open a new cart
type Request struct {
	Kind   string // "sale" or "purchase"
	UserID int64
}

type Interactor struct {
	Sessions contracts.SessionStore
}

func NewInteractor(sessions contracts.SessionStore) *Interactor {
	return &Interactor{Sessions: sessions}
}

func (it *Interactor) Execute(ctx context.Context, req Request) (*dto.CartView, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	kind, err := domain.ParseKind(req.Kind)
	if err != nil {
		return nil, err
	}

	s, err := it.Sessions.Create(kind, req.UserID)
	if err != nil {
		return nil, err
	}
	return shared.NewCartView(s), nil
}
