package get_cart

import (
	"context"

	contracts "github.com/murkotick/grocery-pos-service/internal/app/cart/contracts"
	"github.com/murkotick/grocery-pos-service/internal/app/cart/dto"
	shared "github.com/murkotick/grocery-pos-service/internal/app/cart/usecases/shared"
)

type Handler struct {
	sessions contracts.SessionStore
}

func NewHandler(s contracts.SessionStore) *Handler {
	return &Handler{sessions: s}
}

func (h *Handler) Execute(ctx context.Context, cartID string, userID int64) (*dto.CartView, error) {
	var view *dto.CartView
	err := h.sessions.View(ctx, cartID, func(s *contracts.Session) error {
		if err := shared.CheckOwner(s, userID); err != nil {
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
