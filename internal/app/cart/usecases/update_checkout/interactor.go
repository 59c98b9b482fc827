package update_checkout

import (
	"context"

	contracts "github.com/murkotick/grocery-pos-service/internal/app/cart/contracts"
	"github.com/murkotick/grocery-pos-service/internal/app/cart/domain"
	"github.com/murkotick/grocery-pos-service/internal/app/cart/dto"
	shared "github.com/murkotick/grocery-pos-service/internal/app/cart/usecases/shared"
)

// Request to change checkout fields. Nil fields are left untouched.
type Request struct {
	CartID            string
	UserID            int64
	CounterpartyID    *int64
	ClearCounterparty bool
	Tendered          *string
	PaymentState      *string
}

type Interactor struct {
	Sessions contracts.SessionStore
}

func NewInteractor(sessions contracts.SessionStore) *Interactor {
	return &Interactor{Sessions: sessions}
}

func (it *Interactor) Execute(ctx context.Context, req Request) (*dto.CartView, error) {
	// Parse everything before touching the cart so a bad field changes nothing.
	var tendered *domain.Money
	if req.Tendered != nil {
		m, err := domain.NewMoneyFromDecimal(*req.Tendered)
		if err != nil {
			return nil, domain.ErrInvalidTender
		}
		if m.IsNegative() {
			return nil, domain.ErrInvalidTender
		}
		tendered = m
	}

	var state domain.PaymentState
	if req.PaymentState != nil {
		s, err := domain.ParsePaymentState(*req.PaymentState)
		if err != nil {
			return nil, err
		}
		state = s
	}

	var view *dto.CartView
	err := it.Sessions.Update(ctx, req.CartID, func(s *contracts.Session) error {
		if err := shared.CheckOwner(s, req.UserID); err != nil {
			return err
		}
		c := s.Cart

		if state != "" {
			if err := c.SetPaymentState(state); err != nil {
				return err
			}
		}
		if req.ClearCounterparty {
			c.SetCounterparty(nil)
		} else if req.CounterpartyID != nil {
			c.SetCounterparty(req.CounterpartyID)
		}
		if tendered != nil {
			if err := c.SetTendered(tendered); err != nil {
				return err
			}
		}

		view = shared.NewCartView(s)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return view, nil
}
