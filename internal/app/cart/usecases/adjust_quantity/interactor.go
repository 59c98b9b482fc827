package adjust_quantity

import (
	"context"
	"errors"

	contracts "github.com/murkotick/grocery-pos-service/internal/app/cart/contracts"
	"github.com/murkotick/grocery-pos-service/internal/app/cart/dto"
	shared "github.com/murkotick/grocery-pos-service/internal/app/cart/usecases/shared"
)

// Direction of a one-unit quantity change.
type Direction string

const (
	Increment Direction = "increment"
	Decrement Direction = "decrement"
)

var ErrInvalidDirection = errors.New("direction must be increment or decrement")

type Request struct {
	CartID    string
	UserID    int64
	ProductID int64
	Direction Direction
}

// Response reports whether the quantity actually changed. Applied is false
// when a decrement hits 1 or an increment hits the stock limit.
type Response struct {
	Applied bool
	Cart    *dto.CartView
}

type Interactor struct {
	Sessions contracts.SessionStore
}

func NewInteractor(sessions contracts.SessionStore) *Interactor {
	return &Interactor{Sessions: sessions}
}

func (it *Interactor) Execute(ctx context.Context, req Request) (*Response, error) {
	if req.Direction != Increment && req.Direction != Decrement {
		return nil, ErrInvalidDirection
	}

	resp := &Response{}
	err := it.Sessions.Update(ctx, req.CartID, func(s *contracts.Session) error {
		if err := shared.CheckOwner(s, req.UserID); err != nil {
			return err
		}

		var err error
		if req.Direction == Increment {
			resp.Applied, err = s.Cart.IncrementQuantity(req.ProductID)
		} else {
			resp.Applied, err = s.Cart.DecrementQuantity(req.ProductID)
		}
		if err != nil {
			return err
		}
		resp.Cart = shared.NewCartView(s)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return resp, nil
}
