package finalize_cart

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	contracts "github.com/murkotick/grocery-pos-service/internal/app/cart/contracts"
	"github.com/murkotick/grocery-pos-service/internal/app/cart/domain/services"
	"github.com/murkotick/grocery-pos-service/internal/app/cart/dto"
	shared "github.com/murkotick/grocery-pos-service/internal/app/cart/usecases/shared"
)

type Request struct {
	CartID string
	UserID int64
}

type Response struct {
	Result *dto.SubmitResult
	Cart   *dto.CartView
}

type Interactor struct {
	Sessions contracts.SessionStore
	Gateway  contracts.TransactionGateway
	Checkout *services.Checkout
	Logger   *zap.Logger
}

func NewInteractor(sessions contracts.SessionStore, gateway contracts.TransactionGateway, logger *zap.Logger) *Interactor {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Interactor{
		Sessions: sessions,
		Gateway:  gateway,
		Checkout: services.NewCheckout(),
		Logger:   logger,
	}
}

// Execute validates the cart, submits it and resets it on success.
// The session stays locked for the whole submission so the cart cannot
// change or be finalized twice while the request is in flight. On failure
// the cart keeps its lines.
func (it *Interactor) Execute(ctx context.Context, req Request) (*Response, error) {
	resp := &Response{}
	err := it.Sessions.Update(ctx, req.CartID, func(s *contracts.Session) error {
		if err := shared.CheckOwner(s, req.UserID); err != nil {
			return err
		}

		// 1. Finalize gate + projection
		txReq, err := it.Checkout.Prepare(s.Cart, req.UserID)
		if err != nil {
			return err
		}

		// 2. Hand over
		result, err := it.Gateway.Submit(ctx, txReq)
		if err != nil {
			it.Logger.Warn("transaction submission failed",
				zap.String("cart_id", s.ID),
				zap.String("kind", string(txReq.Kind)),
				zap.String("total", txReq.Total.String()),
				zap.Error(err),
			)
			if errors.Is(err, contracts.ErrSubmissionFailed) {
				return err
			}
			return fmt.Errorf("%w: %w", contracts.ErrSubmissionFailed, err)
		}

		// 3. Clear for the next customer
		if err := it.Checkout.Complete(s.Cart); err != nil {
			return err
		}

		it.Logger.Info("transaction recorded",
			zap.String("cart_id", s.ID),
			zap.String("transaction_id", result.TransactionID),
			zap.String("kind", string(txReq.Kind)),
			zap.String("total", txReq.Total.String()),
			zap.Int("items", txReq.ItemCount()),
			zap.Int64("user_id", req.UserID),
		)
		resp.Result = result
		resp.Cart = shared.NewCartView(s)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return resp, nil
}
