package shared

import (
	"github.com/murkotick/grocery-pos-service/internal/app/cart/contracts"
	"github.com/murkotick/grocery-pos-service/internal/app/cart/domain"
	"github.com/murkotick/grocery-pos-service/internal/app/cart/domain/services"
	"github.com/murkotick/grocery-pos-service/internal/app/cart/dto"
)

// NewCartView snapshots a session into its read model. Call it while the session is locked.
func NewCartView(s *contracts.Session) *dto.CartView {
	c := s.Cart
	lines := c.Lines()
	sum := services.NewCheckout().Summarize(c)

	view := &dto.CartView{
		CartID:        s.ID,
		Kind:          string(c.Kind()),
		Phase:         string(c.Phase()),
		Lines:         make([]dto.LineView, 0, sum.LineCount),
		Subtotal:      sum.Subtotal.String(),
		TotalDiscount: sum.TotalDiscount.String(),
		ItemCount:     sum.ItemCount,
		Tendered:      sum.Tendered.String(),
		ChangeDue:     sum.ChangeDue.String(),
		UpdatedAt:     s.UpdatedAt,
	}
	if id := c.CounterpartyID(); id != nil {
		v := *id
		view.CounterpartyID = &v
	}
	if c.Kind() == domain.KindSale {
		view.PaymentState = string(c.PaymentState())
	}

	for _, l := range lines {
		view.Lines = append(view.Lines, dto.LineView{
			ProductID:           l.ProductID(),
			Name:                l.Name(),
			Quantity:            l.Quantity(),
			UnitPrice:           l.UnitPrice().String(),
			DiscountPercent:     l.Discount().Percent().String(),
			DiscountedUnitPrice: l.DiscountedUnitPrice().String(),
			LineTotal:           l.LineTotal().String(),
			AtStockLimit:        l.AtStockLimit(),
		})
	}
	return view
}
