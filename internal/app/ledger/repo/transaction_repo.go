package repo

import (
	"time"

	"cloud.google.com/go/spanner"

	"github.com/murkotick/grocery-pos-service/internal/app/cart/domain"
	"github.com/murkotick/grocery-pos-service/internal/app/cart/dto"
	"github.com/murkotick/grocery-pos-service/internal/models/m_sale"
	"github.com/murkotick/grocery-pos-service/internal/models/m_sale_product"
	"github.com/murkotick/grocery-pos-service/internal/models/m_shopping"
	"github.com/murkotick/grocery-pos-service/internal/models/m_shopping_product"
)

// TransactionRepo maps sales to sales/sale_products and purchases to shoppings/shopping_products.
type TransactionRepo struct{}

func NewTransactionRepo() *TransactionRepo {
	return &TransactionRepo{}
}

func (r *TransactionRepo) InsertMuts(id string, req *domain.TransactionRequest, at time.Time) ([]*spanner.Mutation, error) {
	switch req.Kind {
	case domain.KindSale:
		return saleMuts(id, req, at), nil
	case domain.KindPurchase:
		return shoppingMuts(id, req, at), nil
	}
	return nil, domain.ErrInvalidKind
}

func saleMuts(id string, req *domain.TransactionRequest, at time.Time) []*spanner.Mutation {
	out := make([]*spanner.Mutation, 0, len(req.Lines)+1)
	out = append(out, m_sale.InsertMutation(buildSaleValues(id, req, at)))

	for i, l := range req.Lines {
		var pct *string
		if l.Discount != nil && !l.Discount.IsZero() {
			s := l.Discount.Percent().String()
			pct = &s
		}
		out = append(out, m_sale_product.InsertMutation(id, i+1, l.ProductID, l.Quantity, pct))
	}
	return out
}

func buildSaleValues(id string, req *domain.TransactionRequest, at time.Time) map[string]interface{} {
	amount := amountOrZero(req.Amount)
	return m_sale.BuildInsertMap(id, req.CounterpartyID, req.UserID, dto.SaleStateFromDomain(req.PaymentState),
		req.Total.Numerator(), req.Total.Denominator(),
		amount.Numerator(), amount.Denominator(),
		req.ItemCount(), at)
}

func shoppingMuts(id string, req *domain.TransactionRequest, at time.Time) []*spanner.Mutation {
	out := make([]*spanner.Mutation, 0, len(req.Lines)+1)
	out = append(out, m_shopping.InsertMutation(buildShoppingValues(id, req, at)))

	for i, l := range req.Lines {
		out = append(out, m_shopping_product.InsertMutation(id, i+1, l.ProductID, l.Quantity))
	}
	return out
}

func buildShoppingValues(id string, req *domain.TransactionRequest, at time.Time) map[string]interface{} {
	amount := amountOrZero(req.Amount)
	return m_shopping.BuildInsertMap(id, req.CounterpartyID, req.UserID,
		req.Total.Numerator(), req.Total.Denominator(),
		amount.Numerator(), amount.Denominator(),
		req.ItemCount(), at)
}

func amountOrZero(m *domain.Money) *domain.Money {
	if m == nil {
		return domain.Zero()
	}
	return m
}
