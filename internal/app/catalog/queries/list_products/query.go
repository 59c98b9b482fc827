package list_products

import (
	"context"
	"fmt"

	"cloud.google.com/go/spanner"
	"google.golang.org/api/iterator"

	"github.com/murkotick/grocery-pos-service/internal/app/cart/dto"
	"github.com/murkotick/grocery-pos-service/internal/app/catalog/queries/rows"
	"github.com/murkotick/grocery-pos-service/internal/models/m_product"
)

// SpannerListProductsQuery lists active products with optional category filter.
type SpannerListProductsQuery struct {
	Client *spanner.Client
}

func NewSpannerListProductsQuery(client *spanner.Client) *SpannerListProductsQuery {
	return &SpannerListProductsQuery{Client: client}
}

func (q *SpannerListProductsQuery) ListProducts(ctx context.Context, category *string, limit, offset int) ([]*dto.ProductDTO, error) {
	baseSQL := fmt.Sprintf("SELECT %s FROM %s WHERE %s = @status",
		m_product.SelectList, m_product.TableName, m_product.ColStatus)
	params := map[string]interface{}{"status": m_product.StatusActive}
	if category != nil {
		baseSQL += " AND " + m_product.ColCategory + " = @category"
		params["category"] = *category
	}
	baseSQL += " ORDER BY name ASC LIMIT @limit OFFSET @offset"
	params["limit"] = int64(limit)
	params["offset"] = int64(offset)

	stmt := spanner.Statement{SQL: baseSQL, Params: params}
	iter := q.Client.Single().Query(ctx, stmt)
	defer iter.Stop()

	out := make([]*dto.ProductDTO, 0)
	for {
		row, err := iter.Next()
		if err == iterator.Done {
			return out, nil
		}
		if err != nil {
			return nil, err
		}

		var r m_product.Row
		if err := row.ToStruct(&r); err != nil {
			return nil, err
		}
		p, err := rows.ToDTO(r)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
}
