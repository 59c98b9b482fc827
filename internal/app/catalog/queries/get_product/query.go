package get_product

import (
	"context"
	"fmt"

	"cloud.google.com/go/spanner"
	"google.golang.org/api/iterator"

	"github.com/murkotick/grocery-pos-service/internal/app/cart/domain"
	"github.com/murkotick/grocery-pos-service/internal/app/cart/dto"
	"github.com/murkotick/grocery-pos-service/internal/app/catalog/queries/rows"
	"github.com/murkotick/grocery-pos-service/internal/models/m_product"
)

// SpannerGetProductQuery is a concrete query implementation that reads from Spanner directly.
type SpannerGetProductQuery struct {
	Client *spanner.Client
}

func NewSpannerGetProductQuery(client *spanner.Client) *SpannerGetProductQuery {
	return &SpannerGetProductQuery{Client: client}
}

// GetProduct fetches one product by id regardless of status.
func (q *SpannerGetProductQuery) GetProduct(ctx context.Context, productID int64) (*dto.ProductDTO, error) {
	stmt := spanner.Statement{
		SQL:    fmt.Sprintf("SELECT %s FROM %s WHERE %s = @id", m_product.SelectList, m_product.TableName, m_product.ColProductID),
		Params: map[string]interface{}{"id": productID},
	}

	iter := q.Client.Single().Query(ctx, stmt)
	defer iter.Stop()

	row, err := iter.Next()
	if err == iterator.Done {
		return nil, domain.ErrProductNotFound
	}
	if err != nil {
		return nil, err
	}

	var r m_product.Row
	if err := row.ToStruct(&r); err != nil {
		return nil, err
	}
	return rows.ToDTO(r)
}
