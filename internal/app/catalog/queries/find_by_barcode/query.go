package find_by_barcode

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

// SpannerFindByBarcodeQuery resolves a scanned code through the unique barcode index.
type SpannerFindByBarcodeQuery struct {
	Client *spanner.Client
}

func NewSpannerFindByBarcodeQuery(client *spanner.Client) *SpannerFindByBarcodeQuery {
	return &SpannerFindByBarcodeQuery{Client: client}
}

func (q *SpannerFindByBarcodeQuery) FindByBarcode(ctx context.Context, code string) (*dto.ProductDTO, error) {
	if code == "" {
		return nil, domain.ErrProductNotFound
	}

	stmt := barcodeStatement(code)

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

// barcodeStatement matches active products only, like the in-memory catalog.
func barcodeStatement(code string) spanner.Statement {
	return spanner.Statement{
		SQL: fmt.Sprintf("SELECT %s FROM %s WHERE %s = @code AND %s = @status LIMIT 1",
			m_product.SelectList, m_product.TableName, m_product.ColBarcode, m_product.ColStatus),
		Params: map[string]interface{}{"code": code, "status": m_product.StatusActive},
	}
}
