package queries

import (
	"context"

	"cloud.google.com/go/spanner"

	"github.com/murkotick/grocery-pos-service/internal/app/cart/dto"
	"github.com/murkotick/grocery-pos-service/internal/app/catalog/queries/find_by_barcode"
	"github.com/murkotick/grocery-pos-service/internal/app/catalog/queries/get_product"
	"github.com/murkotick/grocery-pos-service/internal/app/catalog/queries/list_products"
)

// SpannerCatalog is an infrastructure adapter that satisfies contracts.Catalog.
// It composes the individual query implementations.
type SpannerCatalog struct {
	getQ     *get_product.SpannerGetProductQuery
	barcodeQ *find_by_barcode.SpannerFindByBarcodeQuery
	listQ    *list_products.SpannerListProductsQuery
}

func NewSpannerCatalog(client *spanner.Client) *SpannerCatalog {
	return &SpannerCatalog{
		getQ:     get_product.NewSpannerGetProductQuery(client),
		barcodeQ: find_by_barcode.NewSpannerFindByBarcodeQuery(client),
		listQ:    list_products.NewSpannerListProductsQuery(client),
	}
}

func (c *SpannerCatalog) GetProduct(ctx context.Context, productID int64) (*dto.ProductDTO, error) {
	return c.getQ.GetProduct(ctx, productID)
}

func (c *SpannerCatalog) FindByBarcode(ctx context.Context, code string) (*dto.ProductDTO, error) {
	return c.barcodeQ.FindByBarcode(ctx, code)
}

func (c *SpannerCatalog) ListProducts(ctx context.Context, category *string, limit, offset int) ([]*dto.ProductDTO, error) {
	return c.listQ.ListProducts(ctx, category, limit, offset)
}
