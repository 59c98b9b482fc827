package e2e

import (
	"context"
	"fmt"
	"testing"

	"cloud.google.com/go/spanner"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/iterator"

	"github.com/murkotick/grocery-pos-service/internal/models/m_outbox"
)

type saleRow struct {
	ClientID  spanner.NullInt64 `spanner:"client_id"`
	UserID    int64             `spanner:"user_id"`
	State     string            `spanner:"state"`
	ItemCount int64             `spanner:"item_count"`
}

type saleLineRow struct {
	ProductID       int64              `spanner:"product_id"`
	Quantity        int64              `spanner:"quantity"`
	DiscountPercent spanner.NullString `spanner:"discount_percent"`
}

func mustFetchOutboxEvents(ctx context.Context, t *testing.T, client *spanner.Client, aggregateID string) []m_outbox.Row {
	t.Helper()
	items, err := fetchOutboxEvents(ctx, client, aggregateID)
	require.NoError(t, err)
	return items
}

func fetchOutboxEvents(ctx context.Context, client *spanner.Client, aggregateID string) ([]m_outbox.Row, error) {
	stmt := spanner.Statement{
		SQL: fmt.Sprintf("SELECT %s FROM %s WHERE %s = @id ORDER BY %s, %s",
			m_outbox.SelectList, m_outbox.TableName, m_outbox.ColAggregateID,
			m_outbox.ColCreatedAt, m_outbox.ColEventID),
		Params: map[string]any{"id": aggregateID},
	}

	iter := client.Single().Query(ctx, stmt)
	defer iter.Stop()

	out := make([]m_outbox.Row, 0)
	for {
		row, err := iter.Next()
		if err == iterator.Done {
			return out, nil
		}
		if err != nil {
			return nil, err
		}
		var e m_outbox.Row
		if err := row.ToStruct(&e); err != nil {
			return nil, err
		}
		out = append(out, e)
	}
}

func mustFetchSale(ctx context.Context, t *testing.T, client *spanner.Client, saleID string) saleRow {
	t.Helper()
	row, err := client.Single().ReadRow(ctx, "sales", spanner.Key{saleID},
		[]string{"client_id", "user_id", "state", "item_count"})
	require.NoError(t, err)

	var s saleRow
	require.NoError(t, row.ToStruct(&s))
	return s
}

func mustFetchSaleLines(ctx context.Context, t *testing.T, client *spanner.Client, saleID string) []saleLineRow {
	t.Helper()
	stmt := spanner.Statement{
		SQL: `SELECT product_id, quantity, discount_percent
        FROM sale_products
        WHERE sale_id = @id
        ORDER BY line_no`,
		Params: map[string]any{"id": saleID},
	}
	iter := client.Single().Query(ctx, stmt)
	defer iter.Stop()

	var out []saleLineRow
	err := iter.Do(func(row *spanner.Row) error {
		var l saleLineRow
		if err := row.ToStruct(&l); err != nil {
			return err
		}
		out = append(out, l)
		return nil
	})
	require.NoError(t, err)
	return out
}
