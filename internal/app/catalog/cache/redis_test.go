package cache

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/murkotick/grocery-pos-service/internal/app/cart/domain"
	"github.com/murkotick/grocery-pos-service/internal/app/cart/dto"
	"github.com/murkotick/grocery-pos-service/internal/app/cart/usecases/usecasetest"
)

func setup(t *testing.T) (*RedisCatalog, *usecasetest.Catalog, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	upstream := usecasetest.NewCatalog(
		usecasetest.Product(1, "olive oil", "28.75", "19.10", "5", nil, "7790001000011"),
	)
	return NewRedisCatalog(upstream, client, time.Minute, zaptest.NewLogger(t)), upstream, mr
}

func TestRedisCatalog_CachesHits(t *testing.T) {
	c, upstream, mr := setup(t)
	ctx := context.Background()

	p, err := c.GetProduct(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "28.75", p.Price)
	assert.Equal(t, 1, upstream.Calls)
	assert.True(t, mr.Exists(idKey(1)))

	p, err = c.GetProduct(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "olive oil", p.Name)
	assert.Equal(t, 1, upstream.Calls)

	ttl := mr.TTL(idKey(1))
	assert.GreaterOrEqual(t, ttl, time.Minute)
	assert.LessOrEqual(t, ttl, time.Minute+12*time.Second)
}

func TestRedisCatalog_Barcode(t *testing.T) {
	c, upstream, _ := setup(t)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		p, err := c.FindByBarcode(ctx, "7790001000011")
		require.NoError(t, err)
		assert.Equal(t, int64(1), p.ProductID)
	}
	assert.Equal(t, 1, upstream.Calls)
}

func TestRedisCatalog_NotFoundIsNotCached(t *testing.T) {
	c, upstream, mr := setup(t)
	ctx := context.Background()

	_, err := c.GetProduct(ctx, 2)
	assert.ErrorIs(t, err, domain.ErrProductNotFound)
	assert.False(t, mr.Exists(idKey(2)))

	upstream.Put(usecasetest.Product(2, "bread", "1.20", "0.70", "", nil, ""))
	p, err := c.GetProduct(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, "bread", p.Name)
}

func TestRedisCatalog_RedisDownFallsThrough(t *testing.T) {
	c, upstream, mr := setup(t)
	mr.Close()

	p, err := c.GetProduct(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, "olive oil", p.Name)
	assert.Equal(t, 1, upstream.Calls)
}

func TestRedisCatalog_ConcurrentReadsReturnCopies(t *testing.T) {
	c, _, _ := setup(t)

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			p, err := c.GetProduct(context.Background(), 1)
			if assert.NoError(t, err) {
				p.Name = "changed by caller"
			}
		}()
	}
	wg.Wait()

	p, err := c.GetProduct(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, "olive oil", p.Name)
}

func TestRedisCatalog_CopiesPointerFields(t *testing.T) {
	c, upstream, _ := setup(t)
	stock := int64(12)
	upstream.Put(usecasetest.Product(3, "rice", "2.10", "1.40", "10", &stock, "7790001000035"))
	ctx := context.Background()

	first, err := c.GetProduct(ctx, 3)
	require.NoError(t, err)
	*first.Stock = 0
	*first.Barcode = "0000000000000"
	*first.DiscountPercent = "99"

	second, err := c.GetProduct(ctx, 3)
	require.NoError(t, err)
	assert.Equal(t, int64(12), *second.Stock)
	assert.Equal(t, "7790001000035", *second.Barcode)
	assert.Equal(t, "10", *second.DiscountPercent)
}

// slowCatalog holds every lookup until release is closed.
type slowCatalog struct {
	*usecasetest.Catalog
	entered chan struct{}
	release chan struct{}
	once    sync.Once
}

func (s *slowCatalog) GetProduct(ctx context.Context, productID int64) (*dto.ProductDTO, error) {
	s.once.Do(func() { close(s.entered) })
	<-s.release
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return s.Catalog.GetProduct(ctx, productID)
}

func TestRedisCatalog_CancelledCallerDoesNotFailOthers(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	upstream := &slowCatalog{
		Catalog: usecasetest.NewCatalog(usecasetest.Product(1, "olive oil", "28.75", "19.10", "5", nil, "")),
		entered: make(chan struct{}),
		release: make(chan struct{}),
	}
	c := NewRedisCatalog(upstream, client, time.Minute, zaptest.NewLogger(t))

	ctxA, cancelA := context.WithCancel(context.Background())
	errA := make(chan error, 1)
	go func() {
		_, err := c.GetProduct(ctxA, 1)
		errA <- err
	}()
	<-upstream.entered

	type result struct {
		p   *dto.ProductDTO
		err error
	}
	resB := make(chan result, 1)
	go func() {
		p, err := c.GetProduct(context.Background(), 1)
		resB <- result{p, err}
	}()

	cancelA()
	assert.ErrorIs(t, <-errA, context.Canceled)

	close(upstream.release)
	b := <-resB
	require.NoError(t, b.err)
	assert.Equal(t, "olive oil", b.p.Name)
	assert.Equal(t, 1, upstream.Calls)
	assert.True(t, mr.Exists(idKey(1)))
}
