package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math/rand"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"

	contracts "github.com/murkotick/grocery-pos-service/internal/app/cart/contracts"
	"github.com/murkotick/grocery-pos-service/internal/app/cart/dto"
)

var ErrCacheMiss = errors.New("cache miss")

const keyPrefix = "catalog:product:"

// RedisCatalog caches single-product lookups of the wrapped catalog.
// Concurrent misses for the same key share one upstream call. Redis errors
// are logged and bypassed; not-found results are never cached.
type RedisCatalog struct {
	next    contracts.Catalog
	client  *redis.Client
	baseTTL time.Duration
	logger  *zap.Logger
	sfg     singleflight.Group
}

func NewRedisCatalog(next contracts.Catalog, client *redis.Client, ttl time.Duration, logger *zap.Logger) *RedisCatalog {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &RedisCatalog{
		next:    next,
		client:  client,
		baseTTL: ttl,
		logger:  logger,
	}
}

func (c *RedisCatalog) GetProduct(ctx context.Context, productID int64) (*dto.ProductDTO, error) {
	key := idKey(productID)
	return c.cached(ctx, key, func(ctx context.Context) (*dto.ProductDTO, error) {
		return c.next.GetProduct(ctx, productID)
	})
}

func (c *RedisCatalog) FindByBarcode(ctx context.Context, code string) (*dto.ProductDTO, error) {
	key := barcodeKey(code)
	return c.cached(ctx, key, func(ctx context.Context) (*dto.ProductDTO, error) {
		return c.next.FindByBarcode(ctx, code)
	})
}

// ListProducts is not cached; listings are paged and change with every catalog edit.
func (c *RedisCatalog) ListProducts(ctx context.Context, category *string, limit, offset int) ([]*dto.ProductDTO, error) {
	return c.next.ListProducts(ctx, category, limit, offset)
}

// cached runs one shared lookup per key. The shared call is detached from the
// caller that started it; each caller still stops waiting when its own ctx ends.
func (c *RedisCatalog) cached(ctx context.Context, key string, load func(context.Context) (*dto.ProductDTO, error)) (*dto.ProductDTO, error) {
	shared := context.WithoutCancel(ctx)
	ch := c.sfg.DoChan(key, func() (interface{}, error) {
		p, err := c.get(shared, key)
		if err == nil {
			return p, nil
		}
		if !errors.Is(err, ErrCacheMiss) {
			c.logger.Warn("catalog cache get failed", zap.String("key", key), zap.Error(err))
		}

		p, err = load(shared)
		if err != nil {
			return nil, err
		}

		if err := c.set(shared, key, p); err != nil {
			c.logger.Warn("catalog cache set failed", zap.String("key", key), zap.Error(err))
		}
		return p, nil
	})

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return nil, res.Err
		}
		return cloneProduct(res.Val.(*dto.ProductDTO)), nil
	}
}

// cloneProduct copies p including its pointer fields, so callers sharing one
// lookup never alias each other's data.
func cloneProduct(p *dto.ProductDTO) *dto.ProductDTO {
	cp := *p
	if p.Barcode != nil {
		v := *p.Barcode
		cp.Barcode = &v
	}
	if p.DiscountPercent != nil {
		v := *p.DiscountPercent
		cp.DiscountPercent = &v
	}
	if p.Stock != nil {
		v := *p.Stock
		cp.Stock = &v
	}
	return &cp
}

func (c *RedisCatalog) get(ctx context.Context, key string) (*dto.ProductDTO, error) {
	data, err := c.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrCacheMiss
	}
	if err != nil {
		return nil, fmt.Errorf("redis get failed: %w", err)
	}

	var p dto.ProductDTO
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("unmarshal product failed: %w", err)
	}
	return &p, nil
}

func (c *RedisCatalog) set(ctx context.Context, key string, p *dto.ProductDTO) error {
	data, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("marshal product failed: %w", err)
	}

	jitter := time.Duration(rand.Int63n(int64(c.baseTTL/5) + 1))
	if err := c.client.Set(ctx, key, data, c.baseTTL+jitter).Err(); err != nil {
		return fmt.Errorf("redis set failed: %w", err)
	}
	return nil
}

func idKey(productID int64) string {
	return keyPrefix + "id:" + strconv.FormatInt(productID, 10)
}

func barcodeKey(code string) string {
	return keyPrefix + "barcode:" + code
}
