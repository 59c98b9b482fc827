// Package usecasetest holds in-memory collaborators for usecase and transport tests.
package usecasetest

import (
	"context"
	"sort"
	"sync"

	"github.com/murkotick/grocery-pos-service/internal/app/cart/domain"
	"github.com/murkotick/grocery-pos-service/internal/app/cart/dto"
)

// Catalog is a map-backed contracts.Catalog.
type Catalog struct {
	mu       sync.Mutex
	products map[int64]*dto.ProductDTO
	Calls    int
}

func NewCatalog(products ...*dto.ProductDTO) *Catalog {
	c := &Catalog{products: make(map[int64]*dto.ProductDTO)}
	for _, p := range products {
		c.products[p.ProductID] = p
	}
	return c
}

func (c *Catalog) Put(p *dto.ProductDTO) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.products[p.ProductID] = p
}

func (c *Catalog) GetProduct(_ context.Context, productID int64) (*dto.ProductDTO, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.Calls++
	p, ok := c.products[productID]
	if !ok {
		return nil, domain.ErrProductNotFound
	}
	cp := *p
	return &cp, nil
}

func (c *Catalog) FindByBarcode(_ context.Context, code string) (*dto.ProductDTO, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.Calls++
	for _, p := range c.products {
		if p.Barcode != nil && *p.Barcode == code {
			cp := *p
			return &cp, nil
		}
	}
	return nil, domain.ErrProductNotFound
}

func (c *Catalog) ListProducts(_ context.Context, category *string, limit, offset int) ([]*dto.ProductDTO, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.Calls++

	out := make([]*dto.ProductDTO, 0, len(c.products))
	for _, p := range c.products {
		if category != nil && p.Category != *category {
			continue
		}
		cp := *p
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })

	if offset >= len(out) {
		return []*dto.ProductDTO{}, nil
	}
	out = out[offset:]
	if limit > 0 && limit < len(out) {
		out = out[:limit]
	}
	return out, nil
}

// Gateway records submitted requests and replies with Result or Err.
type Gateway struct {
	mu       sync.Mutex
	Requests []*domain.TransactionRequest
	Result   *dto.SubmitResult
	Err      error
}

func (g *Gateway) Submit(_ context.Context, req *domain.TransactionRequest) (*dto.SubmitResult, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.Requests = append(g.Requests, req)
	if g.Err != nil {
		return nil, g.Err
	}
	if g.Result != nil {
		return g.Result, nil
	}
	return &dto.SubmitResult{
		TransactionID: "tx-1",
		Kind:          string(req.Kind),
		Total:         req.Total.String(),
		ItemCount:     req.ItemCount(),
	}, nil
}

// Product builds an active catalog product. discount may be empty.
func Product(id int64, name, price, cost, discount string, stock *int64, barcode string) *dto.ProductDTO {
	p := &dto.ProductDTO{
		ProductID: id,
		Name:      name,
		Price:     price,
		Cost:      cost,
		Stock:     stock,
		Status:    "active",
	}
	if discount != "" {
		p.DiscountPercent = &discount
	}
	if barcode != "" {
		p.Barcode = &barcode
	}
	return p
}
