package memory

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/murkotick/grocery-pos-service/internal/app/cart/domain"
	"github.com/murkotick/grocery-pos-service/internal/app/cart/dto"
)

const statusActive = "active"

var ErrDuplicateProduct = errors.New("duplicate product in seed")

type seedFile struct {
	Products []seedProduct `yaml:"products"`
}

type seedProduct struct {
	ID       int64  `yaml:"id"`
	Name     string `yaml:"name"`
	Barcode  string `yaml:"barcode"`
	Category string `yaml:"category"`
	Price    string `yaml:"price"`
	Cost     string `yaml:"cost"`
	Discount string `yaml:"discount"`
	Stock    *int   `yaml:"stock"`
	Status   string `yaml:"status"`
}

// Catalog serves products loaded once from a YAML seed. It is read-only after
// loading and safe for concurrent use.
type Catalog struct {
	products []domain.Product
	byID     map[int64]*dto.ProductDTO
	order    []int64
}

// LoadFile reads a seed file from disk.
func LoadFile(path string) (*Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open catalog seed: %w", err)
	}
	defer f.Close()
	return Load(f)
}

// Load parses and validates a seed document.
func Load(r io.Reader) (*Catalog, error) {
	var seed seedFile
	if err := yaml.NewDecoder(r).Decode(&seed); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("decode catalog seed: %w", err)
	}

	c := &Catalog{byID: make(map[int64]*dto.ProductDTO, len(seed.Products))}
	barcodes := make(map[string]int64)
	for i, sp := range seed.Products {
		p, view, err := sp.build()
		if err != nil {
			return nil, fmt.Errorf("catalog seed product #%d (id %d): %w", i+1, sp.ID, err)
		}
		if _, dup := c.byID[p.ID]; dup {
			return nil, fmt.Errorf("%w: id %d", ErrDuplicateProduct, p.ID)
		}
		if p.Barcode != "" {
			if other, dup := barcodes[p.Barcode]; dup {
				return nil, fmt.Errorf("%w: barcode %s on %d and %d", ErrDuplicateProduct, p.Barcode, other, p.ID)
			}
			barcodes[p.Barcode] = p.ID
		}

		c.byID[p.ID] = view
		c.order = append(c.order, p.ID)
		if view.Status == statusActive {
			c.products = append(c.products, p)
		}
	}

	sort.SliceStable(c.order, func(i, j int) bool {
		return c.byID[c.order[i]].Name < c.byID[c.order[j]].Name
	})
	return c, nil
}

func (sp seedProduct) build() (domain.Product, *dto.ProductDTO, error) {
	price, err := domain.NewMoneyFromDecimal(sp.Price)
	if err != nil {
		return domain.Product{}, nil, err
	}
	cost, err := domain.NewMoneyFromDecimal(sp.Cost)
	if err != nil {
		return domain.Product{}, nil, err
	}

	discount := domain.NoDiscount
	if sp.Discount != "" {
		pct, err := decimal.NewFromString(sp.Discount)
		if err != nil {
			return domain.Product{}, nil, fmt.Errorf("%w: %q", domain.ErrInvalidDiscount, sp.Discount)
		}
		if discount, err = domain.NewDiscount(pct); err != nil {
			return domain.Product{}, nil, err
		}
	}

	p, err := domain.NewProduct(sp.ID, sp.Name, price, cost, discount, sp.Stock, sp.Barcode)
	if err != nil {
		return domain.Product{}, nil, err
	}

	status := sp.Status
	if status == "" {
		status = statusActive
	}
	view := &dto.ProductDTO{
		ProductID: p.ID,
		Name:      p.Name,
		Category:  sp.Category,
		Price:     price.String(),
		Cost:      cost.String(),
		Status:    status,
	}
	if p.Barcode != "" {
		b := p.Barcode
		view.Barcode = &b
	}
	if !discount.IsZero() {
		d := discount.Percent().String()
		view.DiscountPercent = &d
	}
	if sp.Stock != nil {
		s := int64(*sp.Stock)
		view.Stock = &s
	}
	return p, view, nil
}

func (c *Catalog) GetProduct(ctx context.Context, productID int64) (*dto.ProductDTO, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	p, ok := c.byID[productID]
	if !ok {
		return nil, domain.ErrProductNotFound
	}
	return clone(p), nil
}

// FindByBarcode matches active products only.
func (c *Catalog) FindByBarcode(ctx context.Context, code string) (*dto.ProductDTO, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	p, err := domain.FindByBarcode(c.products, code)
	if err != nil {
		return nil, err
	}
	return clone(c.byID[p.ID]), nil
}

func (c *Catalog) ListProducts(ctx context.Context, category *string, limit, offset int) ([]*dto.ProductDTO, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	out := make([]*dto.ProductDTO, 0)
	skipped := 0
	for _, id := range c.order {
		p := c.byID[id]
		if p.Status != statusActive {
			continue
		}
		if category != nil && p.Category != *category {
			continue
		}
		if skipped < offset {
			skipped++
			continue
		}
		if limit > 0 && len(out) == limit {
			break
		}
		out = append(out, clone(p))
	}
	return out, nil
}

// Len reports how many products were loaded.
func (c *Catalog) Len() int {
	return len(c.byID)
}

func clone(p *dto.ProductDTO) *dto.ProductDTO {
	cp := *p
	return &cp
}
