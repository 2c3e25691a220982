// Package catalog loads, cleans, and holds the product catalog searched by the engine.
package catalog

import (
	"sync/atomic"
	"time"

	"github.com/hyperjump/shohin/internal/models"
)

// Catalog is an immutable snapshot of prepared products in catalog order.
// It is safe for concurrent readers; callers must not modify the slice
// returned by Products.
type Catalog struct {
	products []models.Product
	byID     map[string]int
	source   string
	loadedAt time.Time
	stats    Stats
}

// New builds a snapshot from already-prepared products. Products without an ID
// get one derived from their name.
func New(source string, products []models.Product, stats Stats) *Catalog {
	owned := make([]models.Product, len(products))
	copy(owned, products)
	byID := make(map[string]int, len(owned))
	for i := range owned {
		if owned[i].ID == "" {
			owned[i].ID = models.ProductID(owned[i].Name)
		}
		byID[owned[i].ID] = i
	}
	return &Catalog{
		products: owned,
		byID:     byID,
		source:   source,
		loadedAt: time.Now(),
		stats:    stats,
	}
}

// Empty returns a catalog with no products.
func Empty() *Catalog {
	return New("", nil, Stats{})
}

// Products returns the shared, read-only product slice in catalog order.
func (c *Catalog) Products() []models.Product { return c.products }

// Len returns the number of products.
func (c *Catalog) Len() int { return len(c.products) }

// ByID returns the product with the given ID.
func (c *Catalog) ByID(id string) (*models.Product, bool) {
	i, ok := c.byID[id]
	if !ok {
		return nil, false
	}
	return &c.products[i], true
}

// Names returns product names in catalog order.
func (c *Catalog) Names() []string {
	names := make([]string, len(c.products))
	for i, p := range c.products {
		names[i] = p.Name
	}
	return names
}

func (c *Catalog) Source() string      { return c.source }
func (c *Catalog) LoadedAt() time.Time { return c.loadedAt }
func (c *Catalog) Stats() Stats        { return c.stats }

// Store provides the current catalog snapshot.
type Store interface {
	Catalog() *Catalog
}

// MemoryStore holds the current snapshot and swaps it atomically on reload.
type MemoryStore struct {
	current atomic.Pointer[Catalog]
}

// NewMemoryStore returns a store serving c. A nil catalog is replaced by an empty one.
func NewMemoryStore(c *Catalog) *MemoryStore {
	s := &MemoryStore{}
	s.Replace(c)
	return s
}

// Catalog returns the current snapshot. It never returns nil.
func (s *MemoryStore) Catalog() *Catalog {
	return s.current.Load()
}

// Replace swaps in a new snapshot. Readers holding the previous one keep using it.
func (s *MemoryStore) Replace(c *Catalog) {
	if c == nil {
		c = Empty()
	}
	s.current.Store(c)
}

// ReloadFrom loads path and replaces the snapshot. On failure the previous
// snapshot stays in place and the error is returned.
func (s *MemoryStore) ReloadFrom(path string, opts LoadOptions) error {
	c, err := Load(path, opts)
	if err != nil {
		return err
	}
	s.Replace(c)
	return nil
}
