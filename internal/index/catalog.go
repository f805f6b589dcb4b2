package index

import (
	"sync"
	"time"

	"github.com/grantboard/grantboard/internal/domain"
)

// Catalog provides in-memory storage and lookup for the loaded grant
// collection. It preserves catalog-file order, which the query engine
// relies on for stable-sort tie breaking.
type Catalog struct {
	mu         sync.RWMutex
	grants     []*domain.Grant          // file order
	byID       map[string]*domain.Grant // ID -> Grant
	lastReload time.Time                // Timestamp of last catalog reload
}

// NewCatalog creates an empty catalog.
func NewCatalog() *Catalog {
	return &Catalog{
		byID: make(map[string]*domain.Grant),
	}
}

// Update replaces all grants in the catalog.
func (c *Catalog) Update(grants []*domain.Grant) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.grants = make([]*domain.Grant, 0, len(grants))
	c.byID = make(map[string]*domain.Grant, len(grants))
	for _, g := range grants {
		c.grants = append(c.grants, g)
		c.byID[g.ID] = g
	}
	c.lastReload = time.Now()
}

// All returns every grant in catalog order.
func (c *Catalog) All() []*domain.Grant {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]*domain.Grant, len(c.grants))
	copy(out, c.grants)
	return out
}

// Get retrieves a grant by id.
func (c *Catalog) Get(id string) (*domain.Grant, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	g, ok := c.byID[id]
	return g, ok
}

// Count returns the number of grants in the catalog.
func (c *Catalog) Count() int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return len(c.grants)
}

// LastReload returns the timestamp of the last catalog update.
func (c *Catalog) LastReload() time.Time {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.lastReload
}
