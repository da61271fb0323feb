package catalog

import (
	"sync"

	"github.com/coursechat/coursechat-go/internal/domain/entities"
)

// Holder hands out the current catalog snapshot and supports atomic
// replacement on hot-reload. Readers always get a complete catalog;
// a swap never exposes a partially loaded one.
type Holder struct {
	mu      sync.RWMutex
	catalog *entities.Catalog
}

// NewHolder creates a holder with an initial catalog.
func NewHolder(catalog *entities.Catalog) *Holder {
	return &Holder{catalog: catalog}
}

// Catalog returns the current snapshot.
func (h *Holder) Catalog() *entities.Catalog {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.catalog
}

// Swap replaces the snapshot. Requests already holding the old
// catalog finish against it.
func (h *Holder) Swap(catalog *entities.Catalog) {
	h.mu.Lock()
	h.catalog = catalog
	h.mu.Unlock()
}
