package crates

import (
	"fmt"
	"strings"
	"sync/atomic"
)

// Catalog es inmutable después de NewCatalog. Se comparte entre requests sin locks.
type Catalog struct {
	entries []CrateCatalogEntry
	byID    map[string]int
}

// NewCatalog copia y valida las entradas. El orden de inserción se conserva
// porque es el último criterio de desempate del matcher.
func NewCatalog(entries []CrateCatalogEntry) (*Catalog, error) {
	c := &Catalog{
		entries: make([]CrateCatalogEntry, 0, len(entries)),
		byID:    make(map[string]int, len(entries)),
	}

	for i, e := range entries {
		e.ModelID = strings.TrimSpace(e.ModelID)
		e.MaterialClass = MaterialClass(strings.ToLower(strings.TrimSpace(string(e.MaterialClass))))

		if e.ModelID == "" {
			return nil, fmt.Errorf("%w: entry %d: model id required", ErrInvalidCatalog, i)
		}
		if _, dup := c.byID[e.ModelID]; dup {
			return nil, fmt.Errorf("%w: duplicate model id %q", ErrInvalidCatalog, e.ModelID)
		}
		d := e.InteriorDimensions
		if d.Length <= 0 || d.Width <= 0 || d.Height <= 0 {
			return nil, fmt.Errorf("%w: %s: interior dimensions must be > 0", ErrInvalidCatalog, e.ModelID)
		}
		if e.MaxWeightKg <= 0 {
			return nil, fmt.Errorf("%w: %s: max weight must be > 0", ErrInvalidCatalog, e.ModelID)
		}
		if !e.MaterialClass.Valid() {
			return nil, fmt.Errorf("%w: %s: unknown material %q", ErrInvalidCatalog, e.ModelID, e.MaterialClass)
		}

		c.byID[e.ModelID] = len(c.entries)
		c.entries = append(c.entries, e)
	}

	return c, nil
}

// Entries devuelve una copia en orden de inserción.
func (c *Catalog) Entries() []CrateCatalogEntry {
	if c == nil {
		return nil
	}
	out := make([]CrateCatalogEntry, len(c.entries))
	copy(out, c.entries)
	return out
}

func (c *Catalog) Len() int {
	if c == nil {
		return 0
	}
	return len(c.entries)
}

func (c *Catalog) Get(modelID string) (CrateCatalogEntry, error) {
	if c != nil {
		if i, ok := c.byID[strings.TrimSpace(modelID)]; ok {
			return c.entries[i], nil
		}
	}
	return CrateCatalogEntry{}, ErrModelNotFound
}

// CatalogSource entrega el catálogo vigente.
type CatalogSource interface {
	Current() *Catalog
}

// CatalogStore guarda el catálogo vigente detrás de un puntero atómico.
// Un reload reemplaza la referencia completa: una evaluación en curso sigue
// viendo el catálogo con el que empezó.
type CatalogStore struct {
	current atomic.Pointer[Catalog]
}

func NewCatalogStore(initial *Catalog) *CatalogStore {
	s := &CatalogStore{}
	if initial != nil {
		s.current.Store(initial)
	}
	return s
}

func (s *CatalogStore) Current() *Catalog {
	return s.current.Load()
}

// Swap instala next y devuelve el anterior.
func (s *CatalogStore) Swap(next *Catalog) *Catalog {
	return s.current.Swap(next)
}
