// internal/domain/catalog/repository.go
package catalog

import (
	"fmt"
	"sort"
)

// ErrProductNotFound is returned when a product id is not in the catalog
var ErrProductNotFound = fmt.Errorf("product not found")

// Repository serves the static product reference list. The catalog is
// read-only at runtime; there is no mutation API.
type Repository struct {
	products map[string]Product
}

// NewRepository creates a repository over the given product list
func NewRepository(products []Product) *Repository {
	index := make(map[string]Product, len(products))
	for _, p := range products {
		index[p.ID] = p
	}
	return &Repository{products: index}
}

// NewSeededRepository creates a repository with the default catalog
func NewSeededRepository() *Repository {
	return NewRepository(seedProducts())
}

// Get returns the product with the given id
func (r *Repository) Get(id string) (*Product, error) {
	p, ok := r.products[id]
	if !ok {
		return nil, ErrProductNotFound
	}
	return &p, nil
}

// List returns all products ordered by id
func (r *Repository) List() []Product {
	out := make([]Product, 0, len(r.products))
	for _, p := range r.products {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// ListByCategory returns products in the given category, ordered by id
func (r *Repository) ListByCategory(category string) []Product {
	out := make([]Product, 0)
	for _, p := range r.products {
		if p.Category == category {
			out = append(out, p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}
