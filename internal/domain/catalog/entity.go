// internal/domain/catalog/entity.go
package catalog

import "github.com/shopspring/decimal"

// ProductSize is one purchasable pack size of a product
type ProductSize struct {
	Size  string          `json:"size"`
	Price decimal.Decimal `json:"price"`
}

// Product is an entry in the read-only reference catalog. The cart
// engine snapshots these fields into line items; it never writes back.
type Product struct {
	ID          string        `json:"id"`
	Name        string        `json:"name"`
	Description string        `json:"description"`
	Category    string        `json:"category"`
	Image       string        `json:"image"`
	InStock     bool          `json:"in_stock"`
	Sizes       []ProductSize `json:"sizes"`
}

// FirstSize returns the product's default size. Products always carry
// at least one size.
func (p *Product) FirstSize() ProductSize {
	if len(p.Sizes) == 0 {
		return ProductSize{}
	}
	return p.Sizes[0]
}

// SizeByLabel looks up a size by its label
func (p *Product) SizeByLabel(label string) (ProductSize, bool) {
	for _, s := range p.Sizes {
		if s.Size == label {
			return s, true
		}
	}
	return ProductSize{}, false
}
