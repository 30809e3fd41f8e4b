package store

import (
	"github.com/frdeange/apitoolsnetworking/internal/models"
)

// ProductCatalog answers "products in a category".
type ProductCatalog struct {
	products []models.Product
}

// NewProductCatalog builds a catalog over the supplied products, preserving
// their order.
func NewProductCatalog(products []models.Product) *ProductCatalog {
	return &ProductCatalog{products: append([]models.Product(nil), products...)}
}

// Find returns products whose category matches exactly. A zero category
// returns every product.
func (c *ProductCatalog) Find(category models.ProductCategory) []models.Product {
	matched := make([]models.Product, 0, len(c.products))
	for _, p := range c.products {
		if category != "" && p.Category != category {
			continue
		}
		matched = append(matched, p)
	}
	return matched
}

// Len reports the number of products in the catalog.
func (c *ProductCatalog) Len() int { return len(c.products) }
