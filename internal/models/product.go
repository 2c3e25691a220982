// Package models defines core data structures for products, queries, and search results.
package models

import "github.com/google/uuid"

// UnknownBrand is the brand assigned to records that arrive without one.
const UnknownBrand = "unknown"

// productNamespace seeds name-based product IDs so the same name always maps to the same ID.
var productNamespace = uuid.NewSHA1(uuid.NameSpaceOID, []byte("shohin/product"))

// Product is one prepared catalog record.
// ImageRef is carried as-is from the source; only the image resolver interprets it.
type Product struct {
	ID       string  `json:"id" db:"id"`
	Name     string  `json:"name" db:"name"`
	Brand    string  `json:"brand" db:"brand"`
	Price    float64 `json:"price" db:"price"`
	ImageRef string  `json:"image_ref" db:"image_ref"`
}

// ProductID returns a stable ID for a product name.
func ProductID(name string) string {
	return uuid.NewSHA1(productNamespace, []byte(name)).String()
}

// NewProduct builds a Product with its ID derived from name.
func NewProduct(name, brand string, price float64, imageRef string) Product {
	return Product{
		ID:       ProductID(name),
		Name:     name,
		Brand:    brand,
		Price:    price,
		ImageRef: imageRef,
	}
}
