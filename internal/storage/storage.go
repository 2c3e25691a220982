// Package storage persists prepared product catalogs.
package storage

import (
	"context"
	"errors"

	"github.com/hyperjump/shohin/internal/models"
)

// ErrNotFound is returned when a product does not exist.
var ErrNotFound = errors.New("product not found")

// Storage defines catalog persistence operations. Products are kept in catalog
// order; ListProducts returns them in the order they were saved.
type Storage interface {
	// ReplaceProducts atomically replaces the stored catalog.
	ReplaceProducts(ctx context.Context, products []models.Product) error
	ListProducts(ctx context.Context) ([]models.Product, error)
	GetProduct(ctx context.Context, id string) (*models.Product, error)
	CountProducts(ctx context.Context) (int64, error)

	Close() error
}
