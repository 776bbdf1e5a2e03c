// internal/repository/repository.go
package repository

import (
	"context"
	"errors"

	"github.com/javajoker/product-catalog/internal/models"
)

var ErrNotFound = errors.New("record not found")

// ProductRepository stores products in insertion order. Ids are assigned by
// the caller.
type ProductRepository interface {
	Insert(ctx context.Context, p *models.Product) error
	FindAll(ctx context.Context) ([]models.Product, error)
	FindByID(ctx context.Context, id int64) (*models.Product, error)
	Replace(ctx context.Context, p *models.Product) error
	Delete(ctx context.Context, id int64) error
	MaxID(ctx context.Context) (int64, error)
}
