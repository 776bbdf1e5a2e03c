// internal/repository/memory.go
package repository

import (
	"context"
	"fmt"
	"sync"

	"github.com/javajoker/product-catalog/internal/models"
)

type memoryProductRepo struct {
	mu       sync.RWMutex
	products []models.Product
}

// NewMemoryProductRepository keeps products in a slice for the lifetime of
// the process. Reads return copies.
func NewMemoryProductRepository() ProductRepository {
	return &memoryProductRepo{}
}

func (r *memoryProductRepo) Insert(ctx context.Context, p *models.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.indexOf(p.ID) != -1 {
		return fmt.Errorf("product %d already exists", p.ID)
	}
	r.products = append(r.products, p.Clone())
	return nil
}

func (r *memoryProductRepo) FindAll(ctx context.Context) ([]models.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]models.Product, len(r.products))
	for i, p := range r.products {
		out[i] = p.Clone()
	}
	return out, nil
}

func (r *memoryProductRepo) FindByID(ctx context.Context, id int64) (*models.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	i := r.indexOf(id)
	if i == -1 {
		return nil, ErrNotFound
	}
	p := r.products[i].Clone()
	return &p, nil
}

func (r *memoryProductRepo) Replace(ctx context.Context, p *models.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(p.ID)
	if i == -1 {
		return ErrNotFound
	}
	r.products[i] = p.Clone()
	return nil
}

func (r *memoryProductRepo) Delete(ctx context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(id)
	if i == -1 {
		return ErrNotFound
	}
	r.products = append(r.products[:i], r.products[i+1:]...)
	return nil
}

func (r *memoryProductRepo) MaxID(ctx context.Context) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var max int64
	for _, p := range r.products {
		if p.ID > max {
			max = p.ID
		}
	}
	return max, nil
}

func (r *memoryProductRepo) indexOf(id int64) int {
	for i := range r.products {
		if r.products[i].ID == id {
			return i
		}
	}
	return -1
}
