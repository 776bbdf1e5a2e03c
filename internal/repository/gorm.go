// internal/repository/gorm.go
package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/javajoker/product-catalog/internal/models"
)

type gormProductRepo struct {
	db *gorm.DB
}

// NewGormProductRepository stores products in the database behind db. The
// products table must already be migrated.
func NewGormProductRepository(db *gorm.DB) ProductRepository {
	return &gormProductRepo{db: db}
}

func (r *gormProductRepo) Insert(ctx context.Context, p *models.Product) error {
	if err := r.db.WithContext(ctx).Create(p).Error; err != nil {
		return fmt.Errorf("failed to insert product: %w", err)
	}
	return nil
}

func (r *gormProductRepo) FindAll(ctx context.Context) ([]models.Product, error) {
	products := []models.Product{}
	if err := r.db.WithContext(ctx).Order("id asc").Find(&products).Error; err != nil {
		return nil, fmt.Errorf("database error: %w", err)
	}
	return products, nil
}

func (r *gormProductRepo) FindByID(ctx context.Context, id int64) (*models.Product, error) {
	var product models.Product
	if err := r.db.WithContext(ctx).First(&product, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("database error: %w", err)
	}
	return &product, nil
}

func (r *gormProductRepo) Replace(ctx context.Context, p *models.Product) error {
	result := r.db.WithContext(ctx).Model(&models.Product{}).Where("id = ?", p.ID).
		Select("*").Updates(p)
	if result.Error != nil {
		return fmt.Errorf("failed to update product: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *gormProductRepo) Delete(ctx context.Context, id int64) error {
	result := r.db.WithContext(ctx).Delete(&models.Product{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete product: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *gormProductRepo) MaxID(ctx context.Context) (int64, error) {
	var max int64
	if err := r.db.WithContext(ctx).Model(&models.Product{}).
		Select("COALESCE(MAX(id), 0)").Scan(&max).Error; err != nil {
		return 0, fmt.Errorf("database error: %w", err)
	}
	return max, nil
}
