// internal/services/catalog_service.go
package services

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/javajoker/product-catalog/internal/models"
	"github.com/javajoker/product-catalog/internal/repository"
	"github.com/javajoker/product-catalog/internal/utils"
)

// CatalogService is the only writer of the product collection. A single
// mutex serializes every operation so an update reads and replaces a
// record without interleaving with other requests.
type CatalogService struct {
	mu     sync.Mutex
	repo   repository.ProductRepository
	limits UploadLimits
	lastID int64
}

type UploadLimits struct {
	MaxImages    int
	MaxImageSize int64 // in bytes
}

type CreateProductRequest struct {
	Name        string `form:"name" validate:"notblank"`
	Price       string `form:"price" validate:"required,numeric"`
	Description string `form:"description"`
	Status      string `form:"status"`
}

type UpdateProductRequest struct {
	Name        string `form:"name" validate:"notblank"`
	Price       string `form:"price" validate:"required,numeric"`
	Description string `form:"description" validate:"required"`
	Status      string `form:"status" validate:"required"`
}

func NewCatalogService(ctx context.Context, repo repository.ProductRepository, limits UploadLimits) (*CatalogService, error) {
	lastID, err := repo.MaxID(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read last product id: %w", err)
	}

	return &CatalogService{
		repo:   repo,
		limits: limits,
		lastID: lastID,
	}, nil
}

func (s *CatalogService) CreateProduct(ctx context.Context, req *CreateProductRequest, uploads []models.ImageUpload) (*models.Product, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}
	if err := s.checkUploads(uploads); err != nil {
		return nil, err
	}
	price, err := parsePrice(req.Price)
	if err != nil {
		return nil, err
	}

	description := req.Description
	if description == "" {
		description = models.DefaultDescription
	}
	status := req.Status
	if status == "" {
		status = string(models.ProductStatusActive)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	product := &models.Product{
		ID:          s.lastID + 1,
		Name:        req.Name,
		Price:       price,
		Description: description,
		Status:      status,
		Images:      encodeImages(nil, uploads),
	}

	if err := s.repo.Insert(ctx, product); err != nil {
		return nil, fmt.Errorf("failed to create product: %w", err)
	}
	s.lastID = product.ID

	logrus.WithFields(logrus.Fields{
		"product_id": product.ID,
		"images":     len(product.Images),
	}).Info("Product created")

	return product, nil
}

func (s *CatalogService) ListProducts(ctx context.Context) ([]models.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	products, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	return products, nil
}

func (s *CatalogService) GetProduct(ctx context.Context, id int64) (*models.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.find(ctx, id)
}

// UpdateProduct replaces every field of the product and appends the
// uploads to its existing images. Without uploads the image set is left
// exactly as it was.
func (s *CatalogService) UpdateProduct(ctx context.Context, id int64, req *UpdateProductRequest, uploads []models.ImageUpload) (*models.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	existing, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := validateRequest(req); err != nil {
		return nil, err
	}
	if err := s.checkUploads(uploads); err != nil {
		return nil, err
	}
	price, err := parsePrice(req.Price)
	if err != nil {
		return nil, err
	}

	product := &models.Product{
		ID:          existing.ID,
		Name:        req.Name,
		Price:       price,
		Description: req.Description,
		Status:      req.Status,
		Images:      encodeImages(existing.Images, uploads),
	}

	if err := s.repo.Replace(ctx, product); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, fmt.Errorf("failed to update product: %w", err)
	}

	logrus.WithFields(logrus.Fields{
		"product_id":   product.ID,
		"added_images": len(uploads),
		"images":       len(product.Images),
	}).Info("Product updated")

	return product, nil
}

func (s *CatalogService) DeleteProduct(ctx context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrProductNotFound
		}
		return fmt.Errorf("failed to delete product: %w", err)
	}

	logrus.WithField("product_id", id).Info("Product deleted")
	return nil
}

// Seed inserts products with their own ids and images. Ids already in the
// catalog are skipped.
func (s *CatalogService) Seed(ctx context.Context, products []models.Product) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range products {
		p := products[i].Clone()
		if _, err := s.repo.FindByID(ctx, p.ID); err == nil {
			continue
		}
		if err := s.repo.Insert(ctx, &p); err != nil {
			return fmt.Errorf("failed to seed product %d: %w", p.ID, err)
		}
		if p.ID > s.lastID {
			s.lastID = p.ID
		}
	}
	return nil
}

func (s *CatalogService) find(ctx context.Context, id int64) (*models.Product, error) {
	product, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, fmt.Errorf("database error: %w", err)
	}
	return product, nil
}

func (s *CatalogService) checkUploads(uploads []models.ImageUpload) error {
	if s.limits.MaxImages > 0 && len(uploads) > s.limits.MaxImages {
		return newValidationError(utils.ValidationError{
			Field:   "images",
			Tag:     "max",
			Message: "images must contain at most " + strconv.Itoa(s.limits.MaxImages) + " item(s)",
		})
	}

	var fields []utils.ValidationError
	for _, u := range uploads {
		if s.limits.MaxImageSize > 0 && int64(len(u.Data)) > s.limits.MaxImageSize {
			fields = append(fields, utils.ValidationError{
				Field:   "images",
				Tag:     "max_size",
				Message: fmt.Sprintf("file %s size %d bytes exceeds maximum allowed size %d bytes", u.Name, len(u.Data), s.limits.MaxImageSize),
			})
		}
	}
	if len(fields) > 0 {
		return newValidationError(fields...)
	}
	return nil
}

func parsePrice(value string) (models.Price, error) {
	price, err := models.ParsePrice(value)
	if err != nil {
		return models.Price{}, newValidationError(utils.ValidationError{
			Field:   "price",
			Tag:     "numeric",
			Message: "price must be a number",
		})
	}
	return price, nil
}

func encodeImages(existing models.Images, uploads []models.ImageUpload) models.Images {
	if len(uploads) == 0 {
		if existing == nil {
			return models.Images{}
		}
		return existing
	}

	images := make(models.Images, 0, len(existing)+len(uploads))
	images = append(images, existing...)
	for _, u := range uploads {
		images = append(images, models.EncodeImage(u))
	}
	return images
}
