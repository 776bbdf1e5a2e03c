// internal/services/image_library_service.go
package services

import (
	"context"
	"encoding/base64"
	"fmt"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/javajoker/product-catalog/internal/models"
	"github.com/javajoker/product-catalog/internal/utils"
)

// ImageLibraryService keeps standalone uploads that are not attached to a
// product. Entries live for the lifetime of the process.
type ImageLibraryService struct {
	mu           sync.RWMutex
	images       []models.LibraryImage
	maxImageSize int64
}

func NewImageLibraryService(maxImageSize int64) *ImageLibraryService {
	return &ImageLibraryService{maxImageSize: maxImageSize}
}

func (s *ImageLibraryService) Upload(ctx context.Context, upload *models.ImageUpload) (*models.LibraryImage, error) {
	if upload == nil {
		return nil, ErrNoFileUploaded
	}
	if s.maxImageSize > 0 && int64(len(upload.Data)) > s.maxImageSize {
		return nil, newValidationError(utils.ValidationError{
			Field:   "image",
			Tag:     "max_size",
			Message: fmt.Sprintf("file size %d bytes exceeds maximum allowed size %d bytes", len(upload.Data), s.maxImageSize),
		})
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	image := models.LibraryImage{
		ID:          int64(len(s.images)) + 1,
		Filename:    upload.Name,
		ContentType: upload.Type,
		Data:        base64.StdEncoding.EncodeToString(upload.Data),
	}
	s.images = append(s.images, image)

	logrus.WithFields(logrus.Fields{
		"image_id": image.ID,
		"size":     len(upload.Data),
	}).Info("Image uploaded")

	return &image, nil
}

func (s *ImageLibraryService) List(ctx context.Context) []models.LibraryImage {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.LibraryImage, len(s.images))
	copy(out, s.images)
	return out
}

func (s *ImageLibraryService) Get(ctx context.Context, id int64) (*models.LibraryImage, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, image := range s.images {
		if image.ID == id {
			return &image, nil
		}
	}
	return nil, ErrImageNotFound
}
