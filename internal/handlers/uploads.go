// internal/handlers/uploads.go
package handlers

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"github.com/gin-gonic/gin"

	"github.com/javajoker/product-catalog/internal/models"
)

// readUploads reads every file part named field. A request that is not
// multipart carries no files.
func readUploads(c *gin.Context, field string) ([]models.ImageUpload, error) {
	form, err := c.MultipartForm()
	if err != nil {
		if errors.Is(err, http.ErrNotMultipart) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to parse multipart form: %w", err)
	}

	headers := form.File[field]
	uploads := make([]models.ImageUpload, 0, len(headers))
	for _, header := range headers {
		upload, err := readUpload(header)
		if err != nil {
			return nil, err
		}
		uploads = append(uploads, upload)
	}
	return uploads, nil
}

func readUpload(header *multipart.FileHeader) (models.ImageUpload, error) {
	file, err := header.Open()
	if err != nil {
		return models.ImageUpload{}, fmt.Errorf("failed to open %s: %w", header.Filename, err)
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return models.ImageUpload{}, fmt.Errorf("failed to read %s: %w", header.Filename, err)
	}

	return models.ImageUpload{
		Name: header.Filename,
		Type: contentType(header.Header.Get("Content-Type"), data),
		Data: data,
	}, nil
}

// contentType trusts the part header unless it is missing or generic, in
// which case the type is sniffed from the bytes.
func contentType(declared string, data []byte) string {
	declared = strings.TrimSpace(declared)
	if declared != "" && declared != "application/octet-stream" {
		return declared
	}
	detected := mimetype.Detect(data).String()
	return strings.TrimSpace(strings.SplitN(detected, ";", 2)[0])
}
