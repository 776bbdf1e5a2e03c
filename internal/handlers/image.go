// internal/handlers/image.go
package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/javajoker/product-catalog/internal/i18n"
	"github.com/javajoker/product-catalog/internal/models"
	"github.com/javajoker/product-catalog/internal/services"
	"github.com/javajoker/product-catalog/internal/utils"
)

type ImageHandler struct {
	libraryService *services.ImageLibraryService
}

func NewImageHandler(libraryService *services.ImageLibraryService) *ImageHandler {
	return &ImageHandler{libraryService: libraryService}
}

// POST /upload
func (h *ImageHandler) UploadImage(c *gin.Context) {
	var upload *models.ImageUpload

	header, err := c.FormFile("image")
	switch {
	case err == nil:
		u, readErr := readUpload(header)
		if readErr != nil {
			utils.UploadErrorResponse(c, i18n.KeyFileUploadFailed, readErr.Error())
			return
		}
		upload = &u
	case errors.Is(err, http.ErrMissingFile), errors.Is(err, http.ErrNotMultipart):
		// reported by the service as ErrNoFileUploaded
	default:
		utils.UploadErrorResponse(c, i18n.KeyFileUploadFailed, err.Error())
		return
	}

	image, err := h.libraryService.Upload(c.Request.Context(), upload)
	if err != nil {
		var validationErr *services.ValidationError
		switch {
		case errors.Is(err, services.ErrNoFileUploaded):
			utils.UploadErrorResponse(c, i18n.KeyFileNotUploaded, nil)
		case errors.As(err, &validationErr):
			utils.ValidationErrorResponse(c, validationErr.Fields)
		default:
			c.Error(err)
			utils.InternalErrorResponse(c, "")
		}
		return
	}

	utils.ResourceResponse(c, http.StatusCreated, gin.H{"id": image.ID})
}

// GET /images
func (h *ImageHandler) GetImages(c *gin.Context) {
	utils.ResourceResponse(c, http.StatusOK, h.libraryService.List(c.Request.Context()))
}

// GET /images/:id
func (h *ImageHandler) GetImage(c *gin.Context) {
	lang := utils.GetLangFromContext(c)
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyImageInvalid), nil)
		return
	}

	image, err := h.libraryService.Get(c.Request.Context(), id)
	if err != nil {
		utils.NotFoundResponse(c, i18n.KeyImageNotFound)
		return
	}

	data, err := image.Bytes()
	if err != nil {
		c.Error(err)
		utils.InternalErrorResponse(c, "")
		return
	}

	c.Data(http.StatusOK, image.ContentType, data)
}
