// internal/handlers/product.go
package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/javajoker/product-catalog/internal/i18n"
	"github.com/javajoker/product-catalog/internal/services"
	"github.com/javajoker/product-catalog/internal/utils"
)

type ProductHandler struct {
	catalogService *services.CatalogService
}

func NewProductHandler(catalogService *services.CatalogService) *ProductHandler {
	return &ProductHandler{
		catalogService: catalogService,
	}
}

// GET /products
func (h *ProductHandler) GetProducts(c *gin.Context) {
	products, err := h.catalogService.ListProducts(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	utils.ResourceResponse(c, http.StatusOK, products)
}

// POST /products/create
func (h *ProductHandler) CreateProduct(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	var req services.CreateProductRequest
	if err := c.ShouldBind(&req); err != nil {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyValidationInvalid, "input"), err.Error())
		return
	}

	uploads, err := readUploads(c, "images")
	if err != nil {
		utils.UploadErrorResponse(c, i18n.KeyFileUploadFailed, err.Error())
		return
	}

	product, err := h.catalogService.CreateProduct(c.Request.Context(), &req, uploads)
	if err != nil {
		h.handleError(c, err)
		return
	}

	utils.ResourceResponse(c, http.StatusCreated, product)
}

// GET /products/:id
func (h *ProductHandler) GetProduct(c *gin.Context) {
	id, ok := parseProductID(c)
	if !ok {
		return
	}

	product, err := h.catalogService.GetProduct(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	utils.ResourceResponse(c, http.StatusOK, product)
}

// PUT /products/:id
func (h *ProductHandler) UpdateProduct(c *gin.Context) {
	lang := utils.GetLangFromContext(c)
	id, ok := parseProductID(c)
	if !ok {
		return
	}

	var req services.UpdateProductRequest
	if err := c.ShouldBind(&req); err != nil {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyValidationInvalid, "input"), err.Error())
		return
	}

	uploads, err := readUploads(c, "images")
	if err != nil {
		utils.UploadErrorResponse(c, i18n.KeyFileUploadFailed, err.Error())
		return
	}

	product, err := h.catalogService.UpdateProduct(c.Request.Context(), id, &req, uploads)
	if err != nil {
		h.handleError(c, err)
		return
	}

	utils.ResourceResponse(c, http.StatusOK, product)
}

// DELETE /products/:id
func (h *ProductHandler) DeleteProduct(c *gin.Context) {
	id, ok := parseProductID(c)
	if !ok {
		return
	}

	if err := h.catalogService.DeleteProduct(c.Request.Context(), id); err != nil {
		h.handleError(c, err)
		return
	}

	utils.NoContentResponse(c)
}

func (h *ProductHandler) handleError(c *gin.Context, err error) {
	var validationErr *services.ValidationError
	switch {
	case errors.As(err, &validationErr):
		utils.ValidationErrorResponse(c, validationErr.Fields)
	case errors.Is(err, services.ErrProductNotFound):
		utils.NotFoundResponse(c, i18n.KeyProductNotFound)
	default:
		c.Error(err)
		utils.InternalErrorResponse(c, "")
	}
}

func parseProductID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		lang := utils.GetLangFromContext(c)
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyProductInvalid), nil)
		return 0, false
	}
	return id, true
}
