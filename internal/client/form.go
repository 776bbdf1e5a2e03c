// internal/client/form.go
package client

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/gabriel-vasile/mimetype"

	"github.com/javajoker/product-catalog/internal/models"
	"github.com/javajoker/product-catalog/internal/utils"
)

type FormMode int

const (
	ModeCreate FormMode = iota
	ModeEdit
)

// PendingImage is a file picked for upload but not yet sent.
type PendingImage struct {
	Name string
	Type string
	Data []byte
}

// LoadImage reads a local file as a pending image. The type is sniffed
// from its content.
func LoadImage(path string) (PendingImage, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return PendingImage{}, fmt.Errorf("failed to read image: %w", err)
	}

	mimeType := strings.SplitN(mimetype.Detect(data).String(), ";", 2)[0]
	return PendingImage{
		Name: filepath.Base(path),
		Type: mimeType,
		Data: data,
	}, nil
}

// ProductForm holds the values of the create and edit forms. Price stays
// a string until the server parses it.
type ProductForm struct {
	Name           string `form:"name" validate:"notblank"`
	Price          string `form:"price" validate:"required"`
	Description    string `form:"description"`
	Status         string `form:"status"`
	ExistingImages int    `form:"-"`
	Images         []PendingImage
}

// NewEditForm prefills a form from a stored product.
func NewEditForm(p models.Product) *ProductForm {
	return &ProductForm{
		Name:           p.Name,
		Price:          p.Price.String(),
		Description:    p.Description,
		Status:         p.Status,
		ExistingImages: len(p.Images),
	}
}

// FormError lists the fields that block submission.
type FormError struct {
	Fields []utils.ValidationError
}

func (e *FormError) Error() string {
	messages := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		messages = append(messages, f.Message)
	}
	return "invalid form: " + strings.Join(messages, "; ")
}

// Validate returns a *FormError when the form cannot be submitted in mode.
// An edit is complete when stored images already satisfy the minimum.
func (f *ProductForm) Validate(mode FormMode) error {
	fields := utils.GetValidationErrors(utils.ValidateStruct(f))

	images := len(f.Images)
	if mode == ModeEdit {
		images += f.ExistingImages
	}
	if images < 1 {
		fields = append(fields, utils.ValidationError{
			Field:   "images",
			Tag:     "min",
			Message: "images must contain at least 1 item(s)",
		})
	}

	if len(fields) > 0 {
		return &FormError{Fields: fields}
	}
	return nil
}
