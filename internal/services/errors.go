// internal/services/errors.go
package services

import (
	"errors"
	"strings"

	"github.com/javajoker/product-catalog/internal/utils"
)

var (
	ErrProductNotFound = errors.New("product not found")
	ErrImageNotFound   = errors.New("image not found")
	ErrNoFileUploaded  = errors.New("no file uploaded")
)

// ValidationError reports field-level problems with a request. Nothing is
// stored when it is returned.
type ValidationError struct {
	Fields []utils.ValidationError
}

func (e *ValidationError) Error() string {
	messages := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		messages = append(messages, f.Message)
	}
	return "validation failed: " + strings.Join(messages, "; ")
}

func newValidationError(fields ...utils.ValidationError) *ValidationError {
	return &ValidationError{Fields: fields}
}

func validateRequest(req interface{}) error {
	if fields := utils.GetValidationErrors(utils.ValidateStruct(req)); len(fields) > 0 {
		return newValidationError(fields...)
	}
	return nil
}
