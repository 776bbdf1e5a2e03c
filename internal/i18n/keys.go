// internal/i18n/keys.go
package i18n

// Translation keys constants
const (
	// Products
	KeyProductNotFound = "product.not_found"
	KeyProductInvalid  = "product.invalid_id"

	// Images
	KeyImageNotFound = "image.not_found"
	KeyImageInvalid  = "image.invalid_id"

	// Validation
	KeyValidationInvalid = "validation.invalid"

	// File Upload
	KeyFileUploadFailed = "file.upload_failed"
	KeyFileNotUploaded  = "file.not_uploaded"

	// Rate limiting
	KeyRateLimited = "rate.limited"
)
