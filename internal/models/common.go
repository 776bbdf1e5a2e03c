// internal/models/common.go
package models

// Enums
type ProductStatus string

const (
	ProductStatusActive   ProductStatus = "active"
	ProductStatusArchived ProductStatus = "archived"
)

// ProductStatuses lists the statuses offered to clients. The store accepts
// any free-text status.
var ProductStatuses = []ProductStatus{ProductStatusActive, ProductStatusArchived}

func (s ProductStatus) Known() bool {
	for _, known := range ProductStatuses {
		if s == known {
			return true
		}
	}
	return false
}
