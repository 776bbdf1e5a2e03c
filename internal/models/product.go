// internal/models/product.go
package models

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// DefaultDescription is stored when a product is created without one.
const DefaultDescription = "Product description"

type Product struct {
	ID          int64  `json:"id" gorm:"primaryKey;autoIncrement:false"`
	Name        string `json:"name" gorm:"size:255;not null;index"`
	Price       Price  `json:"price" gorm:"type:text;not null"`
	Description string `json:"description" gorm:"type:text"`
	Status      string `json:"status" gorm:"size:50;index"`
	Images      Images `json:"images" gorm:"type:text;serializer:json"`
}

func (Product) TableName() string {
	return "products"
}

// Clone returns a copy that shares no image storage with p.
func (p Product) Clone() Product {
	p.Images = p.Images.Clone()
	return p
}

// Price accepts either a JSON number or a numeric string and always
// marshals back as a JSON number.
type Price struct {
	decimal.Decimal
}

func NewPrice(value float64) Price {
	return Price{decimal.NewFromFloat(value)}
}

// ParsePrice parses a form value such as "2400" or "19.99".
func ParsePrice(value string) (Price, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(value))
	if err != nil {
		return Price{}, fmt.Errorf("invalid price %q: %w", value, err)
	}
	return Price{d}, nil
}

func (p Price) MarshalJSON() ([]byte, error) {
	return []byte(p.Decimal.String()), nil
}
