// internal/services/seed.go
package services

import "github.com/javajoker/product-catalog/internal/models"

// DemoProducts is the starter catalog loaded when seeding is enabled.
func DemoProducts() []models.Product {
	return []models.Product{
		{
			ID:          1,
			Name:        "Apple iPhone 15 Pro Max",
			Price:       models.NewPrice(2400),
			Description: "Management",
			Status:      string(models.ProductStatusActive),
			Images: models.Images{
				{DataURL: "https://www.telstra.com.au/content/dam/tcom/devices/mobile/mhdwhst-15pm/bluetitanium/front.png"},
			},
		},
		{
			ID:          2,
			Name:        "Samsung Galaxy S21 Ultra",
			Price:       models.NewPrice(2000),
			Description: "Management",
			Status:      string(models.ProductStatusActive),
			Images: models.Images{
				{DataURL: "https://oncharge.kz/image/cache/catalog/product-photo/010224/phone/samsung/s24ultra/yellow/69346.970-1000x1000.jpg"},
			},
		},
		{
			ID:          3,
			Name:        "Xiaomi Redmi Note 10 Pro",
			Price:       models.NewPrice(500),
			Description: "Management",
			Status:      string(models.ProductStatusArchived),
			Images: models.Images{
				{DataURL: "https://cdn.dxomark.com/wp-content/uploads/medias/post-171171/bdc0df40e7c3983b73802b3d47dd20c4600x60085.jpg"},
			},
		},
	}
}
