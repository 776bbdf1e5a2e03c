// internal/router/router.go
package router

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/javajoker/product-catalog/internal/config"
	"github.com/javajoker/product-catalog/internal/handlers"
	"github.com/javajoker/product-catalog/internal/middleware"
	"github.com/javajoker/product-catalog/internal/repository"
	"github.com/javajoker/product-catalog/internal/services"
)

// Initialize wires services, handlers and routes. ctx bounds background
// work started for the engine, such as rate limiter cleanup.
func Initialize(ctx context.Context, db *gorm.DB, cfg *config.Config) (*gin.Engine, error) {
	// Initialize services
	var productRepo repository.ProductRepository
	switch cfg.Catalog.Store {
	case config.StoreSQLite:
		productRepo = repository.NewGormProductRepository(db)
	default:
		productRepo = repository.NewMemoryProductRepository()
	}

	catalogService, err := services.NewCatalogService(ctx, productRepo, services.UploadLimits{
		MaxImages:    cfg.Catalog.MaxImages,
		MaxImageSize: cfg.Catalog.MaxImageSize,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize catalog: %w", err)
	}

	if cfg.Catalog.Seed {
		if err := catalogService.Seed(ctx, services.DemoProducts()); err != nil {
			return nil, fmt.Errorf("failed to seed catalog: %w", err)
		}
	}

	libraryService := services.NewImageLibraryService(cfg.Catalog.MaxImageSize)
	auditService := services.NewAuditService(db)

	// Initialize handlers
	productHandler := handlers.NewProductHandler(catalogService)
	imageHandler := handlers.NewImageHandler(libraryService)
	auditHandler := handlers.NewAuditHandler(auditService, cfg.Catalog.DefaultPageLimit)

	// Initialize Gin router
	r := gin.New()
	r.MaxMultipartMemory = cfg.Server.MaxMultipartMemory

	// Global middleware
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.RequestLogger())
	r.Use(middleware.CORS(cfg.CORS.AllowedOrigins))
	r.Use(middleware.I18nMiddleware(cfg.I18n.DefaultLocale))
	r.Use(middleware.AuditLogMiddleware(auditService))

	uploadLimit := func(c *gin.Context) { c.Next() }
	if cfg.RateLimit.Enabled {
		limiter := middleware.NewUploadRateLimiter(cfg.RateLimit.UploadsPerMinute, cfg.RateLimit.UploadBurst)
		go limiter.Cleanup(ctx)
		uploadLimit = limiter.Middleware()
	}

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "healthy",
			"store":  cfg.Catalog.Store,
		})
	})

	// Product routes
	products := r.Group("/products")
	{
		products.GET("", productHandler.GetProducts)
		products.GET("/:id", productHandler.GetProduct)
		products.POST("/create", uploadLimit, productHandler.CreateProduct)
		products.PUT("/:id", uploadLimit, productHandler.UpdateProduct)
		products.DELETE("/:id", productHandler.DeleteProduct)
	}

	// Image library routes
	r.POST("/upload", uploadLimit, imageHandler.UploadImage)
	r.GET("/images", imageHandler.GetImages)
	r.GET("/images/:id", imageHandler.GetImage)

	r.GET("/audit-logs", auditHandler.GetAuditLogs)

	logrus.WithFields(logrus.Fields{
		"store":      cfg.Catalog.Store,
		"seeded":     cfg.Catalog.Seed,
		"rate_limit": cfg.RateLimit.Enabled,
	}).Info("Routes registered")

	return r, nil
}
