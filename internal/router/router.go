// internal/router/router.go
package router

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"gorm.io/gorm"

	"github.com/javajoker/shop-admin/internal/config"
	"github.com/javajoker/shop-admin/internal/handlers"
	"github.com/javajoker/shop-admin/internal/middleware"
	"github.com/javajoker/shop-admin/internal/services"
)

const Version = "1.0.0"

func Initialize(db *gorm.DB, cfg *config.Config) (*gin.Engine, error) {
	storageService, err := services.NewStorageService(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize storage: %w", err)
	}

	return InitializeWith(db, cfg, storageService, prometheus.DefaultRegisterer, prometheus.DefaultGatherer)
}

// InitializeWith builds the engine around explicit storage and metrics registries.
func InitializeWith(db *gorm.DB, cfg *config.Config, storageService *services.StorageService, reg prometheus.Registerer, gatherer prometheus.Gatherer) (*gin.Engine, error) {
	// Initialize services
	shopService := services.NewShopService(db, storageService)
	productService := services.NewProductService(db, shopService, storageService)
	dashboardService := services.NewDashboardService(shopService, productService)

	// Initialize handlers
	shopHandler := handlers.NewShopHandler(shopService)
	productHandler := handlers.NewProductHandler(productService)
	dashboardHandler := handlers.NewDashboardHandler(dashboardService)
	uploadHandler := handlers.NewUploadHandler(storageService)

	httpMetrics, err := middleware.NewHTTPMetrics(reg)
	if err != nil {
		return nil, fmt.Errorf("failed to register http metrics: %w", err)
	}

	r := gin.New()

	// Global middleware
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.RequestLogger())
	r.Use(httpMetrics.Middleware())
	r.Use(middleware.CORS(cfg.HTTP.AllowedOrigins))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"version": Version,
		})
	})
	r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})))

	api := r.Group("/api")
	api.Use(middleware.RateLimit(cfg.HTTP.RateLimitRPS, cfg.HTTP.RateLimitBurst))
	{
		shops := api.Group("/shops")
		{
			shops.GET("", shopHandler.GetShops)
			shops.POST("", shopHandler.CreateShop)
			shops.PUT("", shopHandler.UpdateShop)
			shops.DELETE("", shopHandler.DeleteShop)
		}

		products := api.Group("/products")
		{
			products.GET("", productHandler.GetProducts)
			products.POST("", productHandler.CreateProduct)
			products.PUT("", productHandler.UpdateProduct)
			products.DELETE("", productHandler.DeleteProduct)
		}

		api.GET("/dashboard", dashboardHandler.GetMetrics)
		api.POST("/uploads", uploadHandler.Upload)
	}

	// Local uploads are served by the API itself
	if !storageService.UsesS3() {
		r.Static("/uploads", cfg.Storage.UploadsDir)
	}

	return r, nil
}
