package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/example/heritage/internal/config"
	"github.com/example/heritage/internal/handlers"
	"github.com/example/heritage/internal/middleware"
)

// Register wires up all HTTP routes.
func Register(app *fiber.App, db *gorm.DB, cfg *config.Config) {
	authHandler := handlers.NewAuthHandler(db, cfg)
	templeHandler := handlers.NewTempleHandler(db)
	catalogHandler := handlers.NewCatalogHandler(db)

	api := app.Group("/api")

	// Auth routes
	auth := api.Group("/auth")
	auth.Post("/register", authHandler.Register)
	auth.Post("/login", authHandler.Login)

	requireAuth := middleware.AuthMiddleware(db, cfg)

	// Temples and their galleries
	temples := api.Group("/temples")
	temples.Get("/", templeHandler.ListTemples)
	temples.Post("/", requireAuth, templeHandler.CreateTemple)
	temples.Get("/:id", templeHandler.GetTemple)
	temples.Put("/:id", requireAuth, templeHandler.UpdateTemple)
	temples.Delete("/:id", requireAuth, templeHandler.DeleteTemple)
	temples.Post("/:id/restore", requireAuth, templeHandler.RestoreTemple)
	temples.Get("/:id/logs", templeHandler.TempleLogs)
	temples.Get("/:id/gallery", templeHandler.ListGalleryImages)
	temples.Post("/:id/gallery", requireAuth, templeHandler.CreateGalleryImage)

	gallery := api.Group("/gallery-images")
	gallery.Get("/:id", templeHandler.GetGalleryImage)
	gallery.Put("/:id", requireAuth, templeHandler.UpdateGalleryImage)
	gallery.Delete("/:id", requireAuth, templeHandler.DeleteGalleryImage)
	gallery.Post("/:id/restore", requireAuth, templeHandler.RestoreGalleryImage)
	gallery.Get("/:id/logs", templeHandler.GalleryImageLogs)

	// Architecture features
	features := api.Group("/architecture-features")
	features.Get("/", catalogHandler.ListFeatures)
	features.Post("/", requireAuth, catalogHandler.CreateFeature)
	features.Get("/:id", catalogHandler.GetFeature)
	features.Put("/:id", requireAuth, catalogHandler.UpdateFeature)
	features.Delete("/:id", requireAuth, catalogHandler.DeleteFeature)
	features.Post("/:id/restore", requireAuth, catalogHandler.RestoreFeature)
	features.Get("/:id/logs", catalogHandler.FeatureLogs)

	// Products
	products := api.Group("/products")
	products.Get("/", catalogHandler.ListProducts)
	products.Post("/", requireAuth, catalogHandler.CreateProduct)
	products.Get("/:id", catalogHandler.GetProduct)
	products.Put("/:id", requireAuth, catalogHandler.UpdateProduct)
	products.Delete("/:id", requireAuth, catalogHandler.DeleteProduct)
	products.Post("/:id/restore", requireAuth, catalogHandler.RestoreProduct)
	products.Get("/:id/logs", catalogHandler.ProductLogs)
}
