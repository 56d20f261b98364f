package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/example/shafistore/internal/handlers"
	"github.com/example/shafistore/internal/services"
	"github.com/example/shafistore/internal/storage"
)

// Register wires up all HTTP routes. A nil db means the entity store is not
// configured; only upload and health routes are registered then.
func Register(app *fiber.App, db *gorm.DB, store storage.AssetStore) {
	api := app.Group("/api/v1")

	api.Get("/health", handlers.Health)

	uploadHandler := handlers.NewUploadHandler(store)
	upload := api.Group("/upload")
	upload.Get("/status", uploadHandler.Status)
	upload.Post("/:category", uploadHandler.Upload)
	upload.Delete("/:category/:filename", uploadHandler.Delete)

	if db == nil {
		return
	}

	productHandler := handlers.NewProductHandler(db)
	featuredHandler := handlers.NewFeaturedHandler(services.NewFeaturedService(db))
	heroHandler := handlers.NewHeroHandler(db)
	footerHandler := handlers.NewFooterHandler(db)
	shippingHandler := handlers.NewShippingHandler(db)

	products := api.Group("/products")
	products.Get("/featured", featuredHandler.Featured)
	products.Get("/bestsellers", featuredHandler.Bestsellers)
	products.Get("/:category", productHandler.List)
	products.Get("/:category/admin", productHandler.ListAdmin)
	products.Get("/:category/:id", productHandler.Get)
	products.Post("/:category", productHandler.Create)
	products.Put("/:category/:id", productHandler.Update)
	products.Delete("/:category/:id", productHandler.Delete)

	hero := api.Group("/hero")
	hero.Get("/", heroHandler.List)
	hero.Get("/admin", heroHandler.ListAdmin)
	hero.Post("/admin", heroHandler.Create)
	hero.Put("/admin/:id", heroHandler.Update)
	hero.Delete("/admin/:id", heroHandler.Delete)

	api.Get("/footer", footerHandler.Get)
	api.Put("/footer", footerHandler.Update)

	shipping := api.Group("/shipping")
	shipping.Get("/content", shippingHandler.GetContent)
	shipping.Put("/content", shippingHandler.UpdateContent)
	shipping.Get("/zones", shippingHandler.ListZones)
	shipping.Get("/zones/admin", shippingHandler.ListZonesAdmin)
	shipping.Post("/zones", shippingHandler.CreateZone)
	shipping.Put("/zones/:id", shippingHandler.UpdateZone)
	shipping.Delete("/zones/:id", shippingHandler.DeleteZone)
}
