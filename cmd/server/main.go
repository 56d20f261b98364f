package main

import (
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"gorm.io/gorm"

	"github.com/example/shafistore/internal/config"
	"github.com/example/shafistore/internal/database"
	"github.com/example/shafistore/internal/handlers"
	"github.com/example/shafistore/internal/routes"
	"github.com/example/shafistore/internal/storage"
)

func main() {
	cfg := config.Load()

	var db *gorm.DB
	if cfg.DatabaseURL == "" {
		log.Println("DATABASE_URL not set, starting without the entity store")
	} else {
		db = database.Connect(cfg.DatabaseURL)
		if err := database.SeedHeroSlides(db); err != nil {
			log.Printf("hero slide seeding skipped: %v", err)
		}
	}

	store, err := storage.New(cfg)
	if err != nil {
		log.Fatalf("asset storage init failed: %v", err)
	}
	log.Printf("image uploads: %s", store.Describe().StorageType)

	app := fiber.New(fiber.Config{
		AppName: "Shafi Store Backend",
		// Generous so oversized uploads reach the 400-with-message check
		// instead of a bare 413.
		BodyLimit:    32 << 20,
		ErrorHandler: handlers.ErrorHandler,
	})

	app.Use(recover.New())
	app.Use(logger.New())
	app.Use(cors.New(cors.Config{
		AllowOriginsFunc: allowOrigin(cfg),
		AllowCredentials: true,
	}))

	app.Static("/uploads", cfg.UploadDir)

	routes.Register(app, db, store)

	log.Printf("Starting server on :%s", cfg.AppPort)
	if err := app.Listen(":" + cfg.AppPort); err != nil {
		log.Fatalf("fiber.Listen error: %v", err)
	}
}

// allowOrigin admits local dev hosts, the configured frontend and managed
// hosting domains.
func allowOrigin(cfg *config.Config) func(string) bool {
	allowed := map[string]bool{
		"http://localhost:3000": true,
		"http://127.0.0.1:3000": true,
	}
	if cfg.FrontendURL != "" {
		allowed[cfg.FrontendURL] = true
	}

	return func(origin string) bool {
		return allowed[origin] ||
			strings.HasSuffix(origin, ".run.app") ||
			strings.HasSuffix(origin, ".web.app")
	}
}
