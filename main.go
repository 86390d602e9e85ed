package main

import (
	"log"
	"os"

	"apicatalogo/config"
	"apicatalogo/db"
	"apicatalogo/middleware"
	"apicatalogo/routes"
	"apicatalogo/validations"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

func main() {
	cfg := config.Load()
	validations.DescricaoMax = cfg.DescricaoMax

	// Initialize database
	db.InitDatabase(cfg.DBPath)

	// Create uploads directory if it doesn't exist
	if _, err := os.Stat(cfg.UploadsDir); os.IsNotExist(err) {
		os.Mkdir(cfg.UploadsDir, 0755)
	}

	// Create Fiber app
	app := fiber.New()

	// Middleware
	app.Use(middleware.RequestLogger())
	app.Use(cors.New())

	// Serve static files
	app.Static("/uploads", "./"+cfg.UploadsDir)

	// Setup routes
	routes.SetupRoutes(app, cfg.UploadsDir)

	// Start server
	log.Fatal(app.Listen(":" + cfg.Port))
}
