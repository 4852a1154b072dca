package main

import (
	"log"

	"zyra/backend/advisor"
	"zyra/backend/config"
	"zyra/backend/middleware"
	"zyra/backend/models"
	"zyra/backend/routes"
	"zyra/backend/store"
	"zyra/backend/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Error loading config: %v", err)
	}

	// Initialize logger
	logger := utils.InitLogger()

	// Initialize user document store
	st, err := store.NewStore(cfg.DataDir, store.SHA256Hasher{}, logger)
	if err != nil {
		log.Fatalf("Error initializing store: %v", err)
	}

	// Initialize login-history database
	db, err := gorm.Open(sqlite.Open(cfg.SQLitePath), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		log.Fatalf("Error initializing database: %v", err)
	}
	if err := db.AutoMigrate(&models.LoginHistory{}); err != nil {
		log.Fatalf("Error migrating database: %v", err)
	}

	// Advisory service client
	adv := advisor.NewOpenAIAdvisor(cfg.OpenAIAPIKey)
	if cfg.OpenAIAPIKey == "" {
		logger.Println("OPENAI_API_KEY not set, chat replies will fail until configured")
	}

	// Create Fiber app
	app := fiber.New()

	// Middleware
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.AllowOrigins,
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))
	app.Use(middleware.LoggingMiddleware(logger))

	// Setup routes
	routes.SetupRoutes(app, st, db, adv, cfg, logger)

	// Start server
	log.Fatal(app.Listen(":" + cfg.ServerPort))
}
