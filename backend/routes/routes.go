package routes

import (
	"log"

	"zyra/backend/advisor"
	"zyra/backend/config"
	"zyra/backend/controllers"
	"zyra/backend/middleware"
	"zyra/backend/store"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupRoutes(app *fiber.App, st *store.Store, db *gorm.DB, adv advisor.Advisor, cfg *config.Config, logger *log.Logger) {
	// Auth routes
	authController := controllers.NewAuthController(st, db, cfg, logger)
	app.Post("/api/auth/register", authController.Register)
	app.Post("/api/auth/login", authController.Login)
	app.Post("/api/auth/demo", authController.Demo)

	// Middleware
	authMiddleware := middleware.AuthMiddleware(cfg)

	// Profile routes
	profileController := controllers.NewProfileController(st, cfg, logger)
	app.Get("/api/user/profile", authMiddleware, profileController.GetProfile)
	app.Put("/api/user/profile", authMiddleware, profileController.UpdateProfile)
	app.Put("/api/user/skills", authMiddleware, profileController.UpdateSkills)
	app.Put("/api/user/interests", authMiddleware, profileController.UpdateInterests)

	// Chat routes
	chatController := controllers.NewChatController(st, adv, cfg, logger)
	chat := app.Group("/api/chat", authMiddleware)
	chat.Post("/message", chatController.SendMessage)
	chat.Get("/history", chatController.GetHistory)
	chat.Get("/conversations", chatController.GetConversations)
	chat.Delete("/history", chatController.ClearHistory)

	// Goals routes
	goalsController := controllers.NewGoalsController(st, cfg, logger)
	goals := app.Group("/api/goals", authMiddleware)
	goals.Get("/", goalsController.GetGoals)
	goals.Post("/", goalsController.AddGoal)
	goals.Post("/complete", goalsController.CompleteGoal)

	// Progress routes
	progressController := controllers.NewProgressController(st, db, cfg, logger)
	app.Get("/api/progress/overview", authMiddleware, progressController.GetOverview)
	app.Get("/api/progress/activity", authMiddleware, progressController.GetActivity)

	// Export route
	exportController := controllers.NewExportController(st, cfg, logger)
	app.Get("/api/export", authMiddleware, exportController.Export)
}
