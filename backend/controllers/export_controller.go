package controllers

import (
	"log"

	"zyra/backend/config"
	"zyra/backend/models"
	"zyra/backend/store"
	"zyra/backend/utils"

	"github.com/gofiber/fiber/v2"
)

type ExportController struct {
	Store  *store.Store
	Cfg    *config.Config
	Logger *log.Logger
}

func NewExportController(st *store.Store, cfg *config.Config, logger *log.Logger) *ExportController {
	return &ExportController{Store: st, Cfg: cfg, Logger: logger}
}

// ExportedData is the read-only derived view of a user record. It is
// never re-imported.
type ExportedData struct {
	Profile     models.Profile   `json:"profile"`
	ChatHistory []models.Message `json:"chat_history"`
	Stats       ExportedStats    `json:"stats"`
	ExportDate  string           `json:"export_date"`
}

type ExportedStats struct {
	Level  int      `json:"level"`
	XP     int      `json:"xp"`
	Badges []string `json:"badges"`
}

// Export godoc
// @Summary Export user data
// @Description Returns profile, chat history and gamification stats as a downloadable document
// @Tags export
// @Produce json
// @Success 200 {object} ExportedData
// @Failure 401 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /export [get]
func (ec *ExportController) Export(c *fiber.Ctx) error {
	_, record := currentRecord(c, ec.Store)
	if record == nil {
		return utils.NotFound(c, "User not found")
	}

	export := ExportedData{
		Profile:     record.Profile,
		ChatHistory: record.ChatHistory,
		Stats: ExportedStats{
			Level:  record.Level,
			XP:     record.XP,
			Badges: record.Badges,
		},
		ExportDate: models.Now(),
	}

	return c.Status(fiber.StatusOK).JSON(export)
}
