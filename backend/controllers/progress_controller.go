package controllers

import (
	"log"
	"strconv"
	"time"

	"zyra/backend/config"
	"zyra/backend/models"
	"zyra/backend/store"
	"zyra/backend/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type ProgressController struct {
	Store  *store.Store
	DB     *gorm.DB
	Cfg    *config.Config
	Logger *log.Logger
}

func NewProgressController(st *store.Store, db *gorm.DB, cfg *config.Config, logger *log.Logger) *ProgressController {
	return &ProgressController{Store: st, DB: db, Cfg: cfg, Logger: logger}
}

// GetOverview godoc
// @Summary Get progress overview
// @Description Returns a summary of the user's gamified progress
// @Tags progress
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 401 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /progress/overview [get]
func (pc *ProgressController) GetOverview(c *fiber.Ctx) error {
	_, record := currentRecord(c, pc.Store)
	if record == nil {
		return utils.NotFound(c, "User not found")
	}

	return utils.Success(c, fiber.StatusOK, fiber.Map{
		"level":           record.Level,
		"xp":              record.XP,
		"next_level_xp":   (record.Level + 1) * 200,
		"badges":          record.Badges,
		"streak":          record.Streak,
		"chat_count":      len(record.ChatHistory),
		"completed_goals": len(record.GoalsTracking.Completed),
		"member_since":    record.CreatedAt,
	})
}

// GetActivity godoc
// @Summary Get login activity
// @Description Returns login history rows and per-day login frequency for the period
// @Tags progress
// @Produce json
// @Param days query int false "Number of days to look back" default(7)
// @Success 200 {object} map[string]interface{}
// @Failure 401 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /progress/activity [get]
func (pc *ProgressController) GetActivity(c *fiber.Ctx) error {
	username, _ := c.Locals("username").(string)
	if username == "" {
		return utils.Unauthorized(c, "Unauthorized")
	}

	// Параметры периода
	days, _ := strconv.Atoi(c.Query("days", "7"))
	if days < 1 {
		days = 7
	}

	// Получаем историю входов
	var logins []models.LoginHistory
	if err := pc.DB.Where("username = ? AND login_time >= ?",
		store.SanitizeUsername(username), time.Now().AddDate(0, 0, -days)).
		Order("login_time DESC").
		Find(&logins).Error; err != nil {
		return utils.InternalServerError(c, "Failed to fetch login history")
	}

	// Частота входов по дням
	frequency := make(map[string]int)
	for _, login := range logins {
		day := login.LoginTime.Format("2006-01-02")
		frequency[day]++
	}

	daily := make([]models.DailyActivity, 0, len(frequency))
	for day := time.Now().AddDate(0, 0, -days+1); !day.After(time.Now()); day = day.AddDate(0, 0, 1) {
		key := day.Format("2006-01-02")
		if count, ok := frequency[key]; ok {
			daily = append(daily, models.DailyActivity{Date: key, Logins: count})
		}
	}

	return utils.Success(c, fiber.StatusOK, fiber.Map{
		"logins":      logins,
		"daily":       daily,
		"period_days": days,
	})
}
