package controllers

import (
	"errors"
	"log"
	"strings"

	"zyra/backend/config"
	"zyra/backend/models"
	"zyra/backend/progression"
	"zyra/backend/store"
	"zyra/backend/utils"

	"github.com/gofiber/fiber/v2"
)

type GoalsController struct {
	Store  *store.Store
	Cfg    *config.Config
	Logger *log.Logger
}

func NewGoalsController(st *store.Store, cfg *config.Config, logger *log.Logger) *GoalsController {
	return &GoalsController{Store: st, Cfg: cfg, Logger: logger}
}

// GetGoals godoc
// @Summary Get goal lists
// @Description Returns short-term, long-term and completed goals
// @Tags goals
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 401 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /goals [get]
func (gc *GoalsController) GetGoals(c *fiber.Ctx) error {
	_, record := currentRecord(c, gc.Store)
	if record == nil {
		return utils.NotFound(c, "User not found")
	}

	return utils.Success(c, fiber.StatusOK, record.GoalsTracking)
}

type AddGoalInput struct {
	List string `json:"list"`
	Text string `json:"text"`
}

// AddGoal godoc
// @Summary Add a goal
// @Description Appends a goal to the short-term or long-term list
// @Tags goals
// @Accept json
// @Produce json
// @Param input body AddGoalInput true "Goal data"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 401 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /goals [post]
func (gc *GoalsController) AddGoal(c *fiber.Ctx) error {
	username, record := currentRecord(c, gc.Store)
	if record == nil {
		return utils.NotFound(c, "User not found")
	}

	var input AddGoalInput
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}
	text := strings.TrimSpace(input.Text)
	if text == "" {
		return utils.BadRequest(c, "Goal text is required")
	}

	goal := models.Goal{Text: text, CreatedAt: models.Now()}
	switch input.List {
	case models.GoalListShortTerm:
		record.GoalsTracking.ShortTerm = append(record.GoalsTracking.ShortTerm, goal)
	case models.GoalListLongTerm:
		record.GoalsTracking.LongTerm = append(record.GoalsTracking.LongTerm, goal)
	default:
		return utils.BadRequest(c, "List must be short_term or long_term")
	}
	record.Touch()

	if err := gc.Store.Save(username, record); err != nil {
		return utils.InternalServerError(c, "Could not save goal")
	}

	return utils.Created(c, record.GoalsTracking)
}

type CompleteGoalInput struct {
	List  string `json:"list"`
	Index int    `json:"index"`
}

// CompleteGoal godoc
// @Summary Complete a goal
// @Description Moves the goal at index to completed and awards XP (+25 short-term, +50 long-term)
// @Tags goals
// @Accept json
// @Produce json
// @Param input body CompleteGoalInput true "Goal position"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 401 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /goals/complete [post]
func (gc *GoalsController) CompleteGoal(c *fiber.Ctx) error {
	username, record := currentRecord(c, gc.Store)
	if record == nil {
		return utils.NotFound(c, "User not found")
	}

	var input CompleteGoalInput
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}

	oldLevel := record.Level
	goal, err := progression.CompleteGoal(record, input.List, input.Index)
	if err != nil {
		if errors.Is(err, progression.ErrIndexOutOfRange) {
			return utils.BadRequest(c, "Goal index out of range")
		}
		if errors.Is(err, progression.ErrUnknownList) {
			return utils.BadRequest(c, "List must be short_term or long_term")
		}
		return utils.InternalServerError(c, "Could not complete goal")
	}
	record.Touch()

	if err := gc.Store.Save(username, record); err != nil {
		return utils.InternalServerError(c, "Could not save goal")
	}

	return utils.Success(c, fiber.StatusOK, fiber.Map{
		"goal":       goal,
		"xp":         record.XP,
		"level":      record.Level,
		"leveled_up": progression.LevelUpOccurred(oldLevel, record.Level),
	})
}
