package controllers

import (
	"log"

	"zyra/backend/config"
	"zyra/backend/progression"
	"zyra/backend/store"
	"zyra/backend/utils"

	"github.com/gofiber/fiber/v2"
)

type ProfileController struct {
	Store  *store.Store
	Cfg    *config.Config
	Logger *log.Logger
}

func NewProfileController(st *store.Store, cfg *config.Config, logger *log.Logger) *ProfileController {
	return &ProfileController{Store: st, Cfg: cfg, Logger: logger}
}

// GetProfile godoc
// @Summary Get user profile
// @Description Returns the authenticated user's profile, skills and progression state
// @Tags profile
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 401 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /user/profile [get]
func (pc *ProfileController) GetProfile(c *fiber.Ctx) error {
	_, record := currentRecord(c, pc.Store)
	if record == nil {
		return utils.NotFound(c, "User not found")
	}

	// Формируем ответ без чувствительных данных
	return utils.Success(c, fiber.StatusOK, fiber.Map{
		"username":    record.Username,
		"created_at":  record.CreatedAt,
		"last_active": record.LastActive,
		"profile":     record.Profile,
		"skills":      record.Skills,
		"xp":          record.XP,
		"level":       record.Level,
		"badges":      record.Badges,
		"streak":      record.Streak,
	})
}

type UpdateProfileInput struct {
	Name              string `json:"name"`
	CurrentRole       string `json:"current_role"`
	ExperienceLevel   string `json:"experience_level"`
	Location          string `json:"location"`
	Education         string `json:"education"`
	PreferredWorkType string `json:"preferred_work_type"`
	Availability      string `json:"availability"`
	Bio               string `json:"bio"`
	Goal              string `json:"goal"`
}

// UpdateProfile godoc
// @Summary Update profile information
// @Description Replaces the basic profile fields, recomputes completion and applies badge rules
// @Tags profile
// @Accept json
// @Produce json
// @Param input body UpdateProfileInput true "Profile data"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 401 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /user/profile [put]
func (pc *ProfileController) UpdateProfile(c *fiber.Ctx) error {
	username, record := currentRecord(c, pc.Store)
	if record == nil {
		return utils.NotFound(c, "User not found")
	}

	var input UpdateProfileInput
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}

	record.Profile.Name = input.Name
	record.Profile.CurrentRole = input.CurrentRole
	record.Profile.ExperienceLevel = input.ExperienceLevel
	record.Profile.Location = input.Location
	record.Profile.Education = input.Education
	record.Profile.PreferredWorkType = input.PreferredWorkType
	record.Profile.Availability = input.Availability
	record.Profile.Bio = input.Bio
	record.Profile.Goal = input.Goal

	record.Profile.Completion = progression.ProfileCompletion(record.Profile)
	earned := progression.ApplyBadgeRules(record)
	record.Touch()

	if err := pc.Store.Save(username, record); err != nil {
		return utils.InternalServerError(c, "Could not update profile")
	}

	return utils.Success(c, fiber.StatusOK, fiber.Map{
		"profile":       record.Profile,
		"badges_earned": earned,
		"xp":            record.XP,
		"level":         record.Level,
	})
}

type UpdateSkillsInput struct {
	Technical map[string]int `json:"technical"`
	Soft      map[string]int `json:"soft"`
}

// UpdateSkills godoc
// @Summary Update skill levels
// @Description Replaces the technical and/or soft skill maps; levels clamp to 0-100
// @Tags profile
// @Accept json
// @Produce json
// @Param input body UpdateSkillsInput true "Skill maps"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 401 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /user/skills [put]
func (pc *ProfileController) UpdateSkills(c *fiber.Ctx) error {
	username, record := currentRecord(c, pc.Store)
	if record == nil {
		return utils.NotFound(c, "User not found")
	}

	var input UpdateSkillsInput
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}

	if input.Technical != nil {
		record.Skills.Technical = clampSkills(input.Technical)
	}
	if input.Soft != nil {
		record.Skills.Soft = clampSkills(input.Soft)
	}
	record.Touch()

	if err := pc.Store.Save(username, record); err != nil {
		return utils.InternalServerError(c, "Could not update skills")
	}

	return utils.Success(c, fiber.StatusOK, fiber.Map{
		"skills": record.Skills,
	})
}

type UpdateInterestsInput struct {
	Interests []string `json:"interests"`
}

// UpdateInterests godoc
// @Summary Update interests
// @Description Replaces the interest list and recomputes profile completion
// @Tags profile
// @Accept json
// @Produce json
// @Param input body UpdateInterestsInput true "Interest list"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 401 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /user/interests [put]
func (pc *ProfileController) UpdateInterests(c *fiber.Ctx) error {
	username, record := currentRecord(c, pc.Store)
	if record == nil {
		return utils.NotFound(c, "User not found")
	}

	var input UpdateInterestsInput
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}

	if input.Interests == nil {
		input.Interests = []string{}
	}
	record.Profile.Interests = input.Interests
	record.Profile.Completion = progression.ProfileCompletion(record.Profile)
	earned := progression.ApplyBadgeRules(record)
	record.Touch()

	if err := pc.Store.Save(username, record); err != nil {
		return utils.InternalServerError(c, "Could not update interests")
	}

	return utils.Success(c, fiber.StatusOK, fiber.Map{
		"interests":     record.Profile.Interests,
		"completion":    record.Profile.Completion,
		"badges_earned": earned,
	})
}

func clampSkills(skills map[string]int) map[string]int {
	clamped := make(map[string]int, len(skills))
	for name, level := range skills {
		if level < 0 {
			level = 0
		}
		if level > 100 {
			level = 100
		}
		clamped[name] = level
	}
	return clamped
}
