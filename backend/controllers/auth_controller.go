package controllers

import (
	"errors"
	"fmt"
	"log"
	"time"

	"zyra/backend/config"
	"zyra/backend/models"
	"zyra/backend/store"
	"zyra/backend/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type AuthController struct {
	Store  *store.Store
	DB     *gorm.DB
	Cfg    *config.Config
	Logger *log.Logger
}

func NewAuthController(st *store.Store, db *gorm.DB, cfg *config.Config, logger *log.Logger) *AuthController {
	return &AuthController{Store: st, DB: db, Cfg: cfg, Logger: logger}
}

type RegisterInput struct {
	Username        string `json:"username"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirm_password"`
}

// Register godoc
// @Summary Register a new user
// @Description Creates a new user account with a default profile
// @Tags auth
// @Accept json
// @Produce json
// @Param input body RegisterInput true "Registration data"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 409 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Router /auth/register [post]
func (ac *AuthController) Register(c *fiber.Ctx) error {
	var input RegisterInput
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}

	// Signup form rules
	if len(input.Username) < 3 {
		return utils.BadRequest(c, "Username must be at least 3 characters long")
	}
	if store.SanitizeUsername(input.Username) == "" {
		return utils.BadRequest(c, "Username must contain letters, digits, '_' or '-'")
	}
	if len(input.Password) < 6 {
		return utils.BadRequest(c, "Password must be at least 6 characters long")
	}
	if input.ConfirmPassword != input.Password {
		return utils.BadRequest(c, "Passwords don't match")
	}

	if err := ac.Store.Create(input.Username, input.Password); err != nil {
		if errors.Is(err, store.ErrDuplicateUsername) {
			return utils.Conflict(c, "Username already exists")
		}
		return utils.InternalServerError(c, "Could not create account")
	}

	token, err := utils.GenerateJWTToken(input.Username, ac.Cfg)
	if err != nil {
		return utils.InternalServerError(c, "Could not generate token")
	}

	record := ac.Store.Load(input.Username)
	return utils.Created(c, fiber.Map{
		"token": token,
		"user":  publicUser(record),
	})
}

type LoginInput struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Login godoc
// @Summary User login
// @Description Authenticate user and return JWT token
// @Tags auth
// @Accept json
// @Produce json
// @Param input body LoginInput true "Login credentials"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 401 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Router /auth/login [post]
func (ac *AuthController) Login(c *fiber.Ctx) error {
	var input LoginInput
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}

	record, err := ac.Store.Verify(input.Username, input.Password)
	if err != nil {
		// Not-found and bad-password are deliberately indistinguishable
		// for the client.
		if errors.Is(err, store.ErrNotFound) || errors.Is(err, store.ErrBadCredentials) {
			return utils.Unauthorized(c, "Invalid username or password")
		}
		return utils.InternalServerError(c, "Could not verify credentials")
	}

	record.Touch()
	if err := ac.Store.Save(input.Username, record); err != nil {
		return utils.InternalServerError(c, "Could not update account")
	}

	// История входов — телеметрия, ошибка не ломает логин
	login := models.LoginHistory{
		Username:  store.SanitizeUsername(input.Username),
		LoginTime: time.Now(),
	}
	if err := ac.DB.Create(&login).Error; err != nil {
		ac.Logger.Printf("record login history: %v", err)
	}

	token, err := utils.GenerateJWTToken(input.Username, ac.Cfg)
	if err != nil {
		return utils.InternalServerError(c, "Could not generate token")
	}

	return utils.Success(c, fiber.StatusOK, fiber.Map{
		"token": token,
		"user":  publicUser(record),
	})
}

// Demo godoc
// @Summary Create a demo account
// @Description Creates a throwaway demo account and logs it in
// @Tags auth
// @Produce json
// @Success 201 {object} map[string]interface{}
// @Failure 500 {object} utils.ErrorResponse
// @Router /auth/demo [post]
func (ac *AuthController) Demo(c *fiber.Ctx) error {
	// Наносекундная метка, чтобы два демо-входа в одну секунду не
	// столкнулись на одном имени
	username := fmt.Sprintf("demo_user_%d", time.Now().UnixNano())
	if err := ac.Store.Create(username, "demo123"); err != nil {
		if errors.Is(err, store.ErrDuplicateUsername) {
			return utils.Conflict(c, "Demo account collision, please retry")
		}
		return utils.InternalServerError(c, "Could not create demo account")
	}

	token, err := utils.GenerateJWTToken(username, ac.Cfg)
	if err != nil {
		return utils.InternalServerError(c, "Could not generate token")
	}

	record := ac.Store.Load(username)
	return utils.Created(c, fiber.Map{
		"token": token,
		"user":  publicUser(record),
	})
}

// publicUser формирует ответ без чувствительных данных
func publicUser(record *models.UserRecord) fiber.Map {
	if record == nil {
		return fiber.Map{}
	}
	return fiber.Map{
		"username": record.Username,
		"name":     record.Profile.Name,
		"level":    record.Level,
		"xp":       record.XP,
		"badges":   record.Badges,
	}
}

// currentRecord loads the record for the authenticated username set by
// the auth middleware.
func currentRecord(c *fiber.Ctx, st *store.Store) (string, *models.UserRecord) {
	username, _ := c.Locals("username").(string)
	if username == "" {
		return "", nil
	}
	return username, st.Load(username)
}
