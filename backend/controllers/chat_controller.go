package controllers

import (
	"log"
	"strings"

	"zyra/backend/advisor"
	"zyra/backend/config"
	"zyra/backend/models"
	"zyra/backend/progression"
	"zyra/backend/store"
	"zyra/backend/utils"

	"github.com/gofiber/fiber/v2"
)

type ChatController struct {
	Store   *store.Store
	Advisor advisor.Advisor
	Cfg     *config.Config
	Logger  *log.Logger
}

func NewChatController(st *store.Store, adv advisor.Advisor, cfg *config.Config, logger *log.Logger) *ChatController {
	return &ChatController{Store: st, Advisor: adv, Cfg: cfg, Logger: logger}
}

type SendMessageInput struct {
	Message string `json:"message"`
}

// SendMessage godoc
// @Summary Send a chat message
// @Description Appends the user's message, asks the advisor for a reply and updates progression
// @Tags chat
// @Accept json
// @Produce json
// @Param input body SendMessageInput true "Message"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 401 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Failure 502 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /chat/message [post]
func (cc *ChatController) SendMessage(c *fiber.Ctx) error {
	username, record := currentRecord(c, cc.Store)
	if record == nil {
		return utils.NotFound(c, "User not found")
	}

	var input SendMessageInput
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}
	message := strings.TrimSpace(input.Message)
	if message == "" {
		return utils.BadRequest(c, "Message is required")
	}

	// The user's turn is persisted before the advisory call so a failed
	// reply never loses it.
	record.ChatHistory = append(record.ChatHistory, models.Message{
		Sender:    models.SenderUser,
		Content:   message,
		Timestamp: models.Now(),
	})
	record.Touch()
	if err := cc.Store.Save(username, record); err != nil {
		return utils.InternalServerError(c, "Could not save message")
	}

	prompt := advisor.BuildPrompt(record, message)
	reply, err := cc.Advisor.Generate(c.Context(), prompt)
	if err != nil {
		cc.Logger.Printf("advisor error for %s: %v", username, err)
		return utils.BadGateway(c, "The advisor is having trouble right now. Please try again in a moment.")
	}
	reply = advisor.StripCodeFences(reply)

	record.ChatHistory = append(record.ChatHistory, models.Message{
		Sender:    models.SenderBot,
		Content:   reply,
		Timestamp: models.Now(),
	})

	oldLevel := record.Level
	progression.AwardMessageXP(record)
	earned := progression.ApplyBadgeRules(record)
	record.Touch()

	if err := cc.Store.Save(username, record); err != nil {
		return utils.InternalServerError(c, "Could not save chat turn")
	}

	return utils.Success(c, fiber.StatusOK, fiber.Map{
		"reply":         reply,
		"xp":            record.XP,
		"level":         record.Level,
		"leveled_up":    progression.LevelUpOccurred(oldLevel, record.Level),
		"badges_earned": earned,
	})
}

// GetHistory godoc
// @Summary Get chat history
// @Description Returns the full ordered chat history
// @Tags chat
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 401 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /chat/history [get]
func (cc *ChatController) GetHistory(c *fiber.Ctx) error {
	_, record := currentRecord(c, cc.Store)
	if record == nil {
		return utils.NotFound(c, "User not found")
	}

	return utils.Success(c, fiber.StatusOK, fiber.Map{
		"chat_history": record.ChatHistory,
		"count":        len(record.ChatHistory),
	})
}

// GetConversations godoc
// @Summary Get grouped conversations
// @Description Returns user/bot message pairs, newest first
// @Tags chat
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 401 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /chat/conversations [get]
func (cc *ChatController) GetConversations(c *fiber.Ctx) error {
	_, record := currentRecord(c, cc.Store)
	if record == nil {
		return utils.NotFound(c, "User not found")
	}

	// Группируем сообщения в пары "вопрос-ответ". Ответ бота связывается
	// с ближайшим предшествующим сообщением пользователя; ход без ответа
	// (сбой советника) в разговор не попадает.
	var conversations []fiber.Map
	var lastUser *models.Message
	for i := range record.ChatHistory {
		message := &record.ChatHistory[i]
		switch message.Sender {
		case models.SenderUser:
			lastUser = message
		case models.SenderBot:
			if lastUser == nil {
				continue
			}
			conversations = append(conversations, fiber.Map{
				"user":      lastUser.Content,
				"bot":       message.Content,
				"timestamp": lastUser.Timestamp,
			})
			lastUser = nil
		}
	}

	// Новые разговоры первыми
	for i, j := 0, len(conversations)-1; i < j; i, j = i+1, j-1 {
		conversations[i], conversations[j] = conversations[j], conversations[i]
	}

	return utils.Success(c, fiber.StatusOK, fiber.Map{
		"conversations": conversations,
		"count":         len(conversations),
	})
}

// ClearHistory godoc
// @Summary Clear chat history
// @Description Truncates chat history to empty; XP, level and badges are untouched
// @Tags chat
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 401 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /chat/history [delete]
func (cc *ChatController) ClearHistory(c *fiber.Ctx) error {
	username, record := currentRecord(c, cc.Store)
	if record == nil {
		return utils.NotFound(c, "User not found")
	}

	record.ChatHistory = []models.Message{}
	record.Touch()
	if err := cc.Store.Save(username, record); err != nil {
		return utils.InternalServerError(c, "Could not clear history")
	}

	return utils.Success(c, fiber.StatusOK, fiber.Map{
		"message": "Chat history cleared",
	})
}
