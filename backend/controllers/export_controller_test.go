package controllers_test

import (
	"encoding/json"
	"testing"

	"zyra/backend/controllers"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExport(t *testing.T) {
	_, token := registerUser(t)
	stub.Reply = "export me"
	stub.Err = nil

	doJSON(t, "POST", "/api/chat/message", token, map[string]string{"message": "hello"})

	resp := doJSON(t, "GET", "/api/export", token, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	// Экспорт отдаётся как самостоятельный документ, без конверта
	var export controllers.ExportedData
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&export))

	assert.Equal(t, "Student", export.Profile.CurrentRole)
	require.Len(t, export.ChatHistory, 2)
	assert.Equal(t, "hello", export.ChatHistory[0].Content)
	assert.Equal(t, "export me", export.ChatHistory[1].Content)

	assert.Equal(t, 1, export.Stats.Level)
	assert.Equal(t, 40, export.Stats.XP)
	assert.Equal(t, []string{"New Member", "First Chat"}, export.Stats.Badges)
	assert.NotEmpty(t, export.ExportDate)
}

func TestExportAfterClear(t *testing.T) {
	_, token := registerUser(t)
	stub.Reply = "gone soon"
	stub.Err = nil

	doJSON(t, "POST", "/api/chat/message", token, map[string]string{"message": "hi"})
	doJSON(t, "DELETE", "/api/chat/history", token, nil)

	resp := doJSON(t, "GET", "/api/export", token, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var export controllers.ExportedData
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&export))

	// История пуста, но статистика сохранилась
	assert.Empty(t, export.ChatHistory)
	assert.Equal(t, 40, export.Stats.XP)
	assert.Contains(t, export.Stats.Badges, "First Chat")
}
