package controllers_test

import (
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetOverview(t *testing.T) {
	_, token := registerUser(t)
	stub.Reply = "ok"
	stub.Err = nil

	doJSON(t, "POST", "/api/chat/message", token, map[string]string{"message": "hi"})
	doJSON(t, "POST", "/api/goals/", token, map[string]string{
		"list": "short_term", "text": "finish course",
	})
	doJSON(t, "POST", "/api/goals/complete", token, map[string]interface{}{
		"list": "short_term", "index": 0,
	})

	resp := doJSON(t, "GET", "/api/progress/overview", token, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	data := decodeData(t, resp)
	// 15 за сообщение + 25 First Chat + 25 за цель
	assert.Equal(t, float64(65), data["xp"])
	assert.Equal(t, float64(1), data["level"])
	assert.Equal(t, float64(400), data["next_level_xp"])
	assert.Equal(t, float64(2), data["chat_count"])
	assert.Equal(t, float64(1), data["completed_goals"])
	assert.Equal(t, float64(1), data["streak"])
	assert.Contains(t, data["badges"], "New Member")
	assert.Contains(t, data["badges"], "First Chat")
	assert.NotEmpty(t, data["member_since"])
}

func TestGetActivity(t *testing.T) {
	username, token := registerUser(t)

	// Два входа сегодня
	for i := 0; i < 2; i++ {
		resp := doJSON(t, "POST", "/api/auth/login", "", map[string]string{
			"username": username,
			"password": "password123",
		})
		require.Equal(t, fiber.StatusOK, resp.StatusCode)
	}

	resp := doJSON(t, "GET", "/api/progress/activity?days=7", token, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	data := decodeData(t, resp)
	assert.Equal(t, float64(7), data["period_days"])

	logins := data["logins"].([]interface{})
	assert.Len(t, logins, 2)

	daily := data["daily"].([]interface{})
	require.Len(t, daily, 1)
	today := daily[0].(map[string]interface{})
	assert.Equal(t, time.Now().Format("2006-01-02"), today["date"])
	assert.Equal(t, float64(2), today["logins"])
}

func TestGetActivityBadDays(t *testing.T) {
	_, token := registerUser(t)

	// Бессмысленный параметр откатывается к семи дням
	resp := doJSON(t, "GET", "/api/progress/activity?days=-3", token, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	data := decodeData(t, resp)
	assert.Equal(t, float64(7), data["period_days"])
}
