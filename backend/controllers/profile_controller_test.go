package controllers_test

import (
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetProfile(t *testing.T) {
	username, token := registerUser(t)

	resp := doJSON(t, "GET", "/api/user/profile", token, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	data := decodeData(t, resp)
	assert.Equal(t, username, data["username"])
	assert.Equal(t, float64(0), data["xp"])
	assert.Equal(t, float64(1), data["level"])
	assert.Equal(t, float64(1), data["streak"])
	assert.NotEmpty(t, data["created_at"])

	profile := data["profile"].(map[string]interface{})
	assert.Equal(t, "Student", profile["current_role"])
	assert.Equal(t, float64(20), profile["completion"])

	skills := data["skills"].(map[string]interface{})
	technical := skills["technical"].(map[string]interface{})
	assert.Equal(t, float64(0), technical["Python"])

	// Дайджест пароля наружу не отдаётся
	_, leaked := data["password"]
	assert.False(t, leaked)
}

func TestUpdateProfile(t *testing.T) {
	_, token := registerUser(t)

	resp := doJSON(t, "PUT", "/api/user/profile", token, map[string]string{
		"name":             "Priya Sharma",
		"current_role":     "Junior Developer",
		"experience_level": "Intermediate",
		"location":         "Pune",
		"education":        "B.Tech Computer Science",
		"bio":              "Backend developer moving into data",
		"goal":             "Become a data engineer",
	})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	data := decodeData(t, resp)
	profile := data["profile"].(map[string]interface{})
	assert.Equal(t, "Priya Sharma", profile["name"])
	// 6 из 7 полей заполнены: round(6/7*100) = 86
	assert.Equal(t, float64(86), profile["completion"])

	// Заполненность >= 70 сразу даёт значок Profile Pro и его бонус
	assert.Equal(t, []interface{}{"Profile Pro"}, data["badges_earned"])
	assert.Equal(t, float64(50), data["xp"])
}

func TestUpdateSkills(t *testing.T) {
	_, token := registerUser(t)

	// Значения зажимаются в диапазон 0-100
	resp := doJSON(t, "PUT", "/api/user/skills", token, map[string]interface{}{
		"technical": map[string]int{"Python": 150, "Go": -5, "SQL": 60},
	})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	data := decodeData(t, resp)
	skills := data["skills"].(map[string]interface{})
	technical := skills["technical"].(map[string]interface{})
	assert.Equal(t, float64(100), technical["Python"])
	assert.Equal(t, float64(0), technical["Go"])
	assert.Equal(t, float64(60), technical["SQL"])

	// Непереданная категория не трогается
	soft := skills["soft"].(map[string]interface{})
	assert.Equal(t, float64(50), soft["Communication"])
}

func TestUpdateInterests(t *testing.T) {
	_, token := registerUser(t)

	resp := doJSON(t, "PUT", "/api/user/interests", token, map[string]interface{}{
		"interests": []string{"Data Science", "Cloud Computing"},
	})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	data := decodeData(t, resp)
	assert.Equal(t, []interface{}{"Data Science", "Cloud Computing"}, data["interests"])
	// Имя + роль из дефолтного профиля + интересы: round(3/7*100) = 43
	assert.Equal(t, float64(43), data["completion"])
	assert.Empty(t, data["badges_earned"])
}
