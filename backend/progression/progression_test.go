package progression

import (
	"testing"

	"zyra/backend/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLevelFor(t *testing.T) {
	assert.Equal(t, 1, LevelFor(0))
	assert.Equal(t, 1, LevelFor(199))
	assert.Equal(t, 1, LevelFor(200))
	assert.Equal(t, 1, LevelFor(399))
	assert.Equal(t, 2, LevelFor(400))
	assert.Equal(t, 2, LevelFor(599))
	assert.Equal(t, 3, LevelFor(600))

	// Монотонность на границах
	prev := 0
	for xp := 0; xp <= 2000; xp += 50 {
		level := LevelFor(xp)
		assert.GreaterOrEqual(t, level, prev)
		prev = level
	}
}

func TestLevelUpOccurred(t *testing.T) {
	assert.True(t, LevelUpOccurred(1, 2))
	assert.False(t, LevelUpOccurred(2, 2))
	assert.False(t, LevelUpOccurred(2, 1))
}

func TestAwardMessageXP(t *testing.T) {
	record := models.DefaultRecord("alice")
	AwardMessageXP(record)
	assert.Equal(t, 15, record.XP)
	assert.Equal(t, 1, record.Level)

	// Уровень пересчитывается от общего XP
	record.XP = 390
	AwardMessageXP(record)
	assert.Equal(t, 405, record.XP)
	assert.Equal(t, 2, record.Level)
}

// Two chat turns from a fresh account: 15+15 message XP plus the
// one-time First Chat bonus of 25 lands at exactly 55 XP, level 1.
func TestTwoChatTurns(t *testing.T) {
	record := models.DefaultRecord("alice")

	// Первый ход: пользователь + бот
	record.ChatHistory = append(record.ChatHistory,
		models.Message{Sender: models.SenderUser, Content: "hi", Timestamp: models.Now()},
		models.Message{Sender: models.SenderBot, Content: "hello", Timestamp: models.Now()},
	)
	AwardMessageXP(record)
	earned := ApplyBadgeRules(record)
	assert.Equal(t, []string{BadgeFirstChat}, earned)
	assert.Equal(t, 40, record.XP)

	// Второй ход
	record.ChatHistory = append(record.ChatHistory,
		models.Message{Sender: models.SenderUser, Content: "more", Timestamp: models.Now()},
		models.Message{Sender: models.SenderBot, Content: "sure", Timestamp: models.Now()},
	)
	AwardMessageXP(record)
	earned = ApplyBadgeRules(record)
	assert.Empty(t, earned)

	assert.Equal(t, 55, record.XP)
	assert.Equal(t, 1, record.Level)

	// "First Chat" присвоен ровно один раз
	count := 0
	for _, b := range record.Badges {
		if b == BadgeFirstChat {
			count++
		}
	}
	assert.Equal(t, 1, count)
}

func TestBadgeRulesIdempotent(t *testing.T) {
	record := models.DefaultRecord("alice")
	for i := 0; i < 12; i++ {
		record.ChatHistory = append(record.ChatHistory,
			models.Message{Sender: models.SenderUser, Content: "x", Timestamp: models.Now()})
	}

	earned := ApplyBadgeRules(record)
	assert.Equal(t, []string{BadgeFirstChat, BadgeRegularUser}, earned)
	xpAfter := record.XP

	// Повторное применение не дублирует значки и не начисляет XP
	earned = ApplyBadgeRules(record)
	assert.Empty(t, earned)
	assert.Equal(t, xpAfter, record.XP)
	assert.Equal(t, []string{"New Member", BadgeFirstChat, BadgeRegularUser}, record.Badges)
}

func TestBadgeBonusCanLevelUp(t *testing.T) {
	record := models.DefaultRecord("alice")
	record.XP = 390
	record.Level = LevelFor(record.XP)
	record.Profile.Completion = 75

	earned := ApplyBadgeRules(record)
	assert.Equal(t, []string{BadgeProfilePro}, earned)
	assert.Equal(t, 440, record.XP)
	assert.Equal(t, 2, record.Level)
}

func TestCompleteGoal(t *testing.T) {
	record := models.DefaultRecord("alice")
	record.GoalsTracking.ShortTerm = []models.Goal{
		{Text: "learn sql", CreatedAt: models.Now()},
		{Text: "update resume", CreatedAt: models.Now()},
	}
	record.GoalsTracking.LongTerm = []models.Goal{
		{Text: "become team lead", CreatedAt: models.Now()},
	}

	goal, err := CompleteGoal(record, models.GoalListShortTerm, 0)
	require.NoError(t, err)
	assert.Equal(t, "learn sql", goal.Text)
	assert.NotEmpty(t, goal.CompletedAt)
	assert.Equal(t, 25, record.XP)
	assert.Len(t, record.GoalsTracking.ShortTerm, 1)
	assert.Equal(t, "update resume", record.GoalsTracking.ShortTerm[0].Text)
	assert.Len(t, record.GoalsTracking.Completed, 1)

	goal, err = CompleteGoal(record, models.GoalListLongTerm, 0)
	require.NoError(t, err)
	assert.Equal(t, "become team lead", goal.Text)
	assert.Equal(t, 75, record.XP)
	assert.Empty(t, record.GoalsTracking.LongTerm)
}

func TestCompleteGoalOutOfRange(t *testing.T) {
	record := models.DefaultRecord("alice")
	record.GoalsTracking.ShortTerm = []models.Goal{
		{Text: "learn sql", CreatedAt: models.Now()},
	}

	_, err := CompleteGoal(record, models.GoalListShortTerm, 5)
	assert.ErrorIs(t, err, ErrIndexOutOfRange)
	_, err = CompleteGoal(record, models.GoalListShortTerm, -1)
	assert.ErrorIs(t, err, ErrIndexOutOfRange)

	// Запись не изменилась
	assert.Equal(t, 0, record.XP)
	assert.Len(t, record.GoalsTracking.ShortTerm, 1)
	assert.Empty(t, record.GoalsTracking.Completed)
}

func TestCompleteGoalUnknownList(t *testing.T) {
	record := models.DefaultRecord("alice")
	_, err := CompleteGoal(record, "someday", 0)
	assert.ErrorIs(t, err, ErrUnknownList)
}

func TestProfileCompletion(t *testing.T) {
	profile := models.Profile{}
	assert.Equal(t, 0, ProfileCompletion(profile))

	profile.Name = "Alice"
	profile.CurrentRole = "Student"
	assert.Equal(t, 29, ProfileCompletion(profile)) // round(2/7*100)

	profile.Location = "Pune"
	profile.Education = "B.Tech"
	profile.Bio = "bio"
	assert.Equal(t, 71, ProfileCompletion(profile)) // round(5/7*100)

	// Полностью заполненный профиль упирается в потолок 90
	profile.Goal = "growth"
	profile.Interests = []string{"Data Science"}
	assert.Equal(t, 90, ProfileCompletion(profile))

	// Пробельные значения не считаются заполненными
	profile.Bio = "   "
	assert.Equal(t, 86, ProfileCompletion(profile)) // round(6/7*100)
}
