// Package progression computes XP, level, badge and goal transitions.
// Every function here is deterministic over the record it is given; the
// handlers load a record, apply progression and save it back.
package progression

import (
	"errors"
	"math"
	"strings"

	"zyra/backend/models"
)

const (
	XPPerMessage    = 15
	XPShortTermGoal = 25
	XPLongTermGoal  = 50

	xpPerLevel = 200
)

// Badges awarded by the ordered rule table below.
const (
	BadgeFirstChat      = "First Chat"
	BadgeRegularUser    = "Regular User"
	BadgeCareerExplorer = "Career Explorer"
	BadgeProfilePro     = "Profile Pro"
)

var (
	ErrIndexOutOfRange = errors.New("goal index out of range")
	ErrUnknownList     = errors.New("unknown goal list")
)

type badgeRule struct {
	name      string
	bonusXP   int
	satisfied func(*models.UserRecord) bool
}

// Rule order fixes the display order of badges earned in the same turn.
// Predicates are on disjoint badges, so order never changes final state.
var badgeRules = []badgeRule{
	{BadgeFirstChat, 25, func(r *models.UserRecord) bool { return len(r.ChatHistory) >= 2 }},
	{BadgeRegularUser, 50, func(r *models.UserRecord) bool { return len(r.ChatHistory) >= 10 }},
	{BadgeCareerExplorer, 100, func(r *models.UserRecord) bool { return len(r.ChatHistory) >= 25 }},
	{BadgeProfilePro, 50, func(r *models.UserRecord) bool { return r.Profile.Completion >= 70 }},
}

// LevelFor is the step function from total XP to level. Level is always
// recomputed from the total, never incremented, so it can not drift.
func LevelFor(xp int) int {
	level := xp / xpPerLevel
	if level < 1 {
		return 1
	}
	return level
}

// LevelUpOccurred reports whether a progression update crossed a level
// boundary. The celebration is the caller's concern.
func LevelUpOccurred(oldLevel, newLevel int) bool {
	return newLevel > oldLevel
}

// AwardMessageXP credits one user-submitted chat turn.
func AwardMessageXP(record *models.UserRecord) {
	record.XP += XPPerMessage
	record.Level = LevelFor(record.XP)
}

// ApplyBadgeRules evaluates the rule table in order and returns the
// badges earned by this call. Each rule fires at most once per record
// (guarded by badge absence); bonus XP is added immediately and may
// itself move the level.
func ApplyBadgeRules(record *models.UserRecord) []string {
	var earned []string
	for _, rule := range badgeRules {
		if record.HasBadge(rule.name) || !rule.satisfied(record) {
			continue
		}
		record.Badges = append(record.Badges, rule.name)
		record.XP += rule.bonusXP
		record.Level = LevelFor(record.XP)
		earned = append(earned, rule.name)
	}
	return earned
}

// CompleteGoal removes the goal at index from the named list, appends it
// to the completed list with a completion timestamp and awards the fixed
// XP for the list. An out-of-range index returns ErrIndexOutOfRange and
// leaves the record untouched.
func CompleteGoal(record *models.UserRecord, list string, index int) (models.Goal, error) {
	var goals *[]models.Goal
	var bonus int
	switch list {
	case models.GoalListShortTerm:
		goals = &record.GoalsTracking.ShortTerm
		bonus = XPShortTermGoal
	case models.GoalListLongTerm:
		goals = &record.GoalsTracking.LongTerm
		bonus = XPLongTermGoal
	default:
		return models.Goal{}, ErrUnknownList
	}

	if index < 0 || index >= len(*goals) {
		return models.Goal{}, ErrIndexOutOfRange
	}

	goal := (*goals)[index]
	*goals = append((*goals)[:index], (*goals)[index+1:]...)
	goal.CompletedAt = models.Now()
	record.GoalsTracking.Completed = append(record.GoalsTracking.Completed, goal)
	record.XP += bonus
	record.Level = LevelFor(record.XP)
	return goal, nil
}

// ProfileCompletion recomputes the completion percentage from the seven
// counted fields. Capped at 90: full completion is unreachable by
// design, the Profile Pro threshold of 70 is.
func ProfileCompletion(profile models.Profile) int {
	fields := []bool{
		strings.TrimSpace(profile.Name) != "",
		strings.TrimSpace(profile.CurrentRole) != "",
		strings.TrimSpace(profile.Location) != "",
		strings.TrimSpace(profile.Education) != "",
		strings.TrimSpace(profile.Bio) != "",
		strings.TrimSpace(profile.Goal) != "",
		len(profile.Interests) > 0,
	}
	completed := 0
	for _, f := range fields {
		if f {
			completed++
		}
	}
	pct := int(math.Round(float64(completed) / 7 * 100))
	if pct > 90 {
		return 90
	}
	return pct
}
