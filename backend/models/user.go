package models

import (
	"strings"
	"time"
	"unicode"
)

// Message senders stored in chat history.
const (
	SenderUser = "user"
	SenderBot  = "bot"
)

// Goal lists inside GoalsTracking.
const (
	GoalListShortTerm = "short_term"
	GoalListLongTerm  = "long_term"
)

// UserRecord is the full per-user document persisted as one JSON file.
// The field tags are the on-disk contract; changing one changes every
// stored document.
type UserRecord struct {
	Username       string        `json:"username"`
	PasswordDigest string        `json:"password"`
	CreatedAt      string        `json:"created_at"`
	Profile        Profile       `json:"profile"`
	Skills         Skills        `json:"skills"`
	GoalsTracking  GoalsTracking `json:"goals_tracking"`
	ChatHistory    []Message     `json:"chat_history"`
	XP             int           `json:"xp"`
	Level          int           `json:"level"`
	Badges         []string      `json:"badges"`
	Streak         int           `json:"streak"`
	LastActive     string        `json:"last_active"`
}

type Profile struct {
	Name              string   `json:"name"`
	CurrentRole       string   `json:"current_role"`
	ExperienceLevel   string   `json:"experience_level"`
	Location          string   `json:"location"`
	Education         string   `json:"education"`
	PreferredWorkType string   `json:"preferred_work_type"`
	Availability      string   `json:"availability"`
	Bio               string   `json:"bio"`
	Goal              string   `json:"goal"`
	Interests         []string `json:"interests"`
	Completion        int      `json:"completion"`
}

// Skills maps skill name to proficiency level 0-100.
type Skills struct {
	Technical map[string]int `json:"technical"`
	Soft      map[string]int `json:"soft"`
}

type GoalsTracking struct {
	ShortTerm []Goal `json:"short_term"`
	LongTerm  []Goal `json:"long_term"`
	Completed []Goal `json:"completed"`
}

type Goal struct {
	Text        string `json:"text"`
	CreatedAt   string `json:"created_at"`
	CompletedAt string `json:"completed_at,omitempty"`
}

type Message struct {
	Sender    string `json:"sender"`
	Content   string `json:"content"`
	Timestamp string `json:"timestamp"`
}

// HasBadge reports whether the badge was already earned.
func (r *UserRecord) HasBadge(name string) bool {
	for _, b := range r.Badges {
		if b == name {
			return true
		}
	}
	return false
}

// Touch updates the last-active timestamp.
func (r *UserRecord) Touch() {
	r.LastActive = Now()
}

// Now returns the timestamp format used everywhere in the documents.
func Now() string {
	return time.Now().Format(time.RFC3339)
}

// DefaultRecord builds the zero-state record created at signup.
// All defaulting lives here so adding a field is a single typed change.
func DefaultRecord(username string) *UserRecord {
	now := Now()
	return &UserRecord{
		Username:  username,
		CreatedAt: now,
		Profile: Profile{
			Name:              titleCase(username),
			CurrentRole:       "Student",
			ExperienceLevel:   "Beginner",
			PreferredWorkType: "Remote",
			Availability:      "Learning and growing",
			Interests:         []string{},
			Completion:        20,
		},
		Skills: Skills{
			Technical: map[string]int{
				"Python":           0,
				"JavaScript":       0,
				"HTML/CSS":         0,
				"SQL":              0,
				"React":            0,
				"Machine Learning": 0,
			},
			Soft: map[string]int{
				"Communication":   50,
				"Teamwork":        50,
				"Problem Solving": 50,
				"Leadership":      30,
				"Time Management": 40,
				"Adaptability":    45,
			},
		},
		GoalsTracking: GoalsTracking{
			ShortTerm: []Goal{},
			LongTerm:  []Goal{},
			Completed: []Goal{},
		},
		ChatHistory: []Message{},
		XP:          0,
		Level:       1,
		Badges:      []string{"New Member"},
		Streak:      1,
		LastActive:  now,
	}
}

// titleCase capitalizes the first letter of every word ("john_doe" -> "John_Doe").
func titleCase(s string) string {
	var b strings.Builder
	prevLetter := false
	for _, r := range s {
		if unicode.IsLetter(r) {
			if prevLetter {
				b.WriteRune(unicode.ToLower(r))
			} else {
				b.WriteRune(unicode.ToUpper(r))
			}
			prevLetter = true
		} else {
			b.WriteRune(r)
			prevLetter = false
		}
	}
	return b.String()
}
