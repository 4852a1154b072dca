package models

import (
	"time"

	"gorm.io/gorm"
)

// LoginHistory is supplementary telemetry kept in SQLite, next to the
// JSON user documents. One row per successful login.
type LoginHistory struct {
	gorm.Model
	Username  string `gorm:"index;not null"`
	LoginTime time.Time
}

// DailyActivity агрегирует входы по дням для страницы аналитики.
type DailyActivity struct {
	Date   string `json:"date"`
	Logins int    `json:"logins"`
}
