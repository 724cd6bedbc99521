package models

// Theme is the user's preferred color scheme.
type Theme string

const (
	ThemeLight  Theme = "light"
	ThemeDark   Theme = "dark"
	ThemeSystem Theme = "system"
)

// UserSettings holds per-user display and notification preferences.
// One row per user, created with defaults on first access.
type UserSettings struct {
	Base
	UserID   string `gorm:"type:uuid;not null;uniqueIndex" json:"user_id"`
	Currency string `gorm:"not null;default:'USD'" json:"currency"`
	Language string `gorm:"not null;default:'en'" json:"language"`
	Theme    Theme  `gorm:"not null;default:'system'" json:"theme"`

	NotifyEmail        bool `gorm:"default:true" json:"notify_email"`
	NotifyPush         bool `gorm:"default:true" json:"notify_push"`
	NotifyTransactions bool `gorm:"default:true" json:"notify_transactions"`
	NotifyGoals        bool `gorm:"default:true" json:"notify_goals"`
	NotifyReports      bool `gorm:"default:false" json:"notify_reports"`
}
