package models

import "time"

// GoalStatus is the lifecycle state of a savings goal. Status changes
// are always explicit user actions; reaching the target amount does not
// flip a goal to completed on its own.
type GoalStatus string

const (
	GoalStatusActive    GoalStatus = "active"
	GoalStatusCompleted GoalStatus = "completed"
	GoalStatusPaused    GoalStatus = "paused"
)

// GoalPriority orders goals for display.
type GoalPriority string

const (
	GoalPriorityLow    GoalPriority = "low"
	GoalPriorityMedium GoalPriority = "medium"
	GoalPriorityHigh   GoalPriority = "high"
)

// Goal represents a savings target. CurrentAmount may exceed
// TargetAmount; progress above 100% is reported as-is.
type Goal struct {
	Base
	UserID        string       `gorm:"type:uuid;not null;index" json:"user_id"`
	Name          string       `gorm:"not null" json:"name"`
	Description   string       `json:"description,omitempty"`
	TargetAmount  int64        `gorm:"type:bigint;not null" json:"target_amount"`
	CurrentAmount int64        `gorm:"type:bigint;not null;default:0" json:"current_amount"`
	TargetDate    *time.Time   `json:"target_date,omitempty"`
	Priority      GoalPriority `gorm:"not null;default:'medium'" json:"priority"`
	Status        GoalStatus   `gorm:"not null;default:'active'" json:"status"`
}
