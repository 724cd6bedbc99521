package report

import (
	"errors"
	"math"
	"time"

	"fintrack/internal/models"
)

// ErrNoTarget reports a goal whose target amount is zero; its progress
// ratio has no defined value. Callers substitute a display fallback
// instead of dividing by zero.
var ErrNoTarget = errors.New("goal target amount is zero")

// GoalProgress describes one goal's completion.
type GoalProgress struct {
	// Percentage is current/target x 100, not capped at 100.
	Percentage float64 `json:"percentage"`
	// DaysRemaining is nil when the goal has no target date. Negative
	// values mean the deadline has passed and are reported as-is.
	DaysRemaining *int `json:"days_remaining,omitempty"`
}

// Progress computes a single goal's completion percentage and days
// remaining relative to now. Returns ErrNoTarget when the goal has a
// zero target amount.
func Progress(goal models.Goal, now time.Time) (GoalProgress, error) {
	if goal.TargetAmount == 0 {
		return GoalProgress{}, ErrNoTarget
	}

	p := GoalProgress{
		Percentage: float64(goal.CurrentAmount) / float64(goal.TargetAmount) * 100,
	}
	if goal.TargetDate != nil {
		days := int(math.Ceil(goal.TargetDate.Sub(now).Hours() / 24))
		p.DaysRemaining = &days
	}
	return p, nil
}

// GoalsSummary aggregates a user's goal portfolio. Amounts are cents.
type GoalsSummary struct {
	ActiveCount     int     `json:"active_count"`
	AverageProgress float64 `json:"average_progress"`
	TotalSaved      int64   `json:"total_saved"`
	TotalTarget     int64   `json:"total_target"`
}

// SummarizeGoals rolls up a goal collection. AverageProgress is the mean
// percentage over all goals regardless of status; goals without a target
// amount contribute zero to it. Saved and target totals likewise cover
// every goal, not just active ones.
func SummarizeGoals(goals []models.Goal) GoalsSummary {
	var s GoalsSummary
	var progressSum float64

	for i := range goals {
		g := &goals[i]
		if g.Status == models.GoalStatusActive {
			s.ActiveCount++
		}
		s.TotalSaved += g.CurrentAmount
		s.TotalTarget += g.TargetAmount
		if g.TargetAmount > 0 {
			progressSum += float64(g.CurrentAmount) / float64(g.TargetAmount) * 100
		}
	}

	if len(goals) > 0 {
		s.AverageProgress = progressSum / float64(len(goals))
	}
	return s
}
