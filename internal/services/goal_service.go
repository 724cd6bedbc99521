package services

import (
	"errors"
	"time"

	"gorm.io/gorm"

	apperrors "fintrack/internal/errors"
	"fintrack/internal/models"
	"fintrack/internal/pagination"
	"fintrack/internal/report"
)

// goalService handles savings-goal business logic. Goal status never
// changes implicitly: reaching the target amount does not complete a
// goal, callers mark goals completed explicitly.
type goalService struct {
	db *gorm.DB
}

// NewGoalService creates a new GoalServicer.
func NewGoalService(db *gorm.DB) GoalServicer {
	return &goalService{db: db}
}

// CreateGoal creates a new savings goal for a user.
func (s *goalService) CreateGoal(userID, name, description string, targetAmount, currentAmount int64, targetDate *time.Time, priority models.GoalPriority) (*models.Goal, error) {
	if name == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "goal name is required")
	}
	if targetAmount <= 0 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "target amount must be greater than zero")
	}
	if currentAmount < 0 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "current amount cannot be negative")
	}
	if priority == "" {
		priority = models.GoalPriorityMedium
	}

	goal := &models.Goal{
		UserID:        userID,
		Name:          name,
		Description:   description,
		TargetAmount:  targetAmount,
		CurrentAmount: currentAmount,
		TargetDate:    targetDate,
		Priority:      priority,
		Status:        models.GoalStatusActive,
	}

	if err := s.db.Create(goal).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	return goal, nil
}

// GetUserGoals retrieves a paginated list of a user's goals, optionally
// filtered by status, newest first.
func (s *goalService) GetUserGoals(userID string, page pagination.PageRequest, status *models.GoalStatus) (*pagination.PageResponse[models.Goal], error) {
	page.Defaults()

	base := s.db.Model(&models.Goal{}).Where("user_id = ?", userID)
	if status != nil {
		base = base.Where("status = ?", *status)
	}

	var totalItems int64
	if err := base.Count(&totalItems).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var goals []models.Goal
	if err := base.Scopes(pagination.Paginate(page)).
		Order("created_at DESC").
		Find(&goals).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	result := pagination.NewPageResponse(goals, page.Page, page.PageSize, totalItems)
	return &result, nil
}

// GetGoalByID retrieves a goal by ID for a specific user.
func (s *goalService) GetGoalByID(userID, goalID string) (*models.Goal, error) {
	var goal models.Goal
	if err := s.db.Where("id = ? AND user_id = ?", goalID, userID).First(&goal).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrGoalNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &goal, nil
}

// GetGoalDetail returns a goal together with its computed progress.
// Progress is omitted, not an error, when the goal has no target amount.
func (s *goalService) GetGoalDetail(userID, goalID string) (*GoalDetail, error) {
	goal, err := s.GetGoalByID(userID, goalID)
	if err != nil {
		return nil, err
	}

	detail := &GoalDetail{Goal: *goal}
	progress, err := report.Progress(*goal, time.Now())
	if err == nil {
		detail.Progress = &progress
	}
	return detail, nil
}

// UpdateGoal updates a goal's mutable fields.
func (s *goalService) UpdateGoal(userID, goalID string, fields GoalUpdateFields) (*models.Goal, error) {
	goal, err := s.GetGoalByID(userID, goalID)
	if err != nil {
		return nil, err
	}

	updates := make(map[string]interface{})
	if fields.Name != nil && *fields.Name != "" {
		updates["name"] = *fields.Name
	}
	if fields.Description != nil {
		updates["description"] = *fields.Description
	}
	if fields.TargetAmount != nil {
		if *fields.TargetAmount <= 0 {
			return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "target amount must be greater than zero")
		}
		updates["target_amount"] = *fields.TargetAmount
	}
	if fields.TargetDate != nil {
		updates["target_date"] = *fields.TargetDate
	}
	if fields.Priority != nil {
		updates["priority"] = *fields.Priority
	}
	if fields.Status != nil {
		updates["status"] = *fields.Status
	}

	if len(updates) > 0 {
		if err := s.db.Model(goal).Updates(updates).Error; err != nil {
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		if err := s.db.Where("id = ?", goal.ID).First(goal).Error; err != nil {
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
	}

	return goal, nil
}

// DeleteGoal soft-deletes a goal.
func (s *goalService) DeleteGoal(userID, goalID string) error {
	goal, err := s.GetGoalByID(userID, goalID)
	if err != nil {
		return err
	}

	if err := s.db.Delete(goal).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}

// AddToGoal increments a goal's saved amount. The amount may push the
// goal past its target; progress above 100% is valid.
func (s *goalService) AddToGoal(userID, goalID string, amount int64) (*models.Goal, error) {
	if amount <= 0 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "amount must be greater than zero")
	}

	goal, err := s.GetGoalByID(userID, goalID)
	if err != nil {
		return nil, err
	}

	if err := s.db.Model(goal).
		Update("current_amount", gorm.Expr("current_amount + ?", amount)).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	if err := s.db.Where("id = ?", goal.ID).First(goal).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	return goal, nil
}

// GetGoalsSummary computes the portfolio roll-up over all of the user's
// goals.
func (s *goalService) GetGoalsSummary(userID string) (*report.GoalsSummary, error) {
	var goals []models.Goal
	if err := s.db.Where("user_id = ?", userID).Find(&goals).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	summary := report.SummarizeGoals(goals)
	return &summary, nil
}
