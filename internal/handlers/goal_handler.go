package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	apperrors "fintrack/internal/errors"
	"fintrack/internal/models"
	"fintrack/internal/pagination"
	"fintrack/internal/services"
)

// GoalHandler handles savings-goal requests.
type GoalHandler struct {
	goalService services.GoalServicer
}

// NewGoalHandler creates a new GoalHandler.
func NewGoalHandler(goalService services.GoalServicer) *GoalHandler {
	return &GoalHandler{goalService: goalService}
}

// CreateGoalRequest represents the request payload for creating a goal.
// Amounts are in minor currency units (cents).
type CreateGoalRequest struct {
	Name          string  `json:"name" binding:"required,min=1,max=100"`
	Description   string  `json:"description" binding:"max=500"`
	TargetAmount  int64   `json:"target_amount" binding:"required,gt=0"`
	CurrentAmount int64   `json:"current_amount" binding:"gte=0"`
	TargetDate    *string `json:"target_date"`
	Priority      string  `json:"priority" binding:"omitempty,goal_priority"`
}

// UpdateGoalRequest represents the request payload for updating a goal.
// Sending target_date as null clears the deadline.
type UpdateGoalRequest struct {
	Name         *string       `json:"name" binding:"omitempty,min=1,max=100"`
	Description  *string       `json:"description" binding:"omitempty,max=500"`
	TargetAmount *int64        `json:"target_amount" binding:"omitempty,gt=0"`
	TargetDate   OptionalField `json:"target_date"`
	Priority     *string       `json:"priority" binding:"omitempty,goal_priority"`
	Status       *string       `json:"status" binding:"omitempty,goal_status"`
}

// AddProgressRequest represents the request payload for adding saved
// money to a goal.
type AddProgressRequest struct {
	Amount int64 `json:"amount" binding:"required,gt=0"`
}

// CreateGoal handles the creation of a new savings goal
// @Summary     Create a goal
// @Description Create a new savings goal for the authenticated user
// @Tags        goals
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body CreateGoalRequest true "Goal data"
// @Success     201 {object} models.Goal "Goal created"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Router      /goals [post]
func (h *GoalHandler) CreateGoal(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req CreateGoalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	var targetDate *time.Time
	if req.TargetDate != nil && *req.TargetDate != "" {
		parsed, err := parseFlexibleTime(*req.TargetDate)
		if err != nil {
			respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
			return
		}
		targetDate = &parsed
	}

	goal, err := h.goalService.CreateGoal(
		userID, req.Name, req.Description,
		req.TargetAmount, req.CurrentAmount, targetDate,
		models.GoalPriority(req.Priority),
	)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, goal)
}

// ListGoals returns the authenticated user's goals
// @Summary     List goals
// @Description Get a paginated list of goals, optionally filtered by status
// @Tags        goals
// @Produce     json
// @Security    BearerAuth
// @Param       page query int false "Page number" default(1)
// @Param       page_size query int false "Items per page" default(20)
// @Param       status query string false "Goal status" Enums(active, completed, paused)
// @Success     200 {object} pagination.PageResponse[models.Goal] "Goals"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Router      /goals [get]
func (h *GoalHandler) ListGoals(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var page pagination.PageRequest
	if err := c.ShouldBindQuery(&page); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	var status *models.GoalStatus
	if raw := c.Query("status"); raw != "" {
		gs := models.GoalStatus(raw)
		if gs != models.GoalStatusActive && gs != models.GoalStatusCompleted && gs != models.GoalStatusPaused {
			respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, "Invalid goal status"))
			return
		}
		status = &gs
	}

	result, err := h.goalService.GetUserGoals(userID, page, status)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// GetGoalsSummary returns aggregate progress across all goals
// @Summary     Goals summary
// @Description Get active goal count, average progress, and saved/target totals
// @Tags        goals
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} report.GoalsSummary "Summary"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Router      /goals/summary [get]
func (h *GoalHandler) GetGoalsSummary(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	summary, err := h.goalService.GetGoalsSummary(userID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, summary)
}

// GetGoal returns a single goal with its computed progress
// @Summary     Get a goal
// @Description Get one of the authenticated user's goals by ID, with progress
// @Tags        goals
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Goal ID"
// @Success     200 {object} services.GoalDetail "Goal with progress"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Goal not found"
// @Router      /goals/{id} [get]
func (h *GoalHandler) GetGoal(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	goalID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	detail, err := h.goalService.GetGoalDetail(userID, goalID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, detail)
}

// UpdateGoal updates a goal
// @Summary     Update a goal
// @Description Update fields of one of the authenticated user's goals
// @Tags        goals
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Goal ID"
// @Param       request body UpdateGoalRequest true "Fields to update"
// @Success     200 {object} models.Goal "Updated goal"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Goal not found"
// @Router      /goals/{id} [put]
func (h *GoalHandler) UpdateGoal(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	goalID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req UpdateGoalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	fields := services.GoalUpdateFields{
		Name:         req.Name,
		Description:  req.Description,
		TargetAmount: req.TargetAmount,
	}
	if req.Priority != nil {
		gp := models.GoalPriority(*req.Priority)
		fields.Priority = &gp
	}
	if req.Status != nil {
		gs := models.GoalStatus(*req.Status)
		fields.Status = &gs
	}
	if req.TargetDate.Present {
		if req.TargetDate.Value == nil {
			var cleared *time.Time
			fields.TargetDate = &cleared
		} else {
			parsed, err := parseFlexibleTime(*req.TargetDate.Value)
			if err != nil {
				respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
				return
			}
			date := &parsed
			fields.TargetDate = &date
		}
	}

	goal, err := h.goalService.UpdateGoal(userID, goalID, fields)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, goal)
}

// DeleteGoal deletes a goal
// @Summary     Delete a goal
// @Description Delete one of the authenticated user's goals
// @Tags        goals
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Goal ID"
// @Success     200 {object} MessageResponse "Goal deleted"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Goal not found"
// @Router      /goals/{id} [delete]
func (h *GoalHandler) DeleteGoal(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	goalID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.goalService.DeleteGoal(userID, goalID); err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Goal deleted"})
}

// AddProgress adds saved money to a goal
// @Summary     Add goal progress
// @Description Add an amount to a goal's current saved total. The total may exceed the target.
// @Tags        goals
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Goal ID"
// @Param       request body AddProgressRequest true "Amount to add in cents"
// @Success     200 {object} models.Goal "Updated goal"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Goal not found"
// @Router      /goals/{id}/progress [post]
func (h *GoalHandler) AddProgress(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	goalID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req AddProgressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	goal, err := h.goalService.AddToGoal(userID, goalID, req.Amount)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, goal)
}
