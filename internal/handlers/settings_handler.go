package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "fintrack/internal/errors"
	"fintrack/internal/models"
	"fintrack/internal/services"
)

// SettingsHandler handles user-settings requests.
type SettingsHandler struct {
	settingsService services.SettingsServicer
}

// NewSettingsHandler creates a new SettingsHandler.
func NewSettingsHandler(settingsService services.SettingsServicer) *SettingsHandler {
	return &SettingsHandler{settingsService: settingsService}
}

// UpdateSettingsRequest represents the request payload for updating
// settings. Omitted fields are left unchanged.
type UpdateSettingsRequest struct {
	Currency           *string `json:"currency" binding:"omitempty,iso4217"`
	Language           *string `json:"language" binding:"omitempty,min=2,max=10"`
	Theme              *string `json:"theme" binding:"omitempty,theme"`
	NotifyEmail        *bool   `json:"notify_email"`
	NotifyPush         *bool   `json:"notify_push"`
	NotifyTransactions *bool   `json:"notify_transactions"`
	NotifyGoals        *bool   `json:"notify_goals"`
	NotifyReports      *bool   `json:"notify_reports"`
}

// GetSettings returns the authenticated user's settings
// @Summary     Get settings
// @Description Get the authenticated user's settings, creating defaults on first access
// @Tags        settings
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} models.UserSettings "Settings"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Router      /settings [get]
func (h *SettingsHandler) GetSettings(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	settings, err := h.settingsService.GetSettings(userID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, settings)
}

// UpdateSettings updates the authenticated user's settings
// @Summary     Update settings
// @Description Update the authenticated user's settings
// @Tags        settings
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body UpdateSettingsRequest true "Settings fields to update"
// @Success     200 {object} models.UserSettings "Updated settings"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Router      /settings [put]
func (h *SettingsHandler) UpdateSettings(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req UpdateSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	fields := services.SettingsUpdateFields{
		Currency:           req.Currency,
		Language:           req.Language,
		NotifyEmail:        req.NotifyEmail,
		NotifyPush:         req.NotifyPush,
		NotifyTransactions: req.NotifyTransactions,
		NotifyGoals:        req.NotifyGoals,
		NotifyReports:      req.NotifyReports,
	}
	if req.Theme != nil {
		theme := models.Theme(*req.Theme)
		fields.Theme = &theme
	}

	settings, err := h.settingsService.UpdateSettings(userID, fields)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, settings)
}
