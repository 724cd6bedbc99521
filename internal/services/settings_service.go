package services

import (
	"errors"

	"gorm.io/gorm"

	apperrors "fintrack/internal/errors"
	"fintrack/internal/models"
)

// settingsService handles user settings.
type settingsService struct {
	db *gorm.DB
}

// NewSettingsService creates a new SettingsServicer.
func NewSettingsService(db *gorm.DB) SettingsServicer {
	return &settingsService{db: db}
}

// GetSettings returns the user's settings, creating a row with defaults
// on first access.
func (s *settingsService) GetSettings(userID string) (*models.UserSettings, error) {
	var settings models.UserSettings
	err := s.db.Where("user_id = ?", userID).First(&settings).Error
	if err == nil {
		return &settings, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	settings = models.UserSettings{
		UserID:             userID,
		Currency:           "USD",
		Language:           "en",
		Theme:              models.ThemeSystem,
		NotifyEmail:        true,
		NotifyPush:         true,
		NotifyTransactions: true,
		NotifyGoals:        true,
	}
	if err := s.db.Create(&settings).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &settings, nil
}

// UpdateSettings applies the given changes to the user's settings.
func (s *settingsService) UpdateSettings(userID string, fields SettingsUpdateFields) (*models.UserSettings, error) {
	settings, err := s.GetSettings(userID)
	if err != nil {
		return nil, err
	}

	updates := make(map[string]interface{})
	if fields.Currency != nil {
		updates["currency"] = *fields.Currency
	}
	if fields.Language != nil {
		updates["language"] = *fields.Language
	}
	if fields.Theme != nil {
		updates["theme"] = *fields.Theme
	}
	if fields.NotifyEmail != nil {
		updates["notify_email"] = *fields.NotifyEmail
	}
	if fields.NotifyPush != nil {
		updates["notify_push"] = *fields.NotifyPush
	}
	if fields.NotifyTransactions != nil {
		updates["notify_transactions"] = *fields.NotifyTransactions
	}
	if fields.NotifyGoals != nil {
		updates["notify_goals"] = *fields.NotifyGoals
	}
	if fields.NotifyReports != nil {
		updates["notify_reports"] = *fields.NotifyReports
	}

	if len(updates) > 0 {
		if err := s.db.Model(settings).Updates(updates).Error; err != nil {
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
	}

	return settings, nil
}
