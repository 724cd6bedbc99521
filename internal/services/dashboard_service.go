package services

import (
	"time"

	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"

	apperrors "fintrack/internal/errors"
	"fintrack/internal/models"
	"fintrack/internal/report"
)

// recentTransactionLimit caps the dashboard's recent-activity list.
const recentTransactionLimit = 10

// dashboardService assembles the dashboard overview. It fetches the
// user's collections and hands them to the pure report functions; the
// aggregations themselves never touch the database.
type dashboardService struct {
	db *gorm.DB
}

// NewDashboardService creates a new DashboardServicer.
func NewDashboardService(db *gorm.DB) DashboardServicer {
	return &dashboardService{db: db}
}

// GetOverview computes the full dashboard roll-up for one user and
// period. The three collections are fetched concurrently; each summary
// is then a pure function of its snapshot.
func (s *dashboardService) GetOverview(userID string, period report.Period) (*Overview, error) {
	if err := period.Validate(); err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInvalidPeriod, err)
	}

	var (
		transactions []models.Transaction
		accounts     []models.Account
		goals        []models.Goal
	)

	var g errgroup.Group
	g.Go(func() error {
		return s.db.Where("user_id = ?", userID).Order("date DESC").Find(&transactions).Error
	})
	g.Go(func() error {
		return s.db.Where("user_id = ?", userID).Find(&accounts).Error
	})
	g.Go(func() error {
		return s.db.Where("user_id = ?", userID).Find(&goals).Error
	})
	if err := g.Wait(); err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	now := time.Now()
	retained := report.FilterByPeriod(transactions, period, now)

	recent := retained
	if len(recent) > recentTransactionLimit {
		recent = recent[:recentTransactionLimit]
	}

	return &Overview{
		Period:             period.Kind,
		Transactions:       report.Summarize(transactions, period, now),
		ByCategory:         report.SummarizeByCategory(transactions, period, now),
		Accounts:           report.SummarizeAccounts(accounts),
		Goals:              report.SummarizeGoals(goals),
		RecentTransactions: recent,
	}, nil
}
