// Package services contains the business logic of the fintrack API.
// Each service is constructed over a *gorm.DB and exposed through a
// Servicer interface so handlers can be tested against mocks.
package services

import (
	"time"

	"gorm.io/gorm"

	"fintrack/internal/models"
	"fintrack/internal/pagination"
	"fintrack/internal/report"
)

// UserServicer defines the contract for user-related business logic.
type UserServicer interface {
	CreateUser(email, password, firstName, lastName string) (*models.User, error)
	GetUserByEmail(email string) (*models.User, error)
	GetUserByID(id string) (*models.User, error)
	VerifyPassword(user *models.User, password string) bool
	AttemptLogin(email, password string) (*models.User, error)
	UpdateProfile(userID string, firstName, lastName *string) (*models.User, error)
	StoreRefreshTokenHash(userID, tokenHash string) error
	GetRefreshTokenHash(userID string) (string, error)
}

// AccountUpdateFields holds the optional fields of an account update.
// Nil pointers leave the stored value unchanged.
type AccountUpdateFields struct {
	Name          *string
	Bank          *string
	AccountNumber *string
	Color         *string
	IsActive      *bool
}

// AccountServicer defines the contract for account-related business logic.
type AccountServicer interface {
	CreateAccount(userID, name string, accountType models.AccountType, currency, bank, accountNumber, color string, initialBalance int64) (*models.Account, error)
	GetUserAccounts(userID string, page pagination.PageRequest) (*pagination.PageResponse[models.Account], error)
	GetAccountByID(userID, accountID string) (*models.Account, error)
	UpdateAccount(userID, accountID string, fields AccountUpdateFields) (*models.Account, error)
	DeleteAccount(userID, accountID string) error
	GetAccountsSummary(userID string) (*report.AccountsSummary, error)
	ApplyBalanceChange(tx *gorm.DB, account *models.Account, transactionType models.TransactionType, amount int64) error
}

// CategoryServicer defines the contract for category-related business logic.
type CategoryServicer interface {
	CreateCategory(userID, name string, categoryType models.CategoryType, icon, color string, parentID *string) (*models.Category, error)
	GetUserCategories(userID string, page pagination.PageRequest, categoryType *models.CategoryType) (*pagination.PageResponse[models.Category], error)
	GetCategoryByID(userID, categoryID string) (*models.Category, error)
	UpdateCategory(userID, categoryID, name, icon, color string, parentID *string) (*models.Category, error)
	DeleteCategory(userID, categoryID string) error
}

// TransactionFilter holds optional filter parameters for listing
// transactions.
type TransactionFilter struct {
	FromDate   *time.Time
	ToDate     *time.Time
	Type       *models.TransactionType
	Status     *models.TransactionStatus
	CategoryID *string
	AccountID  *string
	MinAmount  *int64
	MaxAmount  *int64
	Search     *string
}

// TransactionUpdateFields holds the optional fields of a transaction
// update. CategoryID uses a double pointer: nil means unchanged, a
// pointer to nil clears the category.
type TransactionUpdateFields struct {
	AccountID   *string
	CategoryID  **string
	Type        *models.TransactionType
	Status      *models.TransactionStatus
	Amount      *int64
	Description *string
	Notes       *string
	Date        *time.Time
}

// TransactionServicer defines the contract for transaction-related
// business logic.
type TransactionServicer interface {
	CreateTransaction(userID, accountID string, categoryID *string, transactionType models.TransactionType, status models.TransactionStatus, amount int64, description, notes string, date time.Time) (*models.Transaction, error)
	GetUserTransactions(userID string, page pagination.PageRequest, filter TransactionFilter) (*pagination.PageResponse[models.Transaction], error)
	GetAccountTransactions(userID, accountID string, page pagination.PageRequest, filter TransactionFilter) (*pagination.PageResponse[models.Transaction], error)
	GetTransactionByID(userID, transactionID string) (*models.Transaction, error)
	UpdateTransaction(userID, transactionID string, fields TransactionUpdateFields) (*models.Transaction, error)
	DeleteTransaction(userID, transactionID string) error
}

// GoalUpdateFields holds the optional fields of a goal update.
// TargetDate uses a double pointer: nil means unchanged, a pointer to
// nil clears the date.
type GoalUpdateFields struct {
	Name         *string
	Description  *string
	TargetAmount *int64
	TargetDate   **time.Time
	Priority     *models.GoalPriority
	Status       *models.GoalStatus
}

// GoalDetail pairs a goal with its computed progress. Progress is nil
// when the goal has no target amount set.
type GoalDetail struct {
	Goal     models.Goal          `json:"goal"`
	Progress *report.GoalProgress `json:"progress,omitempty"`
}

// GoalServicer defines the contract for savings-goal business logic.
type GoalServicer interface {
	CreateGoal(userID, name, description string, targetAmount, currentAmount int64, targetDate *time.Time, priority models.GoalPriority) (*models.Goal, error)
	GetUserGoals(userID string, page pagination.PageRequest, status *models.GoalStatus) (*pagination.PageResponse[models.Goal], error)
	GetGoalByID(userID, goalID string) (*models.Goal, error)
	GetGoalDetail(userID, goalID string) (*GoalDetail, error)
	UpdateGoal(userID, goalID string, fields GoalUpdateFields) (*models.Goal, error)
	DeleteGoal(userID, goalID string) error
	AddToGoal(userID, goalID string, amount int64) (*models.Goal, error)
	GetGoalsSummary(userID string) (*report.GoalsSummary, error)
}

// SettingsUpdateFields holds the optional fields of a settings update.
type SettingsUpdateFields struct {
	Currency           *string
	Language           *string
	Theme              *models.Theme
	NotifyEmail        *bool
	NotifyPush         *bool
	NotifyTransactions *bool
	NotifyGoals        *bool
	NotifyReports      *bool
}

// SettingsServicer defines the contract for user settings.
type SettingsServicer interface {
	GetSettings(userID string) (*models.UserSettings, error)
	UpdateSettings(userID string, fields SettingsUpdateFields) (*models.UserSettings, error)
}

// Overview is the dashboard roll-up for one user and period.
type Overview struct {
	Period             report.PeriodKind      `json:"period"`
	Transactions       report.Summary         `json:"transactions"`
	ByCategory         []report.CategoryTotal `json:"by_category"`
	Accounts           report.AccountsSummary `json:"accounts"`
	Goals              report.GoalsSummary    `json:"goals"`
	RecentTransactions []models.Transaction   `json:"recent_transactions"`
}

// DashboardServicer defines the contract for dashboard summaries.
type DashboardServicer interface {
	GetOverview(userID string, period report.Period) (*Overview, error)
}
