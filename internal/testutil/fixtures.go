package testutil

import (
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"fintrack/internal/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// counter provides unique values across fixtures within a test run.
var counter atomic.Int64

func nextID() int64 {
	return counter.Add(1)
}

// CreateTestUser creates a user with a hashed password and unique email.
func CreateTestUser(t *testing.T, db *gorm.DB) *models.User {
	t.Helper()
	email := fmt.Sprintf("user%d@test.com", nextID())
	return CreateTestUserWithEmail(t, db, email)
}

// CreateTestUserWithEmail creates a user with the given email.
func CreateTestUserWithEmail(t *testing.T, db *gorm.DB, email string) *models.User {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}

	user := &models.User{
		Email:    email,
		Password: string(hash),
		IsActive: true,
	}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("failed to create test user: %v", err)
	}
	return user
}

// CreateTestAccount creates a checking account with zero balance.
func CreateTestAccount(t *testing.T, db *gorm.DB, userID string) *models.Account {
	t.Helper()
	return CreateTestAccountWithBalance(t, db, userID, models.AccountTypeChecking, 0)
}

// CreateTestAccountWithBalance creates an account of the given type and
// balance (in cents).
func CreateTestAccountWithBalance(t *testing.T, db *gorm.DB, userID string, accountType models.AccountType, balance int64) *models.Account {
	t.Helper()

	account := &models.Account{
		UserID:   userID,
		Name:     fmt.Sprintf("Test Account %d", nextID()),
		Type:     accountType,
		Balance:  balance,
		Currency: "USD",
		IsActive: true,
	}
	if err := db.Create(account).Error; err != nil {
		t.Fatalf("failed to create test account: %v", err)
	}
	return account
}

// CreateTestCategory creates a category of the given type.
func CreateTestCategory(t *testing.T, db *gorm.DB, userID string, categoryType models.CategoryType) *models.Category {
	t.Helper()

	category := &models.Category{
		UserID: userID,
		Name:   fmt.Sprintf("Test Category %d", nextID()),
		Type:   categoryType,
	}
	if err := db.Create(category).Error; err != nil {
		t.Fatalf("failed to create test category: %v", err)
	}
	return category
}

// CreateTestTransaction creates a completed transaction of the given
// type and amount (in cents), dated now.
func CreateTestTransaction(t *testing.T, db *gorm.DB, userID, accountID string, txType models.TransactionType, amount int64) *models.Transaction {
	t.Helper()
	return CreateTestTransactionAt(t, db, userID, accountID, txType, amount, time.Now())
}

// CreateTestTransactionAt creates a completed transaction with an
// explicit occurrence date.
func CreateTestTransactionAt(t *testing.T, db *gorm.DB, userID, accountID string, txType models.TransactionType, amount int64, date time.Time) *models.Transaction {
	t.Helper()

	tx := &models.Transaction{
		UserID:      userID,
		AccountID:   accountID,
		Type:        txType,
		Status:      models.TransactionStatusCompleted,
		Amount:      amount,
		Description: fmt.Sprintf("Test Transaction %d", nextID()),
		Date:        date,
	}
	if err := db.Create(tx).Error; err != nil {
		t.Fatalf("failed to create test transaction: %v", err)
	}
	return tx
}

// CreateTestGoal creates an active goal with the given target and
// current amounts (in cents).
func CreateTestGoal(t *testing.T, db *gorm.DB, userID string, targetAmount, currentAmount int64) *models.Goal {
	t.Helper()

	goal := &models.Goal{
		UserID:        userID,
		Name:          fmt.Sprintf("Test Goal %d", nextID()),
		TargetAmount:  targetAmount,
		CurrentAmount: currentAmount,
		Priority:      models.GoalPriorityMedium,
		Status:        models.GoalStatusActive,
	}
	if err := db.Create(goal).Error; err != nil {
		t.Fatalf("failed to create test goal: %v", err)
	}
	return goal
}
