// Command seed populates the database with demo data for local
// development. It creates a demo user with accounts, categories,
// transactions, and goals.
package main

import (
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/brianvoe/gofakeit/v6"
	"golang.org/x/crypto/bcrypt"

	"fintrack/internal/database"
	"fintrack/internal/logger"
	"fintrack/internal/models"
)

const (
	demoEmail    = "demo@fintrack.local"
	demoPassword = "demo1234"

	numCategories   = 8
	numTransactions = 120
	numGoals        = 3
)

var expenseCategories = []string{"Groceries", "Rent", "Transport", "Dining", "Utilities", "Entertainment"}
var incomeCategories = []string{"Salary", "Freelance"}

func main() {
	logger.Init(os.Getenv("ENV"))
	defer logger.Sync()

	if err := run(); err != nil {
		logger.Get().Fatalf("Seed error: %v", err)
	}
}

func run() error {
	log := logger.Get()

	dbConfig, err := database.NewConfig()
	if err != nil {
		return fmt.Errorf("failed to load database configuration: %w", err)
	}

	dbManager, err := database.NewManager(dbConfig)
	if err != nil {
		return fmt.Errorf("failed to create database manager: %w", err)
	}
	if err := dbManager.Migrate(); err != nil {
		return fmt.Errorf("failed to run database migrations: %w", err)
	}

	db := dbManager.DB()

	var existing int64
	if err := db.Model(&models.User{}).Where("email = ?", demoEmail).Count(&existing).Error; err != nil {
		return fmt.Errorf("failed to check for existing demo user: %w", err)
	}
	if existing > 0 {
		log.Infof("Demo user %s already exists, nothing to do", demoEmail)
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(demoPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash demo password: %w", err)
	}

	user := &models.User{
		Email:     demoEmail,
		Password:  string(hash),
		FirstName: gofakeit.FirstName(),
		LastName:  gofakeit.LastName(),
		IsActive:  true,
	}
	if err := db.Create(user).Error; err != nil {
		return fmt.Errorf("failed to create demo user: %w", err)
	}

	accounts := []*models.Account{
		{UserID: user.ID, Name: "Everyday Checking", Type: models.AccountTypeChecking, Currency: "USD", Bank: gofakeit.Company(), IsActive: true},
		{UserID: user.ID, Name: "Rainy Day Savings", Type: models.AccountTypeSavings, Currency: "USD", Bank: gofakeit.Company(), IsActive: true},
		{UserID: user.ID, Name: "Travel Card", Type: models.AccountTypeCredit, Currency: "USD", Bank: gofakeit.Company(), IsActive: true},
	}
	for _, account := range accounts {
		if err := db.Create(account).Error; err != nil {
			return fmt.Errorf("failed to create demo account: %w", err)
		}
	}

	var categories []*models.Category
	for _, name := range expenseCategories {
		categories = append(categories, &models.Category{
			UserID: user.ID, Name: name, Type: models.CategoryTypeExpense,
			Color: gofakeit.HexColor(),
		})
	}
	for _, name := range incomeCategories {
		categories = append(categories, &models.Category{
			UserID: user.ID, Name: name, Type: models.CategoryTypeIncome,
			Color: gofakeit.HexColor(),
		})
	}
	for _, category := range categories {
		if err := db.Create(category).Error; err != nil {
			return fmt.Errorf("failed to create demo category: %w", err)
		}
	}

	balanceDeltas := make(map[string]int64)
	for i := 0; i < numTransactions; i++ {
		category := categories[rand.Intn(len(categories))]
		account := accounts[rand.Intn(len(accounts))]

		txType := models.TransactionTypeExpense
		amount := int64(gofakeit.Number(200, 15000))
		if category.Type == models.CategoryTypeIncome {
			txType = models.TransactionTypeIncome
			amount = int64(gofakeit.Number(50000, 500000))
		}

		transaction := &models.Transaction{
			UserID:      user.ID,
			AccountID:   account.ID,
			CategoryID:  &category.ID,
			Type:        txType,
			Status:      models.TransactionStatusCompleted,
			Amount:      amount,
			Description: gofakeit.ProductName(),
			Date:        time.Now().AddDate(0, 0, -rand.Intn(180)),
		}
		if err := db.Create(transaction).Error; err != nil {
			return fmt.Errorf("failed to create demo transaction: %w", err)
		}

		delta := amount
		if txType == models.TransactionTypeExpense {
			delta = -amount
		}
		if account.Type == models.AccountTypeCredit {
			// Credit accounts track what is owed, so spending grows the balance.
			delta = -delta
		}
		balanceDeltas[account.ID] += delta
	}

	// Bring stored balances in line with the generated transactions.
	for _, account := range accounts {
		if err := db.Model(account).Update("balance", balanceDeltas[account.ID]).Error; err != nil {
			return fmt.Errorf("failed to update demo account balance: %w", err)
		}
	}

	for i := 0; i < numGoals; i++ {
		target := int64(gofakeit.Number(100000, 3000000))
		targetDate := time.Now().AddDate(0, gofakeit.Number(3, 24), 0)
		goal := &models.Goal{
			UserID:        user.ID,
			Name:          gofakeit.HackerNoun(),
			Description:   gofakeit.Sentence(6),
			TargetAmount:  target,
			CurrentAmount: int64(rand.Intn(int(target))),
			TargetDate:    &targetDate,
			Priority:      models.GoalPriorityMedium,
			Status:        models.GoalStatusActive,
		}
		if err := db.Create(goal).Error; err != nil {
			return fmt.Errorf("failed to create demo goal: %w", err)
		}
	}

	log.Infof("Seeded demo user %s (password %q) with %d accounts, %d categories, %d transactions, %d goals",
		demoEmail, demoPassword, len(accounts), len(categories), numTransactions, numGoals)
	return nil
}
