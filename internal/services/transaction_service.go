package services

import (
	"errors"
	"time"

	"gorm.io/gorm"

	apperrors "fintrack/internal/errors"
	"fintrack/internal/models"
	"fintrack/internal/pagination"
)

// transactionService handles transaction-related business logic.
// Account balances only ever reflect completed transactions: pending
// and cancelled ones are stored but have no balance effect until a
// status change says otherwise.
type transactionService struct {
	db             *gorm.DB
	accountService AccountServicer
}

// NewTransactionService creates a new TransactionServicer.
func NewTransactionService(db *gorm.DB, accountService AccountServicer) TransactionServicer {
	return &transactionService{
		db:             db,
		accountService: accountService,
	}
}

// CreateTransaction creates a new transaction for a user's account.
func (s *transactionService) CreateTransaction(userID, accountID string, categoryID *string, transactionType models.TransactionType, status models.TransactionStatus, amount int64, description, notes string, date time.Time) (*models.Transaction, error) {
	if amount <= 0 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "amount must be greater than zero")
	}

	if accountID == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "account ID is required")
	}

	if status == "" {
		status = models.TransactionStatusCompleted
	}

	if date.IsZero() {
		date = time.Now()
	}

	account, err := s.accountService.GetAccountByID(userID, accountID)
	if err != nil {
		return nil, err
	}

	if categoryID != nil {
		if err := s.checkCategoryType(userID, *categoryID, transactionType); err != nil {
			return nil, err
		}
	}

	transaction := &models.Transaction{
		UserID:      userID,
		AccountID:   account.ID,
		CategoryID:  categoryID,
		Type:        transactionType,
		Status:      status,
		Amount:      amount,
		Description: description,
		Notes:       notes,
		Date:        date,
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(transaction).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}

		if status == models.TransactionStatusCompleted {
			if err := s.accountService.ApplyBalanceChange(tx, account, transactionType, amount); err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return transaction, nil
}

// GetUserTransactions retrieves a paginated, filtered list of all
// transactions for the user.
func (s *transactionService) GetUserTransactions(userID string, page pagination.PageRequest, filter TransactionFilter) (*pagination.PageResponse[models.Transaction], error) {
	page.Defaults()

	base := s.db.Model(&models.Transaction{}).Where("user_id = ?", userID)
	base = applyTransactionFilters(base, filter)

	return s.listTransactions(base, page)
}

// GetAccountTransactions retrieves a paginated, filtered list of
// transactions for a specific account.
func (s *transactionService) GetAccountTransactions(userID, accountID string, page pagination.PageRequest, filter TransactionFilter) (*pagination.PageResponse[models.Transaction], error) {
	// First verify the account belongs to the user
	if _, err := s.accountService.GetAccountByID(userID, accountID); err != nil {
		return nil, err
	}

	page.Defaults()

	base := s.db.Model(&models.Transaction{}).Where("user_id = ? AND account_id = ?", userID, accountID)
	base = applyTransactionFilters(base, filter)

	return s.listTransactions(base, page)
}

func (s *transactionService) listTransactions(base *gorm.DB, page pagination.PageRequest) (*pagination.PageResponse[models.Transaction], error) {
	var totalItems int64
	if err := base.Count(&totalItems).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var transactions []models.Transaction
	if err := base.Scopes(pagination.Paginate(page)).
		Order("date DESC").
		Find(&transactions).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	result := pagination.NewPageResponse(transactions, page.Page, page.PageSize, totalItems)
	return &result, nil
}

func applyTransactionFilters(q *gorm.DB, f TransactionFilter) *gorm.DB {
	if f.FromDate != nil {
		q = q.Where("date >= ?", *f.FromDate)
	}
	if f.ToDate != nil {
		q = q.Where("date <= ?", *f.ToDate)
	}
	if f.Type != nil {
		q = q.Where("type = ?", *f.Type)
	}
	if f.Status != nil {
		q = q.Where("status = ?", *f.Status)
	}
	if f.CategoryID != nil {
		q = q.Where("category_id = ?", *f.CategoryID)
	}
	if f.AccountID != nil {
		q = q.Where("account_id = ?", *f.AccountID)
	}
	if f.MinAmount != nil {
		q = q.Where("amount >= ?", *f.MinAmount)
	}
	if f.MaxAmount != nil {
		q = q.Where("amount <= ?", *f.MaxAmount)
	}
	if f.Search != nil && *f.Search != "" {
		pattern := "%" + *f.Search + "%"
		q = q.Where("description LIKE ? OR notes LIKE ?", pattern, pattern)
	}
	return q
}

// GetTransactionByID retrieves a transaction by ID for a specific user.
func (s *transactionService) GetTransactionByID(userID, transactionID string) (*models.Transaction, error) {
	var transaction models.Transaction
	if err := s.db.Where("id = ? AND user_id = ?", transactionID, userID).First(&transaction).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTransactionNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &transaction, nil
}

// UpdateTransaction updates a transaction and keeps the account balance
// consistent: the old completed effect is reversed, then the new one
// applied, inside one database transaction.
func (s *transactionService) UpdateTransaction(userID, transactionID string, fields TransactionUpdateFields) (*models.Transaction, error) {
	transaction, err := s.GetTransactionByID(userID, transactionID)
	if err != nil {
		return nil, err
	}

	oldAccount, err := s.accountService.GetAccountByID(userID, transaction.AccountID)
	if err != nil {
		return nil, err
	}

	// Resolve the post-update shape before touching anything.
	newAccountID := transaction.AccountID
	if fields.AccountID != nil {
		newAccountID = *fields.AccountID
	}
	newType := transaction.Type
	if fields.Type != nil {
		newType = *fields.Type
	}
	newStatus := transaction.Status
	if fields.Status != nil {
		newStatus = *fields.Status
	}
	newAmount := transaction.Amount
	if fields.Amount != nil {
		if *fields.Amount <= 0 {
			return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "amount must be greater than zero")
		}
		newAmount = *fields.Amount
	}
	newCategoryID := transaction.CategoryID
	if fields.CategoryID != nil {
		newCategoryID = *fields.CategoryID
	}

	newAccount := oldAccount
	if newAccountID != transaction.AccountID {
		newAccount, err = s.accountService.GetAccountByID(userID, newAccountID)
		if err != nil {
			return nil, err
		}
	}

	if newCategoryID != nil {
		if err := s.checkCategoryType(userID, *newCategoryID, newType); err != nil {
			return nil, err
		}
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		// Reverse the old effect if it had one.
		if transaction.Status == models.TransactionStatusCompleted {
			if err := s.accountService.ApplyBalanceChange(tx, oldAccount, opposite(transaction.Type), transaction.Amount); err != nil {
				return err
			}
		}

		updates := map[string]interface{}{
			"account_id":  newAccountID,
			"category_id": newCategoryID,
			"type":        newType,
			"status":      newStatus,
			"amount":      newAmount,
		}
		if fields.Description != nil {
			updates["description"] = *fields.Description
		}
		if fields.Notes != nil {
			updates["notes"] = *fields.Notes
		}
		if fields.Date != nil {
			updates["date"] = *fields.Date
		}

		if err := tx.Model(transaction).Updates(updates).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}

		// Apply the new effect if it has one.
		if newStatus == models.TransactionStatusCompleted {
			if err := s.accountService.ApplyBalanceChange(tx, newAccount, newType, newAmount); err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return s.GetTransactionByID(userID, transactionID)
}

// DeleteTransaction soft-deletes a transaction, reversing its balance
// effect when it was completed.
func (s *transactionService) DeleteTransaction(userID, transactionID string) error {
	transaction, err := s.GetTransactionByID(userID, transactionID)
	if err != nil {
		return err
	}

	account, err := s.accountService.GetAccountByID(userID, transaction.AccountID)
	if err != nil {
		return err
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(transaction).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}

		if transaction.Status == models.TransactionStatusCompleted {
			if err := s.accountService.ApplyBalanceChange(tx, account, opposite(transaction.Type), transaction.Amount); err != nil {
				return err
			}
		}

		return nil
	})
}

// checkCategoryType verifies the category exists, belongs to the user,
// and matches the transaction's direction.
func (s *transactionService) checkCategoryType(userID, categoryID string, transactionType models.TransactionType) error {
	var category models.Category
	if err := s.db.Where("id = ? AND user_id = ?", categoryID, userID).First(&category).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrCategoryNotFound
		}
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if string(category.Type) != string(transactionType) {
		return apperrors.ErrCategoryTypeMismatch
	}
	return nil
}

func opposite(t models.TransactionType) models.TransactionType {
	if t == models.TransactionTypeIncome {
		return models.TransactionTypeExpense
	}
	return models.TransactionTypeIncome
}
