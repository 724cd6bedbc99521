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

// accountService handles account-related business logic.
type accountService struct {
	db *gorm.DB
}

// NewAccountService creates a new AccountServicer.
func NewAccountService(db *gorm.DB) AccountServicer {
	return &accountService{db: db}
}

// CreateAccount creates a new account for a user. A non-zero initial
// balance is recorded as an opening transaction so the books stay
// consistent with the balance.
func (s *accountService) CreateAccount(userID, name string, accountType models.AccountType, currency, bank, accountNumber, color string, initialBalance int64) (*models.Account, error) {
	if name == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "account name is required")
	}

	if currency == "" {
		currency = "USD"
	}

	account := &models.Account{
		UserID:        userID,
		Name:          name,
		Type:          accountType,
		Balance:       initialBalance,
		Currency:      currency,
		Bank:          bank,
		AccountNumber: accountNumber,
		Color:         color,
		IsActive:      true,
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(account).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}

		if initialBalance > 0 {
			opening := &models.Transaction{
				UserID:      userID,
				AccountID:   account.ID,
				Type:        models.TransactionTypeIncome,
				Status:      models.TransactionStatusCompleted,
				Amount:      initialBalance,
				Description: "Initial balance",
				Date:        time.Now(),
			}
			if err := tx.Create(opening).Error; err != nil {
				return apperrors.Wrap(apperrors.ErrInternalServer, err)
			}
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return account, nil
}

// GetUserAccounts retrieves a paginated list of a user's accounts,
// including inactive ones.
func (s *accountService) GetUserAccounts(userID string, page pagination.PageRequest) (*pagination.PageResponse[models.Account], error) {
	page.Defaults()

	base := s.db.Model(&models.Account{}).Where("user_id = ?", userID)

	var totalItems int64
	if err := base.Count(&totalItems).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var accounts []models.Account
	if err := base.Scopes(pagination.Paginate(page)).
		Order("created_at DESC").
		Find(&accounts).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	result := pagination.NewPageResponse(accounts, page.Page, page.PageSize, totalItems)
	return &result, nil
}

// GetAccountByID retrieves an account by ID for a specific user.
func (s *accountService) GetAccountByID(userID, accountID string) (*models.Account, error) {
	var account models.Account
	if err := s.db.Where("id = ? AND user_id = ?", accountID, userID).First(&account).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrAccountNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &account, nil
}

// UpdateAccount updates an existing account's mutable fields.
func (s *accountService) UpdateAccount(userID, accountID string, fields AccountUpdateFields) (*models.Account, error) {
	account, err := s.GetAccountByID(userID, accountID)
	if err != nil {
		return nil, err
	}

	updates := make(map[string]interface{})
	if fields.Name != nil && *fields.Name != "" {
		updates["name"] = *fields.Name
	}
	if fields.Bank != nil {
		updates["bank"] = *fields.Bank
	}
	if fields.AccountNumber != nil {
		updates["account_number"] = *fields.AccountNumber
	}
	if fields.Color != nil {
		updates["color"] = *fields.Color
	}
	if fields.IsActive != nil {
		updates["is_active"] = *fields.IsActive
	}

	if len(updates) > 0 {
		if err := s.db.Model(account).Updates(updates).Error; err != nil {
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		if err := s.db.Where("id = ?", account.ID).First(account).Error; err != nil {
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
	}

	return account, nil
}

// DeleteAccount soft-deletes an account that has no transactions.
func (s *accountService) DeleteAccount(userID, accountID string) error {
	account, err := s.GetAccountByID(userID, accountID)
	if err != nil {
		return err
	}

	var txCount int64
	if err := s.db.Model(&models.Transaction{}).Where("account_id = ?", accountID).Count(&txCount).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if txCount > 0 {
		return apperrors.ErrAccountInUse
	}

	if err := s.db.Delete(account).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}

// GetAccountsSummary computes the asset/debt roll-up over all of the
// user's accounts.
func (s *accountService) GetAccountsSummary(userID string) (*report.AccountsSummary, error) {
	var accounts []models.Account
	if err := s.db.Where("user_id = ?", userID).Find(&accounts).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	summary := report.SummarizeAccounts(accounts)
	return &summary, nil
}

// ApplyBalanceChange adjusts an account balance for one transaction.
// Credit accounts carry what is owed, so the sign flips for them:
// expenses grow the debt, income (payments) shrink it.
func (s *accountService) ApplyBalanceChange(tx *gorm.DB, account *models.Account, transactionType models.TransactionType, amount int64) error {
	switch transactionType {
	case models.TransactionTypeIncome:
		if account.Type == models.AccountTypeCredit {
			account.Balance -= amount
		} else {
			account.Balance += amount
		}
	case models.TransactionTypeExpense:
		if account.Type == models.AccountTypeCredit {
			account.Balance += amount
		} else {
			account.Balance -= amount
		}
	default:
		return apperrors.ErrInvalidTransactionType
	}

	if err := tx.Model(account).Update("balance", account.Balance).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}
