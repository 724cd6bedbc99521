package models

// AccountType represents the kind of money container an account is.
type AccountType string

const (
	AccountTypeChecking   AccountType = "checking"
	AccountTypeSavings    AccountType = "savings"
	AccountTypeCredit     AccountType = "credit"
	AccountTypeInvestment AccountType = "investment"
)

// Account represents a named money container. Balance is kept in cents
// and maintained by the transaction service as completed transactions
// are created, updated, and deleted. Credit accounts carry what is owed,
// so summary views report them as debt rather than assets.
type Account struct {
	Base
	UserID        string      `gorm:"type:uuid;not null;index" json:"user_id"`
	Name          string      `gorm:"not null" json:"name"`
	Type          AccountType `gorm:"not null" json:"type"`
	Balance       int64       `gorm:"type:bigint;not null;default:0" json:"balance"`
	Currency      string      `gorm:"not null;default:'USD'" json:"currency"`
	Bank          string      `json:"bank,omitempty"`
	AccountNumber string      `json:"account_number,omitempty"`
	Color         string      `json:"color,omitempty"`
	IsActive      bool        `gorm:"default:true" json:"is_active"`

	Transactions []Transaction `gorm:"foreignKey:AccountID" json:"transactions,omitempty"`
}
