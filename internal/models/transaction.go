package models

import "time"

// TransactionType is the direction of a money movement.
type TransactionType string

const (
	TransactionTypeIncome  TransactionType = "income"
	TransactionTypeExpense TransactionType = "expense"
)

// TransactionStatus is the lifecycle state of a transaction. Cancelled
// transactions are kept for history but excluded from every aggregate
// and from account balances.
type TransactionStatus string

const (
	TransactionStatusCompleted TransactionStatus = "completed"
	TransactionStatusPending   TransactionStatus = "pending"
	TransactionStatusCancelled TransactionStatus = "cancelled"
)

// Transaction records a single money movement. Amount is always a
// non-negative number of cents; Type alone determines the sign when
// aggregating.
type Transaction struct {
	Base
	UserID      string            `gorm:"type:uuid;not null;index" json:"user_id"`
	AccountID   string            `gorm:"type:uuid;not null;index" json:"account_id"`
	CategoryID  *string           `gorm:"type:uuid" json:"category_id,omitempty"`
	Type        TransactionType   `gorm:"not null" json:"type"`
	Status      TransactionStatus `gorm:"not null;default:'completed'" json:"status"`
	Amount      int64             `gorm:"type:bigint;not null" json:"amount"`
	Description string            `json:"description"`
	Notes       string            `json:"notes,omitempty"`
	Date        time.Time         `gorm:"not null;index" json:"date"`

	Account  Account   `gorm:"foreignKey:AccountID" json:"account,omitempty"`
	Category *Category `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
}
