package models

// CategoryType represents the type of category.
type CategoryType string

const (
	CategoryTypeIncome  CategoryType = "income"
	CategoryTypeExpense CategoryType = "expense"
)

// Category represents a transaction category. A category's type should
// match the direction of the transactions filed under it; the service
// layer enforces this at assignment time.
type Category struct {
	Base
	UserID   string       `gorm:"type:uuid;not null;index" json:"user_id"`
	Name     string       `gorm:"not null" json:"name"`
	Type     CategoryType `gorm:"not null" json:"type"`
	Icon     string       `json:"icon,omitempty"`
	Color    string       `json:"color,omitempty"`
	ParentID *string      `gorm:"type:uuid" json:"parent_id,omitempty"`

	Parent       *Category     `gorm:"foreignKey:ParentID" json:"parent,omitempty"`
	Children     []Category    `gorm:"foreignKey:ParentID" json:"children,omitempty"`
	Transactions []Transaction `gorm:"foreignKey:CategoryID" json:"transactions,omitempty"`
}
