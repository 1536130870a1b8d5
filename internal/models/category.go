package models

// CategoryType represents the type of category
type CategoryType string

const (
	CategoryTypeIncome  CategoryType = "income"
	CategoryTypeExpense CategoryType = "expense"
	CategoryTypeBoth    CategoryType = "both"
)

// Valid reports whether the category type is one of the enumerated values.
func (t CategoryType) Valid() bool {
	switch t {
	case CategoryTypeIncome, CategoryTypeExpense, CategoryTypeBoth:
		return true
	}
	return false
}

// Category represents a transaction category. A nil UserID marks a global
// default category: visible to every user, mutable by none.
type Category struct {
	Base
	Name   string       `gorm:"size:100;not null" json:"name"`
	Type   CategoryType `gorm:"size:10;not null;default:both" json:"type"`
	UserID *uint        `gorm:"index" json:"user_id"`
}
