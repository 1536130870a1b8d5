package models

// TransactionType represents the type of transaction
type TransactionType string

const (
	TransactionTypeIncome  TransactionType = "income"
	TransactionTypeExpense TransactionType = "expense"
)

// Valid reports whether the transaction type is one of the enumerated values.
func (t TransactionType) Valid() bool {
	return t == TransactionTypeIncome || t == TransactionTypeExpense
}

// Transaction represents a financial transaction. Category is a free-text
// name, not a foreign key: renaming or deleting a category leaves historical
// transactions untouched. CreatedAt records when the row was inserted,
// independent of the user-supplied Date.
type Transaction struct {
	Base
	Description string          `gorm:"size:255;not null" json:"description"`
	Amount      Amount          `gorm:"type:numeric(10,2);not null" json:"amount"`
	Type        TransactionType `gorm:"size:10;not null" json:"type"`
	Category    string          `gorm:"size:100" json:"category"`
	Date        Date            `gorm:"type:date;not null" json:"date"`
	UserID      uint            `gorm:"not null;index" json:"user_id"`
}
