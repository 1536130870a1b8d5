package services

import "finmon/internal/models"

// UserServicer defines the contract for user-related business logic.
type UserServicer interface {
	Register(name, email, password string) (*models.User, error)
	AttemptLogin(email, password string) (*models.User, error)
	GetUserByID(id uint) (*models.User, error)
	VerifyPassword(user *models.User, password string) bool
}

// CategoryServicer defines the contract for category-related business logic.
type CategoryServicer interface {
	ListCategories(userID uint) ([]models.Category, error)
	CreateCategory(userID uint, name string, categoryType models.CategoryType) (*models.Category, error)
	UpdateCategory(userID, categoryID uint, name string, categoryType models.CategoryType) (*models.Category, error)
	DeleteCategory(userID, categoryID uint) error
}

// TransactionServicer defines the contract for transaction-related business logic.
type TransactionServicer interface {
	ListTransactions(userID uint) ([]models.Transaction, error)
	CreateTransaction(userID uint, description string, amount models.Amount, transactionType models.TransactionType, category string, date models.Date) (*models.Transaction, error)
	DeleteTransaction(userID, transactionID uint) error
}
