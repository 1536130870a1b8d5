package services

import (
	"gorm.io/gorm"

	apperrors "finmon/internal/errors"
	"finmon/internal/models"
)

// transactionService handles transaction-related business logic.
type transactionService struct {
	db *gorm.DB
}

// NewTransactionService creates a new TransactionServicer.
func NewTransactionService(db *gorm.DB) TransactionServicer {
	return &transactionService{db: db}
}

// ListTransactions retrieves all transactions owned by the user, newest
// date first. Ties on the same date keep insertion order. Any filtering by
// type is the client's concern.
func (s *transactionService) ListTransactions(userID uint) ([]models.Transaction, error) {
	var transactions []models.Transaction
	if err := s.db.
		Where("user_id = ?", userID).
		Order("date DESC").
		Order("id ASC").
		Find(&transactions).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return transactions, nil
}

// CreateTransaction records a dated income or expense entry for the user.
// The category is free text stored as-is, never checked against the
// category registry. The creation timestamp is recorded independently of
// the user-supplied date.
func (s *transactionService) CreateTransaction(
	userID uint,
	description string,
	amount models.Amount,
	transactionType models.TransactionType,
	category string,
	date models.Date,
) (*models.Transaction, error) {
	if description == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "description is required")
	}
	if amount <= 0 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "amount must be a positive number")
	}
	if !transactionType.Valid() {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "type must be income or expense")
	}
	if date.IsZero() {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "date is required")
	}

	transaction := &models.Transaction{
		Description: description,
		Amount:      amount,
		Type:        transactionType,
		Category:    category,
		Date:        date,
		UserID:      userID,
	}

	if err := s.db.Create(transaction).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	return transaction, nil
}

// DeleteTransaction removes a transaction owned by the user. The lookup is
// owner-scoped, so another user's transaction is reported as not found. A
// repeated delete of the same id is an error, not a no-op.
func (s *transactionService) DeleteTransaction(userID, transactionID uint) error {
	result := s.db.
		Where("id = ? AND user_id = ?", transactionID, userID).
		Delete(&models.Transaction{})
	if result.Error != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.ErrTransactionNotFound
	}
	return nil
}
