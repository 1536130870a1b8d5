package database

import (
	"fmt"

	"gorm.io/gorm"

	"finmon/internal/logger"
	"finmon/internal/models"
)

// defaultCategories are the ten global categories available to every user:
// six expense, three income, one usable for both. Global rows have no owner
// and cannot be changed through the user-facing API.
var defaultCategories = []models.Category{
	{Name: "Food", Type: models.CategoryTypeExpense},
	{Name: "Transport", Type: models.CategoryTypeExpense},
	{Name: "Bills", Type: models.CategoryTypeExpense},
	{Name: "Leisure", Type: models.CategoryTypeExpense},
	{Name: "Health", Type: models.CategoryTypeExpense},
	{Name: "Education", Type: models.CategoryTypeExpense},
	{Name: "Salary", Type: models.CategoryTypeIncome},
	{Name: "Freelance", Type: models.CategoryTypeIncome},
	{Name: "Investments", Type: models.CategoryTypeIncome},
	{Name: "Other", Type: models.CategoryTypeBoth},
}

// SeedDefaultCategories inserts the default global categories exactly once.
// The insert is gated on a count of existing global rows, so running it on
// every startup is safe.
func SeedDefaultCategories(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.Category{}).Where("user_id IS NULL").Count(&count).Error; err != nil {
		return fmt.Errorf("failed to count default categories: %w", err)
	}
	if count > 0 {
		logger.Get().Debugf("Default categories already seeded (%d present)", count)
		return nil
	}

	seed := make([]models.Category, len(defaultCategories))
	copy(seed, defaultCategories)
	if err := db.Create(&seed).Error; err != nil {
		return fmt.Errorf("failed to seed default categories: %w", err)
	}

	logger.Get().Infof("Seeded %d default categories", len(seed))
	return nil
}
