package services

import (
	"gorm.io/gorm"

	apperrors "finmon/internal/errors"
	"finmon/internal/models"
)

// categoryService handles category-related business logic.
type categoryService struct {
	db *gorm.DB
}

// NewCategoryService creates a new CategoryServicer.
func NewCategoryService(db *gorm.DB) CategoryServicer {
	return &categoryService{db: db}
}

// ListCategories retrieves every category visible to a user: the global
// defaults plus the user's own, ordered by name.
func (s *categoryService) ListCategories(userID uint) ([]models.Category, error) {
	var categories []models.Category
	if err := s.db.
		Where("user_id = ? OR user_id IS NULL", userID).
		Order("name ASC").
		Find(&categories).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return categories, nil
}

// CreateCategory creates a new category owned by the user. An unknown or
// omitted type is coerced to "both" rather than rejected.
func (s *categoryService) CreateCategory(userID uint, name string, categoryType models.CategoryType) (*models.Category, error) {
	if name == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "category name is required")
	}
	if !categoryType.Valid() {
		categoryType = models.CategoryTypeBoth
	}

	category := &models.Category{
		Name:   name,
		Type:   categoryType,
		UserID: &userID,
	}

	if err := s.db.Create(category).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	return category, nil
}

// UpdateCategory replaces the name and type of a category owned by the
// user. The lookup is owner-scoped: another user's category, and any global
// category, is reported as not found.
func (s *categoryService) UpdateCategory(userID, categoryID uint, name string, categoryType models.CategoryType) (*models.Category, error) {
	if name == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "category name is required")
	}
	if !categoryType.Valid() {
		categoryType = models.CategoryTypeBoth
	}

	result := s.db.Model(&models.Category{}).
		Where("id = ? AND user_id = ?", categoryID, userID).
		Updates(map[string]interface{}{"name": name, "type": categoryType})
	if result.Error != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, apperrors.ErrCategoryNotFound
	}

	var category models.Category
	if err := s.db.First(&category, categoryID).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &category, nil
}

// DeleteCategory removes a category owned by the user. Transactions that
// reference the category by name keep their stored text. Deleting a row
// that was already deleted reports not found rather than succeeding.
func (s *categoryService) DeleteCategory(userID, categoryID uint) error {
	result := s.db.
		Where("id = ? AND user_id = ?", categoryID, userID).
		Delete(&models.Category{})
	if result.Error != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.ErrCategoryNotFound
	}
	return nil
}
