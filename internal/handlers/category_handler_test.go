package handlers

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"

	apperrors "finmon/internal/errors"
	"finmon/internal/models"
	"finmon/internal/services"
)

// --- mock category service ---

type mockCategoryService struct {
	listCategoriesFn func(userID uint) ([]models.Category, error)
	createCategoryFn func(userID uint, name string, categoryType models.CategoryType) (*models.Category, error)
	updateCategoryFn func(userID, categoryID uint, name string, categoryType models.CategoryType) (*models.Category, error)
	deleteCategoryFn func(userID, categoryID uint) error
}

func (m *mockCategoryService) ListCategories(userID uint) ([]models.Category, error) {
	if m.listCategoriesFn != nil {
		return m.listCategoriesFn(userID)
	}
	return []models.Category{}, nil
}

func (m *mockCategoryService) CreateCategory(userID uint, name string, categoryType models.CategoryType) (*models.Category, error) {
	if m.createCategoryFn != nil {
		return m.createCategoryFn(userID, name, categoryType)
	}
	return &models.Category{Base: models.Base{ID: 1}, Name: name, Type: categoryType, UserID: &userID}, nil
}

func (m *mockCategoryService) UpdateCategory(userID, categoryID uint, name string, categoryType models.CategoryType) (*models.Category, error) {
	if m.updateCategoryFn != nil {
		return m.updateCategoryFn(userID, categoryID, name, categoryType)
	}
	return &models.Category{Base: models.Base{ID: categoryID}, Name: name, Type: categoryType, UserID: &userID}, nil
}

func (m *mockCategoryService) DeleteCategory(userID, categoryID uint) error {
	if m.deleteCategoryFn != nil {
		return m.deleteCategoryFn(userID, categoryID)
	}
	return nil
}

var _ services.CategoryServicer = (*mockCategoryService)(nil)

func setupCategoryRouter(handler *CategoryHandler) *gin.Engine {
	r := gin.New()
	r.Use(injectUserID(1))
	r.GET("/categories", handler.ListCategories)
	r.POST("/categories", handler.CreateCategory)
	r.PUT("/categories/:id", handler.UpdateCategory)
	r.DELETE("/categories/:id", handler.DeleteCategory)
	return r
}

func TestListCategoriesHandler(t *testing.T) {
	handler := NewCategoryHandler(&mockCategoryService{
		listCategoriesFn: func(userID uint) ([]models.Category, error) {
			return []models.Category{
				{Base: models.Base{ID: 1}, Name: "Food", Type: models.CategoryTypeExpense},
				{Base: models.Base{ID: 2}, Name: "Salary", Type: models.CategoryTypeIncome},
			}, nil
		},
	})
	r := setupCategoryRouter(handler)

	rec := performRequest(r, http.MethodGet, "/categories", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var categories []models.Category
	if err := json.Unmarshal(rec.Body.Bytes(), &categories); err != nil {
		t.Fatalf("expected a bare JSON array: %v", err)
	}
	if len(categories) != 2 {
		t.Errorf("expected 2 categories, got %d", len(categories))
	}
}

func TestCreateCategoryHandler(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		handler := NewCategoryHandler(&mockCategoryService{})
		r := setupCategoryRouter(handler)

		rec := performRequest(r, http.MethodPost, "/categories",
			`{"name":"Groceries","type":"expense"}`)
		if rec.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
		}

		var category models.Category
		if err := json.Unmarshal(rec.Body.Bytes(), &category); err != nil {
			t.Fatalf("failed to parse JSON: %v", err)
		}
		if category.Name != "Groceries" || category.Type != models.CategoryTypeExpense {
			t.Errorf("unexpected category: %+v", category)
		}
	})

	t.Run("missing_name", func(t *testing.T) {
		handler := NewCategoryHandler(&mockCategoryService{})
		r := setupCategoryRouter(handler)

		rec := performRequest(r, http.MethodPost, "/categories", `{"type":"expense"}`)
		if rec.Code != http.StatusBadRequest {
			t.Errorf("expected 400, got %d", rec.Code)
		}
	})

	t.Run("unknown_type_passed_through_for_coercion", func(t *testing.T) {
		var gotType models.CategoryType
		handler := NewCategoryHandler(&mockCategoryService{
			createCategoryFn: func(userID uint, name string, categoryType models.CategoryType) (*models.Category, error) {
				gotType = categoryType
				return &models.Category{Base: models.Base{ID: 1}, Name: name, Type: models.CategoryTypeBoth}, nil
			},
		})
		r := setupCategoryRouter(handler)

		rec := performRequest(r, http.MethodPost, "/categories",
			`{"name":"Misc","type":"savings"}`)
		if rec.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
		}
		if gotType != models.CategoryType("savings") {
			t.Errorf("expected raw type forwarded to the service, got %q", gotType)
		}
	})
}

func TestUpdateCategoryHandler(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		handler := NewCategoryHandler(&mockCategoryService{})
		r := setupCategoryRouter(handler)

		rec := performRequest(r, http.MethodPut, "/categories/42",
			`{"name":"Dining","type":"expense"}`)
		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}

		var category models.Category
		if err := json.Unmarshal(rec.Body.Bytes(), &category); err != nil {
			t.Fatalf("failed to parse JSON: %v", err)
		}
		if category.ID != 42 || category.Name != "Dining" {
			t.Errorf("unexpected category: %+v", category)
		}
	})

	t.Run("not_found", func(t *testing.T) {
		handler := NewCategoryHandler(&mockCategoryService{
			updateCategoryFn: func(userID, categoryID uint, name string, categoryType models.CategoryType) (*models.Category, error) {
				return nil, apperrors.ErrCategoryNotFound
			},
		})
		r := setupCategoryRouter(handler)

		rec := performRequest(r, http.MethodPut, "/categories/99",
			`{"name":"Dining","type":"expense"}`)
		if rec.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", rec.Code)
		}
		result := decodeBody(t, rec)
		if result["error"] != apperrors.ErrCategoryNotFound.Message {
			t.Errorf("expected not found message, got %v", result["error"])
		}
	})

	t.Run("invalid_id", func(t *testing.T) {
		handler := NewCategoryHandler(&mockCategoryService{})
		r := setupCategoryRouter(handler)

		rec := performRequest(r, http.MethodPut, "/categories/abc",
			`{"name":"Dining","type":"expense"}`)
		if rec.Code != http.StatusBadRequest {
			t.Errorf("expected 400, got %d", rec.Code)
		}
	})
}

func TestDeleteCategoryHandler(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		handler := NewCategoryHandler(&mockCategoryService{})
		r := setupCategoryRouter(handler)

		rec := performRequest(r, http.MethodDelete, "/categories/1", "")
		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		result := decodeBody(t, rec)
		if result["message"] != "Category deleted" {
			t.Errorf("unexpected message: %v", result["message"])
		}
	})

	t.Run("not_found", func(t *testing.T) {
		handler := NewCategoryHandler(&mockCategoryService{
			deleteCategoryFn: func(userID, categoryID uint) error {
				return apperrors.ErrCategoryNotFound
			},
		})
		r := setupCategoryRouter(handler)

		rec := performRequest(r, http.MethodDelete, "/categories/99", "")
		if rec.Code != http.StatusNotFound {
			t.Errorf("expected 404, got %d", rec.Code)
		}
	})
}
