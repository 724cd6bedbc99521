package services

import (
	"errors"

	"gorm.io/gorm"

	apperrors "fintrack/internal/errors"
	"fintrack/internal/models"
	"fintrack/internal/pagination"
)

// categoryService handles category-related business logic.
type categoryService struct {
	db *gorm.DB
}

// NewCategoryService creates a new CategoryServicer.
func NewCategoryService(db *gorm.DB) CategoryServicer {
	return &categoryService{db: db}
}

// CreateCategory creates a new category for a user. A parent, when
// given, must belong to the same user and have the same type.
func (s *categoryService) CreateCategory(userID, name string, categoryType models.CategoryType, icon, color string, parentID *string) (*models.Category, error) {
	if name == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "category name is required")
	}

	if parentID != nil {
		parent, err := s.GetCategoryByID(userID, *parentID)
		if err != nil {
			return nil, err
		}
		if parent.Type != categoryType {
			return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "parent category has a different type")
		}
	}

	category := &models.Category{
		UserID:   userID,
		Name:     name,
		Type:     categoryType,
		Icon:     icon,
		Color:    color,
		ParentID: parentID,
	}

	if err := s.db.Create(category).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	return category, nil
}

// GetUserCategories retrieves a paginated list of a user's categories,
// optionally filtered by type, ordered by name.
func (s *categoryService) GetUserCategories(userID string, page pagination.PageRequest, categoryType *models.CategoryType) (*pagination.PageResponse[models.Category], error) {
	page.Defaults()

	base := s.db.Model(&models.Category{}).Where("user_id = ?", userID)
	if categoryType != nil {
		base = base.Where("type = ?", *categoryType)
	}

	var totalItems int64
	if err := base.Count(&totalItems).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var categories []models.Category
	if err := base.Scopes(pagination.Paginate(page)).
		Order("name ASC").
		Find(&categories).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	result := pagination.NewPageResponse(categories, page.Page, page.PageSize, totalItems)
	return &result, nil
}

// GetCategoryByID retrieves a category by ID for a specific user.
func (s *categoryService) GetCategoryByID(userID, categoryID string) (*models.Category, error) {
	var category models.Category
	if err := s.db.Where("id = ? AND user_id = ?", categoryID, userID).First(&category).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrCategoryNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &category, nil
}

// UpdateCategory updates a category's mutable fields. The type of an
// existing category is fixed; transactions filed under it rely on it.
func (s *categoryService) UpdateCategory(userID, categoryID, name, icon, color string, parentID *string) (*models.Category, error) {
	category, err := s.GetCategoryByID(userID, categoryID)
	if err != nil {
		return nil, err
	}

	if parentID != nil {
		if *parentID == categoryID {
			return nil, apperrors.ErrSelfParentCategory
		}
		parent, err := s.GetCategoryByID(userID, *parentID)
		if err != nil {
			return nil, err
		}
		if parent.Type != category.Type {
			return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "parent category has a different type")
		}
	}

	updates := make(map[string]interface{})
	if name != "" {
		updates["name"] = name
	}
	if icon != "" {
		updates["icon"] = icon
	}
	if color != "" {
		updates["color"] = color
	}
	if parentID != nil {
		updates["parent_id"] = *parentID
	}

	if len(updates) > 0 {
		if err := s.db.Model(category).Updates(updates).Error; err != nil {
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
	}

	return category, nil
}

// DeleteCategory soft-deletes a category that is not referenced by
// transactions or child categories.
func (s *categoryService) DeleteCategory(userID, categoryID string) error {
	category, err := s.GetCategoryByID(userID, categoryID)
	if err != nil {
		return err
	}

	var childCount int64
	if err := s.db.Model(&models.Category{}).Where("parent_id = ?", categoryID).Count(&childCount).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if childCount > 0 {
		return apperrors.ErrCategoryHasChildren
	}

	var txCount int64
	if err := s.db.Model(&models.Transaction{}).Where("category_id = ?", categoryID).Count(&txCount).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if txCount > 0 {
		return apperrors.ErrCategoryInUse
	}

	if err := s.db.Delete(category).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}
