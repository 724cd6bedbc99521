package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "fintrack/internal/errors"
	"fintrack/internal/models"
	"fintrack/internal/pagination"
	"fintrack/internal/services"
)

// CategoryHandler handles category-related requests.
type CategoryHandler struct {
	categoryService services.CategoryServicer
}

// NewCategoryHandler creates a new CategoryHandler.
func NewCategoryHandler(categoryService services.CategoryServicer) *CategoryHandler {
	return &CategoryHandler{categoryService: categoryService}
}

// CreateCategoryRequest represents the request payload for creating a category.
type CreateCategoryRequest struct {
	Name     string  `json:"name" binding:"required,min=1,max=100"`
	Type     string  `json:"type" binding:"required,category_type"`
	Icon     string  `json:"icon" binding:"max=50"`
	Color    string  `json:"color" binding:"omitempty,hex_color"`
	ParentID *string `json:"parent_id" binding:"omitempty,uuid"`
}

// UpdateCategoryRequest represents the request payload for updating a category.
type UpdateCategoryRequest struct {
	Name     string  `json:"name" binding:"required,min=1,max=100"`
	Icon     string  `json:"icon" binding:"max=50"`
	Color    string  `json:"color" binding:"omitempty,hex_color"`
	ParentID *string `json:"parent_id" binding:"omitempty,uuid"`
}

// CreateCategory handles the creation of a new category
// @Summary     Create a category
// @Description Create a new income or expense category for the authenticated user
// @Tags        categories
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body CreateCategoryRequest true "Category data"
// @Success     201 {object} models.Category "Category created"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Router      /categories [post]
func (h *CategoryHandler) CreateCategory(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	category, err := h.categoryService.CreateCategory(
		userID, req.Name, models.CategoryType(req.Type), req.Icon, req.Color, req.ParentID,
	)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, category)
}

// ListCategories returns the authenticated user's categories
// @Summary     List categories
// @Description Get a paginated list of categories, optionally filtered by type
// @Tags        categories
// @Produce     json
// @Security    BearerAuth
// @Param       page query int false "Page number" default(1)
// @Param       page_size query int false "Items per page" default(20)
// @Param       type query string false "Category type" Enums(income, expense)
// @Success     200 {object} pagination.PageResponse[models.Category] "Categories"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Router      /categories [get]
func (h *CategoryHandler) ListCategories(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var page pagination.PageRequest
	if err := c.ShouldBindQuery(&page); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	var categoryType *models.CategoryType
	if raw := c.Query("type"); raw != "" {
		ct := models.CategoryType(raw)
		if ct != models.CategoryTypeIncome && ct != models.CategoryTypeExpense {
			respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, "Invalid category type"))
			return
		}
		categoryType = &ct
	}

	result, err := h.categoryService.GetUserCategories(userID, page, categoryType)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// GetCategory returns a single category by ID
// @Summary     Get a category
// @Description Get one of the authenticated user's categories by ID
// @Tags        categories
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Category ID"
// @Success     200 {object} models.Category "Category"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Category not found"
// @Router      /categories/{id} [get]
func (h *CategoryHandler) GetCategory(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	categoryID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	category, err := h.categoryService.GetCategoryByID(userID, categoryID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, category)
}

// UpdateCategory updates a category
// @Summary     Update a category
// @Description Update one of the authenticated user's categories. The type cannot be changed.
// @Tags        categories
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Category ID"
// @Param       request body UpdateCategoryRequest true "Category fields"
// @Success     200 {object} models.Category "Updated category"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Category not found"
// @Router      /categories/{id} [put]
func (h *CategoryHandler) UpdateCategory(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	categoryID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req UpdateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	category, err := h.categoryService.UpdateCategory(userID, categoryID, req.Name, req.Icon, req.Color, req.ParentID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, category)
}

// DeleteCategory deletes a category
// @Summary     Delete a category
// @Description Delete one of the authenticated user's categories. Categories with children or transactions cannot be deleted.
// @Tags        categories
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Category ID"
// @Success     200 {object} MessageResponse "Category deleted"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Category not found"
// @Failure     409 {object} ErrorResponse "Category in use"
// @Router      /categories/{id} [delete]
func (h *CategoryHandler) DeleteCategory(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	categoryID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.categoryService.DeleteCategory(userID, categoryID); err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Category deleted"})
}
