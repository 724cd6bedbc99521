package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "fintrack/internal/errors"
	"fintrack/internal/models"
	"fintrack/internal/pagination"
	"fintrack/internal/services"
)

// AccountHandler handles account-related requests.
type AccountHandler struct {
	accountService services.AccountServicer
}

// NewAccountHandler creates a new AccountHandler.
func NewAccountHandler(accountService services.AccountServicer) *AccountHandler {
	return &AccountHandler{accountService: accountService}
}

// CreateAccountRequest represents the request payload for creating an account.
type CreateAccountRequest struct {
	Name           string `json:"name" binding:"required,min=1,max=100"`
	Type           string `json:"type" binding:"required,account_type"`
	Currency       string `json:"currency" binding:"omitempty,iso4217"`
	Bank           string `json:"bank" binding:"max=100"`
	AccountNumber  string `json:"account_number" binding:"max=50"`
	Color          string `json:"color" binding:"omitempty,hex_color"`
	InitialBalance int64  `json:"initial_balance" binding:"gte=0"`
}

// UpdateAccountRequest represents the request payload for updating an account.
type UpdateAccountRequest struct {
	Name          *string `json:"name" binding:"omitempty,min=1,max=100"`
	Bank          *string `json:"bank" binding:"omitempty,max=100"`
	AccountNumber *string `json:"account_number" binding:"omitempty,max=50"`
	Color         *string `json:"color" binding:"omitempty,hex_color"`
	IsActive      *bool   `json:"is_active"`
}

// CreateAccount handles the creation of a new account
// @Summary     Create an account
// @Description Create a new account for the authenticated user
// @Tags        accounts
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body CreateAccountRequest true "Account data"
// @Success     201 {object} models.Account "Account created"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Router      /accounts [post]
func (h *AccountHandler) CreateAccount(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req CreateAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	account, err := h.accountService.CreateAccount(
		userID, req.Name, models.AccountType(req.Type),
		req.Currency, req.Bank, req.AccountNumber, req.Color, req.InitialBalance,
	)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, account)
}

// ListAccounts returns the authenticated user's accounts
// @Summary     List accounts
// @Description Get a paginated list of the authenticated user's accounts
// @Tags        accounts
// @Produce     json
// @Security    BearerAuth
// @Param       page query int false "Page number" default(1)
// @Param       page_size query int false "Items per page" default(20)
// @Success     200 {object} pagination.PageResponse[models.Account] "Accounts"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Router      /accounts [get]
func (h *AccountHandler) ListAccounts(c *gin.Context) {
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

	result, err := h.accountService.GetUserAccounts(userID, page)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// GetAccount returns a single account by ID
// @Summary     Get an account
// @Description Get one of the authenticated user's accounts by ID
// @Tags        accounts
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Account ID"
// @Success     200 {object} models.Account "Account"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Account not found"
// @Router      /accounts/{id} [get]
func (h *AccountHandler) GetAccount(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	accountID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	account, err := h.accountService.GetAccountByID(userID, accountID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, account)
}

// UpdateAccount updates an account
// @Summary     Update an account
// @Description Update fields of one of the authenticated user's accounts
// @Tags        accounts
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Account ID"
// @Param       request body UpdateAccountRequest true "Fields to update"
// @Success     200 {object} models.Account "Updated account"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Account not found"
// @Router      /accounts/{id} [put]
func (h *AccountHandler) UpdateAccount(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	accountID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req UpdateAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	account, err := h.accountService.UpdateAccount(userID, accountID, services.AccountUpdateFields{
		Name:          req.Name,
		Bank:          req.Bank,
		AccountNumber: req.AccountNumber,
		Color:         req.Color,
		IsActive:      req.IsActive,
	})
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, account)
}

// DeleteAccount deletes an account
// @Summary     Delete an account
// @Description Delete one of the authenticated user's accounts. Accounts with transactions cannot be deleted.
// @Tags        accounts
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Account ID"
// @Success     200 {object} MessageResponse "Account deleted"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Account not found"
// @Failure     409 {object} ErrorResponse "Account has transactions"
// @Router      /accounts/{id} [delete]
func (h *AccountHandler) DeleteAccount(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	accountID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.accountService.DeleteAccount(userID, accountID); err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Account deleted"})
}

// GetAccountsSummary returns net balances across all active accounts
// @Summary     Accounts summary
// @Description Get total balance, total debt, and account counts for the authenticated user
// @Tags        accounts
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} report.AccountsSummary "Summary"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Router      /accounts/summary [get]
func (h *AccountHandler) GetAccountsSummary(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	summary, err := h.accountService.GetAccountsSummary(userID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, summary)
}
