package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	apperrors "fintrack/internal/errors"
	"fintrack/internal/models"
	"fintrack/internal/pagination"
	"fintrack/internal/services"
	"fintrack/internal/uuid"
)

// TransactionHandler handles transaction-related requests.
type TransactionHandler struct {
	transactionService services.TransactionServicer
}

// NewTransactionHandler creates a new TransactionHandler.
func NewTransactionHandler(transactionService services.TransactionServicer) *TransactionHandler {
	return &TransactionHandler{transactionService: transactionService}
}

// CreateTransactionRequest represents the request payload for creating a
// transaction. Amount is in minor currency units (cents).
type CreateTransactionRequest struct {
	AccountID   string  `json:"account_id" binding:"required,uuid"`
	CategoryID  *string `json:"category_id" binding:"omitempty,uuid"`
	Type        string  `json:"type" binding:"required,transaction_type"`
	Status      string  `json:"status" binding:"omitempty,transaction_status"`
	Amount      int64   `json:"amount" binding:"required,gt=0"`
	Description string  `json:"description" binding:"required,min=1,max=255"`
	Notes       string  `json:"notes" binding:"max=1000"`
	Date        string  `json:"date"`
}

// UpdateTransactionRequest represents the request payload for updating a
// transaction. Omitted fields are left unchanged. Sending category_id as
// null clears the category.
type UpdateTransactionRequest struct {
	AccountID   *string       `json:"account_id" binding:"omitempty,uuid"`
	CategoryID  OptionalField `json:"category_id"`
	Type        *string       `json:"type" binding:"omitempty,transaction_type"`
	Status      *string       `json:"status" binding:"omitempty,transaction_status"`
	Amount      *int64        `json:"amount" binding:"omitempty,gt=0"`
	Description *string       `json:"description" binding:"omitempty,min=1,max=255"`
	Notes       *string       `json:"notes" binding:"omitempty,max=1000"`
	Date        *string       `json:"date"`
}

// transactionFilterQuery holds the query-string filters for transaction
// listing endpoints.
type transactionFilterQuery struct {
	From       string `form:"from"`
	To         string `form:"to"`
	Type       string `form:"type" binding:"omitempty,transaction_type"`
	Status     string `form:"status" binding:"omitempty,transaction_status"`
	CategoryID string `form:"category_id" binding:"omitempty,uuid"`
	AccountID  string `form:"account_id" binding:"omitempty,uuid"`
	MinAmount  *int64 `form:"min_amount" binding:"omitempty,gte=0"`
	MaxAmount  *int64 `form:"max_amount" binding:"omitempty,gte=0"`
	Search     string `form:"search" binding:"omitempty,max=100"`
}

func (q *transactionFilterQuery) toFilter() (services.TransactionFilter, error) {
	var filter services.TransactionFilter
	if q.From != "" {
		t, err := parseFlexibleTime(q.From)
		if err != nil {
			return filter, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error())
		}
		filter.FromDate = &t
	}
	if q.To != "" {
		t, err := parseFlexibleTime(q.To)
		if err != nil {
			return filter, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error())
		}
		filter.ToDate = &t
	}
	if q.Type != "" {
		tt := models.TransactionType(q.Type)
		filter.Type = &tt
	}
	if q.Status != "" {
		ts := models.TransactionStatus(q.Status)
		filter.Status = &ts
	}
	if q.CategoryID != "" {
		filter.CategoryID = &q.CategoryID
	}
	if q.AccountID != "" {
		filter.AccountID = &q.AccountID
	}
	filter.MinAmount = q.MinAmount
	filter.MaxAmount = q.MaxAmount
	if q.Search != "" {
		filter.Search = &q.Search
	}
	return filter, nil
}

// CreateTransaction handles the creation of a new transaction
// @Summary     Create a transaction
// @Description Record an income or expense transaction. Completed transactions adjust the account balance.
// @Tags        transactions
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body CreateTransactionRequest true "Transaction data"
// @Success     201 {object} models.Transaction "Transaction created"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Account or category not found"
// @Router      /transactions [post]
func (h *TransactionHandler) CreateTransaction(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req CreateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	date := time.Now()
	if req.Date != "" {
		parsed, err := parseFlexibleTime(req.Date)
		if err != nil {
			respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
			return
		}
		date = parsed
	}

	transaction, err := h.transactionService.CreateTransaction(
		userID, req.AccountID, req.CategoryID,
		models.TransactionType(req.Type), models.TransactionStatus(req.Status),
		req.Amount, req.Description, req.Notes, date,
	)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, transaction)
}

// ListTransactions returns the authenticated user's transactions
// @Summary     List transactions
// @Description Get a paginated, filterable list of the authenticated user's transactions
// @Tags        transactions
// @Produce     json
// @Security    BearerAuth
// @Param       page query int false "Page number" default(1)
// @Param       page_size query int false "Items per page" default(20)
// @Param       from query string false "Start date (RFC3339 or YYYY-MM-DD)"
// @Param       to query string false "End date (RFC3339 or YYYY-MM-DD)"
// @Param       type query string false "Transaction type" Enums(income, expense)
// @Param       status query string false "Transaction status" Enums(completed, pending, cancelled)
// @Param       category_id query string false "Category ID"
// @Param       account_id query string false "Account ID"
// @Param       min_amount query int false "Minimum amount in cents"
// @Param       max_amount query int false "Maximum amount in cents"
// @Param       search query string false "Match against description and notes"
// @Success     200 {object} pagination.PageResponse[models.Transaction] "Transactions"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Router      /transactions [get]
func (h *TransactionHandler) ListTransactions(c *gin.Context) {
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

	var query transactionFilterQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	filter, err := query.toFilter()
	if err != nil {
		respondWithError(c, err)
		return
	}

	result, err := h.transactionService.GetUserTransactions(userID, page, filter)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// ListAccountTransactions returns transactions for a single account
// @Summary     List account transactions
// @Description Get a paginated, filterable list of transactions for one account
// @Tags        transactions
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Account ID"
// @Param       page query int false "Page number" default(1)
// @Param       page_size query int false "Items per page" default(20)
// @Success     200 {object} pagination.PageResponse[models.Transaction] "Transactions"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Account not found"
// @Router      /accounts/{id}/transactions [get]
func (h *TransactionHandler) ListAccountTransactions(c *gin.Context) {
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

	var page pagination.PageRequest
	if err := c.ShouldBindQuery(&page); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	var query transactionFilterQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	filter, err := query.toFilter()
	if err != nil {
		respondWithError(c, err)
		return
	}

	result, err := h.transactionService.GetAccountTransactions(userID, accountID, page, filter)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// GetTransaction returns a single transaction by ID
// @Summary     Get a transaction
// @Description Get one of the authenticated user's transactions by ID
// @Tags        transactions
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Transaction ID"
// @Success     200 {object} models.Transaction "Transaction"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Transaction not found"
// @Router      /transactions/{id} [get]
func (h *TransactionHandler) GetTransaction(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	transactionID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	transaction, err := h.transactionService.GetTransactionByID(userID, transactionID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, transaction)
}

// UpdateTransaction updates a transaction
// @Summary     Update a transaction
// @Description Update a transaction. Balance effects are reversed and reapplied as needed.
// @Tags        transactions
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Transaction ID"
// @Param       request body UpdateTransactionRequest true "Fields to update"
// @Success     200 {object} models.Transaction "Updated transaction"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Transaction not found"
// @Router      /transactions/{id} [put]
func (h *TransactionHandler) UpdateTransaction(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	transactionID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req UpdateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	fields := services.TransactionUpdateFields{
		AccountID:   req.AccountID,
		Amount:      req.Amount,
		Description: req.Description,
		Notes:       req.Notes,
	}
	if req.Type != nil {
		tt := models.TransactionType(*req.Type)
		fields.Type = &tt
	}
	if req.Status != nil {
		ts := models.TransactionStatus(*req.Status)
		fields.Status = &ts
	}
	if req.CategoryID.Present {
		if req.CategoryID.Value != nil && !uuid.IsValid(*req.CategoryID.Value) {
			respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, "Invalid category_id"))
			return
		}
		fields.CategoryID = &req.CategoryID.Value
	}
	if req.Date != nil {
		parsed, err := parseFlexibleTime(*req.Date)
		if err != nil {
			respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
			return
		}
		fields.Date = &parsed
	}

	transaction, err := h.transactionService.UpdateTransaction(userID, transactionID, fields)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, transaction)
}

// DeleteTransaction deletes a transaction
// @Summary     Delete a transaction
// @Description Delete a transaction. Completed transactions have their balance effect reversed.
// @Tags        transactions
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Transaction ID"
// @Success     200 {object} MessageResponse "Transaction deleted"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Transaction not found"
// @Router      /transactions/{id} [delete]
func (h *TransactionHandler) DeleteTransaction(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	transactionID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.transactionService.DeleteTransaction(userID, transactionID); err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Transaction deleted"})
}
