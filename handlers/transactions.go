package handlers

import (
	"errors"
	"net/http"
	"time"

	"finbook/middleware"
	"finbook/models"
	"finbook/services"
	"finbook/utils"

	"github.com/gin-gonic/gin"
)

type TransactionHandler struct {
	Service    *services.TransactionService
	Categories *services.CategoryService
}

func NewTransactionHandler(service *services.TransactionService, categories *services.CategoryService) *TransactionHandler {
	return &TransactionHandler{Service: service, Categories: categories}
}

// ListTransactions returns the user's incomes and expenses side by side.
func (h *TransactionHandler) ListTransactions(c *gin.Context) {
	userID := middleware.GetUserID(c)
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	incomes, err := h.Service.List(c.Request.Context(), models.KindIncome, userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch transactions"})
		return
	}

	expenses, err := h.Service.List(c.Request.Context(), models.KindExpense, userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch transactions"})
		return
	}

	c.JSON(http.StatusOK, models.TransactionList{Incomes: incomes, Expenses: expenses})
}

// AddIncome handles POST /transactions/add-income.
func (h *TransactionHandler) AddIncome(c *gin.Context) {
	h.add(c, models.KindIncome)
}

// AddExpense handles POST /transactions/add-expense.
func (h *TransactionHandler) AddExpense(c *gin.Context) {
	h.add(c, models.KindExpense)
}

func (h *TransactionHandler) add(c *gin.Context, kind models.TransactionKind) {
	userID := middleware.GetUserID(c)
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req models.CreateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "date must be in YYYY-MM-DD format"})
		return
	}

	if _, err := h.Categories.Get(c.Request.Context(), req.CategoryID); err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Category not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	t, err := h.Service.Create(c.Request.Context(), kind, userID, req.Name, req.CategoryID, req.Amount, date)
	if err != nil {
		if errors.Is(err, services.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create transaction"})
		return
	}

	utils.LogTransactionAction("create", string(kind), t.ID, userID)
	c.JSON(http.StatusCreated, t)
}

// EditIncome handles POST /transactions/edit-income/:id.
func (h *TransactionHandler) EditIncome(c *gin.Context) {
	h.edit(c, models.KindIncome)
}

// EditExpense handles POST /transactions/edit-expense/:id.
func (h *TransactionHandler) EditExpense(c *gin.Context) {
	h.edit(c, models.KindExpense)
}

// edit is the combined update-or-delete endpoint. The request carries one of
// two mutually exclusive action markers; delete takes priority and skips
// field validation entirely.
func (h *TransactionHandler) edit(c *gin.Context, kind models.TransactionKind) {
	userID := middleware.GetUserID(c)
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}
	transactionID := c.Param("id")

	var req models.EditTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if req.Delete != "" {
		err := h.Service.Delete(c.Request.Context(), kind, transactionID, userID)
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Transaction not found"})
			return
		}
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete transaction"})
			return
		}
		utils.LogTransactionAction("delete", string(kind), transactionID, userID)
		c.JSON(http.StatusOK, gin.H{"message": "Transaction deleted"})
		return
	}

	if req.Edit == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "either edit or delete must be set"})
		return
	}

	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "date must be in YYYY-MM-DD format"})
		return
	}

	err = h.Service.Update(c.Request.Context(), kind, transactionID, userID,
		req.Name, req.CategoryID, req.Amount, date)
	if errors.Is(err, services.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Transaction not found"})
		return
	}
	if errors.Is(err, services.ErrValidation) {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update transaction"})
		return
	}

	utils.LogTransactionAction("edit", string(kind), transactionID, userID)
	c.JSON(http.StatusOK, gin.H{"message": "Transaction updated"})
}
