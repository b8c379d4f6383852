package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	apperrors "fintrack/internal/errors"
	"fintrack/internal/models"
	"fintrack/internal/pagination"
	"fintrack/internal/services"
	"fintrack/internal/views"
)

// ExpenseHandler handles expense-related requests.
type ExpenseHandler struct {
	expenseService services.ExpenseServicer
}

// NewExpenseHandler creates a new ExpenseHandler.
func NewExpenseHandler(expenseService services.ExpenseServicer) *ExpenseHandler {
	return &ExpenseHandler{expenseService: expenseService}
}

// ExpenseRequest represents the payload for creating or updating an expense.
type ExpenseRequest struct {
	Title      string    `json:"title" binding:"required,min=1,max=200"`
	Amount     float64   `json:"amount" binding:"required,gt=0"`
	Date       time.Time `json:"date" binding:"required"`
	Category   string    `json:"category" binding:"required"`
	Status     string    `json:"status" binding:"required,expense_status"`
	Recurrence string    `json:"recurrence" binding:"required,recurrence"`
	Notes      string    `json:"notes" binding:"omitempty,max=1000"`
}

// ImportExpensesRequest represents a bulk import payload.
type ImportExpensesRequest struct {
	Expenses []ExpenseRequest `json:"expenses" binding:"required,min=1,max=500,dive"`
}

func (r ExpenseRequest) toInput() services.ExpenseInput {
	return services.ExpenseInput{
		Title:      r.Title,
		Amount:     r.Amount,
		Date:       r.Date,
		Category:   r.Category,
		Status:     models.ExpenseStatus(r.Status),
		Recurrence: models.Recurrence(r.Recurrence),
		Notes:      r.Notes,
	}
}

// expenseFilter builds the filter state from query parameters.
func expenseFilter(c *gin.Context) views.ExpenseFilter {
	return views.ExpenseFilter{
		Query:     c.Query("q"),
		Status:    c.DefaultQuery("status", views.FilterAll),
		Category:  c.DefaultQuery("category", views.FilterAll),
		DateRange: c.DefaultQuery("range", views.FilterAll),
	}
}

// CreateExpense handles the creation of a new expense.
func (h *ExpenseHandler) CreateExpense(c *gin.Context) {
	var req ExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	expense, err := h.expenseService.CreateExpense(req.toInput())
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"expense": expense})
}

// ImportExpenses handles bulk creation of expenses.
func (h *ExpenseHandler) ImportExpenses(c *gin.Context) {
	var req ImportExpensesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	inputs := make([]services.ExpenseInput, 0, len(req.Expenses))
	for _, e := range req.Expenses {
		inputs = append(inputs, e.toInput())
	}

	created, err := h.expenseService.ImportExpenses(inputs)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"expenses": created})
}

// GetExpenses handles listing expenses with filters and pagination.
func (h *ExpenseHandler) GetExpenses(c *gin.Context) {
	var page pagination.PageRequest
	if err := c.ShouldBindQuery(&page); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	result, err := h.expenseService.ListExpenses(expenseFilter(c), page)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// GetGroupedExpenses handles the bucketed display list.
func (h *ExpenseHandler) GetGroupedExpenses(c *gin.Context) {
	groups, err := h.expenseService.GroupedExpenses(expenseFilter(c))
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"groups": groups})
}

// GetExpense handles retrieving a single expense.
func (h *ExpenseHandler) GetExpense(c *gin.Context) {
	expense, err := h.expenseService.GetExpenseByID(c.Param("id"))
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"expense": expense})
}

// UpdateExpense handles editing an expense in place.
func (h *ExpenseHandler) UpdateExpense(c *gin.Context) {
	var req ExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	expense, err := h.expenseService.UpdateExpense(c.Param("id"), req.toInput())
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"expense": expense})
}

// DeleteExpense handles deleting an expense.
func (h *ExpenseHandler) DeleteExpense(c *gin.Context) {
	if err := h.expenseService.DeleteExpense(c.Param("id")); err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Expense deleted successfully"})
}

// GetSummary handles the dashboard summary aggregate.
func (h *ExpenseHandler) GetSummary(c *gin.Context) {
	summary, err := h.expenseService.Summary()
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"summary": summary})
}

// GetRecurringCosts handles the recurring-cost projection list.
func (h *ExpenseHandler) GetRecurringCosts(c *gin.Context) {
	recurring, err := h.expenseService.RecurringCosts()
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"recurring": recurring})
}

// GetDay handles the calendar view for a single day.
func (h *ExpenseHandler) GetDay(c *gin.Context) {
	day, err := parseDateQuery(c, "date", time.Now())
	if err != nil {
		respondWithError(c, err)
		return
	}

	summary, err := h.expenseService.Day(day)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"day": summary})
}
