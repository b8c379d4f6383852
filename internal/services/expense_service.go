package services

import (
	"sort"
	"time"

	apperrors "fintrack/internal/errors"
	"fintrack/internal/models"
	"fintrack/internal/pagination"
	"fintrack/internal/store"
	"fintrack/internal/uuid"
	"fintrack/internal/views"
)

// expenseService handles expense-related business logic.
type expenseService struct {
	store *store.Store
}

// NewExpenseService creates a new ExpenseServicer.
func NewExpenseService(st *store.Store) ExpenseServicer {
	return &expenseService{store: st}
}

func (s *expenseService) fromInput(id string, input ExpenseInput) models.Expense {
	return models.Expense{
		ID:         id,
		Title:      input.Title,
		Amount:     input.Amount,
		Date:       input.Date,
		Category:   input.Category,
		Status:     input.Status,
		Recurrence: input.Recurrence,
		Notes:      input.Notes,
	}
}

// CreateExpense appends a new expense to the collection.
func (s *expenseService) CreateExpense(input ExpenseInput) (*models.Expense, error) {
	expenses, err := s.store.Expenses()
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	expense := s.fromInput(uuid.New(), input)
	expenses = append(expenses, expense)

	if err := s.store.SaveExpenses(expenses); err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &expense, nil
}

// ImportExpenses appends a batch of expenses in one write. Used by bulk
// import; either every record is persisted or none is.
func (s *expenseService) ImportExpenses(inputs []ExpenseInput) ([]models.Expense, error) {
	expenses, err := s.store.Expenses()
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	created := make([]models.Expense, 0, len(inputs))
	for _, input := range inputs {
		expense := s.fromInput(uuid.New(), input)
		created = append(created, expense)
		expenses = append(expenses, expense)
	}

	if err := s.store.SaveExpenses(expenses); err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return created, nil
}

// ListExpenses returns a filtered, newest-first page of expenses.
func (s *expenseService) ListExpenses(filter views.ExpenseFilter, page pagination.PageRequest) (*pagination.PageResponse[models.Expense], error) {
	expenses, err := s.store.Expenses()
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	filtered := views.FilterExpenses(expenses, filter, time.Now())
	sort.SliceStable(filtered, func(i, j int) bool {
		return filtered[i].Date.After(filtered[j].Date)
	})

	result := pagination.Slice(filtered, page)
	return &result, nil
}

// GroupedExpenses returns the filtered expenses bucketed for display.
func (s *expenseService) GroupedExpenses(filter views.ExpenseFilter) ([]views.ExpenseGroup, error) {
	expenses, err := s.store.Expenses()
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	now := time.Now()
	return views.GroupExpenses(views.FilterExpenses(expenses, filter, now), now), nil
}

// GetExpenseByID returns a single expense.
func (s *expenseService) GetExpenseByID(id string) (*models.Expense, error) {
	expenses, err := s.store.Expenses()
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	for i := range expenses {
		if expenses[i].ID == id {
			return &expenses[i], nil
		}
	}
	return nil, apperrors.ErrExpenseNotFound
}

// UpdateExpense replaces an expense's fields in place, preserving its id.
func (s *expenseService) UpdateExpense(id string, input ExpenseInput) (*models.Expense, error) {
	expenses, err := s.store.Expenses()
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	for i := range expenses {
		if expenses[i].ID != id {
			continue
		}
		expenses[i] = s.fromInput(id, input)
		if err := s.store.SaveExpenses(expenses); err != nil {
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		return &expenses[i], nil
	}
	return nil, apperrors.ErrExpenseNotFound
}

// DeleteExpense removes an expense from the collection.
func (s *expenseService) DeleteExpense(id string) error {
	expenses, err := s.store.Expenses()
	if err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	for i := range expenses {
		if expenses[i].ID != id {
			continue
		}
		expenses = append(expenses[:i], expenses[i+1:]...)
		if err := s.store.SaveExpenses(expenses); err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		return nil
	}
	return apperrors.ErrExpenseNotFound
}

// Summary computes the dashboard aggregate. Budget progress is scoped
// to the current calendar month; the recurring projection covers the
// whole collection since recurrence is not tied to a period.
func (s *expenseService) Summary() (*ExpenseSummary, error) {
	profile, err := s.store.Profile()
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if profile == nil {
		return nil, apperrors.ErrProfileNotFound
	}

	expenses, err := s.store.Expenses()
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	now := time.Now()
	monthly := views.FilterExpenses(expenses, views.ExpenseFilter{DateRange: views.RangeMonth}, now)

	return &ExpenseSummary{
		Budget:           views.BudgetProgress(monthly, profile.MonthlyBudget),
		CategoryBudgets:  views.CategoryBudgetProgress(monthly, profile.CategoryBudgets),
		RecurringMonthly: views.RecurringMonthlyTotal(expenses),
		TopCategories:    views.TopCategories(monthly, 5),
	}, nil
}

// RecurringCosts lists recurring expenses with projected monthly cost,
// most expensive first.
func (s *expenseService) RecurringCosts() ([]views.RecurringExpense, error) {
	expenses, err := s.store.Expenses()
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return views.RecurringExpenses(expenses), nil
}

// Day returns the calendar view for one day.
func (s *expenseService) Day(day time.Time) (*views.DaySummary, error) {
	expenses, err := s.store.Expenses()
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	tasks, err := s.store.Tasks()
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	summary := views.DayView(expenses, tasks, day)
	return &summary, nil
}
