package schema

import (
	"fmt"
	"time"

	"fintrack/internal/models"
)

// ParseError reports a raw record that could not be converted into a
// typed domain record. Unparseable records are rejected rather than
// kept with a zero or garbage value (fail-closed).
type ParseError struct {
	Collection string
	ID         string
	Field      string
	Err        error
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	return fmt.Sprintf("%s record %q: invalid %s: %v", e.Collection, e.ID, e.Field, e.Err)
}

// Unwrap returns the underlying error.
func (e *ParseError) Unwrap() error { return e.Err }

// dateLayouts are the accepted persisted date formats, tried in order.
var dateLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02",
}

// ParseDate parses a persisted date string. Date-only values resolve to
// local midnight.
func ParseDate(s string) (time.Time, error) {
	for _, layout := range dateLayouts {
		if layout == "2006-01-02" {
			if t, err := time.ParseInLocation(layout, s, time.Local); err == nil {
				return t, nil
			}
			continue
		}
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized date %q", s)
}

// ParseExpense converts a raw expense into a typed record.
func ParseExpense(raw RawExpense) (models.Expense, *ParseError) {
	date, err := ParseDate(raw.Date)
	if err != nil {
		return models.Expense{}, &ParseError{Collection: "expenses", ID: raw.ID, Field: "date", Err: err}
	}
	return models.Expense{
		ID:         raw.ID,
		Title:      raw.Title,
		Amount:     raw.Amount,
		Date:       date,
		Category:   raw.Category,
		Status:     models.ExpenseStatus(raw.Status),
		Recurrence: models.Recurrence(raw.Recurrence),
		Notes:      raw.Notes,
	}, nil
}

// ParseExpenses migrates and parses a raw expense collection, returning
// the typed records and any rejected ones.
func ParseExpenses(raws []RawExpense) ([]models.Expense, []*ParseError) {
	expenses := make([]models.Expense, 0, len(raws))
	var rejected []*ParseError
	for _, raw := range raws {
		e, perr := ParseExpense(raw)
		if perr != nil {
			rejected = append(rejected, perr)
			continue
		}
		expenses = append(expenses, e)
	}
	return expenses, rejected
}

// ParseTask migrates and converts a raw task into a typed record.
func ParseTask(raw RawTask) (models.Task, *ParseError) {
	raw = MigrateTask(raw)
	deadline, err := ParseDate(raw.Deadline)
	if err != nil {
		return models.Task{}, &ParseError{Collection: "tasks", ID: raw.ID, Field: "deadline", Err: err}
	}
	return models.Task{
		ID:              raw.ID,
		Description:     raw.Description,
		Deadline:        deadline,
		Importance:      models.TaskImportance(raw.Importance),
		EstimatedEffort: raw.EstimatedEffort,
		Status:          models.TaskStatus(raw.Status),
		StartTime:       raw.StartTime,
		EndTime:         raw.EndTime,
	}, nil
}

// ParseTasks migrates and parses a raw task collection.
func ParseTasks(raws []RawTask) ([]models.Task, []*ParseError) {
	tasks := make([]models.Task, 0, len(raws))
	var rejected []*ParseError
	for _, raw := range raws {
		t, perr := ParseTask(raw)
		if perr != nil {
			rejected = append(rejected, perr)
			continue
		}
		tasks = append(tasks, t)
	}
	return tasks, rejected
}

// ParseSavingsGoal migrates and converts a raw goal into a typed record.
// A contribution with an unparseable date rejects the whole goal; a
// partially loaded contribution history would silently understate
// progress.
func ParseSavingsGoal(raw RawSavingsGoal) (models.SavingsGoal, *ParseError) {
	raw = MigrateSavingsGoal(raw)
	createdAt, err := ParseDate(raw.CreatedAt)
	if err != nil {
		return models.SavingsGoal{}, &ParseError{Collection: "savings_goals", ID: raw.ID, Field: "created_at", Err: err}
	}
	contributions := make([]models.Contribution, 0, len(raw.Contributions))
	for _, rc := range raw.Contributions {
		date, err := ParseDate(rc.Date)
		if err != nil {
			return models.SavingsGoal{}, &ParseError{Collection: "savings_goals", ID: raw.ID, Field: "contribution date", Err: err}
		}
		contributions = append(contributions, models.Contribution{ID: rc.ID, Amount: rc.Amount, Date: date})
	}
	return models.SavingsGoal{
		ID:            raw.ID,
		Name:          raw.Name,
		Amount:        raw.Amount,
		Plan:          raw.Plan,
		CreatedAt:     createdAt,
		Contributions: contributions,
	}, nil
}

// ParseSavingsGoals migrates and parses a raw goal collection.
func ParseSavingsGoals(raws []RawSavingsGoal) ([]models.SavingsGoal, []*ParseError) {
	goals := make([]models.SavingsGoal, 0, len(raws))
	var rejected []*ParseError
	for _, raw := range raws {
		g, perr := ParseSavingsGoal(raw)
		if perr != nil {
			rejected = append(rejected, perr)
			continue
		}
		goals = append(goals, g)
	}
	return goals, rejected
}

// ParseProfile migrates and converts a raw profile. The profile has no
// date fields, so parsing cannot fail; it exists for symmetry with the
// other collections and to apply the widget migration.
func ParseProfile(raw RawProfile) models.UserProfile {
	raw = MigrateProfile(raw)
	custom := make([]models.CustomCategory, 0, len(raw.CustomCategories))
	for _, c := range raw.CustomCategories {
		custom = append(custom, models.CustomCategory{ID: c.ID, Name: c.Name, Color: c.Color, Emoji: c.Emoji})
	}
	budgets := make([]models.CategoryBudget, 0, len(raw.CategoryBudgets))
	for _, b := range raw.CategoryBudgets {
		budgets = append(budgets, models.CategoryBudget{Category: b.Category, Amount: b.Amount})
	}
	return models.UserProfile{
		Name:              raw.Name,
		MonthlyBudget:     raw.MonthlyBudget,
		Currency:          raw.Currency,
		Salary:            raw.Salary,
		SalaryPassword:    raw.SalaryPassword,
		CustomCategories:  custom,
		CategoryBudgets:   budgets,
		DefaultStatus:     models.ExpenseStatus(raw.DefaultStatus),
		DefaultRecurrence: models.Recurrence(raw.DefaultRecurrence),
		APIKey:            raw.APIKey,
		OCREngine:         raw.OCREngine,
		Widgets:           raw.Widgets,
	}
}
