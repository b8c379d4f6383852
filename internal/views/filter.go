// Package views computes derived views over the persisted collections.
// Every function is pure and deterministic: collections, filter state,
// and the reference time are explicit inputs, so the package has no
// clock or storage access and is directly unit-testable.
package views

import (
	"strings"
	"time"

	"fintrack/internal/models"
)

// FilterAll is the sentinel that bypasses a status, category, or
// date-range filter.
const FilterAll = "all"

// Date-range filter values.
const (
	RangeWeek  = "week"
	RangeMonth = "month"
	RangeYear  = "year"
)

// ExpenseFilter holds the transient filter state applied to the expense
// collection. Zero values and the "all" sentinel bypass the respective
// predicate.
type ExpenseFilter struct {
	Query     string
	Status    string
	Category  string
	DateRange string
}

// PeriodStart returns the start of the current week, month, or year
// relative to now. Weeks start on Sunday. The second return value is
// false for "all" or an unknown range, meaning no date bound applies.
func PeriodStart(dateRange string, now time.Time) (time.Time, bool) {
	switch dateRange {
	case RangeWeek:
		day := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
		return day.AddDate(0, 0, -int(day.Weekday())), true
	case RangeMonth:
		return time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location()), true
	case RangeYear:
		return time.Date(now.Year(), 1, 1, 0, 0, 0, 0, now.Location()), true
	default:
		return time.Time{}, false
	}
}

// matchesDate reports whether the date falls on or after the start of
// the filtered period. The boundary instant itself is included.
func matchesDate(date time.Time, dateRange string, now time.Time) bool {
	start, ok := PeriodStart(dateRange, now)
	if !ok {
		return true
	}
	return !date.Before(start)
}

// matchesQuery does a case-insensitive substring match.
func matchesQuery(text, query string) bool {
	if query == "" {
		return true
	}
	return strings.Contains(strings.ToLower(text), strings.ToLower(query))
}

// matchesChoice compares against an exact-match filter, where empty and
// "all" bypass the comparison.
func matchesChoice(value, filter string) bool {
	return filter == "" || filter == FilterAll || value == filter
}

// FilterExpenses returns the expenses matching every predicate of the
// filter. Predicates compose by conjunction, so application order never
// changes the result set.
func FilterExpenses(expenses []models.Expense, f ExpenseFilter, now time.Time) []models.Expense {
	out := make([]models.Expense, 0, len(expenses))
	for _, e := range expenses {
		if !matchesQuery(e.Title, f.Query) {
			continue
		}
		if !matchesChoice(string(e.Status), f.Status) {
			continue
		}
		if !matchesChoice(e.Category, f.Category) {
			continue
		}
		if !matchesDate(e.Date, f.DateRange, now) {
			continue
		}
		out = append(out, e)
	}
	return out
}

// FilterTasks returns the tasks whose description matches the query,
// case-insensitively.
func FilterTasks(tasks []models.Task, query string) []models.Task {
	out := make([]models.Task, 0, len(tasks))
	for _, t := range tasks {
		if matchesQuery(t.Description, query) {
			out = append(out, t)
		}
	}
	return out
}
