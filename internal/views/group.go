package views

import (
	"sort"
	"time"

	"fintrack/internal/models"
)

// Fixed display-group labels, in priority order.
const (
	GroupToday     = "Today"
	GroupYesterday = "Yesterday"
	GroupLastWeek  = "Previous 7 Days"
	GroupThisMonth = "This Month"
)

// ExpenseGroup is one display bucket of expenses.
type ExpenseGroup struct {
	Label    string           `json:"label"`
	Expenses []models.Expense `json:"expenses"`
}

// groupLabel buckets an expense date relative to now. Priority order:
// Today, Yesterday, Previous 7 Days (age at most 7 days), This Month
// (same calendar month, older than 7 days), else the month-year label.
func groupLabel(date, now time.Time) string {
	day := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, now.Location())
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	switch {
	case day.Equal(today):
		return GroupToday
	case day.Equal(today.AddDate(0, 0, -1)):
		return GroupYesterday
	case !day.Before(today.AddDate(0, 0, -7)) && day.Before(today):
		return GroupLastWeek
	case day.Year() == today.Year() && day.Month() == today.Month():
		return GroupThisMonth
	default:
		return date.Format("January 2006")
	}
}

// GroupExpenses buckets expenses for display. Groups appear in the
// fixed priority order above, followed by month-year groups in
// descending date order; expenses within each group are in descending
// date order. Empty groups are omitted.
func GroupExpenses(expenses []models.Expense, now time.Time) []ExpenseGroup {
	sorted := make([]models.Expense, len(expenses))
	copy(sorted, expenses)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Date.After(sorted[j].Date)
	})

	byLabel := make(map[string][]models.Expense)
	var monthLabels []string
	for _, e := range sorted {
		label := groupLabel(e.Date, now)
		if _, seen := byLabel[label]; !seen && !isFixedGroup(label) {
			monthLabels = append(monthLabels, label)
		}
		byLabel[label] = append(byLabel[label], e)
	}

	order := []string{GroupToday, GroupYesterday, GroupLastWeek, GroupThisMonth}
	order = append(order, monthLabels...)

	groups := make([]ExpenseGroup, 0, len(byLabel))
	for _, label := range order {
		if bucket, ok := byLabel[label]; ok {
			groups = append(groups, ExpenseGroup{Label: label, Expenses: bucket})
		}
	}
	return groups
}

func isFixedGroup(label string) bool {
	switch label {
	case GroupToday, GroupYesterday, GroupLastWeek, GroupThisMonth:
		return true
	}
	return false
}
