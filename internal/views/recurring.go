package views

import (
	"sort"

	"fintrack/internal/models"
)

// Monthly projection multipliers. A month averages 4.33 weeks
// (52 weeks / 12 months); the weekly multiplier deliberately uses that
// calendar average rather than 4.
const (
	daysPerMonth  = 30
	weeksPerMonth = 4.33
)

// MonthlyCost projects an expense's recurring monthly cost. One-time
// expenses project to zero.
func MonthlyCost(e models.Expense) float64 {
	switch e.Recurrence {
	case models.RecurrenceDaily:
		return e.Amount * daysPerMonth
	case models.RecurrenceWeekly:
		return e.Amount * weeksPerMonth
	case models.RecurrenceMonthly:
		return e.Amount
	default:
		return 0
	}
}

// RecurringMonthlyTotal sums the projected monthly cost of all
// recurring expenses.
func RecurringMonthlyTotal(expenses []models.Expense) float64 {
	var total float64
	for _, e := range expenses {
		total += MonthlyCost(e)
	}
	return total
}

// RecurringExpense pairs a recurring expense with its projected
// monthly cost.
type RecurringExpense struct {
	Expense     models.Expense `json:"expense"`
	MonthlyCost float64        `json:"monthly_cost"`
}

// RecurringExpenses returns the recurring expenses with their projected
// costs, most expensive first.
func RecurringExpenses(expenses []models.Expense) []RecurringExpense {
	out := make([]RecurringExpense, 0, len(expenses))
	for _, e := range expenses {
		if !e.IsRecurring() {
			continue
		}
		out = append(out, RecurringExpense{Expense: e, MonthlyCost: MonthlyCost(e)})
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].MonthlyCost > out[j].MonthlyCost
	})
	return out
}
