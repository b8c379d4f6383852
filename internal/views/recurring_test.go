package views

import (
	"math"
	"testing"
	"time"

	"fintrack/internal/models"
)

func recurringExpense(id string, amount float64, recurrence models.Recurrence) models.Expense {
	e := expenseOn(id, time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC))
	e.Amount = amount
	e.Recurrence = recurrence
	return e
}

func TestMonthlyCost(t *testing.T) {
	tests := []struct {
		name       string
		recurrence models.Recurrence
		amount     float64
		want       float64
	}{
		{name: "daily projects over 30 days", recurrence: models.RecurrenceDaily, amount: 5, want: 150},
		{name: "weekly projects over 4.33 weeks", recurrence: models.RecurrenceWeekly, amount: 10, want: 43.3},
		{name: "monthly is itself", recurrence: models.RecurrenceMonthly, amount: 25, want: 25},
		{name: "one-time projects to zero", recurrence: models.RecurrenceOneTime, amount: 100, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MonthlyCost(recurringExpense("e", tt.amount, tt.recurrence))
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestRecurringExpenses(t *testing.T) {
	expenses := []models.Expense{
		recurringExpense("weekly", 10, models.RecurrenceWeekly),
		recurringExpense("one-time", 999, models.RecurrenceOneTime),
		recurringExpense("daily", 5, models.RecurrenceDaily),
	}

	got := RecurringExpenses(expenses)
	if len(got) != 2 {
		t.Fatalf("expected 2 recurring expenses, got %d", len(got))
	}
	// Daily 150 > weekly 43.3.
	if got[0].Expense.ID != "daily" || got[1].Expense.ID != "weekly" {
		t.Errorf("expected most expensive first, got %q then %q", got[0].Expense.ID, got[1].Expense.ID)
	}
}

func TestRecurringMonthlyTotal(t *testing.T) {
	expenses := []models.Expense{
		recurringExpense("monthly", 20, models.RecurrenceMonthly),
		recurringExpense("daily", 1, models.RecurrenceDaily),
		recurringExpense("one-time", 500, models.RecurrenceOneTime),
	}

	got := RecurringMonthlyTotal(expenses)
	if got != 50 {
		t.Errorf("expected total 50, got %v", got)
	}
}
