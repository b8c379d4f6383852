package models

import "time"

// ExpenseStatus is the lifecycle tag of an expense. Only completed
// expenses count toward spending totals.
type ExpenseStatus string

const (
	ExpenseStatusCompleted ExpenseStatus = "completed"
	ExpenseStatusPending   ExpenseStatus = "pending"
	ExpenseStatusUpcoming  ExpenseStatus = "upcoming"
)

// Recurrence is the cadence tag of an expense. It is used for the
// monthly-cost projection only; recurring expenses are never expanded
// into future instances.
type Recurrence string

const (
	RecurrenceOneTime Recurrence = "one-time"
	RecurrenceDaily   Recurrence = "daily"
	RecurrenceWeekly  Recurrence = "weekly"
	RecurrenceMonthly Recurrence = "monthly"
)

// Expense represents a single logged expense.
type Expense struct {
	ID         string        `json:"id"`
	Title      string        `json:"title"`
	Amount     float64       `json:"amount"`
	Date       time.Time     `json:"date"`
	Category   string        `json:"category"`
	Status     ExpenseStatus `json:"status"`
	Recurrence Recurrence    `json:"recurrence"`
	Notes      string        `json:"notes,omitempty"`
}

// IsRecurring reports whether the expense contributes to the recurring
// monthly-cost projection.
func (e Expense) IsRecurring() bool {
	return e.Recurrence != RecurrenceOneTime && e.Recurrence != ""
}
