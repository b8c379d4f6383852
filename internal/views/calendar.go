package views

import (
	"sort"
	"time"

	"fintrack/internal/models"
)

// DaySummary is the calendar view of a single day: the expenses and
// task deadlines falling on it, plus the day's completed spending.
type DaySummary struct {
	Date     time.Time        `json:"date"`
	Expenses []models.Expense `json:"expenses"`
	Tasks    []models.Task    `json:"tasks"`
	Spent    float64          `json:"spent"`
}

// sameDay reports whether two instants fall on the same calendar day in
// the reference location.
func sameDay(a, b time.Time, loc *time.Location) bool {
	ay, am, ad := a.In(loc).Date()
	by, bm, bd := b.In(loc).Date()
	return ay == by && am == bm && ad == bd
}

// DayView collects the expenses and tasks for one calendar day.
func DayView(expenses []models.Expense, tasks []models.Task, day time.Time) DaySummary {
	loc := day.Location()
	summary := DaySummary{Date: day}
	for _, e := range expenses {
		if sameDay(e.Date, day, loc) {
			summary.Expenses = append(summary.Expenses, e)
			if e.Status == models.ExpenseStatusCompleted {
				summary.Spent += e.Amount
			}
		}
	}
	for _, t := range tasks {
		if sameDay(t.Deadline, day, loc) {
			summary.Tasks = append(summary.Tasks, t)
		}
	}
	sort.SliceStable(summary.Expenses, func(i, j int) bool {
		return summary.Expenses[i].Date.Before(summary.Expenses[j].Date)
	})
	return summary
}
