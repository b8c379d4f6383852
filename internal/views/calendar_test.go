package views

import (
	"testing"
	"time"

	"fintrack/internal/models"
)

func TestDayView(t *testing.T) {
	day := time.Date(2024, 5, 10, 0, 0, 0, 0, time.UTC)

	morning := expenseOn("morning", day.Add(9*time.Hour))
	evening := expenseOn("evening", day.Add(20*time.Hour))
	pending := expenseOn("pending", day.Add(12*time.Hour))
	pending.Status = models.ExpenseStatusPending
	otherDay := expenseOn("other", day.AddDate(0, 0, 1))

	due := taskWith("due", models.TaskStatusTodo, day.Add(17*time.Hour))
	notDue := taskWith("not-due", models.TaskStatusTodo, day.AddDate(0, 0, 3))

	summary := DayView(
		[]models.Expense{evening, morning, pending, otherDay},
		[]models.Task{due, notDue},
		day,
	)

	if len(summary.Expenses) != 3 {
		t.Fatalf("expected 3 expenses on the day, got %d", len(summary.Expenses))
	}
	if summary.Expenses[0].ID != "morning" {
		t.Errorf("expected chronological order, got %q first", summary.Expenses[0].ID)
	}
	if len(summary.Tasks) != 1 || summary.Tasks[0].ID != "due" {
		t.Errorf("expected only the due task, got %+v", summary.Tasks)
	}
	// Pending expenses appear on the day but do not count as spent.
	if summary.Spent != 20 {
		t.Errorf("expected spent 20, got %v", summary.Spent)
	}
}
