package testutil

import (
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"fintrack/internal/models"
	"fintrack/internal/store"
	"fintrack/internal/uuid"
)

// counter provides unique values across fixtures within a test run.
var counter atomic.Int64

func nextID() int64 {
	return counter.Add(1)
}

// TestProfile returns a minimal valid profile.
func TestProfile() models.UserProfile {
	return models.UserProfile{
		Name:          fmt.Sprintf("User %d", nextID()),
		MonthlyBudget: 1000,
		Currency:      "USD",
	}
}

// SaveTestProfile stores a minimal profile and returns it.
func SaveTestProfile(t *testing.T, st *store.Store) models.UserProfile {
	t.Helper()

	profile := TestProfile()
	if err := st.SaveProfile(&profile); err != nil {
		t.Fatalf("failed to save test profile: %v", err)
	}
	return profile
}

// TestExpense returns a completed one-time expense on the given date.
func TestExpense(date time.Time) models.Expense {
	return models.Expense{
		ID:         uuid.New(),
		Title:      fmt.Sprintf("Expense %d", nextID()),
		Amount:     10,
		Date:       date,
		Category:   "Food",
		Status:     models.ExpenseStatusCompleted,
		Recurrence: models.RecurrenceOneTime,
	}
}

// TestTask returns an incomplete task due on the given date.
func TestTask(deadline time.Time) models.Task {
	return models.Task{
		ID:          uuid.New(),
		Description: fmt.Sprintf("Task %d", nextID()),
		Deadline:    deadline,
		Importance:  models.TaskImportanceMedium,
		Status:      models.TaskStatusTodo,
	}
}

// TestGoal returns a savings goal with no contributions.
func TestGoal(amount float64) models.SavingsGoal {
	return models.SavingsGoal{
		ID:            uuid.New(),
		Name:          fmt.Sprintf("Goal %d", nextID()),
		Amount:        amount,
		CreatedAt:     time.Now(),
		Contributions: []models.Contribution{},
	}
}
