package views

import (
	"testing"
	"time"

	"fintrack/internal/models"
)

func TestBudgetProgress(t *testing.T) {
	day := time.Date(2024, 5, 10, 0, 0, 0, 0, time.UTC)

	completed := expenseOn("e1", day)
	completed.Amount = 300

	pending := expenseOn("e2", day)
	pending.Amount = 500
	pending.Status = models.ExpenseStatusPending

	tests := []struct {
		name     string
		expenses []models.Expense
		budget   float64
		want     BudgetSummary
	}{
		{
			name:     "only completed expenses count",
			expenses: []models.Expense{completed, pending},
			budget:   1000,
			want:     BudgetSummary{Budget: 1000, Spent: 300, Remaining: 700, Percent: 30},
		},
		{
			name: "percent clamps at 100 but remaining goes negative",
			expenses: []models.Expense{
				func() models.Expense {
					e := expenseOn("e3", day)
					e.Amount = 1500
					return e
				}(),
			},
			budget: 1000,
			want:   BudgetSummary{Budget: 1000, Spent: 1500, Remaining: -500, Percent: 100},
		},
		{
			name:     "zero budget yields zero percent",
			expenses: []models.Expense{completed},
			budget:   0,
			want:     BudgetSummary{Budget: 0, Spent: 300, Remaining: -300, Percent: 0},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := BudgetProgress(tt.expenses, tt.budget)
			if got != tt.want {
				t.Errorf("expected %+v, got %+v", tt.want, got)
			}
		})
	}
}

func TestCategoryBudgetProgress(t *testing.T) {
	day := time.Date(2024, 5, 10, 0, 0, 0, 0, time.UTC)

	groceries := expenseOn("e1", day)
	groceries.Amount = 120

	transport := expenseOn("e2", day)
	transport.Amount = 40
	transport.Category = "Transport"

	budgets := []models.CategoryBudget{
		{Category: "Food", Amount: 100},
		{Category: "Transport", Amount: 80},
		{Category: "Bills", Amount: 0},
	}

	statuses := CategoryBudgetProgress([]models.Expense{groceries, transport}, budgets)
	if len(statuses) != 3 {
		t.Fatalf("expected 3 statuses, got %d", len(statuses))
	}

	food := statuses[0]
	if food.RawPercent != 120 || !food.OverBudget {
		t.Errorf("expected Food at raw 120%% over budget, got %+v", food)
	}

	tr := statuses[1]
	if tr.RawPercent != 50 || tr.OverBudget {
		t.Errorf("expected Transport at raw 50%%, got %+v", tr)
	}

	bills := statuses[2]
	if bills.RawPercent != 0 || bills.OverBudget {
		t.Errorf("expected zero-budget category at 0%%, got %+v", bills)
	}
}

func TestTopCategories(t *testing.T) {
	day := time.Date(2024, 5, 10, 0, 0, 0, 0, time.UTC)

	make3 := func(id, category string, amount float64) models.Expense {
		e := expenseOn(id, day)
		e.Category = category
		e.Amount = amount
		return e
	}

	expenses := []models.Expense{
		make3("e1", "Food", 50),
		make3("e2", "Transport", 80),
		make3("e3", "Bills", 80),
		make3("e4", "Food", 10),
	}

	top := TopCategories(expenses, 2)
	if len(top) != 2 {
		t.Fatalf("expected 2 categories, got %d", len(top))
	}
	// Ties break alphabetically.
	if top[0].Category != "Bills" || top[0].Total != 80 {
		t.Errorf("expected Bills first, got %+v", top[0])
	}
	if top[1].Category != "Transport" {
		t.Errorf("expected Transport second, got %+v", top[1])
	}
}
