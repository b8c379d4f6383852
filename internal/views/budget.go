package views

import (
	"sort"

	"fintrack/internal/models"
)

// BudgetSummary is spending measured against the monthly budget.
// Percent is clamped to 100 for display; Spent and Remaining are not.
type BudgetSummary struct {
	Budget    float64 `json:"budget"`
	Spent     float64 `json:"spent"`
	Remaining float64 `json:"remaining"`
	Percent   float64 `json:"percent"`
}

// SpentTotal sums the amounts of completed expenses. Pending and
// upcoming expenses do not count toward spending.
func SpentTotal(expenses []models.Expense) float64 {
	var spent float64
	for _, e := range expenses {
		if e.Status == models.ExpenseStatusCompleted {
			spent += e.Amount
		}
	}
	return spent
}

// BudgetProgress measures the given expenses against a monthly budget.
// A zero budget yields zero percent rather than dividing by zero.
func BudgetProgress(expenses []models.Expense, monthlyBudget float64) BudgetSummary {
	spent := SpentTotal(expenses)
	var percent float64
	if monthlyBudget > 0 {
		percent = spent / monthlyBudget * 100
		if percent > 100 {
			percent = 100
		}
	}
	return BudgetSummary{
		Budget:    monthlyBudget,
		Spent:     spent,
		Remaining: monthlyBudget - spent,
		Percent:   percent,
	}
}

// CategoryBudgetStatus is spending measured against one per-category
// budget. RawPercent is unclamped; OverBudget is true when it exceeds
// 100. Display clamping is the caller's concern.
type CategoryBudgetStatus struct {
	Category   string  `json:"category"`
	Budget     float64 `json:"budget"`
	Spent      float64 `json:"spent"`
	RawPercent float64 `json:"raw_percent"`
	OverBudget bool    `json:"over_budget"`
}

// CategoryBudgetProgress measures completed spending per budgeted
// category. Statuses are returned in the order the budgets appear.
func CategoryBudgetProgress(expenses []models.Expense, budgets []models.CategoryBudget) []CategoryBudgetStatus {
	spentByCategory := make(map[string]float64)
	for _, e := range expenses {
		if e.Status == models.ExpenseStatusCompleted {
			spentByCategory[e.Category] += e.Amount
		}
	}

	statuses := make([]CategoryBudgetStatus, 0, len(budgets))
	for _, b := range budgets {
		spent := spentByCategory[b.Category]
		var raw float64
		if b.Amount > 0 {
			raw = spent / b.Amount * 100
		}
		statuses = append(statuses, CategoryBudgetStatus{
			Category:   b.Category,
			Budget:     b.Amount,
			Spent:      spent,
			RawPercent: raw,
			OverBudget: raw > 100,
		})
	}
	return statuses
}

// CategoryTotal is total completed spending for one category.
type CategoryTotal struct {
	Category string  `json:"category"`
	Total    float64 `json:"total"`
}

// CategoryTotals sums completed spending per category, highest first.
func CategoryTotals(expenses []models.Expense) []CategoryTotal {
	byCategory := make(map[string]float64)
	for _, e := range expenses {
		if e.Status == models.ExpenseStatusCompleted {
			byCategory[e.Category] += e.Amount
		}
	}

	totals := make([]CategoryTotal, 0, len(byCategory))
	for category, total := range byCategory {
		totals = append(totals, CategoryTotal{Category: category, Total: total})
	}
	sort.Slice(totals, func(i, j int) bool {
		if totals[i].Total != totals[j].Total {
			return totals[i].Total > totals[j].Total
		}
		return totals[i].Category < totals[j].Category
	})
	return totals
}

// TopCategories returns the n highest-spending categories.
func TopCategories(expenses []models.Expense, n int) []CategoryTotal {
	totals := CategoryTotals(expenses)
	if len(totals) > n {
		totals = totals[:n]
	}
	return totals
}
