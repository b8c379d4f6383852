package services

import (
	"context"
	"time"

	"fintrack/internal/ai"
	"fintrack/internal/models"
	"fintrack/internal/pagination"
	"fintrack/internal/views"
)

// ExpenseInput carries the validated fields for creating or updating an
// expense. Amount is guaranteed positive by the request binding.
type ExpenseInput struct {
	Title      string
	Amount     float64
	Date       time.Time
	Category   string
	Status     models.ExpenseStatus
	Recurrence models.Recurrence
	Notes      string
}

// ExpenseSummary is the dashboard aggregate: monthly budget progress,
// per-category budget progress, and the recurring-cost projection.
type ExpenseSummary struct {
	Budget           views.BudgetSummary          `json:"budget"`
	CategoryBudgets  []views.CategoryBudgetStatus `json:"category_budgets"`
	RecurringMonthly float64                      `json:"recurring_monthly_total"`
	TopCategories    []views.CategoryTotal        `json:"top_categories"`
}

// ExpenseServicer defines the contract for expense-related business logic.
type ExpenseServicer interface {
	CreateExpense(input ExpenseInput) (*models.Expense, error)
	ImportExpenses(inputs []ExpenseInput) ([]models.Expense, error)
	ListExpenses(filter views.ExpenseFilter, page pagination.PageRequest) (*pagination.PageResponse[models.Expense], error)
	GroupedExpenses(filter views.ExpenseFilter) ([]views.ExpenseGroup, error)
	GetExpenseByID(id string) (*models.Expense, error)
	UpdateExpense(id string, input ExpenseInput) (*models.Expense, error)
	DeleteExpense(id string) error
	Summary() (*ExpenseSummary, error)
	RecurringCosts() ([]views.RecurringExpense, error)
	Day(day time.Time) (*views.DaySummary, error)
}

// TaskInput carries the validated fields for creating or updating a task.
type TaskInput struct {
	Description     string
	Deadline        time.Time
	Importance      models.TaskImportance
	EstimatedEffort string
	StartTime       string
	EndTime         string
}

// TaskServicer defines the contract for task-related business logic.
type TaskServicer interface {
	CreateTask(input TaskInput) (*models.Task, error)
	ListTasks(query string) ([]models.Task, error)
	GetTaskByID(id string) (*models.Task, error)
	UpdateTask(id string, input TaskInput) (*models.Task, error)
	UpdateTaskStatus(id string, status models.TaskStatus) (*models.Task, error)
	DeleteTask(id string) error
	ReorderTasks(orderedIDs []string) ([]models.Task, error)
}

// GoalWithProgress pairs a savings goal with its derived progress.
type GoalWithProgress struct {
	models.SavingsGoal
	Progress views.GoalProgress `json:"progress"`
}

// SavingsServicer defines the contract for savings-goal business logic.
type SavingsServicer interface {
	CreateGoal(name string, amount float64, plan string) (*models.SavingsGoal, error)
	ListGoals() ([]GoalWithProgress, error)
	GetGoalByID(id string) (*GoalWithProgress, error)
	UpdateGoal(id, name string, amount *float64, plan *string) (*models.SavingsGoal, error)
	DeleteGoal(id string) error
	AddContribution(goalID string, amount float64, date time.Time) (*models.SavingsGoal, error)
	DeleteContribution(goalID, contributionID string) (*models.SavingsGoal, error)
}

// ProfileServicer defines the contract for profile and settings logic.
type ProfileServicer interface {
	GetProfile() (*models.UserProfile, error)
	SaveProfile(profile models.UserProfile) (*models.UserProfile, error)
	SetCategoryBudget(category string, amount float64) (*models.UserProfile, error)
	DeleteCategoryBudget(category string) (*models.UserProfile, error)
	AddCustomCategory(name, color, emoji string) (*models.UserProfile, error)
	DeleteCustomCategory(id string) (*models.UserProfile, error)
	RevealSalary(password string) (float64, error)
}

// Assistant is the transport contract for the external assistant
// service; *ai.Client satisfies it.
type Assistant interface {
	Categorize(ctx context.Context, req ai.CategorizeRequest) (*ai.CategorizeResponse, error)
	ScanReceipt(ctx context.Context, req ai.ReceiptScanRequest) (*ai.ReceiptScanResponse, error)
	Prioritize(ctx context.Context, req ai.PrioritizeRequest) (*ai.PrioritizeResponse, error)
	Report(ctx context.Context, req ai.ReportRequest) (*ai.ReportResponse, error)
	SavingsPlan(ctx context.Context, req ai.SavingsPlanRequest) (*ai.SavingsPlanResponse, error)
	CalendarSummary(ctx context.Context, req ai.CalendarSummaryRequest) (*ai.CalendarSummaryResponse, error)
	Chat(ctx context.Context, req ai.ChatRequest) (*ai.ChatResponse, error)
}

// AssistantFactory builds an Assistant for the given API key. The
// profile's stored key, when present, overrides the configured one.
type AssistantFactory func(apiKey string) Assistant

// PrioritizationSuggestion is an advisory task ordering. It is applied
// to the collection only through TaskServicer.ReorderTasks after
// explicit user acceptance.
type PrioritizationSuggestion struct {
	Tasks     []models.Task `json:"tasks"`
	Reasoning string        `json:"reasoning"`
}

// RenderedText is assistant-generated Markdown plus its sanitized HTML
// rendering.
type RenderedText struct {
	Markdown string `json:"markdown"`
	HTML     string `json:"html"`
}

// AssistantServicer defines the contract for AI-backed features. Every
// method is recoverable on failure: existing collections are never
// touched unless the remote call succeeded.
type AssistantServicer interface {
	CategorizeExpense(ctx context.Context, title string) (string, error)
	ScanReceipt(ctx context.Context, photoDataURI, rawText string) (*models.Expense, error)
	PrioritizeTasks(ctx context.Context) (*PrioritizationSuggestion, error)
	GenerateReport(ctx context.Context, dateRange string) (*RenderedText, error)
	GenerateSavingsPlan(ctx context.Context, goalID, name string, amount float64) (*RenderedText, error)
	SummarizeDay(ctx context.Context, day time.Time) (*RenderedText, error)
	Chat(ctx context.Context, messages []ai.ChatMessage) (*RenderedText, error)
}
