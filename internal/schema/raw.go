// Package schema defines the raw persisted shape of every record and
// the migration rules applied on load. Raw types carry legacy fields
// from earlier schema versions; migration normalizes a raw record in
// place and parsing converts it into a typed domain record or rejects
// it with a ParseError. Migration is idempotent: migrating an
// already-migrated record is a no-op.
package schema

// RawExpense is the persisted shape of an expense. Dates are stored as
// strings (RFC 3339, or date-only for imported records).
type RawExpense struct {
	ID         string  `json:"id"`
	Title      string  `json:"title"`
	Amount     float64 `json:"amount"`
	Date       string  `json:"date"`
	Category   string  `json:"category"`
	Status     string  `json:"status"`
	Recurrence string  `json:"recurrence"`
	Notes      string  `json:"notes,omitempty"`
}

// RawTask is the persisted shape of a task. Completed is the legacy
// boolean superseded by Status.
type RawTask struct {
	ID              string `json:"id"`
	Description     string `json:"description"`
	Deadline        string `json:"deadline"`
	Importance      string `json:"importance"`
	EstimatedEffort string `json:"estimated_effort"`
	Status          string `json:"status,omitempty"`
	Completed       *bool  `json:"completed,omitempty"`
	StartTime       string `json:"start_time,omitempty"`
	EndTime         string `json:"end_time,omitempty"`
}

// RawContribution is the persisted shape of a savings contribution.
type RawContribution struct {
	ID     string  `json:"id"`
	Amount float64 `json:"amount"`
	Date   string  `json:"date"`
}

// RawSavingsGoal is the persisted shape of a savings goal.
// CurrentAmount is the legacy scalar progress counter superseded by the
// contribution list.
type RawSavingsGoal struct {
	ID            string            `json:"id"`
	Name          string            `json:"name"`
	Amount        float64           `json:"amount"`
	Plan          string            `json:"plan,omitempty"`
	CreatedAt     string            `json:"created_at"`
	CurrentAmount *float64          `json:"current_amount,omitempty"`
	Contributions []RawContribution `json:"contributions"`
}

// Legacy widget-visibility keys collapsed into widgetExpenseSummary.
const (
	legacyWidgetPending   = "pendingSummary"
	legacyWidgetUpcoming  = "upcomingSummary"
	legacyWidgetRecurring = "recurringSummary"

	// WidgetExpenseSummary is the current key for the combined expense
	// summary widget.
	WidgetExpenseSummary = "expenseSummary"
)

// RawProfile is the persisted shape of the user profile.
type RawProfile struct {
	Name              string              `json:"name"`
	MonthlyBudget     float64             `json:"monthly_budget"`
	Currency          string              `json:"currency"`
	Salary            float64             `json:"salary,omitempty"`
	SalaryPassword    string              `json:"salary_password,omitempty"`
	CustomCategories  []RawCustomCategory `json:"custom_categories,omitempty"`
	CategoryBudgets   []RawCategoryBudget `json:"category_budgets,omitempty"`
	DefaultStatus     string              `json:"default_status,omitempty"`
	DefaultRecurrence string              `json:"default_recurrence,omitempty"`
	APIKey            string              `json:"api_key,omitempty"`
	OCREngine         string              `json:"ocr_engine,omitempty"`
	Widgets           map[string]bool     `json:"widgets,omitempty"`
}

// RawCustomCategory is the persisted shape of a custom category.
type RawCustomCategory struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Color string `json:"color"`
	Emoji string `json:"emoji"`
}

// RawCategoryBudget is the persisted shape of a per-category budget.
type RawCategoryBudget struct {
	Category string  `json:"category"`
	Amount   float64 `json:"amount"`
}
