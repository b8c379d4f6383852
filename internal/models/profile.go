package models

// DefaultCategories are the built-in expense categories available to
// every profile, before any custom categories are added.
var DefaultCategories = []string{
	"Food",
	"Transport",
	"Shopping",
	"Bills",
	"Entertainment",
	"Health",
	"Education",
	"Gifts",
	"Other",
}

// SupportedCurrencies lists the currency codes the application accepts.
var SupportedCurrencies = []string{"BDT", "USD", "EUR", "GBP", "INR"}

// CustomCategory is a user-defined expense category.
type CustomCategory struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Color string `json:"color"`
	Emoji string `json:"emoji"`
}

// CategoryBudget assigns a monthly budget to a single category. At most
// one budget exists per category; setting a budget for an already
// budgeted category replaces it.
type CategoryBudget struct {
	Category string  `json:"category"`
	Amount   float64 `json:"amount"`
}

// UserProfile holds the single user's settings. Exactly one profile
// exists per installation; its absence routes the client to onboarding.
//
// SalaryPassword is stored and compared in plaintext. It is access
// obfuscation for the salary display, not authentication, and must not
// be treated as a security boundary.
type UserProfile struct {
	Name              string           `json:"name"`
	MonthlyBudget     float64          `json:"monthly_budget"`
	Currency          string           `json:"currency"`
	Salary            float64          `json:"salary,omitempty"`
	SalaryPassword    string           `json:"salary_password,omitempty"`
	CustomCategories  []CustomCategory `json:"custom_categories,omitempty"`
	CategoryBudgets   []CategoryBudget `json:"category_budgets,omitempty"`
	DefaultStatus     ExpenseStatus    `json:"default_status,omitempty"`
	DefaultRecurrence Recurrence       `json:"default_recurrence,omitempty"`
	APIKey            string           `json:"api_key,omitempty"`
	OCREngine         string           `json:"ocr_engine,omitempty"`
	Widgets           map[string]bool  `json:"widgets,omitempty"`
}

// CategoryNames returns the default categories followed by the user's
// custom category names.
func (p *UserProfile) CategoryNames() []string {
	names := make([]string, 0, len(DefaultCategories)+len(p.CustomCategories))
	names = append(names, DefaultCategories...)
	for _, c := range p.CustomCategories {
		names = append(names, c.Name)
	}
	return names
}

// HasCategory reports whether name matches a default or custom category.
func (p *UserProfile) HasCategory(name string) bool {
	for _, n := range p.CategoryNames() {
		if n == name {
			return true
		}
	}
	return false
}
