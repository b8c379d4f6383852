// Package ai is the boundary to the external assistant service. It
// shapes domain data into request payloads and maps structured
// responses back; prompt wording and model selection live on the other
// side of the wire. Every call either returns a structured result or an
// error the caller must treat as recoverable.
package ai

// CategorizeRequest asks for a category suggestion for an expense
// title. The suggestion must be one of Categories; callers re-validate
// membership and fall back to their own choice if it is not.
type CategorizeRequest struct {
	Title      string   `json:"title"`
	Categories []string `json:"categories"`
}

// CategorizeResponse is the suggested category.
type CategorizeResponse struct {
	Category string `json:"category"`
}

// ReceiptScanRequest asks for expense fields extracted from a receipt.
// Exactly one of PhotoDataURI (base64 data URI) or RawText (pre-OCRed
// text) should be set.
type ReceiptScanRequest struct {
	PhotoDataURI string   `json:"photo_data_uri,omitempty"`
	RawText      string   `json:"raw_text,omitempty"`
	Categories   []string `json:"categories"`
}

// ReceiptScanResponse is the extracted expense draft. Date is a
// YYYY-MM-DD string; callers parse it at local midnight to avoid
// timezone drift.
type ReceiptScanResponse struct {
	Title    string  `json:"title"`
	Amount   float64 `json:"amount"`
	Date     string  `json:"date"`
	Category string  `json:"category"`
	Notes    string  `json:"notes,omitempty"`
}

// TaskPayload is one task as sent for prioritization. IDs ride along so
// the suggested order can be correlated back without relying on
// description equality.
type TaskPayload struct {
	ID              string `json:"id"`
	Description     string `json:"description"`
	Deadline        string `json:"deadline"`
	Importance      string `json:"importance"`
	EstimatedEffort string `json:"estimated_effort"`
}

// PrioritizeRequest asks for a suggested working order over the given
// incomplete tasks.
type PrioritizeRequest struct {
	Tasks []TaskPayload `json:"tasks"`
}

// PrioritizeResponse is the suggested order as task ids plus the
// reasoning behind it. The order is advisory until the user accepts it.
type PrioritizeResponse struct {
	OrderedIDs []string `json:"ordered_ids"`
	Reasoning  string   `json:"reasoning"`
}

// ProfilePayload is the profile snapshot included in free-form text
// requests. The salary, its password, and the API key never leave the
// application.
type ProfilePayload struct {
	Name          string  `json:"name"`
	MonthlyBudget float64 `json:"monthly_budget"`
	Currency      string  `json:"currency"`
}

// ExpensePayload is one expense as serialized into text requests.
type ExpensePayload struct {
	Title      string  `json:"title"`
	Amount     float64 `json:"amount"`
	Date       string  `json:"date"`
	Category   string  `json:"category"`
	Status     string  `json:"status"`
	Recurrence string  `json:"recurrence"`
}

// ReportRequest asks for a spending report over the filtered expenses.
type ReportRequest struct {
	Profile  ProfilePayload   `json:"profile"`
	Expenses []ExpensePayload `json:"expenses"`
	Period   string           `json:"period"`
}

// ReportResponse is the generated report as Markdown text.
type ReportResponse struct {
	Report string `json:"report"`
}

// SavingsPlanRequest asks for a savings plan toward a goal.
type SavingsPlanRequest struct {
	Profile    ProfilePayload `json:"profile"`
	GoalName   string         `json:"goal_name"`
	GoalAmount float64        `json:"goal_amount"`
	Saved      float64        `json:"saved"`
}

// SavingsPlanResponse is the generated plan as Markdown text.
type SavingsPlanResponse struct {
	Plan string `json:"plan"`
}

// CalendarSummaryRequest asks for a summary of one day's expenses and
// task deadlines.
type CalendarSummaryRequest struct {
	Date     string           `json:"date"`
	Expenses []ExpensePayload `json:"expenses"`
	Tasks    []TaskPayload    `json:"tasks"`
}

// CalendarSummaryResponse is the generated summary as Markdown text.
type CalendarSummaryResponse struct {
	Summary string `json:"summary"`
}

// ChatMessage is one turn of the financial chat.
type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// ChatRequest carries the conversation so far plus a snapshot of the
// profile and filtered expenses as context.
type ChatRequest struct {
	Profile  ProfilePayload   `json:"profile"`
	Expenses []ExpensePayload `json:"expenses"`
	Messages []ChatMessage    `json:"messages"`
}

// ChatResponse is the assistant's reply as Markdown text.
type ChatResponse struct {
	Reply string `json:"reply"`
}
