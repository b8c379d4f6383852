package services

import (
	"context"
	"errors"
	"time"

	"fintrack/internal/ai"
	apperrors "fintrack/internal/errors"
	"fintrack/internal/models"
	"fintrack/internal/store"
	"fintrack/internal/uuid"
	"fintrack/internal/views"
)

// dateOnly is the wire format for dates exchanged with the assistant.
const dateOnly = "2006-01-02"

// assistantService implements the AI-backed features. Collections are
// loaded only after a remote call has succeeded, so a failed or
// malformed response leaves every collection exactly as it was.
type assistantService struct {
	store   *store.Store
	factory AssistantFactory
}

// NewAssistantService creates a new AssistantServicer.
func NewAssistantService(st *store.Store, factory AssistantFactory) AssistantServicer {
	return &assistantService{store: st, factory: factory}
}

// assistant resolves the profile and the assistant client keyed with
// the profile's credential.
func (s *assistantService) assistant() (Assistant, *models.UserProfile, error) {
	profile, err := s.store.Profile()
	if err != nil {
		return nil, nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if profile == nil {
		return nil, nil, apperrors.ErrProfileNotFound
	}
	return s.factory(profile.APIKey), profile, nil
}

// mapAssistantErr translates adapter errors into AppErrors, keeping the
// missing-credential case distinct so the client can point the user at
// settings.
func mapAssistantErr(err error) error {
	if errors.Is(err, ai.ErrMissingCredential) {
		return apperrors.ErrAssistantKeyMissing
	}
	return apperrors.Wrap(apperrors.ErrAssistantUnavailable, err)
}

func profilePayload(p *models.UserProfile) ai.ProfilePayload {
	return ai.ProfilePayload{
		Name:          p.Name,
		MonthlyBudget: p.MonthlyBudget,
		Currency:      p.Currency,
	}
}

func expensePayloads(expenses []models.Expense) []ai.ExpensePayload {
	out := make([]ai.ExpensePayload, 0, len(expenses))
	for _, e := range expenses {
		out = append(out, ai.ExpensePayload{
			Title:      e.Title,
			Amount:     e.Amount,
			Date:       e.Date.Format(dateOnly),
			Category:   e.Category,
			Status:     string(e.Status),
			Recurrence: string(e.Recurrence),
		})
	}
	return out
}

func taskPayloads(tasks []models.Task) []ai.TaskPayload {
	out := make([]ai.TaskPayload, 0, len(tasks))
	for _, t := range tasks {
		out = append(out, ai.TaskPayload{
			ID:              t.ID,
			Description:     t.Description,
			Deadline:        t.Deadline.Format(dateOnly),
			Importance:      string(t.Importance),
			EstimatedEffort: t.EstimatedEffort,
		})
	}
	return out
}

// validCategory returns suggested if the profile knows it, otherwise
// the first available category.
func validCategory(profile *models.UserProfile, suggested string) string {
	if profile.HasCategory(suggested) {
		return suggested
	}
	return profile.CategoryNames()[0]
}

// render wraps assistant Markdown with its sanitized HTML form.
func render(md string) (*RenderedText, error) {
	html, err := ai.RenderMarkdown(md)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrAssistantBadReply, err)
	}
	return &RenderedText{Markdown: md, HTML: html}, nil
}

// CategorizeExpense suggests a category for an expense title. An
// out-of-vocabulary suggestion falls back to the first available
// category rather than propagating an unknown value.
func (s *assistantService) CategorizeExpense(ctx context.Context, title string) (string, error) {
	assistant, profile, err := s.assistant()
	if err != nil {
		return "", err
	}

	resp, err := assistant.Categorize(ctx, ai.CategorizeRequest{
		Title:      title,
		Categories: profile.CategoryNames(),
	})
	if err != nil {
		return "", mapAssistantErr(err)
	}
	return validCategory(profile, resp.Category), nil
}

// ScanReceipt extracts an expense from a receipt and appends it to the
// collection. The date comes back as YYYY-MM-DD and is anchored at
// local midnight; the suggested category is re-validated against the
// profile's categories.
func (s *assistantService) ScanReceipt(ctx context.Context, photoDataURI, rawText string) (*models.Expense, error) {
	assistant, profile, err := s.assistant()
	if err != nil {
		return nil, err
	}

	resp, err := assistant.ScanReceipt(ctx, ai.ReceiptScanRequest{
		PhotoDataURI: photoDataURI,
		RawText:      rawText,
		Categories:   profile.CategoryNames(),
	})
	if err != nil {
		return nil, mapAssistantErr(err)
	}

	if resp.Amount <= 0 || resp.Title == "" {
		return nil, apperrors.ErrAssistantBadReply
	}
	date, err := time.ParseInLocation(dateOnly, resp.Date, time.Local)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrAssistantBadReply, err)
	}

	status := profile.DefaultStatus
	if status == "" {
		status = models.ExpenseStatusCompleted
	}
	recurrence := profile.DefaultRecurrence
	if recurrence == "" {
		recurrence = models.RecurrenceOneTime
	}

	// The collection is read only now that the scan succeeded.
	expenses, err := s.store.Expenses()
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	expense := models.Expense{
		ID:         uuid.New(),
		Title:      resp.Title,
		Amount:     resp.Amount,
		Date:       date,
		Category:   validCategory(profile, resp.Category),
		Status:     status,
		Recurrence: recurrence,
		Notes:      resp.Notes,
	}
	expenses = append(expenses, expense)
	if err := s.store.SaveExpenses(expenses); err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &expense, nil
}

// PrioritizeTasks asks for a suggested order over the incomplete tasks.
// The suggestion is advisory: it is returned to the caller and only
// applied through TaskServicer.ReorderTasks on explicit acceptance.
// Correlation is by task id; a response naming unknown ids is rejected.
func (s *assistantService) PrioritizeTasks(ctx context.Context) (*PrioritizationSuggestion, error) {
	assistant, _, err := s.assistant()
	if err != nil {
		return nil, err
	}

	tasks, err := s.store.Tasks()
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	incomplete, _ := views.SplitTasks(tasks)
	if len(incomplete) == 0 {
		return &PrioritizationSuggestion{Tasks: []models.Task{}}, nil
	}

	resp, err := assistant.Prioritize(ctx, ai.PrioritizeRequest{Tasks: taskPayloads(incomplete)})
	if err != nil {
		return nil, mapAssistantErr(err)
	}

	ordered, ok := views.OrderTasksByID(incomplete, resp.OrderedIDs)
	if !ok {
		return nil, apperrors.ErrAssistantBadReply
	}
	return &PrioritizationSuggestion{Tasks: ordered, Reasoning: resp.Reasoning}, nil
}

// GenerateReport produces a spending report over the expenses in the
// given date range.
func (s *assistantService) GenerateReport(ctx context.Context, dateRange string) (*RenderedText, error) {
	assistant, profile, err := s.assistant()
	if err != nil {
		return nil, err
	}

	expenses, err := s.store.Expenses()
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	filtered := views.FilterExpenses(expenses, views.ExpenseFilter{DateRange: dateRange}, time.Now())

	resp, err := assistant.Report(ctx, ai.ReportRequest{
		Profile:  profilePayload(profile),
		Expenses: expensePayloads(filtered),
		Period:   dateRange,
	})
	if err != nil {
		return nil, mapAssistantErr(err)
	}
	return render(resp.Report)
}

// GenerateSavingsPlan produces a plan toward a goal. With a goal id the
// stored goal's name, target, and saved total are used; otherwise the
// provided name and amount describe a goal not yet created.
func (s *assistantService) GenerateSavingsPlan(ctx context.Context, goalID, name string, amount float64) (*RenderedText, error) {
	assistant, profile, err := s.assistant()
	if err != nil {
		return nil, err
	}

	var saved float64
	if goalID != "" {
		goals, err := s.store.SavingsGoals()
		if err != nil {
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		found := false
		for _, g := range goals {
			if g.ID == goalID {
				name = g.Name
				amount = g.Amount
				saved = g.Saved()
				found = true
				break
			}
		}
		if !found {
			return nil, apperrors.ErrGoalNotFound
		}
	}

	resp, err := assistant.SavingsPlan(ctx, ai.SavingsPlanRequest{
		Profile:    profilePayload(profile),
		GoalName:   name,
		GoalAmount: amount,
		Saved:      saved,
	})
	if err != nil {
		return nil, mapAssistantErr(err)
	}
	return render(resp.Plan)
}

// SummarizeDay produces a summary of one day's expenses and deadlines.
func (s *assistantService) SummarizeDay(ctx context.Context, day time.Time) (*RenderedText, error) {
	assistant, _, err := s.assistant()
	if err != nil {
		return nil, err
	}

	expenses, err := s.store.Expenses()
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	tasks, err := s.store.Tasks()
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	dayView := views.DayView(expenses, tasks, day)

	resp, err := assistant.CalendarSummary(ctx, ai.CalendarSummaryRequest{
		Date:     day.Format(dateOnly),
		Expenses: expensePayloads(dayView.Expenses),
		Tasks:    taskPayloads(dayView.Tasks),
	})
	if err != nil {
		return nil, mapAssistantErr(err)
	}
	return render(resp.Summary)
}

// Chat continues the financial chat with the profile and current-month
// expenses as context.
func (s *assistantService) Chat(ctx context.Context, messages []ai.ChatMessage) (*RenderedText, error) {
	assistant, profile, err := s.assistant()
	if err != nil {
		return nil, err
	}

	expenses, err := s.store.Expenses()
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	monthly := views.FilterExpenses(expenses, views.ExpenseFilter{DateRange: views.RangeMonth}, time.Now())

	resp, err := assistant.Chat(ctx, ai.ChatRequest{
		Profile:  profilePayload(profile),
		Expenses: expensePayloads(monthly),
		Messages: messages,
	})
	if err != nil {
		return nil, mapAssistantErr(err)
	}
	return render(resp.Reply)
}
