package schema

import (
	"testing"
	"time"
)

func TestParseDate(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  time.Time
	}{
		{
			name:  "rfc3339",
			input: "2024-05-10T14:30:00Z",
			want:  time.Date(2024, 5, 10, 14, 30, 0, 0, time.UTC),
		},
		{
			name:  "rfc3339 with fraction",
			input: "2024-05-10T14:30:00.25Z",
			want:  time.Date(2024, 5, 10, 14, 30, 0, 250000000, time.UTC),
		},
		{
			name:  "date only resolves to local midnight",
			input: "2024-05-10",
			want:  time.Date(2024, 5, 10, 0, 0, 0, 0, time.Local),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseDate(tt.input)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !got.Equal(tt.want) {
				t.Errorf("expected %v, got %v", tt.want, got)
			}
		})
	}

	t.Run("garbage is rejected", func(t *testing.T) {
		if _, err := ParseDate("not-a-date"); err == nil {
			t.Error("expected error for unrecognized date")
		}
	})
}

func TestParseExpensesRejectsBadDates(t *testing.T) {
	raws := []RawExpense{
		{ID: "e1", Title: "Lunch", Amount: 12, Date: "2024-05-10", Status: "completed", Recurrence: "one-time"},
		{ID: "e2", Title: "Broken", Amount: 5, Date: "yesterday-ish", Status: "completed", Recurrence: "one-time"},
		{ID: "e3", Title: "Rent", Amount: 900, Date: "2024-05-01T00:00:00Z", Status: "completed", Recurrence: "monthly"},
	}

	expenses, rejected := ParseExpenses(raws)

	if len(expenses) != 2 {
		t.Fatalf("expected 2 parsed expenses, got %d", len(expenses))
	}
	if expenses[0].ID != "e1" || expenses[1].ID != "e3" {
		t.Errorf("expected e1 and e3 to survive, got %q and %q", expenses[0].ID, expenses[1].ID)
	}
	if len(rejected) != 1 {
		t.Fatalf("expected 1 rejected record, got %d", len(rejected))
	}
	if rejected[0].ID != "e2" || rejected[0].Field != "date" {
		t.Errorf("expected e2 rejected on date, got %+v", rejected[0])
	}
}

func TestParseTaskAppliesMigration(t *testing.T) {
	task, perr := ParseTask(RawTask{
		ID:        "t1",
		Deadline:  "2024-06-01",
		Completed: boolPtr(true),
	})
	if perr != nil {
		t.Fatalf("unexpected parse error: %v", perr)
	}
	if !task.IsDone() {
		t.Errorf("expected migrated task to be done, got status %q", task.Status)
	}
}

func TestParseSavingsGoalRejectsOnAnyBadContributionDate(t *testing.T) {
	_, perr := ParseSavingsGoal(RawSavingsGoal{
		ID:        "g1",
		Name:      "Trip",
		Amount:    1000,
		CreatedAt: "2024-01-01",
		Contributions: []RawContribution{
			{ID: "c1", Amount: 100, Date: "2024-02-01"},
			{ID: "c2", Amount: 50, Date: "soon"},
		},
	})
	if perr == nil {
		t.Fatal("expected goal with a bad contribution date to be rejected")
	}
	if perr.Field != "contribution date" {
		t.Errorf("expected rejection on contribution date, got field %q", perr.Field)
	}
}

func TestParseSavingsGoalMigratesLegacyAmount(t *testing.T) {
	goal, perr := ParseSavingsGoal(RawSavingsGoal{
		ID:            "g1",
		Name:          "Trip",
		Amount:        1000,
		CreatedAt:     "2024-01-15",
		CurrentAmount: floatPtr(300),
	})
	if perr != nil {
		t.Fatalf("unexpected parse error: %v", perr)
	}
	if goal.Saved() != 300 {
		t.Errorf("expected saved total 300 after migration, got %v", goal.Saved())
	}
	if len(goal.Contributions) != 1 {
		t.Fatalf("expected 1 contribution, got %d", len(goal.Contributions))
	}
	want := time.Date(2024, 1, 15, 0, 0, 0, 0, time.Local)
	if !goal.Contributions[0].Date.Equal(want) {
		t.Errorf("expected synthetic contribution dated %v, got %v", want, goal.Contributions[0].Date)
	}
}

func TestParseProfileMigratesWidgets(t *testing.T) {
	profile := ParseProfile(RawProfile{
		Name:     "Ada",
		Currency: "USD",
		Widgets:  map[string]bool{"pendingSummary": true, "recurringSummary": false},
	})
	if !profile.Widgets[WidgetExpenseSummary] {
		t.Error("expected expenseSummary widget visible")
	}
	if _, ok := profile.Widgets["pendingSummary"]; ok {
		t.Error("expected legacy widget key removed")
	}
}
