package schema

import (
	"testing"
)

func boolPtr(b bool) *bool        { return &b }
func floatPtr(f float64) *float64 { return &f }

func TestMigrateTask(t *testing.T) {
	tests := []struct {
		name       string
		task       RawTask
		wantStatus string
	}{
		{
			name:       "legacy completed true becomes done",
			task:       RawTask{ID: "t1", Completed: boolPtr(true)},
			wantStatus: "done",
		},
		{
			name:       "legacy completed false becomes todo",
			task:       RawTask{ID: "t2", Completed: boolPtr(false)},
			wantStatus: "todo",
		},
		{
			name:       "no legacy flag becomes todo",
			task:       RawTask{ID: "t3"},
			wantStatus: "todo",
		},
		{
			name:       "existing status wins over legacy flag",
			task:       RawTask{ID: "t4", Status: "inprogress", Completed: boolPtr(true)},
			wantStatus: "inprogress",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MigrateTask(tt.task)
			if got.Status != tt.wantStatus {
				t.Errorf("expected status %q, got %q", tt.wantStatus, got.Status)
			}
			if got.Completed != nil {
				t.Errorf("expected legacy completed flag cleared, got %v", *got.Completed)
			}
		})
	}
}

func TestMigrateTaskIdempotent(t *testing.T) {
	once := MigrateTask(RawTask{ID: "t1", Completed: boolPtr(true)})
	twice := MigrateTask(once)
	if twice != once {
		t.Errorf("second migration changed the record: %+v vs %+v", twice, once)
	}
}

func TestMigrateSavingsGoal(t *testing.T) {
	t.Run("positive legacy amount becomes one synthetic contribution", func(t *testing.T) {
		got := MigrateSavingsGoal(RawSavingsGoal{
			ID:            "g1",
			CreatedAt:     "2024-03-01",
			CurrentAmount: floatPtr(250),
		})
		if got.CurrentAmount != nil {
			t.Errorf("expected legacy amount cleared, got %v", *got.CurrentAmount)
		}
		if len(got.Contributions) != 1 {
			t.Fatalf("expected 1 synthetic contribution, got %d", len(got.Contributions))
		}
		c := got.Contributions[0]
		if c.Amount != 250 {
			t.Errorf("expected contribution amount 250, got %v", c.Amount)
		}
		if c.Date != "2024-03-01" {
			t.Errorf("expected contribution dated at goal creation, got %q", c.Date)
		}
		if c.ID == "" {
			t.Error("expected synthetic contribution to get an id")
		}
	})

	t.Run("zero legacy amount produces no contribution", func(t *testing.T) {
		got := MigrateSavingsGoal(RawSavingsGoal{
			ID:            "g2",
			CreatedAt:     "2024-03-01",
			CurrentAmount: floatPtr(0),
		})
		if len(got.Contributions) != 0 {
			t.Errorf("expected no contributions, got %d", len(got.Contributions))
		}
	})

	t.Run("existing contributions win over legacy amount", func(t *testing.T) {
		got := MigrateSavingsGoal(RawSavingsGoal{
			ID:            "g3",
			CreatedAt:     "2024-03-01",
			CurrentAmount: floatPtr(500),
			Contributions: []RawContribution{{ID: "c1", Amount: 100, Date: "2024-04-01"}},
		})
		if len(got.Contributions) != 1 || got.Contributions[0].ID != "c1" {
			t.Errorf("expected existing contributions untouched, got %+v", got.Contributions)
		}
	})

	t.Run("already migrated goal is untouched", func(t *testing.T) {
		goal := RawSavingsGoal{
			ID:            "g4",
			CreatedAt:     "2024-03-01",
			Contributions: []RawContribution{{ID: "c1", Amount: 100, Date: "2024-04-01"}},
		}
		got := MigrateSavingsGoal(goal)
		if len(got.Contributions) != 1 || got.Contributions[0] != goal.Contributions[0] {
			t.Errorf("expected no-op, got %+v", got.Contributions)
		}
	})
}

func TestMigrateProfileWidgets(t *testing.T) {
	t.Run("legacy keys collapse into expense summary", func(t *testing.T) {
		got := MigrateProfile(RawProfile{Widgets: map[string]bool{
			"pendingSummary":   true,
			"upcomingSummary":  false,
			"recurringSummary": true,
		}})
		if v, ok := got.Widgets[WidgetExpenseSummary]; !ok || !v {
			t.Errorf("expected expenseSummary=true, got %v (present=%v)", v, ok)
		}
		for _, legacy := range []string{"pendingSummary", "upcomingSummary", "recurringSummary"} {
			if _, ok := got.Widgets[legacy]; ok {
				t.Errorf("expected legacy key %q removed", legacy)
			}
		}
	})

	t.Run("hidden pending summary stays hidden", func(t *testing.T) {
		got := MigrateProfile(RawProfile{Widgets: map[string]bool{"pendingSummary": false}})
		if v := got.Widgets[WidgetExpenseSummary]; v {
			t.Errorf("expected expenseSummary=false, got %v", v)
		}
	})

	t.Run("already migrated profile is untouched", func(t *testing.T) {
		got := MigrateProfile(RawProfile{Widgets: map[string]bool{WidgetExpenseSummary: true}})
		if len(got.Widgets) != 1 || !got.Widgets[WidgetExpenseSummary] {
			t.Errorf("expected no-op, got %v", got.Widgets)
		}
	})

	t.Run("nil widget map is untouched", func(t *testing.T) {
		got := MigrateProfile(RawProfile{Name: "a"})
		if got.Widgets != nil {
			t.Errorf("expected nil widgets, got %v", got.Widgets)
		}
	})
}
