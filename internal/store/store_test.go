package store_test

import (
	"testing"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"fintrack/internal/models"
	"fintrack/internal/store"
	"fintrack/internal/testutil"
)

func openStore(t *testing.T) (*store.Store, *gorm.DB) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	st, err := store.New(db)
	if err != nil {
		t.Fatalf("failed to create store: %v", err)
	}
	t.Cleanup(func() { st.Close() })
	return st, db
}

func TestExpensesRoundTrip(t *testing.T) {
	st, _ := openStore(t)

	day := time.Date(2024, 5, 10, 14, 30, 0, 0, time.UTC)
	in := []models.Expense{testutil.TestExpense(day)}
	testutil.AssertNoError(t, st.SaveExpenses(in))

	out, err := st.Expenses()
	testutil.AssertNoError(t, err)

	if len(out) != 1 {
		t.Fatalf("expected 1 expense, got %d", len(out))
	}
	if out[0].ID != in[0].ID || out[0].Title != in[0].Title {
		t.Errorf("expected %+v, got %+v", in[0], out[0])
	}
	if !out[0].Date.Equal(day) {
		t.Errorf("expected date %v, got %v", day, out[0].Date)
	}
}

func TestMissingKeysLoadEmpty(t *testing.T) {
	st, _ := openStore(t)

	expenses, err := st.Expenses()
	testutil.AssertNoError(t, err)
	if len(expenses) != 0 {
		t.Errorf("expected empty expense collection, got %d", len(expenses))
	}

	tasks, err := st.Tasks()
	testutil.AssertNoError(t, err)
	if len(tasks) != 0 {
		t.Errorf("expected empty task collection, got %d", len(tasks))
	}

	goals, err := st.SavingsGoals()
	testutil.AssertNoError(t, err)
	if len(goals) != 0 {
		t.Errorf("expected empty goal collection, got %d", len(goals))
	}

	profile, err := st.Profile()
	testutil.AssertNoError(t, err)
	if profile != nil {
		t.Errorf("expected nil profile before onboarding, got %+v", profile)
	}
}

func TestCorruptBlobFallsBackToEmpty(t *testing.T) {
	st, db := openStore(t)

	blob := store.Blob{Key: store.KeyExpenses, Value: []byte("{not json"), UpdatedAt: time.Now()}
	if err := db.Create(&blob).Error; err != nil {
		t.Fatalf("failed to plant corrupt blob: %v", err)
	}

	expenses, err := st.Expenses()
	testutil.AssertNoError(t, err)
	if len(expenses) != 0 {
		t.Errorf("expected empty collection from corrupt blob, got %d", len(expenses))
	}
}

func TestSaveReplacesWholeCollection(t *testing.T) {
	st, _ := openStore(t)

	day := time.Date(2024, 5, 10, 0, 0, 0, 0, time.UTC)
	first := testutil.TestExpense(day)
	second := testutil.TestExpense(day)

	testutil.AssertNoError(t, st.SaveExpenses([]models.Expense{first, second}))
	testutil.AssertNoError(t, st.SaveExpenses([]models.Expense{second}))

	out, err := st.Expenses()
	testutil.AssertNoError(t, err)
	if len(out) != 1 || out[0].ID != second.ID {
		t.Errorf("expected last write to win with only %q, got %+v", second.ID, out)
	}
}

func TestTasksLoadAppliesMigration(t *testing.T) {
	st, db := openStore(t)

	legacy := []byte(`[{"id":"t1","description":"Old task","deadline":"2024-06-01","importance":"high","completed":true}]`)
	blob := store.Blob{Key: store.KeyTasks, Value: legacy, UpdatedAt: time.Now()}
	if err := db.Create(&blob).Error; err != nil {
		t.Fatalf("failed to plant legacy blob: %v", err)
	}

	tasks, err := st.Tasks()
	testutil.AssertNoError(t, err)
	if len(tasks) != 1 {
		t.Fatalf("expected 1 task, got %d", len(tasks))
	}
	if tasks[0].Status != models.TaskStatusDone {
		t.Errorf("expected migrated status done, got %q", tasks[0].Status)
	}
}

func TestUnreadableRecordsAreDropped(t *testing.T) {
	st, db := openStore(t)

	mixed := []byte(`[
		{"id":"e1","title":"Good","amount":10,"date":"2024-05-10","status":"completed","recurrence":"one-time"},
		{"id":"e2","title":"Bad","amount":5,"date":"whenever","status":"completed","recurrence":"one-time"}
	]`)
	blob := store.Blob{Key: store.KeyExpenses, Value: mixed, UpdatedAt: time.Now()}
	if err := db.Create(&blob).Error; err != nil {
		t.Fatalf("failed to plant blob: %v", err)
	}

	expenses, err := st.Expenses()
	testutil.AssertNoError(t, err)
	if len(expenses) != 1 || expenses[0].ID != "e1" {
		t.Errorf("expected only the readable record, got %+v", expenses)
	}
}

func TestProfileRoundTripWithWidgetMigration(t *testing.T) {
	st, db := openStore(t)

	legacy := []byte(`{"name":"Ada","monthly_budget":1200,"currency":"USD","widgets":{"pendingSummary":true,"upcomingSummary":true,"recurringSummary":false}}`)
	blob := store.Blob{Key: store.KeyProfile, Value: legacy, UpdatedAt: time.Now()}
	if err := db.Create(&blob).Error; err != nil {
		t.Fatalf("failed to plant legacy profile: %v", err)
	}

	profile, err := st.Profile()
	testutil.AssertNoError(t, err)
	if profile == nil {
		t.Fatal("expected a profile")
	}
	if !profile.Widgets["expenseSummary"] {
		t.Error("expected expenseSummary widget visible after migration")
	}
	if _, ok := profile.Widgets["pendingSummary"]; ok {
		t.Error("expected legacy widget key removed")
	}

	testutil.AssertNoError(t, st.SaveProfile(profile))
	again, err := st.Profile()
	testutil.AssertNoError(t, err)
	if again.Name != "Ada" || again.MonthlyBudget != 1200 {
		t.Errorf("expected profile to round-trip, got %+v", again)
	}
}
