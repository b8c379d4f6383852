package services

import (
	"testing"
	"time"

	"fintrack/internal/testutil"
)

func TestCreateGoal(t *testing.T) {
	st := testutil.SetupTestStore(t)
	svc := NewSavingsService(st)

	goal, err := svc.CreateGoal("New laptop", 1500, "")
	testutil.AssertNoError(t, err)

	if goal.ID == "" {
		t.Fatal("expected a generated id")
	}
	if len(goal.Contributions) != 0 {
		t.Errorf("expected empty contribution history, got %d", len(goal.Contributions))
	}
}

func TestContributionRoundTrip(t *testing.T) {
	st := testutil.SetupTestStore(t)
	svc := NewSavingsService(st)

	goal, err := svc.CreateGoal("Trip", 1000, "")
	testutil.AssertNoError(t, err)

	day := time.Date(2024, 5, 10, 0, 0, 0, 0, time.UTC)
	withFirst, err := svc.AddContribution(goal.ID, 200, day)
	testutil.AssertNoError(t, err)
	withSecond, err := svc.AddContribution(goal.ID, 300, day.AddDate(0, 0, 7))
	testutil.AssertNoError(t, err)

	if withFirst.Saved() != 200 || withSecond.Saved() != 500 {
		t.Errorf("expected progress 200 then 500, got %v then %v", withFirst.Saved(), withSecond.Saved())
	}

	// Deleting a contribution reduces progress by exactly its amount.
	after, err := svc.DeleteContribution(goal.ID, withSecond.Contributions[0].ID)
	testutil.AssertNoError(t, err)
	if after.Saved() != 300 {
		t.Errorf("expected progress 300 after deletion, got %v", after.Saved())
	}

	t.Run("unknown contribution", func(t *testing.T) {
		_, err := svc.DeleteContribution(goal.ID, "missing")
		testutil.AssertAppError(t, err, "CONTRIBUTION_NOT_FOUND")
	})
}

func TestContributionsMayExceedTarget(t *testing.T) {
	st := testutil.SetupTestStore(t)
	svc := NewSavingsService(st)

	goal, err := svc.CreateGoal("Small goal", 100, "")
	testutil.AssertNoError(t, err)

	day := time.Date(2024, 5, 10, 0, 0, 0, 0, time.UTC)
	_, err = svc.AddContribution(goal.ID, 150, day)
	testutil.AssertNoError(t, err)

	got, err := svc.GetGoalByID(goal.ID)
	testutil.AssertNoError(t, err)
	if got.Progress.RawPercent != 150 {
		t.Errorf("expected raw percent 150, got %v", got.Progress.RawPercent)
	}
}

func TestUpdateGoal(t *testing.T) {
	st := testutil.SetupTestStore(t)
	svc := NewSavingsService(st)

	goal, err := svc.CreateGoal("Trip", 1000, "old plan")
	testutil.AssertNoError(t, err)

	amount := 2000.0
	updated, err := svc.UpdateGoal(goal.ID, "Big trip", &amount, nil)
	testutil.AssertNoError(t, err)

	if updated.Name != "Big trip" || updated.Amount != 2000 {
		t.Errorf("unexpected goal %+v", updated)
	}
	if updated.Plan != "old plan" {
		t.Errorf("expected plan untouched without an explicit edit, got %q", updated.Plan)
	}

	plan := "new plan"
	updated, err = svc.UpdateGoal(goal.ID, "", nil, &plan)
	testutil.AssertNoError(t, err)
	if updated.Plan != "new plan" || updated.Name != "Big trip" {
		t.Errorf("unexpected goal after plan edit %+v", updated)
	}
}

func TestDeleteGoalRemovesHistory(t *testing.T) {
	st := testutil.SetupTestStore(t)
	svc := NewSavingsService(st)

	goal, err := svc.CreateGoal("Trip", 1000, "")
	testutil.AssertNoError(t, err)
	_, err = svc.AddContribution(goal.ID, 100, time.Now())
	testutil.AssertNoError(t, err)

	testutil.AssertNoError(t, svc.DeleteGoal(goal.ID))

	_, err = svc.GetGoalByID(goal.ID)
	testutil.AssertAppError(t, err, "GOAL_NOT_FOUND")

	goals, err := svc.ListGoals()
	testutil.AssertNoError(t, err)
	if len(goals) != 0 {
		t.Errorf("expected no goals, got %d", len(goals))
	}
}
