package views

import (
	"testing"
	"time"

	"fintrack/internal/models"
)

func taskWith(id string, status models.TaskStatus, deadline time.Time) models.Task {
	return models.Task{ID: id, Description: "Task " + id, Status: status, Deadline: deadline}
}

func TestSplitTasks(t *testing.T) {
	day := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	tasks := []models.Task{
		taskWith("t1", models.TaskStatusTodo, day),
		taskWith("t2", models.TaskStatusDone, day),
		taskWith("t3", models.TaskStatusInProgress, day),
	}

	incomplete, done := SplitTasks(tasks)
	if len(incomplete) != 2 || incomplete[0].ID != "t1" || incomplete[1].ID != "t3" {
		t.Errorf("expected t1 and t3 incomplete, got %+v", incomplete)
	}
	if len(done) != 1 || done[0].ID != "t2" {
		t.Errorf("expected t2 done, got %+v", done)
	}
}

func TestSortTasksByDeadline(t *testing.T) {
	base := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	tasks := []models.Task{
		taskWith("later", models.TaskStatusTodo, base.AddDate(0, 0, 5)),
		taskWith("sooner", models.TaskStatusTodo, base),
	}

	sorted := SortTasksByDeadline(tasks)
	if sorted[0].ID != "sooner" || sorted[1].ID != "later" {
		t.Errorf("expected earliest deadline first, got %+v", sorted)
	}
	if tasks[0].ID != "later" {
		t.Error("input slice should not be modified")
	}
}

func TestOrderTasksByID(t *testing.T) {
	day := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	tasks := []models.Task{
		taskWith("a", models.TaskStatusTodo, day),
		taskWith("b", models.TaskStatusTodo, day),
		taskWith("c", models.TaskStatusTodo, day),
	}

	tests := []struct {
		name   string
		ids    []string
		wantOK bool
	}{
		{name: "valid permutation", ids: []string{"c", "a", "b"}, wantOK: true},
		{name: "unknown id", ids: []string{"c", "a", "x"}, wantOK: false},
		{name: "duplicate id", ids: []string{"a", "a", "b"}, wantOK: false},
		{name: "too few ids", ids: []string{"a", "b"}, wantOK: false},
		{name: "too many ids", ids: []string{"a", "b", "c", "c"}, wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ordered, ok := OrderTasksByID(tasks, tt.ids)
			if ok != tt.wantOK {
				t.Fatalf("expected ok=%v, got %v", tt.wantOK, ok)
			}
			if !ok {
				return
			}
			for i, id := range tt.ids {
				if ordered[i].ID != id {
					t.Errorf("expected %q at position %d, got %q", id, i, ordered[i].ID)
				}
			}
		})
	}
}
