package views

import (
	"sort"

	"fintrack/internal/models"
)

// SplitTasks partitions tasks into incomplete and done. Only incomplete
// tasks participate in prioritization.
func SplitTasks(tasks []models.Task) (incomplete, done []models.Task) {
	for _, t := range tasks {
		if t.IsDone() {
			done = append(done, t)
		} else {
			incomplete = append(incomplete, t)
		}
	}
	return incomplete, done
}

// SortTasksByDeadline returns the tasks ordered by deadline, earliest
// first. The input is not modified.
func SortTasksByDeadline(tasks []models.Task) []models.Task {
	sorted := make([]models.Task, len(tasks))
	copy(sorted, tasks)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Deadline.Before(sorted[j].Deadline)
	})
	return sorted
}

// OrderTasksByID arranges tasks in the given id order. Every id must
// name an existing task and every task must be named exactly once;
// otherwise ok is false and the original order should be kept. This is
// the guard applied to an externally suggested ordering before it is
// accepted.
func OrderTasksByID(tasks []models.Task, ids []string) ([]models.Task, bool) {
	if len(ids) != len(tasks) {
		return nil, false
	}
	byID := make(map[string]models.Task, len(tasks))
	for _, t := range tasks {
		byID[t.ID] = t
	}
	ordered := make([]models.Task, 0, len(ids))
	for _, id := range ids {
		t, ok := byID[id]
		if !ok {
			return nil, false
		}
		ordered = append(ordered, t)
		delete(byID, id)
	}
	return ordered, true
}
