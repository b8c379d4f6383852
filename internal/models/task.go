package models

import "time"

// TaskImportance represents the importance level of a task.
type TaskImportance string

const (
	TaskImportanceLow    TaskImportance = "low"
	TaskImportanceMedium TaskImportance = "medium"
	TaskImportanceHigh   TaskImportance = "high"
)

// TaskStatus represents the lifecycle state of a task. It supersedes an
// earlier boolean completed flag, which is remapped on load.
type TaskStatus string

const (
	TaskStatusTodo       TaskStatus = "todo"
	TaskStatusInProgress TaskStatus = "inprogress"
	TaskStatusDone       TaskStatus = "done"
)

// Task represents a planned piece of work with a deadline.
// StartTime and EndTime are free-form time-of-day strings set by the
// user (e.g. "14:00"), not timestamps.
type Task struct {
	ID              string         `json:"id"`
	Description     string         `json:"description"`
	Deadline        time.Time      `json:"deadline"`
	Importance      TaskImportance `json:"importance"`
	EstimatedEffort string         `json:"estimated_effort"`
	Status          TaskStatus     `json:"status"`
	StartTime       string         `json:"start_time,omitempty"`
	EndTime         string         `json:"end_time,omitempty"`
}

// IsDone reports whether the task is completed. Done tasks are excluded
// from prioritization.
func (t Task) IsDone() bool {
	return t.Status == TaskStatusDone
}
