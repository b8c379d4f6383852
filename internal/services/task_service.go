package services

import (
	apperrors "fintrack/internal/errors"
	"fintrack/internal/models"
	"fintrack/internal/store"
	"fintrack/internal/uuid"
	"fintrack/internal/views"
)

// taskService handles task-related business logic.
type taskService struct {
	store *store.Store
}

// NewTaskService creates a new TaskServicer.
func NewTaskService(st *store.Store) TaskServicer {
	return &taskService{store: st}
}

// CreateTask appends a new task in the todo state.
func (s *taskService) CreateTask(input TaskInput) (*models.Task, error) {
	tasks, err := s.store.Tasks()
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	task := models.Task{
		ID:              uuid.New(),
		Description:     input.Description,
		Deadline:        input.Deadline,
		Importance:      input.Importance,
		EstimatedEffort: input.EstimatedEffort,
		Status:          models.TaskStatusTodo,
		StartTime:       input.StartTime,
		EndTime:         input.EndTime,
	}
	tasks = append(tasks, task)

	if err := s.store.SaveTasks(tasks); err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &task, nil
}

// ListTasks returns the tasks matching the query, in collection order.
func (s *taskService) ListTasks(query string) ([]models.Task, error) {
	tasks, err := s.store.Tasks()
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return views.FilterTasks(tasks, query), nil
}

// GetTaskByID returns a single task.
func (s *taskService) GetTaskByID(id string) (*models.Task, error) {
	tasks, err := s.store.Tasks()
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	for i := range tasks {
		if tasks[i].ID == id {
			return &tasks[i], nil
		}
	}
	return nil, apperrors.ErrTaskNotFound
}

// UpdateTask replaces a task's editable fields, preserving id and status.
func (s *taskService) UpdateTask(id string, input TaskInput) (*models.Task, error) {
	tasks, err := s.store.Tasks()
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	for i := range tasks {
		if tasks[i].ID != id {
			continue
		}
		tasks[i].Description = input.Description
		tasks[i].Deadline = input.Deadline
		tasks[i].Importance = input.Importance
		tasks[i].EstimatedEffort = input.EstimatedEffort
		tasks[i].StartTime = input.StartTime
		tasks[i].EndTime = input.EndTime
		if err := s.store.SaveTasks(tasks); err != nil {
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		return &tasks[i], nil
	}
	return nil, apperrors.ErrTaskNotFound
}

// UpdateTaskStatus moves a task between todo, inprogress, and done.
func (s *taskService) UpdateTaskStatus(id string, status models.TaskStatus) (*models.Task, error) {
	tasks, err := s.store.Tasks()
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	for i := range tasks {
		if tasks[i].ID != id {
			continue
		}
		tasks[i].Status = status
		if err := s.store.SaveTasks(tasks); err != nil {
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		return &tasks[i], nil
	}
	return nil, apperrors.ErrTaskNotFound
}

// DeleteTask removes a task from the collection.
func (s *taskService) DeleteTask(id string) error {
	tasks, err := s.store.Tasks()
	if err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	for i := range tasks {
		if tasks[i].ID != id {
			continue
		}
		tasks = append(tasks[:i], tasks[i+1:]...)
		if err := s.store.SaveTasks(tasks); err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		return nil
	}
	return apperrors.ErrTaskNotFound
}

// ReorderTasks applies an accepted prioritization to the incomplete
// tasks. The ids are re-validated against the current collection, so a
// stale suggestion (a task deleted after it was produced) is rejected
// instead of corrupting newer state. Done tasks keep their position at
// the end.
func (s *taskService) ReorderTasks(orderedIDs []string) ([]models.Task, error) {
	tasks, err := s.store.Tasks()
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	incomplete, done := views.SplitTasks(tasks)
	ordered, ok := views.OrderTasksByID(incomplete, orderedIDs)
	if !ok {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput,
			"Suggested order does not match the current incomplete tasks")
	}

	reordered := append(ordered, done...)
	if err := s.store.SaveTasks(reordered); err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return reordered, nil
}
