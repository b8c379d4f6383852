package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	apperrors "fintrack/internal/errors"
	"fintrack/internal/models"
	"fintrack/internal/services"
)

// TaskHandler handles task-related requests.
type TaskHandler struct {
	taskService services.TaskServicer
}

// NewTaskHandler creates a new TaskHandler.
func NewTaskHandler(taskService services.TaskServicer) *TaskHandler {
	return &TaskHandler{taskService: taskService}
}

// TaskRequest represents the payload for creating or updating a task.
type TaskRequest struct {
	Description     string    `json:"description" binding:"required,min=1,max=500"`
	Deadline        time.Time `json:"deadline" binding:"required"`
	Importance      string    `json:"importance" binding:"required,task_importance"`
	EstimatedEffort string    `json:"estimated_effort" binding:"omitempty,max=100"`
	StartTime       string    `json:"start_time" binding:"omitempty,max=20"`
	EndTime         string    `json:"end_time" binding:"omitempty,max=20"`
}

// TaskStatusRequest represents a status transition payload.
type TaskStatusRequest struct {
	Status string `json:"status" binding:"required,task_status"`
}

// ReorderTasksRequest represents an accepted prioritization order.
type ReorderTasksRequest struct {
	OrderedIDs []string `json:"ordered_ids" binding:"required,min=1"`
}

func (r TaskRequest) toInput() services.TaskInput {
	return services.TaskInput{
		Description:     r.Description,
		Deadline:        r.Deadline,
		Importance:      models.TaskImportance(r.Importance),
		EstimatedEffort: r.EstimatedEffort,
		StartTime:       r.StartTime,
		EndTime:         r.EndTime,
	}
}

// CreateTask handles the creation of a new task.
func (h *TaskHandler) CreateTask(c *gin.Context) {
	var req TaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	task, err := h.taskService.CreateTask(req.toInput())
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"task": task})
}

// GetTasks handles listing tasks, optionally filtered by a text query.
func (h *TaskHandler) GetTasks(c *gin.Context) {
	tasks, err := h.taskService.ListTasks(c.Query("q"))
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"tasks": tasks})
}

// GetTask handles retrieving a single task.
func (h *TaskHandler) GetTask(c *gin.Context) {
	task, err := h.taskService.GetTaskByID(c.Param("id"))
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"task": task})
}

// UpdateTask handles editing a task's fields.
func (h *TaskHandler) UpdateTask(c *gin.Context) {
	var req TaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	task, err := h.taskService.UpdateTask(c.Param("id"), req.toInput())
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"task": task})
}

// UpdateTaskStatus handles moving a task between todo, inprogress, and done.
func (h *TaskHandler) UpdateTaskStatus(c *gin.Context) {
	var req TaskStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	task, err := h.taskService.UpdateTaskStatus(c.Param("id"), models.TaskStatus(req.Status))
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"task": task})
}

// DeleteTask handles deleting a task.
func (h *TaskHandler) DeleteTask(c *gin.Context) {
	if err := h.taskService.DeleteTask(c.Param("id")); err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Task deleted successfully"})
}

// ReorderTasks applies an accepted prioritization order.
func (h *TaskHandler) ReorderTasks(c *gin.Context) {
	var req ReorderTasksRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	tasks, err := h.taskService.ReorderTasks(req.OrderedIDs)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"tasks": tasks})
}
