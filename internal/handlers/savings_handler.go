package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	apperrors "fintrack/internal/errors"
	"fintrack/internal/services"
)

// SavingsHandler handles savings-goal requests.
type SavingsHandler struct {
	savingsService services.SavingsServicer
}

// NewSavingsHandler creates a new SavingsHandler.
func NewSavingsHandler(savingsService services.SavingsServicer) *SavingsHandler {
	return &SavingsHandler{savingsService: savingsService}
}

// CreateGoalRequest represents the payload for creating a savings goal.
type CreateGoalRequest struct {
	Name   string  `json:"name" binding:"required,min=1,max=200"`
	Amount float64 `json:"amount" binding:"required,gt=0"`
	Plan   string  `json:"plan" binding:"omitempty,max=10000"`
}

// UpdateGoalRequest represents a partial edit of a savings goal. Nil
// fields are left unchanged.
type UpdateGoalRequest struct {
	Name   string   `json:"name" binding:"omitempty,min=1,max=200"`
	Amount *float64 `json:"amount" binding:"omitempty,gt=0"`
	Plan   *string  `json:"plan" binding:"omitempty,max=10000"`
}

// ContributionRequest represents the payload for recording a contribution.
type ContributionRequest struct {
	Amount float64   `json:"amount" binding:"required,gt=0"`
	Date   time.Time `json:"date" binding:"required"`
}

// CreateGoal handles the creation of a new savings goal.
func (h *SavingsHandler) CreateGoal(c *gin.Context) {
	var req CreateGoalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	goal, err := h.savingsService.CreateGoal(req.Name, req.Amount, req.Plan)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"goal": goal})
}

// GetGoals handles listing all savings goals with progress.
func (h *SavingsHandler) GetGoals(c *gin.Context) {
	goals, err := h.savingsService.ListGoals()
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"goals": goals})
}

// GetGoal handles retrieving a single savings goal with progress.
func (h *SavingsHandler) GetGoal(c *gin.Context) {
	goal, err := h.savingsService.GetGoalByID(c.Param("id"))
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"goal": goal})
}

// UpdateGoal handles editing a savings goal.
func (h *SavingsHandler) UpdateGoal(c *gin.Context) {
	var req UpdateGoalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	goal, err := h.savingsService.UpdateGoal(c.Param("id"), req.Name, req.Amount, req.Plan)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"goal": goal})
}

// DeleteGoal handles deleting a savings goal and its contributions.
func (h *SavingsHandler) DeleteGoal(c *gin.Context) {
	if err := h.savingsService.DeleteGoal(c.Param("id")); err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Goal deleted successfully"})
}

// AddContribution handles recording a contribution toward a goal.
func (h *SavingsHandler) AddContribution(c *gin.Context) {
	var req ContributionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	goal, err := h.savingsService.AddContribution(c.Param("id"), req.Amount, req.Date)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"goal": goal})
}

// DeleteContribution handles removing a contribution from a goal.
func (h *SavingsHandler) DeleteContribution(c *gin.Context) {
	goal, err := h.savingsService.DeleteContribution(c.Param("id"), c.Param("contributionId"))
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"goal": goal})
}
