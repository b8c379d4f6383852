package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "fintrack/internal/errors"
	"fintrack/internal/models"
	"fintrack/internal/services"
)

// ProfileHandler handles profile and settings requests.
type ProfileHandler struct {
	profileService services.ProfileServicer
}

// NewProfileHandler creates a new ProfileHandler.
func NewProfileHandler(profileService services.ProfileServicer) *ProfileHandler {
	return &ProfileHandler{profileService: profileService}
}

// ProfileRequest represents the payload for creating or replacing the
// profile. Optional settings are carried as-is; the salary password is
// plaintext display obfuscation, not a credential.
type ProfileRequest struct {
	Name              string  `json:"name" binding:"required,min=1,max=100"`
	MonthlyBudget     float64 `json:"monthly_budget" binding:"required,gt=0"`
	Currency          string  `json:"currency" binding:"required,currency"`
	Salary            float64 `json:"salary" binding:"omitempty,gte=0"`
	SalaryPassword    string  `json:"salary_password" binding:"omitempty,max=100"`
	DefaultStatus     string  `json:"default_status" binding:"omitempty,expense_status"`
	DefaultRecurrence string  `json:"default_recurrence" binding:"omitempty,recurrence"`
	APIKey            string  `json:"api_key" binding:"omitempty,max=200"`
	OCREngine         string  `json:"ocr_engine" binding:"omitempty,max=50"`
}

// CategoryBudgetRequest represents the payload for setting a category budget.
type CategoryBudgetRequest struct {
	Category string  `json:"category" binding:"required,min=1,max=100"`
	Amount   float64 `json:"amount" binding:"required,gt=0"`
}

// CustomCategoryRequest represents the payload for adding a custom category.
type CustomCategoryRequest struct {
	Name  string `json:"name" binding:"required,min=1,max=100"`
	Color string `json:"color" binding:"omitempty,hex_color"`
	Emoji string `json:"emoji" binding:"omitempty,max=10"`
}

// RevealSalaryRequest represents the payload for unlocking the salary display.
type RevealSalaryRequest struct {
	Password string `json:"password" binding:"required"`
}

// GetProfile handles retrieving the profile. A 404 routes the client to
// onboarding.
func (h *ProfileHandler) GetProfile(c *gin.Context) {
	profile, err := h.profileService.GetProfile()
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"profile": profile})
}

// SaveProfile handles creating or replacing the profile. Existing
// custom categories, category budgets, and widget settings survive the
// replace.
func (h *ProfileHandler) SaveProfile(c *gin.Context) {
	var req ProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	profile := models.UserProfile{
		Name:              req.Name,
		MonthlyBudget:     req.MonthlyBudget,
		Currency:          req.Currency,
		Salary:            req.Salary,
		SalaryPassword:    req.SalaryPassword,
		DefaultStatus:     models.ExpenseStatus(req.DefaultStatus),
		DefaultRecurrence: models.Recurrence(req.DefaultRecurrence),
		APIKey:            req.APIKey,
		OCREngine:         req.OCREngine,
	}
	if existing, err := h.profileService.GetProfile(); err == nil {
		profile.CustomCategories = existing.CustomCategories
		profile.CategoryBudgets = existing.CategoryBudgets
		profile.Widgets = existing.Widgets
	}

	saved, err := h.profileService.SaveProfile(profile)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"profile": saved})
}

// SetCategoryBudget handles setting or replacing a category budget.
func (h *ProfileHandler) SetCategoryBudget(c *gin.Context) {
	var req CategoryBudgetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	profile, err := h.profileService.SetCategoryBudget(req.Category, req.Amount)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"profile": profile})
}

// DeleteCategoryBudget handles removing a category budget.
func (h *ProfileHandler) DeleteCategoryBudget(c *gin.Context) {
	profile, err := h.profileService.DeleteCategoryBudget(c.Param("category"))
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"profile": profile})
}

// AddCustomCategory handles adding a user-defined category.
func (h *ProfileHandler) AddCustomCategory(c *gin.Context) {
	var req CustomCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	profile, err := h.profileService.AddCustomCategory(req.Name, req.Color, req.Emoji)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"profile": profile})
}

// DeleteCustomCategory handles removing a user-defined category.
func (h *ProfileHandler) DeleteCustomCategory(c *gin.Context) {
	profile, err := h.profileService.DeleteCustomCategory(c.Param("id"))
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"profile": profile})
}

// RevealSalary handles unlocking the salary display.
func (h *ProfileHandler) RevealSalary(c *gin.Context) {
	var req RevealSalaryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	salary, err := h.profileService.RevealSalary(req.Password)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"salary": salary})
}
