package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"fintrack/internal/ai"
	apperrors "fintrack/internal/errors"
	"fintrack/internal/services"
)

// AssistantHandler handles AI-backed feature requests.
type AssistantHandler struct {
	assistantService services.AssistantServicer
}

// NewAssistantHandler creates a new AssistantHandler.
func NewAssistantHandler(assistantService services.AssistantServicer) *AssistantHandler {
	return &AssistantHandler{assistantService: assistantService}
}

// CategorizeRequest represents the payload for category suggestion.
type CategorizeRequest struct {
	Title string `json:"title" binding:"required,min=1,max=200"`
}

// ScanReceiptRequest represents the payload for receipt extraction.
// Either a photo data URI or the raw OCR text must be provided.
type ScanReceiptRequest struct {
	PhotoDataURI string `json:"photo_data_uri" binding:"required_without=RawText"`
	RawText      string `json:"raw_text" binding:"required_without=PhotoDataURI,max=20000"`
}

// ReportRequest represents the payload for spending report generation.
type ReportRequest struct {
	Range string `json:"range" binding:"required,date_range"`
}

// SavingsPlanRequest represents the payload for savings plan generation.
// A goal id refers to a stored goal; otherwise name and amount describe
// a goal not yet created.
type SavingsPlanRequest struct {
	GoalID string  `json:"goal_id" binding:"omitempty"`
	Name   string  `json:"name" binding:"required_without=GoalID,omitempty,min=1,max=200"`
	Amount float64 `json:"amount" binding:"required_without=GoalID,omitempty,gt=0"`
}

// ChatRequest represents the payload for the financial chat.
type ChatRequest struct {
	Messages []ai.ChatMessage `json:"messages" binding:"required,min=1,max=50,dive"`
}

// Categorize handles suggesting a category for an expense title.
func (h *AssistantHandler) Categorize(c *gin.Context) {
	var req CategorizeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	category, err := h.assistantService.CategorizeExpense(c.Request.Context(), req.Title)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"category": category})
}

// ScanReceipt handles extracting an expense from a receipt and saving it.
func (h *AssistantHandler) ScanReceipt(c *gin.Context) {
	var req ScanReceiptRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	expense, err := h.assistantService.ScanReceipt(c.Request.Context(), req.PhotoDataURI, req.RawText)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"expense": expense})
}

// PrioritizeTasks handles requesting an advisory ordering of the
// incomplete tasks. The order is applied only when the client accepts
// it through the task reorder endpoint.
func (h *AssistantHandler) PrioritizeTasks(c *gin.Context) {
	suggestion, err := h.assistantService.PrioritizeTasks(c.Request.Context())
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"suggestion": suggestion})
}

// GenerateReport handles producing a spending report over a date range.
func (h *AssistantHandler) GenerateReport(c *gin.Context) {
	var req ReportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	report, err := h.assistantService.GenerateReport(c.Request.Context(), req.Range)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"report": report})
}

// GenerateSavingsPlan handles producing a savings plan toward a goal.
func (h *AssistantHandler) GenerateSavingsPlan(c *gin.Context) {
	var req SavingsPlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	plan, err := h.assistantService.GenerateSavingsPlan(c.Request.Context(), req.GoalID, req.Name, req.Amount)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"plan": plan})
}

// SummarizeDay handles producing a summary of one calendar day.
func (h *AssistantHandler) SummarizeDay(c *gin.Context) {
	day, err := parseDateQuery(c, "date", time.Now())
	if err != nil {
		respondWithError(c, err)
		return
	}

	summary, err := h.assistantService.SummarizeDay(c.Request.Context(), day)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"summary": summary})
}

// Chat handles a turn of the financial chat.
func (h *AssistantHandler) Chat(c *gin.Context) {
	var req ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	reply, err := h.assistantService.Chat(c.Request.Context(), req.Messages)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"reply": reply})
}
