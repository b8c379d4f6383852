package main

import (
	"fmt"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"

	"fintrack/internal/ai"
	"fintrack/internal/config"
	"fintrack/internal/handlers"
	"fintrack/internal/logger"
	"fintrack/internal/middleware"
	"fintrack/internal/services"
	"fintrack/internal/store"
	"fintrack/internal/validator"
)

func main() {
	// Initialize logger (use ENV var if available, default to development)
	logger.Init(os.Getenv("ENV"))
	defer logger.Sync()

	if err := run(); err != nil {
		logger.Get().Fatalf("Fatal error: %v", err)
	}
}

func run() error {
	log := logger.Get()

	// Load configuration
	appConfig, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// Open the blob store; this also runs schema auto-migration
	st, err := store.Open(appConfig.DataPath)
	if err != nil {
		return fmt.Errorf("failed to open store: %w", err)
	}
	defer st.Close()

	// Assistant client. A profile-stored API key, when set, overrides
	// the configured one per request.
	assistantClient := ai.NewClient(
		&http.Client{Timeout: appConfig.AssistantTimeout},
		appConfig.AssistantBaseURL,
		appConfig.AssistantAPIKey,
	)
	assistantFactory := func(apiKey string) services.Assistant {
		return assistantClient.WithAPIKey(apiKey)
	}

	// Initialize services
	expenseService := services.NewExpenseService(st)
	taskService := services.NewTaskService(st)
	savingsService := services.NewSavingsService(st)
	profileService := services.NewProfileService(st)
	assistantService := services.NewAssistantService(st, assistantFactory)

	// Initialize handlers
	expenseHandler := handlers.NewExpenseHandler(expenseService)
	taskHandler := handlers.NewTaskHandler(taskService)
	savingsHandler := handlers.NewSavingsHandler(savingsService)
	profileHandler := handlers.NewProfileHandler(profileService)
	assistantHandler := handlers.NewAssistantHandler(assistantService)

	// Register custom binding validators
	validator.Register()

	// Initialize Gin router
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogging())
	router.Use(middleware.ErrorHandler())

	// CORS middleware
	router.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	})

	// Health check endpoint
	router.GET("/api/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// API v1 group
	v1 := router.Group("/api/v1")

	// Expense routes
	expenses := v1.Group("/expenses")
	expenses.POST("", expenseHandler.CreateExpense)
	expenses.POST("/import", expenseHandler.ImportExpenses)
	expenses.GET("", expenseHandler.GetExpenses)
	expenses.GET("/grouped", expenseHandler.GetGroupedExpenses)
	expenses.GET("/summary", expenseHandler.GetSummary)
	expenses.GET("/recurring", expenseHandler.GetRecurringCosts)
	expenses.GET("/day", expenseHandler.GetDay)
	expenses.GET("/:id", expenseHandler.GetExpense)
	expenses.PUT("/:id", expenseHandler.UpdateExpense)
	expenses.DELETE("/:id", expenseHandler.DeleteExpense)

	// Task routes
	tasks := v1.Group("/tasks")
	tasks.POST("", taskHandler.CreateTask)
	tasks.GET("", taskHandler.GetTasks)
	tasks.POST("/prioritize", assistantHandler.PrioritizeTasks)
	tasks.POST("/prioritize/accept", taskHandler.ReorderTasks)
	tasks.GET("/:id", taskHandler.GetTask)
	tasks.PUT("/:id", taskHandler.UpdateTask)
	tasks.PATCH("/:id/status", taskHandler.UpdateTaskStatus)
	tasks.DELETE("/:id", taskHandler.DeleteTask)

	// Savings goal routes
	goals := v1.Group("/savings-goals")
	goals.POST("", savingsHandler.CreateGoal)
	goals.GET("", savingsHandler.GetGoals)
	goals.GET("/:id", savingsHandler.GetGoal)
	goals.PUT("/:id", savingsHandler.UpdateGoal)
	goals.DELETE("/:id", savingsHandler.DeleteGoal)
	goals.POST("/:id/contributions", savingsHandler.AddContribution)
	goals.DELETE("/:id/contributions/:contributionId", savingsHandler.DeleteContribution)

	// Profile routes
	profile := v1.Group("/profile")
	profile.GET("", profileHandler.GetProfile)
	profile.PUT("", profileHandler.SaveProfile)
	profile.POST("/salary/reveal", profileHandler.RevealSalary)
	profile.PUT("/category-budgets", profileHandler.SetCategoryBudget)
	profile.DELETE("/category-budgets/:category", profileHandler.DeleteCategoryBudget)
	profile.POST("/categories", profileHandler.AddCustomCategory)
	profile.DELETE("/categories/:id", profileHandler.DeleteCustomCategory)

	// Assistant routes
	assistant := v1.Group("/assistant")
	assistant.POST("/categorize", assistantHandler.Categorize)
	assistant.POST("/scan-receipt", assistantHandler.ScanReceipt)
	assistant.POST("/report", assistantHandler.GenerateReport)
	assistant.POST("/savings-plan", assistantHandler.GenerateSavingsPlan)
	assistant.GET("/day-summary", assistantHandler.SummarizeDay)
	assistant.POST("/chat", assistantHandler.Chat)

	log.Infof("Starting fintrack server on port %s", appConfig.Port)
	return router.Run(":" + appConfig.Port)
}
