package routes

import (
	"database/sql"

	"finbook/handlers"
	"finbook/services"

	"github.com/gin-gonic/gin"
)

// SetupAuthRoutes sets up public authentication routes.
func SetupAuthRoutes(rg *gin.RouterGroup, db *sql.DB) {
	authHandler := &handlers.AuthHandler{DB: db}

	rg.POST("/register", authHandler.Register)
	rg.POST("/login", authHandler.Login)
}

// SetupSessionRoutes sets up protected session routes.
func SetupSessionRoutes(rg *gin.RouterGroup, db *sql.DB) {
	authHandler := &handlers.AuthHandler{DB: db}

	rg.GET("/logout", authHandler.Logout)
}

// SetupReportRoutes wires the dashboard and budget reports.
func SetupReportRoutes(rg *gin.RouterGroup, db *sql.DB) {
	h := handlers.NewReportHandler(services.NewReportService(db))

	rg.GET("/dashboard", h.Dashboard)
	rg.GET("/budgets", h.Budgets)
}

// SetupTransactionRoutes wires income/expense management.
func SetupTransactionRoutes(rg *gin.RouterGroup, db *sql.DB) {
	h := handlers.NewTransactionHandler(
		services.NewTransactionService(db),
		services.NewCategoryService(db),
	)

	rg.GET("/transactions", h.ListTransactions)
	rg.POST("/transactions/add-income", h.AddIncome)
	rg.POST("/transactions/add-expense", h.AddExpense)
	rg.POST("/transactions/edit-income/:id", h.EditIncome)
	rg.POST("/transactions/edit-expense/:id", h.EditExpense)
}

// SetupGoalRoutes wires goals and contributions.
func SetupGoalRoutes(rg *gin.RouterGroup, db *sql.DB) {
	h := handlers.NewGoalHandler(services.NewGoalService(db))

	rg.GET("/goals", h.ListGoals)
	rg.POST("/goals/add-goal", h.AddGoal)
	rg.POST("/goals/donate/:goal_id", h.Donate)
}

// SetupCategoryRoutes wires the reporting labels.
func SetupCategoryRoutes(rg *gin.RouterGroup, db *sql.DB) {
	h := handlers.NewCategoryHandler(services.NewCategoryService(db))

	rg.GET("/categories", h.ListCategories)
	rg.POST("/categories", h.CreateCategory)
}

// SetupUserRoutes sets up protected account management routes.
func SetupUserRoutes(rg *gin.RouterGroup, db *sql.DB) {
	userHandler := &handlers.UserHandler{DB: db}

	rg.GET("/user/profile", userHandler.GetProfile)
	rg.POST("/user/password", userHandler.ChangePassword)
	rg.POST("/user/2fa/setup", userHandler.SetupTOTP)
	rg.POST("/user/2fa/verify", userHandler.VerifyTOTP)
	rg.POST("/user/2fa/disable", userHandler.DisableTOTP)
	rg.DELETE("/user/account", userHandler.DeleteAccount)
}
