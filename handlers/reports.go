package handlers

import (
	"net/http"
	"time"

	"finbook/middleware"
	"finbook/services"

	"github.com/gin-gonic/gin"
)

type ReportHandler struct {
	Service *services.ReportService
}

func NewReportHandler(service *services.ReportService) *ReportHandler {
	return &ReportHandler{Service: service}
}

// Dashboard returns the combined read-only report: the user's goals with
// progress, contributions made and received, and the reference-month
// category summary with totals.
func (h *ReportHandler) Dashboard(c *gin.Context) {
	userID := middleware.GetUserID(c)
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	report, err := h.Service.Dashboard(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build dashboard"})
		return
	}

	c.JSON(http.StatusOK, report)
}

// Budgets returns income/expense totals over a date range. Missing or
// malformed bounds fall back to the current month without erroring.
func (h *ReportHandler) Budgets(c *gin.Context) {
	userID := middleware.GetUserID(c)
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	start, end := services.ParsePeriod(c.Query("start_date"), c.Query("end_date"), time.Now())

	totals, err := h.Service.PeriodTotals(c.Request.Context(), userID, start, end)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute totals"})
		return
	}

	c.JSON(http.StatusOK, totals)
}
