package handlers

import (
	"errors"
	"net/http"

	"finbook/middleware"
	"finbook/models"
	"finbook/services"
	"finbook/utils"

	"github.com/gin-gonic/gin"
)

type GoalHandler struct {
	Service *services.GoalService
}

func NewGoalHandler(service *services.GoalService) *GoalHandler {
	return &GoalHandler{Service: service}
}

// ListGoals returns the viewer's goals and everyone else's, each with its
// funding progress.
func (h *GoalHandler) ListGoals(c *gin.Context) {
	userID := middleware.GetUserID(c)
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	list, err := h.Service.ListGoals(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch goals"})
		return
	}

	c.JSON(http.StatusOK, list)
}

// AddGoal handles POST /goals/add-goal.
func (h *GoalHandler) AddGoal(c *gin.Context) {
	userID := middleware.GetUserID(c)
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req models.CreateGoalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	goal, err := h.Service.CreateGoal(c.Request.Context(), userID, req.Name, req.Description, req.TargetAmount)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create goal"})
		return
	}

	utils.LogGoalAction("create", goal.ID, userID)
	c.JSON(http.StatusCreated, goal)
}

// Donate handles POST /goals/donate/:goal_id. Any authenticated user may
// contribute to any goal, the owner included.
func (h *GoalHandler) Donate(c *gin.Context) {
	userID := middleware.GetUserID(c)
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}
	goalID := c.Param("goal_id")

	var req models.DonateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	contribution, err := h.Service.Contribute(c.Request.Context(), goalID, userID, req.Amount)
	if errors.Is(err, services.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Goal not found"})
		return
	}
	if errors.Is(err, services.ErrValidation) {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save contribution"})
		return
	}

	utils.LogGoalAction("donate", goalID, userID)
	c.JSON(http.StatusCreated, contribution)
}
