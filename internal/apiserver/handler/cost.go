package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/voltline/evmis/internal/apiserver/database"
	"github.com/voltline/evmis/internal/common/dto"
)

// ListCosts handles listing production cost records
func (h *Handler) ListCosts(c *gin.Context) {
	costs, err := h.db.ListCosts(c.Request.Context())
	if err != nil {
		h.storeError(c, "Failed to fetch costs", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"costs": costs})
}

// CreateCost handles production cost creation. The total is always the sum
// of the three components, never caller-supplied.
func (h *Handler) CreateCost(c *gin.Context) {
	var req dto.CreateCostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
		return
	}

	if req.VehicleID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Vehicle ID is required"})
		return
	}

	vehicleModel := req.VehicleModel
	if vehicleModel == "" {
		vehicleModel = "EV-Compact"
	}

	cost := &database.ProductionCost{
		VehicleID:    req.VehicleID,
		VehicleModel: vehicleModel,
		MaterialCost: req.MaterialCost.Float(),
		LaborCost:    req.LaborCost.Float(),
		OverheadCost: req.OverheadCost.Float(),
	}
	cost.TotalCost = cost.MaterialCost + cost.LaborCost + cost.OverheadCost

	if err := h.db.CreateCost(c.Request.Context(), cost); err != nil {
		h.storeError(c, "Failed to create cost", err)
		return
	}

	h.recordActivity(c.Request.Context(), "Cost calculated",
		cost.VehicleModel+" cost analysis updated", database.ActivityInfo)

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Production cost recorded successfully",
		"cost":    cost,
	})
}

// ListMetrics handles listing the latest 30 performance metrics
func (h *Handler) ListMetrics(c *gin.Context) {
	metrics, err := h.db.ListRecentMetrics(c.Request.Context(), 30)
	if err != nil {
		h.storeError(c, "Failed to fetch metrics", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"metrics": metrics})
}

// ListActivities handles listing the latest activity feed entries
func (h *Handler) ListActivities(c *gin.Context) {
	activities, err := h.db.ListRecentActivities(c.Request.Context(), 10)
	if err != nil {
		h.storeError(c, "Failed to fetch activities", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"activities": activities})
}
