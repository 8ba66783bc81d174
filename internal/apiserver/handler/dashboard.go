package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/voltline/evmis/internal/apiserver/policy"
	"github.com/voltline/evmis/internal/apiserver/stats"
	"github.com/voltline/evmis/internal/auth/jwt"
	"github.com/voltline/evmis/internal/common/cnst"
)

// statsModules maps each statistic block to the module whose visibility
// rules govern it.
var statsModules = map[string]string{
	cnst.ReportProduction: cnst.ModuleProduction,
	cnst.ReportInventory:  cnst.ModuleInventory,
	cnst.ReportQuality:    cnst.ModuleQuality,
	cnst.ReportCost:       cnst.ModuleCosts,
}

// Dashboard assembles the landing page payload: the headline summary, the
// activity feed, the production trend and the distribution charts, all in
// one round trip. Reading never mutates state.
func (h *Handler) Dashboard(c *gin.Context) {
	ctx := c.Request.Context()

	schedules, err := h.db.ListSchedules(ctx, "")
	if err != nil {
		h.storeError(c, "Failed to fetch dashboard data", err)
		return
	}
	materials, err := h.db.ListMaterials(ctx, "", "")
	if err != nil {
		h.storeError(c, "Failed to fetch dashboard data", err)
		return
	}
	inspections, err := h.db.ListInspections(ctx, "")
	if err != nil {
		h.storeError(c, "Failed to fetch dashboard data", err)
		return
	}
	costs, err := h.db.ListCosts(ctx)
	if err != nil {
		h.storeError(c, "Failed to fetch dashboard data", err)
		return
	}
	activities, err := h.db.ListRecentActivities(ctx, 10)
	if err != nil {
		h.storeError(c, "Failed to fetch dashboard data", err)
		return
	}
	trend, err := h.db.ListMetricTrend(ctx, 7)
	if err != nil {
		h.storeError(c, "Failed to fetch dashboard data", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"summary":            stats.ComputeSummary(schedules, materials, inspections, costs),
		"activities":         activities,
		"productionTrend":    trend,
		"modelDistribution":  stats.ModelDistribution(schedules),
		"statusDistribution": stats.StatusDistribution(schedules),
		"costBreakdown":      stats.ComputeCostBreakdown(costs),
	})
}

// ModuleStats serves the per-module statistic block behind each screen
// header: /api/stats/production, /api/stats/inventory, /api/stats/quality
// and /api/stats/cost.
func (h *Handler) ModuleStats(c *gin.Context) {
	ctx := c.Request.Context()

	kind := c.Param("module")
	module, ok := statsModules[kind]
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Unknown module"})
		return
	}
	if claims, exists := c.Get("claims"); exists {
		if jwtClaims, ok := claims.(*jwt.Claims); !ok || !policy.CanAccess(jwtClaims.Role, module) {
			c.JSON(http.StatusForbidden, gin.H{"success": false, "message": "Forbidden: role may not access this module"})
			return
		}
	}

	switch kind {
	case cnst.ReportProduction:
		schedules, err := h.db.ListSchedules(ctx, "")
		if err != nil {
			h.storeError(c, "Failed to fetch stats", err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"stats": stats.ComputeProductionStats(schedules)})
	case cnst.ReportInventory:
		materials, err := h.db.ListMaterials(ctx, "", "")
		if err != nil {
			h.storeError(c, "Failed to fetch stats", err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"stats": stats.ComputeInventoryStats(materials)})
	case cnst.ReportQuality:
		inspections, err := h.db.ListInspections(ctx, "")
		if err != nil {
			h.storeError(c, "Failed to fetch stats", err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"stats": stats.ComputeQualityStats(inspections)})
	case cnst.ReportCost:
		costs, err := h.db.ListCosts(ctx)
		if err != nil {
			h.storeError(c, "Failed to fetch stats", err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"stats": stats.ComputeCostStats(costs)})
	}
}
