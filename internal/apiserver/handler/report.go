package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/voltline/evmis/internal/apiserver/database"
	"github.com/voltline/evmis/internal/apiserver/report"
	"github.com/voltline/evmis/internal/common/cnst"
)

// ExportReport streams one entity collection as a CSV attachment. The
// header line is emitted even when the collection is empty.
func (h *Handler) ExportReport(c *gin.Context) {
	kind := c.Param("type")
	if !report.IsValidKind(kind) {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid report type"})
		return
	}

	ctx := c.Request.Context()
	var body string
	switch kind {
	case cnst.ReportProduction:
		schedules, err := h.db.ListSchedules(ctx, "")
		if err != nil {
			h.storeError(c, "Failed to generate report", err)
			return
		}
		body = report.Production(schedules)
	case cnst.ReportInventory:
		materials, err := h.db.ListMaterials(ctx, "", "")
		if err != nil {
			h.storeError(c, "Failed to generate report", err)
			return
		}
		body = report.Inventory(materials)
	case cnst.ReportQuality:
		inspections, err := h.db.ListInspections(ctx, "")
		if err != nil {
			h.storeError(c, "Failed to generate report", err)
			return
		}
		body = report.Quality(inspections)
	case cnst.ReportCost:
		costs, err := h.db.ListCosts(ctx)
		if err != nil {
			h.storeError(c, "Failed to generate report", err)
			return
		}
		body = report.Cost(costs)
	}

	h.recordActivity(ctx, "Report exported", kind+" report downloaded", database.ActivityInfo)

	c.Header("Content-Disposition", `attachment; filename="`+report.Filename(kind, time.Now())+`"`)
	c.Data(http.StatusOK, "text/csv; charset=utf-8", []byte(body))
}
