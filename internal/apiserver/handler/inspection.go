package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/voltline/evmis/internal/apiserver/database"
	"github.com/voltline/evmis/internal/common/dto"
)

// ListInspections handles listing inspections with an optional result filter
func (h *Handler) ListInspections(c *gin.Context) {
	inspections, err := h.db.ListInspections(c.Request.Context(), c.Query("result"))
	if err != nil {
		h.storeError(c, "Failed to fetch inspections", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"inspections": inspections})
}

// CreateInspection handles inspection creation. Approved mirrors the result
// at creation time and is not editable afterwards.
func (h *Handler) CreateInspection(c *gin.Context) {
	var req dto.CreateInspectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
		return
	}

	if req.VehicleID == "" || req.Inspector == "" {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Vehicle ID and inspector are required"})
		return
	}

	if req.Result == string(database.ResultFail) && req.DefectDescription == "" {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Defect description is required for failed inspections"})
		return
	}

	vehicleModel := req.VehicleModel
	if vehicleModel == "" {
		vehicleModel = "EV-Compact"
	}
	inspectionType := req.InspectionType
	if inspectionType == "" {
		inspectionType = string(database.InspectionVisual)
	}
	result := req.Result
	if result == "" {
		result = string(database.ResultPass)
	}

	inspection := &database.Inspection{
		VehicleID:      req.VehicleID,
		VehicleModel:   vehicleModel,
		InspectionType: database.InspectionType(inspectionType),
		Result:         database.InspectionResult(result),
		Inspector:      req.Inspector,
		Approved:       result == string(database.ResultPass),
	}
	if inspection.Result == database.ResultFail {
		inspection.DefectDescription = req.DefectDescription
	}

	if err := h.db.CreateInspection(c.Request.Context(), inspection); err != nil {
		h.storeError(c, "Failed to create inspection", err)
		return
	}

	message := "Inspection passed - Auto approved"
	if inspection.Result == database.ResultFail {
		message = "Inspection recorded - Requires review"
		h.recordActivity(c.Request.Context(), "Quality inspection",
			inspection.VehicleID+" failed "+string(inspection.InspectionType)+" test",
			database.ActivityWarning)
	}

	c.JSON(http.StatusOK, gin.H{
		"success":    true,
		"message":    message,
		"inspection": inspection,
	})
}
