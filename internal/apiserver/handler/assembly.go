package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/voltline/evmis/internal/apiserver/database"
	"github.com/voltline/evmis/internal/common/dto"
	"gorm.io/gorm"
)

// ListAssemblies handles listing battery/powertrain assemblies
func (h *Handler) ListAssemblies(c *gin.Context) {
	assemblies, err := h.db.ListAssemblies(c.Request.Context())
	if err != nil {
		h.storeError(c, "Failed to fetch assemblies", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"assemblies": assemblies})
}

// CreateAssembly handles assembly creation
func (h *Handler) CreateAssembly(c *gin.Context) {
	var req dto.CreateAssemblyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
		return
	}

	if req.VehicleID == "" || req.VehicleModel == "" {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Vehicle ID and model are required"})
		return
	}

	if _, err := h.db.GetAssemblyByVehicleID(c.Request.Context(), req.VehicleID); err == nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Vehicle ID already exists"})
		return
	}

	batteryType := req.BatteryType
	if batteryType == "" {
		batteryType = "Li-ion 40kWh"
	}
	motorSpec := req.MotorSpec
	if motorSpec == "" {
		motorSpec = "100kW"
	}
	controllerModel := req.ControllerModel
	if controllerModel == "" {
		controllerModel = "BorgWarner MCU-100"
	}
	status := req.Status
	if status == "" {
		status = string(database.AssemblyInAssembly)
	}
	assembledBy := req.AssembledBy
	if assembledBy == "" {
		assembledBy = "Tech Team A"
	}

	assembly := &database.Assembly{
		VehicleID:       req.VehicleID,
		VehicleModel:    req.VehicleModel,
		BatteryType:     batteryType,
		MotorSpec:       motorSpec,
		ControllerModel: controllerModel,
		Status:          database.AssemblyStatus(status),
		AssembledBy:     assembledBy,
	}
	// Completion date is set exactly when the assembly reaches completed
	if assembly.Status == database.AssemblyCompleted {
		now := time.Now()
		assembly.CompletionDate = &now
	}

	if err := h.db.CreateAssembly(c.Request.Context(), assembly); err != nil {
		h.storeError(c, "Failed to create assembly", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"message":  "Assembly created successfully",
		"assembly": assembly,
	})
}

// UpdateAssembly handles partial assembly updates
func (h *Handler) UpdateAssembly(c *gin.Context) {
	var req dto.UpdateAssemblyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
		return
	}

	assembly, err := h.db.GetAssemblyByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Assembly not found"})
			return
		}
		h.storeError(c, "Failed to update assembly", err)
		return
	}

	if req.VehicleModel != "" {
		assembly.VehicleModel = req.VehicleModel
	}
	if req.BatteryType != "" {
		assembly.BatteryType = req.BatteryType
	}
	if req.MotorSpec != "" {
		assembly.MotorSpec = req.MotorSpec
	}
	if req.ControllerModel != "" {
		assembly.ControllerModel = req.ControllerModel
	}
	if req.Status != "" {
		assembly.Status = database.AssemblyStatus(req.Status)
		if assembly.Status == database.AssemblyCompleted {
			now := time.Now()
			assembly.CompletionDate = &now
		}
	}
	if req.AssembledBy != "" {
		assembly.AssembledBy = req.AssembledBy
	}

	if err := h.db.UpdateAssembly(c.Request.Context(), assembly); err != nil {
		h.storeError(c, "Failed to update assembly", err)
		return
	}

	if assembly.Status == database.AssemblyCompleted {
		h.recordActivity(c.Request.Context(), "Assembly completed",
			assembly.VehicleID+" powertrain assembly done", database.ActivitySuccess)
	}

	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"message":  "Assembly updated successfully",
		"assembly": assembly,
	})
}

// DeleteAssembly handles assembly deletion
func (h *Handler) DeleteAssembly(c *gin.Context) {
	id := c.Param("id")
	if _, err := h.db.GetAssemblyByID(c.Request.Context(), id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Assembly not found"})
			return
		}
		h.storeError(c, "Failed to delete assembly", err)
		return
	}

	if err := h.db.DeleteAssembly(c.Request.Context(), id); err != nil {
		h.storeError(c, "Failed to delete assembly", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Assembly deleted successfully",
	})
}
