package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/voltline/evmis/internal/apiserver/database"
	"github.com/voltline/evmis/internal/common/dto"
	"gorm.io/gorm"
)

// ListSchedules handles listing production schedules with an optional
// status filter
func (h *Handler) ListSchedules(c *gin.Context) {
	schedules, err := h.db.ListSchedules(c.Request.Context(), c.Query("status"))
	if err != nil {
		h.storeError(c, "Failed to fetch schedules", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"schedules": schedules})
}

// CreateSchedule handles production schedule creation
func (h *Handler) CreateSchedule(c *gin.Context) {
	var req dto.CreateScheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
		return
	}

	if req.VehicleModel == "" || req.StartDate == "" || req.TargetQuantity == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Vehicle model, start date, and target quantity are required"})
		return
	}

	startDate, ok := parseDate(req.StartDate)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid start date"})
		return
	}

	scheduleType := req.ScheduleType
	if scheduleType == "" {
		scheduleType = string(database.ScheduleDaily)
	}
	status := req.Status
	if status == "" {
		status = string(database.StatusPending)
	}
	machines := req.AssignedMachines
	if machines == nil {
		machines = []string{}
	}

	schedule := &database.ProductionSchedule{
		VehicleModel:      req.VehicleModel,
		ScheduleType:      database.ScheduleType(scheduleType),
		TargetQuantity:    req.TargetQuantity.Int(),
		CompletedQuantity: req.CompletedQuantity.Int(),
		StartDate:         startDate,
		Machines:          machines,
		AssignedLabor:     req.AssignedLabor.Int(),
		Status:            database.ProductionStatus(status),
	}
	if req.EndDate != "" {
		if endDate, ok := parseDate(req.EndDate); ok {
			schedule.EndDate = &endDate
		}
	}

	if err := h.db.CreateSchedule(c.Request.Context(), schedule); err != nil {
		h.storeError(c, "Failed to create schedule", err)
		return
	}

	h.recordActivity(c.Request.Context(), "New schedule created",
		string(schedule.ScheduleType)+" production for "+schedule.VehicleModel+" scheduled",
		database.ActivityInfo)

	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"message":  "Schedule created successfully",
		"schedule": schedule,
	})
}

// UpdateSchedule handles partial schedule updates
func (h *Handler) UpdateSchedule(c *gin.Context) {
	var req dto.UpdateScheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
		return
	}

	schedule, err := h.db.GetScheduleByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Schedule not found"})
			return
		}
		h.storeError(c, "Failed to update schedule", err)
		return
	}

	if req.VehicleModel != "" {
		schedule.VehicleModel = req.VehicleModel
	}
	if req.ScheduleType != "" {
		schedule.ScheduleType = database.ScheduleType(req.ScheduleType)
	}
	if req.TargetQuantity != nil {
		schedule.TargetQuantity = req.TargetQuantity.Int()
	}
	if req.CompletedQuantity != nil {
		schedule.CompletedQuantity = req.CompletedQuantity.Int()
	}
	if req.StartDate != "" {
		if startDate, ok := parseDate(req.StartDate); ok {
			schedule.StartDate = startDate
		}
	}
	if req.EndDate != "" {
		if endDate, ok := parseDate(req.EndDate); ok {
			schedule.EndDate = &endDate
		}
	}
	if req.AssignedMachines != nil {
		schedule.Machines = *req.AssignedMachines
	}
	if req.AssignedLabor != nil {
		schedule.AssignedLabor = req.AssignedLabor.Int()
	}
	if req.Status != "" {
		schedule.Status = database.ProductionStatus(req.Status)
	}

	if err := h.db.UpdateSchedule(c.Request.Context(), schedule); err != nil {
		h.storeError(c, "Failed to update schedule", err)
		return
	}

	if schedule.Status == database.StatusCompleted {
		h.recordActivity(c.Request.Context(), "Production completed",
			schedule.VehicleModel+" schedule finished", database.ActivitySuccess)
	}

	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"message":  "Schedule updated successfully",
		"schedule": schedule,
	})
}

// DeleteSchedule handles schedule deletion
func (h *Handler) DeleteSchedule(c *gin.Context) {
	id := c.Param("id")
	if _, err := h.db.GetScheduleByID(c.Request.Context(), id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Schedule not found"})
			return
		}
		h.storeError(c, "Failed to delete schedule", err)
		return
	}

	if err := h.db.DeleteSchedule(c.Request.Context(), id); err != nil {
		h.storeError(c, "Failed to delete schedule", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Schedule deleted successfully",
	})
}
