package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/voltline/evmis/internal/apiserver/database"
	"github.com/voltline/evmis/internal/auth/jwt"
	"go.uber.org/zap"
)

// Handler carries the shared dependencies for every API handler.
type Handler struct {
	db         database.Database
	jwtService *jwt.Service
	logger     *zap.Logger
}

// NewHandler creates a new API handler
func NewHandler(db database.Database, jwtService *jwt.Service, logger *zap.Logger) *Handler {
	return &Handler{
		db:         db,
		jwtService: jwtService,
		logger:     logger,
	}
}

// storeError logs a failed store call and writes the generic 500 envelope.
func (h *Handler) storeError(c *gin.Context, message string, err error) {
	h.logger.Error(message, zap.Error(err))
	c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": message})
}

// recordActivity appends a feed entry; failures are logged and swallowed so
// the originating write still succeeds.
func (h *Handler) recordActivity(ctx context.Context, action, details string, typ database.ActivityType) {
	activity := &database.Activity{
		Action:  action,
		Details: details,
		Type:    typ,
	}
	if err := h.db.CreateActivity(ctx, activity); err != nil {
		h.logger.Warn("failed to record activity",
			zap.String("action", action),
			zap.Error(err))
	}
}

// parseDate accepts the date-only form format or RFC3339.
func parseDate(value string) (time.Time, bool) {
	if t, err := time.Parse("2006-01-02", value); err == nil {
		return t, true
	}
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, true
	}
	return time.Time{}, false
}
