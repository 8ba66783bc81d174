package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/voltline/evmis/internal/apiserver/policy"
	"github.com/voltline/evmis/internal/auth/jwt"
	"github.com/voltline/evmis/internal/common/dto"
	"golang.org/x/crypto/bcrypt"
)

// Login handles user login
func (h *Handler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
		return
	}

	if req.Email == "" || req.Password == "" {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Email and password are required"})
		return
	}

	user, err := h.db.GetUserByEmail(c.Request.Context(), req.Email)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Invalid email or password"})
		return
	}

	if user.Status != "active" {
		c.JSON(http.StatusForbidden, gin.H{"success": false, "message": "Account is inactive. Please contact administrator."})
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Invalid email or password"})
		return
	}

	token, err := h.jwtService.GenerateToken(user.ID, user.Email, string(user.Role))
	if err != nil {
		h.storeError(c, "Failed to generate token", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Login successful",
		"token":   token,
		"user":    user,
	})
}

// GetUserInfo returns the authenticated user and their visible modules
func (h *Handler) GetUserInfo(c *gin.Context) {
	claims, exists := c.Get("claims")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "unauthorized"})
		return
	}
	jwtClaims := claims.(*jwt.Claims)

	user, err := h.db.GetUserByID(c.Request.Context(), jwtClaims.UserID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "User not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"user":    user,
		"modules": policy.ModulesFor(string(user.Role)),
	})
}
