package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/voltline/evmis/internal/apiserver/database"
	"github.com/voltline/evmis/internal/common/dto"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// ListUsers handles listing all users
func (h *Handler) ListUsers(c *gin.Context) {
	users, err := h.db.ListUsers(c.Request.Context())
	if err != nil {
		h.storeError(c, "Failed to fetch users", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"users": users})
}

// GetUser handles fetching a single user by id
func (h *Handler) GetUser(c *gin.Context) {
	user, err := h.db.GetUserByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "User not found"})
			return
		}
		h.storeError(c, "Failed to fetch user", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": user})
}

// CreateUser handles user creation
func (h *Handler) CreateUser(c *gin.Context) {
	var req dto.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
		return
	}

	if req.Name == "" || req.Email == "" || req.Password == "" {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Name, email, and password are required"})
		return
	}

	// Email uniqueness is case-insensitive
	if _, err := h.db.GetUserByEmail(c.Request.Context(), req.Email); err == nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Email already exists"})
		return
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		h.storeError(c, "Failed to create user", err)
		return
	}

	role := req.Role
	if role == "" {
		role = string(database.RoleProductionManager)
	}
	status := req.Status
	if status == "" {
		status = string(database.UserActive)
	}

	user := &database.User{
		Name:     req.Name,
		Email:    strings.ToLower(req.Email),
		Password: string(hashedPassword),
		Role:     database.UserRole(role),
		Status:   database.UserStatus(status),
	}

	if err := h.db.CreateUser(c.Request.Context(), user); err != nil {
		h.storeError(c, "Failed to create user", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "User created successfully",
		"user":    user,
	})
}

// UpdateUser handles partial user updates; omitted fields keep their value
func (h *Handler) UpdateUser(c *gin.Context) {
	var req dto.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
		return
	}

	user, err := h.db.GetUserByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "User not found"})
			return
		}
		h.storeError(c, "Failed to update user", err)
		return
	}

	if req.Name != "" {
		user.Name = req.Name
	}
	if req.Email != "" {
		user.Email = strings.ToLower(req.Email)
	}
	if req.Role != "" {
		user.Role = database.UserRole(req.Role)
	}
	if req.Status != "" {
		user.Status = database.UserStatus(req.Status)
	}
	if req.Password != "" {
		hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
		if err != nil {
			h.storeError(c, "Failed to update user", err)
			return
		}
		user.Password = string(hashedPassword)
	}

	if err := h.db.UpdateUser(c.Request.Context(), user); err != nil {
		h.storeError(c, "Failed to update user", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "User updated successfully",
		"user":    user,
	})
}

// DeleteUser handles user deletion
func (h *Handler) DeleteUser(c *gin.Context) {
	id := c.Param("id")
	if _, err := h.db.GetUserByID(c.Request.Context(), id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "User not found"})
			return
		}
		h.storeError(c, "Failed to delete user", err)
		return
	}

	if err := h.db.DeleteUser(c.Request.Context(), id); err != nil {
		h.storeError(c, "Failed to delete user", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "User deleted successfully",
	})
}
