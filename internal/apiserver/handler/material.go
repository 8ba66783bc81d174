package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/voltline/evmis/internal/apiserver/database"
	"github.com/voltline/evmis/internal/apiserver/stats"
	"github.com/voltline/evmis/internal/common/dto"
	"gorm.io/gorm"
)

// ListMaterials handles listing materials with optional category and
// search filters
func (h *Handler) ListMaterials(c *gin.Context) {
	materials, err := h.db.ListMaterials(c.Request.Context(), c.Query("category"), c.Query("search"))
	if err != nil {
		h.storeError(c, "Failed to fetch materials", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"materials": materials})
}

// CreateMaterial handles material creation
func (h *Handler) CreateMaterial(c *gin.Context) {
	var req dto.CreateMaterialRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
		return
	}

	if req.Name == "" || req.SKU == "" || req.Supplier == "" {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Name, SKU, and supplier are required"})
		return
	}

	if _, err := h.db.GetMaterialBySKU(c.Request.Context(), req.SKU); err == nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "SKU already exists"})
		return
	}

	category := req.Category
	if category == "" {
		category = string(database.CategoryElectronics)
	}
	unit := req.Unit
	if unit == "" {
		unit = "units"
	}

	material := &database.Material{
		Name:            req.Name,
		SKU:             req.SKU,
		Category:        database.MaterialCategory(category),
		Quantity:        req.Quantity.Int(),
		Unit:            unit,
		MinStock:        req.MinStock.Int(),
		UnitCost:        req.UnitCost.Float(),
		Supplier:        req.Supplier,
		SupplierContact: req.SupplierContact,
	}

	if err := h.db.CreateMaterial(c.Request.Context(), material); err != nil {
		h.storeError(c, "Failed to create material", err)
		return
	}

	if stats.LowStock(material) {
		h.recordActivity(c.Request.Context(), "Inventory alert",
			material.Name+" below minimum stock", database.ActivityError)
	}

	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"message":  "Material created successfully",
		"material": material,
	})
}

// UpdateMaterial handles partial material updates
func (h *Handler) UpdateMaterial(c *gin.Context) {
	var req dto.UpdateMaterialRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
		return
	}

	material, err := h.db.GetMaterialByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Material not found"})
			return
		}
		h.storeError(c, "Failed to update material", err)
		return
	}
	wasLow := stats.LowStock(material)

	if req.Name != "" {
		material.Name = req.Name
	}
	if req.Category != "" {
		material.Category = database.MaterialCategory(req.Category)
	}
	if req.Quantity != nil {
		material.Quantity = req.Quantity.Int()
	}
	if req.Unit != "" {
		material.Unit = req.Unit
	}
	if req.MinStock != nil {
		material.MinStock = req.MinStock.Int()
	}
	if req.UnitCost != nil {
		material.UnitCost = req.UnitCost.Float()
	}
	if req.Supplier != "" {
		material.Supplier = req.Supplier
	}
	if req.SupplierContact != "" {
		material.SupplierContact = req.SupplierContact
	}

	if err := h.db.UpdateMaterial(c.Request.Context(), material); err != nil {
		h.storeError(c, "Failed to update material", err)
		return
	}

	if !wasLow && stats.LowStock(material) {
		h.recordActivity(c.Request.Context(), "Inventory alert",
			material.Name+" below minimum stock", database.ActivityError)
	}

	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"message":  "Material updated successfully",
		"material": material,
	})
}

// DeleteMaterial handles material deletion
func (h *Handler) DeleteMaterial(c *gin.Context) {
	id := c.Param("id")
	if _, err := h.db.GetMaterialByID(c.Request.Context(), id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Material not found"})
			return
		}
		h.storeError(c, "Failed to delete material", err)
		return
	}

	if err := h.db.DeleteMaterial(c.Request.Context(), id); err != nil {
		h.storeError(c, "Failed to delete material", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Material deleted successfully",
	})
}
