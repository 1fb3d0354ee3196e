package handlers

import (
	"net/http"
	"strconv"

	"backend/models"
	"backend/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func toAPIMaterial(g models.CustomMaterialGorm) models.CustomMaterial {
	return models.CustomMaterial{
		ID:       g.ID,
		Trade:    g.Trade,
		Name:     g.Name,
		Category: g.Category,
		Price:    g.Price,
		UnitSpec: g.UnitSpec,
		Archived: g.Archived,
	}
}

// CreateMaterialHandler creates a material price override
// @Summary Create material override
// @Description Add a custom material price for the authenticated user
// @Tags Materials
// @Accept json
// @Produce json
// @Param request body models.CustomMaterial true "Material override"
// @Success 201 {object} models.MaterialResponse
// @Failure 400 {object} models.MaterialResponse
// @Failure 500 {object} models.MaterialResponse
// @Router /api/materials [post]
func CreateMaterialHandler(gdb *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := CurrentUserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, models.MaterialResponse{Success: false, Error: "Unauthorized"})
			return
		}

		var input models.CustomMaterial
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, models.MaterialResponse{Success: false, Error: "Invalid input: " + err.Error()})
			return
		}

		if input.Price < 0 {
			c.JSON(http.StatusBadRequest, models.MaterialResponse{Success: false, Error: "Price cannot be negative"})
			return
		}

		material := models.CustomMaterialGorm{
			UserID:   userID,
			Trade:    input.Trade,
			Name:     input.Name,
			Category: input.Category,
			Price:    input.Price,
			UnitSpec: input.UnitSpec,
			Archived: input.Archived,
		}

		if err := gdb.Create(&material).Error; err != nil {
			c.JSON(http.StatusInternalServerError, models.MaterialResponse{Success: false, Error: "Failed to create material: " + err.Error()})
			return
		}

		services.InvalidateMaterialCache(userID, material.Trade)

		data := toAPIMaterial(material)
		c.JSON(http.StatusCreated, models.MaterialResponse{Success: true, Message: "Material created", Data: &data})
	}
}

// GetMaterialsHandler lists material overrides for a trade
// @Summary List material overrides
// @Description List the authenticated user's material overrides, optionally filtered by trade
// @Tags Materials
// @Produce json
// @Param trade query string false "Trade filter, e.g. fencing"
// @Param include_archived query bool false "Include archived rows"
// @Success 200 {object} models.MaterialListResponse
// @Failure 500 {object} models.MaterialListResponse
// @Router /api/materials [get]
func GetMaterialsHandler(gdb *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := CurrentUserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, models.MaterialListResponse{Success: false, Error: "Unauthorized"})
			return
		}

		query := gdb.Where("user_id = ?", userID)
		if trade := c.Query("trade"); trade != "" {
			query = query.Where("trade = ?", trade)
		}
		if c.Query("include_archived") != "true" {
			query = query.Where("archived = ?", false)
		}

		var rows []models.CustomMaterialGorm
		if err := query.Order("id DESC").Find(&rows).Error; err != nil {
			c.JSON(http.StatusInternalServerError, models.MaterialListResponse{Success: false, Error: "Failed to fetch materials: " + err.Error()})
			return
		}

		materials := make([]models.CustomMaterial, 0, len(rows))
		for _, g := range rows {
			materials = append(materials, toAPIMaterial(g))
		}

		c.JSON(http.StatusOK, models.MaterialListResponse{Success: true, Message: "Materials fetched", Data: materials})
	}
}

// UpdateMaterialHandler updates a material price override
// @Summary Update material override
// @Description Update a custom material price owned by the authenticated user
// @Tags Materials
// @Accept json
// @Produce json
// @Param id path int true "Material ID"
// @Param request body models.CustomMaterial true "Updated fields"
// @Success 200 {object} models.MaterialResponse
// @Failure 400 {object} models.MaterialResponse
// @Failure 404 {object} models.MaterialResponse
// @Router /api/materials/{id} [put]
func UpdateMaterialHandler(gdb *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := CurrentUserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, models.MaterialResponse{Success: false, Error: "Unauthorized"})
			return
		}

		materialID, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, models.MaterialResponse{Success: false, Error: "Invalid material ID"})
			return
		}

		var input models.CustomMaterial
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, models.MaterialResponse{Success: false, Error: "Invalid input: " + err.Error()})
			return
		}

		if input.Price < 0 {
			c.JSON(http.StatusBadRequest, models.MaterialResponse{Success: false, Error: "Price cannot be negative"})
			return
		}

		var material models.CustomMaterialGorm
		if err := gdb.Where("id = ? AND user_id = ?", materialID, userID).First(&material).Error; err != nil {
			c.JSON(http.StatusNotFound, models.MaterialResponse{Success: false, Error: "Material not found"})
			return
		}

		oldTrade := material.Trade
		material.Trade = input.Trade
		material.Name = input.Name
		material.Category = input.Category
		material.Price = input.Price
		material.UnitSpec = input.UnitSpec
		material.Archived = input.Archived

		if err := gdb.Save(&material).Error; err != nil {
			c.JSON(http.StatusInternalServerError, models.MaterialResponse{Success: false, Error: "Failed to update material: " + err.Error()})
			return
		}

		services.InvalidateMaterialCache(userID, oldTrade)
		if material.Trade != oldTrade {
			services.InvalidateMaterialCache(userID, material.Trade)
		}

		data := toAPIMaterial(material)
		c.JSON(http.StatusOK, models.MaterialResponse{Success: true, Message: "Material updated", Data: &data})
	}
}

// ArchiveMaterialHandler archives or restores a material override
// @Summary Archive material override
// @Description Toggle the archived flag; archived rows are ignored by the price resolver
// @Tags Materials
// @Produce json
// @Param id path int true "Material ID"
// @Param archived query bool false "Archive state, default true"
// @Success 200 {object} models.MaterialResponse
// @Failure 404 {object} models.MaterialResponse
// @Router /api/materials/{id}/archive [patch]
func ArchiveMaterialHandler(gdb *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := CurrentUserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, models.MaterialResponse{Success: false, Error: "Unauthorized"})
			return
		}

		materialID, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, models.MaterialResponse{Success: false, Error: "Invalid material ID"})
			return
		}

		archived := c.DefaultQuery("archived", "true") == "true"

		var material models.CustomMaterialGorm
		if err := gdb.Where("id = ? AND user_id = ?", materialID, userID).First(&material).Error; err != nil {
			c.JSON(http.StatusNotFound, models.MaterialResponse{Success: false, Error: "Material not found"})
			return
		}

		material.Archived = archived
		if err := gdb.Save(&material).Error; err != nil {
			c.JSON(http.StatusInternalServerError, models.MaterialResponse{Success: false, Error: "Failed to update material: " + err.Error()})
			return
		}

		services.InvalidateMaterialCache(userID, material.Trade)

		data := toAPIMaterial(material)
		c.JSON(http.StatusOK, models.MaterialResponse{Success: true, Message: "Material archive state updated", Data: &data})
	}
}

// DeleteMaterialHandler deletes a material price override
// @Summary Delete material override
// @Description Soft-delete a custom material owned by the authenticated user
// @Tags Materials
// @Produce json
// @Param id path int true "Material ID"
// @Success 200 {object} models.MaterialResponse
// @Failure 404 {object} models.MaterialResponse
// @Router /api/materials/{id} [delete]
func DeleteMaterialHandler(gdb *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := CurrentUserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, models.MaterialResponse{Success: false, Error: "Unauthorized"})
			return
		}

		materialID, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, models.MaterialResponse{Success: false, Error: "Invalid material ID"})
			return
		}

		var material models.CustomMaterialGorm
		if err := gdb.Where("id = ? AND user_id = ?", materialID, userID).First(&material).Error; err != nil {
			c.JSON(http.StatusNotFound, models.MaterialResponse{Success: false, Error: "Material not found"})
			return
		}

		if err := gdb.Delete(&material).Error; err != nil {
			c.JSON(http.StatusInternalServerError, models.MaterialResponse{Success: false, Error: "Failed to delete material: " + err.Error()})
			return
		}

		services.InvalidateMaterialCache(userID, material.Trade)

		c.JSON(http.StatusOK, models.MaterialResponse{Success: true, Message: "Material deleted"})
	}
}
