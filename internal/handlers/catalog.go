// internal/handlers/catalog.go
package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/modgarage/garage-backend/internal/models"
	"github.com/modgarage/garage-backend/internal/services"
	"github.com/modgarage/garage-backend/internal/utils"
)

type CatalogHandler struct {
	catalog *services.CatalogService
}

func NewCatalogHandler(catalog *services.CatalogService) *CatalogHandler {
	return &CatalogHandler{catalog: catalog}
}

// GET /catalog/items
func (h *CatalogHandler) GetItems(c *gin.Context) {
	params := utils.GetPaginationParams(c)

	// unknown filters simply match nothing; listing never fails
	category := models.Category(params.Category)

	var items []models.CatalogItem
	if vehicleID := c.Query("vehicle_id"); vehicleID != "" {
		items = h.catalog.CompatibleItems(vehicleID, category, params.Subcategory, params.Search)
	} else {
		items = h.catalog.Filter(category, params.Subcategory, params.Search)
	}

	page, total := utils.PageSlice(items, params)
	utils.PaginatedResponse(c, utils.CreatePaginationResult(page, total, params))
}

// GET /catalog/items/popular
func (h *CatalogHandler) GetPopularItems(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))
	if limit < 1 || limit > 100 {
		limit = 10
	}

	utils.SuccessResponse(c, gin.H{
		"items": h.catalog.Popular(limit),
	})
}

// GET /catalog/items/:id
func (h *CatalogHandler) GetItem(c *gin.Context) {
	item, ok := h.catalog.Item(c.Param("id"))
	if !ok {
		utils.NotFoundResponse(c, "catalog item")
		return
	}

	utils.SuccessResponse(c, gin.H{
		"item": item,
	})
}

// GET /catalog/vehicles
func (h *CatalogHandler) GetVehicles(c *gin.Context) {
	utils.SuccessResponse(c, gin.H{
		"vehicles": h.catalog.Vehicles(),
	})
}

// GET /catalog/categories
func (h *CatalogHandler) GetCategories(c *gin.Context) {
	utils.SuccessResponse(c, gin.H{
		"categories": []models.Category{
			models.CategoryExterior,
			models.CategoryPaint,
			models.CategoryWheels,
			models.CategoryLighting,
			models.CategoryInterior,
			models.CategoryPerformance,
		},
		"subcategories": h.catalog.Subcategories(),
	})
}
