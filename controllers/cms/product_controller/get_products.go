package product_controller

import (
	"net/http"
	"strconv"

	"github.com/HamzaDalhoumi/plant-shop/config"
	"github.com/HamzaDalhoumi/plant-shop/models"
	"github.com/gin-gonic/gin"
)

// GetProducts godoc
// @Summary List products for the admin panel
// @Description Paginated product list including Draft products, newest first
// @Tags CMS - Products
// @Produce json
// @Param status query string false "Filter by status" Enums(Active, Draft)
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page" default(20)
// @Success 200 {object} models.ApiResponse
// @Failure 500 {object} models.ApiResponse
// @Router /api/v1/admin/products [get]
func GetProducts(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	query := config.CatalogGorm.WithContext(ctx).Model(&models.Product{})
	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Database error"))
		return
	}

	var products []models.Product
	if err := query.
		Order("created_at DESC").
		Limit(limit).
		Offset((page - 1) * limit).
		Find(&products).Error; err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Database error"))
		return
	}

	meta := &models.Pagination{
		Page:       page,
		Limit:      limit,
		Total:      int(total),
		TotalPages: (int(total) + limit - 1) / limit,
	}

	c.JSON(http.StatusOK, models.PaginatedResponse(c, "Products fetched successfully", products, meta))
}
