package product_controller

import (
	"net/http"
	"strings"

	catalog_cache "github.com/HamzaDalhoumi/plant-shop/cache"
	"github.com/HamzaDalhoumi/plant-shop/config"
	"github.com/HamzaDalhoumi/plant-shop/models"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// UpdateProduct godoc
// @Summary Update a product
// @Description Replace a product's fields, metadata bag and variants by ID
// @Tags CMS - Products
// @Accept json
// @Produce json
// @Param id path string true "Product ID (UUID)"
// @Param product body models.ProductRequest true "Product details"
// @Success 200 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse
// @Failure 500 {object} models.ApiResponse
// @Router /api/v1/admin/products/{id} [put]
func UpdateProduct(c *gin.Context) {
	idParam := c.Param("id")
	productID, err := uuid.Parse(idParam)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid product ID"))
		return
	}

	var req models.ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request: "+err.Error()))
		return
	}

	if req.Status == "" {
		req.Status = "Draft"
	}
	if req.Status != "Active" && req.Status != "Draft" {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Status must be Active or Draft"))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	var product models.Product
	if err := config.CatalogGorm.WithContext(ctx).
		First(&product, "id = ?", productID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Product not found"))
		} else {
			c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Database error"))
		}
		return
	}

	product.Title = strings.TrimSpace(req.Title)
	product.Handle = strings.TrimSpace(req.Handle)
	product.Status = req.Status
	product.Metadata = datatypes.JSONMap(req.Metadata)
	product.Variants = models.VariantsList(req.Variants)
	product.Tags = models.TagsList(req.Tags)
	product.CollectionHandle = req.CollectionHandle
	product.Thumbnail = req.Thumbnail
	if product.Metadata == nil {
		product.Metadata = datatypes.JSONMap{}
	}
	if product.Variants == nil {
		product.Variants = models.VariantsList{}
	}
	if product.Tags == nil {
		product.Tags = models.TagsList{}
	}

	if err := config.CatalogGorm.WithContext(ctx).Save(&product).Error; err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to update product"))
		return
	}

	// Classified snapshot is now stale
	catalog_cache.Invalidate()

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Product updated successfully", product))
}
