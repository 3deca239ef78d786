package product_controller

import (
	"net/http"
	"strings"

	catalog_cache "github.com/HamzaDalhoumi/plant-shop/cache"
	"github.com/HamzaDalhoumi/plant-shop/config"
	"github.com/HamzaDalhoumi/plant-shop/models"
	"github.com/gin-gonic/gin"
	"gorm.io/datatypes"
)

// CreateProduct godoc
// @Summary Create a new product
// @Description Create a catalog product with its metadata bag and variants
// @Tags CMS - Products
// @Accept json
// @Produce json
// @Param product body models.ProductRequest true "Product details"
// @Success 201 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse
// @Failure 409 {object} models.ApiResponse
// @Failure 500 {object} models.ApiResponse
// @Router /api/v1/admin/products [post]
func CreateProduct(c *gin.Context) {
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

	// Handles are unique; reject duplicates up front for a clean error.
	var count int64
	if err := config.CatalogGorm.WithContext(ctx).
		Model(&models.Product{}).
		Where("handle = ?", req.Handle).
		Count(&count).Error; err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Database error"))
		return
	}
	if count > 0 {
		c.JSON(http.StatusConflict, models.ErrorResponse(c, "A product with this handle already exists"))
		return
	}

	// UUID v7 auto-generated in BeforeCreate hook
	product := models.Product{
		Title:            strings.TrimSpace(req.Title),
		Handle:           strings.TrimSpace(req.Handle),
		Status:           req.Status,
		Metadata:         datatypes.JSONMap(req.Metadata),
		Variants:         models.VariantsList(req.Variants),
		Tags:             models.TagsList(req.Tags),
		CollectionHandle: req.CollectionHandle,
		Thumbnail:        req.Thumbnail,
	}
	if product.Metadata == nil {
		product.Metadata = datatypes.JSONMap{}
	}
	if product.Variants == nil {
		product.Variants = models.VariantsList{}
	}
	if product.Tags == nil {
		product.Tags = models.TagsList{}
	}

	if err := config.CatalogGorm.WithContext(ctx).Create(&product).Error; err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to create product"))
		return
	}

	// Classified snapshot is now stale
	catalog_cache.Invalidate()

	c.JSON(http.StatusCreated, models.SuccessResponse(c, "Product created successfully", product))
}
