package product_controller

import (
	"net/http"

	"github.com/HamzaDalhoumi/plant-shop/models"
	"github.com/HamzaDalhoumi/plant-shop/services"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// GetStorefrontProductByID godoc
// @Summary Get single product details for storefront
// @Description Get a product with its classified category and decoded attributes
// @Tags store
// @Produce json
// @Param id path string true "Product ID"
// @Success 200 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse
// @Failure 500 {object} models.ApiResponse
// @Router /store/products/{id} [get]
func GetStorefrontProductByID(c *gin.Context) {
	productIDStr := c.Param("id")

	if _, err := uuid.Parse(productIDStr); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid product ID"))
		return
	}

	product, err := services.GetCatalogService().FindByID(productIDStr)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch product"))
		return
	}
	if product == nil {
		c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Product not found"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Product fetched successfully", product))
}
