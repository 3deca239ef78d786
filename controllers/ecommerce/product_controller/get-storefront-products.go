package product_controller

import (
	"net/http"

	"github.com/HamzaDalhoumi/plant-shop/catalog"
	"github.com/HamzaDalhoumi/plant-shop/models"
	"github.com/HamzaDalhoumi/plant-shop/services"
	"github.com/gin-gonic/gin"
)

// GetStorefrontProducts godoc
// @Summary Get storefront products
// @Description Get paginated products for the storefront, scoped to a listing context and filtered by the selected facets
// @Tags store
// @Produce json
// @Param context query string false "Listing context" Enums(indoor, outdoor, pot, all)
// @Param category query string false "Category handle (alternative to context, e.g. plantes-interieur)"
// @Param size query string false "Sizes (comma-separated, e.g. S,M)"
// @Param difficulty query string false "Care difficulty values (comma-separated)"
// @Param water_needs query string false "Watering needs values (comma-separated)"
// @Param features query string false "Feature flags, conjunctive (comma-separated)"
// @Param price query string false "Price range min-max"
// @Param height_min query number false "Minimum height in cm"
// @Param height_max query number false "Maximum height in cm"
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page" default(12)
// @Success 200 {object} models.ApiResponse
// @Failure 500 {object} models.ApiResponse
// @Router /store/products [get]
func GetStorefrontProducts(c *gin.Context) {
	svc := services.GetCatalogService()

	snapshot, err := svc.Snapshot()
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch products"))
		return
	}

	ctx := resolveContext(c)
	scoped := restrictToContext(snapshot, ctx)

	selected := selectionFromQuery(c)
	filtered := catalog.ApplyFilters(scoped, selected)

	page, limit := parsePagination(c)
	total := len(filtered)
	totalPages := (total + limit - 1) / limit

	pageItems := paginate(filtered, page, limit)

	meta := &models.Pagination{
		Page:       page,
		Limit:      limit,
		Total:      total,
		TotalPages: totalPages,
	}

	c.JSON(http.StatusOK, models.PaginatedResponse(c, "Products fetched successfully", toStorefrontResponses(pageItems), meta))
}
