package compatibility_controller

import (
	"net/http"

	"github.com/HamzaDalhoumi/plant-shop/models"
	"github.com/HamzaDalhoumi/plant-shop/services"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// GetCompatiblePlants godoc
// @Summary Get plants that fit a pot
// @Description Returns the plants whose nursery-pot diameter falls inside the inverse fit window for the given pot
// @Tags store
// @Produce json
// @Param id path string true "Pot product ID"
// @Success 200 {object} models.ApiResponse{data=models.CompatiblePlantsResponse}
// @Failure 400 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse
// @Failure 500 {object} models.ApiResponse
// @Router /store/products/{id}/compatible-plants [get]
func GetCompatiblePlants(c *gin.Context) {
	potIDStr := c.Param("id")

	if _, err := uuid.Parse(potIDStr); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid product ID"))
		return
	}

	svc := services.GetCatalogService()

	pot, err := svc.FindByID(potIDStr)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch product"))
		return
	}
	if pot == nil {
		c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Product not found"))
		return
	}
	if pot.Category != models.CategoryPot {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Product is not a pot"))
		return
	}

	snapshot, err := svc.Snapshot()
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch products"))
		return
	}

	matches := svc.Rules().PlantsForPot(pot, snapshot)

	plants := make([]models.StorefrontProductResponse, 0, len(matches))
	for i := range matches {
		plants = append(plants, thinResponse(&matches[i]))
	}

	response := models.CompatiblePlantsResponse{
		Pot:    thinResponse(pot),
		Plants: plants,
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Compatible plants fetched", response))
}
