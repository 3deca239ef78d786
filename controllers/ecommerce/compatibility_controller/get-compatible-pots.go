package compatibility_controller

import (
	"net/http"

	"github.com/HamzaDalhoumi/plant-shop/models"
	"github.com/HamzaDalhoumi/plant-shop/services"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// GetCompatiblePots godoc
// @Summary Get pots that fit a plant
// @Description Returns the pots whose diameter falls inside the fit window for the given plant, with the matching variants and size labels per pot
// @Tags store
// @Produce json
// @Param id path string true "Plant product ID"
// @Success 200 {object} models.ApiResponse{data=models.CompatiblePotsResponse}
// @Failure 400 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse
// @Failure 500 {object} models.ApiResponse
// @Router /store/products/{id}/compatible-pots [get]
func GetCompatiblePots(c *gin.Context) {
	plantIDStr := c.Param("id")

	if _, err := uuid.Parse(plantIDStr); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid product ID"))
		return
	}

	svc := services.GetCatalogService()

	plant, err := svc.FindByID(plantIDStr)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch product"))
		return
	}
	if plant == nil {
		c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Product not found"))
		return
	}
	if !plant.Category.IsPlant() {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Product is not a plant"))
		return
	}

	snapshot, err := svc.Snapshot()
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch products"))
		return
	}

	matches := svc.Rules().PotsForPlant(plant, snapshot)

	response := models.CompatiblePotsResponse{
		Plant: thinResponse(plant),
		Pots:  toPotCards(matches),
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Compatible pots fetched", response))
}

// toPotCards flattens the match results into the thin selector cards.
func toPotCards(matches []models.CompatiblePot) []models.CompatiblePotCard {
	cards := make([]models.CompatiblePotCard, 0, len(matches))
	for i := range matches {
		m := &matches[i]
		card := models.CompatiblePotCard{
			ID:               m.Product.ID.String(),
			Title:            m.Product.Title,
			Handle:           m.Product.Handle,
			Thumbnail:        m.Product.Thumbnail,
			MatchingVariants: m.MatchingVariants,
			MatchedSizes:     m.MatchedSizes,
			CheapestPrice:    m.CheapestPrice,
		}
		if m.Product.Pot != nil {
			card.Material = m.Product.Pot.Material
		}
		cards = append(cards, card)
	}
	return cards
}

func thinResponse(p *models.ClassifiedProduct) models.StorefrontProductResponse {
	return models.StorefrontProductResponse{
		ID:        p.ID.String(),
		Title:     p.Title,
		Handle:    p.Handle,
		Thumbnail: p.Thumbnail,
		Price:     p.CheapestPrice(),
		Category:  p.Category,
	}
}
