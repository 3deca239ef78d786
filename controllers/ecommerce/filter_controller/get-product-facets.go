package filter_controller

import (
	"net/http"
	"strings"

	"github.com/HamzaDalhoumi/plant-shop/catalog"
	"github.com/HamzaDalhoumi/plant-shop/models"
	"github.com/HamzaDalhoumi/plant-shop/services"
	"github.com/gin-gonic/gin"
)

// GetProductFacets godoc
// @Summary Get storefront filter facets
// @Description Returns the facet groups with per-option counts for the listing context, recomputed against the current selection, plus the quick-filter presets
// @Tags store
// @Produce json
// @Param context query string false "Listing context" Enums(indoor, outdoor, pot, all)
// @Param category query string false "Category handle (alternative to context)"
// @Success 200 {object} models.ApiResponse{data=models.FacetsResponse}
// @Failure 500 {object} models.ApiResponse
// @Router /store/products/filters [get]
func GetProductFacets(c *gin.Context) {
	snapshot, err := services.GetCatalogService().Snapshot()
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch filter facets"))
		return
	}

	ctx := resolveContext(c)
	scoped := restrictToContext(snapshot, ctx)

	// Counts reflect the current selection, so narrowing one facet updates
	// the numbers shown on the others.
	selected := selectionFromQuery(c)
	filtered := catalog.ApplyFilters(scoped, selected)

	response := models.FacetsResponse{
		Groups:       catalog.BuildFacets(filtered, ctx),
		QuickFilters: catalog.QuickFilters(ctx),
		ProductCount: len(filtered),
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Filter facets fetched", response))
}

func resolveContext(c *gin.Context) catalog.Context {
	if raw := c.Query("context"); raw != "" {
		return catalog.ParseContext(raw)
	}
	if handle := c.Query("category"); handle != "" {
		return catalog.ContextFromHandle(handle)
	}
	return catalog.ContextAll
}

func selectionFromQuery(c *gin.Context) models.SelectedFilters {
	params := make(map[string]string)
	for key, values := range c.Request.URL.Query() {
		switch key {
		case "context", "category", "page", "limit":
			continue
		}
		params[key] = strings.Join(values, ",")
	}
	return catalog.ParseSelection(params)
}

func restrictToContext(products []models.ClassifiedProduct, ctx catalog.Context) []models.ClassifiedProduct {
	if ctx == catalog.ContextAll {
		return products
	}
	kept := make([]models.ClassifiedProduct, 0, len(products))
	for i := range products {
		if ctx.Includes(products[i].Category) {
			kept = append(kept, products[i])
		}
	}
	return kept
}
