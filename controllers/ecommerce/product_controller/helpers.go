package product_controller

import (
	"strconv"
	"strings"

	"github.com/HamzaDalhoumi/plant-shop/catalog"
	"github.com/HamzaDalhoumi/plant-shop/models"
	"github.com/gin-gonic/gin"
)

// ─────────────────────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────────────────────

func parsePagination(c *gin.Context) (page, limit int) {
	page, _ = strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ = strconv.Atoi(c.DefaultQuery("limit", "12"))

	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 12
	}

	return page, limit
}

// resolveContext derives the listing context from ?context=, falling back to
// the ?category= handle ("plantes-interieur" → indoor, etc.).
func resolveContext(c *gin.Context) catalog.Context {
	if raw := c.Query("context"); raw != "" {
		return catalog.ParseContext(raw)
	}
	if handle := c.Query("category"); handle != "" {
		return catalog.ContextFromHandle(handle)
	}
	return catalog.ContextAll
}

// selectionFromQuery collects the filter-bearing query params. Repeated
// params are folded into one comma-separated value, matching the multi-value
// convention the selection parser expects.
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

// restrictToContext keeps the products belonging to the listing context.
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

// toStorefrontResponses maps classified products to the thin listing cards.
func toStorefrontResponses(products []models.ClassifiedProduct) []models.StorefrontProductResponse {
	out := make([]models.StorefrontProductResponse, 0, len(products))
	for i := range products {
		out = append(out, toStorefrontResponse(&products[i]))
	}
	return out
}

func toStorefrontResponse(p *models.ClassifiedProduct) models.StorefrontProductResponse {
	return models.StorefrontProductResponse{
		ID:        p.ID.String(),
		Title:     p.Title,
		Handle:    p.Handle,
		Thumbnail: p.Thumbnail,
		Price:     p.CheapestPrice(),
		Category:  p.Category,
	}
}

// paginate slices one page out of the filtered list.
func paginate(products []models.ClassifiedProduct, page, limit int) []models.ClassifiedProduct {
	start := (page - 1) * limit
	if start >= len(products) {
		return []models.ClassifiedProduct{}
	}
	end := start + limit
	if end > len(products) {
		end = len(products)
	}
	return products[start:end]
}
