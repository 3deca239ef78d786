package ecommerce_routes

import (
	store_compatibility "github.com/HamzaDalhoumi/plant-shop/controllers/ecommerce/compatibility_controller"
	store_filter "github.com/HamzaDalhoumi/plant-shop/controllers/ecommerce/filter_controller"
	store_product "github.com/HamzaDalhoumi/plant-shop/controllers/ecommerce/product_controller"
	"github.com/gin-gonic/gin"
)

func SetupStorefrontRoutes(router *gin.RouterGroup) {
	// Storefront routes (public, no auth required)
	store := router.Group("/store")

	// Product routes
	products := store.Group("/products")
	{
		products.GET("", store_product.GetStorefrontProducts) // List with filters

		products.GET("/filters", store_filter.GetProductFacets)      // Facets for the current context + selection
		products.GET("/:id", store_product.GetStorefrontProductByID) // Single product

		// Compatibility lookups
		products.GET("/:id/compatible-pots", store_compatibility.GetCompatiblePots)
		products.GET("/:id/compatible-plants", store_compatibility.GetCompatiblePlants)
	}
}
