package cms_routes

import (
	"github.com/HamzaDalhoumi/plant-shop/controllers/cms/product_controller"
	"github.com/HamzaDalhoumi/plant-shop/middleware"
	"github.com/gin-gonic/gin"
)

func SetupProductRoutes(rg *gin.RouterGroup) {
	product := rg.Group("/products")

	// ════════════════════════════════════════════════════════════
	// Protected Routes (Admin token required)
	// ════════════════════════════════════════════════════════════
	protected := product.Group("")
	protected.Use(middleware.AdminAuthMiddleware())
	{
		// List (includes Draft products)
		protected.GET("", product_controller.GetProducts)

		// Create
		protected.POST("", product_controller.CreateProduct)

		// Update
		protected.PUT("/:id", product_controller.UpdateProduct)

		// Delete
		protected.DELETE("/:id", product_controller.DeleteProduct)
	}
}
