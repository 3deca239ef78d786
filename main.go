// @title Plant Shop Storefront API
// @version 1.0
// @description Plant shop storefront API: catalog listing, metadata facet filters, and plant/pot compatibility
// @host localhost:8081
// @BasePath /api/v1
// @schemes http
package main

import (
	"fmt"
	"time"

	"github.com/HamzaDalhoumi/plant-shop/config"
	"github.com/HamzaDalhoumi/plant-shop/middleware"
	"github.com/HamzaDalhoumi/plant-shop/routes/cms_routes"
	"github.com/HamzaDalhoumi/plant-shop/routes/ecommerce_routes"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func init() {
	_ = godotenv.Load()
}

func main() {
	// Connect to DB
	config.InitDB()
	// Redis connection
	config.ConnectRedis()

	corsCfg := cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://localhost:3001"},
		AllowMethods:     []string{"GET", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "X-Requested-With"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}

	router := gin.Default()
	router.Use(cors.New(corsCfg))

	// Register API routes
	api := router.Group("/api/v1")

	// Public storefront, rate limited per IP
	storeGroup := api.Group("")
	storeGroup.Use(middleware.RateLimiter(300, time.Minute))
	ecommerce_routes.SetupStorefrontRoutes(storeGroup)

	// Admin write path
	adminGroup := api.Group("/admin")
	adminGroup.Use(middleware.RateLimiter(100, time.Minute))
	cms_routes.SetupProductRoutes(adminGroup)

	fmt.Println("🚀 Server is running on http://localhost:8081")
	router.Run(":8081")
}
