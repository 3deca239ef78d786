package main

import (
	"fmt"
	"log"

	"github.com/HamzaDalhoumi/plant-shop/config"
	"github.com/HamzaDalhoumi/plant-shop/models"
	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"gorm.io/datatypes"
)

// init loads environment variables
func init() {
	_ = godotenv.Load()
}

func price(v float64) *float64 { return &v }
func inStock() *bool           { b := true; return &b }
func strPtr(s string) *string  { return &s }

// main seeds a demo plant/pot catalog
// Usage: go run cmd/seed/main.go
// This is a standalone CLI tool, not part of the main application
func main() {
	fmt.Println("════════════════════════════════════════════════════════════")
	fmt.Println("PLANT SHOP - Demo Catalog Seeder")
	fmt.Println("════════════════════════════════════════════════════════════")
	fmt.Println()

	// Initialize database connections
	config.InitDB()
	log.Println("✓ Connected to database")

	if err := config.CatalogGorm.AutoMigrate(&models.Product{}); err != nil {
		log.Fatalf("Failed to migrate products table: %v", err)
	}
	log.Println("✓ Products table migrated")

	products := demoCatalog()

	created := 0
	for i := range products {
		p := &products[i]

		var existing models.Product
		if err := config.CatalogGorm.Where("handle = ?", p.Handle).First(&existing).Error; err == nil {
			log.Printf("• Skipping '%s' (already seeded)", p.Handle)
			continue
		}

		if err := config.CatalogGorm.Create(p).Error; err != nil {
			log.Fatalf("Failed to create product '%s': %v", p.Handle, err)
		}
		created++
	}

	fmt.Println()
	fmt.Println("════════════════════════════════════════════════════════════")
	fmt.Printf("✅ Seeded %d products (%d skipped as existing)\n", created, len(products)-created)
	fmt.Println("════════════════════════════════════════════════════════════")
	fmt.Println()
	fmt.Println("Next steps:")
	fmt.Println("1. Start the storefront server: go run main.go")
	fmt.Println("2. Browse GET /api/v1/store/products?context=indoor")
}

// demoCatalog returns a small but representative catalog: indoor plants,
// outdoor plants, pots with sized variants, and a couple of products left
// deliberately incomplete to exercise the fallback paths.
func demoCatalog() []models.Product {
	return []models.Product{
		{
			ID:     uuid.Must(uuid.NewV7()),
			Title:  "Monstera Deliciosa",
			Handle: "monstera-deliciosa",
			Status: "Active",
			Metadata: datatypes.JSONMap{
				"environment":   "indoor",
				"size":          "M",
				"diameter_cm":   12,
				"height_cm":     45,
				"family":        "araceae",
				"placement":     []any{"salon", "bureau"},
				"light":         "indirect_light",
				"difficulty":    "easy",
				"water_needs":   "medium",
				"color":         "green",
				"pet_friendly":  false,
				"air_purifying": true,
			},
			Variants: models.VariantsList{
				{ID: "var-monstera-m", Title: "Monstera Deliciosa (12cm)", Price: price(24.90), InStock: inStock()},
			},
			Tags:             models.TagsList{"bestseller"},
			CollectionHandle: strPtr("plantes-interieur"),
			Thumbnail:        "https://cdn.example.com/monstera.jpg",
		},
		{
			ID:     uuid.Must(uuid.NewV7()),
			Title:  "Pothos Doré",
			Handle: "pothos-dore",
			Status: "Active",
			Metadata: datatypes.JSONMap{
				"environment":  "indoor",
				"size":         "S",
				"diameter_cm":  8,
				"family":       "araceae",
				"placement":    []any{"chambre", "salle_de_bains"},
				"light":        "low_light",
				"difficulty":   "easy",
				"water_needs":  "low",
				"color":        "green",
				"hanging":      true,
				"pet_friendly": false,
			},
			Variants: models.VariantsList{
				{ID: "var-pothos-s", Title: "Pothos Doré (8cm)", Price: price(12.50), InStock: inStock()},
			},
			CollectionHandle: strPtr("plantes-interieur"),
			Thumbnail:        "https://cdn.example.com/pothos.jpg",
		},
		{
			ID:     uuid.Must(uuid.NewV7()),
			Title:  "Calathea Orbifolia",
			Handle: "calathea-orbifolia",
			Status: "Active",
			Metadata: datatypes.JSONMap{
				"environment":  "indoor",
				"size":         "L",
				"diameter_cm":  17,
				"height_cm":    60,
				"family":       "marantaceae",
				"placement":    []any{"salon"},
				"light":        "indirect_light",
				"difficulty":   "hard",
				"water_needs":  "high",
				"color":        "green",
				"rarity":       "rare",
				"pet_friendly": true,
			},
			Variants: models.VariantsList{
				{ID: "var-calathea-l", Title: "Calathea Orbifolia (17cm)", Price: price(39.00), InStock: inStock()},
			},
			CollectionHandle: strPtr("plantes-interieur"),
			Thumbnail:        "https://cdn.example.com/calathea.jpg",
		},
		{
			ID:     uuid.Must(uuid.NewV7()),
			Title:  "Lavande Vraie",
			Handle: "lavande-vraie",
			Status: "Active",
			Metadata: datatypes.JSONMap{
				"environment":     "outdoor",
				"diameter_cm":     14,
				"height_cm":       30,
				"sun_exposure":    "full_sun",
				"watering":        "low",
				"climate":         []any{"mediterranean", "temperate"},
				"season":          []any{"summer"},
				"frost_resistant": true,
			},
			Variants: models.VariantsList{
				{ID: "var-lavande", Title: "Lavande Vraie (14cm)", Price: price(9.90), InStock: inStock()},
			},
			CollectionHandle: strPtr("plantes-exterieur"),
			Thumbnail:        "https://cdn.example.com/lavande.jpg",
		},
		{
			ID:     uuid.Must(uuid.NewV7()),
			Title:  "Cache-pot Terracotta",
			Handle: "cache-pot-terracotta",
			Status: "Active",
			Metadata: datatypes.JSONMap{
				"material": "terracotta",
				"drainage": true,
				"usage":    "indoor",
			},
			Variants: models.VariantsList{
				{ID: "var-terra-14", Title: "Cache-pot Terracotta (14cm)", Price: price(14.00), InStock: inStock()},
				{ID: "var-terra-17", Title: "Cache-pot Terracotta (17cm)", Price: price(18.00), InStock: inStock()},
				{ID: "var-terra-25", Title: "Cache-pot Terracotta (25cm)", Price: price(29.00), InStock: inStock()},
			},
			CollectionHandle: strPtr("pots-et-cache-pots"),
			Thumbnail:        "https://cdn.example.com/terracotta.jpg",
		},
		{
			ID:     uuid.Must(uuid.NewV7()),
			Title:  "Jardinière Béton",
			Handle: "jardiniere-beton",
			Status: "Active",
			Metadata: datatypes.JSONMap{
				"diameter_cm": 35,
				"material":    "concrete",
				"drainage":    false,
				"usage":       "outdoor",
			},
			Variants: models.VariantsList{
				{ID: "var-beton", Title: "Jardinière Béton", Price: price(49.00), InStock: inStock()},
			},
			CollectionHandle: strPtr("pots-et-cache-pots"),
			Thumbnail:        "https://cdn.example.com/beton.jpg",
		},
		{
			// No environment and no pot vocabulary in the title: stays
			// unclassified, useful to check it never leaks into listings.
			ID:       uuid.Must(uuid.NewV7()),
			Title:    "Carte Cadeau",
			Handle:   "carte-cadeau",
			Status:   "Active",
			Metadata: datatypes.JSONMap{},
			Variants: models.VariantsList{
				{ID: "var-carte", Title: "Carte Cadeau 25€", Price: price(25.00), InStock: inStock()},
			},
			Thumbnail: "https://cdn.example.com/carte.jpg",
		},
	}
}
