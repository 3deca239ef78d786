package services

import (
	"log"

	catalog_cache "github.com/HamzaDalhoumi/plant-shop/cache"
	"github.com/HamzaDalhoumi/plant-shop/catalog"
	"github.com/HamzaDalhoumi/plant-shop/config"
	"github.com/HamzaDalhoumi/plant-shop/models"
)

// CatalogService loads the Active catalog and hands out the classified
// snapshot every storefront endpoint reads from.
type CatalogService struct {
	rules *catalog.Config
}

var catalogService *CatalogService

// GetCatalogService returns the shared catalog service instance
func GetCatalogService() *CatalogService {
	if catalogService == nil {
		catalogService = &CatalogService{rules: catalog.DefaultConfig()}
	}
	return catalogService
}

// Rules exposes the classification/compatibility rule set used by the service.
func (s *CatalogService) Rules() *catalog.Config {
	return s.rules
}

// Snapshot returns the classified Active catalog, serving from cache when the
// snapshot is still fresh.
func (s *CatalogService) Snapshot() ([]models.ClassifiedProduct, error) {
	if cached, ok := catalog_cache.GetSnapshot(); ok {
		return cached, nil
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	var products []models.Product
	if err := config.CatalogGorm.
		WithContext(ctx).
		Where("status = ?", "Active").
		Order("created_at DESC").
		Find(&products).Error; err != nil {
		log.Printf("❌ Failed to load catalog snapshot: %v", err)
		return nil, err
	}

	classified := s.rules.Tag(products)
	catalog_cache.SetSnapshot(classified)

	return classified, nil
}

// FindByID looks a product up in the classified snapshot by its string ID.
func (s *CatalogService) FindByID(id string) (*models.ClassifiedProduct, error) {
	snapshot, err := s.Snapshot()
	if err != nil {
		return nil, err
	}
	for i := range snapshot {
		if snapshot[i].ID.String() == id {
			return &snapshot[i], nil
		}
	}
	return nil, nil
}
