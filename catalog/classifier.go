package catalog

import (
	"strings"

	"github.com/HamzaDalhoumi/plant-shop/models"
)

// Classify decides which semantic category a product record belongs to.
//
// The explicit `environment` metadata key is authoritative: a product whose
// environment is indoor/outdoor is a plant no matter what its title looks
// like. Only when the bag says nothing do the name-based pot vocabulary rules
// run, and those are suppressed for titles containing a known plant name
// (a "Pothos" must never become a pot through substring collision).
//
// Pure function; always returns a category, defaulting to unclassified.
func (c *Config) Classify(p *models.Product) models.Category {
	switch strings.ToLower(bagEnvironment(p)) {
	case "indoor":
		return models.CategoryPlantIndoor
	case "outdoor":
		return models.CategoryPlantOutdoor
	case "pot":
		return models.CategoryPot
	}

	// No explicit environment: fall back to name heuristics.
	name := strings.ToLower(p.Title + " " + p.Handle)
	for _, excl := range c.PlantExclusions {
		if strings.Contains(name, excl) {
			return models.CategoryUnclassified
		}
	}
	for _, rule := range c.PotRules {
		if rule.Pattern.MatchString(name) {
			return models.CategoryPot
		}
	}

	return models.CategoryUnclassified
}

// Tag classifies every product in the snapshot and decodes its metadata bag
// into the typed attribute shape for its category. Input order is preserved.
func (c *Config) Tag(products []models.Product) []models.ClassifiedProduct {
	tagged := make([]models.ClassifiedProduct, 0, len(products))
	for i := range products {
		p := products[i]
		cp := models.ClassifiedProduct{Product: p, Category: c.Classify(&p)}
		switch cp.Category {
		case models.CategoryPlantIndoor:
			cp.Indoor = models.DecodeIndoorAttributes(p.Metadata)
		case models.CategoryPlantOutdoor:
			cp.Outdoor = models.DecodeOutdoorAttributes(p.Metadata)
		case models.CategoryPot:
			cp.Pot = models.DecodePotAttributes(p.Metadata)
		}
		tagged = append(tagged, cp)
	}
	return tagged
}

func bagEnvironment(p *models.Product) string {
	if p.Metadata == nil {
		return ""
	}
	env, _ := p.Metadata["environment"].(string)
	return env
}
