package catalog

import (
	"strconv"
	"strings"

	"github.com/HamzaDalhoumi/plant-shop/models"
	"github.com/spf13/cast"
)

// ResolveDiameter normalizes the heterogeneous size representations of a
// product into one comparable diameter in centimeters.
//
// Resolution order:
//  1. direct numeric `diameter_cm` in the metadata bag
//  2. discrete `size` label (S..XXL) through the SizeDiameters table
//  3. numeric token embedded in the supplied variant title
//
// ok is false when none of these apply. Callers must treat that as "exclude
// from diameter-based computation", never as zero.
func (c *Config) ResolveDiameter(p *models.Product, variant *models.Variant) (float64, bool) {
	if p != nil && p.Metadata != nil {
		if raw, present := p.Metadata["diameter_cm"]; present && raw != nil {
			if d, err := cast.ToFloat64E(raw); err == nil && d > 0 {
				return d, true
			}
		}
		if label, present := p.Metadata["size"]; present {
			if d, ok := c.SizeDiameters[strings.ToUpper(strings.TrimSpace(cast.ToString(label)))]; ok {
				return d, true
			}
		}
	}
	if variant != nil {
		return c.ExtractDiameter(variant.Title)
	}
	return 0, false
}

// ExtractDiameter pulls an embedded diameter out of free text such as a
// variant title ("Moyen (14cm)", "Ø18", "diamètre 21"). The configured
// patterns are tried in order; the first match wins.
func (c *Config) ExtractDiameter(title string) (float64, bool) {
	for _, pattern := range c.DiameterPatterns {
		m := pattern.FindStringSubmatch(title)
		if m == nil {
			continue
		}
		token := strings.ReplaceAll(m[1], ",", ".")
		d, err := strconv.ParseFloat(token, 64)
		if err != nil || d <= 0 {
			continue
		}
		return d, true
	}
	return 0, false
}
