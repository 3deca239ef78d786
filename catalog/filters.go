package catalog

import (
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/HamzaDalhoumi/plant-shop/models"
)

// ParseSelection decodes the flat URL-query encoding of a filter selection:
// comma-joined values per facet key, plus height_min/height_max,
// diameter_min/diameter_max and price_min/price_max pairs which collapse to
// a single "min-max" entry under their range key. Unknown keys are ignored,
// so an unparseable query degrades to "no filters applied" instead of
// failing the request.
func ParseSelection(params map[string]string) models.SelectedFilters {
	selected := make(models.SelectedFilters)

	keys := make([]string, 0, len(facetConfig))
	for key := range facetConfig {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		raw, ok := params[key]
		if !ok || raw == "" {
			continue
		}
		var values []string
		for _, entry := range strings.Split(raw, ",") {
			if entry = strings.TrimSpace(entry); entry != "" {
				values = append(values, entry)
			}
		}
		if len(values) > 0 {
			selected[key] = values
		}
	}

	for param, key := range map[string]string{
		"height":   "height_cm",
		"diameter": "diameter_cm",
		"price":    "price",
	} {
		lo := strings.TrimSpace(params[param+"_min"])
		hi := strings.TrimSpace(params[param+"_max"])
		if lo != "" || hi != "" {
			selected[key] = []string{lo + "-" + hi}
		}
	}

	return selected
}

// ApplyFilters narrows a product list by the selection state: a product must
// satisfy every selected key (AND across keys) and, within a key, any one of
// the selected values (OR within a key). Range keys and the features key are
// the exception — their sub-conditions all have to hold. A product missing
// the attribute behind an active key is excluded, never waved through.
//
// An empty selection returns the input unchanged; input order is preserved.
func ApplyFilters(products []models.ClassifiedProduct, selected models.SelectedFilters) []models.ClassifiedProduct {
	if len(selected) == 0 {
		return products
	}

	keys := make([]string, 0, len(selected))
	for key := range selected {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	filtered := make([]models.ClassifiedProduct, 0, len(products))
	for i := range products {
		p := &products[i]
		match := true
		for _, key := range keys {
			if !matchesKey(p, key, selected[key]) {
				match = false
				break
			}
		}
		if match {
			filtered = append(filtered, *p)
		}
	}
	return filtered
}

func matchesKey(p *models.ClassifiedProduct, key string, values []string) bool {
	if len(values) == 0 {
		return true
	}

	switch key {
	case "collection":
		return p.CollectionHandle != nil && containsValue(values, *p.CollectionHandle)

	case "tag":
		for _, tag := range p.Tags {
			if containsValue(values, tag) {
				return true
			}
		}
		return false

	case "features":
		// Implicit AND over the selected care flags; only indoor plants
		// carry them.
		if p.Indoor == nil {
			return false
		}
		for _, flag := range values {
			if !hasFeature(p.Indoor, flag) {
				return false
			}
		}
		return true
	}

	if rangeKeys[key] {
		return matchesRange(p, key, values[0])
	}

	switch p.Category {
	case models.CategoryPlantIndoor:
		return matchesIndoor(p.Indoor, key, values)
	case models.CategoryPlantOutdoor:
		return matchesOutdoor(p.Outdoor, key, values)
	case models.CategoryPot:
		return matchesPot(p.Pot, key, values)
	}
	return false
}

func matchesRange(p *models.ClassifiedProduct, key, encoded string) bool {
	lo, hi := parseRange(encoded)

	var value *float64
	switch key {
	case "price":
		value = p.CheapestPrice()
	case "height_cm":
		switch {
		case p.Indoor != nil:
			value = p.Indoor.HeightCm
		case p.Outdoor != nil:
			value = p.Outdoor.HeightCm
		case p.Pot != nil:
			value = p.Pot.HeightCm
		}
	case "diameter_cm":
		if d, ok := p.BaseDiameter(); ok {
			value = &d
		}
	}

	return value != nil && *value >= lo && *value <= hi
}

// parseRange decodes a "min-max" pair; an absent bound defaults to 0 or +Inf.
func parseRange(encoded string) (float64, float64) {
	lo, hi := 0.0, math.Inf(1)
	parts := strings.SplitN(encoded, "-", 2)
	if v, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64); err == nil {
		lo = v
	}
	if len(parts) == 2 {
		if v, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64); err == nil {
			hi = v
		}
	}
	return lo, hi
}

func matchesIndoor(attrs *models.IndoorPlantAttributes, key string, values []string) bool {
	switch key {
	case "size":
		return containsValue(values, attrs.Size)
	case "family":
		return containsValue(values, attrs.Family)
	case "placement":
		return anyValue(values, attrs.Placement)
	case "light":
		return containsValue(values, attrs.Light)
	case "difficulty":
		return containsValue(values, attrs.Difficulty)
	case "rarity":
		return containsValue(values, attrs.Rarity)
	case "water_needs":
		return containsValue(values, attrs.WaterNeeds)
	case "color":
		return containsValue(values, attrs.Color)
	case "shape":
		return containsValue(values, attrs.Shape)
	case "style":
		return containsValue(values, attrs.Style)
	case "hanging":
		return attrs.Hanging != nil && containsValue(values, strconv.FormatBool(*attrs.Hanging))
	}
	return false
}

func matchesOutdoor(attrs *models.OutdoorPlantAttributes, key string, values []string) bool {
	switch key {
	case "sun_exposure", "light": // light kept as an alias for older links
		return containsValue(values, attrs.SunExposure)
	case "water_needs":
		return containsValue(values, attrs.Watering)
	case "climate":
		return anyValue(values, attrs.Climate)
	case "season":
		return anyValue(values, attrs.Season)
	case "frost_resistant":
		return attrs.FrostResistant != nil && containsValue(values, strconv.FormatBool(*attrs.FrostResistant))
	}
	return false
}

func matchesPot(attrs *models.PotAttributes, key string, values []string) bool {
	switch key {
	case "material":
		return containsValue(values, attrs.Material)
	case "drainage":
		return attrs.Drainage != nil && containsValue(values, strconv.FormatBool(*attrs.Drainage))
	}
	return false
}

func hasFeature(attrs *models.IndoorPlantAttributes, flag string) bool {
	switch flag {
	case "comfortable":
		return attrs.Comfortable
	case "air_purifying":
		return attrs.AirPurifying
	case "pet_friendly":
		return attrs.PetFriendly
	case "hanging_plant":
		return attrs.Hanging != nil && *attrs.Hanging
	}
	return false
}

func containsValue(values []string, v string) bool {
	if v == "" {
		return false
	}
	for _, value := range values {
		if value == v {
			return true
		}
	}
	return false
}

func anyValue(values, attrValues []string) bool {
	for _, av := range attrValues {
		if containsValue(values, av) {
			return true
		}
	}
	return false
}
