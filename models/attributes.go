package models

import (
	"github.com/spf13/cast"
)

// ═══════════════════════════════════════════════════════════
// Derived Category Tag
// ═══════════════════════════════════════════════════════════

// Category is derived per product per query, never persisted.
type Category string

const (
	CategoryPlantIndoor  Category = "plant-indoor"
	CategoryPlantOutdoor Category = "plant-outdoor"
	CategoryPot          Category = "pot"
	CategoryUnclassified Category = "unclassified"
)

// IsPlant reports whether the category is one of the two plant categories.
func (c Category) IsPlant() bool {
	return c == CategoryPlantIndoor || c == CategoryPlantOutdoor
}

// ═══════════════════════════════════════════════════════════
// Typed attribute shapes (decoded from the raw metadata bag)
// ═══════════════════════════════════════════════════════════

// The metadata column is a free-form JSONB bag. Right after classification we
// decode it into one of these closed shapes so downstream code works against
// typed fields instead of re-checking map keys everywhere. Missing or
// malformed entries decode to zero values / nil pointers, never errors.

type IndoorPlantAttributes struct {
	Size         string   `json:"size,omitempty"` // S | M | L | XL | XXL
	Family       string   `json:"family,omitempty"`
	Placement    []string `json:"placement,omitempty"`
	Light        string   `json:"light,omitempty"`
	Difficulty   string   `json:"difficulty,omitempty"`
	Rarity       string   `json:"rarity,omitempty"`
	WaterNeeds   string   `json:"water_needs,omitempty"`
	Color        string   `json:"color,omitempty"`
	Shape        string   `json:"shape,omitempty"`
	Style        string   `json:"style,omitempty"`
	PetFriendly  bool     `json:"pet_friendly,omitempty"`
	AirPurifying bool     `json:"air_purifying,omitempty"`
	Comfortable  bool     `json:"comfortable,omitempty"`
	Hanging      *bool    `json:"hanging,omitempty"`
	HeightCm     *float64 `json:"height_cm,omitempty"`
	DiameterCm   *float64 `json:"diameter_cm,omitempty"`
}

type OutdoorPlantAttributes struct {
	SunExposure    string   `json:"sun_exposure,omitempty"`
	Watering       string   `json:"watering,omitempty"`
	Climate        []string `json:"climate,omitempty"`
	Season         []string `json:"season,omitempty"`
	FrostResistant *bool    `json:"frost_resistant,omitempty"`
	HeightCm       *float64 `json:"height_cm,omitempty"`
	DiameterCm     *float64 `json:"diameter_cm,omitempty"`
}

type PotAttributes struct {
	Material   string   `json:"material,omitempty"`
	Drainage   *bool    `json:"drainage,omitempty"`
	Usage      string   `json:"usage,omitempty"` // indoor | outdoor
	HeightCm   *float64 `json:"height_cm,omitempty"`
	DiameterCm *float64 `json:"diameter_cm,omitempty"`
}

// ClassifiedProduct is a product snapshot tagged with its derived category and
// the decoded attribute shape for that category. Exactly one of Indoor,
// Outdoor, Pot is non-nil unless the category is unclassified.
type ClassifiedProduct struct {
	Product
	Category Category                `json:"category"`
	Indoor   *IndoorPlantAttributes  `json:"indoor,omitempty"`
	Outdoor  *OutdoorPlantAttributes `json:"outdoor,omitempty"`
	Pot      *PotAttributes          `json:"pot,omitempty"`
}

// BaseDiameter returns the product-level diameter_cm regardless of category.
func (p *ClassifiedProduct) BaseDiameter() (float64, bool) {
	switch {
	case p.Indoor != nil && p.Indoor.DiameterCm != nil:
		return *p.Indoor.DiameterCm, true
	case p.Outdoor != nil && p.Outdoor.DiameterCm != nil:
		return *p.Outdoor.DiameterCm, true
	case p.Pot != nil && p.Pot.DiameterCm != nil:
		return *p.Pot.DiameterCm, true
	}
	return 0, false
}

// ═══════════════════════════════════════════════════════════
// Bag decoders
// ═══════════════════════════════════════════════════════════

func DecodeIndoorAttributes(bag map[string]any) *IndoorPlantAttributes {
	return &IndoorPlantAttributes{
		Size:         bagString(bag, "size"),
		Family:       bagString(bag, "family"),
		Placement:    bagStrings(bag, "placement"),
		Light:        bagString(bag, "light"),
		Difficulty:   bagString(bag, "difficulty"),
		Rarity:       bagString(bag, "rarity"),
		WaterNeeds:   bagString(bag, "water_needs"),
		Color:        bagString(bag, "color"),
		Shape:        bagString(bag, "shape"),
		Style:        bagString(bag, "style"),
		PetFriendly:  bagBool(bag, "pet_friendly"),
		AirPurifying: bagBool(bag, "air_purifying"),
		Comfortable:  bagBool(bag, "comfortable"),
		Hanging:      bagBoolPtr(bag, "hanging"),
		HeightCm:     bagFloat(bag, "height_cm"),
		DiameterCm:   bagFloat(bag, "diameter_cm"),
	}
}

func DecodeOutdoorAttributes(bag map[string]any) *OutdoorPlantAttributes {
	return &OutdoorPlantAttributes{
		SunExposure:    bagString(bag, "sun_exposure"),
		Watering:       bagString(bag, "watering"),
		Climate:        bagStrings(bag, "climate"),
		Season:         bagStrings(bag, "season"),
		FrostResistant: bagBoolPtr(bag, "frost_resistant"),
		HeightCm:       bagFloat(bag, "height_cm"),
		DiameterCm:     bagFloat(bag, "diameter_cm"),
	}
}

func DecodePotAttributes(bag map[string]any) *PotAttributes {
	return &PotAttributes{
		Material:   bagString(bag, "material"),
		Drainage:   bagBoolPtr(bag, "drainage"),
		Usage:      bagString(bag, "usage"),
		HeightCm:   bagFloat(bag, "height_cm"),
		DiameterCm: bagFloat(bag, "diameter_cm"),
	}
}

// Bag readers tolerate whatever scalar shape JSONB decoding produced
// (float64, string, bool, json.Number). Anything uncoercible reads as absent.

func bagString(bag map[string]any, key string) string {
	v, ok := bag[key]
	if !ok || v == nil {
		return ""
	}
	s, err := cast.ToStringE(v)
	if err != nil {
		return ""
	}
	return s
}

func bagStrings(bag map[string]any, key string) []string {
	v, ok := bag[key]
	if !ok || v == nil {
		return nil
	}
	out, err := cast.ToStringSliceE(v)
	if err != nil || len(out) == 0 {
		return nil
	}
	return out
}

func bagBool(bag map[string]any, key string) bool {
	v, ok := bag[key]
	if !ok || v == nil {
		return false
	}
	b, err := cast.ToBoolE(v)
	if err != nil {
		return false
	}
	return b
}

func bagBoolPtr(bag map[string]any, key string) *bool {
	v, ok := bag[key]
	if !ok || v == nil {
		return nil
	}
	b, err := cast.ToBoolE(v)
	if err != nil {
		return nil
	}
	return &b
}

func bagFloat(bag map[string]any, key string) *float64 {
	v, ok := bag[key]
	if !ok || v == nil {
		return nil
	}
	f, err := cast.ToFloat64E(v)
	if err != nil {
		return nil
	}
	return &f
}
