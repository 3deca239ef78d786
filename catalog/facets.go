package catalog

import (
	"math"
	"sort"
	"strconv"

	"github.com/HamzaDalhoumi/plant-shop/models"
)

// ─────────────────────────────────────────────────────────────
// Facet configuration (display order + context relevance)
// ─────────────────────────────────────────────────────────────

type facetSpec struct {
	Label    string
	LabelFr  string
	Type     models.FacetType
	Order    int
	Contexts []Context
}

var facetConfig = map[string]facetSpec{
	// Common
	"price": {Label: "Price", LabelFr: "Prix", Type: models.FacetRange, Order: 1, Contexts: []Context{ContextAll}},

	// Indoor plants
	"size":        {Label: "Size", LabelFr: "Taille", Type: models.FacetCheckbox, Order: 2, Contexts: []Context{ContextIndoor}},
	"water_needs": {Label: "Water needs", LabelFr: "Besoin en eau", Type: models.FacetCheckbox, Order: 3, Contexts: []Context{ContextIndoor, ContextOutdoor}},
	"light":       {Label: "Light", LabelFr: "Lumière", Type: models.FacetCheckbox, Order: 4, Contexts: []Context{ContextIndoor, ContextOutdoor}},
	"difficulty":  {Label: "Difficulty", LabelFr: "Niveau d'entretien", Type: models.FacetCheckbox, Order: 5, Contexts: []Context{ContextIndoor}},
	"color":       {Label: "Color", LabelFr: "Couleur", Type: models.FacetColor, Order: 6, Contexts: []Context{ContextIndoor}},
	"family":      {Label: "Plant family", LabelFr: "Famille", Type: models.FacetCheckbox, Order: 7, Contexts: []Context{ContextIndoor}},
	"features":    {Label: "Features", LabelFr: "Caractéristiques", Type: models.FacetCheckbox, Order: 8, Contexts: []Context{ContextIndoor}},
	"placement":   {Label: "Room", LabelFr: "Pièce", Type: models.FacetCheckbox, Order: 9, Contexts: []Context{ContextIndoor, ContextOutdoor}},
	"shape":       {Label: "Shape", LabelFr: "Forme", Type: models.FacetCheckbox, Order: 10, Contexts: []Context{ContextIndoor}},
	"style":       {Label: "Style", LabelFr: "Style", Type: models.FacetCheckbox, Order: 11, Contexts: []Context{ContextIndoor}},
	"hanging":     {Label: "Standing or hanging", LabelFr: "Port de la plante", Type: models.FacetCheckbox, Order: 12, Contexts: []Context{ContextIndoor}},
	"rarity":      {Label: "Rarity", LabelFr: "Rareté", Type: models.FacetCheckbox, Order: 13, Contexts: []Context{ContextIndoor}},
	"height_cm":   {Label: "Height", LabelFr: "Hauteur (cm)", Type: models.FacetRange, Order: 14, Contexts: []Context{ContextIndoor, ContextOutdoor, ContextPot}},
	"diameter_cm": {Label: "Diameter", LabelFr: "Diamètre (cm)", Type: models.FacetRange, Order: 15, Contexts: []Context{ContextIndoor, ContextOutdoor, ContextPot}},

	// Outdoor plants
	"sun_exposure":    {Label: "Sun exposure", LabelFr: "Exposition au soleil", Type: models.FacetCheckbox, Order: 4, Contexts: []Context{ContextOutdoor}},
	"climate":         {Label: "Climate", LabelFr: "Climat", Type: models.FacetCheckbox, Order: 9, Contexts: []Context{ContextOutdoor}},
	"frost_resistant": {Label: "Frost resistant", LabelFr: "Résistant au gel", Type: models.FacetCheckbox, Order: 10, Contexts: []Context{ContextOutdoor}},
	"season":          {Label: "Season", LabelFr: "Saison", Type: models.FacetCheckbox, Order: 11, Contexts: []Context{ContextOutdoor}},

	// Pots
	"material": {Label: "Material", LabelFr: "Matériau", Type: models.FacetCheckbox, Order: 2, Contexts: []Context{ContextPot}},
	"drainage": {Label: "Drainage", LabelFr: "Drainage", Type: models.FacetCheckbox, Order: 6, Contexts: []Context{ContextPot}},

	// Collections and tags
	"collection": {Label: "Collection", LabelFr: "Collection", Type: models.FacetCheckbox, Order: 90, Contexts: []Context{ContextAll}},
	"tag":        {Label: "Tag", LabelFr: "Étiquette", Type: models.FacetCheckbox, Order: 91, Contexts: []Context{ContextAll}},
}

// Key-specific option orderings. Keys absent here sort by descending count,
// then label.
var optionOrders = map[string][]string{
	"size":        {"S", "M", "L", "XL", "XXL"},
	"difficulty":  {"easy", "medium", "expert"},
	"water_needs": {"weekly", "biweekly", "monthly", "low", "medium", "high"},
	"season":      {"spring", "summer", "autumn", "winter"},
}

// rangeKeys are the facet keys accumulated as (min, max) bounds.
var rangeKeys = map[string]bool{"height_cm": true, "diameter_cm": true, "price": true}

// ─────────────────────────────────────────────────────────────
// Facet index builder
// ─────────────────────────────────────────────────────────────

type rangeBounds struct {
	min, max float64
}

type facetAccumulator struct {
	options map[string]map[string]int
	ranges  map[string]*rangeBounds
}

func newFacetAccumulator() *facetAccumulator {
	return &facetAccumulator{
		options: make(map[string]map[string]int),
		ranges:  make(map[string]*rangeBounds),
	}
}

func (a *facetAccumulator) addOption(key, value string) {
	if value == "" {
		return
	}
	bucket, ok := a.options[key]
	if !ok {
		bucket = make(map[string]int)
		a.options[key] = bucket
	}
	bucket[value]++
}

func (a *facetAccumulator) addBool(key string, value *bool) {
	if value == nil {
		return
	}
	a.addOption(key, strconv.FormatBool(*value))
}

func (a *facetAccumulator) addRange(key string, value *float64) {
	if value == nil {
		return
	}
	bounds, ok := a.ranges[key]
	if !ok {
		a.ranges[key] = &rangeBounds{min: *value, max: *value}
		return
	}
	bounds.min = math.Min(bounds.min, *value)
	bounds.max = math.Max(bounds.max, *value)
}

// BuildFacets scans a product list and derives the filter groups to show for
// it: discovered option values with occurrence counts, and observed (min,
// max) bounds for range facets. Only keys relevant to the supplied context
// are emitted ("all" keys always are), and only keys with at least one value.
//
// The result is bound to exactly the list scanned. Hand it a filtered list
// and it returns the facets of that filtered list; reusing groups across
// different result sets produces stale counts.
func BuildFacets(products []models.ClassifiedProduct, ctx Context) []models.FacetGroup {
	acc := newFacetAccumulator()

	for i := range products {
		p := &products[i]
		switch {
		case p.Indoor != nil:
			acc.scanIndoor(p.Indoor)
		case p.Outdoor != nil:
			acc.scanOutdoor(p.Outdoor)
		case p.Pot != nil:
			acc.scanPot(p.Pot)
		}

		// Keys common to every category.
		acc.addRange("price", p.CheapestPrice())
		if p.CollectionHandle != nil {
			acc.addOption("collection", *p.CollectionHandle)
		}
		for _, tag := range p.Tags {
			acc.addOption("tag", tag)
		}
	}

	groups := make([]models.FacetGroup, 0, len(acc.options)+len(acc.ranges))

	for key, counts := range acc.options {
		spec, ok := facetConfig[key]
		if !ok || !relevantTo(spec, ctx) {
			continue
		}
		options := buildOptions(key, spec, counts)
		if len(options) == 0 {
			continue
		}
		groups = append(groups, models.FacetGroup{
			Key:     key,
			Label:   spec.Label,
			LabelFr: spec.LabelFr,
			Type:    spec.Type,
			Options: options,
		})
	}

	for key, bounds := range acc.ranges {
		spec, ok := facetConfig[key]
		if !ok || spec.Type != models.FacetRange || !relevantTo(spec, ctx) {
			continue
		}
		lo := math.Floor(bounds.min)
		hi := math.Ceil(bounds.max)
		groups = append(groups, models.FacetGroup{
			Key:     key,
			Label:   spec.Label,
			LabelFr: spec.LabelFr,
			Type:    models.FacetRange,
			Options: []models.FacetOption{},
			Min:     &lo,
			Max:     &hi,
		})
	}

	// Deterministic output: configured priority first, key as tiebreaker.
	sort.Slice(groups, func(i, j int) bool {
		oi := facetConfig[groups[i].Key].Order
		oj := facetConfig[groups[j].Key].Order
		if oi != oj {
			return oi < oj
		}
		return groups[i].Key < groups[j].Key
	})

	return groups
}

func (a *facetAccumulator) scanIndoor(attrs *models.IndoorPlantAttributes) {
	a.addOption("size", attrs.Size)
	a.addOption("family", attrs.Family)
	for _, room := range attrs.Placement {
		a.addOption("placement", room)
	}
	a.addOption("light", attrs.Light)
	a.addOption("difficulty", attrs.Difficulty)
	a.addOption("rarity", attrs.Rarity)
	a.addOption("water_needs", attrs.WaterNeeds)
	a.addOption("color", attrs.Color)
	a.addOption("shape", attrs.Shape)
	a.addOption("style", attrs.Style)
	a.addBool("hanging", attrs.Hanging)

	a.addRange("height_cm", attrs.HeightCm)
	a.addRange("diameter_cm", attrs.DiameterCm)

	// Boolean care flags fold into one synthetic features group.
	if attrs.Comfortable {
		a.addOption("features", "comfortable")
	}
	if attrs.AirPurifying {
		a.addOption("features", "air_purifying")
	}
	if attrs.PetFriendly {
		a.addOption("features", "pet_friendly")
	}
	if attrs.Hanging != nil && *attrs.Hanging {
		a.addOption("features", "hanging_plant")
	}
}

func (a *facetAccumulator) scanOutdoor(attrs *models.OutdoorPlantAttributes) {
	a.addOption("sun_exposure", attrs.SunExposure)
	a.addOption("water_needs", attrs.Watering)
	for _, climate := range attrs.Climate {
		a.addOption("climate", climate)
	}
	for _, season := range attrs.Season {
		a.addOption("season", season)
	}
	a.addBool("frost_resistant", attrs.FrostResistant)

	a.addRange("height_cm", attrs.HeightCm)
	a.addRange("diameter_cm", attrs.DiameterCm)
}

func (a *facetAccumulator) scanPot(attrs *models.PotAttributes) {
	a.addOption("material", attrs.Material)
	a.addBool("drainage", attrs.Drainage)

	a.addRange("height_cm", attrs.HeightCm)
	a.addRange("diameter_cm", attrs.DiameterCm)
}

func relevantTo(spec facetSpec, ctx Context) bool {
	if ctx == ContextAll || ctx == "" {
		return true
	}
	for _, c := range spec.Contexts {
		if c == ctx || c == ContextAll {
			return true
		}
	}
	return false
}

func buildOptions(key string, spec facetSpec, counts map[string]int) []models.FacetOption {
	options := make([]models.FacetOption, 0, len(counts))
	for value, count := range counts {
		option := models.FacetOption{
			Value: value,
			Label: FormatLabel(key, value),
			Count: count,
		}
		if spec.Type == models.FacetColor {
			option.Hex = ColorHex(value)
		}
		options = append(options, option)
	}

	if order, ok := optionOrders[key]; ok {
		rank := make(map[string]int, len(order))
		for i, v := range order {
			rank[v] = i
		}
		sort.Slice(options, func(i, j int) bool {
			ri, iOK := rank[options[i].Value]
			rj, jOK := rank[options[j].Value]
			switch {
			case iOK && jOK:
				return ri < rj
			case iOK:
				return true
			case jOK:
				return false
			}
			return options[i].Value < options[j].Value
		})
		return options
	}

	sort.Slice(options, func(i, j int) bool {
		if options[i].Count != options[j].Count {
			return options[i].Count > options[j].Count
		}
		return options[i].Label < options[j].Label
	})
	return options
}
