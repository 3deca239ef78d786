package catalog

import (
	"strings"

	"github.com/HamzaDalhoumi/plant-shop/models"
)

// French display labels for facet option values. Values without an entry fall
// back to a title-cased version of the raw value.
var valueLabels = map[string]map[string]string{
	"size": {
		"S":   "Petite (S)",
		"M":   "Moyenne (M)",
		"L":   "Grande (L)",
		"XL":  "Très grande (XL)",
		"XXL": "Extra grande (XXL)",
	},
	"water_needs": {
		"weekly":   "1× par semaine",
		"biweekly": "1× par 2 semaines",
		"monthly":  "1× par mois",
		"low":      "Faible",
		"medium":   "Modéré",
		"high":     "Élevé",
	},
	"light": {
		"direct_sun":     "Soleil direct",
		"indirect_light": "Lumière indirecte",
		"partial_shade":  "Mi-ombre",
		"low_light":      "Faible luminosité",
		"full_sun":       "Plein soleil",
		"shade":          "Ombre",
	},
	"sun_exposure": {
		"full_sun":      "Plein soleil",
		"partial_shade": "Mi-ombre",
		"shade":         "Ombre",
	},
	"hanging": {
		"true":  "Plante retombante",
		"false": "Plante dressée",
	},
	"shape": {
		"cylinder": "Cylindrique",
		"tower":    "Colonnaire",
		"bush":     "Buissonnant",
		"trailing": "Retombant",
		"rosette":  "En rosette",
	},
	"placement": {
		"salon":          "Salon",
		"bureau":         "Bureau",
		"chambre":        "Chambre",
		"salle_de_bains": "Salle de bain",
		"cuisine":        "Cuisine",
		"couloir":        "Couloir",
		"terrasse":       "Terrasse",
		"balcon":         "Balcon",
		"jardin":         "Jardin",
	},
	"climate": {
		"temperate":     "Tempéré",
		"tropical":      "Tropical",
		"mediterranean": "Méditerranéen",
		"arid":          "Aride",
	},
	"season": {
		"spring": "Printemps",
		"summer": "Été",
		"autumn": "Automne",
		"winter": "Hiver",
	},
	"style": {
		"nature": "Naturel",
		"modern": "Moderne",
		"basic":  "Classique",
		"exotic": "Exotique",
	},
	"difficulty": {
		"easy":   "Facile",
		"medium": "Intermédiaire",
		"expert": "Expert",
	},
	"rarity": {
		"common": "Commune",
		"rare":   "Rare",
		"hybrid": "Hybride",
	},
	"material": {
		"ceramic":    "Céramique",
		"terracotta": "Terre cuite",
		"plastic":    "Plastique",
		"concrete":   "Béton",
		"metal":      "Métal",
		"wood":       "Bois",
	},
	"features": {
		"comfortable":   "Facile d'entretien",
		"air_purifying": "Purifie l'air",
		"pet_friendly":  "Non toxique",
		"hanging_plant": "Suspendu",
	},
	"frost_resistant": {
		"true":  "Résistant au gel",
		"false": "Sensible au gel",
	},
	"drainage": {
		"true":  "Avec drainage",
		"false": "Sans drainage",
	},
}

type colorSwatch struct {
	Label string
	Hex   string
}

var colorConfig = map[string]colorSwatch{
	"green":       {Label: "Vert", Hex: "#228B22"},
	"dark_green":  {Label: "Vert foncé", Hex: "#006400"},
	"light_green": {Label: "Vert clair", Hex: "#90EE90"},
	"variegated":  {Label: "Panaché", Hex: "linear-gradient(45deg, #228B22 50%, #FFFDD0 50%)"},
	"red":        {Label: "Rouge", Hex: "#DC143C"},
	"pink":       {Label: "Rose", Hex: "#FF69B4"},
	"purple":     {Label: "Violet", Hex: "#9370DB"},
	"orange":     {Label: "Orange", Hex: "#FFA500"},
	"yellow":     {Label: "Jaune", Hex: "#FFD700"},
	"white":      {Label: "Blanc", Hex: "#FFFFFF"},
	"brown":      {Label: "Brun", Hex: "#8B4513"},
	"blue":       {Label: "Bleu", Hex: "#4169E1"},
	"silver":     {Label: "Argenté", Hex: "#C0C0C0"},
	"multicolor": {Label: "Multicolore", Hex: "linear-gradient(45deg, #FF6B6B, #4ECDC4, #FFE66D)"},
}

// FormatLabel returns the display label for a facet option value.
func FormatLabel(key, value string) string {
	if labels, ok := valueLabels[key]; ok {
		if label, ok := labels[value]; ok {
			return label
		}
	}
	if key == "color" {
		if swatch, ok := colorConfig[value]; ok {
			return swatch.Label
		}
	}
	return titleCase(strings.ReplaceAll(value, "_", " "))
}

// ColorHex returns the swatch hex for a color value, gray for unknown colors.
func ColorHex(value string) string {
	if swatch, ok := colorConfig[value]; ok {
		return swatch.Hex
	}
	return "#808080"
}

func titleCase(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}

// QuickFilters returns the one-tap filter presets for a listing context.
func QuickFilters(ctx Context) []models.QuickFilter {
	switch ctx {
	case ContextIndoor:
		return []models.QuickFilter{
			{Key: "difficulty", Value: "easy", Label: "🌿 Facile", Icon: "leaf"},
			{Key: "features", Value: "pet_friendly", Label: "🐾 Pet-friendly", Icon: "pet"},
			{Key: "features", Value: "air_purifying", Label: "💨 Purifiant", Icon: "air"},
			{Key: "light", Value: "low_light", Label: "🌑 Peu de lumière", Icon: "moon"},
			{Key: "water_needs", Value: "monthly", Label: "💧 Peu d'eau", Icon: "drop"},
			{Key: "size", Value: "S", Label: "🌱 Petite taille", Icon: "small"},
		}
	case ContextOutdoor:
		return []models.QuickFilter{
			{Key: "sun_exposure", Value: "full_sun", Label: "☀️ Plein soleil", Icon: "sun"},
			{Key: "frost_resistant", Value: "true", Label: "❄️ Résistant au gel", Icon: "frost"},
			{Key: "water_needs", Value: "low", Label: "🏜️ Peu d'eau", Icon: "cactus"},
			{Key: "season", Value: "spring", Label: "🌸 Printemps", Icon: "flower"},
			{Key: "season", Value: "summer", Label: "🌻 Été", Icon: "sunflower"},
			{Key: "climate", Value: "mediterranean", Label: "🌴 Méditerranéen", Icon: "palm"},
		}
	case ContextPot:
		return []models.QuickFilter{
			{Key: "material", Value: "ceramic", Label: "🏺 Céramique", Icon: "ceramic"},
			{Key: "material", Value: "terracotta", Label: "🧱 Terre cuite", Icon: "terracotta"},
			{Key: "drainage", Value: "true", Label: "💧 Avec drainage", Icon: "drain"},
		}
	}
	return []models.QuickFilter{}
}
