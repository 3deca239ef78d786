package catalog

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/HamzaDalhoumi/plant-shop/models"
)

func indoorPlant(handle string, metadata map[string]any) models.Product {
	if metadata == nil {
		metadata = map[string]any{}
	}
	metadata["environment"] = "indoor"
	return makeProduct(handle, handle, metadata)
}

func TestParseSelection(t *testing.T) {
	selected := ParseSelection(map[string]string{
		"difficulty": "easy,medium",
		"size":       " S , M ",
		"height_min": "10",
		"height_max": "40",
		"price_min":  "15",
		"unknown":    "whatever",
		"q":          "monstera",
	})

	assert.Equal(t, []string{"easy", "medium"}, selected["difficulty"])
	assert.Equal(t, []string{"S", "M"}, selected["size"])
	assert.Equal(t, []string{"10-40"}, selected["height_cm"])
	assert.Equal(t, []string{"15-"}, selected["price"])
	assert.NotContains(t, selected, "unknown")
	assert.NotContains(t, selected, "q")
}

func TestParseSelectionEmptyAndMalformed(t *testing.T) {
	assert.Empty(t, ParseSelection(map[string]string{}))
	assert.Empty(t, ParseSelection(map[string]string{"difficulty": ""}))
	assert.Empty(t, ParseSelection(map[string]string{"difficulty": " , , "}))
	assert.Empty(t, ParseSelection(nil))
}

func TestApplyFiltersEmptySelectionReturnsInputUnchanged(t *testing.T) {
	products := tagAll(t,
		indoorPlant("a", map[string]any{"difficulty": "easy"}),
		indoorPlant("b", map[string]any{"difficulty": "expert"}),
	)

	got := ApplyFilters(products, nil)
	require.Len(t, got, 2)
	assert.Equal(t, "a", got[0].Handle)
	assert.Equal(t, "b", got[1].Handle)
}

func TestApplyFiltersDisjunctionWithinKey(t *testing.T) {
	products := tagAll(t,
		indoorPlant("easy", map[string]any{"difficulty": "easy"}),
		indoorPlant("medium", map[string]any{"difficulty": "medium"}),
		indoorPlant("expert", map[string]any{"difficulty": "expert"}),
	)

	got := ApplyFilters(products, models.SelectedFilters{"difficulty": {"easy", "medium"}})
	require.Len(t, got, 2)
	assert.Equal(t, "easy", got[0].Handle)
	assert.Equal(t, "medium", got[1].Handle)
}

func TestApplyFiltersConjunctionAcrossKeys(t *testing.T) {
	products := tagAll(t,
		indoorPlant("match", map[string]any{"difficulty": "easy", "light": "low_light"}),
		indoorPlant("wrong-light", map[string]any{"difficulty": "easy", "light": "direct_sun"}),
		indoorPlant("wrong-difficulty", map[string]any{"difficulty": "expert", "light": "low_light"}),
	)

	got := ApplyFilters(products, models.SelectedFilters{
		"difficulty": {"easy"},
		"light":      {"low_light"},
	})
	require.Len(t, got, 1)
	assert.Equal(t, "match", got[0].Handle)
}

// Ten indoor plants, four easy, three of those pet-friendly: the combined
// selection keeps exactly those three.
func TestApplyFiltersDifficultyPlusFeature(t *testing.T) {
	var products []models.Product
	for i := 0; i < 10; i++ {
		difficulty := "expert"
		if i < 4 {
			difficulty = "easy"
		}
		products = append(products, indoorPlant(fmt.Sprintf("plant-%d", i), map[string]any{
			"difficulty":   difficulty,
			"pet_friendly": i < 3,
		}))
	}

	got := ApplyFilters(tagAll(t, products...), models.SelectedFilters{
		"difficulty": {"easy"},
		"features":   {"pet_friendly"},
	})
	require.Len(t, got, 3)
}

func TestApplyFiltersFeaturesAreConjunctive(t *testing.T) {
	products := tagAll(t,
		indoorPlant("both", map[string]any{"pet_friendly": true, "air_purifying": true}),
		indoorPlant("pet-only", map[string]any{"pet_friendly": true}),
	)

	got := ApplyFilters(products, models.SelectedFilters{
		"features": {"pet_friendly", "air_purifying"},
	})
	require.Len(t, got, 1)
	assert.Equal(t, "both", got[0].Handle)
}

func TestApplyFiltersFailsClosedOnMissingAttribute(t *testing.T) {
	products := tagAll(t,
		indoorPlant("has-difficulty", map[string]any{"difficulty": "easy"}),
		indoorPlant("no-difficulty", nil),
		makeProduct("Pot Oslo", "pot-oslo", map[string]any{"environment": "pot", "material": "ceramic"}),
		makeProduct("Mystery", "mystery", nil),
	)

	got := ApplyFilters(products, models.SelectedFilters{"difficulty": {"easy"}})
	require.Len(t, got, 1)
	assert.Equal(t, "has-difficulty", got[0].Handle)
}

func TestApplyFiltersArrayAttributeMatchesAnyElement(t *testing.T) {
	products := tagAll(t,
		indoorPlant("salon", map[string]any{"placement": []any{"salon", "bureau"}}),
		indoorPlant("chambre", map[string]any{"placement": []any{"chambre"}}),
	)

	got := ApplyFilters(products, models.SelectedFilters{"placement": {"bureau", "cuisine"}})
	require.Len(t, got, 1)
	assert.Equal(t, "salon", got[0].Handle)
}

func TestApplyFiltersRange(t *testing.T) {
	products := tagAll(t,
		indoorPlant("short", map[string]any{"height_cm": float64(20)}),
		indoorPlant("tall", map[string]any{"height_cm": float64(90)}),
		indoorPlant("unmeasured", nil),
	)

	tests := []struct {
		name    string
		encoded string
		want    []string
	}{
		{"bounded", "10-40", []string{"short"}},
		{"open max", "50-", []string{"tall"}},
		{"open min", "-40", []string{"short"}},
		{"catches all measured", "0-100", []string{"short", "tall"}},
		{"garbage bounds fail open to zero and infinity", "abc-def", []string{"short", "tall"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ApplyFilters(products, models.SelectedFilters{"height_cm": {tt.encoded}})
			handles := make([]string, 0, len(got))
			for _, p := range got {
				handles = append(handles, p.Handle)
			}
			assert.Equal(t, tt.want, handles)
		})
	}
}

func TestApplyFiltersPriceUsesCheapestVariant(t *testing.T) {
	cheapish := indoorPlant("cheapish", nil)
	cheapish.Variants = models.VariantsList{
		{ID: "v1", Title: "S", Price: price(9.9)},
		{ID: "v2", Title: "L", Price: price(49.9)},
	}
	pricey := indoorPlant("pricey", nil)
	pricey.Variants = models.VariantsList{{ID: "v3", Title: "M", Price: price(89.0)}}
	unpriced := indoorPlant("unpriced", nil)

	got := ApplyFilters(tagAll(t, cheapish, pricey, unpriced), models.SelectedFilters{"price": {"5-20"}})
	require.Len(t, got, 1)
	assert.Equal(t, "cheapish", got[0].Handle)
}

func TestApplyFiltersCollectionAndTag(t *testing.T) {
	oslo := "serie-oslo"
	a := indoorPlant("a", nil)
	a.CollectionHandle = &oslo
	a.Tags = models.TagsList{"nouveau", "promo"}
	b := indoorPlant("b", nil)
	b.Tags = models.TagsList{"promo"}

	products := tagAll(t, a, b)

	got := ApplyFilters(products, models.SelectedFilters{"collection": {"serie-oslo"}})
	require.Len(t, got, 1)
	assert.Equal(t, "a", got[0].Handle)

	got = ApplyFilters(products, models.SelectedFilters{"tag": {"promo"}})
	assert.Len(t, got, 2)

	got = ApplyFilters(products, models.SelectedFilters{"tag": {"nouveau"}})
	require.Len(t, got, 1)
	assert.Equal(t, "a", got[0].Handle)
}

func TestApplyFiltersOutdoorAndPotKeys(t *testing.T) {
	products := tagAll(t,
		makeProduct("Olivier", "olivier", map[string]any{
			"environment":  "outdoor",
			"sun_exposure": "full_sun",
			"season":       []any{"spring", "summer"},
		}),
		makeProduct("Pot Oslo", "pot-oslo", map[string]any{
			"environment": "pot",
			"material":    "ceramic",
			"drainage":    true,
		}),
	)

	got := ApplyFilters(products, models.SelectedFilters{"sun_exposure": {"full_sun"}})
	require.Len(t, got, 1)
	assert.Equal(t, "olivier", got[0].Handle)

	got = ApplyFilters(products, models.SelectedFilters{"season": {"summer"}})
	require.Len(t, got, 1)

	got = ApplyFilters(products, models.SelectedFilters{"material": {"ceramic"}})
	require.Len(t, got, 1)
	assert.Equal(t, "pot-oslo", got[0].Handle)

	got = ApplyFilters(products, models.SelectedFilters{"drainage": {"true"}})
	require.Len(t, got, 1)
	assert.Equal(t, "pot-oslo", got[0].Handle)
}

func TestApplyFiltersIdempotent(t *testing.T) {
	products := tagAll(t,
		indoorPlant("a", map[string]any{"difficulty": "easy"}),
		indoorPlant("b", map[string]any{"difficulty": "medium"}),
		indoorPlant("c", map[string]any{"difficulty": "easy"}),
	)
	selected := models.SelectedFilters{"difficulty": {"easy"}}

	once := ApplyFilters(products, selected)
	twice := ApplyFilters(once, selected)
	assert.Equal(t, once, twice)
}

func TestFacetsAgreeWithFilteredList(t *testing.T) {
	// The facet counts of a filtered list must describe that list, not the
	// one it was derived from.
	products := tagAll(t,
		indoorPlant("a", map[string]any{"difficulty": "easy", "light": "low_light"}),
		indoorPlant("b", map[string]any{"difficulty": "easy", "light": "direct_sun"}),
		indoorPlant("c", map[string]any{"difficulty": "expert", "light": "low_light"}),
	)

	filtered := ApplyFilters(products, models.SelectedFilters{"difficulty": {"easy"}})
	groups := BuildFacets(filtered, ContextIndoor)

	light := findGroup(groups, "light")
	require.NotNil(t, light)
	lowLight := findOption(light, "low_light")
	require.NotNil(t, lowLight)
	assert.Equal(t, 1, lowLight.Count)

	difficulty := findGroup(groups, "difficulty")
	require.NotNil(t, difficulty)
	assert.Nil(t, findOption(difficulty, "expert"))
}
