package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/HamzaDalhoumi/plant-shop/models"
)

func tagAll(t *testing.T, products ...models.Product) []models.ClassifiedProduct {
	t.Helper()
	return DefaultConfig().Tag(products)
}

func findGroup(groups []models.FacetGroup, key string) *models.FacetGroup {
	for i := range groups {
		if groups[i].Key == key {
			return &groups[i]
		}
	}
	return nil
}

func findOption(group *models.FacetGroup, value string) *models.FacetOption {
	for i := range group.Options {
		if group.Options[i].Value == value {
			return &group.Options[i]
		}
	}
	return nil
}

func TestBuildFacetsCounts(t *testing.T) {
	products := tagAll(t,
		makeProduct("Monstera", "monstera", map[string]any{
			"environment": "indoor",
			"difficulty":  "easy",
			"placement":   []any{"salon", "bureau"},
		}),
		makeProduct("Calathea", "calathea", map[string]any{
			"environment": "indoor",
			"difficulty":  "expert",
			"placement":   []any{"salon"},
		}),
		makeProduct("Pilea", "pilea", map[string]any{
			"environment": "indoor",
			"difficulty":  "easy",
		}),
	)

	groups := BuildFacets(products, ContextIndoor)

	difficulty := findGroup(groups, "difficulty")
	require.NotNil(t, difficulty)
	require.Len(t, difficulty.Options, 2)

	easy := findOption(difficulty, "easy")
	require.NotNil(t, easy)
	assert.Equal(t, 2, easy.Count)
	assert.Equal(t, "Facile", easy.Label)

	expert := findOption(difficulty, "expert")
	require.NotNil(t, expert)
	assert.Equal(t, 1, expert.Count)

	// Array attributes: each element counts independently.
	placement := findGroup(groups, "placement")
	require.NotNil(t, placement)
	salon := findOption(placement, "salon")
	require.NotNil(t, salon)
	assert.Equal(t, 2, salon.Count)
	bureau := findOption(placement, "bureau")
	require.NotNil(t, bureau)
	assert.Equal(t, 1, bureau.Count)
}

func TestBuildFacetsNoEmptyGroups(t *testing.T) {
	products := tagAll(t,
		makeProduct("Monstera", "monstera", map[string]any{"environment": "indoor", "difficulty": "easy"}),
	)

	groups := BuildFacets(products, ContextIndoor)
	for _, group := range groups {
		if group.Type == models.FacetRange {
			require.NotNil(t, group.Min, group.Key)
			require.NotNil(t, group.Max, group.Key)
			continue
		}
		assert.NotEmpty(t, group.Options, group.Key)
	}
	assert.Nil(t, findGroup(groups, "material"))
	assert.Nil(t, findGroup(groups, "size"))
}

func TestBuildFacetsContextRestriction(t *testing.T) {
	// A mixed list scoped to the pot context must emit only pot-relevant
	// groups, never plant-only ones, even though plants are present.
	products := tagAll(t,
		makeProduct("Monstera", "monstera", map[string]any{
			"environment": "indoor",
			"light":       "indirect_light",
			"difficulty":  "easy",
			"height_cm":   float64(40),
		}),
		makeProduct("Pot Oslo", "pot-oslo", map[string]any{
			"environment": "pot",
			"material":    "ceramic",
			"drainage":    true,
			"diameter_cm": float64(14),
			"height_cm":   float64(13),
		}),
	)

	groups := BuildFacets(products, ContextPot)

	assert.NotNil(t, findGroup(groups, "material"))
	assert.NotNil(t, findGroup(groups, "drainage"))
	assert.NotNil(t, findGroup(groups, "diameter_cm"))
	assert.NotNil(t, findGroup(groups, "height_cm"))

	assert.Nil(t, findGroup(groups, "light"))
	assert.Nil(t, findGroup(groups, "difficulty"))
}

func TestBuildFacetsFeatures(t *testing.T) {
	products := tagAll(t,
		makeProduct("Monstera", "monstera", map[string]any{
			"environment":   "indoor",
			"pet_friendly":  true,
			"air_purifying": true,
		}),
		makeProduct("Pilea", "pilea", map[string]any{
			"environment":  "indoor",
			"pet_friendly": true,
			"hanging":      true,
		}),
		makeProduct("Ficus", "ficus", map[string]any{
			"environment":  "indoor",
			"pet_friendly": false,
		}),
	)

	groups := BuildFacets(products, ContextIndoor)
	features := findGroup(groups, "features")
	require.NotNil(t, features)

	pet := findOption(features, "pet_friendly")
	require.NotNil(t, pet)
	assert.Equal(t, 2, pet.Count)
	assert.Equal(t, "Non toxique", pet.Label)

	hangingPlant := findOption(features, "hanging_plant")
	require.NotNil(t, hangingPlant)
	assert.Equal(t, 1, hangingPlant.Count)

	// False flags never surface as options.
	assert.Nil(t, findOption(features, "comfortable"))

	// hanging also surfaces as its own standing-or-hanging facet.
	hanging := findGroup(groups, "hanging")
	require.NotNil(t, hanging)
	trueOpt := findOption(hanging, "true")
	require.NotNil(t, trueOpt)
	assert.Equal(t, 1, trueOpt.Count)
	assert.Equal(t, "Plante retombante", trueOpt.Label)
}

func TestBuildFacetsRangeBounds(t *testing.T) {
	products := tagAll(t,
		makeProduct("Small", "small", map[string]any{"environment": "indoor", "height_cm": 12.4}),
		makeProduct("Tall", "tall", map[string]any{"environment": "indoor", "height_cm": 87.6}),
	)

	groups := BuildFacets(products, ContextIndoor)
	height := findGroup(groups, "height_cm")
	require.NotNil(t, height)
	require.NotNil(t, height.Min)
	require.NotNil(t, height.Max)
	assert.Equal(t, 12.0, *height.Min) // floored
	assert.Equal(t, 88.0, *height.Max) // ceiled
}

func TestBuildFacetsPriceCollectionTag(t *testing.T) {
	collection := "serie-oslo"
	pot := makeProduct("Pot Oslo", "pot-oslo", map[string]any{"environment": "pot", "material": "ceramic"},
		models.Variant{ID: "v1", Title: "Moyen (14cm)", Price: price(24.9)},
		models.Variant{ID: "v2", Title: "Grand (17cm)", Price: price(34.9)},
	)
	pot.CollectionHandle = &collection
	pot.Tags = models.TagsList{"nouveau"}

	plant := makeProduct("Monstera", "monstera", map[string]any{"environment": "indoor"},
		models.Variant{ID: "v3", Title: "M", Price: price(39.9)},
	)

	groups := BuildFacets(tagAll(t, pot, plant), ContextAll)

	priceGroup := findGroup(groups, "price")
	require.NotNil(t, priceGroup)
	assert.Equal(t, 24.0, *priceGroup.Min) // cheapest variant per product
	assert.Equal(t, 40.0, *priceGroup.Max)

	collGroup := findGroup(groups, "collection")
	require.NotNil(t, collGroup)
	opt := findOption(collGroup, "serie-oslo")
	require.NotNil(t, opt)
	assert.Equal(t, 1, opt.Count)

	tagGroup := findGroup(groups, "tag")
	require.NotNil(t, tagGroup)
	require.NotNil(t, findOption(tagGroup, "nouveau"))
}

func TestBuildFacetsOptionOrdering(t *testing.T) {
	products := tagAll(t,
		makeProduct("A", "a", map[string]any{"environment": "indoor", "size": "XL"}),
		makeProduct("B", "b", map[string]any{"environment": "indoor", "size": "S"}),
		makeProduct("C", "c", map[string]any{"environment": "indoor", "size": "M"}),
		makeProduct("D", "d", map[string]any{"environment": "indoor", "size": "M"}),
	)

	groups := BuildFacets(products, ContextIndoor)
	size := findGroup(groups, "size")
	require.NotNil(t, size)

	// Size follows the fixed S<M<L<XL<XXL order, not counts.
	values := make([]string, 0, len(size.Options))
	for _, opt := range size.Options {
		values = append(values, opt.Value)
	}
	assert.Equal(t, []string{"S", "M", "XL"}, values)
}

func TestBuildFacetsGroupOrdering(t *testing.T) {
	products := tagAll(t,
		makeProduct("Monstera", "monstera", map[string]any{
			"environment": "indoor",
			"size":        "M",
			"difficulty":  "easy",
			"rarity":      "common",
		},
			models.Variant{ID: "v", Title: "M", Price: price(29.9)},
		),
	)

	groups := BuildFacets(products, ContextIndoor)
	require.GreaterOrEqual(t, len(groups), 4)

	// price (1) < size (2) < difficulty (5) < rarity (13)
	index := map[string]int{}
	for i, g := range groups {
		index[g.Key] = i
	}
	assert.Less(t, index["price"], index["size"])
	assert.Less(t, index["size"], index["difficulty"])
	assert.Less(t, index["difficulty"], index["rarity"])
}

func TestBuildFacetsColorSwatches(t *testing.T) {
	products := tagAll(t,
		makeProduct("Monstera", "monstera", map[string]any{"environment": "indoor", "color": "green"}),
		makeProduct("Calathea", "calathea", map[string]any{"environment": "indoor", "color": "mystery_shade"}),
	)

	groups := BuildFacets(products, ContextIndoor)
	colorGroup := findGroup(groups, "color")
	require.NotNil(t, colorGroup)
	assert.Equal(t, models.FacetColor, colorGroup.Type)

	green := findOption(colorGroup, "green")
	require.NotNil(t, green)
	assert.Equal(t, "Vert", green.Label)
	assert.Equal(t, "#228B22", green.Hex)

	unknown := findOption(colorGroup, "mystery_shade")
	require.NotNil(t, unknown)
	assert.Equal(t, "#808080", unknown.Hex)
	assert.Equal(t, "Mystery Shade", unknown.Label)
}

func TestBuildFacetsDeterministic(t *testing.T) {
	products := tagAll(t,
		makeProduct("A", "a", map[string]any{"environment": "indoor", "family": "Monstera", "color": "green"}),
		makeProduct("B", "b", map[string]any{"environment": "indoor", "family": "Calathea", "color": "red"}),
		makeProduct("C", "c", map[string]any{"environment": "pot", "material": "ceramic"}),
	)

	first := BuildFacets(products, ContextAll)
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, BuildFacets(products, ContextAll))
	}
}
