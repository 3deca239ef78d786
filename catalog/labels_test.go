package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatLabel(t *testing.T) {
	assert.Equal(t, "Petite (S)", FormatLabel("size", "S"))
	assert.Equal(t, "1× par mois", FormatLabel("water_needs", "monthly"))
	assert.Equal(t, "Plein soleil", FormatLabel("sun_exposure", "full_sun"))

	// Unknown values fall back to title case with underscores spaced out.
	assert.Equal(t, "Loamy Soil", FormatLabel("soil_type", "loamy_soil"))
	assert.Equal(t, "Bonsai", FormatLabel("size", "bonsai"))
}

func TestColorHex(t *testing.T) {
	assert.NotEmpty(t, ColorHex("green"))
	assert.Equal(t, "#808080", ColorHex("no-such-color"))
}

func TestQuickFiltersPerContext(t *testing.T) {
	indoor := QuickFilters(ContextIndoor)
	assert.NotEmpty(t, indoor)
	for _, qf := range indoor {
		assert.NotEmpty(t, qf.Key)
		assert.NotEmpty(t, qf.Value)
		assert.NotEmpty(t, qf.Label)
	}

	assert.NotEmpty(t, QuickFilters(ContextOutdoor))
	assert.NotEmpty(t, QuickFilters(ContextPot))

	// Mixed listings get no presets rather than a merged grab bag.
	assert.Empty(t, QuickFilters(ContextAll))
}
