package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/HamzaDalhoumi/plant-shop/models"
)

func TestResolveDiameter(t *testing.T) {
	cfg := DefaultConfig()

	tests := []struct {
		name    string
		product models.Product
		variant *models.Variant
		want    float64
		ok      bool
	}{
		{
			name:    "direct numeric diameter",
			product: makeProduct("Monstera", "monstera", map[string]any{"diameter_cm": float64(12)}),
			want:    12, ok: true,
		},
		{
			name:    "diameter stored as string still resolves",
			product: makeProduct("Monstera", "monstera", map[string]any{"diameter_cm": "21"}),
			want:    21, ok: true,
		},
		{
			name:    "diameter wins over size label",
			product: makeProduct("Monstera", "monstera", map[string]any{"diameter_cm": float64(12), "size": "XL"}),
			want:    12, ok: true,
		},
		{
			name:    "size label S",
			product: makeProduct("Pilea", "pilea", map[string]any{"size": "S"}),
			want:    8, ok: true,
		},
		{
			name:    "size label lowercase",
			product: makeProduct("Pilea", "pilea", map[string]any{"size": "xxl"}),
			want:    35, ok: true,
		},
		{
			name:    "unknown size label falls through",
			product: makeProduct("Pilea", "pilea", map[string]any{"size": "XS"}),
			ok:      false,
		},
		{
			name:    "variant parenthesized cm",
			product: makeProduct("Pot Oslo", "pot-oslo", nil),
			variant: &models.Variant{Title: "Moyen (14cm)"},
			want:    14, ok: true,
		},
		{
			name:    "variant bare cm",
			product: makeProduct("Pot Oslo", "pot-oslo", nil),
			variant: &models.Variant{Title: "18 cm terre cuite"},
			want:    18, ok: true,
		},
		{
			name:    "variant diameter sign",
			product: makeProduct("Pot Oslo", "pot-oslo", nil),
			variant: &models.Variant{Title: "Ø21 blanc"},
			want:    21, ok: true,
		},
		{
			name:    "variant french diametre",
			product: makeProduct("Pot Oslo", "pot-oslo", nil),
			variant: &models.Variant{Title: "diamètre 25"},
			want:    25, ok: true,
		},
		{
			name:    "variant comma decimal",
			product: makeProduct("Pot Oslo", "pot-oslo", nil),
			variant: &models.Variant{Title: "Petit (10,5cm)"},
			want:    10.5, ok: true,
		},
		{
			name:    "variant with no numeric token",
			product: makeProduct("Pot Oslo", "pot-oslo", nil),
			variant: &models.Variant{Title: "Taille unique"},
			ok:      false,
		},
		{
			name:    "nothing resolvable",
			product: makeProduct("Mystery", "mystery", nil),
			ok:      false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := cfg.ResolveDiameter(&tt.product, tt.variant)
			require.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestExtractDiameterPatternOrder(t *testing.T) {
	cfg := DefaultConfig()

	// Parenthesized token wins over a bare number earlier in the string.
	d, ok := cfg.ExtractDiameter("Lot de 3 (14cm)")
	require.True(t, ok)
	assert.Equal(t, 14.0, d)
}

func TestSizeTableMatchesSpec(t *testing.T) {
	cfg := DefaultConfig()

	want := map[string]float64{"S": 8, "M": 12, "L": 17, "XL": 25, "XXL": 35}
	assert.Equal(t, want, cfg.SizeDiameters)
	assert.Equal(t, []string{"S", "M", "L", "XL", "XXL"}, cfg.SizeOrder)
}
