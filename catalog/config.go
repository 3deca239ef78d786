// Package catalog is the product compatibility and facet-filtering engine of
// the storefront. Everything in here is a pure, synchronous transformation
// over in-memory catalog snapshots: classification of loosely-typed product
// records, size/diameter normalization, plant↔pot compatibility resolution,
// facet index derivation, and selection filtering. No I/O, no shared mutable
// state; all functions are safe to call concurrently with distinct inputs and
// produce deterministic output for identical inputs.
package catalog

import "regexp"

// Fit window margins in centimeters: a pot fits a plant when the pot diameter
// lies in [plant+FitMinMargin, plant+FitMaxMargin], inclusive. The pot must be
// larger than the plant, but not oversized. These two constants are the crux
// of the compatibility rule; override them through Config, never inline copies.
const (
	FitMinMargin = 2.0
	FitMaxMargin = 6.0
)

// PotRule is one whole-word vocabulary pattern that marks a title or handle
// as pot-like when no explicit environment metadata is present.
type PotRule struct {
	Name    string
	Pattern *regexp.Regexp
}

// Config carries the tunable lookup tables of the engine. Build it once at
// startup with DefaultConfig and treat it as immutable afterwards.
type Config struct {
	// SizeDiameters maps the discrete size labels to an approximate diameter
	// in centimeters. The values are deliberate approximations of typical
	// nursery pot culture sizes; this table is the single source of truth for
	// label→diameter conversion.
	SizeDiameters map[string]float64

	// SizeOrder is the display ordering of the size labels.
	SizeOrder []string

	// FitMin / FitMax are the compatibility window margins (cm).
	FitMin float64
	FitMax float64

	// PotRules are matched, in order, against lowercased title and handle.
	PotRules []PotRule

	// PlantExclusions lists plant-name fragments whose presence in a title or
	// handle disables the pot vocabulary rules. Inherently incomplete: new
	// plant names colliding with pot vocabulary need future additions here.
	PlantExclusions []string

	// DiameterPatterns are tried in order against variant titles; the first
	// match wins. Each must expose the numeric token as capture group 1.
	DiameterPatterns []*regexp.Regexp

	// PermissiveFallback includes a pot whose variants carry no extractable
	// diameter at all instead of excluding it. Trades false positives for
	// availability; tunable policy, on by default.
	PermissiveFallback bool
}

// DefaultConfig returns the production lookup tables.
func DefaultConfig() *Config {
	return &Config{
		SizeDiameters: map[string]float64{
			"S":   8,
			"M":   12,
			"L":   17,
			"XL":  25,
			"XXL": 35,
		},
		SizeOrder: []string{"S", "M", "L", "XL", "XXL"},
		FitMin:    FitMinMargin,
		FitMax:    FitMaxMargin,
		PotRules: []PotRule{
			{Name: "pot", Pattern: regexp.MustCompile(`(?i)\bpots?\b`)},
			{Name: "cache-pot", Pattern: regexp.MustCompile(`(?i)\bcache-pots?\b`)},
			{Name: "planter", Pattern: regexp.MustCompile(`(?i)\bplanters?\b`)},
			{Name: "jardiniere", Pattern: regexp.MustCompile(`(?i)\bjardini[eè]res?\b`)},
			{Name: "bac", Pattern: regexp.MustCompile(`(?i)\bbacs?\b`)},
		},
		PlantExclusions: []string{
			"pothos",
			"epipremnum",
			"potentilla",
			"potamogeton",
		},
		DiameterPatterns: []*regexp.Regexp{
			regexp.MustCompile(`(?i)\((\d+(?:[.,]\d+)?)\s*cm\)`),
			regexp.MustCompile(`(?i)(\d+(?:[.,]\d+)?)\s*cm\b`),
			regexp.MustCompile(`(?i)[øØ]\s*(\d+(?:[.,]\d+)?)`),
			regexp.MustCompile(`(?i)diam[eè]tre\s*:?\s*(\d+(?:[.,]\d+)?)`),
		},
		PermissiveFallback: true,
	}
}
