package models

// ═══════════════════════════════════════════════════════════
// Faceted-filter view models
// ═══════════════════════════════════════════════════════════

type FacetType string

const (
	FacetCheckbox FacetType = "checkbox"
	FacetRange    FacetType = "range"
	FacetColor    FacetType = "color"
)

// FacetOption is one discovered value of a checkbox/color facet.
type FacetOption struct {
	Value string `json:"value"`
	Label string `json:"label"`
	Count int    `json:"count"`
	Hex   string `json:"hex,omitempty"` // color facets only
}

// FacetGroup is one filterable attribute dimension, derived fresh from the
// product list actually being shown.
type FacetGroup struct {
	Key     string        `json:"key"`
	Label   string        `json:"label"`
	LabelFr string        `json:"label_fr"`
	Type    FacetType     `json:"type"`
	Options []FacetOption `json:"options"`
	Min     *float64      `json:"min,omitempty"` // range facets only
	Max     *float64      `json:"max,omitempty"`
}

// SelectedFilters is the caller-supplied selection state: facet key to chosen
// values. Range keys carry a single "min-max" encoded entry, mirroring the
// URL query encoding. The core never stores it.
type SelectedFilters map[string][]string

// QuickFilter is a one-tap preset shown above the filter list.
type QuickFilter struct {
	Key   string `json:"key"`
	Value string `json:"value"`
	Label string `json:"label"`
	Icon  string `json:"icon"`
}

// FacetsResponse is the payload of the storefront filters endpoint.
type FacetsResponse struct {
	Groups       []FacetGroup  `json:"groups"`
	QuickFilters []QuickFilter `json:"quick_filters"`
	ProductCount int           `json:"product_count"`
}
