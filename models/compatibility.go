package models

// ═══════════════════════════════════════════════════════════
// Compatibility view models
// ═══════════════════════════════════════════════════════════

// CompatiblePot pairs a pot product with the subset of its variants that fit
// a given plant, plus the size labels matched for display. Read-only view
// model for the rendering layer.
type CompatiblePot struct {
	Product          ClassifiedProduct `json:"product"`
	MatchingVariants []Variant         `json:"matching_variants"`
	MatchedSizes     []string          `json:"matched_sizes"`
	CheapestPrice    *float64          `json:"cheapest_price,omitempty"`
}

// CompatiblePlantsResponse is the payload of the compatible-plants endpoint.
type CompatiblePlantsResponse struct {
	Pot    StorefrontProductResponse   `json:"pot"`
	Plants []StorefrontProductResponse `json:"plants"`
}

// CompatiblePotsResponse is the payload of the compatible-pots endpoint.
type CompatiblePotsResponse struct {
	Plant StorefrontProductResponse `json:"plant"`
	Pots  []CompatiblePotCard       `json:"pots"`
}

// CompatiblePotCard is the thin card rendered in the pot selector.
type CompatiblePotCard struct {
	ID               string    `json:"id"`
	Title            string    `json:"title"`
	Handle           string    `json:"handle"`
	Thumbnail        string    `json:"thumbnail"`
	Material         string    `json:"material,omitempty"`
	MatchingVariants []Variant `json:"matching_variants"`
	MatchedSizes     []string  `json:"matched_sizes"`
	CheapestPrice    *float64  `json:"cheapest_price,omitempty"`
}
