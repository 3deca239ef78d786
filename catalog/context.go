package catalog

import (
	"strings"

	"github.com/HamzaDalhoumi/plant-shop/models"
)

// Context is the plant/pot/all scope of a listing page. It restricts which
// facets are relevant to show and which products belong in the listing.
type Context string

const (
	ContextIndoor  Context = "indoor"
	ContextOutdoor Context = "outdoor"
	ContextPot     Context = "pot"
	ContextAll     Context = "all"
)

// ContextFromHandle derives the listing context from a category or collection
// handle, with the French storefront vocabulary included.
func ContextFromHandle(handle string) Context {
	h := strings.ToLower(handle)
	switch {
	case strings.Contains(h, "indoor"),
		strings.Contains(h, "interieur"),
		strings.Contains(h, "intérieur"):
		return ContextIndoor
	case strings.Contains(h, "outdoor"),
		strings.Contains(h, "exterieur"),
		strings.Contains(h, "extérieur"):
		return ContextOutdoor
	case strings.Contains(h, "pot"),
		strings.Contains(h, "jardiniere"),
		strings.Contains(h, "jardinière"):
		return ContextPot
	}
	return ContextAll
}

// ParseContext validates a caller-supplied context string, defaulting to all.
func ParseContext(s string) Context {
	switch Context(strings.ToLower(strings.TrimSpace(s))) {
	case ContextIndoor:
		return ContextIndoor
	case ContextOutdoor:
		return ContextOutdoor
	case ContextPot:
		return ContextPot
	}
	return ContextAll
}

// Includes reports whether a product of the given category belongs to a
// listing scoped to this context.
func (c Context) Includes(cat models.Category) bool {
	switch c {
	case ContextIndoor:
		return cat == models.CategoryPlantIndoor
	case ContextOutdoor:
		return cat == models.CategoryPlantOutdoor
	case ContextPot:
		return cat == models.CategoryPot
	}
	return true
}
