package catalog

import (
	"strconv"

	"github.com/HamzaDalhoumi/plant-shop/models"
)

// GenericMatchLabel marks variants admitted through the permissive fallback,
// where no numeric size label could be extracted.
const GenericMatchLabel = "Compatible"

// PotsForPlant computes, for one plant, every pot in the slice whose size
// works with it, together with the subset of pot variants that fit.
//
// A pot variant fits when its resolved diameter (extracted from the variant
// title, else the pot's base diameter) lies in the inclusive window
// [plant+FitMin, plant+FitMax]. Pots whose variants carry no extractable
// diameter at all are admitted whole under the permissive fallback rather
// than dropped — missing data should not hide inventory from the shopper.
//
// A plant without a resolvable diameter yields an empty result; no guessing.
func (c *Config) PotsForPlant(plant *models.ClassifiedProduct, pots []models.ClassifiedProduct) []models.CompatiblePot {
	compatible := make([]models.CompatiblePot, 0)

	plantD, ok := c.ResolveDiameter(&plant.Product, nil)
	if !ok {
		return compatible
	}
	lo := plantD + c.FitMin
	hi := plantD + c.FitMax

	for i := range pots {
		pot := &pots[i]
		if pot.Category != models.CategoryPot {
			continue
		}
		matching, labels := c.fitPotVariants(pot, lo, hi)
		if len(matching) == 0 {
			continue
		}
		compatible = append(compatible, models.CompatiblePot{
			Product:          *pot,
			MatchingVariants: matching,
			MatchedSizes:     labels,
			CheapestPrice:    cheapestOf(matching),
		})
	}

	return compatible
}

// fitPotVariants returns the pot variants whose resolved diameter falls in
// [lo, hi], with one display label per distinct match.
//
// Variant titles are the preferred diameter source; the pot's base diameter
// is the per-variant fallback. When not a single variant title yields a
// diameter, the base diameter decides for all variants at once — and when
// even that is missing, the permissive fallback admits every variant with a
// generic label.
func (c *Config) fitPotVariants(pot *models.ClassifiedProduct, lo, hi float64) ([]models.Variant, []string) {
	base, baseOK := c.ResolveDiameter(&pot.Product, nil)

	extractable := 0
	for i := range pot.Variants {
		if _, ok := c.ExtractDiameter(pot.Variants[i].Title); ok {
			extractable++
		}
	}

	var matching []models.Variant
	var labels []string
	addLabel := func(label string) {
		for _, existing := range labels {
			if existing == label {
				return
			}
		}
		labels = append(labels, label)
	}

	switch {
	case extractable > 0:
		for i := range pot.Variants {
			v := pot.Variants[i]
			d, ok := c.ExtractDiameter(v.Title)
			if !ok {
				if !baseOK {
					continue
				}
				d = base
			}
			if d < lo || d > hi {
				continue
			}
			matching = append(matching, v)
			addLabel(formatCm(d))
		}

	case baseOK:
		// No variant-level information: the base diameter speaks for every
		// variant. Fails the window → the whole pot is out.
		if base < lo || base > hi {
			return nil, nil
		}
		matching = append(matching, pot.Variants...)
		addLabel(formatCm(base))

	case c.PermissiveFallback:
		matching = append(matching, pot.Variants...)
		if len(matching) > 0 {
			addLabel(GenericMatchLabel)
		}
	}

	return matching, labels
}

// PlantsForPot is the dual of PotsForPlant: the plants whose diameter falls
// in the inverse window [potVariant−FitMax, potVariant−FitMin] for at least
// one resolvable pot variant diameter. Same constants, mirrored, so the two
// directions agree on every numeric pair.
//
// A pot without any resolvable diameter yields an empty result: admitting
// every plant in the shop would be noise, not leniency.
func (c *Config) PlantsForPot(pot *models.ClassifiedProduct, plants []models.ClassifiedProduct) []models.ClassifiedProduct {
	matched := make([]models.ClassifiedProduct, 0)

	potDiams := c.potVariantDiameters(pot)
	if len(potDiams) == 0 {
		return matched
	}

	for i := range plants {
		plant := &plants[i]
		if !plant.Category.IsPlant() {
			continue
		}
		plantD, ok := c.ResolveDiameter(&plant.Product, nil)
		if !ok {
			continue
		}
		for _, potD := range potDiams {
			if plantD >= potD-c.FitMax && plantD <= potD-c.FitMin {
				matched = append(matched, *plant)
				break
			}
		}
	}

	return matched
}

// potVariantDiameters resolves every distinct diameter a pot is sold in:
// variant titles first, base diameter as the fallback when no title parses.
func (c *Config) potVariantDiameters(pot *models.ClassifiedProduct) []float64 {
	var diams []float64
	seen := map[float64]bool{}
	add := func(d float64) {
		if !seen[d] {
			seen[d] = true
			diams = append(diams, d)
		}
	}

	base, baseOK := c.ResolveDiameter(&pot.Product, nil)
	for i := range pot.Variants {
		if d, ok := c.ExtractDiameter(pot.Variants[i].Title); ok {
			add(d)
		} else if baseOK {
			add(base)
		}
	}
	if len(diams) == 0 && baseOK {
		add(base)
	}
	return diams
}

func cheapestOf(variants []models.Variant) *float64 {
	var cheapest *float64
	for i := range variants {
		price := variants[i].Price
		if price == nil {
			continue
		}
		if cheapest == nil || *price < *cheapest {
			cheapest = price
		}
	}
	return cheapest
}

func formatCm(d float64) string {
	return strconv.FormatFloat(d, 'f', -1, 64) + " cm"
}
