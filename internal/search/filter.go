package search

import (
	"strings"

	"github.com/nyumba/nyumba-api/internal/model"
)

// Filter returns the sub-slice of properties matching every active
// criterion, preserving the input order.  It is pure and deterministic:
// the input slice is never mutated and an empty input yields an empty,
// non-nil result.
func Filter(properties []model.Property, c Criteria) []model.Property {
	out := make([]model.Property, 0, len(properties))
	for _, p := range properties {
		if Matches(p, c) {
			out = append(out, p)
		}
	}
	return out
}

// Matches evaluates the conjunction of all per-criterion predicates
// for a single property.  Inactive criteria are vacuously true.
func Matches(p model.Property, c Criteria) bool {
	return matchesFreeText(p, c.FreeText) &&
		matchesPropertyType(p, c.PropertyType) &&
		matchesListingType(p, c.ListingType) &&
		matchesExact(p.Area, c.Area) &&
		matchesExact(p.Town, c.Town) &&
		matchesPrice(p, c.MinPrice, c.MaxPrice) &&
		matchesBedrooms(p, c.MinBedrooms)
}

// matchesFreeText is the one case-insensitive criterion: a substring
// match against the area, the town, or any feature tag.
func matchesFreeText(p model.Property, term string) bool {
	if term == "" {
		return true
	}
	needle := strings.ToLower(term)
	if strings.Contains(strings.ToLower(p.Area), needle) {
		return true
	}
	if strings.Contains(strings.ToLower(p.Town), needle) {
		return true
	}
	for _, f := range p.Features {
		if strings.Contains(strings.ToLower(f), needle) {
			return true
		}
	}
	return false
}

func matchesPropertyType(p model.Property, t *model.PropertyType) bool {
	return t == nil || p.Type == *t
}

func matchesListingType(p model.Property, l *model.ListingType) bool {
	return l == nil || p.Listing == *l
}

// matchesExact handles the dropdown-driven area/town criteria.  Values
// come from a fixed vocabulary, so equality is case-sensitive.
func matchesExact(have string, want *string) bool {
	return want == nil || have == *want
}

// matchesPrice applies inclusive bounds.  Criteria are entered in
// major units and converted to minor units before comparison.
func matchesPrice(p model.Property, min, max *int64) bool {
	if min != nil && p.PriceCents < *min*100 {
		return false
	}
	if max != nil && p.PriceCents > *max*100 {
		return false
	}
	return true
}

func matchesBedrooms(p model.Property, min *int) bool {
	return min == nil || p.Bedrooms() >= *min
}
