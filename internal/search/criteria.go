// Package search implements the client-side property filter: a pure
// predicate evaluated over an in-memory list of listings.  It performs
// no I/O and raises no errors; malformed user input degrades to "no
// constraint" so a typo can never produce a surprising empty result.
package search

import (
	"strconv"
	"strings"

	"github.com/nyumba/nyumba-api/internal/model"
)

// Criteria is one search request.  A nil pointer (or empty FreeText)
// means the criterion is inactive and matches everything; the UI's
// "All" dropdown sentinel must be mapped to nil before reaching this
// package.
type Criteria struct {
	FreeText     string              // case-insensitive substring over area, town, features
	PropertyType *model.PropertyType // exact match on the category
	ListingType  *model.ListingType  // exact match on rent/sale/lease
	Area         *string             // exact, case-sensitive match
	Town         *string             // exact, case-sensitive match
	MinPrice     *int64              // major currency units, inclusive lower bound
	MaxPrice     *int64              // major currency units, inclusive upper bound
	MinBedrooms  *int                // inclusive lower bound on house bedrooms
}

// sentinel is the dropdown value meaning "no constraint".
const sentinel = "All"

// OptionalString maps "" and the "All" sentinel to nil, anything else
// to an exact-match constraint.
func OptionalString(v string) *string {
	if v == "" || v == sentinel {
		return nil
	}
	return &v
}

// OptionalPropertyType maps "" / "All" / unknown values to nil.
// Unknown values come from stale clients and are treated as
// unconstrained rather than as a filter-everything state.
func OptionalPropertyType(v string) *model.PropertyType {
	t := model.PropertyType(v)
	if v == "" || v == sentinel || !t.Valid() {
		return nil
	}
	return &t
}

// OptionalListingType maps "" / "All" / unknown values to nil.
func OptionalListingType(v string) *model.ListingType {
	l := model.ListingType(v)
	if v == "" || v == sentinel || !l.Valid() {
		return nil
	}
	return &l
}

// ParseAmount parses a user-typed price bound in major units.  Empty
// or non-numeric input yields nil: parse failures degrade to no
// constraint, never to zero.
func ParseAmount(v string) *int64 {
	v = strings.TrimSpace(v)
	if v == "" {
		return nil
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil || n < 0 {
		return nil
	}
	return &n
}

// ParseCount parses a user-typed bedroom bound with the same
// degradation rules as ParseAmount.
func ParseCount(v string) *int {
	v = strings.TrimSpace(v)
	if v == "" {
		return nil
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 0 {
		return nil
	}
	return &n
}

// Active reports whether any criterion constrains the result.  With an
// inactive Criteria, Filter returns its input unchanged.
func (c Criteria) Active() bool {
	return c.FreeText != "" ||
		c.PropertyType != nil ||
		c.ListingType != nil ||
		c.Area != nil ||
		c.Town != nil ||
		c.MinPrice != nil ||
		c.MaxPrice != nil ||
		c.MinBedrooms != nil
}
