package search

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/nyumba/nyumba-api/internal/model"
)

func house(id, area, town string, priceCents int64, bedrooms int, features ...string) model.Property {
	return model.Property{
		ID:       id,
		Area:     area,
		Town:     town,
		PriceCents: priceCents,
		Listing:  model.ListingRent,
		Type:     model.PropertyHouse,
		Features: features,
		House:    &model.HouseDetails{Bedrooms: bedrooms},
	}
}

func TestFilterInactiveCriteriaReturnsAll(t *testing.T) {
	props := []model.Property{
		house("a", "Woodlands", "Lusaka", 500000, 3),
		house("b", "Kabulonga", "Lusaka", 900000, 4),
	}
	got := Filter(props, Criteria{})
	require.Len(t, got, 2)
	require.Equal(t, "a", got[0].ID)
	require.Equal(t, "b", got[1].ID)
}

func TestFilterEmptyInput(t *testing.T) {
	got := Filter(nil, Criteria{FreeText: "anything"})
	require.NotNil(t, got)
	require.Empty(t, got)
}

func TestFilterFreeTextIsCaseInsensitive(t *testing.T) {
	props := []model.Property{
		house("a", "Woodlands", "Lusaka", 500000, 3),
		house("b", "Kabulonga", "Lusaka", 900000, 4),
	}
	got := Filter(props, Criteria{FreeText: "WOODLANDS"})
	require.Len(t, got, 1)
	require.Equal(t, "a", got[0].ID)
}

func TestFilterFreeTextMatchesFeatures(t *testing.T) {
	props := []model.Property{
		house("a", "Woodlands", "Lusaka", 500000, 3, "Borehole", "Wall fence"),
		house("b", "Kabulonga", "Lusaka", 900000, 4, "Swimming pool"),
	}
	got := Filter(props, Criteria{FreeText: "borehole"})
	require.Len(t, got, 1)
	require.Equal(t, "a", got[0].ID)
}

func TestFilterAreaIsExactAndCaseSensitive(t *testing.T) {
	props := []model.Property{
		house("a", "Woodlands", "Lusaka", 500000, 3),
	}
	require.Len(t, Filter(props, Criteria{Area: OptionalString("Woodlands")}), 1)
	require.Empty(t, Filter(props, Criteria{Area: OptionalString("woodlands")}))
	require.Empty(t, Filter(props, Criteria{Area: OptionalString("Wood")}))
}

func TestFilterPriceBoundsAreInclusiveMajorUnits(t *testing.T) {
	// 5000 major units -> 500000 cents.
	props := []model.Property{house("a", "Woodlands", "Lusaka", 500000, 3)}

	min := int64(5000)
	max := int64(5000)
	got := Filter(props, Criteria{MinPrice: &min, MaxPrice: &max})
	require.Len(t, got, 1, "bounds equal to the price must match")

	below := int64(4999)
	require.Empty(t, Filter(props, Criteria{MaxPrice: &below}))
	above := int64(5001)
	require.Empty(t, Filter(props, Criteria{MinPrice: &above}))
}

func TestFilterMinBedrooms(t *testing.T) {
	props := []model.Property{
		house("one-bed", "Northmead", "Lusaka", 300000, 1),
		house("three-bed", "Woodlands", "Lusaka", 500000, 3),
		{
			ID: "plot", Area: "Makeni", Town: "Lusaka", PriceCents: 200000,
			Listing: model.ListingSale, Type: model.PropertyPlot,
			Plot: &model.PlotDetails{SquareMeters: 2000},
		},
	}
	min := 2
	got := Filter(props, Criteria{MinBedrooms: &min})
	require.Len(t, got, 1)
	require.Equal(t, "three-bed", got[0].ID)
}

func TestFilterConjunctionCanBeEmpty(t *testing.T) {
	props := []model.Property{
		house("a", "Woodlands", "Lusaka", 500000, 3),
	}
	pt := model.PropertyOffice
	got := Filter(props, Criteria{FreeText: "Woodlands", PropertyType: &pt})
	require.NotNil(t, got)
	require.Empty(t, got)
}

func TestFilterPreservesInputOrder(t *testing.T) {
	props := []model.Property{
		house("c", "Avondale", "Lusaka", 400000, 2),
		house("a", "Avondale", "Lusaka", 600000, 2),
		house("b", "Avondale", "Lusaka", 500000, 2),
	}
	got := Filter(props, Criteria{Area: OptionalString("Avondale")})
	require.Equal(t, []string{got[0].ID, got[1].ID, got[2].ID}, []string{"c", "a", "b"})
}

func TestOptionalHelpersMapSentinelToNil(t *testing.T) {
	require.Nil(t, OptionalString(""))
	require.Nil(t, OptionalString("All"))
	require.NotNil(t, OptionalString("Woodlands"))

	require.Nil(t, OptionalPropertyType("All"))
	require.Nil(t, OptionalPropertyType("castle")) // unknown category
	require.NotNil(t, OptionalPropertyType("house"))

	require.Nil(t, OptionalListingType(""))
	require.Nil(t, OptionalListingType("barter"))
	require.NotNil(t, OptionalListingType("rent"))
}

func TestParseHelpersDegradeToNil(t *testing.T) {
	require.Nil(t, ParseAmount(""))
	require.Nil(t, ParseAmount("abc"))
	require.Nil(t, ParseAmount("-5"))
	require.Equal(t, int64(5000), *ParseAmount(" 5000 "))

	require.Nil(t, ParseCount("two"))
	require.Nil(t, ParseCount("-1"))
	require.Equal(t, 2, *ParseCount("2"))
}

func TestFilterMalformedMinPriceEqualsUnset(t *testing.T) {
	props := []model.Property{
		house("a", "Woodlands", "Lusaka", 500000, 3),
		house("b", "Kabulonga", "Lusaka", 900000, 4),
	}
	withMalformed := Filter(props, Criteria{MinPrice: ParseAmount("not-a-number")})
	withUnset := Filter(props, Criteria{})
	require.Equal(t, withUnset, withMalformed)
}
