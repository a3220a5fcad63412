package model

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBedrooms(t *testing.T) {
	h := Property{Type: PropertyHouse, House: &HouseDetails{Bedrooms: 3}}
	require.Equal(t, 3, h.Bedrooms())

	w := Property{Type: PropertyWarehouse, Warehouse: &WarehouseDetails{SquareMeters: 800}}
	require.Equal(t, 0, w.Bedrooms())

	require.Equal(t, 0, Property{}.Bedrooms())
}

func TestDetailsMatchType(t *testing.T) {
	ok := Property{Type: PropertyFarm, Farm: &FarmDetails{Acreage: 12.5}}
	require.True(t, ok.DetailsMatchType())

	missing := Property{Type: PropertyFarm}
	require.False(t, missing.DetailsMatchType())

	wrong := Property{Type: PropertyFarm, House: &HouseDetails{Bedrooms: 2}}
	require.False(t, wrong.DetailsMatchType())

	extra := Property{
		Type:  PropertyHouse,
		House: &HouseDetails{Bedrooms: 2},
		Plot:  &PlotDetails{SquareMeters: 1000},
	}
	require.False(t, extra.DetailsMatchType())
}

func TestEnumValidity(t *testing.T) {
	require.True(t, PropertyHouse.Valid())
	require.False(t, PropertyType("castle").Valid())

	require.True(t, ListingLease.Valid())
	require.False(t, ListingType("barter").Valid())

	require.True(t, RoleAgent.Valid())
	require.False(t, Role("admin").Valid())
	require.True(t, RoleLandlord.CanListProperties())
	require.True(t, RoleAgent.CanListProperties())
	require.False(t, RoleTenant.CanListProperties())
}
