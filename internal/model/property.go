package model

import "time"

// PropertyType categorises a listing.  Each category carries its own
// attribute record (see the *Details types below); a property holds
// exactly one of them, matching its type.
type PropertyType string

// Supported property categories.
const (
	PropertyHouse     PropertyType = "house"
	PropertyOffice    PropertyType = "office"
	PropertyPlot      PropertyType = "plot"
	PropertyFarm      PropertyType = "farm"
	PropertyWarehouse PropertyType = "warehouse"
)

// Valid reports whether t is one of the known property categories.
func (t PropertyType) Valid() bool {
	switch t {
	case PropertyHouse, PropertyOffice, PropertyPlot, PropertyFarm, PropertyWarehouse:
		return true
	}
	return false
}

// ListingType states how a property is offered on the market.
type ListingType string

// Supported listing types.
const (
	ListingRent  ListingType = "rent"
	ListingSale  ListingType = "sale"
	ListingLease ListingType = "lease"
)

// Valid reports whether l is one of the known listing types.
func (l ListingType) Valid() bool {
	switch l {
	case ListingRent, ListingSale, ListingLease:
		return true
	}
	return false
}

// Photo is an image attached to a listing.  The URI points at the
// object store; resolution to a displayable blob is the client's job.
type Photo struct {
	Caption string `json:"caption"`
	URI     string `json:"uri"`
}

// HouseDetails holds the attributes that only make sense for houses.
type HouseDetails struct {
	Bedrooms     int   `json:"bedrooms"`
	Bathrooms    int   `json:"bathrooms,omitempty"`
	SquareMeters int   `json:"square_meters,omitempty"`
	HasGarden    bool  `json:"has_garden,omitempty"`
	HasParking   bool  `json:"has_parking,omitempty"`
}

// OfficeDetails holds office-only attributes.
type OfficeDetails struct {
	SquareMeters  int  `json:"square_meters"`
	FloorNumber   int  `json:"floor_number,omitempty"`
	HasReception  bool `json:"has_reception,omitempty"`
	MeetingRooms  int  `json:"meeting_rooms,omitempty"`
	ParkingSpaces int  `json:"parking_spaces,omitempty"`
}

// PlotDetails holds undeveloped-land attributes.
type PlotDetails struct {
	SquareMeters int    `json:"square_meters"`
	Zoning       string `json:"zoning,omitempty"`
	HasUtilities bool   `json:"has_utilities,omitempty"`
	RoadAccess   bool   `json:"road_access,omitempty"`
	Terrain      string `json:"terrain,omitempty"`
}

// FarmDetails holds farm-only attributes.  Acreage is used instead of
// square meters because that is how farmland is marketed locally.
type FarmDetails struct {
	Acreage         float64  `json:"acreage"`
	HasWater        bool     `json:"has_water,omitempty"`
	SoilType        string   `json:"soil_type,omitempty"`
	HasBuildings    bool     `json:"has_buildings,omitempty"`
	AgriculturalUse []string `json:"agricultural_use,omitempty"`
}

// WarehouseDetails holds warehouse-only attributes.
type WarehouseDetails struct {
	SquareMeters   int     `json:"square_meters"`
	CeilingHeight  float64 `json:"ceiling_height"`
	LoadingDock    bool    `json:"loading_dock"`
	HasOfficeSpace bool    `json:"has_office_space,omitempty"`
	HasSecurity    bool    `json:"has_security,omitempty"`
}

// Property is a listed piece of real estate.  PriceCents stores the
// asking price in minor currency units; display layers divide by 100.
// Exactly one of the detail pointers is non-nil and it must match
// Type: the variants are mutually exclusive so a house can never
// carry a ceiling height or a warehouse a bedroom count.
//
// Fields:
//  ID          – primary key (uuid string).
//  OwnerID     – user who listed the property.
//  Title       – short headline for the listing.
//  Description – optional long-form text.
//  Area, Town  – free-text location fields used by search.
//  PriceCents  – asking price in minor units.
//  Rate        – optional billing period for rentals ("per month").
//  Listing     – rent, sale or lease.
//  Type        – discriminant for the detail record.
//  Photos      – ordered photo list (stored as JSON).
//  Features    – ordered free-text tags (stored as JSON).
type Property struct {
	ID          string       `json:"id"`
	OwnerID     string       `json:"owner_id"`
	Title       string       `json:"title"`
	Description string       `json:"description,omitempty"`
	Area        string       `json:"area"`
	Town        string       `json:"town"`
	PriceCents  int64        `json:"price_cents"`
	Rate        string       `json:"rate,omitempty"`
	Listing     ListingType  `json:"listing"`
	Type        PropertyType `json:"type"`
	Photos      []Photo      `json:"photos"`
	Features    []string     `json:"features"`
	CreatedAt   time.Time    `json:"created_at"`
	UpdatedAt   time.Time    `json:"updated_at"`

	House     *HouseDetails     `json:"house,omitempty"`
	Office    *OfficeDetails    `json:"office,omitempty"`
	Plot      *PlotDetails      `json:"plot,omitempty"`
	Farm      *FarmDetails      `json:"farm,omitempty"`
	Warehouse *WarehouseDetails `json:"warehouse,omitempty"`
}

// Bedrooms returns the bedroom count for houses and zero for every
// other category.  Search predicates compare against this value.
func (p Property) Bedrooms() int {
	if p.House != nil {
		return p.House.Bedrooms
	}
	return 0
}

// DetailsMatchType reports whether exactly the detail record for the
// property's declared type is populated.  Repositories reject writes
// that violate this.
func (p Property) DetailsMatchType() bool {
	var want, extra int
	for _, set := range []struct {
		t  PropertyType
		ok bool
	}{
		{PropertyHouse, p.House != nil},
		{PropertyOffice, p.Office != nil},
		{PropertyPlot, p.Plot != nil},
		{PropertyFarm, p.Farm != nil},
		{PropertyWarehouse, p.Warehouse != nil},
	} {
		if !set.ok {
			continue
		}
		if set.t == p.Type {
			want++
		} else {
			extra++
		}
	}
	return want == 1 && extra == 0
}
