package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/nyumba/nyumba-api/internal/repository"
	"github.com/nyumba/nyumba-api/internal/search"
)

// SearchHandler evaluates the listing filter.  The dataset is loaded in
// full and filtered in memory; criteria come straight from the mobile
// client's search form as query parameters.
type SearchHandler struct {
	Properties *repository.PropertyRepo
}

func NewSearchHandler(p *repository.PropertyRepo) *SearchHandler {
	return &SearchHandler{Properties: p}
}

// SearchProperties filters listings by the query parameters:
//
//	q             free text over area, town and features
//	property_type exact category ("All" or empty means any)
//	listing_type  exact rent/sale/lease ("All" or empty means any)
//	area, town    exact location match ("All" or empty means any)
//	min_price     inclusive lower price bound in major units
//	max_price     inclusive upper price bound in major units
//	min_bedrooms  inclusive lower bedroom bound (houses only)
//
// Malformed numeric input is treated as no constraint.
func (h *SearchHandler) SearchProperties(c echo.Context) error {
	crit := search.Criteria{
		FreeText:     c.QueryParam("q"),
		PropertyType: search.OptionalPropertyType(c.QueryParam("property_type")),
		ListingType:  search.OptionalListingType(c.QueryParam("listing_type")),
		Area:         search.OptionalString(c.QueryParam("area")),
		Town:         search.OptionalString(c.QueryParam("town")),
		MinPrice:     search.ParseAmount(c.QueryParam("min_price")),
		MaxPrice:     search.ParseAmount(c.QueryParam("max_price")),
		MinBedrooms:  search.ParseCount(c.QueryParam("min_bedrooms")),
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	props, err := h.Properties.ListAll(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	matched := search.Filter(props, crit)
	return c.JSON(http.StatusOK, echo.Map{
		"properties": matched,
		"count":      len(matched),
		"filtered":   crit.Active(),
	})
}
