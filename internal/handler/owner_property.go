package handler

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/nyumba/nyumba-api/internal/model"
	"github.com/nyumba/nyumba-api/internal/repository"
)

// PropertyHandler covers listing management for landlords and agents.
// Routes using it sit behind RequireRole("landlord", "agent").
type PropertyHandler struct {
	Properties *repository.PropertyRepo
}

func NewPropertyHandler(p *repository.PropertyRepo) *PropertyHandler {
	return &PropertyHandler{Properties: p}
}

// propertyReq is the create/update payload.  Exactly one of the detail
// records must be present and it must match property_type; the
// repository enforces that invariant.
type propertyReq struct {
	Title        string                  `json:"title" validate:"required"`
	Description  string                  `json:"description"`
	Area         string                  `json:"area" validate:"required"`
	Town         string                  `json:"town" validate:"required"`
	PriceCents   int64                   `json:"price_cents" validate:"required,gt=0"`
	Rate         string                  `json:"rate"`
	Listing      string                  `json:"listing" validate:"required"`
	PropertyType string                  `json:"property_type" validate:"required"`
	Photos       []model.Photo           `json:"photos"`
	Features     []string                `json:"features"`
	House        *model.HouseDetails     `json:"house"`
	Office       *model.OfficeDetails    `json:"office"`
	Plot         *model.PlotDetails      `json:"plot"`
	Farm         *model.FarmDetails      `json:"farm"`
	Warehouse    *model.WarehouseDetails `json:"warehouse"`
}

func (req *propertyReq) toModel(ownerID string) (*model.Property, bool) {
	listing := model.ListingType(strings.ToLower(strings.TrimSpace(req.Listing)))
	ptype := model.PropertyType(strings.ToLower(strings.TrimSpace(req.PropertyType)))
	if !listing.Valid() || !ptype.Valid() {
		return nil, false
	}
	return &model.Property{
		OwnerID:     ownerID,
		Title:       strings.TrimSpace(req.Title),
		Description: strings.TrimSpace(req.Description),
		Area:        strings.TrimSpace(req.Area),
		Town:        strings.TrimSpace(req.Town),
		PriceCents:  req.PriceCents,
		Rate:        strings.TrimSpace(req.Rate),
		Listing:     listing,
		Type:        ptype,
		Photos:      req.Photos,
		Features:    req.Features,
		House:       req.House,
		Office:      req.Office,
		Plot:        req.Plot,
		Farm:        req.Farm,
		Warehouse:   req.Warehouse,
	}, true
}

// Create publishes a new listing owned by the caller.
func (h *PropertyHandler) Create(c echo.Context) error {
	var req propertyReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "title, area, town, price_cents, listing and property_type required"})
	}
	p, ok := req.toModel(actorID(c))
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "unknown listing or property_type"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	if err := h.Properties.Create(ctx, p); err != nil {
		if err == repository.ErrDetailsMismatch {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "details must match property_type"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "create property failed"})
	}
	return c.JSON(http.StatusCreated, p)
}

// ListMine returns the caller's own listings.
func (h *PropertyHandler) ListMine(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	props, err := h.Properties.ListByOwner(ctx, actorID(c))
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	return c.JSON(http.StatusOK, echo.Map{"properties": props, "count": len(props)})
}

// Update rewrites a listing's mutable fields.  Listing and property
// type are fixed at creation; the repository keeps the stored values.
func (h *PropertyHandler) Update(c echo.Context) error {
	var req propertyReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "title, area, town, price_cents, listing and property_type required"})
	}
	p, ok := req.toModel(actorID(c))
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "unknown listing or property_type"})
	}
	p.ID = c.Param("id")

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	if err := h.Properties.UpdateByIDAndOwner(ctx, p); err != nil {
		switch err {
		case repository.ErrPropertyNotFound:
			return c.JSON(http.StatusNotFound, echo.Map{"error": "property not found"})
		case repository.ErrForbidden:
			return c.JSON(http.StatusForbidden, echo.Map{"error": "not your property"})
		case repository.ErrDetailsMismatch:
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "details must match property_type"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "update property failed"})
	}
	fresh, err := h.Properties.GetByID(ctx, p.ID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	return c.JSON(http.StatusOK, fresh)
}

// Delete removes a listing.  Listings with open viewing requests
// cannot be deleted until those are resolved.
func (h *PropertyHandler) Delete(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	err := h.Properties.DeleteByIDAndOwner(ctx, c.Param("id"), actorID(c))
	if err != nil {
		switch err {
		case repository.ErrPropertyNotFound:
			return c.JSON(http.StatusNotFound, echo.Map{"error": "property not found"})
		case repository.ErrForbidden:
			return c.JSON(http.StatusForbidden, echo.Map{"error": "not your property"})
		case repository.ErrConflict:
			return c.JSON(http.StatusConflict, echo.Map{"error": "property has open viewing requests"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "delete property failed"})
	}
	return c.NoContent(http.StatusNoContent)
}
