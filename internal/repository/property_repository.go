package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/nyumba/nyumba-api/internal/model"
)

// ErrPropertyNotFound is returned when a property lookup fails.
var ErrPropertyNotFound = errors.New("property not found")

// ErrDetailsMismatch is returned when a write carries a detail record
// that does not match the declared property type (or carries more than
// one).  The variants are mutually exclusive and the repository is the
// last line of defence for that invariant.
var ErrDetailsMismatch = errors.New("property details do not match property type")

// PropertyRepo provides CRUD access to the `properties` table.  The
// photo list, feature tags and the type-specific detail record are
// stored as JSON columns; everything else is a plain column.
type PropertyRepo struct {
	db *sql.DB
}

// NewPropertyRepo returns a PropertyRepo bound to the given database.
func NewPropertyRepo(db *sql.DB) *PropertyRepo { return &PropertyRepo{db: db} }

// DB exposes the underlying handle so handlers can open transactions
// spanning multiple repositories.
func (r *PropertyRepo) DB() *sql.DB { return r.db }

const propertyColumns = `id, owner_id, title, description, area, town, price_cents, rate,
               listing, property_type, photos, features, details, created_at, updated_at`

// marshalDetails serializes the one detail record matching p.Type.
func marshalDetails(p *model.Property) ([]byte, error) {
	switch p.Type {
	case model.PropertyHouse:
		return json.Marshal(p.House)
	case model.PropertyOffice:
		return json.Marshal(p.Office)
	case model.PropertyPlot:
		return json.Marshal(p.Plot)
	case model.PropertyFarm:
		return json.Marshal(p.Farm)
	case model.PropertyWarehouse:
		return json.Marshal(p.Warehouse)
	}
	return nil, fmt.Errorf("unknown property type %q", p.Type)
}

// unmarshalDetails hydrates the detail record for the row's type.
func unmarshalDetails(p *model.Property, raw []byte) error {
	if len(raw) == 0 {
		return nil
	}
	switch p.Type {
	case model.PropertyHouse:
		p.House = &model.HouseDetails{}
		return json.Unmarshal(raw, p.House)
	case model.PropertyOffice:
		p.Office = &model.OfficeDetails{}
		return json.Unmarshal(raw, p.Office)
	case model.PropertyPlot:
		p.Plot = &model.PlotDetails{}
		return json.Unmarshal(raw, p.Plot)
	case model.PropertyFarm:
		p.Farm = &model.FarmDetails{}
		return json.Unmarshal(raw, p.Farm)
	case model.PropertyWarehouse:
		p.Warehouse = &model.WarehouseDetails{}
		return json.Unmarshal(raw, p.Warehouse)
	}
	return fmt.Errorf("unknown property type %q", p.Type)
}

// Create inserts a new property.  The ID is generated here and set on
// the passed record along with the database timestamps.
func (r *PropertyRepo) Create(ctx context.Context, p *model.Property) error {
	if !p.DetailsMatchType() {
		return ErrDetailsMismatch
	}
	details, err := marshalDetails(p)
	if err != nil {
		return err
	}
	if p.Photos == nil {
		p.Photos = []model.Photo{}
	}
	if p.Features == nil {
		p.Features = []string{}
	}
	photos, err := json.Marshal(p.Photos)
	if err != nil {
		return err
	}
	features, err := json.Marshal(p.Features)
	if err != nil {
		return err
	}
	p.ID = uuid.NewString()
	const q = `INSERT INTO properties
               (id, owner_id, title, description, area, town, price_cents, rate, listing, property_type, photos, features, details)
               VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	if _, err := r.db.ExecContext(ctx, q,
		p.ID, p.OwnerID, p.Title, p.Description, p.Area, p.Town, p.PriceCents, p.Rate,
		string(p.Listing), string(p.Type), photos, features, details,
	); err != nil {
		return err
	}
	// Read the row back so timestamps reflect what was stored.
	const sel = `SELECT created_at, updated_at FROM properties WHERE id = ?`
	return r.db.QueryRowContext(ctx, sel, p.ID).Scan(&p.CreatedAt, &p.UpdatedAt)
}

func scanProperty(scan func(dest ...any) error) (model.Property, error) {
	var (
		p                       model.Property
		description, rate       sql.NullString
		photos, features, details []byte
	)
	err := scan(&p.ID, &p.OwnerID, &p.Title, &description, &p.Area, &p.Town, &p.PriceCents, &rate,
		&p.Listing, &p.Type, &photos, &features, &details, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return p, err
	}
	if description.Valid {
		p.Description = description.String
	}
	if rate.Valid {
		p.Rate = rate.String
	}
	p.Photos = []model.Photo{}
	if len(photos) > 0 {
		if err := json.Unmarshal(photos, &p.Photos); err != nil {
			return p, err
		}
	}
	p.Features = []string{}
	if len(features) > 0 {
		if err := json.Unmarshal(features, &p.Features); err != nil {
			return p, err
		}
	}
	if err := unmarshalDetails(&p, details); err != nil {
		return p, err
	}
	return p, nil
}

// GetByID retrieves a single property.  ErrPropertyNotFound is
// returned when no row exists.
func (r *PropertyRepo) GetByID(ctx context.Context, id string) (*model.Property, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+propertyColumns+` FROM properties WHERE id = ?`, id)
	p, err := scanProperty(row.Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrPropertyNotFound
		}
		return nil, err
	}
	return &p, nil
}

// OwnerID resolves the owner of a property without loading the whole
// row.  Booking transitions use this immediately before the mutating
// write so the authorization check never runs on stale data.
func (r *PropertyRepo) OwnerID(ctx context.Context, propertyID string) (string, error) {
	var ownerID string
	err := r.db.QueryRowContext(ctx, `SELECT owner_id FROM properties WHERE id = ?`, propertyID).Scan(&ownerID)
	if errors.Is(err, sql.ErrNoRows) {
		return "", ErrPropertyNotFound
	}
	return ownerID, err
}

// ListAll returns every property, newest first.  The dataset is small
// enough that search filters the full list in memory, so no predicate
// pushdown happens here.
func (r *PropertyRepo) ListAll(ctx context.Context) ([]model.Property, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+propertyColumns+` FROM properties ORDER BY created_at DESC, id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := make([]model.Property, 0)
	for rows.Next() {
		p, err := scanProperty(rows.Scan)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// ListByOwner returns the caller's own listings, newest first.
func (r *PropertyRepo) ListByOwner(ctx context.Context, ownerID string) ([]model.Property, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+propertyColumns+` FROM properties WHERE owner_id = ? ORDER BY created_at DESC, id`, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := make([]model.Property, 0)
	for rows.Next() {
		p, err := scanProperty(rows.Scan)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// UpdateByIDAndOwner rewrites a property's mutable fields if it
// belongs to the given owner.  Listing and property type are immutable
// after creation, matching the filter engine's assumptions; attempts
// to change them are rejected with ErrDetailsMismatch when the detail
// record no longer lines up.
func (r *PropertyRepo) UpdateByIDAndOwner(ctx context.Context, p *model.Property) error {
	current, err := r.GetByID(ctx, p.ID)
	if err != nil {
		return err
	}
	if current.OwnerID != p.OwnerID {
		return ErrForbidden
	}
	p.Listing = current.Listing
	p.Type = current.Type
	if !p.DetailsMatchType() {
		return ErrDetailsMismatch
	}
	details, err := marshalDetails(p)
	if err != nil {
		return err
	}
	photos, err := json.Marshal(p.Photos)
	if err != nil {
		return err
	}
	features, err := json.Marshal(p.Features)
	if err != nil {
		return err
	}
	const q = `UPDATE properties
               SET title = ?, description = ?, area = ?, town = ?, price_cents = ?, rate = ?,
                   photos = ?, features = ?, details = ?, updated_at = NOW(3)
               WHERE id = ? AND owner_id = ?`
	res, err := r.db.ExecContext(ctx, q,
		p.Title, p.Description, p.Area, p.Town, p.PriceCents, p.Rate,
		photos, features, details, p.ID, p.OwnerID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrPropertyNotFound
	}
	return nil
}

// DeleteByIDAndOwner removes a listing.  It fails with ErrForbidden
// when the caller does not own the property and with ErrConflict when
// open (pending or confirmed) viewing requests still reference it.
func (r *PropertyRepo) DeleteByIDAndOwner(ctx context.Context, id, ownerID string) error {
	var actualOwner string
	err := r.db.QueryRowContext(ctx, `SELECT owner_id FROM properties WHERE id = ?`, id).Scan(&actualOwner)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrPropertyNotFound
		}
		return err
	}
	if actualOwner != ownerID {
		return ErrForbidden
	}
	var open int
	err = r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM viewings WHERE property_id = ? AND status IN ('pending','confirmed')`, id).Scan(&open)
	if err != nil {
		return err
	}
	if open > 0 {
		return ErrConflict
	}
	_, err = r.db.ExecContext(ctx, `DELETE FROM properties WHERE id = ? AND owner_id = ?`, id, ownerID)
	return err
}
