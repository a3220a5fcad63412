package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/nyumba/nyumba-api/internal/booking"
	"github.com/nyumba/nyumba-api/internal/model"
)

// ErrViewingNotFound is returned when a viewing lookup fails.
var ErrViewingNotFound = errors.New("viewing not found")

// ViewingRepo provides access to the `viewings` table.  Status changes
// are written conditionally on the expected current status so two
// actors resolving the same pending booking cannot both win; the loser
// of the race observes an invalid transition instead of silently
// overwriting the winner.  All timestamps are stored in UTC.
type ViewingRepo struct {
	db *sql.DB
}

// NewViewingRepo returns a ViewingRepo bound to the given database.
func NewViewingRepo(db *sql.DB) *ViewingRepo { return &ViewingRepo{db: db} }

// DB exposes the underlying handle for transactional callers.
func (r *ViewingRepo) DB() *sql.DB { return r.db }

// ViewingDetail is a viewing joined with the property it refers to and
// the client who requested it, as shown on the viewings screens.  The
// property's owner ID rides along so callers can authorize owner
// transitions without a second query.
type ViewingDetail struct {
	ID            string         `json:"id"`
	PropertyID    string         `json:"property_id"`
	ClientID      string         `json:"client_id"`
	ScheduledAt   time.Time      `json:"scheduled_at"`
	Status        booking.Status `json:"status"`
	StatusMeta    booking.Meta   `json:"status_meta"`
	ClientMessage string         `json:"client_message,omitempty"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`

	PropertyTitle string `json:"property_title"`
	PropertyArea  string `json:"property_area"`
	PropertyTown  string `json:"property_town"`
	OwnerID       string `json:"owner_id"`
	ClientName    string `json:"client_name"`
	ClientPhone   string `json:"client_phone,omitempty"`
}

const viewingDetailQuery = `SELECT v.id, v.property_id, v.client_id, v.scheduled_at, v.status,
                      v.client_message, v.created_at, v.updated_at,
                      p.title, p.area, p.town, p.owner_id,
                      u.full_name, u.phone
               FROM viewings v
               JOIN properties p ON p.id = v.property_id
               JOIN users u      ON u.id = v.client_id`

func scanViewingDetail(scan func(dest ...any) error) (ViewingDetail, error) {
	var d ViewingDetail
	var message, phone sql.NullString
	err := scan(&d.ID, &d.PropertyID, &d.ClientID, &d.ScheduledAt, &d.Status,
		&message, &d.CreatedAt, &d.UpdatedAt,
		&d.PropertyTitle, &d.PropertyArea, &d.PropertyTown, &d.OwnerID,
		&d.ClientName, &phone)
	if err != nil {
		return d, err
	}
	if message.Valid {
		d.ClientMessage = message.String
	}
	if phone.Valid {
		d.ClientPhone = phone.String
	}
	d.StatusMeta = booking.MetaFor(d.Status)
	return d, nil
}

// Create inserts a new pending viewing.  The duplicate-pending guard
// and the insert run in one transaction, with the existence probe
// locking any matching pending row, so two concurrent requests for the
// same (client, property) pair cannot both pass the check.  The
// referenced property must exist.  On success the generated ID and
// stored timestamps are set on the passed record.
func (r *ViewingRepo) Create(ctx context.Context, v *model.ViewingBooking) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	committed := false
	defer func() {
		if !committed {
			_ = tx.Rollback()
		}
	}()

	var ownerID string
	err = tx.QueryRowContext(ctx, `SELECT owner_id FROM properties WHERE id = ? FOR SHARE`, v.PropertyID).Scan(&ownerID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrPropertyNotFound
		}
		return err
	}

	var existing string
	err = tx.QueryRowContext(ctx,
		`SELECT id FROM viewings WHERE property_id = ? AND client_id = ? AND status = 'pending' LIMIT 1 FOR UPDATE`,
		v.PropertyID, v.ClientID).Scan(&existing)
	switch {
	case err == nil:
		return booking.ErrDuplicatePending
	case !errors.Is(err, sql.ErrNoRows):
		return err
	}

	v.ID = uuid.NewString()
	v.Status = booking.StatusPending
	const ins = `INSERT INTO viewings (id, property_id, client_id, scheduled_at, status, client_message)
                 VALUES (?, ?, ?, ?, ?, ?)`
	var message any
	if v.ClientMessage != "" {
		message = v.ClientMessage
	}
	if _, err := tx.ExecContext(ctx, ins,
		v.ID, v.PropertyID, v.ClientID, v.ScheduledAt.UTC(), string(v.Status), message); err != nil {
		return err
	}
	const sel = `SELECT created_at, updated_at FROM viewings WHERE id = ?`
	if err := tx.QueryRowContext(ctx, sel, v.ID).Scan(&v.CreatedAt, &v.UpdatedAt); err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return err
	}
	committed = true
	return nil
}

// GetByID returns one viewing with its joined detail.  Visibility (the
// caller must be the client or the property owner) is the handler's
// decision; this method only reports existence.
func (r *ViewingRepo) GetByID(ctx context.Context, id string) (*ViewingDetail, error) {
	row := r.db.QueryRowContext(ctx, viewingDetailQuery+` WHERE v.id = ?`, id)
	d, err := scanViewingDetail(row.Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrViewingNotFound
		}
		return nil, err
	}
	return &d, nil
}

func (r *ViewingRepo) listDetails(ctx context.Context, cond string, arg any) ([]ViewingDetail, error) {
	rows, err := r.db.QueryContext(ctx, viewingDetailQuery+cond, arg)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := make([]ViewingDetail, 0)
	for rows.Next() {
		d, err := scanViewingDetail(rows.Scan)
		if err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// ListByClient returns a client's own viewings ordered by visit time.
func (r *ViewingRepo) ListByClient(ctx context.Context, clientID string) ([]ViewingDetail, error) {
	return r.listDetails(ctx, ` WHERE v.client_id = ? ORDER BY v.scheduled_at ASC`, clientID)
}

// ListByOwner returns all viewing requests on properties belonging to
// the given owner, ordered by visit time.
func (r *ViewingRepo) ListByOwner(ctx context.Context, ownerID string) ([]ViewingDetail, error) {
	return r.listDetails(ctx, ` WHERE p.owner_id = ? ORDER BY v.scheduled_at ASC`, ownerID)
}

// PendingCountForOwner counts unresolved requests across all of an
// owner's properties; the mobile client shows this as a badge.
func (r *ViewingRepo) PendingCountForOwner(ctx context.Context, ownerID string) (int64, error) {
	const q = `SELECT COUNT(*)
               FROM viewings v
               JOIN properties p ON p.id = v.property_id
               WHERE p.owner_id = ? AND v.status = 'pending'`
	var n int64
	err := r.db.QueryRowContext(ctx, q, ownerID).Scan(&n)
	return n, err
}

// UpdateStatus applies a resolved transition conditionally: the row is
// touched only while its status still equals from.  When zero rows
// match, the viewing either disappeared (ErrViewingNotFound) or a
// concurrent actor resolved it first (booking.ErrInvalidTransition).
// updated_at uses millisecond precision so successive transitions are
// strictly ordered.
func (r *ViewingRepo) UpdateStatus(ctx context.Context, id string, from, to booking.Status) (time.Time, error) {
	const q = `UPDATE viewings SET status = ?, updated_at = NOW(3) WHERE id = ? AND status = ?`
	res, err := r.db.ExecContext(ctx, q, string(to), id, string(from))
	if err != nil {
		return time.Time{}, err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		var current string
		err := r.db.QueryRowContext(ctx, `SELECT status FROM viewings WHERE id = ?`, id).Scan(&current)
		if errors.Is(err, sql.ErrNoRows) {
			return time.Time{}, ErrViewingNotFound
		}
		if err != nil {
			return time.Time{}, err
		}
		return time.Time{}, booking.ErrInvalidTransition
	}
	var updatedAt time.Time
	if err := r.db.QueryRowContext(ctx, `SELECT updated_at FROM viewings WHERE id = ?`, id).Scan(&updatedAt); err != nil {
		return time.Time{}, err
	}
	return updatedAt, nil
}
