package repository

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"
)

// WatchlistRepo provides access to the `watchlist` table.  A property
// appears at most once per user; the table carries a unique index on
// (user_id, property_id) backing the duplicate guard.
type WatchlistRepo struct {
	db *sql.DB
}

// NewWatchlistRepo returns a WatchlistRepo bound to the given database.
func NewWatchlistRepo(db *sql.DB) *WatchlistRepo { return &WatchlistRepo{db: db} }

// WatchlistEntry is a saved property with enough listing detail to
// render the watchlist screen without a second fetch.
type WatchlistEntry struct {
	ID           uint64    `json:"id"`
	PropertyID   string    `json:"property_id"`
	Title        string    `json:"title"`
	Area         string    `json:"area"`
	Town         string    `json:"town"`
	PriceCents   int64     `json:"price_cents"`
	Listing      string    `json:"listing"`
	PropertyType string    `json:"property_type"`
	AddedAt      time.Time `json:"added_at"`
}

// Add saves a property to the user's watchlist.  The referenced
// property must exist (ErrPropertyNotFound) and must not already be
// saved (ErrConflict).
func (r *WatchlistRepo) Add(ctx context.Context, userID, propertyID string) error {
	var exists int
	err := r.db.QueryRowContext(ctx, `SELECT 1 FROM properties WHERE id = ?`, propertyID).Scan(&exists)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrPropertyNotFound
		}
		return err
	}
	_, err = r.db.ExecContext(ctx,
		`INSERT INTO watchlist (user_id, property_id) VALUES (?, ?)`, userID, propertyID)
	if err != nil {
		// Unique index violation means the property is already saved.
		if strings.Contains(strings.ToLower(err.Error()), "1062") {
			return ErrConflict
		}
		return err
	}
	return nil
}

// Remove drops a property from the user's watchlist.  Removing an
// entry that is not there fails with ErrPropertyNotFound.
func (r *WatchlistRepo) Remove(ctx context.Context, userID, propertyID string) error {
	res, err := r.db.ExecContext(ctx,
		`DELETE FROM watchlist WHERE user_id = ? AND property_id = ?`, userID, propertyID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrPropertyNotFound
	}
	return nil
}

// ListByUser returns the user's saved properties, most recently added
// first.
func (r *WatchlistRepo) ListByUser(ctx context.Context, userID string) ([]WatchlistEntry, error) {
	const q = `SELECT w.id, w.property_id, p.title, p.area, p.town, p.price_cents, p.listing, p.property_type, w.created_at
               FROM watchlist w
               JOIN properties p ON p.id = w.property_id
               WHERE w.user_id = ?
               ORDER BY w.created_at DESC, w.id DESC`
	rows, err := r.db.QueryContext(ctx, q, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := make([]WatchlistEntry, 0)
	for rows.Next() {
		var e WatchlistEntry
		if err := rows.Scan(&e.ID, &e.PropertyID, &e.Title, &e.Area, &e.Town, &e.PriceCents, &e.Listing, &e.PropertyType, &e.AddedAt); err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
