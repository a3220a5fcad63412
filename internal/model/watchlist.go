package model

import "time"

// WatchlistItem saves a property for later on a user's watchlist.
// The (UserID, PropertyID) pair is unique; adding the same property
// twice is rejected.
type WatchlistItem struct {
	ID         uint64    `json:"id"`          // watchlist.id
	UserID     string    `json:"user_id"`     // watchlist.user_id
	PropertyID string    `json:"property_id"` // watchlist.property_id
	CreatedAt  time.Time `json:"created_at"`  // watchlist.created_at
}
