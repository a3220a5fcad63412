package model

import (
	"time"

	"github.com/nyumba/nyumba-api/internal/booking"
)

// ViewingBooking records a client's request to visit a property.
// Bookings are created in the pending state and only ever change
// through the transition rules in the booking package; cancellation is
// a status change, never a row deletion.
//
// Fields:
//  ID            – primary key (uuid string).
//  PropertyID    – property the client wants to visit.
//  ClientID      – user requesting the viewing.
//  ScheduledAt   – agreed visit time; its calendar date may not lie in
//                  the past at creation time.
//  Status        – pending, confirmed, cancelled or completed.
//  ClientMessage – optional note captured at creation.
type ViewingBooking struct {
	ID            string         `json:"id"`             // viewings.id
	PropertyID    string         `json:"property_id"`    // viewings.property_id
	ClientID      string         `json:"client_id"`      // viewings.client_id
	ScheduledAt   time.Time      `json:"scheduled_at"`   // viewings.scheduled_at
	Status        booking.Status `json:"status"`         // viewings.status
	ClientMessage string         `json:"client_message,omitempty"` // viewings.client_message
	CreatedAt     time.Time      `json:"created_at"`     // viewings.created_at
	UpdatedAt     time.Time      `json:"updated_at"`     // viewings.updated_at
}
