// Package queue defines message payloads exchanged over the message broker.
package queue

// ViewingConfirmedEvent is published when a landlord or agent confirms a
// viewing request.  It carries enough detail for downstream consumers to
// log or notify without querying the primary database.
type ViewingConfirmedEvent struct {
	ViewingID     string `json:"viewing_id"`
	PropertyID    string `json:"property_id"`
	PropertyTitle string `json:"property_title"`
	Area          string `json:"area"`
	Town          string `json:"town"`
	OwnerID       string `json:"owner_id"`
	ClientID      string `json:"client_id"`
	ClientName    string `json:"client_name"`
	ScheduledAt   string `json:"scheduled_at"`
	ConfirmedAt   string `json:"confirmed_at"`
}
