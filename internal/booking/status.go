// Package booking owns the viewing-booking lifecycle: the status enum,
// the transition table between statuses, the actor authorization gate
// applied uniformly to every transition, and the per-status display
// metadata that used to be re-declared on every screen of the mobile
// client.
package booking

// Status is the lifecycle state of a viewing booking.
type Status string

// Booking lifecycle states.  Cancelled and completed are terminal.
const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusCancelled Status = "cancelled"
	StatusCompleted Status = "completed"
)

// Valid reports whether s is one of the known statuses.
func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCancelled, StatusCompleted:
		return true
	}
	return false
}

// Terminal reports whether s admits no further transitions.
func (s Status) Terminal() bool {
	return s == StatusCancelled || s == StatusCompleted
}

// Meta describes how a status is presented: a short label, a sentence
// for detail screens, a hex color and an icon name.  Clients read this
// instead of hard-coding the mapping per screen.
type Meta struct {
	Label       string `json:"label"`
	Description string `json:"description"`
	Color       string `json:"color"`
	Icon        string `json:"icon"`
}

// statusMeta is the single source of truth for status presentation.
var statusMeta = map[Status]Meta{
	StatusPending: {
		Label:       "Pending",
		Description: "Waiting for property owner to confirm",
		Color:       "#ff9500",
		Icon:        "time-outline",
	},
	StatusConfirmed: {
		Label:       "Confirmed",
		Description: "Viewing confirmed by property owner",
		Color:       "#4CAF50",
		Icon:        "checkmark-circle-outline",
	},
	StatusCancelled: {
		Label:       "Cancelled",
		Description: "Viewing has been cancelled",
		Color:       "#ff4757",
		Icon:        "close-circle-outline",
	},
	StatusCompleted: {
		Label:       "Completed",
		Description: "Viewing has been completed",
		Color:       "#2196F3",
		Icon:        "checkmark-done-circle-outline",
	},
}

// MetaFor returns the display metadata for s.  Unknown statuses get a
// neutral fallback rather than an error so rendering never breaks.
func MetaFor(s Status) Meta {
	if m, ok := statusMeta[s]; ok {
		return m
	}
	return Meta{Label: string(s), Icon: "help-circle-outline"}
}
