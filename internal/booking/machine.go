package booking

import "time"

// Event names an attempted transition on a viewing booking.
type Event string

// Events accepted by the state machine.
const (
	EventConfirm  Event = "confirm"  // owner accepts a pending request
	EventDecline  Event = "decline"  // owner rejects a pending request
	EventCancel   Event = "cancel"   // client withdraws their own pending request
	EventComplete Event = "complete" // owner marks a confirmed viewing as done
)

// actorKind states which party may fire an event.
type actorKind int

const (
	byOwner actorKind = iota
	byClient
)

// rule is one row of the transition table.
type rule struct {
	from Status
	to   Status
	who  actorKind
}

// transitions is the complete table of legal moves.  Anything not
// listed here, including every move out of cancelled or completed,
// fails with ErrInvalidTransition.
var transitions = map[Event]rule{
	EventConfirm:  {from: StatusPending, to: StatusConfirmed, who: byOwner},
	EventDecline:  {from: StatusPending, to: StatusCancelled, who: byOwner},
	EventCancel:   {from: StatusPending, to: StatusCancelled, who: byClient},
	EventComplete: {from: StatusConfirmed, to: StatusCompleted, who: byOwner},
}

// Actor identifies the user attempting a transition.  Only the ID
// participates in authorization; authorization is ownership-based, so
// the profile role is irrelevant here.
type Actor struct {
	ID string
}

// ApplyEvent validates and resolves a single transition.  clientID is
// the booking's requesting client and ownerID the owner of the booked
// property (resolved through the property referenced by the booking).
// The transition is checked before the actor so that firing an event
// on a terminal booking reports ErrInvalidTransition regardless of who
// asks.  On success the new status is returned; the caller persists it
// together with a fresh updated_at, conditionally on the old status
// still being current.
func ApplyEvent(current Status, ev Event, actor Actor, clientID, ownerID string) (Status, error) {
	r, ok := transitions[ev]
	if !ok || current != r.from {
		return current, ErrInvalidTransition
	}
	switch r.who {
	case byOwner:
		if actor.ID == "" || actor.ID != ownerID {
			return current, ErrNotAuthorized
		}
	case byClient:
		if actor.ID == "" || actor.ID != clientID {
			return current, ErrNotAuthorized
		}
	}
	return r.to, nil
}

// ValidateScheduledAt rejects bookings whose scheduled calendar date is
// strictly before today's.  Dates are compared in UTC; the time of day
// is deliberately ignored, so a viewing later today is always valid.
func ValidateScheduledAt(scheduledAt, now time.Time) error {
	sy, sm, sd := scheduledAt.UTC().Date()
	ny, nm, nd := now.UTC().Date()
	sched := time.Date(sy, sm, sd, 0, 0, 0, 0, time.UTC)
	today := time.Date(ny, nm, nd, 0, 0, 0, 0, time.UTC)
	if sched.Before(today) {
		return ErrPastDate
	}
	return nil
}
