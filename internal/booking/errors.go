package booking

import "errors"

// Sentinel errors raised by the state machine and by the validation
// helpers run before a booking is persisted.  Handlers translate them
// into HTTP responses; repositories pass them through unchanged.

// ErrPastDate is returned when a booking's scheduled date lies on a
// calendar day before today.  Only the date component is compared;
// booking later today is allowed.
var ErrPastDate = errors.New("scheduled date is in the past")

// ErrDuplicatePending is returned when the client already has a
// pending booking for the same property.
var ErrDuplicatePending = errors.New("pending viewing request already exists for this property")

// ErrNotAuthorized is returned when the acting user is neither
// permitted party for the attempted transition: owner transitions
// require the property owner, a client cancel requires the booking's
// client.
var ErrNotAuthorized = errors.New("actor not authorized for this transition")

// ErrInvalidTransition is returned for any transition the table does
// not allow, including every transition out of a terminal state.
var ErrInvalidTransition = errors.New("invalid status transition")
