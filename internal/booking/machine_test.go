package booking

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

const (
	ownerID  = "owner-uuid"
	clientID = "client-uuid"
)

func TestApplyEventHappyPaths(t *testing.T) {
	owner := Actor{ID: ownerID}
	client := Actor{ID: clientID}

	next, err := ApplyEvent(StatusPending, EventConfirm, owner, clientID, ownerID)
	require.NoError(t, err)
	require.Equal(t, StatusConfirmed, next)

	next, err = ApplyEvent(StatusPending, EventDecline, owner, clientID, ownerID)
	require.NoError(t, err)
	require.Equal(t, StatusCancelled, next)

	next, err = ApplyEvent(StatusPending, EventCancel, client, clientID, ownerID)
	require.NoError(t, err)
	require.Equal(t, StatusCancelled, next)

	next, err = ApplyEvent(StatusConfirmed, EventComplete, owner, clientID, ownerID)
	require.NoError(t, err)
	require.Equal(t, StatusCompleted, next)
}

func TestApplyEventWrongActor(t *testing.T) {
	owner := Actor{ID: ownerID}
	client := Actor{ID: clientID}
	stranger := Actor{ID: "someone-else"}

	// Owner-only events fired by the client or a stranger.
	for _, actor := range []Actor{client, stranger, {}} {
		got, err := ApplyEvent(StatusPending, EventConfirm, actor, clientID, ownerID)
		require.ErrorIs(t, err, ErrNotAuthorized)
		require.Equal(t, StatusPending, got, "status must be unchanged on failure")
	}

	// Cancel belongs to the requesting client alone.
	for _, actor := range []Actor{owner, stranger, {}} {
		got, err := ApplyEvent(StatusPending, EventCancel, actor, clientID, ownerID)
		require.ErrorIs(t, err, ErrNotAuthorized)
		require.Equal(t, StatusPending, got)
	}
}

func TestApplyEventInvalidTransitions(t *testing.T) {
	owner := Actor{ID: ownerID}
	client := Actor{ID: clientID}

	cases := []struct {
		from Status
		ev   Event
	}{
		{StatusConfirmed, EventConfirm},
		{StatusConfirmed, EventDecline},
		{StatusConfirmed, EventCancel},
		{StatusPending, EventComplete},
		{StatusCancelled, EventConfirm},
		{StatusCancelled, EventComplete},
		{StatusCompleted, EventConfirm},
		{StatusCompleted, EventCancel},
	}
	for _, tc := range cases {
		got, err := ApplyEvent(tc.from, tc.ev, owner, clientID, ownerID)
		require.ErrorIs(t, err, ErrInvalidTransition, "%s from %s", tc.ev, tc.from)
		require.Equal(t, tc.from, got)
	}

	// Transition validity is checked before the actor, so even the
	// rightful client gets ErrInvalidTransition on a terminal booking.
	_, err := ApplyEvent(StatusCancelled, EventCancel, client, clientID, ownerID)
	require.ErrorIs(t, err, ErrInvalidTransition)
}

func TestApplyEventUnknownEvent(t *testing.T) {
	_, err := ApplyEvent(StatusPending, Event("reopen"), Actor{ID: ownerID}, clientID, ownerID)
	require.ErrorIs(t, err, ErrInvalidTransition)
}

func TestValidateScheduledAt(t *testing.T) {
	now := time.Date(2026, time.March, 10, 15, 30, 0, 0, time.UTC)

	yesterday := now.AddDate(0, 0, -1)
	require.ErrorIs(t, ValidateScheduledAt(yesterday, now), ErrPastDate)

	// Earlier today is fine; only the calendar date counts.
	earlierToday := time.Date(2026, time.March, 10, 8, 0, 0, 0, time.UTC)
	require.NoError(t, ValidateScheduledAt(earlierToday, now))

	tomorrow := now.AddDate(0, 0, 1)
	require.NoError(t, ValidateScheduledAt(tomorrow, now))
}

func TestTerminal(t *testing.T) {
	require.False(t, StatusPending.Terminal())
	require.False(t, StatusConfirmed.Terminal())
	require.True(t, StatusCancelled.Terminal())
	require.True(t, StatusCompleted.Terminal())
}

func TestMetaForKnownAndUnknown(t *testing.T) {
	m := MetaFor(StatusPending)
	require.Equal(t, "Pending", m.Label)
	require.Equal(t, "#ff9500", m.Color)
	require.Equal(t, "time-outline", m.Icon)

	m = MetaFor(StatusCompleted)
	require.Equal(t, "#2196F3", m.Color)
	require.Equal(t, "checkmark-done-circle-outline", m.Icon)

	m = MetaFor(Status("weird"))
	require.Equal(t, "weird", m.Label)
	require.Equal(t, "help-circle-outline", m.Icon)
}
