package entity

import (
	"testing"

	domainerrors "sampleapp/internal/domain/errors"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAttendee(t *testing.T) {
	for _, name := range []string{"alice", "Bob Smith", "x", "名字"} {
		attendee, err := NewAttendee(name)
		require.NoError(t, err)
		assert.Equal(t, name, attendee.AccountName())
		assert.False(t, attendee.IsAttended())
		assert.Zero(t, attendee.ID())
	}
}

func TestNewAttendee_WithAttendance(t *testing.T) {
	attendee, err := NewAttendee("bob", WithAttendance(true))
	require.NoError(t, err)
	assert.True(t, attendee.IsAttended())
}

func TestNewAttendee_EmptyName(t *testing.T) {
	attendee, err := NewAttendee("")
	assert.Nil(t, attendee)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidArgument))
}

func TestAttendee_MarkTransitions(t *testing.T) {
	for _, initial := range []bool{false, true} {
		attendee, err := NewAttendee("alice", WithAttendance(initial))
		require.NoError(t, err)

		attendee.MarkAsAttended()
		assert.True(t, attendee.IsAttended())
		attendee.MarkAsAttended()
		assert.True(t, attendee.IsAttended())

		attendee.MarkAsNotAttended()
		assert.False(t, attendee.IsAttended())
		attendee.MarkAsNotAttended()
		assert.False(t, attendee.IsAttended())
	}
}

func TestAttendee_AssignID(t *testing.T) {
	attendee, err := NewAttendee("alice")
	require.NoError(t, err)

	attendee.AssignID(7)
	assert.Equal(t, 7, attendee.ID())

	attendee.AssignID(8)
	assert.Equal(t, 7, attendee.ID())
}

func TestHydrateAttendee(t *testing.T) {
	attendee := HydrateAttendee(3, "charlie", true)
	assert.Equal(t, 3, attendee.ID())
	assert.Equal(t, "charlie", attendee.AccountName())
	assert.True(t, attendee.IsAttended())
}
