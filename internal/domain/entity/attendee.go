// Package entity contains the core business objects of the project.
package entity

import (
	domainerrors "sampleapp/internal/domain/errors"
)

// Attendee is a person whose attendance is being tracked.
// Fields are private: an Attendee exists only through NewAttendee or
// HydrateAttendee, and the flag changes only through the Mark methods.
type Attendee struct {
	id          int // Assigned by the store on first save; zero before that.
	accountName string
	isAttended  bool
}

// AttendeeOption customises a new Attendee.
type AttendeeOption func(*Attendee)

// WithAttendance sets the initial attendance flag (false by default).
func WithAttendance(isAttended bool) AttendeeOption {
	return func(a *Attendee) {
		a.isAttended = isAttended
	}
}

// NewAttendee creates an Attendee that has not been persisted yet.
func NewAttendee(accountName string, opts ...AttendeeOption) (*Attendee, error) {
	if accountName == "" {
		return nil, domainerrors.ErrInvalidArgument.WithDetails("account name must not be empty")
	}

	a := &Attendee{accountName: accountName}
	for _, opt := range opts {
		opt(a)
	}

	return a, nil
}

// HydrateAttendee rebuilds a stored Attendee. Only persistence code should call it.
func HydrateAttendee(id int, accountName string, isAttended bool) *Attendee {
	return &Attendee{
		id:          id,
		accountName: accountName,
		isAttended:  isAttended,
	}
}

func (a *Attendee) ID() int {
	return a.id
}

func (a *Attendee) AccountName() string {
	return a.accountName
}

func (a *Attendee) IsAttended() bool {
	return a.isAttended
}

// AssignID records the identity chosen by the store. It only takes effect
// while the attendee has no identity yet.
func (a *Attendee) AssignID(id int) {
	if a.id != 0 {
		return
	}
	a.id = id
}

// MarkAsAttended sets the attendance flag. Idempotent.
func (a *Attendee) MarkAsAttended() {
	a.isAttended = true
}

// MarkAsNotAttended clears the attendance flag. Idempotent.
func (a *Attendee) MarkAsNotAttended() {
	a.isAttended = false
}
