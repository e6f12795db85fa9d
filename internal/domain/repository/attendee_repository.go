// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"sampleapp/internal/domain/entity"
)

// AttendeeRepository defines the persistence capabilities for attendees.
// Entities returned by a repository are tracked by the unit-of-work scope
// carried in ctx, so mutations are picked up by UnitOfWork.SaveChanges.
type AttendeeRepository interface {
	// GetAll returns every attendee ordered by id.
	GetAll(ctx context.Context) ([]*entity.Attendee, error)

	// GetByID returns the attendee with the given id, or (nil, nil) when absent.
	GetByID(ctx context.Context, id int) (*entity.Attendee, error)

	// Add schedules a new attendee for insertion. The id is assigned by the
	// store when the scope is saved.
	Add(ctx context.Context, attendee *entity.Attendee) error
}
