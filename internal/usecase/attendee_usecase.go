package usecase

import "context"

// AttendeeDTO is the flat projection of an attendee returned to callers.
type AttendeeDTO struct {
	ID          int    `json:"id"`
	AccountName string `json:"account_name"`
	IsAttended  bool   `json:"is_attended"`
}

// GetAttendeesUsecase lists attendees.
type GetAttendeesUsecase interface {
	// Execute returns every attendee in store order. It never returns a nil slice on success.
	Execute(ctx context.Context) ([]AttendeeDTO, error)
}

// UpdateAttendeeAttendanceUsecase sets or clears an attendee's attendance flag.
type UpdateAttendeeAttendanceUsecase interface {
	// Execute fails with a NotFoundError when no attendee has the given id.
	Execute(ctx context.Context, attendeeID int, isAttended bool) error
}

// CheckInAttendeeUsecase marks the attendee encoded in a scanned check-in QR code as attended.
type CheckInAttendeeUsecase interface {
	Execute(ctx context.Context, qrData string) (AttendeeDTO, error)
}

// GetAttendeeCheckInQRUsecase renders the check-in QR code of an attendee as PNG.
type GetAttendeeCheckInQRUsecase interface {
	Execute(ctx context.Context, attendeeID int) ([]byte, error)
}
