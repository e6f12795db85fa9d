package impl

import (
	"context"

	"sampleapp/internal/domain/entity"
	domainerrors "sampleapp/internal/domain/errors"
	"sampleapp/internal/domain/repository"
	"sampleapp/internal/domain/service"
	"sampleapp/internal/usecase"
)

// attendeeEntityName is the entity kind reported in NotFoundError.
const attendeeEntityName = "Attendee"

type getAttendeesService struct {
	attendeeRepo repository.AttendeeRepository
}

// NewGetAttendeesService creates a new attendee listing use case
func NewGetAttendeesService(attendeeRepo repository.AttendeeRepository) usecase.GetAttendeesUsecase {
	return &getAttendeesService{
		attendeeRepo: attendeeRepo,
	}
}

// Execute returns every attendee as a DTO, preserving repository order
func (s *getAttendeesService) Execute(ctx context.Context) ([]usecase.AttendeeDTO, error) {
	attendees, err := s.attendeeRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	dtos := make([]usecase.AttendeeDTO, 0, len(attendees))
	for _, attendee := range attendees {
		dtos = append(dtos, toAttendeeDTO(attendee))
	}

	return dtos, nil
}

type updateAttendeeAttendanceService struct {
	attendeeRepo repository.AttendeeRepository
	unitOfWork   repository.UnitOfWork
}

// NewUpdateAttendeeAttendanceService creates a new attendance update use case
func NewUpdateAttendeeAttendanceService(
	attendeeRepo repository.AttendeeRepository,
	unitOfWork repository.UnitOfWork,
) usecase.UpdateAttendeeAttendanceUsecase {
	return &updateAttendeeAttendanceService{
		attendeeRepo: attendeeRepo,
		unitOfWork:   unitOfWork,
	}
}

// Execute loads the attendee, applies the transition and saves once
func (s *updateAttendeeAttendanceService) Execute(ctx context.Context, attendeeID int, isAttended bool) error {
	_, err := updateAttendance(ctx, s.attendeeRepo, s.unitOfWork, attendeeID, isAttended)

	return err
}

type checkInAttendeeService struct {
	attendeeRepo  repository.AttendeeRepository
	unitOfWork    repository.UnitOfWork
	qrCodeService service.CheckInQRCodeService
}

// NewCheckInAttendeeService creates a new QR check-in use case
func NewCheckInAttendeeService(
	attendeeRepo repository.AttendeeRepository,
	unitOfWork repository.UnitOfWork,
	qrCodeService service.CheckInQRCodeService,
) usecase.CheckInAttendeeUsecase {
	return &checkInAttendeeService{
		attendeeRepo:  attendeeRepo,
		unitOfWork:    unitOfWork,
		qrCodeService: qrCodeService,
	}
}

// Execute decodes the scanned payload and marks that attendee as attended
func (s *checkInAttendeeService) Execute(ctx context.Context, qrData string) (usecase.AttendeeDTO, error) {
	attendeeID, err := s.qrCodeService.ParseCheckInQR(qrData)
	if err != nil {
		return usecase.AttendeeDTO{}, domainerrors.ErrInvalidArgument.WithDetails(err.Error())
	}

	attendee, err := updateAttendance(ctx, s.attendeeRepo, s.unitOfWork, attendeeID, true)
	if err != nil {
		return usecase.AttendeeDTO{}, err
	}

	return toAttendeeDTO(attendee), nil
}

type getAttendeeCheckInQRService struct {
	attendeeRepo  repository.AttendeeRepository
	qrCodeService service.CheckInQRCodeService
}

// NewGetAttendeeCheckInQRService creates a new check-in QR rendering use case
func NewGetAttendeeCheckInQRService(
	attendeeRepo repository.AttendeeRepository,
	qrCodeService service.CheckInQRCodeService,
) usecase.GetAttendeeCheckInQRUsecase {
	return &getAttendeeCheckInQRService{
		attendeeRepo:  attendeeRepo,
		qrCodeService: qrCodeService,
	}
}

// Execute renders the check-in QR code for an existing attendee
func (s *getAttendeeCheckInQRService) Execute(ctx context.Context, attendeeID int) ([]byte, error) {
	attendee, err := s.attendeeRepo.GetByID(ctx, attendeeID)
	if err != nil {
		return nil, err
	}
	if attendee == nil {
		return nil, domainerrors.NewNotFoundError(attendeeEntityName, attendeeID)
	}

	return s.qrCodeService.GenerateCheckInQR(attendee.ID())
}

// updateAttendance is shared by the attendance toggle and the QR check-in.
// Fetch happens before mutation, which happens before persist. Cancellation is
// honored up to the mutation; the save itself runs to completion.
func updateAttendance(
	ctx context.Context,
	attendeeRepo repository.AttendeeRepository,
	unitOfWork repository.UnitOfWork,
	attendeeID int,
	isAttended bool,
) (*entity.Attendee, error) {
	attendee, err := attendeeRepo.GetByID(ctx, attendeeID)
	if err != nil {
		return nil, err
	}
	if attendee == nil {
		return nil, domainerrors.NewNotFoundError(attendeeEntityName, attendeeID)
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if isAttended {
		attendee.MarkAsAttended()
	} else {
		attendee.MarkAsNotAttended()
	}

	if _, err := unitOfWork.SaveChanges(context.WithoutCancel(ctx)); err != nil {
		return nil, err
	}

	return attendee, nil
}

func toAttendeeDTO(attendee *entity.Attendee) usecase.AttendeeDTO {
	return usecase.AttendeeDTO{
		ID:          attendee.ID(),
		AccountName: attendee.AccountName(),
		IsAttended:  attendee.IsAttended(),
	}
}
