package database

import (
	"context"

	"sampleapp/internal/domain/entity"
	domainerrors "sampleapp/internal/domain/errors"
	"sampleapp/internal/domain/repository"
	"sampleapp/internal/errors"
	"sampleapp/internal/infra/persistence/model"

	"gorm.io/gorm"
)

var attendeeMapper = &entityMapper[entity.Attendee, model.AttendeeModel]{
	table:          model.AttendeeModel{}.TableName(),
	storeGenerated: true,
	toModel:        fromAttendeeDomain,
	id:             func(m *model.AttendeeModel) any { return m.ID },
	inserted: func(a *entity.Attendee, m *model.AttendeeModel) {
		a.AssignID(m.ID)
	},
}

// attendeeRepository implements the repository.AttendeeRepository interface.
type attendeeRepository struct {
	db *gorm.DB
}

// NewAttendeeRepository is the constructor for attendeeRepository.
func NewAttendeeRepository(db *gorm.DB) repository.AttendeeRepository {
	return &attendeeRepository{
		db: db,
	}
}

// GetAll returns every attendee ordered by id.
func (repo *attendeeRepository) GetAll(ctx context.Context) ([]*entity.Attendee, error) {
	var attendeeModels []model.AttendeeModel

	if err := repo.db.WithContext(ctx).
		Order("id").
		Find(&attendeeModels).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list attendees")
	}

	attendees := make([]*entity.Attendee, 0, len(attendeeModels))
	for _, attendeeM := range attendeeModels {
		attendee, err := track(ctx, attendeeMapper, attendeeM, toAttendeeDomain)
		if err != nil {
			return nil, err
		}
		attendees = append(attendees, attendee)
	}

	return attendees, nil
}

// GetByID returns the attendee with the given id, or nil when absent.
func (repo *attendeeRepository) GetByID(ctx context.Context, id int) (*entity.Attendee, error) {
	if attendee, ok := lookup(ctx, attendeeMapper, id); ok {
		return attendee, nil
	}

	var attendeeM model.AttendeeModel
	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&attendeeM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find attendee by ID")
	}

	return track(ctx, attendeeMapper, attendeeM, toAttendeeDomain)
}

// Add schedules a new attendee for insertion.
func (repo *attendeeRepository) Add(ctx context.Context, attendee *entity.Attendee) error {
	return add(ctx, attendeeMapper, attendee)
}

func fromAttendeeDomain(attendee *entity.Attendee) model.AttendeeModel {
	return model.AttendeeModel{
		ID:          attendee.ID(),
		AccountName: attendee.AccountName(),
		IsAttended:  attendee.IsAttended(),
	}
}

func toAttendeeDomain(attendeeM *model.AttendeeModel) (*entity.Attendee, error) {
	return entity.HydrateAttendee(attendeeM.ID, attendeeM.AccountName, attendeeM.IsAttended), nil
}
