package database

import (
	"context"
	"testing"

	"sampleapp/internal/domain/entity"
	domainerrors "sampleapp/internal/domain/errors"
	"sampleapp/internal/domain/repository"
	"sampleapp/internal/infra/persistence/model"

	"cloud.google.com/go/civil"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// persistenceFixtures holds the collaborators wired against one test database.
type persistenceFixtures struct {
	db           *gorm.DB
	scopes       repository.ScopeFactory
	unitOfWork   repository.UnitOfWork
	attendeeRepo repository.AttendeeRepository
	forecastRepo repository.WeatherForecastRepository
}

func createPersistenceFixtures(t *testing.T) persistenceFixtures {
	db := newTestDB(t)

	return persistenceFixtures{
		db:           db,
		scopes:       NewScopeFactory(),
		unitOfWork:   NewUnitOfWork(db, discardLogger()),
		attendeeRepo: NewAttendeeRepository(db),
		forecastRepo: NewWeatherForecastRepository(db),
	}
}

func (fx persistenceFixtures) seedAttendees(t *testing.T, names ...string) []*entity.Attendee {
	t.Helper()

	ctx := fx.scopes.NewScope(context.Background())
	attendees := make([]*entity.Attendee, 0, len(names))
	for _, name := range names {
		attendee, err := entity.NewAttendee(name)
		require.NoError(t, err)
		require.NoError(t, fx.attendeeRepo.Add(ctx, attendee))
		attendees = append(attendees, attendee)
	}

	saved, err := fx.unitOfWork.SaveChanges(ctx)
	require.NoError(t, err)
	require.Equal(t, len(names), saved)

	return attendees
}

func TestUnitOfWork_AddAssignsStoreIDs(t *testing.T) {
	fx := createPersistenceFixtures(t)

	attendees := fx.seedAttendees(t, "alice", "bob")
	assert.Positive(t, attendees[0].ID())
	assert.Positive(t, attendees[1].ID())
	assert.NotEqual(t, attendees[0].ID(), attendees[1].ID())

	ctx := fx.scopes.NewScope(context.Background())
	found, err := fx.attendeeRepo.GetByID(ctx, attendees[1].ID())
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, "bob", found.AccountName())
	assert.False(t, found.IsAttended())
}

func TestUnitOfWork_PersistsMutationForFreshScope(t *testing.T) {
	fx := createPersistenceFixtures(t)
	id := fx.seedAttendees(t, "alice")[0].ID()

	ctx := fx.scopes.NewScope(context.Background())
	attendee, err := fx.attendeeRepo.GetByID(ctx, id)
	require.NoError(t, err)
	attendee.MarkAsAttended()

	saved, err := fx.unitOfWork.SaveChanges(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, saved)

	// Nothing left to write.
	saved, err = fx.unitOfWork.SaveChanges(ctx)
	require.NoError(t, err)
	assert.Zero(t, saved)

	fresh := fx.scopes.NewScope(context.Background())
	reloaded, err := fx.attendeeRepo.GetByID(fresh, id)
	require.NoError(t, err)
	assert.True(t, reloaded.IsAttended())
}

func TestUnitOfWork_UnchangedEntitiesAreNotWritten(t *testing.T) {
	fx := createPersistenceFixtures(t)
	fx.seedAttendees(t, "alice", "bob")

	ctx := fx.scopes.NewScope(context.Background())
	attendees, err := fx.attendeeRepo.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, attendees, 2)

	// An idempotent transition leaves the row as loaded.
	attendees[0].MarkAsNotAttended()

	saved, err := fx.unitOfWork.SaveChanges(ctx)
	require.NoError(t, err)
	assert.Zero(t, saved)
}

func TestUnitOfWork_IdentityMap(t *testing.T) {
	fx := createPersistenceFixtures(t)
	id := fx.seedAttendees(t, "alice")[0].ID()

	ctx := fx.scopes.NewScope(context.Background())
	first, err := fx.attendeeRepo.GetByID(ctx, id)
	require.NoError(t, err)
	second, err := fx.attendeeRepo.GetByID(ctx, id)
	require.NoError(t, err)
	assert.Same(t, first, second)

	first.MarkAsAttended()
	all, err := fx.attendeeRepo.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Same(t, first, all[0])
	assert.True(t, all[0].IsAttended())

	other, err := fx.attendeeRepo.GetByID(fx.scopes.NewScope(context.Background()), id)
	require.NoError(t, err)
	assert.NotSame(t, first, other)
	assert.False(t, other.IsAttended())
}

func TestUnitOfWork_AddedEntityJoinsIdentityMap(t *testing.T) {
	fx := createPersistenceFixtures(t)

	ctx := fx.scopes.NewScope(context.Background())
	attendee, err := entity.NewAttendee("carol")
	require.NoError(t, err)
	require.NoError(t, fx.attendeeRepo.Add(ctx, attendee))
	require.NoError(t, fx.attendeeRepo.Add(ctx, attendee))

	saved, err := fx.unitOfWork.SaveChanges(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, saved)

	found, err := fx.attendeeRepo.GetByID(ctx, attendee.ID())
	require.NoError(t, err)
	assert.Same(t, attendee, found)
}

func TestUnitOfWork_RequiresScope(t *testing.T) {
	fx := createPersistenceFixtures(t)
	ctx := context.Background()

	_, err := fx.unitOfWork.SaveChanges(ctx)
	assert.True(t, errors.Is(err, domainerrors.ErrInternalError))

	attendee, err := entity.NewAttendee("alice")
	require.NoError(t, err)
	assert.True(t, errors.Is(fx.attendeeRepo.Add(ctx, attendee), domainerrors.ErrInternalError))
}

func TestUnitOfWork_ReadsWithoutScopeAreUntracked(t *testing.T) {
	fx := createPersistenceFixtures(t)
	id := fx.seedAttendees(t, "alice")[0].ID()

	first, err := fx.attendeeRepo.GetByID(context.Background(), id)
	require.NoError(t, err)
	second, err := fx.attendeeRepo.GetByID(context.Background(), id)
	require.NoError(t, err)
	assert.NotSame(t, first, second)
	assert.Equal(t, first, second)
}

func TestUnitOfWork_UpdateOfDeletedRowConflicts(t *testing.T) {
	fx := createPersistenceFixtures(t)
	id := fx.seedAttendees(t, "alice")[0].ID()

	ctx := fx.scopes.NewScope(context.Background())
	attendee, err := fx.attendeeRepo.GetByID(ctx, id)
	require.NoError(t, err)

	require.NoError(t, fx.db.Delete(&model.AttendeeModel{}, id).Error)
	attendee.MarkAsAttended()

	_, err = fx.unitOfWork.SaveChanges(ctx)
	assert.True(t, errors.Is(err, domainerrors.ErrConflict))
}

func TestUnitOfWork_FailedSaveIsAtomic(t *testing.T) {
	fx := createPersistenceFixtures(t)
	ids := []int{}
	for _, a := range fx.seedAttendees(t, "alice", "bob") {
		ids = append(ids, a.ID())
	}

	ctx := fx.scopes.NewScope(context.Background())
	alice, err := fx.attendeeRepo.GetByID(ctx, ids[0])
	require.NoError(t, err)
	bob, err := fx.attendeeRepo.GetByID(ctx, ids[1])
	require.NoError(t, err)

	require.NoError(t, fx.db.Delete(&model.AttendeeModel{}, ids[1]).Error)
	alice.MarkAsAttended()
	bob.MarkAsAttended()

	_, err = fx.unitOfWork.SaveChanges(ctx)
	require.Error(t, err)

	reloaded, err := fx.attendeeRepo.GetByID(fx.scopes.NewScope(context.Background()), ids[0])
	require.NoError(t, err)
	assert.False(t, reloaded.IsAttended())
}

func TestGetByID_Missing(t *testing.T) {
	fx := createPersistenceFixtures(t)
	ctx := fx.scopes.NewScope(context.Background())

	attendee, err := fx.attendeeRepo.GetByID(ctx, 999)
	require.NoError(t, err)
	assert.Nil(t, attendee)

	forecast, err := fx.forecastRepo.GetByID(ctx, entity.NewWeatherForecastID())
	require.NoError(t, err)
	assert.Nil(t, forecast)
}

func TestWeatherForecastRepository_RoundTripAndOrder(t *testing.T) {
	fx := createPersistenceFixtures(t)

	ctx := fx.scopes.NewScope(context.Background())
	summary := "Balmy"
	later, err := entity.NewWeatherForecast(entity.NewWeatherForecastID(), civil.Date{Year: 2024, Month: 6, Day: 3}, entity.MustTemperature(77, entity.Fahrenheit), &summary)
	require.NoError(t, err)
	earlier, err := entity.NewWeatherForecast(entity.NewWeatherForecastID(), civil.Date{Year: 2024, Month: 6, Day: 1}, entity.MustTemperature(-5, entity.Celsius), nil)
	require.NoError(t, err)

	require.NoError(t, fx.forecastRepo.Add(ctx, later))
	require.NoError(t, fx.forecastRepo.Add(ctx, earlier))
	saved, err := fx.unitOfWork.SaveChanges(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, saved)

	fresh := fx.scopes.NewScope(context.Background())
	forecasts, err := fx.forecastRepo.GetAll(fresh)
	require.NoError(t, err)
	require.Len(t, forecasts, 2)

	assert.Equal(t, earlier.ID(), forecasts[0].ID())
	assert.Equal(t, earlier.Date(), forecasts[0].Date())
	assert.Equal(t, earlier.Temperature(), forecasts[0].Temperature())
	assert.Nil(t, forecasts[0].Summary())

	assert.Equal(t, later.ID(), forecasts[1].ID())
	assert.Equal(t, entity.MustTemperature(77, entity.Fahrenheit), forecasts[1].Temperature())
	require.NotNil(t, forecasts[1].Summary())
	assert.Equal(t, "Balmy", *forecasts[1].Summary())

	byID, err := fx.forecastRepo.GetByID(fresh, later.ID())
	require.NoError(t, err)
	assert.Same(t, forecasts[1], byID)
}

func TestWeatherForecastRepository_UpdatesTrackedForecast(t *testing.T) {
	fx := createPersistenceFixtures(t)

	ctx := fx.scopes.NewScope(context.Background())
	forecast, err := entity.NewWeatherForecast(entity.NewWeatherForecastID(), civil.Date{Year: 2024, Month: 6, Day: 1}, entity.MustTemperature(10, entity.Celsius), nil)
	require.NoError(t, err)
	require.NoError(t, fx.forecastRepo.Add(ctx, forecast))
	_, err = fx.unitOfWork.SaveChanges(ctx)
	require.NoError(t, err)

	summary := "Cool"
	forecast.UpdateSummary(&summary)
	require.NoError(t, forecast.UpdateTemperature(entity.MustTemperature(50, entity.Fahrenheit)))

	saved, err := fx.unitOfWork.SaveChanges(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, saved)

	reloaded, err := fx.forecastRepo.GetByID(fx.scopes.NewScope(context.Background()), forecast.ID())
	require.NoError(t, err)
	assert.Equal(t, entity.MustTemperature(50, entity.Fahrenheit), reloaded.Temperature())
	assert.Equal(t, "Cool", *reloaded.Summary())
}

func TestWeatherForecastRepository_DuplicateKey(t *testing.T) {
	fx := createPersistenceFixtures(t)

	id := entity.NewWeatherForecastID()
	date := civil.Date{Year: 2024, Month: 6, Day: 1}
	newForecast := func() *entity.WeatherForecast {
		forecast, err := entity.NewWeatherForecast(id, date, entity.MustTemperature(1, entity.Celsius), nil)
		require.NoError(t, err)

		return forecast
	}

	ctx := fx.scopes.NewScope(context.Background())
	require.NoError(t, fx.forecastRepo.Add(ctx, newForecast()))
	assert.True(t, errors.Is(fx.forecastRepo.Add(ctx, newForecast()), domainerrors.ErrConflict))
	_, err := fx.unitOfWork.SaveChanges(ctx)
	require.NoError(t, err)
	assert.True(t, errors.Is(fx.forecastRepo.Add(ctx, newForecast()), domainerrors.ErrConflict))

	other := fx.scopes.NewScope(context.Background())
	require.NoError(t, fx.forecastRepo.Add(other, newForecast()))
	_, err = fx.unitOfWork.SaveChanges(other)
	assert.True(t, errors.Is(err, domainerrors.ErrConflict))
}

func TestWeatherForecastRepository_AnyDateRoundTripsInOrder(t *testing.T) {
	fx := createPersistenceFixtures(t)

	dates := []civil.Date{
		{Year: 10000, Month: 1, Day: 1},
		{Year: 2024, Month: 6, Day: 1},
		{},
		{Year: -44, Month: 3, Day: 15},
		{Year: 2024, Month: 12, Day: 31},
	}

	ctx := fx.scopes.NewScope(context.Background())
	for _, date := range dates {
		forecast, err := entity.NewWeatherForecast(entity.NewWeatherForecastID(), date, entity.MustTemperature(10, entity.Celsius), nil)
		require.NoError(t, err)
		require.NoError(t, fx.forecastRepo.Add(ctx, forecast))
	}
	_, err := fx.unitOfWork.SaveChanges(ctx)
	require.NoError(t, err)

	forecasts, err := fx.forecastRepo.GetAll(fx.scopes.NewScope(context.Background()))
	require.NoError(t, err)

	got := make([]civil.Date, 0, len(forecasts))
	for _, forecast := range forecasts {
		got = append(got, forecast.Date())
	}
	assert.Equal(t, []civil.Date{
		{Year: -44, Month: 3, Day: 15},
		{},
		{Year: 2024, Month: 6, Day: 1},
		{Year: 2024, Month: 12, Day: 31},
		{Year: 10000, Month: 1, Day: 1},
	}, got)
}

func TestWeatherForecastRepository_InvalidStoredRowIsStoreFailure(t *testing.T) {
	fx := createPersistenceFixtures(t)

	id := entity.NewWeatherForecastID()
	require.NoError(t, fx.db.Create(&model.WeatherForecastModel{
		ID:          id.String(),
		Date:        model.DateModel{Year: 2024, Month: 6, Day: 1},
		Temperature: model.TemperatureModel{Value: 300, Unit: "Kelvin"},
	}).Error)

	_, err := fx.forecastRepo.GetAll(fx.scopes.NewScope(context.Background()))
	assertStoreFailure(t, err)

	_, err = fx.forecastRepo.GetByID(fx.scopes.NewScope(context.Background()), id)
	assertStoreFailure(t, err)
}

func assertStoreFailure(t *testing.T, err error) {
	t.Helper()

	require.Error(t, err)
	assert.False(t, errors.Is(err, domainerrors.ErrInvalidArgument))

	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, 500, appErr.HTTPCode())
	assert.Equal(t, "DATABASE_EXECUTE_FAILED", appErr.ErrorCode())
	assert.Contains(t, err.Error(), "Kelvin")
}
