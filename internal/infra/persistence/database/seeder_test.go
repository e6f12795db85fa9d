package database

import (
	"context"
	"testing"

	"sampleapp/internal/infra/persistence/model"

	"cloud.google.com/go/civil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSeeder(fx persistenceFixtures) *Seeder {
	seeder := NewSeeder(SeederParams{
		DB:           fx.db,
		Logger:       discardLogger(),
		ScopeFactory: fx.scopes,
		UnitOfWork:   fx.unitOfWork,
		AttendeeRepo: fx.attendeeRepo,
		ForecastRepo: fx.forecastRepo,
	})
	seeder.today = func() civil.Date { return civil.Date{Year: 2024, Month: 12, Day: 30} }
	seeder.intN = func(n int) int { return n - 1 }

	return seeder
}

func TestSeeder_SeedsEmptyTables(t *testing.T) {
	fx := createPersistenceFixtures(t)
	seeder := newTestSeeder(fx)

	require.NoError(t, seeder.Seed(context.Background()))

	ctx := fx.scopes.NewScope(context.Background())
	attendees, err := fx.attendeeRepo.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, attendees, 5)
	names := make([]string, 0, len(attendees))
	for _, attendee := range attendees {
		names = append(names, attendee.AccountName())
		assert.False(t, attendee.IsAttended())
	}
	assert.Equal(t, []string{"alice", "bob", "charlie", "diana", "eve"}, names)

	forecasts, err := fx.forecastRepo.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, forecasts, 5)
	assert.Equal(t, civil.Date{Year: 2024, Month: 12, Day: 31}, forecasts[0].Date())
	assert.Equal(t, civil.Date{Year: 2025, Month: 1, Day: 4}, forecasts[4].Date())
	for _, forecast := range forecasts {
		celsius, err := forecast.Temperature().ToCelsius()
		require.NoError(t, err)
		assert.Equal(t, 54, celsius)
		assert.Equal(t, "Scorching", *forecast.Summary())
	}
}

func TestSeeder_SkipsPopulatedTables(t *testing.T) {
	fx := createPersistenceFixtures(t)
	fx.seedAttendees(t, "zed")
	seeder := newTestSeeder(fx)

	require.NoError(t, seeder.Seed(context.Background()))
	require.NoError(t, seeder.Seed(context.Background()))

	var attendees, forecasts int64
	require.NoError(t, fx.db.Model(&model.AttendeeModel{}).Count(&attendees).Error)
	require.NoError(t, fx.db.Model(&model.WeatherForecastModel{}).Count(&forecasts).Error)
	assert.Equal(t, int64(1), attendees)
	assert.Equal(t, int64(5), forecasts)
}
