package database

import (
	"context"
	"log/slog"
	"math/rand/v2"
	"time"

	"sampleapp/config"
	"sampleapp/internal/domain/entity"
	"sampleapp/internal/domain/lifecycle"
	"sampleapp/internal/domain/repository"
	"sampleapp/internal/errors"
	"sampleapp/internal/infra/persistence/model"

	"cloud.google.com/go/civil"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

const (
	seedForecastDays   = 5
	seedMinTemperature = -20
	seedMaxTemperature = 55 // exclusive
)

var (
	seedSummaries = []string{
		"Freezing", "Bracing", "Chilly", "Cool", "Mild",
		"Warm", "Balmy", "Hot", "Sweltering", "Scorching",
	}
	seedAccountNames = []string{"alice", "bob", "charlie", "diana", "eve"}
)

// SeederParams defines the parameters required for the seeder
type SeederParams struct {
	fx.In

	DB           *gorm.DB
	Logger       *slog.Logger
	ScopeFactory repository.ScopeFactory
	UnitOfWork   repository.UnitOfWork
	AttendeeRepo repository.AttendeeRepository
	ForecastRepo repository.WeatherForecastRepository
}

// Seeder fills empty tables with sample data.
type Seeder struct {
	params SeederParams
	today  func() civil.Date
	intN   func(n int) int
}

// NewSeeder creates a new seeder instance
func NewSeeder(params SeederParams) *Seeder {
	return &Seeder{
		params: params,
		today:  func() civil.Date { return civil.DateOf(time.Now()) },
		intN:   rand.IntN,
	}
}

// RegisterSeeder runs the seeder on start when database.seed is enabled.
// It is an fx.Invoke target; its hook runs after the database hook has migrated the schema.
func RegisterSeeder(lc fx.Lifecycle, cfg *config.Config, seeder *Seeder) {
	if !cfg.Database.Seed {
		return
	}

	lc.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			return seeder.Seed(ctx)
		},
	})
}

// Seed inserts five forecasts and five attendees. Each table is only seeded while empty.
func (s *Seeder) Seed(ctx context.Context) error {
	ctx = s.params.ScopeFactory.NewScope(ctx)

	forecastsEmpty, err := s.isEmpty(ctx, &model.WeatherForecastModel{})
	if err != nil {
		return err
	}
	if forecastsEmpty {
		if err := s.addForecasts(ctx); err != nil {
			return err
		}
	}

	attendeesEmpty, err := s.isEmpty(ctx, &model.AttendeeModel{})
	if err != nil {
		return err
	}
	if attendeesEmpty {
		if err := s.addAttendees(ctx); err != nil {
			return err
		}
	}

	saved, err := s.params.UnitOfWork.SaveChanges(ctx)
	if err != nil {
		return errors.Wrap(err, "failed to save seed data")
	}

	if saved > 0 {
		s.params.Logger.InfoContext(ctx, "Seeded sample data", slog.Int("rows", saved))
	}

	return nil
}

func (s *Seeder) isEmpty(ctx context.Context, m any) (bool, error) {
	var count int64
	if err := s.params.DB.WithContext(ctx).Model(m).Count(&count).Error; err != nil {
		return false, errors.Wrap(err, "failed to count seed table rows")
	}

	return count == 0, nil
}

func (s *Seeder) addForecasts(ctx context.Context) error {
	today := s.today()
	for day := 1; day <= seedForecastDays; day++ {
		temperature, err := entity.NewTemperature(
			seedMinTemperature+s.intN(seedMaxTemperature-seedMinTemperature),
			entity.Celsius,
		)
		if err != nil {
			return err
		}
		summary := seedSummaries[s.intN(len(seedSummaries))]

		forecast, err := entity.NewWeatherForecast(entity.NewWeatherForecastID(), today.AddDays(day), temperature, &summary)
		if err != nil {
			return err
		}
		if err := s.params.ForecastRepo.Add(ctx, forecast); err != nil {
			return err
		}
	}

	return nil
}

func (s *Seeder) addAttendees(ctx context.Context) error {
	for _, name := range seedAccountNames {
		attendee, err := entity.NewAttendee(name)
		if err != nil {
			return err
		}
		if err := s.params.AttendeeRepo.Add(ctx, attendee); err != nil {
			return err
		}
	}

	return nil
}
