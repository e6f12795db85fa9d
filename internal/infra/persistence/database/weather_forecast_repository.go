package database

import (
	"context"
	"time"

	"sampleapp/internal/domain/entity"
	domainerrors "sampleapp/internal/domain/errors"
	"sampleapp/internal/domain/repository"
	"sampleapp/internal/errors"
	"sampleapp/internal/infra/persistence/model"

	"cloud.google.com/go/civil"
	"gorm.io/gorm"
)

var weatherForecastMapper = &entityMapper[entity.WeatherForecast, model.WeatherForecastModel]{
	table:   model.WeatherForecastModel{}.TableName(),
	toModel: fromWeatherForecastDomain,
	id:      func(m *model.WeatherForecastModel) any { return m.ID },
}

// weatherForecastRepository implements the repository.WeatherForecastRepository interface.
type weatherForecastRepository struct {
	db *gorm.DB
}

// NewWeatherForecastRepository is the constructor for weatherForecastRepository.
func NewWeatherForecastRepository(db *gorm.DB) repository.WeatherForecastRepository {
	return &weatherForecastRepository{
		db: db,
	}
}

// GetAll returns every forecast ordered by date.
func (repo *weatherForecastRepository) GetAll(ctx context.Context) ([]*entity.WeatherForecast, error) {
	var forecastModels []model.WeatherForecastModel

	if err := repo.db.WithContext(ctx).
		Order("date_year").
		Order("date_month").
		Order("date_day").
		Order("id").
		Find(&forecastModels).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list weather forecasts")
	}

	forecasts := make([]*entity.WeatherForecast, 0, len(forecastModels))
	for _, forecastM := range forecastModels {
		forecast, err := track(ctx, weatherForecastMapper, forecastM, toWeatherForecastDomain)
		if err != nil {
			return nil, err
		}
		forecasts = append(forecasts, forecast)
	}

	return forecasts, nil
}

// GetByID returns the forecast with the given id, or nil when absent.
func (repo *weatherForecastRepository) GetByID(ctx context.Context, id entity.WeatherForecastID) (*entity.WeatherForecast, error) {
	if forecast, ok := lookup(ctx, weatherForecastMapper, id.String()); ok {
		return forecast, nil
	}

	var forecastM model.WeatherForecastModel
	if err := repo.db.WithContext(ctx).
		Where("id = ?", id.String()).
		First(&forecastM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find weather forecast by ID")
	}

	return track(ctx, weatherForecastMapper, forecastM, toWeatherForecastDomain)
}

// Add schedules a new forecast for insertion.
func (repo *weatherForecastRepository) Add(ctx context.Context, forecast *entity.WeatherForecast) error {
	return add(ctx, weatherForecastMapper, forecast)
}

func fromWeatherForecastDomain(forecast *entity.WeatherForecast) model.WeatherForecastModel {
	date := forecast.Date()
	temperature := forecast.Temperature()

	return model.WeatherForecastModel{
		ID:   forecast.ID().String(),
		Date: model.DateModel{
			Year:  date.Year,
			Month: int(date.Month),
			Day:   date.Day,
		},
		Temperature: model.TemperatureModel{
			Value: temperature.Value(),
			Unit:  temperature.Unit().String(),
		},
		Summary: forecast.Summary(),
	}
}

// toWeatherForecastDomain hydrates a stored row. A row that does not satisfy the
// entity's invariants is a store failure, never a caller input error.
func toWeatherForecastDomain(forecastM *model.WeatherForecastModel) (*entity.WeatherForecast, error) {
	id, err := entity.ParseWeatherForecastID(forecastM.ID)
	if err != nil {
		return nil, invalidStoredForecast(forecastM.ID, "id", err)
	}

	unit, err := entity.ParseTemperatureUnit(forecastM.Temperature.Unit)
	if err != nil {
		return nil, invalidStoredForecast(forecastM.ID, "temperature", err)
	}

	temperature, err := entity.NewTemperature(forecastM.Temperature.Value, unit)
	if err != nil {
		return nil, invalidStoredForecast(forecastM.ID, "temperature", err)
	}

	date := civil.Date{
		Year:  forecastM.Date.Year,
		Month: time.Month(forecastM.Date.Month),
		Day:   forecastM.Date.Day,
	}

	return entity.HydrateWeatherForecast(id, date, temperature, forecastM.Summary), nil
}

// invalidStoredForecast flattens cause into the message so the domain error kind
// of the hydration failure does not leak to callers.
func invalidStoredForecast(forecastID, field string, cause error) error {
	return domainerrors.NewDatabaseExecuteError(
		errors.Errorf("stored %s of weather forecast %q is invalid: %v", field, forecastID, cause),
		"stored weather forecast is invalid",
	)
}
