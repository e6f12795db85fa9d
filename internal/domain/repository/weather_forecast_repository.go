package repository

import (
	"context"

	"sampleapp/internal/domain/entity"
)

// WeatherForecastRepository defines the persistence capabilities for weather forecasts.
type WeatherForecastRepository interface {
	// GetAll returns every forecast ordered by date.
	GetAll(ctx context.Context) ([]*entity.WeatherForecast, error)

	// GetByID returns the forecast with the given id, or (nil, nil) when absent.
	GetByID(ctx context.Context, id entity.WeatherForecastID) (*entity.WeatherForecast, error)

	// Add schedules a new forecast for insertion. The id is chosen by the caller.
	Add(ctx context.Context, forecast *entity.WeatherForecast) error
}
