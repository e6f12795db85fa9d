package usecase

import (
	"context"

	"cloud.google.com/go/civil"
)

// WeatherForecastDTO is the flat projection of a forecast. Both temperature
// scales are always filled, whatever unit the forecast was stored in.
type WeatherForecastDTO struct {
	ID           string     `json:"id"`
	Date         civil.Date `json:"date"`
	TemperatureC int        `json:"temperature_c"`
	TemperatureF int        `json:"temperature_f"`
	Summary      *string    `json:"summary"`
}

// GetWeatherForecastsUsecase lists weather forecasts.
type GetWeatherForecastsUsecase interface {
	Execute(ctx context.Context) ([]WeatherForecastDTO, error)
}
