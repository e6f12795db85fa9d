package impl

import (
	"context"

	"sampleapp/internal/domain/entity"
	"sampleapp/internal/domain/repository"
	"sampleapp/internal/errors"
	"sampleapp/internal/usecase"
)

type getWeatherForecastsService struct {
	forecastRepo repository.WeatherForecastRepository
}

// NewGetWeatherForecastsService creates a new forecast listing use case
func NewGetWeatherForecastsService(forecastRepo repository.WeatherForecastRepository) usecase.GetWeatherForecastsUsecase {
	return &getWeatherForecastsService{
		forecastRepo: forecastRepo,
	}
}

// Execute returns every forecast with both temperature projections computed
func (s *getWeatherForecastsService) Execute(ctx context.Context) ([]usecase.WeatherForecastDTO, error) {
	forecasts, err := s.forecastRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	dtos := make([]usecase.WeatherForecastDTO, 0, len(forecasts))
	for _, forecast := range forecasts {
		dto, err := toWeatherForecastDTO(forecast)
		if err != nil {
			return nil, err
		}
		dtos = append(dtos, dto)
	}

	return dtos, nil
}

func toWeatherForecastDTO(forecast *entity.WeatherForecast) (usecase.WeatherForecastDTO, error) {
	temperature := forecast.Temperature()

	celsius, err := temperature.ToCelsius()
	if err != nil {
		return usecase.WeatherForecastDTO{}, errors.Wrapf(err, "forecast %s", forecast.ID())
	}
	fahrenheit, err := temperature.ToFahrenheit()
	if err != nil {
		return usecase.WeatherForecastDTO{}, errors.Wrapf(err, "forecast %s", forecast.ID())
	}

	return usecase.WeatherForecastDTO{
		ID:           forecast.ID().String(),
		Date:         forecast.Date(),
		TemperatureC: celsius,
		TemperatureF: fahrenheit,
		Summary:      forecast.Summary(),
	}, nil
}
