package entity

import (
	domainerrors "sampleapp/internal/domain/errors"

	"cloud.google.com/go/civil"
)

// WeatherForecast is a forecast for a single calendar day.
type WeatherForecast struct {
	id          WeatherForecastID
	date        civil.Date
	temperature Temperature
	summary     *string
}

// NewWeatherForecast creates a forecast. The id and temperature are required;
// any date is accepted and the summary may be nil.
func NewWeatherForecast(id WeatherForecastID, date civil.Date, temperature Temperature, summary *string) (*WeatherForecast, error) {
	if id.IsZero() {
		return nil, domainerrors.ErrInvalidArgument.WithDetails("weather forecast id is required")
	}
	if temperature.IsZero() {
		return nil, domainerrors.ErrInvalidArgument.WithDetails("temperature is required")
	}

	return &WeatherForecast{
		id:          id,
		date:        date,
		temperature: temperature,
		summary:     copyString(summary),
	}, nil
}

// HydrateWeatherForecast rebuilds a stored forecast. Only persistence code should call it.
func HydrateWeatherForecast(id WeatherForecastID, date civil.Date, temperature Temperature, summary *string) *WeatherForecast {
	return &WeatherForecast{
		id:          id,
		date:        date,
		temperature: temperature,
		summary:     copyString(summary),
	}
}

func (f *WeatherForecast) ID() WeatherForecastID {
	return f.id
}

func (f *WeatherForecast) Date() civil.Date {
	return f.date
}

func (f *WeatherForecast) Temperature() Temperature {
	return f.temperature
}

// Summary returns a copy of the summary, or nil when there is none.
func (f *WeatherForecast) Summary() *string {
	return copyString(f.summary)
}

// UpdateSummary replaces the summary; nil clears it.
func (f *WeatherForecast) UpdateSummary(summary *string) {
	f.summary = copyString(summary)
}

// UpdateTemperature replaces the temperature. A missing temperature is rejected.
func (f *WeatherForecast) UpdateTemperature(temperature Temperature) error {
	if temperature.IsZero() {
		return domainerrors.ErrInvalidArgument.WithDetails("temperature is required")
	}
	f.temperature = temperature

	return nil
}

func copyString(s *string) *string {
	if s == nil {
		return nil
	}
	v := *s

	return &v
}
