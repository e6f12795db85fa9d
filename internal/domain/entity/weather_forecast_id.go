package entity

import (
	domainerrors "sampleapp/internal/domain/errors"

	"github.com/google/uuid"
)

// WeatherForecastID identifies a WeatherForecast. It is a distinct type so a
// forecast id cannot be passed where another entity's id is expected.
// The zero value is a missing id.
type WeatherForecastID struct {
	value uuid.UUID
}

// NewWeatherForecastID generates a fresh random identifier.
func NewWeatherForecastID() WeatherForecastID {
	return WeatherForecastID{value: uuid.New()}
}

// WeatherForecastIDFrom wraps an existing UUID, rejecting the nil UUID.
func WeatherForecastIDFrom(value uuid.UUID) (WeatherForecastID, error) {
	if value == uuid.Nil {
		return WeatherForecastID{}, domainerrors.ErrInvalidArgument.WithDetails("weather forecast id must not be nil")
	}

	return WeatherForecastID{value: value}, nil
}

// ParseWeatherForecastID parses the canonical string form.
func ParseWeatherForecastID(s string) (WeatherForecastID, error) {
	value, err := uuid.Parse(s)
	if err != nil {
		return WeatherForecastID{}, domainerrors.ErrInvalidArgument.WithDetails("malformed weather forecast id")
	}

	return WeatherForecastIDFrom(value)
}

// Value returns the underlying token.
func (id WeatherForecastID) Value() uuid.UUID {
	return id.value
}

func (id WeatherForecastID) String() string {
	return id.value.String()
}

// IsZero reports whether id is the missing id.
func (id WeatherForecastID) IsZero() bool {
	return id.value == uuid.Nil
}
