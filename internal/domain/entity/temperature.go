package entity

import (
	"strings"

	domainerrors "sampleapp/internal/domain/errors"
)

// celsiusPerFahrenheitDegree approximates 5/9. Conversions truncate toward
// zero, so outputs are pinned to this constant rather than the exact ratio.
const celsiusPerFahrenheitDegree = 0.5556

// TemperatureUnit is the scale a Temperature value is expressed in.
// The zero value is not a unit; it marks a missing temperature.
type TemperatureUnit int

const (
	Celsius TemperatureUnit = iota + 1
	Fahrenheit
)

// String returns the storage name of the unit.
func (u TemperatureUnit) String() string {
	switch u {
	case Celsius:
		return "Celsius"
	case Fahrenheit:
		return "Fahrenheit"
	default:
		return "Unknown"
	}
}

// Valid reports whether u is one of the defined units.
func (u TemperatureUnit) Valid() bool {
	return u == Celsius || u == Fahrenheit
}

// ParseTemperatureUnit accepts the names produced by String, case-insensitively.
func ParseTemperatureUnit(s string) (TemperatureUnit, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "celsius", "c":
		return Celsius, nil
	case "fahrenheit", "f":
		return Fahrenheit, nil
	default:
		return 0, domainerrors.ErrInvalidArgument.WithDetails("unknown temperature unit: " + s)
	}
}

// Temperature is an immutable value object. Two temperatures with the same
// value and unit are equal under ==.
type Temperature struct {
	value int
	unit  TemperatureUnit
}

// NewTemperature builds a Temperature, rejecting units outside the enumeration.
func NewTemperature(value int, unit TemperatureUnit) (Temperature, error) {
	if !unit.Valid() {
		return Temperature{}, domainerrors.ErrInvalidArgument.WithDetails("unknown temperature unit: " + unit.String())
	}

	return Temperature{value: value, unit: unit}, nil
}

// MustTemperature is NewTemperature for values known to be valid, such as
// literals in seed data and tests.
func MustTemperature(value int, unit TemperatureUnit) Temperature {
	t, err := NewTemperature(value, unit)
	if err != nil {
		panic(err)
	}

	return t
}

func (t Temperature) Value() int {
	return t.value
}

func (t Temperature) Unit() TemperatureUnit {
	return t.unit
}

// IsZero reports whether t is the zero value, i.e. no temperature at all.
func (t Temperature) IsZero() bool {
	return t == Temperature{}
}

// ToCelsius projects t onto the Celsius scale.
func (t Temperature) ToCelsius() (int, error) {
	switch t.unit {
	case Celsius:
		return t.value, nil
	case Fahrenheit:
		return int(float64(t.value-32) * celsiusPerFahrenheitDegree), nil
	default:
		return 0, domainerrors.ErrInvalidArgument.WithDetails("temperature has no unit")
	}
}

// ToFahrenheit projects t onto the Fahrenheit scale.
func (t Temperature) ToFahrenheit() (int, error) {
	switch t.unit {
	case Celsius:
		return 32 + int(float64(t.value)/celsiusPerFahrenheitDegree), nil
	case Fahrenheit:
		return t.value, nil
	default:
		return 0, domainerrors.ErrInvalidArgument.WithDetails("temperature has no unit")
	}
}
