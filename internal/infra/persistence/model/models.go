// Package model contains the GORM persistence structs.
package model

// All lists every model managed by auto-migration and the query generator.
func All() []any {
	return []any{
		&AttendeeModel{},
		&WeatherForecastModel{},
	}
}
