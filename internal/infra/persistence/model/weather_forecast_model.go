package model

// WeatherForecastModel is the GORM-specific struct for the 'weather_forecasts' table.
// The date and the temperature are owned by the row and stored as prefixed columns.
type WeatherForecastModel struct {
	ID          string           `gorm:"type:varchar(36);primaryKey"`
	Date        DateModel        `gorm:"embedded;embeddedPrefix:date_"`
	Temperature TemperatureModel `gorm:"embedded;embeddedPrefix:temperature_"`
	Summary     *string          `gorm:"type:varchar(255)"`
}

// DateModel holds a calendar day as plain numbers, so every year sorts and
// round-trips on both dialects.
type DateModel struct {
	Year  int `gorm:"not null;index:idx_weather_forecasts_date,priority:1"`
	Month int `gorm:"not null;index:idx_weather_forecasts_date,priority:2"`
	Day   int `gorm:"not null;index:idx_weather_forecasts_date,priority:3"`
}

// TemperatureModel holds the columns of an embedded temperature.
type TemperatureModel struct {
	Value int    `gorm:"not null"`
	Unit  string `gorm:"type:varchar(16);not null"`
}

// TableName explicitly sets the table name for GORM.
func (WeatherForecastModel) TableName() string {
	return "weather_forecasts"
}
