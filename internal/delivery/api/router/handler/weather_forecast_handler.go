package handler

import (
	"net/http"

	"sampleapp/internal/delivery/api/response"
	"sampleapp/internal/usecase"

	"github.com/labstack/echo/v4"
)

// WeatherForecastHandler serves the forecast API
type WeatherForecastHandler struct {
	getForecastsUC usecase.GetWeatherForecastsUsecase
}

// NewWeatherForecastHandler is the constructor for WeatherForecastHandler
func NewWeatherForecastHandler(getForecastsUC usecase.GetWeatherForecastsUsecase) *WeatherForecastHandler {
	return &WeatherForecastHandler{
		getForecastsUC: getForecastsUC,
	}
}

// ListWeatherForecasts handles listing all forecasts
func (h *WeatherForecastHandler) ListWeatherForecasts(c echo.Context) error {
	forecasts, err := h.getForecastsUC.Execute(c.Request().Context())
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, forecasts)
}
