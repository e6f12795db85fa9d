// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"net/http"

	"sampleapp/internal/delivery/api/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AttendeeHandler        *handler.AttendeeHandler
	WeatherForecastHandler *handler.WeatherForecastHandler
	PageHandler            *handler.PageHandler
}

// router holds all the handlers that need to be registered.
type router struct {
	attendeeHandler        *handler.AttendeeHandler
	weatherForecastHandler *handler.WeatherForecastHandler
	pageHandler            *handler.PageHandler
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		attendeeHandler:        params.AttendeeHandler,
		weatherForecastHandler: params.WeatherForecastHandler,
		pageHandler:            params.PageHandler,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// API v1 routes
	apiV1 := e.Group("/api/v1")

	apiV1.GET("/weather-forecasts", r.weatherForecastHandler.ListWeatherForecasts)

	attendeesGroup := apiV1.Group("/attendees")
	{
		attendeesGroup.GET("", r.attendeeHandler.ListAttendees)
		attendeesGroup.PUT("/:id/attendance", r.attendeeHandler.UpdateAttendance)
		attendeesGroup.GET("/:id/qr", r.attendeeHandler.GetCheckInQR)
		attendeesGroup.POST("/check-in", r.attendeeHandler.CheckIn)
	}
}

// RegisterPageRoutes sets up the server-rendered pages.
func (r *router) RegisterPageRoutes(e *echo.Echo) {
	e.GET("/", func(c echo.Context) error {
		return c.Redirect(http.StatusFound, "/weather")
	})
	e.GET("/weather", r.pageHandler.WeatherPage)
	e.GET("/attendees", r.pageHandler.AttendeesPage)
	e.POST("/attendees/:id/attendance", r.pageHandler.ToggleAttendance)
}
