package handler

import (
	"net/http"

	"sampleapp/internal/delivery/api/view"
	"sampleapp/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// PageHandlerParams holds dependencies for PageHandler, injected by Fx.
type PageHandlerParams struct {
	fx.In

	GetForecastsUC     usecase.GetWeatherForecastsUsecase
	GetAttendeesUC     usecase.GetAttendeesUsecase
	UpdateAttendanceUC usecase.UpdateAttendeeAttendanceUsecase
}

// PageHandler serves the server-rendered pages
type PageHandler struct {
	getForecastsUC     usecase.GetWeatherForecastsUsecase
	getAttendeesUC     usecase.GetAttendeesUsecase
	updateAttendanceUC usecase.UpdateAttendeeAttendanceUsecase
}

// NewPageHandler is the constructor for PageHandler
func NewPageHandler(params PageHandlerParams) *PageHandler {
	return &PageHandler{
		getForecastsUC:     params.GetForecastsUC,
		getAttendeesUC:     params.GetAttendeesUC,
		updateAttendanceUC: params.UpdateAttendanceUC,
	}
}

// AttendanceForm is the toggle form posted from the attendees page
type AttendanceForm struct {
	IsAttended *bool `form:"is_attended" validate:"required"`
}

// WeatherPage renders the forecast table
func (h *PageHandler) WeatherPage(c echo.Context) error {
	forecasts, err := h.getForecastsUC.Execute(c.Request().Context())
	if err != nil {
		return err
	}

	return c.Render(http.StatusOK, view.WeatherPage, forecasts)
}

// AttendeesPage renders the attendee table
func (h *PageHandler) AttendeesPage(c echo.Context) error {
	attendees, err := h.getAttendeesUC.Execute(c.Request().Context())
	if err != nil {
		return err
	}

	return c.Render(http.StatusOK, view.AttendeesPage, attendees)
}

// ToggleAttendance applies the posted flag and sends the browser back to the attendee table
func (h *PageHandler) ToggleAttendance(c echo.Context) error {
	attendeeID, err := parseAttendeeID(c)
	if err != nil {
		return err
	}

	var form AttendanceForm
	if err := (&echo.DefaultBinder{}).BindBody(c, &form); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid attendance form")
	}
	if err := c.Validate(&form); err != nil {
		return err
	}

	if err := h.updateAttendanceUC.Execute(c.Request().Context(), attendeeID, *form.IsAttended); err != nil {
		return err
	}

	return c.Redirect(http.StatusSeeOther, "/attendees")
}
