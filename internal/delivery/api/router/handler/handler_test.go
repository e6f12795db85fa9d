package handler

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	apimiddleware "sampleapp/internal/delivery/api/middleware"
	"sampleapp/internal/delivery/api/response"
	"sampleapp/internal/delivery/api/validator"
	"sampleapp/internal/delivery/api/view"
	domainerrors "sampleapp/internal/domain/errors"
	mockusecase "sampleapp/internal/mocks/usecase"
	"sampleapp/internal/usecase"

	"cloud.google.com/go/civil"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type handlerFixtures struct {
	getAttendees     *mockusecase.MockGetAttendeesUsecase
	updateAttendance *mockusecase.MockUpdateAttendeeAttendanceUsecase
	checkIn          *mockusecase.MockCheckInAttendeeUsecase
	getCheckInQR     *mockusecase.MockGetAttendeeCheckInQRUsecase
	getForecasts     *mockusecase.MockGetWeatherForecastsUsecase
	echo             *echo.Echo
}

func newHandlerFixtures(t *testing.T) *handlerFixtures {
	t.Helper()

	f := &handlerFixtures{
		getAttendees:     mockusecase.NewMockGetAttendeesUsecase(t),
		updateAttendance: mockusecase.NewMockUpdateAttendeeAttendanceUsecase(t),
		checkIn:          mockusecase.NewMockCheckInAttendeeUsecase(t),
		getCheckInQR:     mockusecase.NewMockGetAttendeeCheckInQRUsecase(t),
		getForecasts:     mockusecase.NewMockGetWeatherForecastsUsecase(t),
	}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	attendees := NewAttendeeHandler(AttendeeHandlerParams{
		GetAttendeesUC:     f.getAttendees,
		UpdateAttendanceUC: f.updateAttendance,
		CheckInUC:          f.checkIn,
		GetCheckInQRUC:     f.getCheckInQR,
		Logger:             logger,
	})
	forecasts := NewWeatherForecastHandler(f.getForecasts)
	pages := NewPageHandler(PageHandlerParams{
		GetForecastsUC:     f.getForecasts,
		GetAttendeesUC:     f.getAttendees,
		UpdateAttendanceUC: f.updateAttendance,
	})

	renderer, err := view.NewRenderer()
	require.NoError(t, err)

	e := echo.New()
	e.Validator = validator.New()
	e.Renderer = renderer
	e.HTTPErrorHandler = apimiddleware.NewErrorMiddleware(logger).HandleHTTPError

	e.GET("/health", HealthCheck)
	e.GET("/api/v1/weather-forecasts", forecasts.ListWeatherForecasts)
	e.GET("/api/v1/attendees", attendees.ListAttendees)
	e.PUT("/api/v1/attendees/:id/attendance", attendees.UpdateAttendance)
	e.GET("/api/v1/attendees/:id/qr", attendees.GetCheckInQR)
	e.POST("/api/v1/attendees/check-in", attendees.CheckIn)
	e.GET("/weather", pages.WeatherPage)
	e.GET("/attendees", pages.AttendeesPage)
	e.POST("/attendees/:id/attendance", pages.ToggleAttendance)
	f.echo = e

	return f
}

func (f *handlerFixtures) do(method, target, contentType, body string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if contentType != "" {
		req.Header.Set(echo.HeaderContentType, contentType)
	}
	rec := httptest.NewRecorder()
	f.echo.ServeHTTP(rec, req)

	return rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) response.ErrorInfo {
	t.Helper()

	var body struct {
		Error response.ErrorInfo `json:"error"`
		Meta  response.MetaInfo  `json:"meta"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.NotEmpty(t, body.Meta.RequestID)

	return body.Error
}

func TestHealthCheck(t *testing.T) {
	f := newHandlerFixtures(t)

	rec := f.do(http.MethodGet, "/health", "", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"ok"`)
}

func TestAttendeeHandler_ListAttendees(t *testing.T) {
	f := newHandlerFixtures(t)
	f.getAttendees.EXPECT().Execute(mock.Anything).Return([]usecase.AttendeeDTO{
		{ID: 1, AccountName: "alice", IsAttended: true},
		{ID: 2, AccountName: "bob"},
	}, nil)

	rec := f.do(http.MethodGet, "/api/v1/attendees", "", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Data []usecase.AttendeeDTO `json:"data"`
		Meta response.MetaInfo     `json:"meta"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, []usecase.AttendeeDTO{
		{ID: 1, AccountName: "alice", IsAttended: true},
		{ID: 2, AccountName: "bob"},
	}, body.Data)
	assert.NotEmpty(t, body.Meta.RequestID)
}

func TestAttendeeHandler_ListAttendees_Failure(t *testing.T) {
	f := newHandlerFixtures(t)
	f.getAttendees.EXPECT().Execute(mock.Anything).Return(nil, assert.AnError)

	rec := f.do(http.MethodGet, "/api/v1/attendees", "", "")

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	info := decodeError(t, rec)
	assert.Equal(t, "INTERNAL_ERROR", info.Code)
	assert.Nil(t, info.Details)
}

func TestAttendeeHandler_UpdateAttendance(t *testing.T) {
	tests := []struct {
		name       string
		target     string
		body       string
		setup      func(f *handlerFixtures)
		wantStatus int
		wantCode   string
	}{
		{
			name:   "sets flag",
			target: "/api/v1/attendees/3/attendance",
			body:   `{"is_attended":true}`,
			setup: func(f *handlerFixtures) {
				f.updateAttendance.EXPECT().Execute(mock.Anything, 3, true).Return(nil)
			},
			wantStatus: http.StatusNoContent,
		},
		{
			name:   "explicit false is accepted",
			target: "/api/v1/attendees/3/attendance",
			body:   `{"is_attended":false}`,
			setup: func(f *handlerFixtures) {
				f.updateAttendance.EXPECT().Execute(mock.Anything, 3, false).Return(nil)
			},
			wantStatus: http.StatusNoContent,
		},
		{
			name:       "missing flag",
			target:     "/api/v1/attendees/3/attendance",
			body:       `{}`,
			wantStatus: http.StatusBadRequest,
			wantCode:   "VALIDATION_FAILED",
		},
		{
			name:       "malformed body",
			target:     "/api/v1/attendees/3/attendance",
			body:       `{"is_attended":`,
			wantStatus: http.StatusBadRequest,
			wantCode:   "INVALID_INPUT",
		},
		{
			name:       "non numeric id",
			target:     "/api/v1/attendees/abc/attendance",
			body:       `{"is_attended":true}`,
			wantStatus: http.StatusBadRequest,
			wantCode:   "INVALID_ARGUMENT",
		},
		{
			name:   "unknown attendee",
			target: "/api/v1/attendees/99/attendance",
			body:   `{"is_attended":true}`,
			setup: func(f *handlerFixtures) {
				f.updateAttendance.EXPECT().Execute(mock.Anything, 99, true).
					Return(domainerrors.NewNotFoundError("Attendee", 99))
			},
			wantStatus: http.StatusNotFound,
			wantCode:   "NOT_FOUND",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newHandlerFixtures(t)
			if tt.setup != nil {
				tt.setup(f)
			}

			rec := f.do(http.MethodPut, tt.target, echo.MIMEApplicationJSON, tt.body)

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantCode != "" {
				assert.Equal(t, tt.wantCode, decodeError(t, rec).Code)
			} else {
				assert.Empty(t, rec.Body.String())
			}
		})
	}
}

func TestAttendeeHandler_UpdateAttendance_ValidationDetails(t *testing.T) {
	f := newHandlerFixtures(t)

	rec := f.do(http.MethodPut, "/api/v1/attendees/3/attendance", echo.MIMEApplicationJSON, `{}`)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	info := decodeError(t, rec)
	assert.Equal(t, map[string]any{"is_attended": "This field is required"}, info.Details)
}

func TestAttendeeHandler_NotFoundDetails(t *testing.T) {
	f := newHandlerFixtures(t)
	f.getCheckInQR.EXPECT().Execute(mock.Anything, 42).Return(nil, domainerrors.NewNotFoundError("Attendee", 42))

	rec := f.do(http.MethodGet, "/api/v1/attendees/42/qr", "", "")

	require.Equal(t, http.StatusNotFound, rec.Code)
	info := decodeError(t, rec)
	assert.Equal(t, "entity 'Attendee' with key '42' was not found", info.Details)
}

func TestAttendeeHandler_GetCheckInQR(t *testing.T) {
	f := newHandlerFixtures(t)
	png := []byte{0x89, 'P', 'N', 'G'}
	f.getCheckInQR.EXPECT().Execute(mock.Anything, 7).Return(png, nil)

	rec := f.do(http.MethodGet, "/api/v1/attendees/7/qr", "", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/png", rec.Header().Get(echo.HeaderContentType))
	assert.Equal(t, png, rec.Body.Bytes())
}

func TestAttendeeHandler_CheckIn(t *testing.T) {
	f := newHandlerFixtures(t)
	qrData := `{"attendee_id":5,"type":"check-in"}`
	f.checkIn.EXPECT().Execute(mock.Anything, qrData).
		Return(usecase.AttendeeDTO{ID: 5, AccountName: "eve", IsAttended: true}, nil)

	payload, err := json.Marshal(CheckInRequest{QRData: qrData})
	require.NoError(t, err)
	rec := f.do(http.MethodPost, "/api/v1/attendees/check-in", echo.MIMEApplicationJSON, string(payload))

	require.Equal(t, http.StatusOK, rec.Code)
	var body struct {
		Data usecase.AttendeeDTO `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, usecase.AttendeeDTO{ID: 5, AccountName: "eve", IsAttended: true}, body.Data)
}

func TestAttendeeHandler_CheckIn_Rejected(t *testing.T) {
	f := newHandlerFixtures(t)
	f.checkIn.EXPECT().Execute(mock.Anything, "garbage").
		Return(usecase.AttendeeDTO{}, domainerrors.ErrInvalidArgument.WithDetails("invalid check-in QR code"))

	rec := f.do(http.MethodPost, "/api/v1/attendees/check-in", echo.MIMEApplicationJSON, `{"qr_data":"garbage"}`)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	info := decodeError(t, rec)
	assert.Equal(t, "INVALID_ARGUMENT", info.Code)
	assert.Equal(t, "invalid check-in QR code", info.Details)
}

func TestAttendeeHandler_CheckIn_MissingData(t *testing.T) {
	f := newHandlerFixtures(t)

	rec := f.do(http.MethodPost, "/api/v1/attendees/check-in", echo.MIMEApplicationJSON, `{"qr_data":""}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "VALIDATION_FAILED", decodeError(t, rec).Code)
}

func TestWeatherForecastHandler_ListWeatherForecasts(t *testing.T) {
	f := newHandlerFixtures(t)
	summary := "Chilly"
	forecasts := []usecase.WeatherForecastDTO{
		{ID: "f1", Date: civil.Date{Year: 2024, Month: 6, Day: 2}, TemperatureC: 0, TemperatureF: 32, Summary: &summary},
	}
	f.getForecasts.EXPECT().Execute(mock.Anything).Return(forecasts, nil)

	rec := f.do(http.MethodGet, "/api/v1/weather-forecasts", "", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"date":"2024-06-02"`)
	assert.Contains(t, rec.Body.String(), `"temperature_f":32`)

	var body struct {
		Data []usecase.WeatherForecastDTO `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, forecasts, body.Data)
}

func TestPageHandler_WeatherPage(t *testing.T) {
	f := newHandlerFixtures(t)
	summary := "Scorching"
	f.getForecasts.EXPECT().Execute(mock.Anything).Return([]usecase.WeatherForecastDTO{
		{ID: "f1", Date: civil.Date{Year: 2024, Month: 6, Day: 2}, TemperatureC: 40, TemperatureF: 103, Summary: &summary},
	}, nil)

	rec := f.do(http.MethodGet, "/weather", "", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, strings.HasPrefix(rec.Header().Get(echo.HeaderContentType), echo.MIMETextHTML))
	assert.Contains(t, rec.Body.String(), "Scorching")
	assert.Contains(t, rec.Body.String(), "<td>103</td>")
}

func TestPageHandler_AttendeesPage(t *testing.T) {
	f := newHandlerFixtures(t)
	f.getAttendees.EXPECT().Execute(mock.Anything).Return([]usecase.AttendeeDTO{
		{ID: 4, AccountName: "diana"},
	}, nil)

	rec := f.do(http.MethodGet, "/attendees", "", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "diana")
	assert.Contains(t, rec.Body.String(), `action="/attendees/4/attendance"`)
}

func TestPageHandler_ToggleAttendance(t *testing.T) {
	f := newHandlerFixtures(t)
	f.updateAttendance.EXPECT().Execute(mock.Anything, 2, true).Return(nil)

	form := url.Values{"is_attended": {"true"}}
	rec := f.do(http.MethodPost, "/attendees/2/attendance", echo.MIMEApplicationForm, form.Encode())

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/attendees", rec.Header().Get(echo.HeaderLocation))
}

func TestPageHandler_ToggleAttendance_MissingFlag(t *testing.T) {
	f := newHandlerFixtures(t)

	rec := f.do(http.MethodPost, "/attendees/2/attendance", echo.MIMEApplicationForm, url.Values{}.Encode())

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "VALIDATION_FAILED", decodeError(t, rec).Code)
}

func TestPageHandler_ToggleAttendance_NotFound(t *testing.T) {
	f := newHandlerFixtures(t)
	f.updateAttendance.EXPECT().Execute(mock.Anything, 9, false).Return(domainerrors.NewNotFoundError("Attendee", 9))

	form := url.Values{"is_attended": {"false"}}
	rec := f.do(http.MethodPost, "/attendees/9/attendance", echo.MIMEApplicationForm, form.Encode())

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
