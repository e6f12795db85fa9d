package handler

import (
	"log/slog"
	"net/http"

	"sampleapp/internal/delivery/api/response"
	domainerrors "sampleapp/internal/domain/errors"
	"sampleapp/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// AttendeeHandlerParams holds dependencies for AttendeeHandler, injected by Fx.
type AttendeeHandlerParams struct {
	fx.In

	GetAttendeesUC     usecase.GetAttendeesUsecase
	UpdateAttendanceUC usecase.UpdateAttendeeAttendanceUsecase
	CheckInUC          usecase.CheckInAttendeeUsecase
	GetCheckInQRUC     usecase.GetAttendeeCheckInQRUsecase
	Logger             *slog.Logger
}

// AttendeeHandler holds dependencies for attendee-related handlers
type AttendeeHandler struct {
	getAttendeesUC     usecase.GetAttendeesUsecase
	updateAttendanceUC usecase.UpdateAttendeeAttendanceUsecase
	checkInUC          usecase.CheckInAttendeeUsecase
	getCheckInQRUC     usecase.GetAttendeeCheckInQRUsecase
	logger             *slog.Logger
}

// NewAttendeeHandler is the constructor for AttendeeHandler
func NewAttendeeHandler(params AttendeeHandlerParams) *AttendeeHandler {
	return &AttendeeHandler{
		getAttendeesUC:     params.GetAttendeesUC,
		updateAttendanceUC: params.UpdateAttendanceUC,
		checkInUC:          params.CheckInUC,
		getCheckInQRUC:     params.GetCheckInQRUC,
		logger:             params.Logger,
	}
}

// UpdateAttendanceRequest represents the request body for setting the attendance flag.
// IsAttended is a pointer so that an explicit false passes the required check.
type UpdateAttendanceRequest struct {
	IsAttended *bool `json:"is_attended" validate:"required"`
}

// CheckInRequest represents the request body for a QR code check-in
type CheckInRequest struct {
	QRData string `json:"qr_data" validate:"required"`
}

// ListAttendees handles listing all attendees
func (h *AttendeeHandler) ListAttendees(c echo.Context) error {
	attendees, err := h.getAttendeesUC.Execute(c.Request().Context())
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, attendees)
}

// UpdateAttendance handles setting or clearing an attendee's attendance flag
func (h *AttendeeHandler) UpdateAttendance(c echo.Context) error {
	attendeeID, err := parseAttendeeID(c)
	if err != nil {
		return err
	}

	var req UpdateAttendanceRequest
	if err := c.Bind(&req); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid attendance input")
	}

	if err := c.Validate(&req); err != nil {
		return err
	}

	if err := h.updateAttendanceUC.Execute(c.Request().Context(), attendeeID, *req.IsAttended); err != nil {
		return err
	}

	return c.NoContent(http.StatusNoContent)
}

// GetCheckInQR handles rendering an attendee's check-in QR code as PNG
func (h *AttendeeHandler) GetCheckInQR(c echo.Context) error {
	attendeeID, err := parseAttendeeID(c)
	if err != nil {
		return err
	}

	png, err := h.getCheckInQRUC.Execute(c.Request().Context(), attendeeID)
	if err != nil {
		return err
	}

	return c.Blob(http.StatusOK, "image/png", png)
}

// CheckIn handles marking the attendee encoded in a scanned QR code as attended
func (h *AttendeeHandler) CheckIn(c echo.Context) error {
	var req CheckInRequest
	if err := c.Bind(&req); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid check-in input")
	}

	if err := c.Validate(&req); err != nil {
		return err
	}

	attendee, err := h.checkInUC.Execute(c.Request().Context(), req.QRData)
	if err != nil {
		return err
	}

	h.logger.InfoContext(c.Request().Context(), "Attendee checked in", slog.Int("attendee_id", attendee.ID))

	return response.Success(c, http.StatusOK, attendee)
}

func parseAttendeeID(c echo.Context) (int, error) {
	var id int
	if err := echo.PathParamsBinder(c).MustInt("id", &id).BindError(); err != nil {
		return 0, domainerrors.ErrInvalidArgument.WithDetails("invalid attendee id: " + c.Param("id"))
	}

	return id, nil
}
