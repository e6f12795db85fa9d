package qrcode

import (
	"encoding/json"

	"sampleapp/internal/domain/service"
	"sampleapp/internal/errors"

	"github.com/skip2/go-qrcode"
)

// checkInType tags payloads produced by this service.
const checkInType = "check-in"

type checkInQRCodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
}

// CheckInData is the JSON payload encoded into a check-in QR code.
type CheckInData struct {
	AttendeeID int    `json:"attendee_id"`
	Type       string `json:"type"`
}

// NewCheckInQRCodeService creates a new check-in QR code service instance
func NewCheckInQRCodeService(size int, errorCorrectionLevel string) service.CheckInQRCodeService {
	return &checkInQRCodeService{
		size:                 size,
		errorCorrectionLevel: parseRecoveryLevel(errorCorrectionLevel),
	}
}

// parseRecoveryLevel maps the L/M/Q/H letters to go-qrcode levels, defaulting to Medium.
func parseRecoveryLevel(level string) qrcode.RecoveryLevel {
	switch level {
	case "L":
		return qrcode.Low
	case "Q":
		return qrcode.High
	case "H":
		return qrcode.Highest
	default:
		return qrcode.Medium
	}
}

// GenerateCheckInQR generates a PNG QR code for an attendee
func (s *checkInQRCodeService) GenerateCheckInQR(attendeeID int) ([]byte, error) {
	jsonData, err := json.Marshal(CheckInData{
		AttendeeID: attendeeID,
		Type:       checkInType,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal QR code data")
	}

	qrCode, err := qrcode.New(string(jsonData), s.errorCorrectionLevel)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create QR code")
	}

	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate PNG")
	}

	return pngBytes, nil
}

// ParseCheckInQR parses scanned QR code data and returns the attendee ID
func (s *checkInQRCodeService) ParseCheckInQR(qrData string) (int, error) {
	var data CheckInData
	if err := json.Unmarshal([]byte(qrData), &data); err != nil {
		return 0, errors.Wrap(err, "failed to unmarshal QR code data")
	}

	if data.Type != checkInType {
		return 0, errors.Errorf("invalid QR code type: %s", data.Type)
	}

	if data.AttendeeID <= 0 {
		return 0, errors.Errorf("invalid attendee ID: %d", data.AttendeeID)
	}

	return data.AttendeeID, nil
}
