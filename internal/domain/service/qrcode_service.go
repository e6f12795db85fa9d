package service

// CheckInQRCodeService defines the interface for check-in QR code generation and parsing
type CheckInQRCodeService interface {
	// GenerateCheckInQR generates a PNG QR code an attendee can present at the door
	GenerateCheckInQR(attendeeID int) ([]byte, error)

	// ParseCheckInQR parses scanned QR code data and returns the attendee ID
	ParseCheckInQR(qrData string) (int, error)
}
