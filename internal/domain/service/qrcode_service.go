package service

import (
	"github.com/google/uuid"
)

// QRCodeService defines the interface for QR code generation and parsing services
type QRCodeService interface {
	// GenerateTrackingQR generates a QR code handed to carriers for job tracking.
	GenerateTrackingQR(jobID uuid.UUID, reference string) ([]byte, error)

	// ParseTrackingQR parses QR code data and returns the job ID.
	ParseTrackingQR(qrData string) (uuid.UUID, error)
}
