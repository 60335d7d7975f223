package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

type AvailabilityWindowInput struct {
	Date      string `json:"date" validate:"required"`       // Format: YYYY-MM-DD
	StartTime string `json:"start_time" validate:"required"` // Format: HH:MM
	EndTime   string `json:"end_time" validate:"required"`   // Format: HH:MM
}

// PublishAvailabilityRequest replaces the caller's entire published set for
// the rolling week.
type PublishAvailabilityRequest struct {
	Windows []AvailabilityWindowInput `json:"windows" validate:"required,dive"`
}

// Response DTOs

type AvailabilityWindowResponse struct {
	ID        int       `json:"id"`
	DoctorID  uuid.UUID `json:"doctor_id"`
	Date      string    `json:"date"`
	StartTime string    `json:"start_time"`
	EndTime   string    `json:"end_time"`
	CreatedAt time.Time `json:"created_at"`
}

type AvailabilityListResponse struct {
	Windows []AvailabilityWindowResponse `json:"windows"`
	Total   int                          `json:"total"`
}
