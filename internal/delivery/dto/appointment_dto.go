package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

type BookAppointmentRequest struct {
	DoctorID uuid.UUID `json:"doctor_id" validate:"required"`
	Date     string    `json:"date" validate:"required"` // Format: YYYY-MM-DD
	Time     string    `json:"time" validate:"required"` // Format: HH:MM
}

type CompleteAppointmentRequest struct {
	Diagnosis    string `json:"diagnosis" validate:"required"`
	Prescription string `json:"prescription" validate:"omitempty"`
	Notes        string `json:"notes" validate:"omitempty"`
}

// Response DTOs

type AppointmentResponse struct {
	ID        uuid.UUID                `json:"id"`
	DoctorID  uuid.UUID                `json:"doctor_id"`
	PatientID uuid.UUID                `json:"patient_id"`
	Doctor    *DoctorResponse          `json:"doctor,omitempty"`
	Patient   *PatientResponse         `json:"patient,omitempty"`
	Date      string                   `json:"date"`
	Time      string                   `json:"time"`
	Status    string                   `json:"status"`
	Treatment *TreatmentRecordResponse `json:"treatment,omitempty"`
	CreatedAt time.Time                `json:"created_at"`
	UpdatedAt time.Time                `json:"updated_at"`
}

type AppointmentListResponse struct {
	Appointments []AppointmentResponse `json:"appointments"`
	Total        int                   `json:"total"`
}

// PatientAppointmentsResponse splits a patient's appointments the way the
// patient dashboard renders them.
type PatientAppointmentsResponse struct {
	Upcoming []AppointmentResponse `json:"upcoming"`
	Past     []AppointmentResponse `json:"past"`
}

type TreatmentRecordResponse struct {
	ID            int64     `json:"id"`
	AppointmentID uuid.UUID `json:"appointment_id"`
	Diagnosis     string    `json:"diagnosis"`
	Prescription  string    `json:"prescription,omitempty"`
	Notes         string    `json:"notes,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}
