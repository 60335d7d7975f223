package entity

import (
	"time"

	"github.com/google/uuid"
)

// AppointmentStatus represents the status of an appointment
type AppointmentStatus string

const (
	AppointmentStatusBooked    AppointmentStatus = "Booked"
	AppointmentStatusCompleted AppointmentStatus = "Completed"
	AppointmentStatusCancelled AppointmentStatus = "Cancelled"
)

// Appointment links a doctor and a patient at a (date, time) slot.
// Status is the only mutable field; Completed and Cancelled are terminal.
type Appointment struct {
	ID              uuid.UUID         `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	DoctorID        uuid.UUID         `gorm:"type:uuid;not null;index" json:"doctor_id"`
	PatientID       uuid.UUID         `gorm:"type:uuid;not null;index" json:"patient_id"`
	AppointmentDate time.Time         `gorm:"type:date;not null;index" json:"appointment_date"`
	AppointmentTime string            `gorm:"type:time;not null" json:"appointment_time"`
	Status          AppointmentStatus `gorm:"type:varchar(20);not null;default:'Booked';index" json:"status"`
	CreatedAt       time.Time         `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt       time.Time         `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Doctor    DoctorProfile    `gorm:"foreignKey:DoctorID" json:"doctor,omitempty"`
	Patient   PatientProfile   `gorm:"foreignKey:PatientID" json:"patient,omitempty"`
	Treatment *TreatmentRecord `gorm:"foreignKey:AppointmentID" json:"treatment,omitempty"`
}

func (Appointment) TableName() string {
	return "appointments"
}

// IsBooked checks if the appointment is still active
func (a *Appointment) IsBooked() bool {
	return a.Status == AppointmentStatusBooked
}

// IsCompleted checks if the appointment has been completed
func (a *Appointment) IsCompleted() bool {
	return a.Status == AppointmentStatusCompleted
}

// IsCancelled checks if the appointment has been cancelled
func (a *Appointment) IsCancelled() bool {
	return a.Status == AppointmentStatusCancelled
}

// IsTerminal reports whether the appointment reached a state with no
// further transitions (Completed or Cancelled).
func (a *Appointment) IsTerminal() bool {
	return a.Status == AppointmentStatusCompleted || a.Status == AppointmentStatusCancelled
}
