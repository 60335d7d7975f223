package repository

import (
	"time"

	"clinic-appointment-system/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AppointmentRepository interface {
	Create(db *gorm.DB, appointment *entity.Appointment) error
	FindByID(db *gorm.DB, id uuid.UUID) (*entity.Appointment, error)

	// Slot conflict lookups: both ignore Cancelled appointments.
	FindActiveByPatientSlot(db *gorm.DB, patientID uuid.UUID, date time.Time, at string) (*entity.Appointment, error)
	FindActiveByDoctorSlot(db *gorm.DB, doctorID uuid.UUID, date time.Time, at string) (*entity.Appointment, error)

	FindByDoctorID(db *gorm.DB, doctorID uuid.UUID) ([]entity.Appointment, error)
	FindUpcomingByDoctor(db *gorm.DB, doctorID uuid.UUID, from, to time.Time) ([]entity.Appointment, error)
	FindByPatientID(db *gorm.DB, patientID uuid.UUID) ([]entity.Appointment, error)
	FindCompletedByPatientID(db *gorm.DB, patientID uuid.UUID) ([]entity.Appointment, error)
	FindAll(db *gorm.DB) ([]entity.Appointment, error)

	// UpdateStatus performs a guarded transition: the row is updated only if
	// its current status equals from. Returns affected rows so callers can
	// detect a lost race or a terminal-state mutation attempt.
	UpdateStatus(db *gorm.DB, id uuid.UUID, from, to entity.AppointmentStatus) (int64, error)
}
