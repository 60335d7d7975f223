package repository

import (
	"errors"
	"time"

	"clinic-appointment-system/internal/domain/entity"
	domainRepo "clinic-appointment-system/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type appointmentRepository struct{}

func NewAppointmentRepository() domainRepo.AppointmentRepository {
	return &appointmentRepository{}
}

func (r *appointmentRepository) Create(db *gorm.DB, appointment *entity.Appointment) error {
	return db.Create(appointment).Error
}

func (r *appointmentRepository) FindByID(db *gorm.DB, id uuid.UUID) (*entity.Appointment, error) {
	var appointment entity.Appointment
	err := db.Preload("Doctor.User").Preload("Patient.User").Preload("Treatment").
		Where("id = ?", id).First(&appointment).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &appointment, nil
}

func (r *appointmentRepository) FindActiveByPatientSlot(db *gorm.DB, patientID uuid.UUID, date time.Time, at string) (*entity.Appointment, error) {
	var appointment entity.Appointment
	err := db.Where("patient_id = ? AND appointment_date = ? AND appointment_time = ? AND status != ?",
		patientID, date, at, entity.AppointmentStatusCancelled).
		First(&appointment).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &appointment, nil
}

func (r *appointmentRepository) FindActiveByDoctorSlot(db *gorm.DB, doctorID uuid.UUID, date time.Time, at string) (*entity.Appointment, error) {
	var appointment entity.Appointment
	err := db.Where("doctor_id = ? AND appointment_date = ? AND appointment_time = ? AND status != ?",
		doctorID, date, at, entity.AppointmentStatusCancelled).
		First(&appointment).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &appointment, nil
}

func (r *appointmentRepository) FindByDoctorID(db *gorm.DB, doctorID uuid.UUID) ([]entity.Appointment, error) {
	var appointments []entity.Appointment
	err := db.Preload("Patient.User").Preload("Treatment").
		Where("doctor_id = ?", doctorID).
		Order("appointment_date DESC, appointment_time DESC").
		Find(&appointments).Error
	if err != nil {
		return nil, err
	}
	return appointments, nil
}

func (r *appointmentRepository) FindUpcomingByDoctor(db *gorm.DB, doctorID uuid.UUID, from, to time.Time) ([]entity.Appointment, error) {
	var appointments []entity.Appointment
	err := db.Preload("Patient.User").
		Where("doctor_id = ? AND appointment_date >= ? AND appointment_date <= ? AND status = ?",
			doctorID, from, to, entity.AppointmentStatusBooked).
		Order("appointment_date ASC, appointment_time ASC").
		Find(&appointments).Error
	if err != nil {
		return nil, err
	}
	return appointments, nil
}

func (r *appointmentRepository) FindByPatientID(db *gorm.DB, patientID uuid.UUID) ([]entity.Appointment, error) {
	var appointments []entity.Appointment
	err := db.Preload("Doctor.User").Preload("Doctor.Department").Preload("Treatment").
		Where("patient_id = ?", patientID).
		Order("appointment_date DESC, appointment_time DESC").
		Find(&appointments).Error
	if err != nil {
		return nil, err
	}
	return appointments, nil
}

func (r *appointmentRepository) FindCompletedByPatientID(db *gorm.DB, patientID uuid.UUID) ([]entity.Appointment, error) {
	var appointments []entity.Appointment
	err := db.Preload("Doctor.User").Preload("Doctor.Department").Preload("Treatment").
		Where("patient_id = ? AND status = ?", patientID, entity.AppointmentStatusCompleted).
		Order("appointment_date DESC, appointment_time DESC").
		Find(&appointments).Error
	if err != nil {
		return nil, err
	}
	return appointments, nil
}

func (r *appointmentRepository) FindAll(db *gorm.DB) ([]entity.Appointment, error) {
	var appointments []entity.Appointment
	err := db.Preload("Doctor.User").Preload("Patient.User").
		Order("appointment_date DESC, appointment_time DESC").
		Find(&appointments).Error
	if err != nil {
		return nil, err
	}
	return appointments, nil
}

// UpdateStatus transitions an appointment only from the expected current
// status. Affected rows 0 means the appointment was not in that status,
// which callers treat as a terminal-state violation or a lost race.
func (r *appointmentRepository) UpdateStatus(db *gorm.DB, id uuid.UUID, from, to entity.AppointmentStatus) (int64, error) {
	result := db.Model(&entity.Appointment{}).
		Where("id = ? AND status = ?", id, from).
		Update("status", to)
	return result.RowsAffected, result.Error
}
