package repository

import (
	"errors"

	"clinic-appointment-system/internal/domain/entity"
	domainRepo "clinic-appointment-system/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type treatmentRepository struct{}

func NewTreatmentRepository() domainRepo.TreatmentRepository {
	return &treatmentRepository{}
}

func (r *treatmentRepository) Create(db *gorm.DB, record *entity.TreatmentRecord) error {
	return db.Create(record).Error
}

func (r *treatmentRepository) FindByAppointmentID(db *gorm.DB, appointmentID uuid.UUID) (*entity.TreatmentRecord, error) {
	var record entity.TreatmentRecord
	err := db.Where("appointment_id = ?", appointmentID).First(&record).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &record, nil
}
