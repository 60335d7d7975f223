package repository

import (
	"clinic-appointment-system/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type TreatmentRepository interface {
	Create(db *gorm.DB, record *entity.TreatmentRecord) error
	FindByAppointmentID(db *gorm.DB, appointmentID uuid.UUID) (*entity.TreatmentRecord, error)
}
