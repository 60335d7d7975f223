package repository

import (
	"clinic-appointment-system/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type DoctorProfileRepository interface {
	Create(db *gorm.DB, profile *entity.DoctorProfile) error
	FindByUserID(db *gorm.DB, userID uuid.UUID) (*entity.DoctorProfile, error)
	FindAll(db *gorm.DB, filter *entity.DoctorFilter) ([]entity.DoctorProfile, error)
	// FindAllActive applies the uniform active-only predicate used by every
	// patient-facing doctor listing.
	FindAllActive(db *gorm.DB, filter *entity.DoctorFilter) ([]entity.DoctorProfile, error)
	Update(db *gorm.DB, profile *entity.DoctorProfile) error
}
