package repository

import (
	"time"

	"clinic-appointment-system/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AvailabilityRepository interface {
	// ReplaceForDoctor deletes every window owned by the doctor and inserts
	// the given set. Callers run it inside a transaction so the old set is
	// never left partially cleared.
	ReplaceForDoctor(db *gorm.DB, doctorID uuid.UUID, windows []entity.AvailabilityWindow) error
	FindByDoctorAndDate(db *gorm.DB, doctorID uuid.UUID, date time.Time) (*entity.AvailabilityWindow, error)
	FindByDoctorInRange(db *gorm.DB, doctorID uuid.UUID, from, to time.Time) ([]entity.AvailabilityWindow, error)
}
