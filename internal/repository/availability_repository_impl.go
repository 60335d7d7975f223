package repository

import (
	"errors"
	"time"

	"clinic-appointment-system/internal/domain/entity"
	domainRepo "clinic-appointment-system/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type availabilityRepository struct{}

func NewAvailabilityRepository() domainRepo.AvailabilityRepository {
	return &availabilityRepository{}
}

func (r *availabilityRepository) ReplaceForDoctor(db *gorm.DB, doctorID uuid.UUID, windows []entity.AvailabilityWindow) error {
	if err := db.Where("doctor_id = ?", doctorID).Delete(&entity.AvailabilityWindow{}).Error; err != nil {
		return err
	}
	if len(windows) == 0 {
		return nil
	}
	return db.Create(&windows).Error
}

func (r *availabilityRepository) FindByDoctorAndDate(db *gorm.DB, doctorID uuid.UUID, date time.Time) (*entity.AvailabilityWindow, error) {
	var window entity.AvailabilityWindow
	err := db.Where("doctor_id = ? AND window_date = ?", doctorID, date).First(&window).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &window, nil
}

func (r *availabilityRepository) FindByDoctorInRange(db *gorm.DB, doctorID uuid.UUID, from, to time.Time) ([]entity.AvailabilityWindow, error) {
	var windows []entity.AvailabilityWindow
	err := db.Where("doctor_id = ? AND window_date >= ? AND window_date <= ?", doctorID, from, to).
		Order("window_date ASC").
		Find(&windows).Error
	if err != nil {
		return nil, err
	}
	return windows, nil
}
