package repository

import (
	"errors"

	"clinic-appointment-system/internal/domain/entity"
	domainRepo "clinic-appointment-system/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type patientProfileRepository struct{}

func NewPatientProfileRepository() domainRepo.PatientProfileRepository {
	return &patientProfileRepository{}
}

func (r *patientProfileRepository) Create(db *gorm.DB, profile *entity.PatientProfile) error {
	return db.Create(profile).Error
}

func (r *patientProfileRepository) FindByUserID(db *gorm.DB, userID uuid.UUID) (*entity.PatientProfile, error) {
	var profile entity.PatientProfile
	err := db.Preload("User").Where("user_id = ?", userID).First(&profile).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &profile, nil
}

func (r *patientProfileRepository) FindAll(db *gorm.DB, search string) ([]entity.PatientProfile, error) {
	var profiles []entity.PatientProfile
	query := db.Joins("JOIN users ON users.id = patient_profiles.user_id")

	if search != "" {
		query = query.Where("users.full_name ILIKE ? OR patient_profiles.contact LIKE ?", "%"+search+"%", "%"+search+"%")
	}

	err := query.Preload("User").Order("users.full_name ASC").Find(&profiles).Error
	if err != nil {
		return nil, err
	}
	return profiles, nil
}

func (r *patientProfileRepository) Update(db *gorm.DB, profile *entity.PatientProfile) error {
	return db.Omit("User").Save(profile).Error
}
