package repository

import (
	"errors"

	"clinic-appointment-system/internal/domain/entity"
	domainRepo "clinic-appointment-system/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type doctorProfileRepository struct{}

func NewDoctorProfileRepository() domainRepo.DoctorProfileRepository {
	return &doctorProfileRepository{}
}

func (r *doctorProfileRepository) Create(db *gorm.DB, profile *entity.DoctorProfile) error {
	return db.Create(profile).Error
}

func (r *doctorProfileRepository) FindByUserID(db *gorm.DB, userID uuid.UUID) (*entity.DoctorProfile, error) {
	var profile entity.DoctorProfile
	err := db.Preload("User").Preload("Department").Where("user_id = ?", userID).First(&profile).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &profile, nil
}

func (r *doctorProfileRepository) FindAll(db *gorm.DB, filter *entity.DoctorFilter) ([]entity.DoctorProfile, error) {
	return r.find(db, filter, false)
}

func (r *doctorProfileRepository) FindAllActive(db *gorm.DB, filter *entity.DoctorFilter) ([]entity.DoctorProfile, error) {
	return r.find(db, filter, true)
}

func (r *doctorProfileRepository) find(db *gorm.DB, filter *entity.DoctorFilter, activeOnly bool) ([]entity.DoctorProfile, error) {
	var profiles []entity.DoctorProfile
	query := db.
		Joins("JOIN users ON users.id = doctor_profiles.user_id")

	if activeOnly {
		query = query.Where("users.is_active = ?", true)
	}

	if filter != nil {
		if filter.Name != "" {
			query = query.Where("users.full_name ILIKE ?", "%"+filter.Name+"%")
		}
		if filter.DepartmentID != 0 {
			query = query.Where("doctor_profiles.department_id = ?", filter.DepartmentID)
		}
	}

	err := query.
		Preload("User").Preload("Department").
		Order("users.full_name ASC").
		Find(&profiles).Error
	if err != nil {
		return nil, err
	}
	return profiles, nil
}

func (r *doctorProfileRepository) Update(db *gorm.DB, profile *entity.DoctorProfile) error {
	return db.Omit("User", "Department").Save(profile).Error
}
