package repository

import (
	"errors"

	"clinic-appointment-system/internal/domain/entity"
	domainRepo "clinic-appointment-system/internal/domain/repository"

	"gorm.io/gorm"
)

type departmentRepository struct{}

func NewDepartmentRepository() domainRepo.DepartmentRepository {
	return &departmentRepository{}
}

func (r *departmentRepository) Create(db *gorm.DB, department *entity.Department) error {
	return db.Create(department).Error
}

func (r *departmentRepository) FindByID(db *gorm.DB, id int) (*entity.Department, error) {
	var department entity.Department
	err := db.Where("id = ?", id).First(&department).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &department, nil
}

func (r *departmentRepository) FindByName(db *gorm.DB, name string) (*entity.Department, error) {
	var department entity.Department
	err := db.Where("name = ?", name).First(&department).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &department, nil
}

func (r *departmentRepository) FindAll(db *gorm.DB) ([]entity.Department, error) {
	var departments []entity.Department
	err := db.Order("name ASC").Find(&departments).Error
	if err != nil {
		return nil, err
	}
	return departments, nil
}
