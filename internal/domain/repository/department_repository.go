package repository

import (
	"clinic-appointment-system/internal/domain/entity"

	"gorm.io/gorm"
)

type DepartmentRepository interface {
	Create(db *gorm.DB, department *entity.Department) error
	FindByID(db *gorm.DB, id int) (*entity.Department, error)
	FindByName(db *gorm.DB, name string) (*entity.Department, error)
	FindAll(db *gorm.DB) ([]entity.Department, error)
}
