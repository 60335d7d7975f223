package repository

import (
	"clinic-appointment-system/internal/domain/entity"

	"gorm.io/gorm"
)

type RoleRepository interface {
	FindByName(db *gorm.DB, name string) (*entity.Role, error)
}
