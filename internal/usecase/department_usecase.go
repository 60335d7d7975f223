package usecase

import (
	"context"
	"errors"

	"clinic-appointment-system/internal/converter"
	"clinic-appointment-system/internal/delivery/dto"
	"clinic-appointment-system/internal/domain/entity"
	"clinic-appointment-system/internal/domain/repository"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrDepartmentNotFound      = errors.New("department not found")
	ErrDepartmentAlreadyExists = errors.New("department already exists")
)

type DepartmentUsecase interface {
	Create(ctx context.Context, req *dto.CreateDepartmentRequest) (*dto.DepartmentResponse, error)
	GetByID(ctx context.Context, id int) (*dto.DepartmentResponse, error)
	GetAll(ctx context.Context) (*dto.DepartmentListResponse, error)
}

type departmentUsecase struct {
	db             *gorm.DB
	log            *logrus.Logger
	departmentRepo repository.DepartmentRepository
}

func NewDepartmentUsecase(db *gorm.DB, log *logrus.Logger, departmentRepo repository.DepartmentRepository) DepartmentUsecase {
	return &departmentUsecase{
		db:             db,
		log:            log,
		departmentRepo: departmentRepo,
	}
}

func (u *departmentUsecase) Create(ctx context.Context, req *dto.CreateDepartmentRequest) (*dto.DepartmentResponse, error) {
	department := &entity.Department{
		Name:        req.Name,
		Description: req.Description,
	}

	if err := u.departmentRepo.Create(u.db.WithContext(ctx), department); err != nil {
		if isDuplicateKeyError(err, "name") {
			return nil, ErrDepartmentAlreadyExists
		}
		u.log.Warnf("Failed to create department: %+v", err)
		return nil, err
	}

	return converter.DepartmentToResponse(department), nil
}

func (u *departmentUsecase) GetByID(ctx context.Context, id int) (*dto.DepartmentResponse, error) {
	department, err := u.departmentRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find department: %+v", err)
		return nil, err
	}
	if department == nil {
		return nil, ErrDepartmentNotFound
	}
	return converter.DepartmentToResponse(department), nil
}

func (u *departmentUsecase) GetAll(ctx context.Context) (*dto.DepartmentListResponse, error) {
	departments, err := u.departmentRepo.FindAll(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to list departments: %+v", err)
		return nil, err
	}

	return &dto.DepartmentListResponse{
		Departments: converter.DepartmentsToResponses(departments),
		Total:       len(departments),
	}, nil
}
