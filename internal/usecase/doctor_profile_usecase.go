package usecase

import (
	"context"
	"errors"

	"clinic-appointment-system/internal/converter"
	"clinic-appointment-system/internal/delivery/dto"
	"clinic-appointment-system/internal/domain/entity"
	"clinic-appointment-system/internal/domain/repository"
	"clinic-appointment-system/internal/service"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var ErrDoctorNotFound = errors.New("doctor not found")

type DoctorUsecase interface {
	CreateDoctor(ctx context.Context, req *dto.CreateDoctorRequest) (*dto.DoctorResponse, error)
	GetDoctor(ctx context.Context, doctorID uuid.UUID) (*dto.DoctorResponse, error)
	GetAllDoctors(ctx context.Context, filter *entity.DoctorFilter) (*dto.DoctorListResponse, error)
	// GetActiveDoctors is the patient-facing browse: deactivated doctors
	// never appear.
	GetActiveDoctors(ctx context.Context, filter *entity.DoctorFilter) (*dto.DoctorListResponse, error)
	UpdateDoctor(ctx context.Context, doctorID uuid.UUID, req *dto.UpdateDoctorRequest) (*dto.DoctorResponse, error)
	DeactivateDoctor(ctx context.Context, doctorID uuid.UUID) error
}

type doctorUsecase struct {
	db                *gorm.DB
	log               *logrus.Logger
	userRepo          repository.UserRepository
	doctorProfileRepo repository.DoctorProfileRepository
	departmentRepo    repository.DepartmentRepository
	tokenService      *service.TokenService
	passwordService   *service.PasswordService
}

func NewDoctorUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	userRepo repository.UserRepository,
	doctorProfileRepo repository.DoctorProfileRepository,
	departmentRepo repository.DepartmentRepository,
	tokenService *service.TokenService,
	passwordService *service.PasswordService,
) DoctorUsecase {
	return &doctorUsecase{
		db:                db,
		log:               log,
		userRepo:          userRepo,
		doctorProfileRepo: doctorProfileRepo,
		departmentRepo:    departmentRepo,
		tokenService:      tokenService,
		passwordService:   passwordService,
	}
}

func (u *doctorUsecase) CreateDoctor(ctx context.Context, req *dto.CreateDoctorRequest) (*dto.DoctorResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	department, err := u.departmentRepo.FindByID(tx, req.DepartmentID)
	if err != nil {
		u.log.Warnf("Failed to find department: %+v", err)
		return nil, err
	}
	if department == nil {
		return nil, ErrDepartmentNotFound
	}

	hashedPassword, err := u.passwordService.Hash(req.Password)
	if err != nil {
		u.log.Warnf("Failed to hash password: %+v", err)
		return nil, err
	}

	active := true
	user := &entity.User{
		Email:    req.Email,
		Password: hashedPassword,
		FullName: req.FullName,
		RoleID:   entity.RoleIDDoctor,
		IsActive: &active,
	}

	if err := u.userRepo.Create(tx, user); err != nil {
		if isDuplicateKeyError(err, "email") {
			return nil, ErrEmailAlreadyExists
		}
		u.log.Warnf("Failed to create user: %+v", err)
		return nil, err
	}

	profile := &entity.DoctorProfile{
		UserID:          user.ID,
		DepartmentID:    req.DepartmentID,
		Qualification:   req.Qualification,
		ExperienceYears: req.ExperienceYears,
		Contact:         req.Contact,
	}

	if err := u.doctorProfileRepo.Create(tx, profile); err != nil {
		if isForeignKeyError(err, "department") {
			return nil, ErrDepartmentNotFound
		}
		u.log.Warnf("Failed to create doctor profile: %+v", err)
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	profile.User = *user
	profile.Department = *department
	return converter.DoctorProfileToResponse(profile), nil
}

func (u *doctorUsecase) GetDoctor(ctx context.Context, doctorID uuid.UUID) (*dto.DoctorResponse, error) {
	profile, err := u.doctorProfileRepo.FindByUserID(u.db.WithContext(ctx), doctorID)
	if err != nil {
		u.log.Warnf("Failed to find doctor profile: %+v", err)
		return nil, err
	}
	if profile == nil {
		return nil, ErrDoctorNotFound
	}
	return converter.DoctorProfileToResponse(profile), nil
}

func (u *doctorUsecase) GetAllDoctors(ctx context.Context, filter *entity.DoctorFilter) (*dto.DoctorListResponse, error) {
	profiles, err := u.doctorProfileRepo.FindAll(u.db.WithContext(ctx), filter)
	if err != nil {
		u.log.Warnf("Failed to list doctors: %+v", err)
		return nil, err
	}

	return &dto.DoctorListResponse{
		Doctors: converter.DoctorProfilesToResponses(profiles),
		Total:   len(profiles),
	}, nil
}

func (u *doctorUsecase) GetActiveDoctors(ctx context.Context, filter *entity.DoctorFilter) (*dto.DoctorListResponse, error) {
	profiles, err := u.doctorProfileRepo.FindAllActive(u.db.WithContext(ctx), filter)
	if err != nil {
		u.log.Warnf("Failed to list active doctors: %+v", err)
		return nil, err
	}

	return &dto.DoctorListResponse{
		Doctors: converter.DoctorProfilesToResponses(profiles),
		Total:   len(profiles),
	}, nil
}

func (u *doctorUsecase) UpdateDoctor(ctx context.Context, doctorID uuid.UUID, req *dto.UpdateDoctorRequest) (*dto.DoctorResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	profile, err := u.doctorProfileRepo.FindByUserID(tx, doctorID)
	if err != nil {
		u.log.Warnf("Failed to find doctor profile: %+v", err)
		return nil, err
	}
	if profile == nil {
		return nil, ErrDoctorNotFound
	}

	user := profile.User
	if req.Email != "" {
		user.Email = req.Email
	}
	if req.FullName != "" {
		user.FullName = req.FullName
	}

	if req.DepartmentID != 0 {
		department, err := u.departmentRepo.FindByID(tx, req.DepartmentID)
		if err != nil {
			return nil, err
		}
		if department == nil {
			return nil, ErrDepartmentNotFound
		}
		profile.DepartmentID = req.DepartmentID
		profile.Department = *department
	}
	if req.Qualification != "" {
		profile.Qualification = req.Qualification
	}
	if req.ExperienceYears != nil {
		profile.ExperienceYears = *req.ExperienceYears
	}
	if req.Contact != "" {
		profile.Contact = req.Contact
	}

	if err := u.userRepo.Update(tx, &user); err != nil {
		if isDuplicateKeyError(err, "email") {
			return nil, ErrEmailAlreadyExists
		}
		u.log.Warnf("Failed to update user: %+v", err)
		return nil, err
	}

	if err := u.doctorProfileRepo.Update(tx, profile); err != nil {
		u.log.Warnf("Failed to update doctor profile: %+v", err)
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	profile.User = user
	return converter.DoctorProfileToResponse(profile), nil
}

func (u *doctorUsecase) DeactivateDoctor(ctx context.Context, doctorID uuid.UUID) error {
	db := u.db.WithContext(ctx)

	profile, err := u.doctorProfileRepo.FindByUserID(db, doctorID)
	if err != nil {
		u.log.Warnf("Failed to find doctor profile: %+v", err)
		return err
	}
	if profile == nil {
		return ErrDoctorNotFound
	}

	if _, err := u.userRepo.Deactivate(db, doctorID); err != nil {
		u.log.Warnf("Failed to deactivate doctor: %+v", err)
		return err
	}

	// Kill live sessions so a deactivated doctor cannot keep acting on
	// a still-valid token.
	return u.tokenService.RevokeAllForUser(ctx, doctorID)
}
