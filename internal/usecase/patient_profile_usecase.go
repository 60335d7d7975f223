package usecase

import (
	"context"
	"errors"

	"clinic-appointment-system/internal/converter"
	"clinic-appointment-system/internal/delivery/dto"
	"clinic-appointment-system/internal/domain/repository"
	"clinic-appointment-system/internal/service"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrPatientNotFound  = errors.New("patient not found")
	ErrWrongOldPassword = errors.New("old password is incorrect")
)

type PatientUsecase interface {
	GetPatient(ctx context.Context, patientID uuid.UUID) (*dto.PatientResponse, error)
	GetAllPatients(ctx context.Context, search string) (*dto.PatientListResponse, error)
	// UpdateProfile is the patient self-service form; password changes
	// require the current password.
	UpdateProfile(ctx context.Context, patientID uuid.UUID, req *dto.UpdatePatientProfileRequest) (*dto.PatientResponse, error)
	DeactivatePatient(ctx context.Context, patientID uuid.UUID) error
}

type patientUsecase struct {
	db                 *gorm.DB
	log                *logrus.Logger
	userRepo           repository.UserRepository
	patientProfileRepo repository.PatientProfileRepository
	tokenService       *service.TokenService
	passwordService    *service.PasswordService
}

func NewPatientUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	userRepo repository.UserRepository,
	patientProfileRepo repository.PatientProfileRepository,
	tokenService *service.TokenService,
	passwordService *service.PasswordService,
) PatientUsecase {
	return &patientUsecase{
		db:                 db,
		log:                log,
		userRepo:           userRepo,
		patientProfileRepo: patientProfileRepo,
		tokenService:       tokenService,
		passwordService:    passwordService,
	}
}

func (u *patientUsecase) GetPatient(ctx context.Context, patientID uuid.UUID) (*dto.PatientResponse, error) {
	profile, err := u.patientProfileRepo.FindByUserID(u.db.WithContext(ctx), patientID)
	if err != nil {
		u.log.Warnf("Failed to find patient profile: %+v", err)
		return nil, err
	}
	if profile == nil {
		return nil, ErrPatientNotFound
	}
	return converter.PatientProfileToResponse(profile), nil
}

func (u *patientUsecase) GetAllPatients(ctx context.Context, search string) (*dto.PatientListResponse, error) {
	profiles, err := u.patientProfileRepo.FindAll(u.db.WithContext(ctx), search)
	if err != nil {
		u.log.Warnf("Failed to list patients: %+v", err)
		return nil, err
	}

	return &dto.PatientListResponse{
		Patients: converter.PatientProfilesToResponses(profiles),
		Total:    len(profiles),
	}, nil
}

func (u *patientUsecase) UpdateProfile(ctx context.Context, patientID uuid.UUID, req *dto.UpdatePatientProfileRequest) (*dto.PatientResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	profile, err := u.patientProfileRepo.FindByUserID(tx, patientID)
	if err != nil {
		u.log.Warnf("Failed to find patient profile: %+v", err)
		return nil, err
	}
	if profile == nil {
		return nil, ErrPatientNotFound
	}

	user := profile.User
	if req.FullName != "" {
		user.FullName = req.FullName
	}

	if req.Password != "" {
		if err := u.passwordService.Compare(user.Password, req.OldPassword); err != nil {
			return nil, ErrWrongOldPassword
		}
		hashedPassword, err := u.passwordService.Hash(req.Password)
		if err != nil {
			u.log.Warnf("Failed to hash password: %+v", err)
			return nil, err
		}
		user.Password = hashedPassword
	}

	if req.Age != nil {
		profile.Age = *req.Age
	}
	if req.Gender != "" {
		profile.Gender = req.Gender
	}
	if req.Contact != "" {
		profile.Contact = req.Contact
	}
	if req.Address != "" {
		profile.Address = req.Address
	}
	if req.BloodGroup != "" {
		profile.BloodGroup = req.BloodGroup
	}

	if err := u.userRepo.Update(tx, &user); err != nil {
		u.log.Warnf("Failed to update user: %+v", err)
		return nil, err
	}

	if err := u.patientProfileRepo.Update(tx, profile); err != nil {
		u.log.Warnf("Failed to update patient profile: %+v", err)
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	profile.User = user
	return converter.PatientProfileToResponse(profile), nil
}

func (u *patientUsecase) DeactivatePatient(ctx context.Context, patientID uuid.UUID) error {
	db := u.db.WithContext(ctx)

	profile, err := u.patientProfileRepo.FindByUserID(db, patientID)
	if err != nil {
		u.log.Warnf("Failed to find patient profile: %+v", err)
		return err
	}
	if profile == nil {
		return ErrPatientNotFound
	}

	if _, err := u.userRepo.Deactivate(db, patientID); err != nil {
		u.log.Warnf("Failed to deactivate patient: %+v", err)
		return err
	}

	return u.tokenService.RevokeAllForUser(ctx, patientID)
}
