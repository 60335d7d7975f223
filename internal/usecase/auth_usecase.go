package usecase

import (
	"context"
	"errors"

	"clinic-appointment-system/internal/converter"
	"clinic-appointment-system/internal/delivery/dto"
	"clinic-appointment-system/internal/domain/entity"
	"clinic-appointment-system/internal/domain/repository"
	"clinic-appointment-system/internal/service"
	"clinic-appointment-system/pkg/jwt"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrEmailAlreadyExists = errors.New("email already exists")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrAccountInactive    = errors.New("account is deactivated")
	ErrInvalidToken       = errors.New("invalid or expired token")
	ErrTokenRevoked       = errors.New("token has been revoked")
	ErrUserNotFound       = errors.New("user not found")
	ErrRoleNotFound       = errors.New("role not found")
	ErrInvalidDateFormat  = errors.New("invalid date format, use YYYY-MM-DD")
	ErrInvalidTimeFormat  = errors.New("invalid time format, use HH:MM")
)

type AuthUsecase interface {
	RegisterPatient(ctx context.Context, req *dto.RegisterPatientRequest) (*dto.UserResponse, error)
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.TokenResponse, error)
	Logout(ctx context.Context, userID uuid.UUID, accessTokenID, refreshToken string) error
	RefreshToken(ctx context.Context, req *dto.RefreshTokenRequest) (*dto.TokenResponse, error)
	GetCurrentUser(ctx context.Context, userID uuid.UUID) (*dto.UserResponse, error)
}

type authUsecase struct {
	db                 *gorm.DB
	log                *logrus.Logger
	userRepo           repository.UserRepository
	patientProfileRepo repository.PatientProfileRepository
	doctorProfileRepo  repository.DoctorProfileRepository
	jwtService         *jwt.JWTService
	tokenService       *service.TokenService
	passwordService    *service.PasswordService
}

func NewAuthUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	userRepo repository.UserRepository,
	patientProfileRepo repository.PatientProfileRepository,
	doctorProfileRepo repository.DoctorProfileRepository,
	jwtService *jwt.JWTService,
	tokenService *service.TokenService,
	passwordService *service.PasswordService,
) AuthUsecase {
	return &authUsecase{
		db:                 db,
		log:                log,
		userRepo:           userRepo,
		patientProfileRepo: patientProfileRepo,
		doctorProfileRepo:  doctorProfileRepo,
		jwtService:         jwtService,
		tokenService:       tokenService,
		passwordService:    passwordService,
	}
}

func (u *authUsecase) RegisterPatient(ctx context.Context, req *dto.RegisterPatientRequest) (*dto.UserResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

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
		RoleID:   entity.RoleIDPatient,
		IsActive: &active,
	}

	if err := u.userRepo.Create(tx, user); err != nil {
		if isDuplicateKeyError(err, "email") {
			return nil, ErrEmailAlreadyExists
		}
		if isForeignKeyError(err, "role") {
			return nil, ErrRoleNotFound
		}
		u.log.Warnf("Failed to create user: %+v", err)
		return nil, err
	}

	profile := &entity.PatientProfile{
		UserID:     user.ID,
		Age:        req.Age,
		Gender:     req.Gender,
		Contact:    req.Contact,
		Address:    req.Address,
		BloodGroup: req.BloodGroup,
	}

	if err := u.patientProfileRepo.Create(tx, profile); err != nil {
		u.log.Warnf("Failed to create patient profile: %+v", err)
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	profile.User = *user
	return &dto.UserResponse{
		ID:             user.ID,
		Email:          user.Email,
		FullName:       user.FullName,
		Role:           entity.RolePatient,
		PatientProfile: converter.PatientProfileToResponse(profile),
		CreatedAt:      user.CreatedAt,
		UpdatedAt:      user.UpdatedAt,
	}, nil
}

func (u *authUsecase) Login(ctx context.Context, req *dto.LoginRequest) (*dto.TokenResponse, error) {
	user, err := u.userRepo.FindByEmail(u.db.WithContext(ctx), req.Email)
	if err != nil {
		u.log.Warnf("Failed to find user by email: %+v", err)
		return nil, err
	}
	if user == nil {
		return nil, ErrInvalidCredentials
	}

	if err := u.passwordService.Compare(user.Password, req.Password); err != nil {
		return nil, ErrInvalidCredentials
	}

	// Deactivated identities keep their rows for appointment history but
	// can never authenticate.
	if !user.Active() {
		return nil, ErrAccountInactive
	}

	return u.issueTokens(ctx, user)
}

func (u *authUsecase) Logout(ctx context.Context, userID uuid.UUID, accessTokenID, refreshToken string) error {
	if err := u.tokenService.Revoke(ctx, jwt.AccessToken, userID, accessTokenID); err != nil {
		return err
	}

	if refreshToken == "" {
		return nil
	}
	claims, err := u.jwtService.ValidateToken(refreshToken)
	if err != nil || claims.TokenType != jwt.RefreshToken || claims.UserID != userID {
		// The session's access token is already revoked; a bad refresh
		// token in the request body is not worth failing the logout over.
		return nil
	}
	return u.tokenService.Revoke(ctx, jwt.RefreshToken, userID, claims.TokenID)
}

func (u *authUsecase) RefreshToken(ctx context.Context, req *dto.RefreshTokenRequest) (*dto.TokenResponse, error) {
	claims, err := u.jwtService.ValidateToken(req.RefreshToken)
	if err != nil {
		return nil, ErrInvalidToken
	}
	if claims.TokenType != jwt.RefreshToken {
		return nil, ErrInvalidToken
	}

	valid, err := u.tokenService.IsValid(ctx, jwt.RefreshToken, claims.UserID, claims.TokenID)
	if err != nil {
		return nil, err
	}
	if !valid {
		return nil, ErrTokenRevoked
	}

	user, err := u.userRepo.FindByID(u.db.WithContext(ctx), claims.UserID)
	if err != nil {
		u.log.Warnf("Failed to find user by ID: %+v", err)
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	if !user.Active() {
		return nil, ErrAccountInactive
	}

	// Rotate: the old refresh token is single-use.
	if err := u.tokenService.Revoke(ctx, jwt.RefreshToken, claims.UserID, claims.TokenID); err != nil {
		return nil, err
	}

	return u.issueTokens(ctx, user)
}

func (u *authUsecase) issueTokens(ctx context.Context, user *entity.User) (*dto.TokenResponse, error) {
	accessToken, accessTokenID, err := u.jwtService.GenerateAccessToken(user.ID, user.Email, user.RoleID)
	if err != nil {
		u.log.Warnf("Failed to generate access token: %+v", err)
		return nil, err
	}

	refreshToken, refreshTokenID, err := u.jwtService.GenerateRefreshToken(user.ID, user.Email, user.RoleID)
	if err != nil {
		u.log.Warnf("Failed to generate refresh token: %+v", err)
		return nil, err
	}

	if err := u.tokenService.Store(ctx, jwt.AccessToken, user.ID, accessTokenID, u.jwtService.GetAccessExpiry()); err != nil {
		return nil, err
	}
	if err := u.tokenService.Store(ctx, jwt.RefreshToken, user.ID, refreshTokenID, u.jwtService.GetRefreshExpiry()); err != nil {
		return nil, err
	}

	return &dto.TokenResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		ExpiresIn:    int64(u.jwtService.GetAccessExpiry().Seconds()),
	}, nil
}

func (u *authUsecase) GetCurrentUser(ctx context.Context, userID uuid.UUID) (*dto.UserResponse, error) {
	db := u.db.WithContext(ctx)

	user, err := u.userRepo.FindByID(db, userID)
	if err != nil {
		u.log.Warnf("Failed to find user by ID: %+v", err)
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	response := &dto.UserResponse{
		ID:        user.ID,
		Email:     user.Email,
		FullName:  user.FullName,
		Role:      user.Role.RoleName,
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	}

	switch user.RoleID {
	case entity.RoleIDDoctor:
		profile, err := u.doctorProfileRepo.FindByUserID(db, user.ID)
		if err != nil {
			return nil, err
		}
		response.DoctorProfile = converter.DoctorProfileToResponse(profile)
	case entity.RoleIDPatient:
		profile, err := u.patientProfileRepo.FindByUserID(db, user.ID)
		if err != nil {
			return nil, err
		}
		response.PatientProfile = converter.PatientProfileToResponse(profile)
	}

	return response, nil
}
