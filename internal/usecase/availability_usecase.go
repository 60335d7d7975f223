package usecase

import (
	"context"
	"errors"
	"time"

	"clinic-appointment-system/internal/converter"
	"clinic-appointment-system/internal/delivery/dto"
	"clinic-appointment-system/internal/domain/entity"
	"clinic-appointment-system/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrWindowOrder         = errors.New("start time must not be after end time")
	ErrDuplicateWindowDate = errors.New("duplicate window date in request")
)

// availabilityHorizonDays is the length of the rolling window patients can
// browse and book into.
const availabilityHorizonDays = 7

type AvailabilityUsecase interface {
	// PublishAvailability replaces the doctor's entire published set in one
	// transaction; a failed publish leaves the previous set intact.
	PublishAvailability(ctx context.Context, doctorID uuid.UUID, req *dto.PublishAvailabilityRequest) (*dto.AvailabilityListResponse, error)
	GetMyAvailability(ctx context.Context, doctorID uuid.UUID) (*dto.AvailabilityListResponse, error)
	// GetDoctorAvailability is the patient-facing view of an active doctor's
	// windows for the coming week.
	GetDoctorAvailability(ctx context.Context, doctorID uuid.UUID) (*dto.AvailabilityListResponse, error)
}

type availabilityUsecase struct {
	db                *gorm.DB
	log               *logrus.Logger
	availabilityRepo  repository.AvailabilityRepository
	doctorProfileRepo repository.DoctorProfileRepository
}

func NewAvailabilityUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	availabilityRepo repository.AvailabilityRepository,
	doctorProfileRepo repository.DoctorProfileRepository,
) AvailabilityUsecase {
	return &availabilityUsecase{
		db:                db,
		log:               log,
		availabilityRepo:  availabilityRepo,
		doctorProfileRepo: doctorProfileRepo,
	}
}

// parseWindows validates and converts the request windows. Dates must be
// YYYY-MM-DD, times HH:MM, start before or equal to end, and at most one
// window per date.
func parseWindows(doctorID uuid.UUID, inputs []dto.AvailabilityWindowInput) ([]entity.AvailabilityWindow, error) {
	windows := make([]entity.AvailabilityWindow, 0, len(inputs))
	seen := make(map[string]bool, len(inputs))

	for _, in := range inputs {
		date, err := time.Parse("2006-01-02", in.Date)
		if err != nil {
			return nil, ErrInvalidDateFormat
		}

		start, err := time.Parse("15:04", in.StartTime)
		if err != nil {
			return nil, ErrInvalidTimeFormat
		}
		end, err := time.Parse("15:04", in.EndTime)
		if err != nil {
			return nil, ErrInvalidTimeFormat
		}
		if start.After(end) {
			return nil, ErrWindowOrder
		}

		if seen[in.Date] {
			return nil, ErrDuplicateWindowDate
		}
		seen[in.Date] = true

		windows = append(windows, entity.AvailabilityWindow{
			DoctorID:   doctorID,
			WindowDate: date,
			StartTime:  in.StartTime,
			EndTime:    in.EndTime,
		})
	}

	return windows, nil
}

func (u *availabilityUsecase) PublishAvailability(ctx context.Context, doctorID uuid.UUID, req *dto.PublishAvailabilityRequest) (*dto.AvailabilityListResponse, error) {
	windows, err := parseWindows(doctorID, req.Windows)
	if err != nil {
		return nil, err
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	if err := u.availabilityRepo.ReplaceForDoctor(tx, doctorID, windows); err != nil {
		u.log.Warnf("Failed to replace availability: %+v", err)
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return &dto.AvailabilityListResponse{
		Windows: converter.AvailabilityWindowsToResponses(windows),
		Total:   len(windows),
	}, nil
}

func (u *availabilityUsecase) GetMyAvailability(ctx context.Context, doctorID uuid.UUID) (*dto.AvailabilityListResponse, error) {
	return u.windowsForWeek(ctx, doctorID)
}

func (u *availabilityUsecase) GetDoctorAvailability(ctx context.Context, doctorID uuid.UUID) (*dto.AvailabilityListResponse, error) {
	profile, err := u.doctorProfileRepo.FindByUserID(u.db.WithContext(ctx), doctorID)
	if err != nil {
		u.log.Warnf("Failed to find doctor profile: %+v", err)
		return nil, err
	}
	if profile == nil || !profile.User.Active() {
		return nil, ErrDoctorNotFound
	}

	return u.windowsForWeek(ctx, doctorID)
}

func (u *availabilityUsecase) windowsForWeek(ctx context.Context, doctorID uuid.UUID) (*dto.AvailabilityListResponse, error) {
	from := time.Now().Truncate(24 * time.Hour)
	to := from.AddDate(0, 0, availabilityHorizonDays-1)

	windows, err := u.availabilityRepo.FindByDoctorInRange(u.db.WithContext(ctx), doctorID, from, to)
	if err != nil {
		u.log.Warnf("Failed to list availability: %+v", err)
		return nil, err
	}

	return &dto.AvailabilityListResponse{
		Windows: converter.AvailabilityWindowsToResponses(windows),
		Total:   len(windows),
	}, nil
}
