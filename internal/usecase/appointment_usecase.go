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
	ErrAppointmentNotFound  = errors.New("appointment not found")
	ErrAppointmentNotOwned  = errors.New("appointment does not belong to caller")
	ErrAppointmentFinalized = errors.New("appointment is already completed or cancelled")
	ErrPatientSlotTaken     = errors.New("patient already has an appointment at this time")
	ErrDoctorSlotTaken      = errors.New("doctor already has an appointment at this time")
	ErrDoctorNotAvailable   = errors.New("doctor has no availability on this date")
	ErrOutsideAvailability  = errors.New("requested time is outside the doctor's availability window")
	ErrTreatmentExists      = errors.New("treatment record already exists for this appointment")
)

type AppointmentUsecase interface {
	// BookAppointment runs every booking gate and the insert in a single
	// transaction. Partial unique indexes on the non-cancelled slots back
	// the same checks, so a racing double-book fails at insert and is
	// reported as the matching conflict error.
	BookAppointment(ctx context.Context, patientID uuid.UUID, req *dto.BookAppointmentRequest) (*dto.AppointmentResponse, error)
	// CancelAppointment is allowed only while the appointment is Booked.
	CancelAppointment(ctx context.Context, callerID uuid.UUID, callerRoleID int, appointmentID uuid.UUID) error
	CompleteAppointment(ctx context.Context, doctorID, appointmentID uuid.UUID, req *dto.CompleteAppointmentRequest) (*dto.AppointmentResponse, error)

	GetAppointment(ctx context.Context, callerID uuid.UUID, callerRoleID int, appointmentID uuid.UUID) (*dto.AppointmentResponse, error)
	GetPatientAppointments(ctx context.Context, patientID uuid.UUID) (*dto.PatientAppointmentsResponse, error)
	GetDoctorAppointments(ctx context.Context, doctorID uuid.UUID) (*dto.AppointmentListResponse, error)
	GetDoctorUpcomingWeek(ctx context.Context, doctorID uuid.UUID) (*dto.AppointmentListResponse, error)
	GetAllAppointments(ctx context.Context) (*dto.AppointmentListResponse, error)
	// GetPatientHistory lets a doctor review the full record of a patient
	// they have treated.
	GetPatientHistory(ctx context.Context, doctorID, patientID uuid.UUID) (*dto.AppointmentListResponse, error)
	// GetTreatmentHistory returns the patient's completed appointments with
	// their treatment records.
	GetTreatmentHistory(ctx context.Context, patientID uuid.UUID) (*dto.AppointmentListResponse, error)
}

type appointmentUsecase struct {
	db                *gorm.DB
	log               *logrus.Logger
	appointmentRepo   repository.AppointmentRepository
	availabilityRepo  repository.AvailabilityRepository
	doctorProfileRepo repository.DoctorProfileRepository
	treatmentRepo     repository.TreatmentRepository
}

func NewAppointmentUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	appointmentRepo repository.AppointmentRepository,
	availabilityRepo repository.AvailabilityRepository,
	doctorProfileRepo repository.DoctorProfileRepository,
	treatmentRepo repository.TreatmentRepository,
) AppointmentUsecase {
	return &appointmentUsecase{
		db:                db,
		log:               log,
		appointmentRepo:   appointmentRepo,
		availabilityRepo:  availabilityRepo,
		doctorProfileRepo: doctorProfileRepo,
		treatmentRepo:     treatmentRepo,
	}
}

func (u *appointmentUsecase) BookAppointment(ctx context.Context, patientID uuid.UUID, req *dto.BookAppointmentRequest) (*dto.AppointmentResponse, error) {
	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return nil, ErrInvalidDateFormat
	}
	if _, err := time.Parse("15:04", req.Time); err != nil {
		return nil, ErrInvalidTimeFormat
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	doctor, err := u.doctorProfileRepo.FindByUserID(tx, req.DoctorID)
	if err != nil {
		u.log.Warnf("Failed to find doctor profile: %+v", err)
		return nil, err
	}
	if doctor == nil || !doctor.User.Active() {
		return nil, ErrDoctorNotFound
	}

	// Gate order is part of the contract: the patient's own conflict is
	// reported before the doctor's.
	existing, err := u.appointmentRepo.FindActiveByPatientSlot(tx, patientID, date, req.Time)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrPatientSlotTaken
	}

	existing, err = u.appointmentRepo.FindActiveByDoctorSlot(tx, req.DoctorID, date, req.Time)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrDoctorSlotTaken
	}

	window, err := u.availabilityRepo.FindByDoctorAndDate(tx, req.DoctorID, date)
	if err != nil {
		return nil, err
	}
	if window == nil {
		return nil, ErrDoctorNotAvailable
	}
	if !window.Covers(req.Time) {
		return nil, ErrOutsideAvailability
	}

	appointment := &entity.Appointment{
		DoctorID:        req.DoctorID,
		PatientID:       patientID,
		AppointmentDate: date,
		AppointmentTime: req.Time,
		Status:          entity.AppointmentStatusBooked,
	}

	if err := u.appointmentRepo.Create(tx, appointment); err != nil {
		if isDuplicateKeyError(err, "patient_slot") {
			return nil, ErrPatientSlotTaken
		}
		if isDuplicateKeyError(err, "doctor_slot") {
			return nil, ErrDoctorSlotTaken
		}
		u.log.Warnf("Failed to create appointment: %+v", err)
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	appointment.Doctor = *doctor
	return converter.AppointmentToResponse(appointment), nil
}

func (u *appointmentUsecase) CancelAppointment(ctx context.Context, callerID uuid.UUID, callerRoleID int, appointmentID uuid.UUID) error {
	db := u.db.WithContext(ctx)

	appointment, err := u.appointmentRepo.FindByID(db, appointmentID)
	if err != nil {
		u.log.Warnf("Failed to find appointment: %+v", err)
		return err
	}
	if appointment == nil {
		return ErrAppointmentNotFound
	}

	if !u.ownsAppointment(appointment, callerID, callerRoleID) {
		return ErrAppointmentNotOwned
	}

	rows, err := u.appointmentRepo.UpdateStatus(db, appointmentID, entity.AppointmentStatusBooked, entity.AppointmentStatusCancelled)
	if err != nil {
		u.log.Warnf("Failed to cancel appointment: %+v", err)
		return err
	}
	if rows == 0 {
		// Lost a race or the appointment already reached a terminal state.
		return ErrAppointmentFinalized
	}

	return nil
}

func (u *appointmentUsecase) CompleteAppointment(ctx context.Context, doctorID, appointmentID uuid.UUID, req *dto.CompleteAppointmentRequest) (*dto.AppointmentResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	appointment, err := u.appointmentRepo.FindByID(tx, appointmentID)
	if err != nil {
		u.log.Warnf("Failed to find appointment: %+v", err)
		return nil, err
	}
	if appointment == nil {
		return nil, ErrAppointmentNotFound
	}
	if appointment.DoctorID != doctorID {
		return nil, ErrAppointmentNotOwned
	}

	existing, err := u.treatmentRepo.FindByAppointmentID(tx, appointmentID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrTreatmentExists
	}

	rows, err := u.appointmentRepo.UpdateStatus(tx, appointmentID, entity.AppointmentStatusBooked, entity.AppointmentStatusCompleted)
	if err != nil {
		u.log.Warnf("Failed to complete appointment: %+v", err)
		return nil, err
	}
	if rows == 0 {
		return nil, ErrAppointmentFinalized
	}

	record := &entity.TreatmentRecord{
		AppointmentID: appointmentID,
		Diagnosis:     req.Diagnosis,
		Prescription:  req.Prescription,
		Notes:         req.Notes,
	}

	if err := u.treatmentRepo.Create(tx, record); err != nil {
		if isDuplicateKeyError(err, "appointment") {
			return nil, ErrTreatmentExists
		}
		u.log.Warnf("Failed to create treatment record: %+v", err)
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	appointment.Status = entity.AppointmentStatusCompleted
	appointment.Treatment = record
	return converter.AppointmentToResponse(appointment), nil
}

func (u *appointmentUsecase) GetAppointment(ctx context.Context, callerID uuid.UUID, callerRoleID int, appointmentID uuid.UUID) (*dto.AppointmentResponse, error) {
	appointment, err := u.appointmentRepo.FindByID(u.db.WithContext(ctx), appointmentID)
	if err != nil {
		u.log.Warnf("Failed to find appointment: %+v", err)
		return nil, err
	}
	if appointment == nil {
		return nil, ErrAppointmentNotFound
	}

	if callerRoleID != entity.RoleIDAdmin && !u.ownsAppointment(appointment, callerID, callerRoleID) {
		return nil, ErrAppointmentNotOwned
	}

	return converter.AppointmentToResponse(appointment), nil
}

func (u *appointmentUsecase) GetPatientAppointments(ctx context.Context, patientID uuid.UUID) (*dto.PatientAppointmentsResponse, error) {
	appointments, err := u.appointmentRepo.FindByPatientID(u.db.WithContext(ctx), patientID)
	if err != nil {
		u.log.Warnf("Failed to list patient appointments: %+v", err)
		return nil, err
	}

	today := time.Now().Truncate(24 * time.Hour)
	response := &dto.PatientAppointmentsResponse{
		Upcoming: []dto.AppointmentResponse{},
		Past:     []dto.AppointmentResponse{},
	}

	for i := range appointments {
		a := &appointments[i]
		if a.IsBooked() && !a.AppointmentDate.Before(today) {
			response.Upcoming = append(response.Upcoming, *converter.AppointmentToResponse(a))
		} else {
			response.Past = append(response.Past, *converter.AppointmentToResponse(a))
		}
	}

	return response, nil
}

func (u *appointmentUsecase) GetDoctorAppointments(ctx context.Context, doctorID uuid.UUID) (*dto.AppointmentListResponse, error) {
	appointments, err := u.appointmentRepo.FindByDoctorID(u.db.WithContext(ctx), doctorID)
	if err != nil {
		u.log.Warnf("Failed to list doctor appointments: %+v", err)
		return nil, err
	}
	return u.listResponse(appointments), nil
}

func (u *appointmentUsecase) GetDoctorUpcomingWeek(ctx context.Context, doctorID uuid.UUID) (*dto.AppointmentListResponse, error) {
	from := time.Now().Truncate(24 * time.Hour)
	to := from.AddDate(0, 0, availabilityHorizonDays-1)

	appointments, err := u.appointmentRepo.FindUpcomingByDoctor(u.db.WithContext(ctx), doctorID, from, to)
	if err != nil {
		u.log.Warnf("Failed to list upcoming appointments: %+v", err)
		return nil, err
	}
	return u.listResponse(appointments), nil
}

func (u *appointmentUsecase) GetAllAppointments(ctx context.Context) (*dto.AppointmentListResponse, error) {
	appointments, err := u.appointmentRepo.FindAll(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to list appointments: %+v", err)
		return nil, err
	}
	return u.listResponse(appointments), nil
}

func (u *appointmentUsecase) GetPatientHistory(ctx context.Context, doctorID, patientID uuid.UUID) (*dto.AppointmentListResponse, error) {
	db := u.db.WithContext(ctx)

	appointments, err := u.appointmentRepo.FindByPatientID(db, patientID)
	if err != nil {
		u.log.Warnf("Failed to list patient history: %+v", err)
		return nil, err
	}

	// A doctor only sees the history of patients they have an appointment
	// with.
	treats := false
	for i := range appointments {
		if appointments[i].DoctorID == doctorID {
			treats = true
			break
		}
	}
	if !treats {
		return nil, ErrAppointmentNotOwned
	}

	return u.listResponse(appointments), nil
}

func (u *appointmentUsecase) GetTreatmentHistory(ctx context.Context, patientID uuid.UUID) (*dto.AppointmentListResponse, error) {
	appointments, err := u.appointmentRepo.FindCompletedByPatientID(u.db.WithContext(ctx), patientID)
	if err != nil {
		u.log.Warnf("Failed to list treatment history: %+v", err)
		return nil, err
	}
	return u.listResponse(appointments), nil
}

func (u *appointmentUsecase) ownsAppointment(appointment *entity.Appointment, callerID uuid.UUID, callerRoleID int) bool {
	switch callerRoleID {
	case entity.RoleIDPatient:
		return appointment.PatientID == callerID
	case entity.RoleIDDoctor:
		return appointment.DoctorID == callerID
	default:
		return false
	}
}

func (u *appointmentUsecase) listResponse(appointments []entity.Appointment) *dto.AppointmentListResponse {
	return &dto.AppointmentListResponse{
		Appointments: converter.AppointmentsToResponses(appointments),
		Total:        len(appointments),
	}
}
