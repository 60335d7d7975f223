package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"clinic-appointment-system/internal/delivery/dto"
	"clinic-appointment-system/internal/delivery/http/middleware"
	"clinic-appointment-system/internal/domain/entity"
	"clinic-appointment-system/internal/usecase"
	"clinic-appointment-system/pkg/validator"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

// mockAppointmentUsecase returns canned errors so handler status mapping can
// be tested without a database.
type mockAppointmentUsecase struct {
	bookErr   error
	cancelErr error
}

func (m *mockAppointmentUsecase) BookAppointment(ctx context.Context, patientID uuid.UUID, req *dto.BookAppointmentRequest) (*dto.AppointmentResponse, error) {
	if m.bookErr != nil {
		return nil, m.bookErr
	}
	return &dto.AppointmentResponse{
		ID:        uuid.New(),
		DoctorID:  req.DoctorID,
		PatientID: patientID,
		Date:      req.Date,
		Time:      req.Time,
		Status:    string(entity.AppointmentStatusBooked),
	}, nil
}

func (m *mockAppointmentUsecase) CancelAppointment(ctx context.Context, callerID uuid.UUID, callerRoleID int, appointmentID uuid.UUID) error {
	return m.cancelErr
}

func (m *mockAppointmentUsecase) CompleteAppointment(ctx context.Context, doctorID, appointmentID uuid.UUID, req *dto.CompleteAppointmentRequest) (*dto.AppointmentResponse, error) {
	return nil, nil
}

func (m *mockAppointmentUsecase) GetAppointment(ctx context.Context, callerID uuid.UUID, callerRoleID int, appointmentID uuid.UUID) (*dto.AppointmentResponse, error) {
	return nil, nil
}

func (m *mockAppointmentUsecase) GetPatientAppointments(ctx context.Context, patientID uuid.UUID) (*dto.PatientAppointmentsResponse, error) {
	return &dto.PatientAppointmentsResponse{}, nil
}

func (m *mockAppointmentUsecase) GetDoctorAppointments(ctx context.Context, doctorID uuid.UUID) (*dto.AppointmentListResponse, error) {
	return &dto.AppointmentListResponse{}, nil
}

func (m *mockAppointmentUsecase) GetDoctorUpcomingWeek(ctx context.Context, doctorID uuid.UUID) (*dto.AppointmentListResponse, error) {
	return &dto.AppointmentListResponse{}, nil
}

func (m *mockAppointmentUsecase) GetAllAppointments(ctx context.Context) (*dto.AppointmentListResponse, error) {
	return &dto.AppointmentListResponse{}, nil
}

func (m *mockAppointmentUsecase) GetPatientHistory(ctx context.Context, doctorID, patientID uuid.UUID) (*dto.AppointmentListResponse, error) {
	return &dto.AppointmentListResponse{}, nil
}

func (m *mockAppointmentUsecase) GetTreatmentHistory(ctx context.Context, patientID uuid.UUID) (*dto.AppointmentListResponse, error) {
	return &dto.AppointmentListResponse{}, nil
}

func authedContext(r *http.Request, userID uuid.UUID, roleID int) *http.Request {
	ctx := context.WithValue(r.Context(), middleware.UserIDKey, userID)
	ctx = context.WithValue(ctx, middleware.RoleIDKey, roleID)
	return r.WithContext(ctx)
}

func TestBookAppointmentStatusMapping(t *testing.T) {
	cases := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"booked", nil, http.StatusCreated},
		{"doctor missing", usecase.ErrDoctorNotFound, http.StatusNotFound},
		{"patient slot taken", usecase.ErrPatientSlotTaken, http.StatusConflict},
		{"doctor slot taken", usecase.ErrDoctorSlotTaken, http.StatusConflict},
		{"no availability", usecase.ErrDoctorNotAvailable, http.StatusConflict},
		{"outside window", usecase.ErrOutsideAvailability, http.StatusConflict},
		{"bad date", usecase.ErrInvalidDateFormat, http.StatusBadRequest},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			h := NewAppointmentHandler(&mockAppointmentUsecase{bookErr: tc.err}, validator.NewValidator())

			body, _ := json.Marshal(dto.BookAppointmentRequest{
				DoctorID: uuid.New(),
				Date:     "2026-09-01",
				Time:     "10:00",
			})
			req := httptest.NewRequest(http.MethodPost, "/api/v1/patient/appointments", bytes.NewReader(body))
			req = authedContext(req, uuid.New(), entity.RoleIDPatient)
			rec := httptest.NewRecorder()

			h.Book(rec, req)

			if rec.Code != tc.wantStatus {
				t.Errorf("Book() status = %d, want %d", rec.Code, tc.wantStatus)
			}
		})
	}
}

func TestBookAppointmentRejectsInvalidBody(t *testing.T) {
	h := NewAppointmentHandler(&mockAppointmentUsecase{}, validator.NewValidator())

	req := httptest.NewRequest(http.MethodPost, "/api/v1/patient/appointments", bytes.NewReader([]byte(`{"date": "2026-09-01"}`)))
	req = authedContext(req, uuid.New(), entity.RoleIDPatient)
	rec := httptest.NewRecorder()

	h.Book(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("Book() status = %d, want %d for missing fields", rec.Code, http.StatusBadRequest)
	}
}

func TestCancelAppointmentStatusMapping(t *testing.T) {
	cases := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"cancelled", nil, http.StatusOK},
		{"not found", usecase.ErrAppointmentNotFound, http.StatusNotFound},
		{"not owned", usecase.ErrAppointmentNotOwned, http.StatusForbidden},
		{"already finalized", usecase.ErrAppointmentFinalized, http.StatusConflict},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			h := NewAppointmentHandler(&mockAppointmentUsecase{cancelErr: tc.err}, validator.NewValidator())

			appointmentID := uuid.New()
			req := httptest.NewRequest(http.MethodPost, "/api/v1/appointments/"+appointmentID.String()+"/cancel", nil)
			req = mux.SetURLVars(req, map[string]string{"id": appointmentID.String()})
			req = authedContext(req, uuid.New(), entity.RoleIDPatient)
			rec := httptest.NewRecorder()

			h.Cancel(rec, req)

			if rec.Code != tc.wantStatus {
				t.Errorf("Cancel() status = %d, want %d", rec.Code, tc.wantStatus)
			}
		})
	}
}

func TestCancelAppointmentRejectsBadID(t *testing.T) {
	h := NewAppointmentHandler(&mockAppointmentUsecase{}, validator.NewValidator())

	req := httptest.NewRequest(http.MethodPost, "/api/v1/appointments/not-a-uuid/cancel", nil)
	req = mux.SetURLVars(req, map[string]string{"id": "not-a-uuid"})
	req = authedContext(req, uuid.New(), entity.RoleIDPatient)
	rec := httptest.NewRecorder()

	h.Cancel(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("Cancel() status = %d, want %d for malformed ID", rec.Code, http.StatusBadRequest)
	}
}
