package handler

import (
	"encoding/json"
	"net/http"

	"clinic-appointment-system/internal/delivery/dto"
	"clinic-appointment-system/internal/delivery/http/middleware"
	"clinic-appointment-system/internal/usecase"
	"clinic-appointment-system/pkg/response"
	"clinic-appointment-system/pkg/validator"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

type AppointmentHandler struct {
	appointmentUsecase usecase.AppointmentUsecase
	validator          *validator.CustomValidator
}

func NewAppointmentHandler(appointmentUsecase usecase.AppointmentUsecase, validator *validator.CustomValidator) *AppointmentHandler {
	return &AppointmentHandler{
		appointmentUsecase: appointmentUsecase,
		validator:          validator,
	}
}

// Book creates an appointment for the calling patient
// @Summary Book appointment
// @Description Book a slot with a doctor; all conflict checks run atomically
// @Tags Appointments
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.BookAppointmentRequest true "Book Request"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /patient/appointments [post]
func (h *AppointmentHandler) Book(w http.ResponseWriter, r *http.Request) {
	patientID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	var req dto.BookAppointmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	appointment, err := h.appointmentUsecase.BookAppointment(r.Context(), patientID, &req)
	if err != nil {
		switch err {
		case usecase.ErrInvalidDateFormat, usecase.ErrInvalidTimeFormat:
			response.Error(w, http.StatusBadRequest, err.Error(), nil)
		case usecase.ErrDoctorNotFound:
			response.NotFound(w, "Doctor not found")
		case usecase.ErrPatientSlotTaken:
			response.Conflict(w, "You already have an appointment at this time")
		case usecase.ErrDoctorSlotTaken:
			response.Conflict(w, "Doctor already has an appointment at this time")
		case usecase.ErrDoctorNotAvailable:
			response.Conflict(w, "Doctor has no availability on this date")
		case usecase.ErrOutsideAvailability:
			response.Conflict(w, "Requested time is outside the doctor's availability")
		default:
			response.InternalServerError(w, "Failed to book appointment")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Appointment booked successfully", appointment)
}

// Cancel cancels a booked appointment
// @Summary Cancel appointment
// @Description Owner (patient) or treating doctor cancels a Booked appointment
// @Tags Appointments
// @Security BearerAuth
// @Produce json
// @Param id path string true "Appointment ID"
// @Success 200 {object} response.Response
// @Failure 403 {object} response.Response
// @Failure 404 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /appointments/{id}/cancel [post]
func (h *AppointmentHandler) Cancel(w http.ResponseWriter, r *http.Request) {
	callerID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}
	roleID, ok := middleware.GetRoleIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	appointmentID, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid appointment ID", nil)
		return
	}

	if err := h.appointmentUsecase.CancelAppointment(r.Context(), callerID, roleID, appointmentID); err != nil {
		switch err {
		case usecase.ErrAppointmentNotFound:
			response.NotFound(w, "Appointment not found")
		case usecase.ErrAppointmentNotOwned:
			response.Forbidden(w, "Appointment does not belong to you")
		case usecase.ErrAppointmentFinalized:
			response.Conflict(w, "Appointment is already completed or cancelled")
		default:
			response.InternalServerError(w, "Failed to cancel appointment")
		}
		return
	}

	response.Success(w, http.StatusOK, "Appointment cancelled successfully", nil)
}

// Complete finalizes an appointment with a treatment record
// @Summary Complete appointment
// @Description Treating doctor records diagnosis and marks the visit Completed
// @Tags Appointments
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Appointment ID"
// @Param request body dto.CompleteAppointmentRequest true "Complete Request"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 403 {object} response.Response
// @Failure 404 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /doctor/appointments/{id}/complete [post]
func (h *AppointmentHandler) Complete(w http.ResponseWriter, r *http.Request) {
	doctorID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	appointmentID, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid appointment ID", nil)
		return
	}

	var req dto.CompleteAppointmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	appointment, err := h.appointmentUsecase.CompleteAppointment(r.Context(), doctorID, appointmentID, &req)
	if err != nil {
		switch err {
		case usecase.ErrAppointmentNotFound:
			response.NotFound(w, "Appointment not found")
		case usecase.ErrAppointmentNotOwned:
			response.Forbidden(w, "Appointment does not belong to you")
		case usecase.ErrTreatmentExists:
			response.Conflict(w, "Treatment record already exists")
		case usecase.ErrAppointmentFinalized:
			response.Conflict(w, "Appointment is already completed or cancelled")
		default:
			response.InternalServerError(w, "Failed to complete appointment")
		}
		return
	}

	response.Success(w, http.StatusOK, "Appointment completed successfully", appointment)
}

// GetMine lists the calling patient's appointments split into upcoming and past
// @Summary My appointments
// @Tags Appointments
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.Response
// @Router /patient/appointments [get]
func (h *AppointmentHandler) GetMine(w http.ResponseWriter, r *http.Request) {
	patientID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	appointments, err := h.appointmentUsecase.GetPatientAppointments(r.Context(), patientID)
	if err != nil {
		response.InternalServerError(w, "Failed to list appointments")
		return
	}

	response.Success(w, http.StatusOK, "Appointments retrieved successfully", appointments)
}

// GetTreatmentHistory lists the calling patient's completed visits
// @Summary My treatment history
// @Tags Appointments
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.Response
// @Router /patient/treatments [get]
func (h *AppointmentHandler) GetTreatmentHistory(w http.ResponseWriter, r *http.Request) {
	patientID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	history, err := h.appointmentUsecase.GetTreatmentHistory(r.Context(), patientID)
	if err != nil {
		response.InternalServerError(w, "Failed to list treatment history")
		return
	}

	response.Success(w, http.StatusOK, "Treatment history retrieved successfully", history)
}

// GetDoctorAppointments lists the calling doctor's appointments
// @Summary Doctor's appointments
// @Tags Appointments
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.Response
// @Router /doctor/appointments [get]
func (h *AppointmentHandler) GetDoctorAppointments(w http.ResponseWriter, r *http.Request) {
	doctorID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	appointments, err := h.appointmentUsecase.GetDoctorAppointments(r.Context(), doctorID)
	if err != nil {
		response.InternalServerError(w, "Failed to list appointments")
		return
	}

	response.Success(w, http.StatusOK, "Appointments retrieved successfully", appointments)
}

// GetUpcomingWeek is the doctor's dashboard feed
// @Summary Doctor's upcoming week
// @Tags Appointments
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.Response
// @Router /doctor/appointments/upcoming [get]
func (h *AppointmentHandler) GetUpcomingWeek(w http.ResponseWriter, r *http.Request) {
	doctorID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	appointments, err := h.appointmentUsecase.GetDoctorUpcomingWeek(r.Context(), doctorID)
	if err != nil {
		response.InternalServerError(w, "Failed to list appointments")
		return
	}

	response.Success(w, http.StatusOK, "Appointments retrieved successfully", appointments)
}

// GetPatientHistory lets a treating doctor review a patient's record
// @Summary Patient history
// @Tags Appointments
// @Security BearerAuth
// @Produce json
// @Param id path string true "Patient ID"
// @Success 200 {object} response.Response
// @Failure 403 {object} response.Response
// @Router /doctor/patients/{id}/history [get]
func (h *AppointmentHandler) GetPatientHistory(w http.ResponseWriter, r *http.Request) {
	doctorID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	patientID, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid patient ID", nil)
		return
	}

	history, err := h.appointmentUsecase.GetPatientHistory(r.Context(), doctorID, patientID)
	if err != nil {
		switch err {
		case usecase.ErrAppointmentNotOwned:
			response.Forbidden(w, "You have no appointments with this patient")
		default:
			response.InternalServerError(w, "Failed to list patient history")
		}
		return
	}

	response.Success(w, http.StatusOK, "Patient history retrieved successfully", history)
}

// GetAll lists every appointment for the admin panel
// @Summary List appointments
// @Tags Appointments
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.Response
// @Router /admin/appointments [get]
func (h *AppointmentHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	appointments, err := h.appointmentUsecase.GetAllAppointments(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to list appointments")
		return
	}

	response.Success(w, http.StatusOK, "Appointments retrieved successfully", appointments)
}

// GetByID returns one appointment for admin inspection
// @Summary Get appointment
// @Tags Appointments
// @Security BearerAuth
// @Produce json
// @Param id path string true "Appointment ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /admin/appointments/{id} [get]
func (h *AppointmentHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	callerID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}
	roleID, ok := middleware.GetRoleIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	appointmentID, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid appointment ID", nil)
		return
	}

	appointment, err := h.appointmentUsecase.GetAppointment(r.Context(), callerID, roleID, appointmentID)
	if err != nil {
		switch err {
		case usecase.ErrAppointmentNotFound:
			response.NotFound(w, "Appointment not found")
		case usecase.ErrAppointmentNotOwned:
			response.Forbidden(w, "Appointment does not belong to you")
		default:
			response.InternalServerError(w, "Failed to get appointment")
		}
		return
	}

	response.Success(w, http.StatusOK, "Appointment retrieved successfully", appointment)
}
