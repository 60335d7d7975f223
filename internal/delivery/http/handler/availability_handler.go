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

type AvailabilityHandler struct {
	availabilityUsecase usecase.AvailabilityUsecase
	validator           *validator.CustomValidator
}

func NewAvailabilityHandler(availabilityUsecase usecase.AvailabilityUsecase, validator *validator.CustomValidator) *AvailabilityHandler {
	return &AvailabilityHandler{
		availabilityUsecase: availabilityUsecase,
		validator:           validator,
	}
}

// Publish replaces the caller's published windows
// @Summary Publish availability
// @Description Doctor replaces their full availability set for the week
// @Tags Availability
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.PublishAvailabilityRequest true "Publish Request"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /doctor/availability [post]
func (h *AvailabilityHandler) Publish(w http.ResponseWriter, r *http.Request) {
	doctorID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	var req dto.PublishAvailabilityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	windows, err := h.availabilityUsecase.PublishAvailability(r.Context(), doctorID, &req)
	if err != nil {
		switch err {
		case usecase.ErrInvalidDateFormat, usecase.ErrInvalidTimeFormat, usecase.ErrWindowOrder, usecase.ErrDuplicateWindowDate:
			response.Error(w, http.StatusBadRequest, err.Error(), nil)
		default:
			response.InternalServerError(w, "Failed to publish availability")
		}
		return
	}

	response.Success(w, http.StatusOK, "Availability published successfully", windows)
}

// GetMine returns the caller's published windows for the coming week
// @Summary My availability
// @Tags Availability
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.Response
// @Router /doctor/availability [get]
func (h *AvailabilityHandler) GetMine(w http.ResponseWriter, r *http.Request) {
	doctorID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	windows, err := h.availabilityUsecase.GetMyAvailability(r.Context(), doctorID)
	if err != nil {
		response.InternalServerError(w, "Failed to get availability")
		return
	}

	response.Success(w, http.StatusOK, "Availability retrieved successfully", windows)
}

// GetForDoctor returns an active doctor's windows for patients
// @Summary Doctor availability
// @Tags Availability
// @Security BearerAuth
// @Produce json
// @Param id path string true "Doctor ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /patient/doctors/{id}/availability [get]
func (h *AvailabilityHandler) GetForDoctor(w http.ResponseWriter, r *http.Request) {
	doctorID, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid doctor ID", nil)
		return
	}

	windows, err := h.availabilityUsecase.GetDoctorAvailability(r.Context(), doctorID)
	if err != nil {
		switch err {
		case usecase.ErrDoctorNotFound:
			response.NotFound(w, "Doctor not found")
		default:
			response.InternalServerError(w, "Failed to get availability")
		}
		return
	}

	response.Success(w, http.StatusOK, "Availability retrieved successfully", windows)
}
