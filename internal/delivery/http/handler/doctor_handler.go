package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"clinic-appointment-system/internal/delivery/dto"
	"clinic-appointment-system/internal/domain/entity"
	"clinic-appointment-system/internal/usecase"
	"clinic-appointment-system/pkg/response"
	"clinic-appointment-system/pkg/validator"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

type DoctorHandler struct {
	doctorUsecase usecase.DoctorUsecase
	validator     *validator.CustomValidator
}

func NewDoctorHandler(doctorUsecase usecase.DoctorUsecase, validator *validator.CustomValidator) *DoctorHandler {
	return &DoctorHandler{
		doctorUsecase: doctorUsecase,
		validator:     validator,
	}
}

// doctorFilterFromQuery reads the shared listing filters (?name=, ?department_id=).
func doctorFilterFromQuery(r *http.Request) *entity.DoctorFilter {
	filter := &entity.DoctorFilter{
		Name: r.URL.Query().Get("name"),
	}
	if raw := r.URL.Query().Get("department_id"); raw != "" {
		if id, err := strconv.Atoi(raw); err == nil {
			filter.DepartmentID = id
		}
	}
	return filter
}

// Create onboards a new doctor
// @Summary Create doctor
// @Description Admin creates a doctor account with its profile
// @Tags Doctors
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.CreateDoctorRequest true "Create Doctor Request"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /admin/doctors [post]
func (h *DoctorHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateDoctorRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	doctor, err := h.doctorUsecase.CreateDoctor(r.Context(), &req)
	if err != nil {
		switch err {
		case usecase.ErrEmailAlreadyExists:
			response.Conflict(w, "Email already exists")
		case usecase.ErrDepartmentNotFound:
			response.NotFound(w, "Department not found")
		default:
			response.InternalServerError(w, "Failed to create doctor")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Doctor created successfully", doctor)
}

// GetAll lists doctors for the admin panel
// @Summary List doctors
// @Description Admin listing with optional name and department filters
// @Tags Doctors
// @Security BearerAuth
// @Produce json
// @Param name query string false "Filter by name"
// @Param department_id query int false "Filter by department"
// @Success 200 {object} response.Response
// @Router /admin/doctors [get]
func (h *DoctorHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	doctors, err := h.doctorUsecase.GetAllDoctors(r.Context(), doctorFilterFromQuery(r))
	if err != nil {
		response.InternalServerError(w, "Failed to list doctors")
		return
	}

	response.Success(w, http.StatusOK, "Doctors retrieved successfully", doctors)
}

// Browse lists active doctors for patients
// @Summary Browse doctors
// @Description Patient-facing listing of active doctors only
// @Tags Doctors
// @Security BearerAuth
// @Produce json
// @Param name query string false "Filter by name"
// @Param department_id query int false "Filter by department"
// @Success 200 {object} response.Response
// @Router /patient/doctors [get]
func (h *DoctorHandler) Browse(w http.ResponseWriter, r *http.Request) {
	doctors, err := h.doctorUsecase.GetActiveDoctors(r.Context(), doctorFilterFromQuery(r))
	if err != nil {
		response.InternalServerError(w, "Failed to list doctors")
		return
	}

	response.Success(w, http.StatusOK, "Doctors retrieved successfully", doctors)
}

// GetByID returns one doctor
// @Summary Get doctor
// @Tags Doctors
// @Security BearerAuth
// @Produce json
// @Param id path string true "Doctor ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /admin/doctors/{id} [get]
func (h *DoctorHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	doctorID, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid doctor ID", nil)
		return
	}

	doctor, err := h.doctorUsecase.GetDoctor(r.Context(), doctorID)
	if err != nil {
		switch err {
		case usecase.ErrDoctorNotFound:
			response.NotFound(w, "Doctor not found")
		default:
			response.InternalServerError(w, "Failed to get doctor")
		}
		return
	}

	response.Success(w, http.StatusOK, "Doctor retrieved successfully", doctor)
}

// Update modifies a doctor's account and profile
// @Summary Update doctor
// @Tags Doctors
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Doctor ID"
// @Param request body dto.UpdateDoctorRequest true "Update Doctor Request"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /admin/doctors/{id} [put]
func (h *DoctorHandler) Update(w http.ResponseWriter, r *http.Request) {
	doctorID, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid doctor ID", nil)
		return
	}

	var req dto.UpdateDoctorRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	doctor, err := h.doctorUsecase.UpdateDoctor(r.Context(), doctorID, &req)
	if err != nil {
		switch err {
		case usecase.ErrDoctorNotFound:
			response.NotFound(w, "Doctor not found")
		case usecase.ErrDepartmentNotFound:
			response.NotFound(w, "Department not found")
		case usecase.ErrEmailAlreadyExists:
			response.Conflict(w, "Email already exists")
		default:
			response.InternalServerError(w, "Failed to update doctor")
		}
		return
	}

	response.Success(w, http.StatusOK, "Doctor updated successfully", doctor)
}

// Deactivate soft-deletes a doctor account
// @Summary Deactivate doctor
// @Description Flips the active flag; appointment history is preserved
// @Tags Doctors
// @Security BearerAuth
// @Produce json
// @Param id path string true "Doctor ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /admin/doctors/{id} [delete]
func (h *DoctorHandler) Deactivate(w http.ResponseWriter, r *http.Request) {
	doctorID, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid doctor ID", nil)
		return
	}

	if err := h.doctorUsecase.DeactivateDoctor(r.Context(), doctorID); err != nil {
		switch err {
		case usecase.ErrDoctorNotFound:
			response.NotFound(w, "Doctor not found")
		default:
			response.InternalServerError(w, "Failed to deactivate doctor")
		}
		return
	}

	response.Success(w, http.StatusOK, "Doctor deactivated successfully", nil)
}
