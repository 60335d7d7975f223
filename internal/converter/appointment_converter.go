package converter

import (
	"clinic-appointment-system/internal/delivery/dto"
	"clinic-appointment-system/internal/domain/entity"

	"github.com/google/uuid"
)

// AppointmentToResponse converts an Appointment entity to AppointmentResponse DTO
func AppointmentToResponse(appointment *entity.Appointment) *dto.AppointmentResponse {
	if appointment == nil {
		return nil
	}

	response := &dto.AppointmentResponse{
		ID:        appointment.ID,
		DoctorID:  appointment.DoctorID,
		PatientID: appointment.PatientID,
		Date:      appointment.AppointmentDate.Format("2006-01-02"),
		Time:      appointment.AppointmentTime,
		Status:    string(appointment.Status),
		CreatedAt: appointment.CreatedAt,
		UpdatedAt: appointment.UpdatedAt,
	}

	if appointment.Doctor.UserID != uuid.Nil {
		response.Doctor = DoctorProfileToResponse(&appointment.Doctor)
	}
	if appointment.Patient.UserID != uuid.Nil {
		response.Patient = PatientProfileToResponse(&appointment.Patient)
	}
	if appointment.Treatment != nil {
		response.Treatment = TreatmentRecordToResponse(appointment.Treatment)
	}

	return response
}

// AppointmentsToResponses converts a slice of Appointment entities to slice of AppointmentResponse DTOs
func AppointmentsToResponses(appointments []entity.Appointment) []dto.AppointmentResponse {
	responses := make([]dto.AppointmentResponse, len(appointments))
	for i := range appointments {
		responses[i] = *AppointmentToResponse(&appointments[i])
	}
	return responses
}

func TreatmentRecordToResponse(record *entity.TreatmentRecord) *dto.TreatmentRecordResponse {
	if record == nil {
		return nil
	}

	return &dto.TreatmentRecordResponse{
		ID:            record.ID,
		AppointmentID: record.AppointmentID,
		Diagnosis:     record.Diagnosis,
		Prescription:  record.Prescription,
		Notes:         record.Notes,
		CreatedAt:     record.CreatedAt,
	}
}
