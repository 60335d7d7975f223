package converter

import (
	"clinic-appointment-system/internal/delivery/dto"
	"clinic-appointment-system/internal/domain/entity"
)

// DoctorProfileToResponse converts a DoctorProfile entity to DoctorResponse DTO
func DoctorProfileToResponse(profile *entity.DoctorProfile) *dto.DoctorResponse {
	if profile == nil {
		return nil
	}

	response := &dto.DoctorResponse{
		ID:              profile.UserID,
		Email:           profile.User.Email,
		FullName:        profile.User.FullName,
		Qualification:   profile.Qualification,
		ExperienceYears: profile.ExperienceYears,
		Contact:         profile.Contact,
		IsActive:        profile.User.IsActive,
	}

	if profile.Department.ID != 0 {
		response.Department = DepartmentToResponse(&profile.Department)
	}

	return response
}

// DoctorProfilesToResponses converts a slice of DoctorProfile entities to slice of DoctorResponse DTOs
func DoctorProfilesToResponses(profiles []entity.DoctorProfile) []dto.DoctorResponse {
	responses := make([]dto.DoctorResponse, len(profiles))
	for i := range profiles {
		responses[i] = *DoctorProfileToResponse(&profiles[i])
	}
	return responses
}
