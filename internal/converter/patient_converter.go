package converter

import (
	"clinic-appointment-system/internal/delivery/dto"
	"clinic-appointment-system/internal/domain/entity"
)

// PatientProfileToResponse converts a PatientProfile entity (with its User
// preloaded) to a PatientResponse DTO
func PatientProfileToResponse(profile *entity.PatientProfile) *dto.PatientResponse {
	if profile == nil {
		return nil
	}

	return &dto.PatientResponse{
		ID:         profile.UserID,
		Email:      profile.User.Email,
		FullName:   profile.User.FullName,
		Age:        profile.Age,
		Gender:     profile.Gender,
		Contact:    profile.Contact,
		Address:    profile.Address,
		BloodGroup: profile.BloodGroup,
		IsActive:   profile.User.IsActive,
		CreatedAt:  profile.User.CreatedAt,
		UpdatedAt:  profile.User.UpdatedAt,
	}
}

// PatientProfilesToResponses converts a slice of PatientProfile entities to slice of PatientResponse DTOs
func PatientProfilesToResponses(profiles []entity.PatientProfile) []dto.PatientResponse {
	responses := make([]dto.PatientResponse, len(profiles))
	for i := range profiles {
		responses[i] = *PatientProfileToResponse(&profiles[i])
	}
	return responses
}
