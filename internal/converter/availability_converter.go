package converter

import (
	"clinic-appointment-system/internal/delivery/dto"
	"clinic-appointment-system/internal/domain/entity"
)

func AvailabilityWindowToResponse(window *entity.AvailabilityWindow) *dto.AvailabilityWindowResponse {
	if window == nil {
		return nil
	}

	return &dto.AvailabilityWindowResponse{
		ID:        window.ID,
		DoctorID:  window.DoctorID,
		Date:      window.WindowDate.Format("2006-01-02"),
		StartTime: window.StartTime,
		EndTime:   window.EndTime,
		CreatedAt: window.CreatedAt,
	}
}

func AvailabilityWindowsToResponses(windows []entity.AvailabilityWindow) []dto.AvailabilityWindowResponse {
	responses := make([]dto.AvailabilityWindowResponse, len(windows))
	for i := range windows {
		responses[i] = *AvailabilityWindowToResponse(&windows[i])
	}
	return responses
}
