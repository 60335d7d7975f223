package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

// UpdatePatientProfileRequest is the patient self-service profile form.
// Password changes require the old password.
type UpdatePatientProfileRequest struct {
	FullName    string `json:"full_name" validate:"omitempty,min=2"`
	Age         *int   `json:"age" validate:"omitempty,gte=0,lte=150"`
	Gender      string `json:"gender" validate:"omitempty,oneof=M F"`
	Contact     string `json:"contact" validate:"omitempty,len=10,numeric"`
	Address     string `json:"address" validate:"omitempty"`
	BloodGroup  string `json:"blood_group" validate:"omitempty,max=5"`
	OldPassword string `json:"old_password" validate:"omitempty"`
	Password    string `json:"password" validate:"omitempty,min=6"`
}

// Response DTOs

type PatientResponse struct {
	ID         uuid.UUID `json:"id"`
	Email      string    `json:"email"`
	FullName   string    `json:"full_name"`
	Age        int       `json:"age"`
	Gender     string    `json:"gender"`
	Contact    string    `json:"contact"`
	Address    string    `json:"address,omitempty"`
	BloodGroup string    `json:"blood_group,omitempty"`
	IsActive   *bool     `json:"is_active,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

type PatientListResponse struct {
	Patients []PatientResponse `json:"patients"`
	Total    int               `json:"total"`
}
