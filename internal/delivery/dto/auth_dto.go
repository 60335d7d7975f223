package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

// RegisterPatientRequest is the patient self-registration form.
type RegisterPatientRequest struct {
	Email      string `json:"email" validate:"required,email"`
	Password   string `json:"password" validate:"required,min=6"`
	FullName   string `json:"full_name" validate:"required,min=2"`
	Age        int    `json:"age" validate:"required,gte=0,lte=150"`
	Gender     string `json:"gender" validate:"required,oneof=M F"`
	Contact    string `json:"contact" validate:"required,len=10,numeric"`
	Address    string `json:"address" validate:"omitempty"`
	BloodGroup string `json:"blood_group" validate:"omitempty,max=5"`
}

// Response DTOs

type TokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresIn    int64  `json:"expires_in"`
}

type UserResponse struct {
	ID             uuid.UUID        `json:"id"`
	Email          string           `json:"email"`
	FullName       string           `json:"full_name"`
	Role           string           `json:"role"`
	DoctorProfile  *DoctorResponse  `json:"doctor_profile,omitempty"`
	PatientProfile *PatientResponse `json:"patient_profile,omitempty"`
	CreatedAt      time.Time        `json:"created_at"`
	UpdatedAt      time.Time        `json:"updated_at"`
}
