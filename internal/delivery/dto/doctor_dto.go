package dto

import (
	"github.com/google/uuid"
)

// Request DTOs

type CreateDoctorRequest struct {
	Email           string `json:"email" validate:"required,email"`
	Password        string `json:"password" validate:"required,min=6"`
	FullName        string `json:"full_name" validate:"required,min=2"`
	DepartmentID    int    `json:"department_id" validate:"required,min=1"`
	Qualification   string `json:"qualification" validate:"required"`
	ExperienceYears int    `json:"experience_years" validate:"gte=0,lte=70"`
	Contact         string `json:"contact" validate:"required,len=10,numeric"`
}

type UpdateDoctorRequest struct {
	Email           string `json:"email" validate:"omitempty,email"`
	FullName        string `json:"full_name" validate:"omitempty,min=2"`
	DepartmentID    int    `json:"department_id" validate:"omitempty,min=1"`
	Qualification   string `json:"qualification" validate:"omitempty"`
	ExperienceYears *int   `json:"experience_years" validate:"omitempty,gte=0,lte=70"`
	Contact         string `json:"contact" validate:"omitempty,len=10,numeric"`
}

// Response DTOs

type DoctorResponse struct {
	ID              uuid.UUID           `json:"id"`
	Email           string              `json:"email"`
	FullName        string              `json:"full_name"`
	Department      *DepartmentResponse `json:"department,omitempty"`
	Qualification   string              `json:"qualification"`
	ExperienceYears int                 `json:"experience_years"`
	Contact         string              `json:"contact,omitempty"`
	IsActive        *bool               `json:"is_active,omitempty"`
}

type DoctorListResponse struct {
	Doctors []DoctorResponse `json:"doctors"`
	Total   int              `json:"total"`
}
