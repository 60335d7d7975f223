package dto

// Request DTOs

type CreateDepartmentRequest struct {
	Name        string `json:"name" validate:"required,min=2,max=100"`
	Description string `json:"description" validate:"omitempty,max=300"`
}

// Response DTOs

type DepartmentResponse struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

type DepartmentListResponse struct {
	Departments []DepartmentResponse `json:"departments"`
	Total       int                  `json:"total"`
}
