package entity

// DoctorFilter is a domain-level filter for doctor listings.
// Used by repository layer to avoid coupling with delivery DTOs.
type DoctorFilter struct {
	Name         string // Filter by doctor name (ILIKE)
	DepartmentID int    // Filter by department
}
