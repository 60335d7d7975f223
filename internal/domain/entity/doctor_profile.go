package entity

import "github.com/google/uuid"

// DoctorProfile represents doctor-specific profile data
type DoctorProfile struct {
	UserID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"user_id"`
	DepartmentID    int       `gorm:"not null;index" json:"department_id"`
	Qualification   string    `gorm:"type:varchar(100);not null" json:"qualification"`
	ExperienceYears int       `gorm:"not null;default:0" json:"experience_years"`
	Contact         string    `gorm:"type:varchar(20)" json:"contact,omitempty"`

	// Relationships
	User         User                 `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Department   Department           `gorm:"foreignKey:DepartmentID" json:"department,omitempty"`
	Windows      []AvailabilityWindow `gorm:"foreignKey:DoctorID" json:"windows,omitempty"`
	Appointments []Appointment        `gorm:"foreignKey:DoctorID" json:"appointments,omitempty"`
}

func (DoctorProfile) TableName() string {
	return "doctor_profiles"
}
