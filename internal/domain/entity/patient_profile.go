package entity

import "github.com/google/uuid"

// PatientProfile represents patient-specific profile data
type PatientProfile struct {
	UserID     uuid.UUID `gorm:"type:uuid;primaryKey" json:"user_id"`
	Age        int       `gorm:"not null" json:"age"`
	Gender     string    `gorm:"type:char(1);not null" json:"gender"`
	Contact    string    `gorm:"type:varchar(20);not null;index" json:"contact"`
	Address    string    `gorm:"type:text" json:"address,omitempty"`
	BloodGroup string    `gorm:"type:varchar(5)" json:"blood_group,omitempty"`

	// Relationships
	User         User          `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Appointments []Appointment `gorm:"foreignKey:PatientID" json:"appointments,omitempty"`
}

func (PatientProfile) TableName() string {
	return "patient_profiles"
}

// Gender constants
const (
	GenderMale   = "M"
	GenderFemale = "F"
)
