package entity

import (
	"time"

	"github.com/google/uuid"
)

// TreatmentRecord holds the diagnosis entered when an appointment is
// completed. At most one record per appointment; records are never edited.
type TreatmentRecord struct {
	ID            int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	AppointmentID uuid.UUID `gorm:"type:uuid;uniqueIndex;not null" json:"appointment_id"`
	Diagnosis     string    `gorm:"type:text;not null" json:"diagnosis"`
	Prescription  string    `gorm:"type:text" json:"prescription,omitempty"`
	Notes         string    `gorm:"type:text" json:"notes,omitempty"`
	CreatedAt     time.Time `gorm:"autoCreateTime" json:"created_at"`

	// Relationships
	Appointment Appointment `gorm:"foreignKey:AppointmentID" json:"appointment,omitempty"`
}

func (TreatmentRecord) TableName() string {
	return "treatment_records"
}
