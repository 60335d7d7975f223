package entity

import (
	"time"

	"github.com/google/uuid"
)

// AvailabilityWindow is a doctor-declared time range on a given date during
// which booking is permitted. One window per doctor per date; publishing
// replaces the doctor's full set atomically.
type AvailabilityWindow struct {
	ID         int       `gorm:"primaryKey;autoIncrement" json:"id"`
	DoctorID   uuid.UUID `gorm:"type:uuid;not null;index;uniqueIndex:uq_availability_doctor_date" json:"doctor_id"`
	WindowDate time.Time `gorm:"type:date;not null;uniqueIndex:uq_availability_doctor_date" json:"window_date"`
	StartTime  string    `gorm:"type:time;not null" json:"start_time"`
	EndTime    string    `gorm:"type:time;not null" json:"end_time"`
	CreatedAt  time.Time `gorm:"autoCreateTime" json:"created_at"`

	// Relationships
	Doctor DoctorProfile `gorm:"foreignKey:DoctorID" json:"doctor,omitempty"`
}

func (AvailabilityWindow) TableName() string {
	return "availability_windows"
}

// Covers reports whether the requested HH:MM time falls within the window.
// Both bounds are inclusive.
func (w *AvailabilityWindow) Covers(at string) bool {
	t, err := time.Parse("15:04", at)
	if err != nil {
		return false
	}
	start, err := time.Parse("15:04", normalizeClock(w.StartTime))
	if err != nil {
		return false
	}
	end, err := time.Parse("15:04", normalizeClock(w.EndTime))
	if err != nil {
		return false
	}
	return !t.Before(start) && !t.After(end)
}

// normalizeClock trims trailing seconds from a time column value ("09:00:00" -> "09:00").
func normalizeClock(s string) string {
	if len(s) > 5 {
		return s[:5]
	}
	return s
}
