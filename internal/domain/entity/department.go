package entity

// Department represents a clinic department (static reference data)
type Department struct {
	ID          int    `gorm:"primaryKey;autoIncrement" json:"id"`
	Name        string `gorm:"type:varchar(100);uniqueIndex;not null" json:"name"`
	Description string `gorm:"type:varchar(300)" json:"description,omitempty"`

	// Relationships
	Doctors []DoctorProfile `gorm:"foreignKey:DepartmentID" json:"doctors,omitempty"`
}

func (Department) TableName() string {
	return "departments"
}
