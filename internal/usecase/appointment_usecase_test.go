package usecase

import (
	"testing"

	"clinic-appointment-system/internal/domain/entity"

	"github.com/google/uuid"
)

func TestOwnsAppointment(t *testing.T) {
	u := &appointmentUsecase{}
	doctorID := uuid.New()
	patientID := uuid.New()
	stranger := uuid.New()

	appointment := &entity.Appointment{
		DoctorID:  doctorID,
		PatientID: patientID,
	}

	cases := []struct {
		name     string
		callerID uuid.UUID
		roleID   int
		want     bool
	}{
		{"patient owns own booking", patientID, entity.RoleIDPatient, true},
		{"other patient does not", stranger, entity.RoleIDPatient, false},
		{"treating doctor owns booking", doctorID, entity.RoleIDDoctor, true},
		{"other doctor does not", stranger, entity.RoleIDDoctor, false},
		{"patient id with doctor role does not", patientID, entity.RoleIDDoctor, false},
		{"admin role has no ownership", patientID, entity.RoleIDAdmin, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := u.ownsAppointment(appointment, tc.callerID, tc.roleID); got != tc.want {
				t.Errorf("ownsAppointment() = %v, want %v", got, tc.want)
			}
		})
	}
}
