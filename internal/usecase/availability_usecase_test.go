package usecase

import (
	"errors"
	"testing"

	"clinic-appointment-system/internal/delivery/dto"

	"github.com/google/uuid"
)

func TestParseWindows(t *testing.T) {
	doctorID := uuid.New()

	cases := []struct {
		name    string
		inputs  []dto.AvailabilityWindowInput
		wantErr error
		wantLen int
	}{
		{
			name: "valid week",
			inputs: []dto.AvailabilityWindowInput{
				{Date: "2026-09-01", StartTime: "09:00", EndTime: "12:00"},
				{Date: "2026-09-02", StartTime: "13:00", EndTime: "17:00"},
			},
			wantLen: 2,
		},
		{
			name: "start equal to end is allowed",
			inputs: []dto.AvailabilityWindowInput{
				{Date: "2026-09-01", StartTime: "09:00", EndTime: "09:00"},
			},
			wantLen: 1,
		},
		{
			name:    "empty set clears the schedule",
			inputs:  nil,
			wantLen: 0,
		},
		{
			name: "bad date format",
			inputs: []dto.AvailabilityWindowInput{
				{Date: "01-09-2026", StartTime: "09:00", EndTime: "12:00"},
			},
			wantErr: ErrInvalidDateFormat,
		},
		{
			name: "bad time format",
			inputs: []dto.AvailabilityWindowInput{
				{Date: "2026-09-01", StartTime: "9am", EndTime: "12:00"},
			},
			wantErr: ErrInvalidTimeFormat,
		},
		{
			name: "start after end",
			inputs: []dto.AvailabilityWindowInput{
				{Date: "2026-09-01", StartTime: "14:00", EndTime: "12:00"},
			},
			wantErr: ErrWindowOrder,
		},
		{
			name: "duplicate date",
			inputs: []dto.AvailabilityWindowInput{
				{Date: "2026-09-01", StartTime: "09:00", EndTime: "12:00"},
				{Date: "2026-09-01", StartTime: "13:00", EndTime: "17:00"},
			},
			wantErr: ErrDuplicateWindowDate,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			windows, err := parseWindows(doctorID, tc.inputs)
			if !errors.Is(err, tc.wantErr) {
				t.Fatalf("parseWindows() error = %v, want %v", err, tc.wantErr)
			}
			if tc.wantErr != nil {
				return
			}
			if len(windows) != tc.wantLen {
				t.Fatalf("parseWindows() returned %d windows, want %d", len(windows), tc.wantLen)
			}
			for _, w := range windows {
				if w.DoctorID != doctorID {
					t.Errorf("window has doctor %s, want %s", w.DoctorID, doctorID)
				}
			}
		})
	}
}
