package domain

import (
	"github.com/google/uuid"

	"github.com/m04kA/SMC-AvailabilityService/pkg/types"
)

// Shift is a recurring weekly working window of a staff member.
// DayOfWeek follows time.Weekday: 0 = Sunday, 6 = Saturday.
// StartLocal and EndLocal are wall-clock times in the salon's timezone.
type Shift struct {
	ID         uuid.UUID
	StaffID    uuid.UUID
	DayOfWeek  int
	StartLocal types.TimeString
	EndLocal   types.TimeString
	IsActive   bool
}

// IsSameDay returns true if the shift starts and ends on the same calendar day.
// Shifts crossing midnight (or with zero length) are not supported.
func (s *Shift) IsSameDay() bool {
	return s.StartLocal.IsBefore(s.EndLocal)
}

// HasValidDay returns true if DayOfWeek is within [0, 6]
func (s *Shift) HasValidDay() bool {
	return s.DayOfWeek >= 0 && s.DayOfWeek <= 6
}
