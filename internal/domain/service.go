package domain

import "github.com/google/uuid"

// Service is a bookable salon service with a fixed duration.
// Timezone is the IANA name of the owning salon's timezone.
type Service struct {
	ID              uuid.UUID
	SalonID         uuid.UUID
	Name            string
	DurationMinutes int
	Timezone        string
}

// HasValidDuration returns true if the service can produce slots
func (s *Service) HasValidDuration() bool {
	return s.DurationMinutes > 0
}
