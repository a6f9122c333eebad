package domain

import "github.com/google/uuid"

// Staff is a salon employee who can be booked
type Staff struct {
	ID       uuid.UUID
	SalonID  uuid.UUID
	FullName string
	IsActive bool
}
