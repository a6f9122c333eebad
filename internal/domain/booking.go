package domain

import (
	"time"

	"github.com/google/uuid"
)

// BookingStatus represents the status of a booking
type BookingStatus string

const (
	StatusPending   BookingStatus = "PENDING"
	StatusConfirmed BookingStatus = "CONFIRMED"
	StatusCompleted BookingStatus = "COMPLETED"
	StatusCanceled  BookingStatus = "CANCELED"
	StatusNoShow    BookingStatus = "NO_SHOW"
)

// Booking is a read-only snapshot of a customer booking with one staff member.
// The occupied time is the half-open interval [StartAt, EndAt).
type Booking struct {
	ID        uuid.UUID
	SalonID   uuid.UUID
	StaffID   uuid.UUID
	ServiceID uuid.UUID
	StartAt   time.Time
	EndAt     time.Time
	Status    BookingStatus
}

// IsActive returns true if the booking blocks the staff member's time
func (b *Booking) IsActive() bool {
	for _, s := range InactiveStatuses {
		if b.Status == s {
			return false
		}
	}
	return true
}

// Overlaps reports whether [start, end) intersects the booking interval
func (b *Booking) Overlaps(start, end time.Time) bool {
	return b.StartAt.Before(end) && start.Before(b.EndAt)
}

// ActiveBookingsFilter selects bookings that can block availability
type ActiveBookingsFilter struct {
	StaffIDs []uuid.UUID
	From     time.Time // inclusive lower bound of the range (instant)
	To       time.Time // exclusive upper bound of the range (instant)
}
