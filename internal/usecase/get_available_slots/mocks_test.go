package get_available_slots

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	"github.com/m04kA/SMC-AvailabilityService/pkg/types"
)

type mockServiceRepo struct {
	service *domain.Service
	err     error
}

func (m *mockServiceRepo) FindService(_ context.Context, _, _ uuid.UUID) (*domain.Service, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.service, nil
}

type mockStaffRepo struct {
	staff      []*domain.Staff
	err        error
	gotStaffID *uuid.UUID
	calls      int
}

func (m *mockStaffRepo) FindEligibleStaff(_ context.Context, _, _ uuid.UUID, staffID *uuid.UUID) ([]*domain.Staff, error) {
	m.calls++
	m.gotStaffID = staffID
	if m.err != nil {
		return nil, m.err
	}
	if staffID == nil {
		return m.staff, nil
	}
	var filtered []*domain.Staff
	for _, s := range m.staff {
		if s.ID == *staffID {
			filtered = append(filtered, s)
		}
	}
	return filtered, nil
}

type mockShiftRepo struct {
	shifts []*domain.Shift
	err    error
}

func (m *mockShiftRepo) FindActiveShifts(_ context.Context, _ []uuid.UUID) ([]*domain.Shift, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.shifts, nil
}

type mockBookingRepo struct {
	mu        sync.Mutex
	bookings  []*domain.Booking
	err       error
	gotFilter domain.ActiveBookingsFilter
}

func (m *mockBookingRepo) FindActiveBookings(_ context.Context, filter domain.ActiveBookingsFilter) ([]*domain.Booking, error) {
	m.mu.Lock()
	m.gotFilter = filter
	m.mu.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	return m.bookings, nil
}

type mockMetrics struct {
	slotsReturned  []int
	rejectedShifts int
}

func (m *mockMetrics) ObserveSlotsReturned(n int) { m.slotsReturned = append(m.slotsReturned, n) }
func (m *mockMetrics) IncRejectedShifts(n int)    { m.rejectedShifts += n }

type fixedTimeProvider struct {
	now time.Time
}

func (p *fixedTimeProvider) Now() time.Time {
	return p.now
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func shift(staffID uuid.UUID, day time.Weekday, start, end string) *domain.Shift {
	return &domain.Shift{
		ID:         uuid.New(),
		StaffID:    staffID,
		DayOfWeek:  int(day),
		StartLocal: types.MustTimeString(start),
		EndLocal:   types.MustTimeString(end),
		IsActive:   true,
	}
}

func booking(staffID uuid.UUID, start, end time.Time) *domain.Booking {
	return &domain.Booking{
		ID:      uuid.New(),
		StaffID: staffID,
		StartAt: start,
		EndAt:   end,
		Status:  domain.StatusConfirmed,
	}
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func mustLoad(t interface{ Fatalf(string, ...any) }, name string) *time.Location {
	loc, err := time.LoadLocation(name)
	if err != nil {
		t.Fatalf("load location %s: %v", name, err)
	}
	return loc
}
