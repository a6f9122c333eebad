package get_available_slots

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	serviceStorage "github.com/m04kA/SMC-AvailabilityService/internal/infra/storage/service"
	"github.com/m04kA/SMC-AvailabilityService/pkg/ptr"
)

type fixture struct {
	salonID  uuid.UUID
	service  *domain.Service
	anna     *domain.Staff
	ivan     *domain.Staff
	services *mockServiceRepo
	staff    *mockStaffRepo
	shifts   *mockShiftRepo
	bookings *mockBookingRepo
	metrics  *mockMetrics
}

func newFixture(timezone string) *fixture {
	salonID := uuid.New()
	anna := &domain.Staff{ID: uuid.New(), SalonID: salonID, FullName: "Anna", IsActive: true}
	ivan := &domain.Staff{ID: uuid.New(), SalonID: salonID, FullName: "Ivan", IsActive: true}
	service := &domain.Service{
		ID:              uuid.New(),
		SalonID:         salonID,
		Name:            "Haircut",
		DurationMinutes: 60,
		Timezone:        timezone,
	}

	return &fixture{
		salonID:  salonID,
		service:  service,
		anna:     anna,
		ivan:     ivan,
		services: &mockServiceRepo{service: service},
		staff:    &mockStaffRepo{staff: []*domain.Staff{anna, ivan}},
		shifts: &mockShiftRepo{shifts: []*domain.Shift{
			shift(anna.ID, time.Wednesday, "09:00", "17:00"),
			shift(ivan.ID, time.Wednesday, "12:00", "14:00"),
		}},
		bookings: &mockBookingRepo{},
		metrics:  &mockMetrics{},
	}
}

func (f *fixture) useCase(options Options) *UseCase {
	return NewUseCase(f.services, f.staff, f.shifts, f.bookings, f.metrics, options, nopLogger{})
}

func (f *fixture) request() *Request {
	return &Request{
		SalonID:   f.salonID,
		ServiceID: f.service.ID,
		StartDate: date(2025, 10, 15),
		EndDate:   date(2025, 10, 16),
	}
}

func TestUseCase_Execute(t *testing.T) {
	f := newFixture("UTC")
	f.bookings.bookings = []*domain.Booking{booking(f.anna.ID, at(11, 0), at(12, 0))}

	resp, err := f.useCase(DefaultOptions()).Execute(context.Background(), f.request())
	require.NoError(t, err)

	assert.Equal(t, f.service.ID, resp.ServiceID)
	assert.Equal(t, 60, resp.DurationMinutes)
	assert.Equal(t, 15, resp.StepMinutes)
	assert.Equal(t, "UTC", resp.Timezone)

	var annaSlots, ivanSlots []time.Time
	for _, s := range resp.Slots {
		switch s.Staff.ID {
		case f.anna.ID:
			annaSlots = append(annaSlots, s.Time)
		case f.ivan.ID:
			ivanSlots = append(ivanSlots, s.Time)
		}
	}

	// 29 слотов без брони минус 7 пересекающих 11:00-12:00
	assert.Len(t, annaSlots, 22)
	assert.Contains(t, annaSlots, at(10, 0))
	assert.NotContains(t, annaSlots, at(11, 0))
	assert.Len(t, ivanSlots, 5)

	// сначала все слоты Анны, затем Ивана (порядок мастеров из репозитория)
	assert.Equal(t, f.anna.ID, resp.Slots[0].Staff.ID)
	assert.Equal(t, f.ivan.ID, resp.Slots[len(resp.Slots)-1].Staff.ID)

	assert.Equal(t, []int{27}, f.metrics.slotsReturned)
}

func TestUseCase_Execute_BookingFilterCoversLocalRange(t *testing.T) {
	f := newFixture("Asia/Tokyo")
	tokyo := mustLoad(t, "Asia/Tokyo")

	_, err := f.useCase(DefaultOptions()).Execute(context.Background(), f.request())
	require.NoError(t, err)

	got := f.bookings.gotFilter
	assert.ElementsMatch(t, []uuid.UUID{f.anna.ID, f.ivan.ID}, got.StaffIDs)
	assert.True(t, got.From.Equal(time.Date(2025, 10, 15, 0, 0, 0, 0, tokyo)))
	assert.True(t, got.To.Equal(time.Date(2025, 10, 17, 0, 0, 0, 0, tokyo)))
}

func TestUseCase_Execute_StaffFilter(t *testing.T) {
	f := newFixture("UTC")
	req := f.request()
	req.StaffID = ptr.Ptr(f.ivan.ID)

	resp, err := f.useCase(DefaultOptions()).Execute(context.Background(), req)
	require.NoError(t, err)

	require.NotNil(t, f.staff.gotStaffID)
	assert.Equal(t, f.ivan.ID, *f.staff.gotStaffID)
	require.Len(t, resp.Slots, 5)
	for _, s := range resp.Slots {
		assert.Equal(t, "Ivan", s.Staff.FullName)
	}
}

func TestUseCase_Execute_NoEligibleStaff(t *testing.T) {
	f := newFixture("UTC")
	f.staff.staff = nil
	f.shifts.err = errors.New("must not be called")

	resp, err := f.useCase(DefaultOptions()).Execute(context.Background(), f.request())
	require.NoError(t, err)
	assert.NotNil(t, resp.Slots)
	assert.Empty(t, resp.Slots)
}

func TestUseCase_Execute_ValidationBeforeRepositories(t *testing.T) {
	f := newFixture("UTC")
	req := f.request()
	req.EndDate = req.StartDate

	_, err := f.useCase(DefaultOptions()).Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidInput)
	assert.Zero(t, f.staff.calls)
}

func TestUseCase_Execute_ServiceNotFound(t *testing.T) {
	f := newFixture("UTC")
	f.services.err = fmt.Errorf("%w: id=%s", serviceStorage.ErrServiceNotFound, f.service.ID)

	_, err := f.useCase(DefaultOptions()).Execute(context.Background(), f.request())
	assert.ErrorIs(t, err, ErrServiceNotFound)
}

func TestUseCase_Execute_NonPositiveDuration(t *testing.T) {
	f := newFixture("UTC")
	f.service.DurationMinutes = 0

	_, err := f.useCase(DefaultOptions()).Execute(context.Background(), f.request())
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestUseCase_Execute_InvalidTimezone(t *testing.T) {
	f := newFixture("Europe/Atlantis")

	_, err := f.useCase(DefaultOptions()).Execute(context.Background(), f.request())
	assert.ErrorIs(t, err, ErrInternal)
	assert.ErrorIs(t, err, ErrInvalidTimezone)
}

func TestUseCase_Execute_EmptyTimezoneUsesDefault(t *testing.T) {
	f := newFixture("")
	options := DefaultOptions()
	options.DefaultTimezone = "Europe/Moscow"

	resp, err := f.useCase(options).Execute(context.Background(), f.request())
	require.NoError(t, err)
	assert.Equal(t, "Europe/Moscow", resp.Timezone)
	require.NotEmpty(t, resp.Slots)
	// 09:00 по Москве = 06:00 UTC
	assert.Equal(t, at(6, 0), resp.Slots[0].Time.UTC())
}

func TestUseCase_Execute_RepositoryFailures(t *testing.T) {
	dbErr := errors.New("connection refused")

	tests := []struct {
		name  string
		setup func(f *fixture)
	}{
		{name: "service", setup: func(f *fixture) { f.services.err = dbErr }},
		{name: "staff", setup: func(f *fixture) { f.staff.err = dbErr }},
		{name: "shifts", setup: func(f *fixture) { f.shifts.err = dbErr }},
		{name: "bookings", setup: func(f *fixture) { f.bookings.err = dbErr }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture("UTC")
			tt.setup(f)

			resp, err := f.useCase(DefaultOptions()).Execute(context.Background(), f.request())
			assert.Nil(t, resp)
			assert.ErrorIs(t, err, ErrInternal)
			assert.ErrorIs(t, err, dbErr)
			assert.Empty(t, f.metrics.slotsReturned)
		})
	}
}

func TestUseCase_Execute_RejectedShifts(t *testing.T) {
	f := newFixture("UTC")
	f.shifts.shifts = append(f.shifts.shifts, shift(f.ivan.ID, time.Thursday, "22:00", "02:00"))

	resp, err := f.useCase(DefaultOptions()).Execute(context.Background(), f.request())
	require.NoError(t, err)
	assert.Equal(t, 1, f.metrics.rejectedShifts)
	assert.Len(t, resp.Slots, 34)
}

func TestUseCase_Execute_MinNotice(t *testing.T) {
	f := newFixture("UTC")
	options := DefaultOptions()
	options.MinNoticeMinutes = 60

	uc := f.useCase(options)
	uc.timeProvider = &fixedTimeProvider{now: at(12, 30)}

	resp, err := uc.Execute(context.Background(), f.request())
	require.NoError(t, err)

	for _, s := range resp.Slots {
		assert.False(t, s.Time.Before(at(13, 30)), "slot %s is too close to now", s.Time)
	}
	// Анна: 13:30..16:00 (11 слотов), Иван: смена кончилась к 14:00, слот 13:30 не влезает
	assert.Len(t, resp.Slots, 11)
}

func TestUseCase_Execute_Deterministic(t *testing.T) {
	f := newFixture("America/New_York")
	f.bookings.bookings = []*domain.Booking{
		booking(f.anna.ID, time.Date(2025, 10, 15, 15, 0, 0, 0, time.UTC), time.Date(2025, 10, 15, 16, 30, 0, 0, time.UTC)),
	}
	uc := f.useCase(DefaultOptions())

	first, err := uc.Execute(context.Background(), f.request())
	require.NoError(t, err)
	second, err := uc.Execute(context.Background(), f.request())
	require.NoError(t, err)

	assert.Equal(t, first.Slots, second.Slots)
}
