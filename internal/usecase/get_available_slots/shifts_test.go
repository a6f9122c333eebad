package get_available_slots

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
)

func TestShiftResolver_Resolve(t *testing.T) {
	alice, bob := uuid.New(), uuid.New()
	monday := shift(alice, time.Monday, "09:00", "17:00")
	inactive := shift(alice, time.Tuesday, "09:00", "17:00")
	inactive.IsActive = false

	resolver, rejected := newShiftResolver([]*domain.Shift{monday, inactive, nil})
	require.Empty(t, rejected)

	assert.Same(t, monday, resolver.Resolve(alice, time.Monday))
	assert.Nil(t, resolver.Resolve(alice, time.Tuesday), "inactive shift is ignored")
	assert.Nil(t, resolver.Resolve(alice, time.Sunday))
	assert.Nil(t, resolver.Resolve(bob, time.Monday))
}

func TestShiftResolver_FirstShiftWins(t *testing.T) {
	staffID := uuid.New()
	first := shift(staffID, time.Friday, "09:00", "13:00")
	second := shift(staffID, time.Friday, "14:00", "18:00")

	resolver, _ := newShiftResolver([]*domain.Shift{first, second})
	assert.Same(t, first, resolver.Resolve(staffID, time.Friday))
}

func TestShiftResolver_RejectsUnsupportedShifts(t *testing.T) {
	staffID := uuid.New()
	overnight := shift(staffID, time.Saturday, "22:00", "06:00")
	zero := shift(staffID, time.Sunday, "10:00", "10:00")
	badDay := shift(staffID, time.Monday, "09:00", "17:00")
	badDay.DayOfWeek = 7
	unset := &domain.Shift{ID: uuid.New(), StaffID: staffID, DayOfWeek: 2, IsActive: true}

	resolver, rejected := newShiftResolver([]*domain.Shift{overnight, zero, badDay, unset})

	assert.ElementsMatch(t, []*domain.Shift{overnight, zero, badDay, unset}, rejected)
	assert.Nil(t, resolver.Resolve(staffID, time.Saturday))
	assert.Nil(t, resolver.Resolve(staffID, time.Sunday))
	assert.Nil(t, resolver.Resolve(staffID, time.Tuesday))
}
