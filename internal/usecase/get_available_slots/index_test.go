package get_available_slots

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
)

func TestIndexByStaffAndDay(t *testing.T) {
	alice, bob := uuid.New(), uuid.New()
	canceled := booking(alice, at(13, 0), at(14, 0))
	canceled.Status = domain.StatusCanceled
	noShow := booking(alice, at(15, 0), at(16, 0))
	noShow.Status = domain.StatusNoShow

	idx := indexByStaffAndDay([]*domain.Booking{
		booking(alice, at(11, 0), at(12, 0)),
		booking(alice, at(9, 0), at(10, 0)),
		booking(bob, at(10, 0), at(11, 0)),
		canceled,
		noShow,
		booking(bob, at(12, 0), at(12, 0)),
	}, time.UTC)

	assert.Equal(t, []Interval{iv(9, 0, 10, 0), iv(11, 0, 12, 0)}, idx.lookup(alice, "2025-10-15"))
	assert.Equal(t, []Interval{iv(10, 0, 11, 0)}, idx.lookup(bob, "2025-10-15"))
	assert.Nil(t, idx.lookup(alice, "2025-10-16"))
	assert.Nil(t, idx.lookup(uuid.New(), "2025-10-15"))
}

func TestIndexByStaffAndDay_KeyUsesSalonTimezone(t *testing.T) {
	tokyo := mustLoad(t, "Asia/Tokyo")
	staffID := uuid.New()
	// 20:00 UTC 14 октября = 05:00 15 октября по Токио
	start := time.Date(2025, 10, 14, 20, 0, 0, 0, time.UTC)

	idx := indexByStaffAndDay([]*domain.Booking{booking(staffID, start, start.Add(time.Hour))}, tokyo)

	assert.Nil(t, idx.lookup(staffID, "2025-10-14"))
	require.Len(t, idx.lookup(staffID, "2025-10-15"), 1)
}

func TestIndexByStaffAndDay_CrossMidnightBooking(t *testing.T) {
	staffID := uuid.New()
	start := at(22, 0)
	end := at(22, 0).Add(12 * time.Hour) // 10:00 следующего дня

	idx := indexByStaffAndDay([]*domain.Booking{booking(staffID, start, end)}, time.UTC)

	busy := Interval{Start: start, End: end}
	assert.Equal(t, []Interval{busy}, idx.lookup(staffID, "2025-10-15"))
	assert.Equal(t, []Interval{busy}, idx.lookup(staffID, "2025-10-16"))
	assert.Nil(t, idx.lookup(staffID, "2025-10-17"))
}

func TestIndexByStaffAndDay_EndingAtMidnight(t *testing.T) {
	staffID := uuid.New()
	idx := indexByStaffAndDay([]*domain.Booking{booking(staffID, at(23, 0), at(24, 0))}, time.UTC)

	require.Len(t, idx.lookup(staffID, "2025-10-15"), 1)
	assert.Nil(t, idx.lookup(staffID, "2025-10-16"), "half-open interval does not reach the next day")
}
