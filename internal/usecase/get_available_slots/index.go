package get_available_slots

import (
	"slices"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
)

// bookingIndex занятые интервалы: мастер -> ключ дня (YYYY-MM-DD в поясе салона) -> интервалы по возрастанию начала
// Индекс владеет срезами, вызывающий код использует их только для чтения
type bookingIndex map[uuid.UUID]map[string][]Interval

// indexByStaffAndDay группирует активные бронирования по мастеру и дню начала в loc
// Бронирование, продолжающееся после полуночи, дополнительно попадает в каждый следующий день,
// который оно задевает, чтобы пересечение со сменой этого дня не было пропущено
func indexByStaffAndDay(bookings []*domain.Booking, loc *time.Location) bookingIndex {
	idx := make(bookingIndex)

	for _, b := range bookings {
		if b == nil || !b.IsActive() || !b.EndAt.After(b.StartAt) {
			continue
		}

		days, ok := idx[b.StaffID]
		if !ok {
			days = make(map[string][]Interval)
			idx[b.StaffID] = days
		}

		busy := Interval{Start: b.StartAt, End: b.EndAt}
		for day := localDate(b.StartAt, loc); day.Before(b.EndAt); day = nextDay(day, loc) {
			key := dayKey(day, loc)
			days[key] = append(days[key], busy)
		}
	}

	for _, days := range idx {
		for _, list := range days {
			slices.SortFunc(list, compareIntervals)
		}
	}

	return idx
}

// lookup возвращает занятые интервалы мастера в день key (nil, если их нет)
func (idx bookingIndex) lookup(staffID uuid.UUID, key string) []Interval {
	return idx[staffID][key]
}
