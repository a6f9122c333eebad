package get_available_slots

import (
	"time"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
)

// engineInput снимок данных одного запроса, все поля только для чтения
type engineInput struct {
	Days      []time.Time // полночи дней периода в Location
	Location  *time.Location
	Staff     []*domain.Staff // в порядке, возвращенном репозиторием
	Shifts    *shiftResolver
	Bookings  bookingIndex
	Duration  time.Duration
	Step      time.Duration
	NotBefore time.Time // слоты раньше этого момента отбрасываются; нулевое значение = без ограничения
}

// computeSlots считает слоты для всех дней и мастеров
// Порядок результата: день, затем мастер, затем время
// День без смены у мастера просто не дает слотов
func computeSlots(in engineInput) []Slot {
	slots := make([]Slot, 0)

	for _, day := range in.Days {
		key := dayKey(day, in.Location)
		weekday := day.Weekday()

		for _, staff := range in.Staff {
			shift := in.Shifts.Resolve(staff.ID, weekday)
			if shift == nil {
				continue
			}

			window := Interval{
				Start: toInstant(shift.StartLocal, day, in.Location),
				End:   toInstant(shift.EndLocal, day, in.Location),
			}
			busy := mergeIntervals(in.Bookings.lookup(staff.ID, key))
			ref := StaffRef{ID: staff.ID, FullName: staff.FullName}

			for _, gap := range freeGaps(window, busy) {
				for t := range slotStarts(gap, in.Step, in.Duration) {
					if !in.NotBefore.IsZero() && t.Before(in.NotBefore) {
						continue
					}
					slots = append(slots, Slot{Time: t, Staff: ref})
				}
			}
		}
	}

	return slots
}
