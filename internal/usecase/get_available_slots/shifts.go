package get_available_slots

import (
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
)

// WeeklySchedule смены мастера по дням недели (индекс = time.Weekday), nil = выходной
type WeeklySchedule [7]*domain.Shift

// shiftResolver таблица недельных расписаний по мастерам
type shiftResolver struct {
	schedules map[uuid.UUID]*WeeklySchedule
}

// newShiftResolver строит таблицу из активных смен
// Если у мастера несколько активных смен на один день недели, используется первая
// Смены через полночь, нулевой длины или с некорректным днем недели не попадают в таблицу
// и возвращаются вторым значением
func newShiftResolver(shifts []*domain.Shift) (*shiftResolver, []*domain.Shift) {
	r := &shiftResolver{schedules: make(map[uuid.UUID]*WeeklySchedule)}
	var rejected []*domain.Shift

	for _, shift := range shifts {
		if shift == nil || !shift.IsActive {
			continue
		}
		if !isUsableShift(shift) {
			rejected = append(rejected, shift)
			continue
		}

		week, ok := r.schedules[shift.StaffID]
		if !ok {
			week = &WeeklySchedule{}
			r.schedules[shift.StaffID] = week
		}
		if week[shift.DayOfWeek] == nil {
			week[shift.DayOfWeek] = shift
		}
	}

	return r, rejected
}

func isUsableShift(shift *domain.Shift) bool {
	if !shift.HasValidDay() {
		return false
	}
	if shift.StartLocal.Validate() != nil || shift.EndLocal.Validate() != nil {
		return false
	}
	return shift.IsSameDay()
}

// Resolve возвращает смену мастера на день недели или nil
// day должен быть вычислен в часовом поясе салона
func (r *shiftResolver) Resolve(staffID uuid.UUID, day time.Weekday) *domain.Shift {
	week, ok := r.schedules[staffID]
	if !ok {
		return nil
	}
	return week[day]
}
