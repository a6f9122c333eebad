package get_available_slots

import (
	"fmt"
	"strings"
	"time"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	"github.com/m04kA/SMC-AvailabilityService/pkg/types"
)

// loadLocation загружает IANA часовой пояс; пустое имя заменяется на fallback
func loadLocation(name, fallback string) (*time.Location, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		name = fallback
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %v", ErrInvalidTimezone, name, err)
	}
	return loc, nil
}

// toInstant интерпретирует настенное время local в дне day как время в loc
// Смещение берется на эту дату, поэтому переходы на летнее время учитываются
func toInstant(local types.TimeString, day time.Time, loc *time.Location) time.Time {
	y, m, d := day.Date()
	return time.Date(y, m, d, local.Hour(), local.Minute(), 0, 0, loc)
}

// calendarDay полночь в loc для календарной даты date (берутся только год, месяц, день)
func calendarDay(date time.Time, loc *time.Location) time.Time {
	y, m, d := date.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, loc)
}

// localDate полночь в loc того дня, к которому мгновение t относится в loc
func localDate(t time.Time, loc *time.Location) time.Time {
	return calendarDay(t.In(loc), loc)
}

// nextDay полночь следующего календарного дня
func nextDay(day time.Time, loc *time.Location) time.Time {
	y, m, d := day.Date()
	return time.Date(y, m, d+1, 0, 0, 0, 0, loc)
}

// dayKey ключ календарного дня мгновения t в loc
func dayKey(t time.Time, loc *time.Location) string {
	return t.In(loc).Format(domain.DateFormat)
}

// daysInRange количество дней в [start, end] включительно (по календарным датам)
func daysInRange(start, end time.Time) int {
	s := calendarDay(start, time.UTC)
	e := calendarDay(end, time.UTC)
	return int(e.Sub(s).Hours()/24) + 1
}

// localDays полночи в loc для каждого календарного дня из [start, end] включительно
// Дни вычисляются от календарной даты, а не прибавлением 24 часов, чтобы не сбиваться на переходах DST
func localDays(start, end time.Time, loc *time.Location) []time.Time {
	n := daysInRange(start, end)
	if n <= 0 {
		return nil
	}

	y, m, d := start.Date()
	days := make([]time.Time, 0, n)
	for i := 0; i < n; i++ {
		days = append(days, time.Date(y, m, d+i, 0, 0, 0, 0, loc))
	}
	return days
}
