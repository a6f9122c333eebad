package domain

// Default configuration values
const (
	DefaultSlotStepMinutes  = 15
	DefaultTimezone         = "UTC"
	DefaultMaxRangeDays     = 31
	DefaultMinNoticeMinutes = 0
)

// DateFormat формат дат в запросах и ключах дней (YYYY-MM-DD)
const DateFormat = "2006-01-02"

// InactiveStatuses статусы бронирований, которые не занимают время мастера
// Используется и в SQL-фильтре, и при построении индекса бронирований
var InactiveStatuses = []BookingStatus{
	StatusCanceled,
	StatusNoShow,
}
