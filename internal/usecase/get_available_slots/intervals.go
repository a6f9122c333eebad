package get_available_slots

import (
	"slices"
	"time"
)

// Interval полуоткрытый интервал [Start, End)
type Interval struct {
	Start time.Time
	End   time.Time
}

// IsEmpty возвращает true для интервала нулевой или отрицательной длины
func (i Interval) IsEmpty() bool {
	return !i.End.After(i.Start)
}

// Duration длина интервала
func (i Interval) Duration() time.Duration {
	return i.End.Sub(i.Start)
}

func compareIntervals(a, b Interval) int {
	if c := a.Start.Compare(b.Start); c != 0 {
		return c
	}
	return a.End.Compare(b.End)
}

// mergeIntervals объединяет занятые интервалы в минимальный отсортированный набор непересекающихся
// Касающиеся интервалы ([10:00,11:00) и [11:00,12:00)) тоже объединяются
// Входной срез не изменяется
func mergeIntervals(in []Interval) []Interval {
	sorted := make([]Interval, 0, len(in))
	for _, i := range in {
		if !i.IsEmpty() {
			sorted = append(sorted, i)
		}
	}
	if len(sorted) == 0 {
		return nil
	}
	slices.SortFunc(sorted, compareIntervals)

	merged := make([]Interval, 0, len(sorted))
	acc := sorted[0]
	for _, cur := range sorted[1:] {
		if !cur.Start.After(acc.End) {
			if cur.End.After(acc.End) {
				acc.End = cur.End
			}
			continue
		}
		merged = append(merged, acc)
		acc = cur
	}

	return append(merged, acc)
}

// freeGaps вычитает занятые интервалы из окна смены
// busy должен быть результатом mergeIntervals (отсортирован, без пересечений)
// Интервалы вне окна игнорируются, частично пересекающие границу обрезаются
func freeGaps(window Interval, busy []Interval) []Interval {
	if window.IsEmpty() {
		return nil
	}

	var gaps []Interval
	cursor := window.Start
	for _, b := range busy {
		if !b.End.After(cursor) {
			continue
		}
		if !b.Start.Before(window.End) {
			break
		}
		if b.Start.After(cursor) {
			gaps = append(gaps, Interval{Start: cursor, End: b.Start})
		}
		cursor = b.End
		if !cursor.Before(window.End) {
			return gaps
		}
	}

	if cursor.Before(window.End) {
		gaps = append(gaps, Interval{Start: cursor, End: window.End})
	}
	return gaps
}
