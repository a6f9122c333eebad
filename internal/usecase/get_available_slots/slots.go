package get_available_slots

import (
	"iter"
	"time"
)

// slotStarts лениво перечисляет начала слотов внутри свободного промежутка
// Первый слот начинается в gap.Start, следующие через step, пока [t, t+duration) помещается в gap
// Последовательность не хранит состояния между обходами и может перебираться повторно
func slotStarts(gap Interval, step, duration time.Duration) iter.Seq[time.Time] {
	return func(yield func(time.Time) bool) {
		if step <= 0 || duration <= 0 {
			return
		}
		for t := gap.Start; !t.Add(duration).After(gap.End); t = t.Add(step) {
			if !yield(t) {
				return
			}
		}
	}
}
