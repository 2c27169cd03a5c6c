package schedule

import (
	"fmt"
	"iter"
)

const DefaultSlotMinutes = 15

// SlotStarts yields "HH:mm" slot start times within the resolved range,
// ascending from the opening time in slotMinutes steps. A slot is yielded
// only when it fits entirely before closing. The sequence is restartable.
func SlotStarts(r TimeRange, slotMinutes int) iter.Seq[string] {
	if slotMinutes <= 0 {
		slotMinutes = DefaultSlotMinutes
	}

	return func(yield func(string) bool) {
		open, errO := MinutesOfDay(r.EarliestTime)
		close, errC := MinutesOfDay(r.LatestTime)
		if errO != nil || errC != nil {
			return
		}

		for cur := open; cur+slotMinutes <= close; cur += slotMinutes {
			if !yield(fmt.Sprintf("%02d:%02d", cur/60, cur%60)) {
				return
			}
		}
	}
}
