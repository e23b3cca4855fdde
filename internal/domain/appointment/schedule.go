package appointment

import (
	"time"
)

// WorkingHours is the salon-wide daily booking window plus the candidate
// grid step. Offsets are kept relative to midnight so the same window can be
// projected onto any date in the business-local zone.
type WorkingHours struct {
	start time.Duration
	end   time.Duration
	step  time.Duration
}

func NewWorkingHours(start, end string, stepMin int) (WorkingHours, error) {
	s, err := parseDayOffset(start)
	if err != nil {
		return WorkingHours{}, err
	}
	e, err := parseDayOffset(end)
	if err != nil {
		return WorkingHours{}, err
	}
	if s >= e || stepMin <= 0 {
		return WorkingHours{}, ErrInvalidWorkingHours
	}

	return WorkingHours{
		start: s,
		end:   e,
		step:  time.Duration(stepMin) * time.Minute,
	}, nil
}

func parseDayOffset(hm string) (time.Duration, error) {
	t, err := time.Parse("15:04", hm)
	if err != nil {
		return 0, ErrInvalidWorkingHours
	}
	return time.Duration(t.Hour())*time.Hour + time.Duration(t.Minute())*time.Minute, nil
}

// Window projects the working hours onto the given date, in that date's
// location.
func (w WorkingHours) Window(date time.Time) (time.Time, time.Time) {
	midnight := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	return midnight.Add(w.start), midnight.Add(w.end)
}

// Contains reports whether the slot lies fully inside the working window of
// the day it starts on.
func (w WorkingHours) Contains(slot TimeSlot) bool {
	workStart, workEnd := w.Window(slot.Start())
	return !slot.Start().Before(workStart) && !slot.End().After(workEnd)
}

// OnGrid reports whether t is a valid candidate start: workStart + k*step
// for some k >= 0 on t's day.
func (w WorkingHours) OnGrid(t time.Time) bool {
	workStart, _ := w.Window(t)
	offset := t.Sub(workStart)
	return offset >= 0 && offset%w.step == 0
}

// Candidates generates every slot of the given duration that fits the
// working window of date, aligned to the fixed grid: start times are
// workStart + k*step. The grid is independent of the service duration, so
// services of different length share the same clock-aligned start times.
// Returns nil when the duration does not fit the window at all.
func (w WorkingHours) Candidates(date time.Time, duration time.Duration) []TimeSlot {
	if duration <= 0 {
		return nil
	}

	workStart, workEnd := w.Window(date)

	var slots []TimeSlot
	for cur := workStart; !cur.Add(duration).After(workEnd); cur = cur.Add(w.step) {
		slots = append(slots, TimeSlot{start: cur, end: cur.Add(duration)})
	}
	return slots
}

// AvailableSlots filters candidates down to the bookable ones: a candidate
// survives if it overlaps no busy interval and has not already started.
// `now` must be a single consistent read taken at the start of the
// computation. Candidates are assumed ascending and returned in order.
func AvailableSlots(candidates, busy []TimeSlot, now time.Time) []TimeSlot {
	var free []TimeSlot
	for _, c := range candidates {
		if !c.Start().After(now) {
			continue
		}
		conflict := false
		for _, b := range busy {
			if c.Overlaps(b) {
				conflict = true
				break
			}
		}
		if !conflict {
			free = append(free, c)
		}
	}
	return free
}
