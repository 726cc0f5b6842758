package scheduling

import "time"

const (
	slotStartHour = 9 // first slot of the day, local time
	slotDuration  = 45 * time.Minute
)

// SlotGenerator computes bookable windows over a fixed daily schedule:
// PerDay hourly slots from 09:00 local time for each of the next DaysAhead
// calendar days, today included. It is a pure function of the clock and the
// booked-start set, so results are fully deterministic in tests.
type SlotGenerator struct {
	DaysAhead int
	PerDay    int
	Now       func() time.Time // nil means time.Now
}

// Available returns open slots in day-major, hour-minor order. A slot is
// excluded when its start is not strictly in the future, or when booked
// contains its exact StartISO string.
func (g SlotGenerator) Available(booked map[string]bool) []Slot {
	now := time.Now()
	if g.Now != nil {
		now = g.Now()
	}

	slots := make([]Slot, 0, g.DaysAhead*g.PerDay)
	year, month, day := now.Date()
	for d := 0; d < g.DaysAhead; d++ {
		for i := 0; i < g.PerDay; i++ {
			start := time.Date(year, month, day+d, slotStartHour+i, 0, 0, 0, now.Location())
			if !start.After(now) {
				continue
			}
			startISO := FormatISO(start)
			if booked[startISO] {
				continue
			}
			slots = append(slots, Slot{
				StartISO: startISO,
				EndISO:   FormatISO(start.Add(slotDuration)),
			})
		}
	}
	return slots
}
