package reservation

import (
	"fmt"
	"time"

	"github.com/dimaskresna/campus-booking-backend/internal/pkg/timerange"
)

// Operating hours: hourly slots starting 05:00 through 21:00 inclusive,
// each one hour wide.
const (
	firstSlotHour = 5
	lastSlotHour  = 21
	slotCount     = lastSlotHour - firstSlotHour + 1
)

// Slot is one cell of the availability grid for a facility on a date.
// Not persisted; recomputed from active reservations on every query.
type Slot struct {
	Start     string
	End       string
	Available bool
	// OccupiedBy summarizes the holder ("Full Name - purpose") when the
	// slot is taken. Empty for free slots.
	OccupiedBy string
}

// BuildSlotGrid projects the active reservations for one facility/date onto
// the fixed operating-hours grid. A reservation spanning several slots marks
// all of them; a slot is free only if no active reservation touches it.
func BuildSlotGrid(date string, active []*Reservation, loc *time.Location) []Slot {
	slots := make([]Slot, 0, slotCount)

	for hour := firstSlotHour; hour <= lastSlotHour; hour++ {
		start := fmt.Sprintf("%02d:00", hour)
		end := fmt.Sprintf("%02d:00", hour+1)
		slotRange := timerange.TimeRange{Date: date, Start: start, End: end}

		slot := Slot{Start: start, End: end, Available: true}

		for _, res := range active {
			resRange := timerange.FromTimes(res.StartTime, res.EndTime, loc)
			if slotRange.Overlaps(resRange) {
				slot.Available = false
				slot.OccupiedBy = res.RequesterName + " - " + res.Purpose
				break
			}
		}

		slots = append(slots, slot)
	}

	return slots
}
