// Package availability enumerates free 30-minute slots against a fixed
// working-hours grid, given the busy intervals reported by a calendar.
package availability

import (
	"time"

	"github.com/rockerto/rigbot-go/civiltime"
	"github.com/rockerto/rigbot-go/config"
	"github.com/rockerto/rigbot-go/query"
)

// BusyInterval is a half-open [Start, End) range during which the calendar
// reports the tenant unavailable. Recomputed per request, never cached.
type BusyInterval struct {
	Start time.Time
	End   time.Time
}

// Slot is one free slot start. Start is the instant used for every internal
// comparison; Label is the formatted rendering used only for display.
type Slot struct {
	Start time.Time
	Label string
}

// Day-part sub-ranges of the grid, in minutes from civil midnight.
const (
	morningStartMinute   = 10 * 60
	morningEndMinute     = 14 * 60 // exclusive
	afternoonStartMinute = 14 * 60
)

// IsBusy reports whether any busy interval overlaps [slotStart, slotEnd).
func IsBusy(slotStart, slotEnd time.Time, busy []BusyInterval) bool {
	for _, b := range busy {
		if slotStart.Before(b.End) && slotEnd.After(b.Start) {
			return true
		}
	}
	return false
}

// Compute walks the candidate days and the working-hours grid and returns
// the surviving free slots in chronological order. Slots already started, or
// starting within the next minute, are never offered.
func Compute(q query.ParsedQuery, cfg config.Effective, now time.Time, busy []BusyInterval) []Slot {
	slotDuration := time.Duration(cfg.Hours.SlotMinutes) * time.Minute
	cutoff := now.Add(time.Minute)

	startDay := civiltime.Midnight(now)
	if q.HasTargetDate() {
		startDay = q.TargetDate
	}

	var slots []Slot
	distinctDays := 0
	lastDayID := ""

	for d := 0; d < cfg.CalendarQueryDays; d++ {
		day := startDay.AddDate(0, 0, d)
		dayID := civiltime.DayID(day)
		if q.DayFilter != "" && dayID != q.DayFilter {
			continue
		}

		for _, mark := range cfg.Hours.Marks() {
			hour, minute := mark/60, mark%60
			if q.TargetTime != nil && (hour != q.TargetTime.Hour || minute != q.TargetTime.Minute) {
				continue
			}
			if q.DayPart == query.DayPartMorning && (mark < morningStartMinute || mark >= morningEndMinute) {
				continue
			}
			if q.DayPart == query.DayPartAfternoon && mark < afternoonStartMinute {
				continue
			}

			slotStart := civiltime.At(day, hour, minute)
			if slotStart.Before(cutoff) {
				continue
			}
			if IsBusy(slotStart, slotStart.Add(slotDuration), busy) {
				continue
			}

			slots = append(slots, Slot{Start: slotStart, Label: civiltime.FormatSlot(slotStart)})
			if dayID != lastDayID {
				distinctDays++
				lastDayID = dayID
			}

			// With an exact time the result is boolean: the first hit is the
			// only possible one.
			if q.TargetTime != nil {
				return slots
			}
			if q.DayFilter != "" && len(slots) >= cfg.MaxSuggestions {
				return slots
			}
			if q.DayFilter == "" && len(slots) >= cfg.MaxSuggestions && distinctDays >= 2 {
				return slots
			}
		}

		// Exact time pinned to one day: that day settles it either way.
		if q.DayFilter != "" && q.TargetTime != nil {
			return slots
		}
	}

	return slots
}
