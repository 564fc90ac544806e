package availability

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/rockerto/rigbot-go/civiltime"
	"github.com/rockerto/rigbot-go/config"
	"github.com/rockerto/rigbot-go/query"
)

// Monday 2025-05-26 09:00 civil time, one hour before opening.
var monday9am = time.Date(2025, 5, 26, 9, 0, 0, 0, civiltime.Location)

func at(day, hour, minute int) time.Time {
	return time.Date(2025, 5, day, hour, minute, 0, 0, civiltime.Location)
}

func TestIsBusy(t *testing.T) {
	busy := []BusyInterval{{Start: at(26, 11, 0), End: at(26, 12, 0)}}

	testCases := []struct {
		name     string
		start    time.Time
		end      time.Time
		expected bool
	}{
		{"Fully inside", at(26, 11, 0), at(26, 11, 30), true},
		{"Overlapping the start", at(26, 10, 30), at(26, 11, 30), true},
		{"Overlapping the end", at(26, 11, 30), at(26, 12, 30), true},
		{"Adjacent before", at(26, 10, 30), at(26, 11, 0), false},
		{"Adjacent after", at(26, 12, 0), at(26, 12, 30), false},
		{"Disjoint", at(26, 15, 0), at(26, 15, 30), false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := IsBusy(tc.start, tc.end, busy); got != tc.expected {
				t.Errorf("Expected %v, got %v", tc.expected, got)
			}
		})
	}
}

func TestCompute_DayFilterStopsAtMaxSuggestions(t *testing.T) {
	cfg := config.Defaults()
	cfg.MaxSuggestions = 3

	q := query.ParsedQuery{
		TargetDate: civiltime.Midnight(monday9am),
		DayFilter:  "2025-05-26",
	}

	slots := Compute(q, cfg, monday9am, nil)

	assert.Len(t, slots, 3)
	assert.Equal(t, at(26, 10, 0), slots[0].Start)
	assert.Equal(t, at(26, 10, 30), slots[1].Start)
	assert.Equal(t, at(26, 11, 0), slots[2].Start)
	for _, s := range slots {
		assert.Equal(t, "2025-05-26", civiltime.DayID(s.Start))
	}
}

func TestCompute_BusySlotsAreSkipped(t *testing.T) {
	cfg := config.Defaults()
	cfg.MaxSuggestions = 2

	q := query.ParsedQuery{
		TargetDate: civiltime.Midnight(monday9am),
		DayFilter:  "2025-05-26",
	}
	busy := []BusyInterval{{Start: at(26, 10, 0), End: at(26, 11, 0)}}

	slots := Compute(q, cfg, monday9am, busy)

	assert.Len(t, slots, 2)
	assert.Equal(t, at(26, 11, 0), slots[0].Start)
	assert.Equal(t, at(26, 11, 30), slots[1].Start)
}

func TestCompute_PastSlotsAreNeverOffered(t *testing.T) {
	cfg := config.Defaults()
	now := at(26, 10, 14)

	q := query.ParsedQuery{
		TargetDate: civiltime.Midnight(now),
		DayFilter:  "2025-05-26",
	}

	slots := Compute(q, cfg, now, nil)

	assert.NotEmpty(t, slots)
	assert.Equal(t, at(26, 10, 30), slots[0].Start, "the 10:00 slot already started")
}

func TestCompute_ExactTimeReturnsAtMostOneSlot(t *testing.T) {
	cfg := config.Defaults()

	q := query.ParsedQuery{
		TargetDate: civiltime.Midnight(monday9am),
		DayFilter:  "2025-05-26",
		TargetTime: &query.TimeOfDay{Hour: 15, Minute: 0},
	}

	slots := Compute(q, cfg, monday9am, nil)
	assert.Len(t, slots, 1)
	assert.Equal(t, at(26, 15, 0), slots[0].Start)

	busy := []BusyInterval{{Start: at(26, 15, 0), End: at(26, 15, 30)}}
	slots = Compute(q, cfg, monday9am, busy)
	assert.Empty(t, slots)
}

func TestCompute_ExactTimeWithoutDayFilterTakesFirstDay(t *testing.T) {
	cfg := config.Defaults()

	q := query.ParsedQuery{TargetTime: &query.TimeOfDay{Hour: 15, Minute: 0}}
	busy := []BusyInterval{{Start: at(26, 15, 0), End: at(26, 15, 30)}}

	slots := Compute(q, cfg, monday9am, busy)

	assert.Len(t, slots, 1)
	assert.Equal(t, at(27, 15, 0), slots[0].Start)
}

func TestCompute_GenericSearchSpansTwoDays(t *testing.T) {
	cfg := config.Defaults()
	cfg.MaxSuggestions = 3

	var q query.ParsedQuery
	slots := Compute(q, cfg, monday9am, nil)

	// Enumeration runs past the suggestion budget until a second civil day
	// contributes at least one slot.
	assert.Equal(t, 21, len(slots))
	assert.Equal(t, "2025-05-26", civiltime.DayID(slots[0].Start))
	assert.Equal(t, "2025-05-27", civiltime.DayID(slots[len(slots)-1].Start))
}

func TestCompute_DayParts(t *testing.T) {
	cfg := config.Defaults()
	cfg.MaxSuggestions = 20

	base := query.ParsedQuery{
		TargetDate: civiltime.Midnight(monday9am),
		DayFilter:  "2025-05-26",
	}

	morning := base
	morning.DayPart = query.DayPartMorning
	slots := Compute(morning, cfg, monday9am, nil)
	assert.NotEmpty(t, slots)
	assert.Equal(t, at(26, 10, 0), slots[0].Start)
	assert.Equal(t, at(26, 13, 30), slots[len(slots)-1].Start, "morning ends before 14:00")

	afternoon := base
	afternoon.DayPart = query.DayPartAfternoon
	slots = Compute(afternoon, cfg, monday9am, nil)
	assert.NotEmpty(t, slots)
	assert.Equal(t, at(26, 14, 0), slots[0].Start)
	assert.Equal(t, at(26, 19, 30), slots[len(slots)-1].Start)
}

func TestCompute_FullyBookedDayYieldsNothing(t *testing.T) {
	cfg := config.Defaults()

	q := query.ParsedQuery{
		TargetDate: civiltime.Midnight(monday9am),
		DayFilter:  "2025-05-26",
	}
	busy := []BusyInterval{{Start: at(26, 0, 0), End: at(27, 0, 0)}}

	slots := Compute(q, cfg, monday9am, busy)

	assert.Empty(t, slots)
}
