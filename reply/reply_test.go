package reply

import (
	"strings"
	"testing"
	"time"

	"github.com/rockerto/rigbot-go/availability"
	"github.com/rockerto/rigbot-go/civiltime"
	"github.com/rockerto/rigbot-go/config"
	"github.com/rockerto/rigbot-go/query"
)

var monday9am = time.Date(2025, 5, 26, 9, 0, 0, 0, civiltime.Location)

func slotAt(day, hour, minute int) availability.Slot {
	start := time.Date(2025, 5, day, hour, minute, 0, 0, civiltime.Location)
	return availability.Slot{Start: start, Label: civiltime.FormatSlot(start)}
}

func TestTooFar(t *testing.T) {
	got := TooFar(config.Defaults())

	if !strings.Contains(got, "21 días") {
		t.Errorf("Expected the look-ahead cap in the reply, got %q", got)
	}
}

func TestOutOfHours(t *testing.T) {
	got := OutOfHours(config.Defaults())

	if !strings.Contains(got, "10:00 a 19:30") {
		t.Errorf("Expected the working hours in the reply, got %q", got)
	}
}

func TestCompose_ExactTimeAvailable(t *testing.T) {
	q := query.ParsedQuery{
		TargetDate: civiltime.Midnight(monday9am),
		DayFilter:  "2025-05-26",
		TargetTime: &query.TimeOfDay{Hour: 15, Minute: 0},
	}
	slots := []availability.Slot{slotAt(26, 15, 0)}

	got := Compose(q, slots, nil, config.Defaults(), monday9am)

	if !strings.Contains(got, "¡Sí!") {
		t.Errorf("Expected an affirmative reply, got %q", got)
	}
	if !strings.Contains(got, "lunes 26 de mayo a las 15:00") {
		t.Errorf("Expected the confirmed slot in the reply, got %q", got)
	}
}

func TestCompose_ExactTimeTakenOffersAlternatives(t *testing.T) {
	q := query.ParsedQuery{
		TargetDate: civiltime.Midnight(monday9am),
		DayFilter:  "2025-05-26",
		TargetTime: &query.TimeOfDay{Hour: 15, Minute: 0},
	}
	busy := []availability.BusyInterval{{
		Start: time.Date(2025, 5, 26, 15, 0, 0, 0, civiltime.Location),
		End:   time.Date(2025, 5, 26, 15, 30, 0, 0, civiltime.Location),
	}}

	got := Compose(q, nil, busy, config.Defaults(), monday9am)

	if !strings.Contains(got, "ya está tomado") {
		t.Errorf("Expected a denial, got %q", got)
	}
	if !strings.Contains(got, "Ese mismo día tengo") {
		t.Errorf("Expected same-day alternatives, got %q", got)
	}
	if strings.Contains(got, "a las 15:00\n") {
		t.Errorf("Expected the denied time excluded from alternatives, got %q", got)
	}
	if !strings.Contains(got, "a las 10:00") {
		t.Errorf("Expected the first free slot offered, got %q", got)
	}
}

func TestCompose_ExactTimeTakenFullyBookedDay(t *testing.T) {
	q := query.ParsedQuery{
		TargetDate: civiltime.Midnight(monday9am),
		DayFilter:  "2025-05-26",
		TargetTime: &query.TimeOfDay{Hour: 15, Minute: 0},
	}
	busy := []availability.BusyInterval{{
		Start: time.Date(2025, 5, 26, 0, 0, 0, 0, civiltime.Location),
		End:   time.Date(2025, 5, 27, 0, 0, 0, 0, civiltime.Location),
	}}

	got := Compose(q, nil, busy, config.Defaults(), monday9am)

	if !strings.Contains(got, "No quedan otros horarios ese día.") {
		t.Errorf("Expected a fully-booked notice, got %q", got)
	}
}

func TestCompose_GeneralGroupsByDay(t *testing.T) {
	var q query.ParsedQuery
	slots := []availability.Slot{
		slotAt(26, 10, 0), slotAt(26, 10, 30), slotAt(26, 11, 0),
		slotAt(27, 12, 0), slotAt(27, 12, 30), slotAt(27, 13, 0),
	}

	got := Compose(q, slots, nil, config.Defaults(), monday9am)

	if !strings.Contains(got, "lunes 26 de mayo a las 10:00") ||
		!strings.Contains(got, "lunes 26 de mayo a las 10:30") {
		t.Errorf("Expected two Monday slots, got %q", got)
	}
	if strings.Contains(got, "lunes 26 de mayo a las 11:00") {
		t.Errorf("Expected at most two slots per day, got %q", got)
	}
	if !strings.Contains(got, "martes 27 de mayo a las 12:00") {
		t.Errorf("Expected Tuesday represented, got %q", got)
	}
	if !strings.Contains(got, "y 2 horarios más") {
		t.Errorf("Expected the hidden-slot note, got %q", got)
	}
}

func TestCompose_DayFilterListsUpToMax(t *testing.T) {
	cfg := config.Defaults()
	cfg.MaxSuggestions = 2

	q := query.ParsedQuery{
		TargetDate: civiltime.Midnight(monday9am),
		DayFilter:  "2025-05-26",
	}
	slots := []availability.Slot{
		slotAt(26, 10, 0), slotAt(26, 10, 30), slotAt(26, 11, 0),
	}

	got := Compose(q, slots, nil, cfg, monday9am)

	if !strings.Contains(got, "para el lunes 26 de mayo") {
		t.Errorf("Expected the day scope, got %q", got)
	}
	if strings.Contains(got, "a las 11:00") {
		t.Errorf("Expected the listing capped at 2, got %q", got)
	}
	if !strings.Contains(got, "y 1 horarios más") {
		t.Errorf("Expected the hidden-slot note, got %q", got)
	}
}

func TestCompose_NoSlots(t *testing.T) {
	q := query.ParsedQuery{
		TargetDate: civiltime.Midnight(monday9am),
		DayFilter:  "2025-05-26",
	}

	got := Compose(q, nil, nil, config.Defaults(), monday9am)

	if !strings.Contains(got, "no encontré horarios disponibles") {
		t.Errorf("Expected a no-availability reply, got %q", got)
	}
}

func TestDescribeScope(t *testing.T) {
	cfg := config.Defaults()

	testCases := []struct {
		name     string
		q        query.ParsedQuery
		expected string
	}{
		{
			name:     "Generic search",
			q:        query.ParsedQuery{},
			expected: "dentro de los próximos 7 días",
		},
		{
			name:     "Next week",
			q:        query.ParsedQuery{TargetDate: civiltime.Midnight(monday9am), GenericNextWeek: true},
			expected: "para la próxima semana",
		},
		{
			name:     "Specific day",
			q:        query.ParsedQuery{TargetDate: civiltime.Midnight(monday9am)},
			expected: "para el lunes 26 de mayo",
		},
		{
			name:     "Day with afternoon",
			q:        query.ParsedQuery{TargetDate: civiltime.Midnight(monday9am), DayPart: query.DayPartAfternoon},
			expected: "para el lunes 26 de mayo en la tarde",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := describeScope(tc.q, cfg); got != tc.expected {
				t.Errorf("Expected %q, got %q", tc.expected, got)
			}
		})
	}
}

func TestContactCTA(t *testing.T) {
	cfg := config.Defaults()
	if got := contactCTA(cfg); !strings.Contains(got, "canales habituales") {
		t.Errorf("Expected the generic contact phrase for the placeholder, got %q", got)
	}

	cfg.WhatsappNumber = "+56 9 1234 5678"
	if got := contactCTA(cfg); !strings.Contains(got, "+56 9 1234 5678") {
		t.Errorf("Expected the configured number embedded, got %q", got)
	}
}
