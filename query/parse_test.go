package query

import (
	"testing"
	"time"

	"github.com/rockerto/rigbot-go/civiltime"
	"github.com/rockerto/rigbot-go/config"
)

// Reference instant for most cases: Monday 2025-05-26 09:00 civil time.
var monday9am = time.Date(2025, 5, 26, 9, 0, 0, 0, civiltime.Location)

func TestParse_Dates(t *testing.T) {
	cfg := config.Defaults()

	testCases := []struct {
		name            string
		text            string
		now             time.Time
		expectedDay     string
		expectedFilter  string
		genericNextWeek bool
		tooFar          bool
	}{
		{
			name:           "Explicit date within range",
			text:           "¿Tienen hora el 10 de junio?",
			now:            monday9am,
			expectedDay:    "2025-06-10",
			expectedFilter: "2025-06-10",
		},
		{
			name:           "Explicit date with abbreviated month",
			text:           "quiero agendar para el 10 de jun",
			now:            monday9am,
			expectedDay:    "2025-06-10",
			expectedFilter: "2025-06-10",
		},
		{
			name:   "Explicit date beyond the look-ahead cap",
			text:   "¿Tienen hora el 15 de julio?",
			now:    monday9am,
			tooFar: true,
		},
		{
			name:   "Date exactly at the cap boundary",
			text:   "¿Hay algo el 16 de junio?",
			now:    monday9am,
			tooFar: true,
		},
		{
			name:   "Past date rolls to next year and exceeds the cap",
			text:   "¿Tienen hora el 5 de enero?",
			now:    monday9am,
			tooFar: true,
		},
		{
			name: "Impossible date is discarded",
			text: "¿Tienen hora el 31 de febrero?",
			now:  monday9am,
		},
		{
			name:           "Weekday resolves to next occurrence",
			text:           "¿Tienen hora el jueves?",
			now:            monday9am,
			expectedDay:    "2025-05-29",
			expectedFilter: "2025-05-29",
		},
		{
			name:           "Proximo weekday skips a week",
			text:           "¿Tienes algo el próximo jueves?",
			now:            monday9am,
			expectedDay:    "2025-06-05",
			expectedFilter: "2025-06-05",
		},
		{
			name:           "Same weekday before closing means today",
			text:           "¿Atienden el lunes?",
			now:            monday9am,
			expectedDay:    "2025-05-26",
			expectedFilter: "2025-05-26",
		},
		{
			name:           "Same weekday after closing means next week",
			text:           "¿Tienes hora el lunes?",
			now:            time.Date(2025, 5, 26, 20, 0, 0, 0, civiltime.Location),
			expectedDay:    "2025-06-02",
			expectedFilter: "2025-06-02",
		},
		{
			name:            "Generic next week anchors to Monday",
			text:            "¿Tienes algo la próxima semana?",
			now:             monday9am,
			expectedDay:     "2025-06-02",
			genericNextWeek: true,
		},
		{
			name:           "Weekday of next week",
			text:           "¿Tienen hora el jueves de la próxima semana?",
			now:            monday9am,
			expectedDay:    "2025-06-05",
			expectedFilter: "2025-06-05",
		},
		{
			name:           "Hoy",
			text:           "¿Tienes hora para hoy?",
			now:            monday9am,
			expectedDay:    "2025-05-26",
			expectedFilter: "2025-05-26",
		},
		{
			name:           "Mañana",
			text:           "¿Hay algo para mañana?",
			now:            monday9am,
			expectedDay:    "2025-05-27",
			expectedFilter: "2025-05-27",
		},
		{
			name: "Pasado mañana is not tomorrow",
			text: "¿Tienes hora pasado mañana?",
			now:  monday9am,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			q := Parse(tc.text, tc.now, cfg)

			if q.TooFarInFuture != tc.tooFar {
				t.Fatalf("Expected TooFarInFuture %v, got %v", tc.tooFar, q.TooFarInFuture)
			}
			if tc.tooFar {
				return
			}

			gotDay := ""
			if q.HasTargetDate() {
				gotDay = civiltime.DayID(q.TargetDate)
			}
			if gotDay != tc.expectedDay {
				t.Errorf("Expected target day %q, got %q", tc.expectedDay, gotDay)
			}
			if q.DayFilter != tc.expectedFilter {
				t.Errorf("Expected day filter %q, got %q", tc.expectedFilter, q.DayFilter)
			}
			if q.GenericNextWeek != tc.genericNextWeek {
				t.Errorf("Expected GenericNextWeek %v, got %v", tc.genericNextWeek, q.GenericNextWeek)
			}
		})
	}
}

func TestParse_ExactTimes(t *testing.T) {
	cfg := config.Defaults()

	testCases := []struct {
		name           string
		text           string
		expectedHour   int
		expectedMinute int
		outOfHours     bool
	}{
		{"PM suffix", "mañana a las 3pm", 15, 0, false},
		{"24-hour clock with minutes", "el jueves a las 15:30", 15, 30, false},
		{"Quarter hours snap down", "¿tienes hora a las 15:45?", 15, 30, false},
		{"Quarter past snaps to the hour", "hoy a las 16:15", 16, 0, false},
		{"AM suffix", "el jueves a las 11 am", 11, 0, false},
		{"Hrs suffix", "¿hay algo a las 17 hrs?", 17, 0, false},
		{"Before opening", "hoy a las 9", 9, 0, true},
		{"After closing", "hoy a las 9pm", 21, 0, true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			q := Parse(tc.text, monday9am, cfg)

			if q.TargetTime == nil {
				t.Fatal("Expected an exact target time, got none")
			}
			if q.TargetTime.Hour != tc.expectedHour || q.TargetTime.Minute != tc.expectedMinute {
				t.Errorf("Expected %02d:%02d, got %02d:%02d",
					tc.expectedHour, tc.expectedMinute, q.TargetTime.Hour, q.TargetTime.Minute)
			}
			if q.OutOfHours != tc.outOfHours {
				t.Errorf("Expected OutOfHours %v, got %v", tc.outOfHours, q.OutOfHours)
			}
		})
	}
}

func TestParse_DateDigitsAreNotTimes(t *testing.T) {
	q := Parse("¿Tienen hora el 10 de junio?", monday9am, config.Defaults())

	if q.TargetTime != nil {
		t.Errorf("Expected no target time from date digits, got %02d:%02d",
			q.TargetTime.Hour, q.TargetTime.Minute)
	}
}

func TestParse_DayParts(t *testing.T) {
	cfg := config.Defaults()

	testCases := []struct {
		name     string
		text     string
		expected DayPart
	}{
		{"Afternoon", "¿Tienes hora mañana en la tarde?", DayPartAfternoon},
		{"Morning tomorrow", "¿Atienden mañana en la mañana?", DayPartMorning},
		{"Morning without a date", "¿Tienen algo temprano?", DayPartMorning},
		{"Morning on a far weekday is ignored", "el jueves por la mañana", DayPartNone},
		{"No day part", "¿Tienes hora el jueves?", DayPartNone},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			q := Parse(tc.text, monday9am, cfg)
			if q.DayPart != tc.expected {
				t.Errorf("Expected day part %d, got %d", tc.expected, q.DayPart)
			}
		})
	}
}

func TestParse_ExactTimeWinsOverDayPart(t *testing.T) {
	q := Parse("mañana en la tarde a las 4pm", monday9am, config.Defaults())

	if q.TargetTime == nil {
		t.Fatal("Expected an exact target time")
	}
	if q.TargetTime.Hour != 16 {
		t.Errorf("Expected hour 16, got %d", q.TargetTime.Hour)
	}
	if q.DayPart != DayPartNone {
		t.Errorf("Expected no day part once an exact time parsed, got %d", q.DayPart)
	}
}
