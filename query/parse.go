package query

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/rockerto/rigbot-go/civiltime"
	"github.com/rockerto/rigbot-go/config"
)

var weekdayNames = map[string]time.Weekday{
	"domingo":   time.Sunday,
	"lunes":     time.Monday,
	"martes":    time.Tuesday,
	"miercoles": time.Wednesday,
	"jueves":    time.Thursday,
	"viernes":   time.Friday,
	"sabado":    time.Saturday,
}

var monthNames = map[string]time.Month{
	"enero": time.January, "febrero": time.February, "marzo": time.March,
	"abril": time.April, "mayo": time.May, "junio": time.June,
	"julio": time.July, "agosto": time.August, "septiembre": time.September,
	"octubre": time.October, "noviembre": time.November, "diciembre": time.December,
	"ene": time.January, "feb": time.February, "mar": time.March,
	"abr": time.April, "may": time.May, "jun": time.June,
	"jul": time.July, "ago": time.August, "sep": time.September, "sept": time.September,
	"oct": time.October, "nov": time.November, "dic": time.December,
}

var (
	explicitDateRe = regexp.MustCompile(`(\d{1,2})\s+de\s+([a-zñ]+)`)
	exactTimeRe    = regexp.MustCompile(`(\d{1,2})(?::(00|15|30|45))?\s*(am|pm|hrs|hr|h)?`)
)

// Parse extracts the scheduling constraints from one message. It never
// fails: malformed dates are discarded and the query falls back to a generic
// search from today. Precedence when signals conflict: explicit date,
// weekday name, "hoy", "mañana", generic next week.
func Parse(text string, now time.Time, cfg config.Effective) ParsedQuery {
	norm := normalize(text)
	today := civiltime.Midnight(now)

	var q ParsedQuery

	// Span of the day number inside an explicit "<día> de <mes>" match, so
	// the time regex does not re-read those digits as an hour.
	dateDigitSpan := [2]int{-1, -1}

	nextWeek := hasGenericNextWeekMarker(norm)
	weekdayMatched := false

	if m := explicitDateRe.FindStringSubmatchIndex(norm); m != nil {
		day, _ := strconv.Atoi(norm[m[2]:m[3]])
		if month, ok := monthNames[norm[m[4]:m[5]]]; ok {
			if target, ok := buildDate(today, day, month); ok {
				q.TargetDate = target
				dateDigitSpan = [2]int{m[2], m[3]}
			}
		}
	}

	if !q.HasTargetDate() {
		if wd, ok := findWeekday(norm); ok {
			weekdayMatched = true
			offset := (int(wd) - int(today.Weekday()) + 7) % 7
			switch {
			case strings.Contains(norm, "proxim") && !nextWeek:
				offset += 7
			case nextWeek && offset < daysUntilNextMonday(today):
				offset += 7
			case offset == 0 && now.In(civiltime.Location).Hour() >= 19:
				// Same weekday after closing: the user means next week.
				offset += 7
			}
			q.TargetDate = today.AddDate(0, 0, offset)
		}
	}

	if !q.HasTargetDate() && strings.Contains(norm, "hoy") {
		q.TargetDate = today
	}

	if !q.HasTargetDate() && mentionsTomorrow(norm) {
		q.TargetDate = today.AddDate(0, 0, 1)
	}

	if !q.HasTargetDate() && nextWeek {
		q.TargetDate = today.AddDate(0, 0, daysUntilNextMonday(today))
		q.GenericNextWeek = true
	}

	if q.HasTargetDate() {
		limit := today.AddDate(0, 0, cfg.CalendarMaxUserRequestDays)
		if !q.TargetDate.Before(limit) {
			q.TooFarInFuture = true
			return q
		}
		if !q.GenericNextWeek {
			q.DayFilter = civiltime.DayID(q.TargetDate)
		}
	}

	if t, ok := findExactTime(norm, dateDigitSpan); ok {
		q.TargetTime = &t
		if !cfg.Hours.Contains(t.Hour, t.Minute) {
			q.OutOfHours = true
		}
		return q
	}

	q.DayPart = findDayPart(norm, today, q.TargetDate, weekdayMatched)
	return q
}

// buildDate constructs a civil date in the current year, rolling to next
// year when the date already passed. Dates that do not round-trip (e.g. 31
// de febrero) are rejected.
func buildDate(today time.Time, day int, month time.Month) (time.Time, bool) {
	for _, year := range []int{today.Year(), today.Year() + 1} {
		candidate := time.Date(year, month, day, 0, 0, 0, 0, civiltime.Location)
		if candidate.Day() != day || candidate.Month() != month {
			return time.Time{}, false
		}
		if !candidate.Before(today) {
			return candidate, true
		}
	}
	return time.Time{}, false
}

func findWeekday(norm string) (time.Weekday, bool) {
	best := -1
	var found time.Weekday
	for name, wd := range weekdayNames {
		if idx := strings.Index(norm, name); idx >= 0 && (best == -1 || idx < best) {
			best = idx
			found = wd
		}
	}
	return found, best >= 0
}

func hasGenericNextWeekMarker(norm string) bool {
	for _, marker := range []string{
		"proxima semana", "prox semana", "proxsemana",
		"siguiente semana", "semana que viene", "otra semana",
	} {
		if strings.Contains(norm, marker) {
			return true
		}
	}
	return false
}

func mentionsTomorrow(norm string) bool {
	if strings.Contains(norm, "pasado mañana") || strings.Contains(norm, "pasado manana") {
		return false
	}
	return strings.Contains(norm, "mañana") || strings.Contains(norm, "manana")
}

// daysUntilNextMonday always lands in the following week: on a Monday it
// returns 7, never 0.
func daysUntilNextMonday(today time.Time) int {
	d := (8 - int(today.Weekday())) % 7
	if d == 0 {
		d = 7
	}
	return d
}

// findExactTime scans the whole message for an hour mention. Digits that
// were already consumed by an explicit date are skipped, as are hours that
// make no sense on a 24-hour clock.
func findExactTime(norm string, dateDigitSpan [2]int) (TimeOfDay, bool) {
	for _, m := range exactTimeRe.FindAllStringSubmatchIndex(norm, -1) {
		if m[2] >= dateDigitSpan[0] && m[3] <= dateDigitSpan[1] {
			continue
		}
		hour, _ := strconv.Atoi(norm[m[2]:m[3]])
		minute := 0
		if m[4] >= 0 {
			minute, _ = strconv.Atoi(norm[m[4]:m[5]])
		}
		suffix := ""
		if m[6] >= 0 {
			suffix = norm[m[6]:m[7]]
		}
		switch suffix {
		case "pm":
			if hour >= 1 && hour < 12 {
				hour += 12
			}
		case "am":
			if hour == 12 {
				hour = 0
			}
		}
		if hour < 0 || hour > 23 {
			continue
		}
		return TimeOfDay{Hour: hour, Minute: snapMinute(minute)}, true
	}
	return TimeOfDay{}, false
}

// snapMinute aligns free-text minutes to the 30-minute slot grid.
func snapMinute(minute int) int {
	if minute < 30 {
		return 0
	}
	return 30
}

var morningMarkers = []string{
	"en la mañana", "en la manana", "por la mañana", "por la manana",
	"de la mañana", "de la manana", "temprano",
}

// findDayPart is only consulted when no exact time parsed. A morning mention
// is trusted only for today/tomorrow targets or dateless searches.
func findDayPart(norm string, today, target time.Time, weekdayMatched bool) DayPart {
	if strings.Contains(norm, "tarde") {
		return DayPartAfternoon
	}
	morning := false
	for _, marker := range morningMarkers {
		if strings.Contains(norm, marker) {
			morning = true
			break
		}
	}
	if !morning {
		return DayPartNone
	}
	nearTerm := !target.IsZero() &&
		(civiltime.SameDay(target, today) || civiltime.SameDay(target, today.AddDate(0, 0, 1)))
	if nearTerm || !weekdayMatched {
		return DayPartMorning
	}
	return DayPartNone
}
