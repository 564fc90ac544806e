// Package query decides whether a visitor message needs calendar access and
// extracts the scheduling constraints out of free-form Spanish text.
package query

import (
	"strings"
	"time"
)

// TimeOfDay is an exact requested slot start. Minute is always 0 or 30 after
// snapping.
type TimeOfDay struct {
	Hour   int
	Minute int
}

type DayPart int

const (
	DayPartNone DayPart = iota
	DayPartMorning
	DayPartAfternoon
)

// ParsedQuery is the immutable result of parsing one message. TargetDate is
// the civil midnight of the requested day, zero when the user did not anchor
// to a day. GenericNextWeek and DayFilter are mutually exclusive.
type ParsedQuery struct {
	TargetDate      time.Time
	TargetTime      *TimeOfDay
	DayPart         DayPart
	GenericNextWeek bool
	DayFilter       string
	TooFarInFuture  bool
	OutOfHours      bool
}

// HasTargetDate reports whether the user asked about a specific day.
func (q ParsedQuery) HasTargetDate() bool {
	return !q.TargetDate.IsZero()
}

// schedulingKeywords trigger the calendar path. False negatives fall through
// to the LLM; false positives just produce a "no slots" search.
var schedulingKeywords = []string{
	"hora", "horario", "agenda", "agendar", "cita", "reserva",
	"disponib", "atiende", "atencion",
	"lunes", "martes", "miercoles", "jueves", "viernes", "sabado", "domingo",
	"hoy", "mañana", "manana",
	"proxima", "proximo", "prox", "semana",
	"tienes algo", "tiene algo", "hay algo", "queda algo",
}

// IsSchedulingQuery reports whether the message is asking about availability.
// Pure function of the lower-cased, accent-stripped text.
func IsSchedulingQuery(text string) bool {
	norm := normalize(text)
	for _, kw := range schedulingKeywords {
		if strings.Contains(norm, kw) {
			return true
		}
	}
	return false
}

var accentReplacer = strings.NewReplacer(
	"á", "a", "é", "e", "í", "i", "ó", "o", "ú", "u", "ü", "u",
)

// normalize lower-cases and strips vowel accents. The eñe is kept so
// "mañana" stays distinguishable from words that merely contain "nana".
func normalize(text string) string {
	return accentReplacer.Replace(strings.ToLower(text))
}
