// Package civiltime anchors all scheduling math to Chilean wall-clock time.
// The offset is constant: slots follow the business's clock, not the DST
// table, so conversions are pure arithmetic on the fixed zone.
package civiltime

import (
	"fmt"
	"time"
)

// Location is the fixed civil offset used for every conversion (UTC-4).
var Location = time.FixedZone("CLT", -4*60*60)

// Midnight projects an instant onto the civil offset and returns that
// calendar day's 00:00 as an instant.
func Midnight(t time.Time) time.Time {
	local := t.In(Location)
	return time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, Location)
}

// At combines a civil day with an hour and minute on that day's wall clock.
func At(day time.Time, hour, minute int) time.Time {
	local := day.In(Location)
	return time.Date(local.Year(), local.Month(), local.Day(), hour, minute, 0, 0, Location)
}

// DayID returns the canonical YYYY-MM-DD identifier of the instant's civil
// date. Two instants share an identifier iff they fall on the same civil day.
func DayID(t time.Time) string {
	return t.In(Location).Format("2006-01-02")
}

// SameDay reports whether two instants fall on the same civil calendar day.
func SameDay(a, b time.Time) bool {
	return DayID(a) == DayID(b)
}

var weekdayNames = [7]string{
	"domingo", "lunes", "martes", "miércoles", "jueves", "viernes", "sábado",
}

var monthNames = [13]string{
	"", "enero", "febrero", "marzo", "abril", "mayo", "junio",
	"julio", "agosto", "septiembre", "octubre", "noviembre", "diciembre",
}

// WeekdayName returns the Spanish weekday name of the instant's civil day.
func WeekdayName(t time.Time) string {
	return weekdayNames[int(t.In(Location).Weekday())]
}

// FormatDay renders a civil day for display, e.g. "lunes 26 de mayo".
func FormatDay(t time.Time) string {
	local := t.In(Location)
	return fmt.Sprintf("%s %d de %s",
		weekdayNames[int(local.Weekday())], local.Day(), monthNames[int(local.Month())])
}

// FormatClock renders an hour and minute, e.g. "15:00".
func FormatClock(hour, minute int) string {
	return fmt.Sprintf("%02d:%02d", hour, minute)
}

// FormatSlot renders a slot start for display, e.g. "lunes 26 de mayo a las
// 15:00". Display only: slot comparisons use instants and DayID, never this.
func FormatSlot(t time.Time) string {
	local := t.In(Location)
	return fmt.Sprintf("%s a las %s", FormatDay(local), FormatClock(local.Hour(), local.Minute()))
}
