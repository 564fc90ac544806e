package config

import "fmt"

// WhatsappPlaceholder is the number new tenants are seeded with. A tenant
// whose contact number still equals the placeholder has not configured one.
const WhatsappPlaceholder = "+56 9 XXXX XXXX"

// WorkingHours is the bookable grid for one civil day. StartMinute and
// EndMinute are minutes from civil midnight; EndMinute is the last valid slot
// start, inclusive.
type WorkingHours struct {
	StartMinute int
	EndMinute   int
	SlotMinutes int
}

// Marks returns every slot-start minute of the grid, in order.
func (w WorkingHours) Marks() []int {
	var marks []int
	for m := w.StartMinute; m <= w.EndMinute; m += w.SlotMinutes {
		marks = append(marks, m)
	}
	return marks
}

// Contains reports whether hour:minute is a valid slot start on the grid.
func (w WorkingHours) Contains(hour, minute int) bool {
	m := hour*60 + minute
	if m < w.StartMinute || m > w.EndMinute {
		return false
	}
	return (m-w.StartMinute)%w.SlotMinutes == 0
}

// Describe renders the grid bounds for user-facing replies, e.g. "10:00 a 19:30".
func (w WorkingHours) Describe() string {
	return fmt.Sprintf("%02d:%02d a %02d:%02d",
		w.StartMinute/60, w.StartMinute%60, w.EndMinute/60, w.EndMinute%60)
}

// Effective is the resolved scheduling configuration for one tenant, valid
// for the duration of a single request. It is never mutated after Merge.
type Effective struct {
	CalendarQueryDays          int
	CalendarMaxUserRequestDays int
	MaxSuggestions             int
	WhatsappNumber             string
	Hours                      WorkingHours
}

// Defaults returns the baseline configuration every tenant starts from.
func Defaults() Effective {
	return Effective{
		CalendarQueryDays:          7,
		CalendarMaxUserRequestDays: 21,
		MaxSuggestions:             5,
		WhatsappNumber:             WhatsappPlaceholder,
		Hours: WorkingHours{
			StartMinute: 10 * 60,
			EndMinute:   19*60 + 30,
			SlotMinutes: 30,
		},
	}
}

// Overrides are the per-tenant settings stored in the tenant document. Zero
// values mean "not set" and fall back to the defaults.
type Overrides struct {
	CalendarQueryDays          int    `firestore:"calendarQueryDays"`
	CalendarMaxUserRequestDays int    `firestore:"calendarMaxUserRequestDays"`
	MaxSuggestions             int    `firestore:"maxSuggestions"`
	WhatsappNumber             string `firestore:"whatsapp"`
	WorkStartMinute            int    `firestore:"workStartMinute"`
	WorkEndMinute              int    `firestore:"workEndMinute"`
}

// Merge produces a new Effective from defaults plus tenant overrides. It
// never modifies its inputs.
func Merge(defaults Effective, o Overrides) Effective {
	merged := defaults
	if o.CalendarQueryDays > 0 {
		merged.CalendarQueryDays = o.CalendarQueryDays
	}
	if o.CalendarMaxUserRequestDays > 0 {
		merged.CalendarMaxUserRequestDays = o.CalendarMaxUserRequestDays
	}
	if o.MaxSuggestions > 0 {
		merged.MaxSuggestions = o.MaxSuggestions
	}
	if o.WhatsappNumber != "" {
		merged.WhatsappNumber = o.WhatsappNumber
	}
	if o.WorkStartMinute > 0 {
		merged.Hours.StartMinute = o.WorkStartMinute
	}
	if o.WorkEndMinute > 0 {
		merged.Hours.EndMinute = o.WorkEndMinute
	}
	return merged
}
