// Package reply renders slot computations into the Spanish chat answers the
// widget shows to visitors.
package reply

import (
	"fmt"
	"strings"
	"time"

	"github.com/rockerto/rigbot-go/availability"
	"github.com/rockerto/rigbot-go/civiltime"
	"github.com/rockerto/rigbot-go/config"
	"github.com/rockerto/rigbot-go/query"
)

// TooFar is the canned reply when the requested date exceeds the look-ahead
// cap. No calendar query happens on this path.
func TooFar(cfg config.Effective) string {
	return fmt.Sprintf(
		"Lo siento, sólo puedo revisar la agenda hasta %d días hacia adelante. %s",
		cfg.CalendarMaxUserRequestDays, contactCTA(cfg))
}

// OutOfHours is the canned reply when an exact requested time falls outside
// the working-hours grid.
func OutOfHours(cfg config.Effective) string {
	return fmt.Sprintf(
		"Nuestro horario de atención es de %s. ¿Te acomoda algún horario dentro de ese rango? %s",
		cfg.Hours.Describe(), contactCTA(cfg))
}

// Compose turns the parsed query and computed slots into the final reply.
// The busy intervals are needed again for the alternative-slot search when
// an exact requested time turned out to be taken.
func Compose(q query.ParsedQuery, slots []availability.Slot, busy []availability.BusyInterval, cfg config.Effective, now time.Time) string {
	if q.TargetTime != nil {
		return composeExactTime(q, slots, busy, cfg, now)
	}
	return composeGeneral(q, slots, cfg)
}

func composeExactTime(q query.ParsedQuery, slots []availability.Slot, busy []availability.BusyInterval, cfg config.Effective, now time.Time) string {
	if len(slots) > 0 {
		return fmt.Sprintf("¡Sí! Tenemos disponible el %s. %s",
			slots[0].Label, contactCTA(cfg))
	}

	day := civiltime.Midnight(now)
	if q.HasTargetDate() {
		day = q.TargetDate
	}
	clock := civiltime.FormatClock(q.TargetTime.Hour, q.TargetTime.Minute)

	var b strings.Builder
	fmt.Fprintf(&b, "Lo siento, el %s a las %s ya está tomado.", civiltime.FormatDay(day), clock)

	alternatives := sameDayAlternatives(day, *q.TargetTime, busy, cfg, now)
	if len(alternatives) > 0 {
		b.WriteString(" Ese mismo día tengo:\n")
		for _, alt := range alternatives {
			fmt.Fprintf(&b, "• %s\n", alt.Label)
		}
	} else if q.HasTargetDate() {
		b.WriteString(" No quedan otros horarios ese día.")
	}
	b.WriteString(" " + contactCTA(cfg))
	return b.String()
}

// sameDayAlternatives rescans the requested day's full grid, excluding the
// time just denied, for free slots that have not already passed.
func sameDayAlternatives(day time.Time, denied query.TimeOfDay, busy []availability.BusyInterval, cfg config.Effective, now time.Time) []availability.Slot {
	slotDuration := time.Duration(cfg.Hours.SlotMinutes) * time.Minute
	cutoff := now.Add(time.Minute)

	var alternatives []availability.Slot
	for _, mark := range cfg.Hours.Marks() {
		hour, minute := mark/60, mark%60
		if hour == denied.Hour && minute == denied.Minute {
			continue
		}
		slotStart := civiltime.At(day, hour, minute)
		if slotStart.Before(cutoff) {
			continue
		}
		if availability.IsBusy(slotStart, slotStart.Add(slotDuration), busy) {
			continue
		}
		alternatives = append(alternatives, availability.Slot{
			Start: slotStart,
			Label: civiltime.FormatSlot(slotStart),
		})
		if len(alternatives) >= cfg.MaxSuggestions {
			break
		}
	}
	return alternatives
}

func composeGeneral(q query.ParsedQuery, slots []availability.Slot, cfg config.Effective) string {
	scope := describeScope(q, cfg)

	if len(slots) == 0 {
		return fmt.Sprintf(
			"Lo siento, no encontré horarios disponibles %s. ¿Quieres intentar con otra fecha u horario? %s",
			scope, contactCTA(cfg))
	}

	shown := slots
	if q.DayFilter == "" {
		shown = groupedByDay(slots, cfg.MaxSuggestions)
	} else if len(shown) > cfg.MaxSuggestions {
		shown = shown[:cfg.MaxSuggestions]
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Tenemos estos horarios disponibles %s:\n", scope)
	for _, s := range shown {
		fmt.Fprintf(&b, "• %s\n", s.Label)
	}
	if hidden := len(slots) - len(shown); hidden > 0 {
		fmt.Fprintf(&b, "...y %d horarios más.\n", hidden)
	}
	b.WriteString(contactCTA(cfg))
	return b.String()
}

// groupedByDay caps the listing at two slots per day while respecting the
// overall suggestion budget. Input is already chronological.
func groupedByDay(slots []availability.Slot, maxSuggestions int) []availability.Slot {
	perDay := make(map[string]int)
	var out []availability.Slot
	for _, s := range slots {
		dayID := civiltime.DayID(s.Start)
		if perDay[dayID] >= 2 {
			continue
		}
		perDay[dayID]++
		out = append(out, s)
		if len(out) >= maxSuggestions {
			break
		}
	}
	return out
}

func describeScope(q query.ParsedQuery, cfg config.Effective) string {
	var scope string
	switch {
	case q.GenericNextWeek:
		scope = "para la próxima semana"
	case q.HasTargetDate():
		scope = "para el " + civiltime.FormatDay(q.TargetDate)
	default:
		scope = fmt.Sprintf("dentro de los próximos %d días", cfg.CalendarQueryDays)
	}
	switch q.DayPart {
	case query.DayPartMorning:
		scope += " en la mañana"
	case query.DayPartAfternoon:
		scope += " en la tarde"
	}
	return scope
}

// contactCTA is shared by every branch: a real configured number is embedded,
// the seeded placeholder falls back to the generic phrase.
func contactCTA(cfg config.Effective) string {
	if cfg.WhatsappNumber != "" && cfg.WhatsappNumber != config.WhatsappPlaceholder {
		return fmt.Sprintf("Escríbenos al %s para confirmar tu reserva.", cfg.WhatsappNumber)
	}
	return "Contáctanos por nuestros canales habituales para confirmar tu reserva."
}
