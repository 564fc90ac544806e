// Package calendar adapts Google Calendar to the one capability the
// scheduling core needs: listing busy intervals for a time range.
package calendar

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/oauth2"
	gcal "google.golang.org/api/calendar/v3"
	"google.golang.org/api/option"

	"github.com/rockerto/rigbot-go/availability"
)

// ErrUnavailable marks calendar-access failures. An empty interval list
// always means "queried successfully, nothing busy"; a failed query
// surfaces this error instead.
var ErrUnavailable = errors.New("calendar unavailable")

// BusyLister is the capability interface consumed by the orchestrator.
type BusyLister interface {
	ListBusyIntervals(ctx context.Context, start, end time.Time) ([]availability.BusyInterval, error)
}

// GoogleCalendar queries one calendar through the Calendar API.
type GoogleCalendar struct {
	svc        *gcal.Service
	calendarID string
}

// NewDefault builds the shared service-account calendar used by tenants
// without their own connected calendar.
func NewDefault(ctx context.Context, credentialsFile, calendarID string) (*GoogleCalendar, error) {
	svc, err := gcal.NewService(ctx, option.WithCredentialsFile(credentialsFile))
	if err != nil {
		return nil, fmt.Errorf("creating calendar service: %w", err)
	}
	return &GoogleCalendar{svc: svc, calendarID: calendarID}, nil
}

// NewWithTokenSource builds a calendar client on a tenant's OAuth
// credentials.
func NewWithTokenSource(ctx context.Context, ts oauth2.TokenSource, calendarID string) (*GoogleCalendar, error) {
	svc, err := gcal.NewService(ctx, option.WithTokenSource(ts))
	if err != nil {
		return nil, fmt.Errorf("creating calendar service: %w", err)
	}
	return &GoogleCalendar{svc: svc, calendarID: calendarID}, nil
}

// ListBusyIntervals runs a FreeBusy query for [start, end). The API already
// normalizes all-day and timed events into plain busy ranges.
func (g *GoogleCalendar) ListBusyIntervals(ctx context.Context, start, end time.Time) ([]availability.BusyInterval, error) {
	req := &gcal.FreeBusyRequest{
		TimeMin: start.Format(time.RFC3339),
		TimeMax: end.Format(time.RFC3339),
		Items:   []*gcal.FreeBusyRequestItem{{Id: g.calendarID}},
	}

	res, err := g.svc.Freebusy.Query(req).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("%w: freebusy query for %s: %v", ErrUnavailable, g.calendarID, err)
	}

	cal, ok := res.Calendars[g.calendarID]
	if !ok {
		return nil, fmt.Errorf("%w: calendar %s missing from freebusy response", ErrUnavailable, g.calendarID)
	}

	intervals := make([]availability.BusyInterval, 0, len(cal.Busy))
	for _, b := range cal.Busy {
		bStart, err := time.Parse(time.RFC3339, b.Start)
		if err != nil {
			continue
		}
		bEnd, err := time.Parse(time.RFC3339, b.End)
		if err != nil {
			continue
		}
		intervals = append(intervals, availability.BusyInterval{Start: bStart, End: bEnd})
	}
	return intervals, nil
}

// CreateAppointment inserts a confirmed booking. Side function of the write
// path; availability never depends on it.
func (g *GoogleCalendar) CreateAppointment(ctx context.Context, start time.Time, durationMinutes int, summary, description string) error {
	event := &gcal.Event{
		Summary:     summary,
		Description: description,
		Start:       &gcal.EventDateTime{DateTime: start.Format(time.RFC3339)},
		End:         &gcal.EventDateTime{DateTime: start.Add(time.Duration(durationMinutes) * time.Minute).Format(time.RFC3339)},
	}
	if _, err := g.svc.Events.Insert(g.calendarID, event).Context(ctx).Do(); err != nil {
		return fmt.Errorf("inserting event: %w", err)
	}
	return nil
}
