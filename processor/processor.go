// Package processor orchestrates one chat message: scheduling queries run
// through the parser, calendar, availability and reply packages, everything
// else falls through to the LLM responder.
package processor

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/rockerto/rigbot-go/availability"
	"github.com/rockerto/rigbot-go/calendar"
	"github.com/rockerto/rigbot-go/civiltime"
	"github.com/rockerto/rigbot-go/config"
	"github.com/rockerto/rigbot-go/execution"
	"github.com/rockerto/rigbot-go/query"
	"github.com/rockerto/rigbot-go/redis"
	"github.com/rockerto/rigbot-go/reply"
	"github.com/rockerto/rigbot-go/tenant"
)

// degradedReply covers calendar-access failures: the hard error stays in the
// logs, the visitor gets an apology instead of a raw error.
const degradedReply = "Ups, no pude revisar la agenda en este momento. Intenta de nuevo en unos minutos o contáctanos directamente."

type MessageProcessor struct {
	tenants          TenantStoreInterface
	calendars        CalendarSelectorInterface
	history          HistoryStoreInterface
	responder        ResponderInterface
	notifier         LeadNotifierInterface
	executionManager *execution.Manager
	now              func() time.Time
}

func NewMessageProcessor(
	tenants TenantStoreInterface,
	calendars CalendarSelectorInterface,
	history HistoryStoreInterface,
	responder ResponderInterface,
	notifier LeadNotifierInterface,
	execManager *execution.Manager,
) *MessageProcessor {
	return &MessageProcessor{
		tenants:          tenants,
		calendars:        calendars,
		history:          history,
		responder:        responder,
		notifier:         notifier,
		executionManager: execManager,
		now:              time.Now,
	}
}

// Process handles one visitor message and returns the reply text. A newer
// message from the same visitor cancels the one still in flight.
func (mp *MessageProcessor) Process(parent context.Context, t *tenant.Tenant, visitorID, message string) (string, error) {
	executionKey := t.ID + ":" + visitorID
	ctx := mp.executionManager.Start(parent, executionKey)
	defer mp.executionManager.Cleanup(executionKey, ctx)

	if err := mp.history.AddVisitorMessage(t.ID, visitorID, message); err != nil {
		log.Error().Err(err).Str("tenant_id", t.ID).Msg("Error storing visitor message")
	}

	effective := config.Merge(config.Defaults(), t.Settings)
	now := mp.now()

	var (
		replyText string
		path      string
		err       error
	)
	if query.IsSchedulingQuery(message) {
		path = PathCalendar
		replyText, err = mp.processScheduling(ctx, t, message, effective, now)
	} else {
		path = PathLLM
		replyText, err = mp.processWithAI(ctx, t, visitorID)
	}
	if err != nil {
		if errors.Is(err, context.Canceled) {
			log.Info().Str("tenant_id", t.ID).Str("visitor_id", visitorID).
				Msg("Processing cancelled, newer message arrived")
			return "", err
		}
		return "", err
	}

	if err := mp.history.AddBotMessage(t.ID, visitorID, replyText); err != nil {
		log.Error().Err(err).Str("tenant_id", t.ID).Msg("Error storing bot message")
	}

	if err := mp.tenants.LogInteraction(ctx, tenant.InteractionLog{
		TenantID:  t.ID,
		VisitorID: visitorID,
		Message:   message,
		Reply:     replyText,
		Path:      path,
		CreatedAt: now,
	}); err != nil {
		log.Error().Err(err).Str("tenant_id", t.ID).Msg("Error logging interaction")
	}

	return replyText, nil
}

// processScheduling runs the scheduling pipeline. The canned short-circuits
// (too far, out of hours) never touch the calendar.
func (mp *MessageProcessor) processScheduling(ctx context.Context, t *tenant.Tenant, message string, effective config.Effective, now time.Time) (string, error) {
	q := query.Parse(message, now, effective)

	if q.TooFarInFuture {
		return reply.TooFar(effective), nil
	}
	if q.OutOfHours {
		return reply.OutOfHours(effective), nil
	}

	busyLister, err := mp.calendars.ForTenant(ctx, t)
	if err != nil {
		log.Error().Err(err).Str("tenant_id", t.ID).Msg("Calendar selection failed")
		return degradedReply, nil
	}

	windowStart := civiltime.Midnight(now)
	if q.HasTargetDate() {
		windowStart = q.TargetDate
	}
	windowEnd := windowStart.AddDate(0, 0, effective.CalendarQueryDays)

	busy, err := busyLister.ListBusyIntervals(ctx, windowStart, windowEnd)
	if err != nil {
		if errors.Is(err, calendar.ErrUnavailable) {
			log.Error().Err(err).Str("tenant_id", t.ID).Msg("Calendar query failed")
			return degradedReply, nil
		}
		return "", err
	}

	slots := availability.Compute(q, effective, now, busy)
	return reply.Compose(q, slots, busy, effective, now), nil
}

func (mp *MessageProcessor) processWithAI(ctx context.Context, t *tenant.Tenant, visitorID string) (string, error) {
	chatHistory, err := mp.history.GetChatHistory(t.ID, visitorID)
	if err != nil {
		log.Error().Err(err).Str("tenant_id", t.ID).Msg("Error retrieving chat history")
		chatHistory = []redis.ChatMessage{}
	}

	replyText, lead, err := mp.responder.Respond(ctx, t, chatHistory)
	if err != nil {
		return "", err
	}

	if lead != nil {
		if err := mp.notifier.SendLead(t.OwnerEmail, t.Profile.BusinessName, lead); err != nil {
			log.Error().Err(err).Str("tenant_id", t.ID).Msg("Error sending lead notification")
		}
	}

	return replyText, nil
}
