package calendar

import (
	"context"
	"errors"
	"strings"

	"github.com/rs/zerolog/log"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	gcal "google.golang.org/api/calendar/v3"

	"github.com/rockerto/rigbot-go/config"
	"github.com/rockerto/rigbot-go/tenant"
)

// TokenStore is the slice of the tenant store the selector needs to keep
// refreshed tokens persisted and dead tokens cleared.
type TokenStore interface {
	SaveToken(ctx context.Context, tenantID string, tok *oauth2.Token) error
	ClearToken(ctx context.Context, tenantID string) error
}

// Selector picks the calendar to query for a tenant: its own OAuth-backed
// calendar when connected, the shared default one otherwise. Built once at
// startup, chosen per request, never a cached default shared across tenants.
type Selector struct {
	oauth             *oauth2.Config
	store             TokenStore
	credentialsFile   string
	defaultCalendarID string
}

func NewSelector(cfg *config.Config, store TokenStore) *Selector {
	return &Selector{
		oauth: &oauth2.Config{
			ClientID:     cfg.GoogleOAuthClientID,
			ClientSecret: cfg.GoogleOAuthClientSecret,
			RedirectURL:  cfg.GoogleOAuthRedirectURL,
			Scopes:       []string{gcal.CalendarEventsScope},
			Endpoint:     google.Endpoint,
		},
		store:             store,
		credentialsFile:   cfg.GoogleCredentialsFile,
		defaultCalendarID: cfg.DefaultCalendarID,
	}
}

// OAuthConfig exposes the OAuth config for the connect/callback handlers.
func (s *Selector) OAuthConfig() *oauth2.Config {
	return s.oauth
}

// ForTenant resolves the calendar for one request. A refreshed token is
// written back; a revoked one is cleared and the tenant falls back to the
// default calendar for this and later requests.
func (s *Selector) ForTenant(ctx context.Context, t *tenant.Tenant) (BusyLister, error) {
	if t.Token == nil {
		return s.defaultCalendar(ctx)
	}

	stored := t.Token.OAuth2()
	ts := s.oauth.TokenSource(ctx, stored)

	tok, err := ts.Token()
	if err != nil {
		if !isInvalidGrant(err) {
			return nil, errors.Join(ErrUnavailable, err)
		}
		log.Warn().
			Str("tenant_id", t.ID).
			Msg("Google token revoked, clearing and falling back to default calendar")
		if clearErr := s.store.ClearToken(ctx, t.ID); clearErr != nil {
			log.Error().Err(clearErr).Str("tenant_id", t.ID).Msg("Failed to clear revoked token")
		}
		return s.defaultCalendar(ctx)
	}

	if tok.AccessToken != stored.AccessToken {
		if saveErr := s.store.SaveToken(ctx, t.ID, tok); saveErr != nil {
			log.Error().Err(saveErr).Str("tenant_id", t.ID).Msg("Failed to persist refreshed token")
		}
	}

	calendarID := t.CalendarID
	if calendarID == "" {
		calendarID = "primary"
	}
	return NewWithTokenSource(ctx, ts, calendarID)
}

func (s *Selector) defaultCalendar(ctx context.Context) (BusyLister, error) {
	return NewDefault(ctx, s.credentialsFile, s.defaultCalendarID)
}

func isInvalidGrant(err error) bool {
	var retrieveErr *oauth2.RetrieveError
	if errors.As(err, &retrieveErr) {
		return retrieveErr.ErrorCode == "invalid_grant"
	}
	return strings.Contains(err.Error(), "invalid_grant")
}
