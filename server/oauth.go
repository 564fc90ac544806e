package server

import (
	"context"
	"errors"

	"github.com/gofiber/fiber/v3"
	"github.com/rs/zerolog/log"
	"golang.org/x/oauth2"

	"github.com/rockerto/rigbot-go/tenant"
)

// oauthStartHandler redirects the tenant owner to Google consent. The clave
// travels in the state parameter so the callback can find the tenant again.
func (s *Server) oauthStartHandler(c fiber.Ctx) error {
	clave := c.Query("clave")
	if clave == "" {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{Error: "clave is required"})
	}

	if _, err := s.tenants.ByClave(context.Background(), clave); err != nil {
		if errors.Is(err, tenant.ErrNotFound) {
			return c.Status(fiber.StatusUnauthorized).JSON(ErrorResponse{Error: "unknown clave"})
		}
		log.Error().Err(err).Str("clave", clave).Msg("Error looking up tenant")
		return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{Error: "tenant lookup failed"})
	}

	url := s.calendars.OAuthConfig().AuthCodeURL(clave,
		oauth2.AccessTypeOffline,
		oauth2.SetAuthURLParam("prompt", "consent"))

	return c.Redirect().To(url)
}

func (s *Server) oauthCallbackHandler(c fiber.Ctx) error {
	code := c.Query("code")
	clave := c.Query("state")
	if code == "" || clave == "" {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{Error: "code and state are required"})
	}

	ctx := context.Background()

	t, err := s.tenants.ByClave(ctx, clave)
	if err != nil {
		if errors.Is(err, tenant.ErrNotFound) {
			return c.Status(fiber.StatusUnauthorized).JSON(ErrorResponse{Error: "unknown clave"})
		}
		log.Error().Err(err).Str("clave", clave).Msg("Error looking up tenant")
		return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{Error: "tenant lookup failed"})
	}

	tok, err := s.calendars.OAuthConfig().Exchange(ctx, code)
	if err != nil {
		log.Error().Err(err).Str("tenant_id", t.ID).Msg("OAuth code exchange failed")
		return c.Status(fiber.StatusBadGateway).JSON(ErrorResponse{Error: "code exchange failed"})
	}

	if err := s.tenants.SaveToken(ctx, t.ID, tok); err != nil {
		log.Error().Err(err).Str("tenant_id", t.ID).Msg("Error saving OAuth token")
		return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{Error: "failed to save token"})
	}

	log.Info().Str("tenant_id", t.ID).Msg("Google Calendar connected")

	return c.JSON(fiber.Map{"status": "connected"})
}
