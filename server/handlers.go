package server

import (
	"context"
	"errors"

	"github.com/gofiber/fiber/v3"
	"github.com/rs/zerolog/log"

	"github.com/rockerto/rigbot-go/tenant"
)

func (s *Server) chatHandler(c fiber.Ctx) error {
	var req ChatRequest
	if err := c.Bind().JSON(&req); err != nil {
		log.Error().Err(err).Msg("Error parsing chat request")
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{Error: "invalid request body"})
	}

	if req.Message == "" {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{Error: "message is required"})
	}
	if req.VisitorID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{Error: "visitor_id is required"})
	}

	ctx := context.Background()

	t, err := s.tenants.ByClave(ctx, req.Clave)
	if err != nil {
		if errors.Is(err, tenant.ErrNotFound) {
			return c.Status(fiber.StatusUnauthorized).JSON(ErrorResponse{Error: "unknown clave"})
		}
		log.Error().Err(err).Str("clave", req.Clave).Msg("Error looking up tenant")
		return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{Error: "tenant lookup failed"})
	}

	log.Info().
		Str("tenant_id", t.ID).
		Str("visitor_id", req.VisitorID).
		Str("text", req.Message).
		Msg("Processing chat message")

	replyText, err := s.messageProcessor.Process(ctx, t, req.VisitorID, req.Message)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			return c.SendStatus(fiber.StatusNoContent)
		}
		log.Error().Err(err).Str("tenant_id", t.ID).Msg("Error processing message")
		return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{Error: "processing failed"})
	}

	return c.JSON(ChatResponse{Reply: replyText})
}

func (s *Server) healthCheckHandler(c fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok"})
}

func (s *Server) crmVisitorsHandler(c fiber.Ctx) error {
	t, err := s.tenantFromParams(c)
	if t == nil {
		return err
	}

	visitors, err := s.history.ActiveVisitors(t.ID)
	if err != nil {
		log.Error().Err(err).Str("tenant_id", t.ID).Msg("Error listing visitors")
		return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{Error: "failed to list visitors"})
	}

	return c.JSON(VisitorsResponse{Visitors: visitors, Count: len(visitors)})
}

func (s *Server) crmConversationHandler(c fiber.Ctx) error {
	t, err := s.tenantFromParams(c)
	if t == nil {
		return err
	}
	visitorID := c.Params("visitorId")

	messages, err := s.history.GetChatHistory(t.ID, visitorID)
	if err != nil {
		log.Error().Err(err).Str("tenant_id", t.ID).Str("visitor_id", visitorID).
			Msg("Error retrieving conversation")
		return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{Error: "failed to retrieve conversation"})
	}

	return c.JSON(ConversationResponse{
		VisitorID: visitorID,
		Messages:  messages,
		Count:     len(messages),
	})
}

func (s *Server) crmClearConversationHandler(c fiber.Ctx) error {
	t, err := s.tenantFromParams(c)
	if t == nil {
		return err
	}
	visitorID := c.Params("visitorId")

	if err := s.history.ClearChatHistory(t.ID, visitorID); err != nil {
		log.Error().Err(err).Str("tenant_id", t.ID).Str("visitor_id", visitorID).
			Msg("Error clearing conversation")
		return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{Error: "failed to clear conversation"})
	}

	return c.JSON(fiber.Map{"status": "cleared"})
}

// tenantFromParams resolves the :clave path parameter. On failure it writes
// the error response itself and returns a nil tenant.
func (s *Server) tenantFromParams(c fiber.Ctx) (*tenant.Tenant, error) {
	clave := c.Params("clave")
	t, err := s.tenants.ByClave(context.Background(), clave)
	if err != nil {
		if errors.Is(err, tenant.ErrNotFound) {
			return nil, c.Status(fiber.StatusUnauthorized).JSON(ErrorResponse{Error: "unknown clave"})
		}
		log.Error().Err(err).Str("clave", clave).Msg("Error looking up tenant")
		return nil, c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{Error: "tenant lookup failed"})
	}
	return t, nil
}
