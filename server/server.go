package server

import (
	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/cors"
	"github.com/gofiber/fiber/v3/middleware/recover"
	"github.com/rs/zerolog/log"

	"github.com/rockerto/rigbot-go/calendar"
	"github.com/rockerto/rigbot-go/processor"
	"github.com/rockerto/rigbot-go/redis"
	"github.com/rockerto/rigbot-go/tenant"
)

type Server struct {
	app              *fiber.App
	messageProcessor *processor.MessageProcessor
	tenants          *tenant.Store
	history          *redis.Client
	calendars        *calendar.Selector
}

func New(messageProcessor *processor.MessageProcessor, tenants *tenant.Store, history *redis.Client, calendars *calendar.Selector) *Server {
	app := fiber.New()

	app.Use(recover.New())

	// The widget is embedded on arbitrary customer sites, so origins stay open.
	app.Use(cors.New(cors.Config{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{"GET", "POST", "OPTIONS"},
		AllowHeaders: []string{"Origin", "Content-Type", "Accept"},
	}))

	server := &Server{
		app:              app,
		messageProcessor: messageProcessor,
		tenants:          tenants,
		history:          history,
		calendars:        calendars,
	}

	server.setupRoutes()

	return server
}

func (s *Server) Start(port string) {
	log.Info().Str("port", port).Msg("Starting rigbot server")

	err := s.app.Listen(":"+port, fiber.ListenConfig{
		DisableStartupMessage: true,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to start server")
	}
}
