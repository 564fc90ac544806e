package main

import (
	"context"
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/rockerto/rigbot-go/calendar"
	"github.com/rockerto/rigbot-go/config"
	"github.com/rockerto/rigbot-go/execution"
	"github.com/rockerto/rigbot-go/notify"
	"github.com/rockerto/rigbot-go/openai"
	"github.com/rockerto/rigbot-go/processor"
	"github.com/rockerto/rigbot-go/redis"
	"github.com/rockerto/rigbot-go/server"
	"github.com/rockerto/rigbot-go/tenant"
)

func main() {
	cfg := config.Load()

	ctx := context.Background()

	tenants, err := tenant.NewStore(ctx, cfg.FirestoreProjectID, cfg.GoogleCredentialsFile)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to Firestore")
	}
	defer tenants.Close()

	redisClient := redis.NewClient(
		cfg.RedisAddr,
		cfg.RedisPassword,
		cfg.RedisDB,
	)

	openaiClient := openai.NewClient(
		cfg.OpenAIKey,
		http.Client{},
	)

	calendars := calendar.NewSelector(cfg, tenants)

	notifier := notify.NewClient(cfg.SESRegion, cfg.LeadSenderEmail)

	messageProcessor := processor.NewMessageProcessor(
		tenants,
		calendars,
		&redisClient,
		&openaiClient,
		notifier,
		execution.NewManager(),
	)

	srv := server.New(messageProcessor, tenants, &redisClient, calendars)
	srv.Start(cfg.Port)
}
