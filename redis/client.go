// Package redis stores per-visitor conversation history, keyed by tenant.
// The history feeds the LLM responder as context and the owner-facing
// conversation endpoints.
package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

const historyTTL = 24 * time.Hour

type Client struct {
	rdb *redis.Client
	ctx context.Context
}

type ChatMessage struct {
	Role      string    `json:"role"`
	Content   string    `json:"content"`
	Timestamp time.Time `json:"timestamp"`
}

func NewClient(addr, password string, db int) Client {
	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	client := Client{
		rdb: rdb,
		ctx: context.Background(),
	}

	if err := client.Ping(); err != nil {
		log.Fatal().Err(err).
			Str("addr", addr).
			Int("db", db).
			Msg("Redis connection failed")
	} else {
		log.Info().
			Str("addr", addr).
			Int("db", db).
			Msg("Redis connected successfully")
	}

	return client
}

func (c *Client) Ping() error {
	return c.rdb.Ping(c.ctx).Err()
}

func historyKey(tenantID, visitorID string) string {
	return fmt.Sprintf("chat_history:%s:%s", tenantID, visitorID)
}

func (c *Client) AddVisitorMessage(tenantID, visitorID, message string) error {
	return c.addMessage(tenantID, visitorID, ChatMessage{
		Role:      "user",
		Content:   message,
		Timestamp: time.Now(),
	})
}

func (c *Client) AddBotMessage(tenantID, visitorID, message string) error {
	return c.addMessage(tenantID, visitorID, ChatMessage{
		Role:      "assistant",
		Content:   message,
		Timestamp: time.Now(),
	})
}

func (c *Client) addMessage(tenantID, visitorID string, message ChatMessage) error {
	key := historyKey(tenantID, visitorID)

	messageJSON, err := json.Marshal(message)
	if err != nil {
		return err
	}

	_, err = c.rdb.RPush(c.ctx, key, messageJSON).Result()
	if err != nil {
		return err
	}

	c.rdb.Expire(c.ctx, key, historyTTL)

	return nil
}

func (c *Client) GetChatHistory(tenantID, visitorID string) ([]ChatMessage, error) {
	key := historyKey(tenantID, visitorID)

	messages, err := c.rdb.LRange(c.ctx, key, 0, -1).Result()
	if err != nil {
		return nil, err
	}

	var chatHistory []ChatMessage
	for _, message := range messages {
		var msg ChatMessage
		if err := json.Unmarshal([]byte(message), &msg); err != nil {
			continue
		}
		chatHistory = append(chatHistory, msg)
	}

	return chatHistory, nil
}

func (c *Client) ClearChatHistory(tenantID, visitorID string) error {
	return c.rdb.Del(c.ctx, historyKey(tenantID, visitorID)).Err()
}

// ActiveVisitors returns the visitor IDs with a live conversation for one
// tenant.
func (c *Client) ActiveVisitors(tenantID string) ([]string, error) {
	prefix := fmt.Sprintf("chat_history:%s:", tenantID)
	keys, err := c.rdb.Keys(c.ctx, prefix+"*").Result()
	if err != nil {
		return nil, err
	}

	var visitorIDs []string
	for _, key := range keys {
		if len(key) > len(prefix) {
			visitorIDs = append(visitorIDs, key[len(prefix):])
		}
	}

	return visitorIDs, nil
}
