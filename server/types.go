package server

import "github.com/rockerto/rigbot-go/redis"

// ChatRequest is the widget payload for POST /api/chat.
type ChatRequest struct {
	Clave     string `json:"clave"`
	VisitorID string `json:"visitor_id"`
	Message   string `json:"message"`
}

type ChatResponse struct {
	Reply string `json:"reply"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

// ConversationResponse is the full history of one visitor for the CRM view.
type ConversationResponse struct {
	VisitorID string              `json:"visitorId"`
	Messages  []redis.ChatMessage `json:"messages"`
	Count     int                 `json:"count"`
}

// VisitorsResponse lists visitors with stored history for a tenant.
type VisitorsResponse struct {
	Visitors []string `json:"visitors"`
	Count    int      `json:"count"`
}
