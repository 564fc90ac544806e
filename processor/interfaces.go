package processor

import (
	"context"

	"github.com/rockerto/rigbot-go/calendar"
	"github.com/rockerto/rigbot-go/openai"
	"github.com/rockerto/rigbot-go/redis"
	"github.com/rockerto/rigbot-go/tenant"
)

// TenantStoreInterface is the slice of the tenant store the processor uses.
type TenantStoreInterface interface {
	LogInteraction(ctx context.Context, entry tenant.InteractionLog) error
}

// CalendarSelectorInterface resolves which calendar to query for a tenant.
type CalendarSelectorInterface interface {
	ForTenant(ctx context.Context, t *tenant.Tenant) (calendar.BusyLister, error)
}

// HistoryStoreInterface is the conversation history used as LLM context.
type HistoryStoreInterface interface {
	AddVisitorMessage(tenantID, visitorID, message string) error
	AddBotMessage(tenantID, visitorID, message string) error
	GetChatHistory(tenantID, visitorID string) ([]redis.ChatMessage, error)
}

// ResponderInterface answers non-scheduling messages.
type ResponderInterface interface {
	Respond(ctx context.Context, t *tenant.Tenant, chatHistory []redis.ChatMessage) (string, *openai.Lead, error)
}

// LeadNotifierInterface delivers captured leads to the tenant owner.
type LeadNotifierInterface interface {
	SendLead(ownerEmail, businessName string, lead *openai.Lead) error
}
