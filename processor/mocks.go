package processor

import (
	"context"
	"time"

	"github.com/rockerto/rigbot-go/availability"
	"github.com/rockerto/rigbot-go/calendar"
	"github.com/rockerto/rigbot-go/openai"
	"github.com/rockerto/rigbot-go/redis"
	"github.com/rockerto/rigbot-go/tenant"
)

// MockTenantStore implements TenantStoreInterface for local testing.
type MockTenantStore struct {
	Logged []tenant.InteractionLog
}

func (m *MockTenantStore) LogInteraction(ctx context.Context, entry tenant.InteractionLog) error {
	m.Logged = append(m.Logged, entry)
	return nil
}

// MockBusyLister implements calendar.BusyLister with a fixed busy list.
type MockBusyLister struct {
	Busy  []availability.BusyInterval
	Err   error
	Calls int

	LastStart time.Time
	LastEnd   time.Time
}

func (m *MockBusyLister) ListBusyIntervals(ctx context.Context, start, end time.Time) ([]availability.BusyInterval, error) {
	m.Calls++
	m.LastStart = start
	m.LastEnd = end
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Busy, nil
}

// MockCalendarSelector implements CalendarSelectorInterface.
type MockCalendarSelector struct {
	Lister *MockBusyLister
	Err    error
}

func (m *MockCalendarSelector) ForTenant(ctx context.Context, t *tenant.Tenant) (calendar.BusyLister, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Lister, nil
}

// MockHistoryStore implements HistoryStoreInterface in memory.
type MockHistoryStore struct {
	VisitorMessages []string
	BotMessages     []string
	History         []redis.ChatMessage
}

func (m *MockHistoryStore) AddVisitorMessage(tenantID, visitorID, message string) error {
	m.VisitorMessages = append(m.VisitorMessages, message)
	return nil
}

func (m *MockHistoryStore) AddBotMessage(tenantID, visitorID, message string) error {
	m.BotMessages = append(m.BotMessages, message)
	return nil
}

func (m *MockHistoryStore) GetChatHistory(tenantID, visitorID string) ([]redis.ChatMessage, error) {
	return m.History, nil
}

// MockResponder implements ResponderInterface with a canned reply.
type MockResponder struct {
	Reply string
	Lead  *openai.Lead
	Err   error
	Calls int
}

func (m *MockResponder) Respond(ctx context.Context, t *tenant.Tenant, chatHistory []redis.ChatMessage) (string, *openai.Lead, error) {
	m.Calls++
	if m.Err != nil {
		return "", nil, m.Err
	}
	return m.Reply, m.Lead, nil
}

// MockLeadNotifier implements LeadNotifierInterface.
type MockLeadNotifier struct {
	Sent []*openai.Lead
}

func (m *MockLeadNotifier) SendLead(ownerEmail, businessName string, lead *openai.Lead) error {
	m.Sent = append(m.Sent, lead)
	return nil
}
