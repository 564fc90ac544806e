// Package execution tracks the in-flight processing per visitor so a newer
// message cancels the reply still being computed for the older one.
package execution

import (
	"context"
	"sync"

	"github.com/rs/zerolog/log"
)

type visitorExecution struct {
	ctx    context.Context
	cancel context.CancelFunc
}

type Manager struct {
	executions map[string]*visitorExecution
	mutex      sync.Mutex
}

func NewManager() *Manager {
	return &Manager{
		executions: make(map[string]*visitorExecution),
	}
}

// Start registers a new execution for key (tenantID:visitorID) and cancels
// any previous one still running under the same key.
func (m *Manager) Start(parent context.Context, key string) context.Context {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	if existing, exists := m.executions[key]; exists {
		log.Info().Str("visitor_key", key).Msg("Cancelling previous execution for visitor")
		existing.cancel()
	}

	ctx, cancel := context.WithCancel(parent)
	m.executions[key] = &visitorExecution{
		ctx:    ctx,
		cancel: cancel,
	}

	return ctx
}

// Cleanup removes the execution for key, but only if it is still the one
// started with ctx. A newer Start already replaced it otherwise.
func (m *Manager) Cleanup(key string, ctx context.Context) {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	if execution, exists := m.executions[key]; exists && execution.ctx == ctx {
		execution.cancel()
		delete(m.executions, key)
	}
}
