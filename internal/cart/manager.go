package cart

import (
	"context"
	"sync"

	"github.com/Alhamd-Khan/E-Commerce-Platform/internal/kv"

	"github.com/rs/zerolog"
)

// Manager owns one cart store per user, constructed lazily on first use and
// persisted under "cart:<userID>".
type Manager struct {
	mu     sync.Mutex
	carts  map[string]*Store
	pricer Pricer
	state  kv.Store
	logger zerolog.Logger
}

// NewManager creates a cart manager over the given pricer and state backend.
func NewManager(pricer Pricer, state kv.Store, logger zerolog.Logger) *Manager {
	return &Manager{
		carts:  make(map[string]*Store),
		pricer: pricer,
		state:  state,
		logger: logger,
	}
}

// For returns the cart store for the user, creating and loading it on first
// access.
func (m *Manager) For(ctx context.Context, userID string) *Store {
	m.mu.Lock()
	defer m.mu.Unlock()

	if s, ok := m.carts[userID]; ok {
		return s
	}

	s := NewStore(ctx, "cart:"+userID, m.pricer, m.state, m.logger)
	m.carts[userID] = s
	return s
}
