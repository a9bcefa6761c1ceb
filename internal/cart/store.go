// Package cart holds per-user shopping carts. A cart persists only its line
// items; totals are derived from the live catalogue on every read so a price
// edit retroactively changes a pending cart's total.
package cart

import (
	"context"
	"encoding/json"
	"errors"
	"math"
	"sync"

	"github.com/Alhamd-Khan/E-Commerce-Platform/internal/kv"
	"github.com/Alhamd-Khan/E-Commerce-Platform/internal/model"

	"github.com/rs/zerolog"
)

// Pricer resolves product prices for cart totals. Satisfied by the catalogue
// store.
type Pricer interface {
	GetByID(id string) (model.Product, bool)
}

// Store is a single user's cart. Items are keyed by product id; mutations
// persist the item list (never the derived totals) as a fire-and-forget side
// effect.
type Store struct {
	mu     sync.Mutex
	items  []model.CartItem
	pricer Pricer
	state  kv.Store
	key    string
	logger zerolog.Logger
}

// NewStore creates a cart store for the given persistence key, loading any
// previously persisted items. Totals are always recomputed from the pricer,
// never trusted from storage.
func NewStore(ctx context.Context, key string, pricer Pricer, state kv.Store, logger zerolog.Logger) *Store {
	s := &Store{
		pricer: pricer,
		state:  state,
		key:    key,
		logger: logger.With().Str("store", "cart").Str("key", key).Logger(),
	}

	data, err := state.Get(ctx, key)
	switch {
	case err == nil:
		if jsonErr := json.Unmarshal(data, &s.items); jsonErr != nil {
			s.logger.Error().Err(jsonErr).Msg("corrupt cart snapshot, starting empty")
			s.items = nil
		}
	case errors.Is(err, kv.ErrNotFound):
		// First visit, empty cart.
	default:
		s.logger.Error().Err(err).Msg("failed to load cart snapshot, starting empty")
	}

	return s
}

// Add adds quantity of the product to the cart, incrementing an existing
// line or appending a new one. Quantities below 1 are treated as 1. Stock is
// not checked here; it is advisory display data only.
func (s *Store) Add(ctx context.Context, productID string, quantity int) {
	if quantity < 1 {
		quantity = 1
	}

	s.mu.Lock()
	found := false
	for i := range s.items {
		if s.items[i].ProductID == productID {
			s.items[i].Quantity += quantity
			found = true
			break
		}
	}
	if !found {
		s.items = append(s.items, model.CartItem{ProductID: productID, Quantity: quantity})
	}
	s.mu.Unlock()

	s.persist(ctx)
}

// Remove deletes the line for the product, if present.
func (s *Store) Remove(ctx context.Context, productID string) {
	s.mu.Lock()
	for i, item := range s.items {
		if item.ProductID == productID {
			s.items = append(s.items[:i:i], s.items[i+1:]...)
			break
		}
	}
	s.mu.Unlock()

	s.persist(ctx)
}

// UpdateQuantity sets the line's quantity. A quantity of zero or below is
// equivalent to Remove.
func (s *Store) UpdateQuantity(ctx context.Context, productID string, quantity int) {
	if quantity <= 0 {
		s.Remove(ctx, productID)
		return
	}

	s.mu.Lock()
	for i := range s.items {
		if s.items[i].ProductID == productID {
			s.items[i].Quantity = quantity
			break
		}
	}
	s.mu.Unlock()

	s.persist(ctx)
}

// Clear empties the cart. Called immediately after a successful checkout.
func (s *Store) Clear(ctx context.Context) {
	s.mu.Lock()
	s.items = nil
	s.mu.Unlock()

	s.persist(ctx)
}

// Items returns a copy of the cart's line items.
func (s *Store) Items() []model.CartItem {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]model.CartItem, len(s.items))
	copy(out, s.items)
	return out
}

// Snapshot returns the cart with its derived totals. The total is the sum of
// current catalogue price times quantity, rounded to two decimals; lines
// whose product no longer exists contribute zero.
func (s *Store) Snapshot() model.Cart {
	items := s.Items()

	total := 0.0
	itemCount := 0
	for _, item := range items {
		if p, ok := s.pricer.GetByID(item.ProductID); ok {
			total += p.Price * float64(item.Quantity)
		}
		itemCount += item.Quantity
	}

	return model.Cart{
		Items:     items,
		Total:     math.Round(total*100) / 100,
		ItemCount: itemCount,
	}
}

// persist writes the item list snapshot. Failures are logged only.
func (s *Store) persist(ctx context.Context) {
	s.mu.Lock()
	items := s.items
	if items == nil {
		items = []model.CartItem{}
	}
	data, err := json.Marshal(items)
	s.mu.Unlock()
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to encode cart snapshot")
		return
	}
	if err := s.state.Set(ctx, s.key, data); err != nil {
		s.logger.Error().Err(err).Msg("failed to persist cart snapshot")
	}
}
