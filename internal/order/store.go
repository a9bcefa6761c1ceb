// Package order holds placed orders: immutable records created from a cart
// snapshot at checkout, mutable only through status transitions.
package order

import (
	"context"
	"crypto/rand"
	"encoding/json"
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/Alhamd-Khan/E-Commerce-Platform/internal/kv"
	"github.com/Alhamd-Khan/E-Commerce-Platform/internal/model"

	"github.com/rs/zerolog"
)

const stateKey = "orders"

const base36 = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// Store holds all orders, most recent first. Mutations persist a full
// snapshot; persistence failures are logged, never surfaced.
type Store struct {
	mu     sync.RWMutex
	orders []model.Order
	state  kv.Store
	logger zerolog.Logger
}

// NewStore creates an order store, loading any persisted orders.
func NewStore(ctx context.Context, state kv.Store, logger zerolog.Logger) *Store {
	s := &Store{
		state:  state,
		logger: logger.With().Str("store", "order").Logger(),
	}

	data, err := state.Get(ctx, stateKey)
	switch {
	case err == nil:
		if jsonErr := json.Unmarshal(data, &s.orders); jsonErr != nil {
			s.logger.Error().Err(jsonErr).Msg("corrupt order snapshot, starting empty")
			s.orders = nil
		}
	case errors.Is(err, kv.ErrNotFound):
		// No orders yet.
	default:
		s.logger.Error().Err(err).Msg("failed to load order snapshot, starting empty")
	}

	s.logger.Info().Int("count", len(s.orders)).Msg("orders loaded")
	return s
}

// Add creates an order from a cart snapshot and a raw checkout form,
// building the shipping address from the form fields.
func (s *Store) Add(ctx context.Context, userID string, items []model.CartItem, total, tax float64, form model.ShippingForm, paymentMethod string) (string, error) {
	return s.AddWithAddress(ctx, userID, items, total, tax, form.ToAddress(), paymentMethod)
}

// AddWithAddress creates an order from an already-built shipping address.
// An empty userID fails with ErrUnauthorized before any state changes; no
// partial order is ever created. Returns the generated order id.
func (s *Store) AddWithAddress(ctx context.Context, userID string, items []model.CartItem, total, tax float64, addr model.ShippingAddress, paymentMethod string) (string, error) {
	if userID == "" {
		return "", model.ErrUnauthorized
	}

	now := time.Now()
	o := model.Order{
		ID:              randBase36(9),
		UserID:          userID,
		Items:           append([]model.CartItem(nil), items...),
		Total:           total,
		Tax:             tax,
		Status:          model.StatusConfirmed,
		ShippingAddress: addr,
		PaymentMethod:   paymentMethod,
		CreatedAt:       now,
		UpdatedAt:       now,
		TrackingNumber:  "TRK" + randBase36(8),
	}

	s.mu.Lock()
	s.orders = append([]model.Order{o}, s.orders...)
	s.mu.Unlock()

	s.logger.Info().
		Str("order_id", o.ID).
		Str("user_id", userID).
		Float64("total", total).
		Str("tracking_number", o.TrackingNumber).
		Msg("order created")

	s.persist(ctx)
	return o.ID, nil
}

// GetByID returns the order with the given id, if present.
func (s *Store) GetByID(id string) (model.Order, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, o := range s.orders {
		if o.ID == id {
			return o, true
		}
	}
	return model.Order{}, false
}

// All returns a copy of every order, most recent first.
func (s *Store) All() []model.Order {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]model.Order, len(s.orders))
	copy(out, s.orders)
	return out
}

// UserOrders returns the user's orders sorted by creation time, newest
// first.
func (s *Store) UserOrders(userID string) []model.Order {
	s.mu.RLock()
	out := make([]model.Order, 0)
	for _, o := range s.orders {
		if o.UserID == userID {
			out = append(out, o)
		}
	}
	s.mu.RUnlock()

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out
}

// UpdateStatus overwrites the order's status and refreshes updatedAt. Any
// status may follow any other: terminality of delivered/cancelled is a
// presentation concern, deliberately not enforced here. An absent id is a
// silent no-op.
func (s *Store) UpdateStatus(ctx context.Context, id string, status model.OrderStatus) {
	s.mu.Lock()
	changed := false
	for i := range s.orders {
		if s.orders[i].ID == id {
			s.orders[i].Status = status
			s.orders[i].UpdatedAt = time.Now()
			changed = true
			break
		}
	}
	s.mu.Unlock()

	if changed {
		s.logger.Info().Str("order_id", id).Str("status", string(status)).Msg("order status updated")
		s.persist(ctx)
	}
}

// persist writes the full order snapshot. Failures are logged only.
func (s *Store) persist(ctx context.Context) {
	s.mu.RLock()
	data, err := json.Marshal(s.orders)
	s.mu.RUnlock()
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to encode order snapshot")
		return
	}
	if err := s.state.Set(ctx, stateKey, data); err != nil {
		s.logger.Error().Err(err).Msg("failed to persist order snapshot")
	}
}

// randBase36 returns n random uppercase base-36 characters.
func randBase36(n int) string {
	b := make([]byte, n)
	// rand.Read never fails on supported platforms.
	_, _ = rand.Read(b)
	for i := range b {
		b[i] = base36[int(b[i])%len(base36)]
	}
	return string(b)
}
