// Package catalog holds the product catalogue: an in-process store with
// point lookup, partial update, review aggregation and a pure filter/sort
// engine over its contents.
package catalog

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

const stateKey = "products"

// Store is the product catalogue. All mutations replace the visible state as
// one unit under the lock and persist a full snapshot afterwards; persistence
// failures are logged, never surfaced.
type Store struct {
	mu       sync.RWMutex
	products []model.Product
	state    kv.Store
	logger   zerolog.Logger
}

// NewStore creates a catalogue store. The persisted snapshot wins over the
// seed; the seed is used (and persisted) only when no snapshot exists yet.
func NewStore(ctx context.Context, state kv.Store, seed []model.Product, logger zerolog.Logger) *Store {
	s := &Store{
		state:  state,
		logger: logger.With().Str("store", "catalog").Logger(),
	}

	data, err := state.Get(ctx, stateKey)
	switch {
	case err == nil:
		var products []model.Product
		if jsonErr := json.Unmarshal(data, &products); jsonErr != nil {
			s.logger.Error().Err(jsonErr).Msg("corrupt catalogue snapshot, falling back to seed data")
			s.products = normalise(seed)
		} else {
			s.products = normalise(products)
		}
	case errors.Is(err, kv.ErrNotFound):
		s.products = normalise(seed)
		s.persist(ctx)
	default:
		s.logger.Error().Err(err).Msg("failed to load catalogue snapshot, falling back to seed data")
		s.products = normalise(seed)
	}

	s.logger.Info().Int("count", len(s.products)).Msg("catalogue loaded")
	return s
}

// All returns a copy of the full catalogue, newest first.
func (s *Store) All() []model.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]model.Product, len(s.products))
	copy(out, s.products)
	return out
}

// GetByID returns the product with the given id, if present.
func (s *Store) GetByID(id string) (model.Product, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, p := range s.products {
		if p.ID == id {
			return p, true
		}
	}
	return model.Product{}, false
}

// Add inserts a product at the head of the catalogue. The store performs no
// uniqueness check on the id; callers are expected to supply a fresh one.
func (s *Store) Add(ctx context.Context, p model.Product) {
	p.InStock = p.Stock > 0

	s.mu.Lock()
	s.products = append([]model.Product{p}, s.products...)
	s.mu.Unlock()

	s.logger.Info().Str("product_id", p.ID).Str("name", p.Name).Msg("product added")
	s.persist(ctx)
}

// Update merges the non-nil fields of upd into the matching product. An
// absent id is a silent no-op.
func (s *Store) Update(ctx context.Context, id string, upd model.ProductUpdate) {
	s.mu.Lock()
	changed := false
	for i := range s.products {
		if s.products[i].ID != id {
			continue
		}
		applyUpdate(&s.products[i], upd)
		changed = true
		break
	}
	s.mu.Unlock()

	if changed {
		s.logger.Info().Str("product_id", id).Msg("product updated")
		s.persist(ctx)
	}
}

// Delete removes the matching product. An absent id is a silent no-op.
// References from carts, orders or wishlists are intentionally not checked.
func (s *Store) Delete(ctx context.Context, id string) {
	s.mu.Lock()
	changed := false
	for i, p := range s.products {
		if p.ID == id {
			s.products = append(s.products[:i:i], s.products[i+1:]...)
			changed = true
			break
		}
	}
	s.mu.Unlock()

	if changed {
		s.logger.Info().Str("product_id", id).Msg("product deleted")
		s.persist(ctx)
	}
}

// AddReview appends a review to the product and recomputes the aggregate
// rating (mean of all review ratings, rounded to one decimal) and the review
// count. An absent product id is a silent no-op.
func (s *Store) AddReview(ctx context.Context, productID string, review model.Review) {
	s.mu.Lock()
	changed := false
	for i := range s.products {
		if s.products[i].ID != productID {
			continue
		}
		p := &s.products[i]
		p.Reviews = append(p.Reviews, review)
		p.ReviewCount = len(p.Reviews)

		sum := 0
		for _, r := range p.Reviews {
			sum += r.Rating
		}
		p.Rating = math.Round(float64(sum)/float64(p.ReviewCount)*10) / 10
		changed = true
		break
	}
	s.mu.Unlock()

	if changed {
		s.logger.Info().
			Str("product_id", productID).
			Int("rating", review.Rating).
			Msg("review added")
		s.persist(ctx)
	}
}

// persist writes the full catalogue snapshot. Failures are logged only: the
// in-memory state stays authoritative for the session.
func (s *Store) persist(ctx context.Context) {
	s.mu.RLock()
	data, err := json.Marshal(s.products)
	s.mu.RUnlock()
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to encode catalogue snapshot")
		return
	}
	if err := s.state.Set(ctx, stateKey, data); err != nil {
		s.logger.Error().Err(err).Msg("failed to persist catalogue snapshot")
	}
}

// applyUpdate merges the set fields of upd into p. Stock changes refresh the
// redundant inStock flag.
func applyUpdate(p *model.Product, upd model.ProductUpdate) {
	if upd.Name != nil {
		p.Name = *upd.Name
	}
	if upd.Description != nil {
		p.Description = *upd.Description
	}
	if upd.Brand != nil {
		p.Brand = *upd.Brand
	}
	if upd.Category != nil {
		p.Category = *upd.Category
	}
	if upd.Price != nil {
		p.Price = *upd.Price
	}
	if upd.OriginalPrice != nil {
		p.OriginalPrice = *upd.OriginalPrice
	}
	if upd.Discount != nil {
		p.Discount = *upd.Discount
	}
	if upd.Stock != nil {
		p.Stock = *upd.Stock
		p.InStock = p.Stock > 0
	}
	if upd.Images != nil {
		p.Images = *upd.Images
	}
	if upd.Tags != nil {
		p.Tags = *upd.Tags
	}
	if upd.Featured != nil {
		p.Featured = *upd.Featured
	}
}

// normalise refreshes the derived inStock flag on every product so snapshots
// written by older clients cannot reintroduce drift.
func normalise(products []model.Product) []model.Product {
	out := make([]model.Product, len(products))
	copy(out, products)
	for i := range out {
		out[i].InStock = out[i].Stock > 0
	}
	return out
}
