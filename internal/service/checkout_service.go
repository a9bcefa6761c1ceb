package service

import (
	"context"
	"fmt"
	"math"

	"github.com/rs/zerolog"

	"github.com/Alhamd-Khan/E-Commerce-Platform/internal/cart"
	"github.com/Alhamd-Khan/E-Commerce-Platform/internal/model"
	"github.com/Alhamd-Khan/E-Commerce-Platform/internal/order"
	"github.com/Alhamd-Khan/E-Commerce-Platform/internal/pricing"
	"github.com/Alhamd-Khan/E-Commerce-Platform/internal/repository"
)

// checkoutService implements CheckoutService.
type checkoutService struct {
	orders  *order.Store
	pricer  pricing.Pricer
	calc    *pricing.Calculator
	carts   *cart.Manager
	archive repository.OrderArchiveRepository
	logger  zerolog.Logger
}

// NewCheckoutService creates a new checkout service. The archive may be nil,
// in which case orders are only kept in the order store.
func NewCheckoutService(
	orders *order.Store,
	pricer pricing.Pricer,
	calc *pricing.Calculator,
	carts *cart.Manager,
	archive repository.OrderArchiveRepository,
	logger zerolog.Logger,
) CheckoutService {
	return &checkoutService{
		orders:  orders,
		pricer:  pricer,
		calc:    calc,
		carts:   carts,
		archive: archive,
		logger:  logger.With().Str("service", "checkout").Logger(),
	}
}

// PlaceOrder validates the request, recomputes the total and tax from current
// catalogue prices, records the order and clears the user's cart.
func (s *checkoutService) PlaceOrder(ctx context.Context, userID string, req *model.CheckoutRequest) (*model.Order, error) {
	if userID == "" {
		return nil, model.ErrUnauthorized
	}

	if req == nil || len(req.Items) == 0 {
		return nil, model.ErrEmptyCart
	}

	for _, item := range req.Items {
		if item.Quantity <= 0 {
			s.logger.Warn().
				Str("product_id", item.ProductID).
				Int("quantity", item.Quantity).
				Msg("invalid quantity in checkout request")
			return nil, model.ErrInvalidQuantity
		}
	}

	// Totals are always recomputed server-side. Client-supplied figures are
	// only checked for drift.
	// The order's total is the pre-tax merchandise amount; tax is carried
	// alongside it.
	quote := s.calc.Quote(req.Items, s.pricer)
	total := quote.Subtotal.InexactFloat64()
	tax := quote.Tax.InexactFloat64()

	if req.Total != 0 && math.Abs(req.Total-total) > 0.01 {
		s.logger.Warn().
			Str("user_id", userID).
			Float64("client_total", req.Total).
			Float64("server_total", total).
			Msg("client total differs from recomputed total")
	}

	id, err := s.orders.AddWithAddress(ctx, userID, req.Items, total, tax, req.ShippingAddress, req.PaymentMethod)
	if err != nil {
		return nil, err
	}

	placed, ok := s.orders.GetByID(id)
	if !ok {
		return nil, fmt.Errorf("order %s vanished after creation", id)
	}

	// The archive is a durable secondary record. Failure to write it is
	// logged but does not fail the checkout.
	if s.archive != nil {
		if err := s.archiveOrder(ctx, &placed); err != nil {
			s.logger.Error().Err(err).Str("order_id", id).Msg("failed to archive order")
		}
	}

	s.carts.For(ctx, userID).Clear(ctx)

	s.logger.Info().
		Str("order_id", id).
		Str("user_id", userID).
		Float64("total", total).
		Int("item_count", len(req.Items)).
		Msg("order placed")

	return &placed, nil
}

// archiveOrder writes the order and its items to PostgreSQL in one transaction.
func (s *checkoutService) archiveOrder(ctx context.Context, o *model.Order) error {
	tx, err := s.archive.BeginTx(ctx)
	if err != nil {
		return err
	}

	defer func() {
		if err != nil {
			if rbErr := tx.Rollback(ctx); rbErr != nil {
				s.logger.Error().Err(rbErr).Msg("failed to rollback archive transaction")
			}
		}
	}()

	if err = s.archive.Archive(ctx, tx, o); err != nil {
		return err
	}

	if err = s.archive.ArchiveItems(ctx, tx, o.ID, o.Items); err != nil {
		return err
	}

	if err = tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit archive transaction: %w", err)
	}

	return nil
}
