package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	"github.com/Alhamd-Khan/E-Commerce-Platform/internal/model"
)

// orderArchiveRepository implements the OrderArchiveRepository interface
// using PostgreSQL.
type orderArchiveRepository struct {
	pool   *pgxpool.Pool
	logger zerolog.Logger
}

// NewOrderArchiveRepository creates a new PostgreSQL-backed order archive.
func NewOrderArchiveRepository(pool *pgxpool.Pool, logger zerolog.Logger) OrderArchiveRepository {
	return &orderArchiveRepository{
		pool:   pool,
		logger: logger.With().Str("repository", "order_archive").Logger(),
	}
}

// BeginTx starts a new database transaction.
func (r *orderArchiveRepository) BeginTx(ctx context.Context) (pgx.Tx, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to begin transaction")
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	return tx, nil
}

// Archive inserts the order record within the provided transaction.
func (r *orderArchiveRepository) Archive(ctx context.Context, tx pgx.Tx, order *model.Order) error {
	query := `
		INSERT INTO orders (
			id, user_id, status, total, tax, payment_method, tracking_number,
			shipping_full_name, shipping_street, shipping_city, shipping_state,
			shipping_zip_code, shipping_country, shipping_phone,
			created_at, updated_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)
	`

	addr := order.ShippingAddress
	_, err := tx.Exec(ctx, query,
		order.ID,
		order.UserID,
		string(order.Status),
		order.Total,
		order.Tax,
		order.PaymentMethod,
		order.TrackingNumber,
		addr.FullName,
		addr.Street,
		addr.City,
		addr.State,
		addr.ZipCode,
		addr.Country,
		addr.Phone,
		order.CreatedAt,
		order.UpdatedAt,
	)
	if err != nil {
		r.logger.Error().
			Err(err).
			Str("order_id", order.ID).
			Msg("failed to archive order")
		return fmt.Errorf("failed to archive order: %w", err)
	}

	r.logger.Debug().
		Str("order_id", order.ID).
		Msg("order archived successfully")

	return nil
}

// ArchiveItems inserts the order's line items within the provided transaction.
func (r *orderArchiveRepository) ArchiveItems(ctx context.Context, tx pgx.Tx, orderID string, items []model.CartItem) error {
	if len(items) == 0 {
		return nil
	}

	query := `
		INSERT INTO order_items (order_id, product_id, quantity)
		VALUES ($1, $2, $3)
	`

	batch := &pgx.Batch{}
	for _, item := range items {
		batch.Queue(query, orderID, item.ProductID, item.Quantity)
	}

	results := tx.SendBatch(ctx, batch)
	defer results.Close()

	for i := 0; i < len(items); i++ {
		_, err := results.Exec()
		if err != nil {
			r.logger.Error().
				Err(err).
				Str("order_id", orderID).
				Str("product_id", items[i].ProductID).
				Msg("failed to archive order item")
			return fmt.Errorf("failed to archive order item: %w", err)
		}
	}

	r.logger.Debug().
		Int("count", len(items)).
		Msg("order items archived successfully")

	return nil
}
