package repository

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/Alhamd-Khan/E-Commerce-Platform/internal/model"
)

// UserRepository defines the interface for user data access operations.
type UserRepository interface {
	// Create inserts a new user. Returns model.ErrEmailTaken when the
	// email is already registered.
	Create(ctx context.Context, user *model.User) error

	// GetByEmail retrieves a user by email. Returns nil when no user
	// with that email exists.
	GetByEmail(ctx context.Context, email string) (*model.User, error)

	// GetByID retrieves a user by ID. Returns nil when no user with
	// that ID exists.
	GetByID(ctx context.Context, id string) (*model.User, error)

	// GetAll retrieves every registered user.
	GetAll(ctx context.Context) ([]model.User, error)

	// UpdateWishlist replaces a user's wishlist.
	UpdateWishlist(ctx context.Context, userID string, wishlist []string) error
}

// OrderArchiveRepository defines the interface for the durable order
// archive kept in PostgreSQL.
type OrderArchiveRepository interface {
	// BeginTx starts a new database transaction.
	BeginTx(ctx context.Context) (pgx.Tx, error)

	// Archive inserts the order record within the provided transaction.
	Archive(ctx context.Context, tx pgx.Tx, order *model.Order) error

	// ArchiveItems inserts the order's line items within the provided transaction.
	ArchiveItems(ctx context.Context, tx pgx.Tx, orderID string, items []model.CartItem) error
}
