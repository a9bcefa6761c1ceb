package service

import (
	"context"

	"github.com/Alhamd-Khan/E-Commerce-Platform/internal/model"
)

// AuthService defines operations for account management.
type AuthService interface {
	// Register creates a new account and returns a signed token for it.
	// Returns model.ErrEmailTaken when the email is already registered.
	Register(ctx context.Context, req *model.RegisterRequest) (*model.LoginResponse, error)

	// Login verifies credentials and returns a signed token.
	// Returns model.ErrInvalidCredentials on any mismatch.
	Login(ctx context.Context, req *model.LoginRequest) (*model.LoginResponse, error)

	// GetUser retrieves a single account by ID.
	GetUser(ctx context.Context, id string) (*model.User, error)

	// GetAllUsers retrieves every registered account.
	GetAllUsers(ctx context.Context) ([]model.User, error)
}

// WishlistService defines operations for a user's wishlist.
type WishlistService interface {
	// Get returns the user's wishlist.
	Get(ctx context.Context, userID string) ([]string, error)

	// Add puts a product on the wishlist. Adding a product already on
	// the list is a no-op.
	Add(ctx context.Context, userID, productID string) ([]string, error)

	// Remove takes a product off the wishlist. Removing an absent
	// product is a no-op.
	Remove(ctx context.Context, userID, productID string) ([]string, error)
}

// CheckoutService defines the order placement flow.
type CheckoutService interface {
	// PlaceOrder validates the request, recomputes the total and tax
	// from current catalogue prices, records the order and clears the
	// user's cart.
	PlaceOrder(ctx context.Context, userID string, req *model.CheckoutRequest) (*model.Order, error)
}
