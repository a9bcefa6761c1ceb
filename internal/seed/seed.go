// Package seed provisions the demo accounts used by the storefront.
package seed

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/Alhamd-Khan/E-Commerce-Platform/internal/model"
	"github.com/Alhamd-Khan/E-Commerce-Platform/internal/repository"
)

type demoAccount struct {
	name     string
	email    string
	password string
	isAdmin  bool
}

var demoAccounts = []demoAccount{
	{name: "Admin", email: "admin@shop.com", password: "admin123", isAdmin: true},
	{name: "Demo User", email: "user@shop.com", password: "user123"},
}

// DemoUsers creates the demo accounts if they are not registered yet.
func DemoUsers(ctx context.Context, users repository.UserRepository, logger zerolog.Logger) error {
	for _, acc := range demoAccounts {
		existing, err := users.GetByEmail(ctx, acc.email)
		if err != nil {
			return fmt.Errorf("failed to look up demo account %s: %w", acc.email, err)
		}
		if existing != nil {
			continue
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(acc.password), bcrypt.DefaultCost)
		if err != nil {
			return fmt.Errorf("failed to hash demo password: %w", err)
		}

		user := &model.User{
			ID:           uuid.NewString(),
			Name:         acc.name,
			Email:        acc.email,
			PasswordHash: string(hash),
			IsAdmin:      acc.isAdmin,
			Wishlist:     []string{},
			JoinedDate:   time.Now(),
		}

		if err := users.Create(ctx, user); err != nil {
			return fmt.Errorf("failed to create demo account %s: %w", acc.email, err)
		}

		logger.Info().Str("email", acc.email).Bool("is_admin", acc.isAdmin).Msg("demo account created")
	}

	return nil
}
