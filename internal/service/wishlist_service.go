package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/Alhamd-Khan/E-Commerce-Platform/internal/model"
	"github.com/Alhamd-Khan/E-Commerce-Platform/internal/repository"
)

// wishlistService implements WishlistService.
type wishlistService struct {
	userRepo repository.UserRepository
	logger   zerolog.Logger
}

// NewWishlistService creates a new wishlist service.
func NewWishlistService(userRepo repository.UserRepository, logger zerolog.Logger) WishlistService {
	return &wishlistService{
		userRepo: userRepo,
		logger:   logger.With().Str("service", "wishlist").Logger(),
	}
}

// Get returns the user's wishlist.
func (s *wishlistService) Get(ctx context.Context, userID string) ([]string, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, model.ErrUserNotFound
	}
	return user.Wishlist, nil
}

// Add puts a product on the wishlist.
func (s *wishlistService) Add(ctx context.Context, userID, productID string) ([]string, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, model.ErrUserNotFound
	}

	for _, id := range user.Wishlist {
		if id == productID {
			return user.Wishlist, nil
		}
	}

	wishlist := append(user.Wishlist, productID)
	if err := s.userRepo.UpdateWishlist(ctx, userID, wishlist); err != nil {
		return nil, err
	}

	s.logger.Debug().Str("user_id", userID).Str("product_id", productID).Msg("product added to wishlist")
	return wishlist, nil
}

// Remove takes a product off the wishlist.
func (s *wishlistService) Remove(ctx context.Context, userID, productID string) ([]string, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, model.ErrUserNotFound
	}

	wishlist := make([]string, 0, len(user.Wishlist))
	for _, id := range user.Wishlist {
		if id != productID {
			wishlist = append(wishlist, id)
		}
	}

	if len(wishlist) == len(user.Wishlist) {
		return user.Wishlist, nil
	}

	if err := s.userRepo.UpdateWishlist(ctx, userID, wishlist); err != nil {
		return nil, err
	}

	s.logger.Debug().Str("user_id", userID).Str("product_id", productID).Msg("product removed from wishlist")
	return wishlist, nil
}
