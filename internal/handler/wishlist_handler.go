package handler

import (
	"net/http"

	"github.com/rs/zerolog"

	"github.com/Alhamd-Khan/E-Commerce-Platform/internal/service"
)

// wishlistResponse wraps a wishlist payload.
type wishlistResponse struct {
	Wishlist []string `json:"wishlist"`
}

// WishlistHandler handles wishlist-related HTTP requests.
type WishlistHandler struct {
	service service.WishlistService
	logger  zerolog.Logger
}

// NewWishlistHandler creates a new wishlist handler.
func NewWishlistHandler(service service.WishlistService, logger zerolog.Logger) *WishlistHandler {
	return &WishlistHandler{
		service: service,
		logger:  logger.With().Str("handler", "wishlist").Logger(),
	}
}

// Get handles GET /api/wishlist requests.
func (h *WishlistHandler) Get(w http.ResponseWriter, r *http.Request) {
	claims, ok := requireAuth(w, r, h.logger)
	if !ok {
		return
	}

	wishlist, err := h.service.Get(r.Context(), claims.UserID)
	if err != nil {
		writeServiceError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, wishlistResponse{Wishlist: wishlist})
}

// Add handles POST /api/wishlist/{productId} requests.
func (h *WishlistHandler) Add(w http.ResponseWriter, r *http.Request) {
	claims, ok := requireAuth(w, r, h.logger)
	if !ok {
		return
	}

	wishlist, err := h.service.Add(r.Context(), claims.UserID, r.PathValue("productId"))
	if err != nil {
		writeServiceError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, wishlistResponse{Wishlist: wishlist})
}

// Remove handles DELETE /api/wishlist/{productId} requests.
func (h *WishlistHandler) Remove(w http.ResponseWriter, r *http.Request) {
	claims, ok := requireAuth(w, r, h.logger)
	if !ok {
		return
	}

	wishlist, err := h.service.Remove(r.Context(), claims.UserID, r.PathValue("productId"))
	if err != nil {
		writeServiceError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, wishlistResponse{Wishlist: wishlist})
}
