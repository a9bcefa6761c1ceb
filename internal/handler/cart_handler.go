package handler

import (
	"net/http"

	"github.com/rs/zerolog"

	"github.com/Alhamd-Khan/E-Commerce-Platform/internal/cart"
	"github.com/Alhamd-Khan/E-Commerce-Platform/internal/model"
)

// CartHandler handles cart-related HTTP requests. Every route requires an
// authenticated user; each user gets their own cart.
type CartHandler struct {
	carts  *cart.Manager
	logger zerolog.Logger
}

// NewCartHandler creates a new cart handler.
func NewCartHandler(carts *cart.Manager, logger zerolog.Logger) *CartHandler {
	return &CartHandler{
		carts:  carts,
		logger: logger.With().Str("handler", "cart").Logger(),
	}
}

// Get handles GET /api/cart requests.
func (h *CartHandler) Get(w http.ResponseWriter, r *http.Request) {
	claims, ok := requireAuth(w, r, h.logger)
	if !ok {
		return
	}

	snapshot := h.carts.For(r.Context(), claims.UserID).Snapshot()
	writeJSON(w, http.StatusOK, snapshot)
}

// AddItem handles POST /api/cart/items requests.
func (h *CartHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	claims, ok := requireAuth(w, r, h.logger)
	if !ok {
		return
	}

	var req model.CartAddRequest
	if !decodeAndValidate(w, r, &req, h.logger) {
		return
	}

	userCart := h.carts.For(r.Context(), claims.UserID)
	userCart.Add(r.Context(), req.ProductID, req.Quantity)

	writeJSON(w, http.StatusOK, userCart.Snapshot())
}

// UpdateItem handles PUT /api/cart/items/{productId} requests. A quantity of
// zero or less removes the line.
func (h *CartHandler) UpdateItem(w http.ResponseWriter, r *http.Request) {
	claims, ok := requireAuth(w, r, h.logger)
	if !ok {
		return
	}

	var req model.CartQuantityRequest
	if !decodeAndValidate(w, r, &req, h.logger) {
		return
	}

	userCart := h.carts.For(r.Context(), claims.UserID)
	userCart.UpdateQuantity(r.Context(), r.PathValue("productId"), req.Quantity)

	writeJSON(w, http.StatusOK, userCart.Snapshot())
}

// RemoveItem handles DELETE /api/cart/items/{productId} requests.
func (h *CartHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	claims, ok := requireAuth(w, r, h.logger)
	if !ok {
		return
	}

	userCart := h.carts.For(r.Context(), claims.UserID)
	userCart.Remove(r.Context(), r.PathValue("productId"))

	writeJSON(w, http.StatusOK, userCart.Snapshot())
}

// Clear handles DELETE /api/cart requests.
func (h *CartHandler) Clear(w http.ResponseWriter, r *http.Request) {
	claims, ok := requireAuth(w, r, h.logger)
	if !ok {
		return
	}

	userCart := h.carts.For(r.Context(), claims.UserID)
	userCart.Clear(r.Context())

	writeJSON(w, http.StatusOK, userCart.Snapshot())
}
