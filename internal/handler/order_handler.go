package handler

import (
	"net/http"

	"github.com/rs/zerolog"

	"github.com/Alhamd-Khan/E-Commerce-Platform/internal/model"
	"github.com/Alhamd-Khan/E-Commerce-Platform/internal/order"
	"github.com/Alhamd-Khan/E-Commerce-Platform/internal/service"
)

// OrderHandler handles order-related HTTP requests.
type OrderHandler struct {
	checkout service.CheckoutService
	orders   *order.Store
	logger   zerolog.Logger
}

// NewOrderHandler creates a new order handler.
func NewOrderHandler(checkout service.CheckoutService, orders *order.Store, logger zerolog.Logger) *OrderHandler {
	return &OrderHandler{
		checkout: checkout,
		orders:   orders,
		logger:   logger.With().Str("handler", "order").Logger(),
	}
}

// Create handles POST /api/orders requests.
func (h *OrderHandler) Create(w http.ResponseWriter, r *http.Request) {
	claims, ok := requireAuth(w, r, h.logger)
	if !ok {
		return
	}

	var req model.CheckoutRequest
	if !decodeAndValidate(w, r, &req, h.logger) {
		return
	}

	placed, err := h.checkout.PlaceOrder(r.Context(), claims.UserID, &req)
	if err != nil {
		writeServiceError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusCreated, placed)
}

// GetAll handles GET /api/orders requests. Admin only.
func (h *OrderHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	if _, ok := requireAdmin(w, r, h.logger); !ok {
		return
	}

	writeJSON(w, http.StatusOK, h.orders.All())
}

// GetByID handles GET /api/orders/{id} requests. Owner or admin.
func (h *OrderHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	claims, ok := requireAuth(w, r, h.logger)
	if !ok {
		return
	}

	placed, found := h.orders.GetByID(r.PathValue("id"))
	if !found {
		writeServiceError(w, model.ErrOrderNotFound, h.logger)
		return
	}

	if placed.UserID != claims.UserID && !claims.IsAdmin {
		writeServiceError(w, model.ErrForbidden, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, placed)
}

// GetUserOrders handles GET /api/orders/user/{userId} requests. A user can
// list their own orders; admins can list anyone's.
func (h *OrderHandler) GetUserOrders(w http.ResponseWriter, r *http.Request) {
	claims, ok := requireAuth(w, r, h.logger)
	if !ok {
		return
	}

	userID := r.PathValue("userId")
	if userID != claims.UserID && !claims.IsAdmin {
		writeServiceError(w, model.ErrForbidden, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, h.orders.UserOrders(userID))
}

// UpdateStatus handles PATCH /api/orders/{id}/status requests. Admin only.
// Any known status can be set regardless of the current one.
func (h *OrderHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	if _, ok := requireAdmin(w, r, h.logger); !ok {
		return
	}

	id := r.PathValue("id")
	if _, found := h.orders.GetByID(id); !found {
		writeServiceError(w, model.ErrOrderNotFound, h.logger)
		return
	}

	var req model.OrderStatusRequest
	if !decodeAndValidate(w, r, &req, h.logger) {
		return
	}

	if !req.Status.Valid() {
		writeServiceError(w, model.ErrInvalidStatus, h.logger)
		return
	}

	h.orders.UpdateStatus(r.Context(), id, req.Status)

	updated, _ := h.orders.GetByID(id)
	writeJSON(w, http.StatusOK, updated)
}
