package handler

import (
	"net/http"

	"github.com/rs/zerolog"

	"github.com/Alhamd-Khan/E-Commerce-Platform/internal/model"
	"github.com/Alhamd-Khan/E-Commerce-Platform/internal/service"
)

// AuthHandler handles account-related HTTP requests.
type AuthHandler struct {
	service service.AuthService
	logger  zerolog.Logger
}

// NewAuthHandler creates a new auth handler.
func NewAuthHandler(service service.AuthService, logger zerolog.Logger) *AuthHandler {
	return &AuthHandler{
		service: service,
		logger:  logger.With().Str("handler", "auth").Logger(),
	}
}

// Register handles POST /api/auth/register requests.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req model.RegisterRequest
	if !decodeAndValidate(w, r, &req, h.logger) {
		return
	}

	resp, err := h.service.Register(r.Context(), &req)
	if err != nil {
		writeServiceError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusCreated, resp)
}

// Login handles POST /api/auth/login requests.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req model.LoginRequest
	if !decodeAndValidate(w, r, &req, h.logger) {
		return
	}

	resp, err := h.service.Login(r.Context(), &req)
	if err != nil {
		writeServiceError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

// GetAllUsers handles GET /api/auth/all requests. Admin only.
func (h *AuthHandler) GetAllUsers(w http.ResponseWriter, r *http.Request) {
	if _, ok := requireAdmin(w, r, h.logger); !ok {
		return
	}

	users, err := h.service.GetAllUsers(r.Context())
	if err != nil {
		writeServiceError(w, err, h.logger)
		return
	}

	if users == nil {
		users = []model.User{}
	}
	writeJSON(w, http.StatusOK, users)
}
