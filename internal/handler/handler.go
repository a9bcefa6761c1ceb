package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"github.com/Alhamd-Khan/E-Commerce-Platform/internal/auth"
	"github.com/Alhamd-Khan/E-Commerce-Platform/internal/middleware"
	"github.com/Alhamd-Khan/E-Commerce-Platform/internal/model"
)

var validate = validator.New()

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		// Headers are already sent, nothing left to do
		return
	}
}

// writeError writes an error response with the given status code and message.
func writeError(w http.ResponseWriter, status int, code, message string, logger zerolog.Logger) {
	logger.Warn().Str("code", code).Str("error", message).Int("status", status).Msg("handler error")
	writeJSON(w, status, model.ErrorResponse{Error: code, Message: message})
}

// writeServiceError maps a service error onto an HTTP response. Domain
// errors carry their own code; anything else is an internal error.
func writeServiceError(w http.ResponseWriter, err error, logger zerolog.Logger) {
	var domainErr *model.DomainError
	if errors.As(err, &domainErr) {
		writeError(w, statusForCode(domainErr.Code), domainErr.Code, domainErr.Message, logger)
		return
	}

	logger.Error().Err(err).Msg("unexpected service error")
	writeError(w, http.StatusInternalServerError, model.ErrCodeInternalError, "internal server error", logger)
}

// statusForCode maps a domain error code to an HTTP status.
func statusForCode(code string) int {
	switch code {
	case model.ErrCodeUnauthorised, model.ErrCodeInvalidLogin:
		return http.StatusUnauthorized
	case model.ErrCodeForbidden:
		return http.StatusForbidden
	case model.ErrCodeEmailTaken:
		return http.StatusConflict
	case model.ErrCodeProductNotFound, model.ErrCodeOrderNotFound, model.ErrCodeUserNotFound:
		return http.StatusNotFound
	case model.ErrCodeInvalidJSON, model.ErrCodeMissingField, model.ErrCodeEmptyCart,
		model.ErrCodeInvalidQuantity, model.ErrCodeInvalidStatus:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// decodeAndValidate decodes a JSON request body into dst and runs struct
// validation on it. Writes the error response itself and reports success.
func decodeAndValidate(w http.ResponseWriter, r *http.Request, dst interface{}, logger zerolog.Logger) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		writeError(w, http.StatusBadRequest, model.ErrCodeInvalidJSON, "invalid request body", logger)
		return false
	}
	if err := validate.Struct(dst); err != nil {
		writeError(w, http.StatusBadRequest, model.ErrCodeMissingField, err.Error(), logger)
		return false
	}
	return true
}

// requireAuth returns the request's claims, writing a 401 when there are none.
func requireAuth(w http.ResponseWriter, r *http.Request, logger zerolog.Logger) (*auth.Claims, bool) {
	claims, ok := middleware.ClaimsFrom(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, model.ErrCodeUnauthorised, "authentication required", logger)
		return nil, false
	}
	return claims, true
}

// requireAdmin returns the request's claims, writing a 401 or 403 when the
// caller is not an authenticated admin.
func requireAdmin(w http.ResponseWriter, r *http.Request, logger zerolog.Logger) (*auth.Claims, bool) {
	claims, ok := requireAuth(w, r, logger)
	if !ok {
		return nil, false
	}
	if !claims.IsAdmin {
		writeError(w, http.StatusForbidden, model.ErrCodeForbidden, "admin access required", logger)
		return nil, false
	}
	return claims, true
}
