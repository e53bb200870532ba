package transport

import (
	"net/http"
	"strconv"

	"golden-thread/internal/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// Middleware is a chi-compatible HTTP middleware
type Middleware = func(http.Handler) http.Handler

const msgMissingFields = "Missing fields"

// decodeRequest decodes and validates the body into v. On failure it writes
// the error response and returns false.
func decodeRequest(w http.ResponseWriter, r *http.Request, logger *zap.Logger, v interface{}) bool {
	if err := middleware.DecodeAndValidate(r, v); err != nil {
		logger.Debug("Request validation failed", zap.String("path", r.URL.Path), zap.Error(err))

		if validationErrors := middleware.FormatValidationErrors(err); len(validationErrors) > 0 {
			middleware.RespondWithValidationErrors(w, msgMissingFields, validationErrors)
			return false
		}

		middleware.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return false
	}
	return true
}

// int64Param parses a numeric URL parameter
func int64Param(r *http.Request, name string) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, name), 10, 64)
	return id, err == nil
}
