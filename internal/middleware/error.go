package middleware

import (
	"encoding/json"
	"errors"
	"net/http"

	"golden-thread/internal/apperror"

	"go.uber.org/zap"
)

// ErrorResponse is the body of every failed request
type ErrorResponse struct {
	Error   string                 `json:"error"`
	Details map[string]interface{} `json:"details,omitempty"`
}

// RespondWithError sends an error response
func RespondWithError(w http.ResponseWriter, statusCode int, message string) {
	RespondWithErrorDetails(w, statusCode, message, nil)
}

// RespondWithErrorDetails sends an error response with additional details
func RespondWithErrorDetails(w http.ResponseWriter, statusCode int, message string, details map[string]interface{}) {
	RespondWithJSON(w, statusCode, ErrorResponse{
		Error:   message,
		Details: details,
	})
}

// RespondWithValidationErrors sends a 400 listing the failing fields
func RespondWithValidationErrors(w http.ResponseWriter, message string, fieldErrors []ValidationError) {
	appErr := apperror.ValidationWithDetails(message, map[string]interface{}{
		"validation_errors": fieldErrors,
	})
	RespondWithErrorDetails(w, appErr.Kind.StatusCode(), appErr.Message, appErr.Details)
}

// RespondWithAppError maps err to its status code. Server-side failures are
// logged and their cause is not exposed.
func RespondWithAppError(w http.ResponseWriter, r *http.Request, logger *zap.Logger, err error) {
	kind := apperror.KindOf(err)
	status := kind.StatusCode()
	if status >= http.StatusInternalServerError {
		logger.Error("Request failed",
			zap.Error(err),
			zap.Stringer("kind", kind),
			zap.String("path", r.URL.Path),
			zap.String("method", r.Method),
		)
		RespondWithError(w, status, "internal server error")
		return
	}

	var appErr *apperror.Error
	message := http.StatusText(status)
	var details map[string]interface{}
	if errors.As(err, &appErr) {
		message = appErr.Message
		details = appErr.Details
	}

	logger.Debug("Request rejected",
		zap.Int("status", status),
		zap.Stringer("kind", kind),
		zap.String("reason", message),
		zap.String("path", r.URL.Path),
	)
	RespondWithErrorDetails(w, status, message, details)
}

// ErrorHandlingMiddleware catches panics and converts them to 500 errors
func ErrorHandlingMiddleware(logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if err := recover(); err != nil {
					if err == http.ErrAbortHandler {
						panic(err)
					}
					logger.Error("Panic recovered",
						zap.Any("error", err),
						zap.String("path", r.URL.Path),
						zap.String("method", r.Method),
					)

					RespondWithError(w, http.StatusInternalServerError, "internal server error")
				}
			}()

			next.ServeHTTP(w, r)
		})
	}
}

// RespondWithJSON sends a JSON response
func RespondWithJSON(w http.ResponseWriter, statusCode int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.Encode(payload)
}
