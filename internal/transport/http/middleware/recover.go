package middleware

import (
	"log/slog"
	"net/http"

	"hrportal/internal/shared/apperror"
	"hrportal/internal/transport/http/api"
)

// Recoverer converts handler panics into 500 responses.
func Recoverer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				slog.Error("handler panic", "panic", rec, "path", r.URL.Path, "method", r.Method)
				api.Fail(w, http.StatusInternalServerError, apperror.CodeInternal, "internal server error", GetRequestID(r.Context()))
			}
		}()
		next.ServeHTTP(w, r)
	})
}
