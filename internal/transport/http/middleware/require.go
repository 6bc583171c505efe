package middleware

import (
	"net/http"

	"hrportal/internal/domain/authz"
	"hrportal/internal/shared/apperror"
	"hrportal/internal/transport/http/api"
)

// RequireSession rejects unauthenticated requests.
func RequireSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := GetSession(r.Context()); !ok {
			api.Fail(w, http.StatusUnauthorized, apperror.CodeUnauthorized, "authentication required", GetRequestID(r.Context()))
			return
		}
		next.ServeHTTP(w, r)
	})
}

// RequireOperation consults the central authorization policy for the route.
// Services re-check on entry; this guard keeps unauthorized callers from
// reaching them at all.
func RequireOperation(op authz.Operation) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			session, ok := GetSession(r.Context())
			if !ok {
				api.Fail(w, http.StatusUnauthorized, apperror.CodeUnauthorized, "authentication required", GetRequestID(r.Context()))
				return
			}
			if !authz.Authorize(op, session.Role) {
				api.Fail(w, http.StatusForbidden, apperror.CodeForbidden, "insufficient role", GetRequestID(r.Context()))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
