package middleware

import (
	"context"
	"net/http"
	"strings"

	"hrportal/internal/domain/authz"
)

type ctxKey string

const ctxKeySession ctxKey = "session"

// Auth restores the caller's session from a bearer token. Requests without a
// valid token pass through unauthenticated; route guards decide what that
// means.
func Auth(secret string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				next.ServeHTTP(w, r)
				return
			}
			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
				next.ServeHTTP(w, r)
				return
			}

			session, err := authz.ParseToken(secret, parts[1])
			if err != nil {
				next.ServeHTTP(w, r)
				return
			}

			ctx := context.WithValue(r.Context(), ctxKeySession, session)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func GetSession(ctx context.Context) (authz.Session, bool) {
	session, ok := ctx.Value(ctxKeySession).(authz.Session)
	return session, ok
}

// WithSession injects a session directly, for handler tests.
func WithSession(ctx context.Context, session authz.Session) context.Context {
	return context.WithValue(ctx, ctxKeySession, session)
}
