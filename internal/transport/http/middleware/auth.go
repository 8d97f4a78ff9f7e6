package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/NikGojani/san-rise-sub001/internal/domain/auth"
)

type ctxKey string

const ctxKeyUser ctxKey = "user"

type SessionChecker interface {
	SessionValid(ctx context.Context, sessionID string) (bool, error)
}

// Auth attaches the user context when a valid bearer token with a live
// session arrives. Requests without one pass through unauthenticated and are
// rejected by the handlers.
func Auth(secret string, sessions SessionChecker) func(http.Handler) http.Handler {
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

			claims, err := auth.ParseToken(secret, parts[1])
			if err != nil {
				next.ServeHTTP(w, r)
				return
			}

			if sessions != nil {
				valid, err := sessions.SessionValid(r.Context(), claims.SessionID)
				if err != nil || !valid {
					next.ServeHTTP(w, r)
					return
				}
			}

			ctx := context.WithValue(r.Context(), ctxKeyUser, auth.UserContext{
				UserID:    claims.UserID,
				Email:     claims.Email,
				SessionID: claims.SessionID,
			})
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func GetUser(ctx context.Context) (auth.UserContext, bool) {
	user, ok := ctx.Value(ctxKeyUser).(auth.UserContext)
	return user, ok
}

// WithUser is a test helper for handler tests.
func WithUser(ctx context.Context, user auth.UserContext) context.Context {
	return context.WithValue(ctx, ctxKeyUser, user)
}
