package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/NikGojani/san-rise-sub001/internal/domain/auth"
)

type fakeSessions struct {
	valid map[string]bool
}

func (f *fakeSessions) SessionValid(_ context.Context, sessionID string) (bool, error) {
	return f.valid[sessionID], nil
}

func runAuth(t *testing.T, secret, header string, sessions SessionChecker) (auth.UserContext, bool) {
	t.Helper()

	var user auth.UserContext
	var ok bool
	handler := Auth(secret, sessions)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user, ok = GetUser(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if header != "" {
		req.Header.Set("Authorization", header)
	}
	handler.ServeHTTP(httptest.NewRecorder(), req)
	return user, ok
}

func TestAuthAttachesUser(t *testing.T) {
	secret := "secret"
	token, err := auth.GenerateToken(secret, auth.Claims{UserID: "u1", Email: "nik@example.com", SessionID: "s1"}, time.Hour)
	if err != nil {
		t.Fatalf("generate token: %v", err)
	}

	sessions := &fakeSessions{valid: map[string]bool{"s1": true}}
	user, ok := runAuth(t, secret, "Bearer "+token, sessions)
	if !ok {
		t.Fatal("expected user in context")
	}
	if user.UserID != "u1" || user.Email != "nik@example.com" {
		t.Fatalf("unexpected user: %+v", user)
	}
}

func TestAuthIgnoresMissingHeader(t *testing.T) {
	if _, ok := runAuth(t, "secret", "", nil); ok {
		t.Fatal("expected no user without header")
	}
}

func TestAuthIgnoresBadToken(t *testing.T) {
	if _, ok := runAuth(t, "secret", "Bearer not-a-token", nil); ok {
		t.Fatal("expected no user for malformed token")
	}
}

func TestAuthRejectsRevokedSession(t *testing.T) {
	secret := "secret"
	token, err := auth.GenerateToken(secret, auth.Claims{UserID: "u1", SessionID: "revoked"}, time.Hour)
	if err != nil {
		t.Fatalf("generate token: %v", err)
	}

	sessions := &fakeSessions{valid: map[string]bool{}}
	if _, ok := runAuth(t, secret, "Bearer "+token, sessions); ok {
		t.Fatal("expected revoked session to be treated as unauthenticated")
	}
}
