package authhandler

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/NikGojani/san-rise-sub001/internal/domain/auth"
	"github.com/NikGojani/san-rise-sub001/internal/transport/http/api"
	"github.com/NikGojani/san-rise-sub001/internal/transport/http/middleware"
	"github.com/NikGojani/san-rise-sub001/internal/transport/http/shared"
)

type Handler struct {
	Store      *auth.Store
	JWTSecret  string
	SessionTTL time.Duration
}

func NewHandler(db *pgxpool.Pool, jwtSecret string, sessionTTL time.Duration) *Handler {
	return &Handler{Store: auth.NewStore(db), JWTSecret: jwtSecret, SessionTTL: sessionTTL}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Post("/auth/login", h.HandleLogin)
	r.Post("/auth/logout", h.HandleLogout)
	r.Get("/me", h.HandleMe)
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token     string           `json:"token"`
	ExpiresAt time.Time        `json:"expiresAt"`
	User      auth.UserContext `json:"user"`
}

func (h *Handler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())

	var payload loginRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", requestID)
		return
	}

	validator := shared.NewValidator()
	validator.Required("email", payload.Email, "email is required")
	validator.Required("password", payload.Password, "password is required")
	if validator.Reject(w, requestID) {
		return
	}

	user, err := h.Store.FindUserByEmail(r.Context(), payload.Email)
	if errors.Is(err, auth.ErrInvalidCredentials) {
		api.Fail(w, http.StatusUnauthorized, "invalid_credentials", "invalid email or password", requestID)
		return
	}
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "login_failed", "login failed", requestID)
		return
	}

	if err := auth.CheckPassword(user.PasswordHash, payload.Password); err != nil {
		api.Fail(w, http.StatusUnauthorized, "invalid_credentials", "invalid email or password", requestID)
		return
	}

	sessionID, err := h.Store.CreateSession(r.Context(), user.ID, h.SessionTTL)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "login_failed", "login failed", requestID)
		return
	}

	token, err := auth.GenerateToken(h.JWTSecret, auth.Claims{
		UserID:    user.ID,
		Email:     user.Email,
		SessionID: sessionID,
	}, h.SessionTTL)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "login_failed", "login failed", requestID)
		return
	}

	api.Success(w, loginResponse{
		Token:     token,
		ExpiresAt: time.Now().Add(h.SessionTTL),
		User: auth.UserContext{
			UserID: user.ID,
			Email:  user.Email,
			Name:   user.DisplayName,
		},
	}, requestID)
}

func (h *Handler) HandleLogout(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())

	user, ok := middleware.GetUser(r.Context())
	if !ok {
		api.Fail(w, http.StatusUnauthorized, "unauthorized", "authentication required", requestID)
		return
	}

	if err := h.Store.RevokeSession(r.Context(), user.SessionID); err != nil {
		api.Fail(w, http.StatusInternalServerError, "logout_failed", "failed to revoke session", requestID)
		return
	}

	api.Success(w, map[string]bool{"loggedOut": true}, requestID)
}

func (h *Handler) HandleMe(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())

	user, ok := middleware.GetUser(r.Context())
	if !ok {
		api.Fail(w, http.StatusUnauthorized, "unauthorized", "authentication required", requestID)
		return
	}

	api.Success(w, user, requestID)
}
