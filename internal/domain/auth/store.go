package auth

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var ErrInvalidCredentials = errors.New("invalid email or password")

type User struct {
	ID           string
	Email        string
	DisplayName  string
	PasswordHash string
}

type Store struct {
	DB *pgxpool.Pool
}

func NewStore(db *pgxpool.Pool) *Store {
	return &Store{DB: db}
}

func (s *Store) FindUserByEmail(ctx context.Context, email string) (*User, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	var user User
	err := s.DB.QueryRow(ctx, `
    SELECT id, email, COALESCE(display_name, ''), password_hash
    FROM users
    WHERE email = $1
  `, email).Scan(&user.ID, &user.Email, &user.DisplayName, &user.PasswordHash)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *Store) GetUser(ctx context.Context, userID string) (*User, error) {
	var user User
	err := s.DB.QueryRow(ctx, `
    SELECT id, email, COALESCE(display_name, ''), password_hash
    FROM users
    WHERE id = $1
  `, userID).Scan(&user.ID, &user.Email, &user.DisplayName, &user.PasswordHash)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// CreateSession records a server-side session row so issued tokens stay
// revocable. The returned ID travels inside the JWT as the sid claim.
func (s *Store) CreateSession(ctx context.Context, userID string, ttl time.Duration) (string, error) {
	sessionID := uuid.NewString()
	_, err := s.DB.Exec(ctx, `
    INSERT INTO sessions (id, user_id, expires_at)
    VALUES ($1, $2, $3)
  `, sessionID, userID, time.Now().Add(ttl))
	if err != nil {
		return "", err
	}
	return sessionID, nil
}

func (s *Store) SessionValid(ctx context.Context, sessionID string) (bool, error) {
	var count int
	err := s.DB.QueryRow(ctx, `
    SELECT COUNT(1)
    FROM sessions
    WHERE id = $1 AND revoked_at IS NULL AND expires_at > now()
  `, sessionID).Scan(&count)
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (s *Store) RevokeSession(ctx context.Context, sessionID string) error {
	_, err := s.DB.Exec(ctx, "UPDATE sessions SET revoked_at = now() WHERE id = $1", sessionID)
	return err
}
