package db

import (
	"context"
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/NikGojani/san-rise-sub001/internal/domain/auth"
	"github.com/NikGojani/san-rise-sub001/internal/platform/config"
)

func Seed(ctx context.Context, pool *pgxpool.Pool, cfg config.Config) error {
	if err := ensureSettings(ctx, pool, cfg.SeedCompanyName); err != nil {
		return err
	}
	return ensureAdminUser(ctx, pool, cfg.SeedAdminEmail, cfg.SeedAdminPassword)
}

func ensureSettings(ctx context.Context, pool *pgxpool.Pool, companyName string) error {
	var count int
	if err := pool.QueryRow(ctx, "SELECT COUNT(1) FROM settings").Scan(&count); err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	_, err := pool.Exec(ctx, `
    INSERT INTO settings (company_name, gema_percentage, currency, dist_nik, dist_adrian, dist_sebastian, dist_mexify)
    VALUES ($1, 9, 'EUR', 25, 25, 25, 25)
  `, companyName)
	return err
}

func ensureAdminUser(ctx context.Context, pool *pgxpool.Pool, email, password string) error {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || password == "" {
		return nil
	}

	var count int
	if err := pool.QueryRow(ctx, "SELECT COUNT(1) FROM users WHERE email = $1", email).Scan(&count); err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return err
	}

	_, err = pool.Exec(ctx, "INSERT INTO users (email, password_hash, display_name) VALUES ($1, $2, 'Admin')", email, hash)
	return err
}
