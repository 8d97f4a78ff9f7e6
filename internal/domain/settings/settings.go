package settings

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/NikGojani/san-rise-sub001/internal/domain/finance"
)

var ErrNotFound = errors.New("settings not configured")

const (
	DefaultGemaPercentage = 9.0
	DefaultCurrency       = "EUR"
)

type Settings struct {
	CompanyName        string               `json:"companyName"`
	GemaPercentage     float64              `json:"gemaPercentage"`
	Currency           string               `json:"currency"`
	LogoURL            string               `json:"logoUrl,omitempty"`
	LogoText           string               `json:"logoText,omitempty"`
	ProfitDistribution finance.Distribution `json:"profitDistribution"`
}

type Store struct {
	DB *pgxpool.Pool
}

func NewStore(db *pgxpool.Pool) *Store {
	return &Store{DB: db}
}

// Get never validates the distribution: an already misconfigured row must
// still be loadable so it can be displayed and corrected.
func (s *Store) Get(ctx context.Context) (*Settings, error) {
	var out Settings
	var gema *float64
	err := s.DB.QueryRow(ctx, `
    SELECT company_name, gema_percentage, currency,
           COALESCE(logo_url, ''), COALESCE(logo_text, ''),
           dist_nik, dist_adrian, dist_sebastian, dist_mexify
    FROM settings
    ORDER BY created_at
    LIMIT 1
  `).Scan(
		&out.CompanyName, &gema, &out.Currency,
		&out.LogoURL, &out.LogoText,
		&out.ProfitDistribution.Nik, &out.ProfitDistribution.Adrian,
		&out.ProfitDistribution.Sebastian, &out.ProfitDistribution.Mexify,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	out.GemaPercentage = finance.Normalize(gema)
	return &out, nil
}

// Save gates the write on the profit-distribution invariant.
func (s *Store) Save(ctx context.Context, in Settings) error {
	if err := finance.ValidateDistribution(in.ProfitDistribution); err != nil {
		return err
	}

	tag, err := s.DB.Exec(ctx, `
    UPDATE settings
    SET company_name = $1, gema_percentage = $2, currency = $3,
        logo_url = $4, logo_text = $5,
        dist_nik = $6, dist_adrian = $7, dist_sebastian = $8, dist_mexify = $9,
        updated_at = now()
  `, in.CompanyName, in.GemaPercentage, in.Currency,
		in.LogoURL, in.LogoText,
		in.ProfitDistribution.Nik, in.ProfitDistribution.Adrian,
		in.ProfitDistribution.Sebastian, in.ProfitDistribution.Mexify)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		_, err = s.DB.Exec(ctx, `
      INSERT INTO settings (company_name, gema_percentage, currency, logo_url, logo_text, dist_nik, dist_adrian, dist_sebastian, dist_mexify)
      VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
    `, in.CompanyName, in.GemaPercentage, in.Currency,
			in.LogoURL, in.LogoText,
			in.ProfitDistribution.Nik, in.ProfitDistribution.Adrian,
			in.ProfitDistribution.Sebastian, in.ProfitDistribution.Mexify)
	}
	return err
}

// Defaults is what event planning falls back to before settings exist.
func Defaults(companyName string) Settings {
	return Settings{
		CompanyName:    companyName,
		GemaPercentage: DefaultGemaPercentage,
		Currency:       DefaultCurrency,
		ProfitDistribution: finance.Distribution{
			Nik: 25, Adrian: 25, Sebastian: 25, Mexify: 25,
		},
	}
}
