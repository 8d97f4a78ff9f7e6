package contracts

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/NikGojani/san-rise-sub001/internal/domain/finance"
)

var ErrNotFound = errors.New("contract not found")

type Store struct {
	DB *pgxpool.Pool
}

func NewStore(db *pgxpool.Pool) *Store {
	return &Store{DB: db}
}

const contractColumns = `
    id, name, amount, COALESCE(category, ''), billing_interval,
    start_date, end_date, COALESCE(attachments, '[]'::jsonb),
    created_at, updated_at
`

func (s *Store) List(ctx context.Context) ([]Contract, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT `+contractColumns+`
    FROM contracts
    ORDER BY created_at DESC
  `)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	contracts := make([]Contract, 0)
	for rows.Next() {
		contract, err := scanContract(rows)
		if err != nil {
			return nil, err
		}
		contracts = append(contracts, contract)
	}
	return contracts, rows.Err()
}

func (s *Store) Get(ctx context.Context, id string) (*Contract, error) {
	row := s.DB.QueryRow(ctx, `
    SELECT `+contractColumns+`
    FROM contracts
    WHERE id = $1
  `, id)

	contract, err := scanContract(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &contract, nil
}

func (s *Store) Create(ctx context.Context, contract Contract) (string, error) {
	attachments, err := json.Marshal(attachmentsOrEmpty(contract.Attachments))
	if err != nil {
		return "", err
	}

	var id string
	err = s.DB.QueryRow(ctx, `
    INSERT INTO contracts (name, amount, category, billing_interval, start_date, end_date, attachments)
    VALUES ($1, $2, $3, $4, $5, $6, $7)
    RETURNING id
  `, contract.Name, contract.Amount, contract.Category, string(contract.Interval),
		contract.StartDate, contract.EndDate, attachments).Scan(&id)
	if err != nil {
		return "", err
	}
	return id, nil
}

func (s *Store) Update(ctx context.Context, contract Contract) error {
	attachments, err := json.Marshal(attachmentsOrEmpty(contract.Attachments))
	if err != nil {
		return err
	}

	tag, err := s.DB.Exec(ctx, `
    UPDATE contracts
    SET name = $2, amount = $3, category = $4, billing_interval = $5,
        start_date = $6, end_date = $7, attachments = $8, updated_at = now()
    WHERE id = $1
  `, contract.ID, contract.Name, contract.Amount, contract.Category, string(contract.Interval),
		contract.StartDate, contract.EndDate, attachments)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *Store) Delete(ctx context.Context, id string) error {
	tag, err := s.DB.Exec(ctx, "DELETE FROM contracts WHERE id = $1", id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func scanContract(row pgx.Row) (Contract, error) {
	var contract Contract
	var amount *float64
	var interval string
	var attachmentsJSON []byte

	err := row.Scan(
		&contract.ID, &contract.Name, &amount, &contract.Category, &interval,
		&contract.StartDate, &contract.EndDate, &attachmentsJSON,
		&contract.CreatedAt, &contract.UpdatedAt,
	)
	if err != nil {
		return Contract{}, err
	}

	contract.Amount = finance.Normalize(amount)
	contract.Interval = finance.Interval(interval)
	if err := json.Unmarshal(attachmentsJSON, &contract.Attachments); err != nil {
		contract.Attachments = nil
	}
	if contract.Attachments == nil {
		contract.Attachments = []Attachment{}
	}
	return contract, nil
}

func attachmentsOrEmpty(attachments []Attachment) []Attachment {
	if attachments == nil {
		return []Attachment{}
	}
	return attachments
}
