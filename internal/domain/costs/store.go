package costs

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/NikGojani/san-rise-sub001/internal/domain/finance"
)

var ErrNotFound = errors.New("additional cost not found")

type Store struct {
	DB *pgxpool.Pool
}

func NewStore(db *pgxpool.Pool) *Store {
	return &Store{DB: db}
}

const costColumns = `
    id, name, amount, COALESCE(category, ''), cost_type, date,
    COALESCE(description, ''), COALESCE(attachments, '[]'::jsonb),
    created_at, updated_at
`

func (s *Store) List(ctx context.Context) ([]AdditionalCost, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT `+costColumns+`
    FROM additional_costs
    ORDER BY date DESC
  `)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	list := make([]AdditionalCost, 0)
	for rows.Next() {
		cost, err := scanCost(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, cost)
	}
	return list, rows.Err()
}

func (s *Store) Get(ctx context.Context, id string) (*AdditionalCost, error) {
	row := s.DB.QueryRow(ctx, `
    SELECT `+costColumns+`
    FROM additional_costs
    WHERE id = $1
  `, id)

	cost, err := scanCost(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &cost, nil
}

func (s *Store) Create(ctx context.Context, cost AdditionalCost) (string, error) {
	attachments, err := json.Marshal(attachmentsOrEmpty(cost.Attachments))
	if err != nil {
		return "", err
	}

	var id string
	err = s.DB.QueryRow(ctx, `
    INSERT INTO additional_costs (name, amount, category, cost_type, date, description, attachments)
    VALUES ($1, $2, $3, $4, $5, $6, $7)
    RETURNING id
  `, cost.Name, cost.Amount, cost.Category, string(cost.Type), cost.Date,
		cost.Description, attachments).Scan(&id)
	if err != nil {
		return "", err
	}
	return id, nil
}

func (s *Store) Update(ctx context.Context, cost AdditionalCost) error {
	attachments, err := json.Marshal(attachmentsOrEmpty(cost.Attachments))
	if err != nil {
		return err
	}

	tag, err := s.DB.Exec(ctx, `
    UPDATE additional_costs
    SET name = $2, amount = $3, category = $4, cost_type = $5, date = $6,
        description = $7, attachments = $8, updated_at = now()
    WHERE id = $1
  `, cost.ID, cost.Name, cost.Amount, cost.Category, string(cost.Type), cost.Date,
		cost.Description, attachments)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *Store) Delete(ctx context.Context, id string) error {
	tag, err := s.DB.Exec(ctx, "DELETE FROM additional_costs WHERE id = $1", id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func scanCost(row pgx.Row) (AdditionalCost, error) {
	var cost AdditionalCost
	var amount *float64
	var costType string
	var attachmentsJSON []byte

	err := row.Scan(
		&cost.ID, &cost.Name, &amount, &cost.Category, &costType, &cost.Date,
		&cost.Description, &attachmentsJSON, &cost.CreatedAt, &cost.UpdatedAt,
	)
	if err != nil {
		return AdditionalCost{}, err
	}

	cost.Amount = finance.Normalize(amount)
	cost.Type = finance.CostType(costType)
	if err := json.Unmarshal(attachmentsJSON, &cost.Attachments); err != nil {
		cost.Attachments = nil
	}
	if cost.Attachments == nil {
		cost.Attachments = []Attachment{}
	}
	return cost, nil
}

func attachmentsOrEmpty(attachments []Attachment) []Attachment {
	if attachments == nil {
		return []Attachment{}
	}
	return attachments
}
