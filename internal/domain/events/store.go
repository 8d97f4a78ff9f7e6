package events

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/NikGojani/san-rise-sub001/internal/domain/finance"
)

var ErrNotFound = errors.New("event not found")

type Store struct {
	DB *pgxpool.Pool
}

func NewStore(db *pgxpool.Pool) *Store {
	return &Store{DB: db}
}

const eventColumns = `
    id, name, date, COALESCE(description, ''),
    ticket_count, ticket_price, vk_percentage, termine, gema_percentage,
    marketing_costs, artist_costs, location_costs, merchandiser_costs, travel_costs,
    rabatt, aufbauhelfer, variable_costs, ticketing_fee,
    COALESCE(result, '{}'::jsonb), created_at, updated_at
`

func (s *Store) List(ctx context.Context) ([]Event, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT `+eventColumns+`
    FROM events
    ORDER BY date DESC NULLS LAST, created_at DESC
  `)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	list := make([]Event, 0)
	for rows.Next() {
		event, err := scanEvent(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, event)
	}
	return list, rows.Err()
}

func (s *Store) Get(ctx context.Context, id string) (*Event, error) {
	row := s.DB.QueryRow(ctx, `
    SELECT `+eventColumns+`
    FROM events
    WHERE id = $1
  `, id)

	event, err := scanEvent(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &event, nil
}

// Create recomputes the economics snapshot from the inputs before persisting
// so the stored result never drifts from the stored figures.
func (s *Store) Create(ctx context.Context, event Event) (string, error) {
	result := finance.CalculateEvent(event.CalculatorInput())
	resultJSON, err := json.Marshal(result)
	if err != nil {
		return "", err
	}

	var id string
	err = s.DB.QueryRow(ctx, `
    INSERT INTO events (name, date, description,
      ticket_count, ticket_price, vk_percentage, termine, gema_percentage,
      marketing_costs, artist_costs, location_costs, merchandiser_costs, travel_costs,
      rabatt, aufbauhelfer, variable_costs, ticketing_fee, result)
    VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18)
    RETURNING id
  `, event.Name, event.Date, event.Description,
		event.TicketCount, event.TicketPrice, event.VKPercentage, event.Termine, event.GemaPercentage,
		event.MarketingCosts, event.ArtistCosts, event.LocationCosts, event.MerchandiserCosts, event.TravelCosts,
		event.Rabatt, event.Aufbauhelfer, event.VariableCosts, event.TicketingFee, resultJSON).Scan(&id)
	if err != nil {
		return "", err
	}
	return id, nil
}

func (s *Store) Update(ctx context.Context, event Event) error {
	result := finance.CalculateEvent(event.CalculatorInput())
	resultJSON, err := json.Marshal(result)
	if err != nil {
		return err
	}

	tag, err := s.DB.Exec(ctx, `
    UPDATE events
    SET name = $2, date = $3, description = $4,
        ticket_count = $5, ticket_price = $6, vk_percentage = $7, termine = $8,
        gema_percentage = $9, marketing_costs = $10, artist_costs = $11,
        location_costs = $12, merchandiser_costs = $13, travel_costs = $14,
        rabatt = $15, aufbauhelfer = $16, variable_costs = $17, ticketing_fee = $18,
        result = $19, updated_at = now()
    WHERE id = $1
  `, event.ID, event.Name, event.Date, event.Description,
		event.TicketCount, event.TicketPrice, event.VKPercentage, event.Termine,
		event.GemaPercentage, event.MarketingCosts, event.ArtistCosts,
		event.LocationCosts, event.MerchandiserCosts, event.TravelCosts,
		event.Rabatt, event.Aufbauhelfer, event.VariableCosts, event.TicketingFee,
		resultJSON)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *Store) Delete(ctx context.Context, id string) error {
	tag, err := s.DB.Exec(ctx, "DELETE FROM events WHERE id = $1", id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func scanEvent(row pgx.Row) (Event, error) {
	var event Event
	var resultJSON []byte
	var numeric [14]*float64

	err := row.Scan(
		&event.ID, &event.Name, &event.Date, &event.Description,
		&numeric[0], &numeric[1], &numeric[2], &numeric[3], &numeric[4],
		&numeric[5], &numeric[6], &numeric[7], &numeric[8], &numeric[9],
		&numeric[10], &numeric[11], &numeric[12], &numeric[13],
		&resultJSON, &event.CreatedAt, &event.UpdatedAt,
	)
	if err != nil {
		return Event{}, err
	}

	event.TicketCount = finance.Normalize(numeric[0])
	event.TicketPrice = finance.Normalize(numeric[1])
	event.VKPercentage = finance.Normalize(numeric[2])
	event.Termine = finance.Normalize(numeric[3])
	event.GemaPercentage = finance.Normalize(numeric[4])
	event.MarketingCosts = finance.Normalize(numeric[5])
	event.ArtistCosts = finance.Normalize(numeric[6])
	event.LocationCosts = finance.Normalize(numeric[7])
	event.MerchandiserCosts = finance.Normalize(numeric[8])
	event.TravelCosts = finance.Normalize(numeric[9])
	event.Rabatt = finance.Normalize(numeric[10])
	event.Aufbauhelfer = finance.Normalize(numeric[11])
	event.VariableCosts = finance.Normalize(numeric[12])
	event.TicketingFee = finance.Normalize(numeric[13])

	if err := json.Unmarshal(resultJSON, &event.Result); err != nil {
		event.Result = finance.CalculateEvent(event.CalculatorInput())
	}
	return event, nil
}
