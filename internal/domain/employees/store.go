package employees

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/NikGojani/san-rise-sub001/internal/domain/finance"
)

var ErrNotFound = errors.New("employee not found")

type Store struct {
	DB *pgxpool.Pool
}

func NewStore(db *pgxpool.Pool) *Store {
	return &Store{DB: db}
}

const employeeColumns = `
    id, name, COALESCE(role, ''), gross_salary, additional_costs_percentage,
    is_active, start_date, COALESCE(email, ''), COALESCE(phone, ''),
    COALESCE(address, ''), COALESCE(files, '[]'::jsonb), created_at, updated_at
`

func (s *Store) List(ctx context.Context) ([]Employee, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT `+employeeColumns+`
    FROM employees
    ORDER BY name
  `)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	list := make([]Employee, 0)
	for rows.Next() {
		emp, err := scanEmployee(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, emp)
	}
	return list, rows.Err()
}

func (s *Store) Get(ctx context.Context, id string) (*Employee, error) {
	row := s.DB.QueryRow(ctx, `
    SELECT `+employeeColumns+`
    FROM employees
    WHERE id = $1
  `, id)

	emp, err := scanEmployee(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &emp, nil
}

func (s *Store) Create(ctx context.Context, emp Employee) (string, error) {
	files, err := json.Marshal(filesOrEmpty(emp.Files))
	if err != nil {
		return "", err
	}

	var id string
	err = s.DB.QueryRow(ctx, `
    INSERT INTO employees (name, role, gross_salary, additional_costs_percentage, is_active, start_date, email, phone, address, files)
    VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
    RETURNING id
  `, emp.Name, emp.Role, emp.GrossSalary, emp.AdditionalPercentage, emp.IsActive,
		emp.StartDate, emp.Email, emp.Phone, emp.Address, files).Scan(&id)
	if err != nil {
		return "", err
	}
	return id, nil
}

func (s *Store) Update(ctx context.Context, emp Employee) error {
	files, err := json.Marshal(filesOrEmpty(emp.Files))
	if err != nil {
		return err
	}

	tag, err := s.DB.Exec(ctx, `
    UPDATE employees
    SET name = $2, role = $3, gross_salary = $4, additional_costs_percentage = $5,
        is_active = $6, start_date = $7, email = $8, phone = $9, address = $10,
        files = $11, updated_at = now()
    WHERE id = $1
  `, emp.ID, emp.Name, emp.Role, emp.GrossSalary, emp.AdditionalPercentage,
		emp.IsActive, emp.StartDate, emp.Email, emp.Phone, emp.Address, files)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *Store) Delete(ctx context.Context, id string) error {
	tag, err := s.DB.Exec(ctx, "DELETE FROM employees WHERE id = $1", id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func scanEmployee(row pgx.Row) (Employee, error) {
	var emp Employee
	var salary, percentage *float64
	var filesJSON []byte

	err := row.Scan(
		&emp.ID, &emp.Name, &emp.Role, &salary, &percentage,
		&emp.IsActive, &emp.StartDate, &emp.Email, &emp.Phone,
		&emp.Address, &filesJSON, &emp.CreatedAt, &emp.UpdatedAt,
	)
	if err != nil {
		return Employee{}, err
	}

	emp.GrossSalary = finance.Normalize(salary)
	emp.AdditionalPercentage = finance.Normalize(percentage)
	if err := json.Unmarshal(filesJSON, &emp.Files); err != nil {
		emp.Files = nil
	}
	if emp.Files == nil {
		emp.Files = []FileRef{}
	}
	return emp, nil
}

func filesOrEmpty(files []FileRef) []FileRef {
	if files == nil {
		return []FileRef{}
	}
	return files
}
