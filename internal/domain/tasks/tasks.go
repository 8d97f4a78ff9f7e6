package tasks

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var ErrNotFound = errors.New("task not found")

const (
	StatusTodo       = "todo"
	StatusInProgress = "in-progress"
	StatusDone       = "done"

	PriorityLow    = "low"
	PriorityMedium = "medium"
	PriorityHigh   = "high"
)

var Statuses = []string{StatusTodo, StatusInProgress, StatusDone}

var Priorities = []string{PriorityLow, PriorityMedium, PriorityHigh}

type Task struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description,omitempty"`
	Status      string     `json:"status"`
	Priority    string     `json:"priority"`
	Assignee    string     `json:"assignee,omitempty"`
	DueDate     *time.Time `json:"dueDate,omitempty"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

type Store struct {
	DB *pgxpool.Pool
}

func NewStore(db *pgxpool.Pool) *Store {
	return &Store{DB: db}
}

const taskColumns = `
    id, title, COALESCE(description, ''), status, priority,
    COALESCE(assignee, ''), due_date, created_at, updated_at
`

func (s *Store) List(ctx context.Context) ([]Task, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT `+taskColumns+`
    FROM tasks
    ORDER BY created_at DESC
  `)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	list := make([]Task, 0)
	for rows.Next() {
		var task Task
		if err := rows.Scan(
			&task.ID, &task.Title, &task.Description, &task.Status, &task.Priority,
			&task.Assignee, &task.DueDate, &task.CreatedAt, &task.UpdatedAt,
		); err != nil {
			return nil, err
		}
		list = append(list, task)
	}
	return list, rows.Err()
}

func (s *Store) Get(ctx context.Context, id string) (*Task, error) {
	var task Task
	err := s.DB.QueryRow(ctx, `
    SELECT `+taskColumns+`
    FROM tasks
    WHERE id = $1
  `, id).Scan(
		&task.ID, &task.Title, &task.Description, &task.Status, &task.Priority,
		&task.Assignee, &task.DueDate, &task.CreatedAt, &task.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &task, nil
}

func (s *Store) Create(ctx context.Context, task Task) (string, error) {
	var id string
	err := s.DB.QueryRow(ctx, `
    INSERT INTO tasks (title, description, status, priority, assignee, due_date)
    VALUES ($1, $2, $3, $4, $5, $6)
    RETURNING id
  `, task.Title, task.Description, task.Status, task.Priority, task.Assignee, task.DueDate).Scan(&id)
	if err != nil {
		return "", err
	}
	return id, nil
}

func (s *Store) Update(ctx context.Context, task Task) error {
	tag, err := s.DB.Exec(ctx, `
    UPDATE tasks
    SET title = $2, description = $3, status = $4, priority = $5,
        assignee = $6, due_date = $7, updated_at = now()
    WHERE id = $1
  `, task.ID, task.Title, task.Description, task.Status, task.Priority, task.Assignee, task.DueDate)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *Store) UpdateStatus(ctx context.Context, id, status string) error {
	tag, err := s.DB.Exec(ctx, `
    UPDATE tasks
    SET status = $2, updated_at = now()
    WHERE id = $1
  `, id, status)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *Store) Delete(ctx context.Context, id string) error {
	tag, err := s.DB.Exec(ctx, "DELETE FROM tasks WHERE id = $1", id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
