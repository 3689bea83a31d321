package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/go-sql-driver/mysql"

	"taskstore/internal/models"
)

// mysqlDuplicateEntry is the server error code for a unique-key violation.
const mysqlDuplicateEntry = 1062

// MySQLStore implements the Store interface using MySQL.
type MySQLStore struct {
	db *sql.DB
}

// NewMySQLStore creates a new MySQL store from the given DSN.
func NewMySQLStore(dsn string) (*MySQLStore, error) {
	db, err := sql.Open("mysql", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	store := &MySQLStore{db: db}
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	return store, nil
}

func (s *MySQLStore) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS tasks (
		id BIGINT PRIMARY KEY AUTO_INCREMENT,
		name VARCHAR(255) NOT NULL UNIQUE,
		description TEXT,
		completed BOOLEAN DEFAULT FALSE
	)
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *MySQLStore) Close() error {
	return s.db.Close()
}

// CreateTask inserts a new task. A duplicate-entry error on the name index
// is reported as ErrDuplicateName.
func (s *MySQLStore) CreateTask(ctx context.Context, task *models.Task) error {
	result, err := s.db.ExecContext(ctx, `
		INSERT INTO tasks (name, description, completed)
		VALUES (?, ?, ?)
	`, task.Name, task.Description, task.Completed)
	if err != nil {
		var mysqlErr *mysql.MySQLError
		if errors.As(err, &mysqlErr) && mysqlErr.Number == mysqlDuplicateEntry {
			return ErrDuplicateName
		}
		return fmt.Errorf("failed to create task: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get last insert id: %w", err)
	}
	task.ID = id

	return nil
}

// ListTasks retrieves one page of tasks sorted ascending by the chosen
// field. Ties keep insertion order via the surrogate id.
func (s *MySQLStore) ListTasks(ctx context.Context, opts ListOptions) ([]models.Task, error) {
	opts = opts.Normalize()
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	// opts.SortBy is validated against the whitelist above, so it is safe
	// to splice into the query.
	query := fmt.Sprintf(`
		SELECT id, name, description, completed
		FROM tasks ORDER BY %s ASC, id ASC LIMIT ? OFFSET ?
	`, opts.SortBy)

	rows, err := s.db.QueryContext(ctx, query, opts.PageSize, opts.offset())
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}
	defer rows.Close()

	tasks := []models.Task{}
	for rows.Next() {
		var task models.Task
		if err := rows.Scan(&task.ID, &task.Name, &task.Description, &task.Completed); err != nil {
			return nil, fmt.Errorf("failed to scan task: %w", err)
		}
		tasks = append(tasks, task)
	}

	return tasks, rows.Err()
}

// CompleteTask marks the named task completed and returns the updated
// record. The existence check runs first because MySQL reports zero
// affected rows for an update that changes nothing.
func (s *MySQLStore) CompleteTask(ctx context.Context, name string) (*models.Task, error) {
	task, err := s.getByName(ctx, name)
	if err != nil {
		return nil, err
	}

	if _, err := s.db.ExecContext(ctx, `UPDATE tasks SET completed = TRUE WHERE name = ?`, name); err != nil {
		return nil, fmt.Errorf("failed to complete task: %w", err)
	}

	task.Completed = true
	return task, nil
}

// DeleteTask removes the named task and returns its prior state.
func (s *MySQLStore) DeleteTask(ctx context.Context, name string) (*models.Task, error) {
	task, err := s.getByName(ctx, name)
	if err != nil {
		return nil, err
	}

	if _, err := s.db.ExecContext(ctx, `DELETE FROM tasks WHERE name = ?`, name); err != nil {
		return nil, fmt.Errorf("failed to delete task: %w", err)
	}

	return task, nil
}

func (s *MySQLStore) getByName(ctx context.Context, name string) (*models.Task, error) {
	task := &models.Task{}

	err := s.db.QueryRowContext(ctx, `
		SELECT id, name, description, completed
		FROM tasks WHERE name = ?
	`, name).Scan(&task.ID, &task.Name, &task.Description, &task.Completed)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get task: %w", err)
	}

	return task, nil
}
