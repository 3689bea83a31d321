package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sqlite3 "github.com/mattn/go-sqlite3"

	"taskstore/internal/models"
)

// SQLiteStore implements the Store interface using SQLite.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLiteStore creates a new SQLite store with the given database path.
func NewSQLiteStore(dbPath string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite3", dbPath+"?_foreign_keys=on")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	store := &SQLiteStore{db: db}
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	return store, nil
}

func (s *SQLiteStore) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS tasks (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		name TEXT NOT NULL UNIQUE,
		description TEXT DEFAULT '',
		completed BOOLEAN DEFAULT FALSE
	);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// CreateTask inserts a new task. A unique-constraint violation on the name
// is reported as ErrDuplicateName.
func (s *SQLiteStore) CreateTask(ctx context.Context, task *models.Task) error {
	result, err := s.db.ExecContext(ctx, `
		INSERT INTO tasks (name, description, completed)
		VALUES (?, ?, ?)
	`, task.Name, task.Description, task.Completed)
	if err != nil {
		var sqliteErr sqlite3.Error
		if errors.As(err, &sqliteErr) && sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique {
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
func (s *SQLiteStore) ListTasks(ctx context.Context, opts ListOptions) ([]models.Task, error) {
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

// CompleteTask marks the named task completed and returns the updated record.
func (s *SQLiteStore) CompleteTask(ctx context.Context, name string) (*models.Task, error) {
	result, err := s.db.ExecContext(ctx, `
		UPDATE tasks SET completed = TRUE WHERE name = ?
	`, name)
	if err != nil {
		return nil, fmt.Errorf("failed to complete task: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("failed to get rows affected: %w", err)
	}
	if affected == 0 {
		return nil, ErrNotFound
	}

	return s.getByName(ctx, name)
}

// DeleteTask removes the named task and returns its prior state.
func (s *SQLiteStore) DeleteTask(ctx context.Context, name string) (*models.Task, error) {
	task, err := s.getByName(ctx, name)
	if err != nil {
		return nil, err
	}

	if _, err := s.db.ExecContext(ctx, `DELETE FROM tasks WHERE name = ?`, name); err != nil {
		return nil, fmt.Errorf("failed to delete task: %w", err)
	}

	return task, nil
}

func (s *SQLiteStore) getByName(ctx context.Context, name string) (*models.Task, error) {
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
