package store

import (
	"context"
	"errors"

	"taskstore/internal/models"
)

// Classified failures surfaced by every backend. Callers match with errors.Is.
var (
	ErrDuplicateName    = errors.New("a task with this name already exists")
	ErrNotFound         = errors.New("task not found")
	ErrInvalidPage      = errors.New("page must be 1 or greater")
	ErrInvalidPageSize  = errors.New("page size must be between 1 and 100")
	ErrInvalidSortField = errors.New("sort_by must be one of: name, description, completed")
)

// Store defines the interface for task persistence operations.
type Store interface {
	// CreateTask inserts a new task. The name must not already exist;
	// a violation is reported as ErrDuplicateName.
	CreateTask(ctx context.Context, task *models.Task) error

	// ListTasks returns one page of tasks, sorted ascending by the
	// field in opts. A page past the end yields an empty slice.
	ListTasks(ctx context.Context, opts ListOptions) ([]models.Task, error)

	// CompleteTask marks the named task completed and returns the
	// updated record. Completing an already-completed task succeeds.
	CompleteTask(ctx context.Context, name string) (*models.Task, error)

	// DeleteTask removes the named task and returns its prior state.
	DeleteTask(ctx context.Context, name string) (*models.Task, error)

	// Lifecycle
	Close() error
}
