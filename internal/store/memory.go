package store

import (
	"context"
	"sort"
	"sync"

	"taskstore/internal/models"
)

// MemoryStore implements the Store interface with an in-process slice.
// State lives for the lifetime of the process and starts empty.
type MemoryStore struct {
	mu    sync.RWMutex
	tasks []models.Task
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

// CreateTask inserts a new task, rejecting duplicate names.
func (s *MemoryStore) CreateTask(ctx context.Context, task *models.Task) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.indexOf(task.Name) >= 0 {
		return ErrDuplicateName
	}

	s.tasks = append(s.tasks, *task)
	return nil
}

// ListTasks returns one page of tasks sorted ascending by the chosen field.
// Ties keep insertion order.
func (s *MemoryStore) ListTasks(ctx context.Context, opts ListOptions) ([]models.Task, error) {
	opts = opts.Normalize()
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	sorted := make([]models.Task, len(s.tasks))
	copy(sorted, s.tasks)
	s.mu.RUnlock()

	sort.SliceStable(sorted, func(i, j int) bool {
		a, b := sorted[i], sorted[j]
		switch opts.SortBy {
		case SortByDescription:
			return a.Description < b.Description
		case SortByCompleted:
			// false orders before true
			return !a.Completed && b.Completed
		default:
			return a.Name < b.Name
		}
	})

	start := opts.offset()
	if start >= len(sorted) {
		return []models.Task{}, nil
	}

	end := start + opts.PageSize
	if end > len(sorted) {
		end = len(sorted)
	}

	return sorted[start:end], nil
}

// CompleteTask marks the named task completed and returns the updated record.
func (s *MemoryStore) CompleteTask(ctx context.Context, name string) (*models.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(name)
	if i < 0 {
		return nil, ErrNotFound
	}

	s.tasks[i].Completed = true
	task := s.tasks[i]
	return &task, nil
}

// DeleteTask removes the named task and returns its prior state.
func (s *MemoryStore) DeleteTask(ctx context.Context, name string) (*models.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(name)
	if i < 0 {
		return nil, ErrNotFound
	}

	task := s.tasks[i]
	s.tasks = append(s.tasks[:i], s.tasks[i+1:]...)
	return &task, nil
}

// Close is a no-op for the in-memory backend.
func (s *MemoryStore) Close() error {
	return nil
}

// indexOf returns the position of the named task, or -1. Callers must hold
// the lock.
func (s *MemoryStore) indexOf(name string) int {
	for i := range s.tasks {
		if s.tasks[i].Name == name {
			return i
		}
	}
	return -1
}
