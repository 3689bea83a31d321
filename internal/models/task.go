package models

import (
	"errors"
	"strings"
)

// Task represents a single task in the store. The name is the unique
// business key; the ID is a backend surrogate and is not serialized.
type Task struct {
	ID          int64  `json:"-"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Completed   bool   `json:"completed"`
}

// Validate checks that the task has valid field values.
func (t *Task) Validate() error {
	if strings.TrimSpace(t.Name) == "" {
		return errors.New("name is required")
	}

	if len(t.Name) > 255 {
		return errors.New("name must be 255 characters or fewer")
	}

	return nil
}
