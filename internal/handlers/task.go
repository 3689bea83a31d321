package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"taskstore/internal/models"
	"taskstore/internal/store"
)

// CreateTask creates a new task.
func (h *Handlers) CreateTask(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var task models.Task
	if err := json.NewDecoder(r.Body).Decode(&task); err != nil {
		respondError(w, http.StatusBadRequest, "invalid json")
		return
	}

	if err := task.Validate(); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.store.CreateTask(ctx, &task); err != nil {
		respondStoreError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, task)
}

// ListTasks returns one page of tasks, sorted by the requested field.
func (h *Handlers) ListTasks(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	opts, err := parseListOptions(r)
	if err != nil {
		respondStoreError(w, err)
		return
	}

	tasks, err := h.store.ListTasks(ctx, opts)
	if err != nil {
		respondStoreError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, tasks)
}

// CompleteTask marks the named task as completed.
func (h *Handlers) CompleteTask(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	task, err := h.store.CompleteTask(ctx, chi.URLParam(r, "name"))
	if err != nil {
		respondStoreError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, task)
}

// DeleteTask removes the named task and returns its prior state.
func (h *Handlers) DeleteTask(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	task, err := h.store.DeleteTask(ctx, chi.URLParam(r, "name"))
	if err != nil {
		respondStoreError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, task)
}

// parseListOptions reads page, size and sort_by query parameters, applying
// defaults for any that are absent.
func parseListOptions(r *http.Request) (store.ListOptions, error) {
	opts := store.DefaultListOptions()
	query := r.URL.Query()

	if v := query.Get("sort_by"); v != "" {
		opts.SortBy = v
	}

	if v := query.Get("page"); v != "" {
		page, err := strconv.Atoi(v)
		if err != nil {
			return opts, store.ErrInvalidPage
		}
		opts.Page = page
	}

	if v := query.Get("size"); v != "" {
		size, err := strconv.Atoi(v)
		if err != nil {
			return opts, store.ErrInvalidPageSize
		}
		opts.PageSize = size
	}

	return opts, nil
}
