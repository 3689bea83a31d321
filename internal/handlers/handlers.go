package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"taskstore/internal/store"
)

// Handlers holds the HTTP handlers and their dependencies.
type Handlers struct {
	store store.Store
}

// New creates a new Handlers instance.
func New(s store.Store) *Handlers {
	return &Handlers{store: s}
}

// respondJSON writes v as a JSON response body.
func respondJSON(w http.ResponseWriter, code int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("failed to encode response: %v", err)
	}
}

// respondError sends an error response with the original API's envelope.
func respondError(w http.ResponseWriter, code int, message string) {
	respondJSON(w, code, map[string]string{"detail": message})
}

// respondStoreError maps classified store errors onto HTTP status codes.
func respondStoreError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, store.ErrDuplicateName),
		errors.Is(err, store.ErrInvalidPage),
		errors.Is(err, store.ErrInvalidPageSize),
		errors.Is(err, store.ErrInvalidSortField):
		respondError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, store.ErrNotFound):
		respondError(w, http.StatusNotFound, err.Error())
	default:
		log.Printf("internal server error: %v", err)
		respondError(w, http.StatusInternalServerError, "internal server error")
	}
}
