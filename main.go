package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"taskstore/internal/auth"
	"taskstore/internal/config"
	"taskstore/internal/handlers"
	"taskstore/internal/store"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	s, err := newStore(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize store: %v", err)
	}
	defer s.Close()

	h := handlers.New(s)

	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Compress(5))

	r.Get("/health", func(w http.ResponseWriter, req *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	// Task routes, optionally behind basic auth
	r.Group(func(r chi.Router) {
		if cfg.Auth.Enabled {
			verifier, err := auth.NewFixedVerifier(map[string]string{
				cfg.Auth.Username: cfg.Auth.Password,
			})
			if err != nil {
				log.Fatalf("Failed to initialize credential verifier: %v", err)
			}
			r.Use(auth.Basic(verifier, cfg.Auth.Realm))
		}

		r.Post("/tarefas/", h.CreateTask)
		r.Get("/tarefas/", h.ListTasks)
		r.Put("/tarefas/{name}", h.CompleteTask)
		r.Delete("/tarefas/{name}", h.DeleteTask)
	})

	addr := fmt.Sprintf(":%s", cfg.Port)
	server := &http.Server{Addr: addr, Handler: r}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		<-ctx.Done()
		log.Println("Shutting down server")
		if err := server.Shutdown(context.Background()); err != nil {
			log.Printf("Shutdown error: %v", err)
		}
	}()

	log.Printf("Starting server on http://localhost%s (backend=%s, auth=%t)",
		addr, cfg.Backend, cfg.Auth.Enabled)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatalf("Server failed: %v", err)
	}
}

func newStore(cfg *config.Config) (store.Store, error) {
	switch cfg.Backend {
	case config.BackendSQLite:
		if err := os.MkdirAll(filepath.Dir(cfg.DBPath), 0755); err != nil {
			return nil, fmt.Errorf("failed to create data directory: %w", err)
		}
		return store.NewSQLiteStore(cfg.DBPath)
	case config.BackendMySQL:
		return store.NewMySQLStore(cfg.MySQLDSN)
	default:
		return store.NewMemoryStore(), nil
	}
}
