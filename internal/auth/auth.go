// Package auth provides credential verification and HTTP basic-auth
// protection for the task routes.
package auth

import (
	"fmt"
	"net/http"

	"golang.org/x/crypto/bcrypt"
)

// dummyHash keeps the cost of rejecting an unknown username in line with
// rejecting a wrong password.
var dummyHash, _ = bcrypt.GenerateFromPassword([]byte("-"), bcrypt.DefaultCost)

// Verifier validates a presented username/password pair.
type Verifier interface {
	Verify(username, password string) bool
}

// FixedVerifier checks credentials against a fixed user table populated at
// startup. Passwords are stored only as bcrypt hashes.
type FixedVerifier struct {
	users map[string][]byte
}

// NewFixedVerifier hashes the given username → password table and returns a
// verifier backed by it.
func NewFixedVerifier(credentials map[string]string) (*FixedVerifier, error) {
	users := make(map[string][]byte, len(credentials))
	for username, password := range credentials {
		hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
		if err != nil {
			return nil, fmt.Errorf("failed to hash password for %q: %w", username, err)
		}
		users[username] = hash
	}
	return &FixedVerifier{users: users}, nil
}

// Verify reports whether the pair matches a known account.
func (v *FixedVerifier) Verify(username, password string) bool {
	hash, ok := v.users[username]
	if !ok {
		bcrypt.CompareHashAndPassword(dummyHash, []byte(password))
		return false
	}
	return bcrypt.CompareHashAndPassword(hash, []byte(password)) == nil
}

// Basic returns middleware that gates the wrapped handler behind HTTP basic
// authentication. Any failure yields 401 with a challenge header.
func Basic(verifier Verifier, realm string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			username, password, ok := r.BasicAuth()
			if !ok || !verifier.Verify(username, password) {
				w.Header().Set("WWW-Authenticate", fmt.Sprintf("Basic realm=%q", realm))
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusUnauthorized)
				w.Write([]byte(`{"detail": "invalid credentials"}`))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
