package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFixedVerifier(t *testing.T) {
	v, err := NewFixedVerifier(map[string]string{"admin": "secret123"})
	require.NoError(t, err)

	assert.True(t, v.Verify("admin", "secret123"))
	assert.False(t, v.Verify("admin", "wrong"))
	assert.False(t, v.Verify("nobody", "secret123"))
	assert.False(t, v.Verify("admin", ""))
}

func TestBasicMiddleware(t *testing.T) {
	v, err := NewFixedVerifier(map[string]string{"admin": "secret123"})
	require.NoError(t, err)

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	protected := Basic(v, "tasks")(next)

	tests := []struct {
		name     string
		username string
		password string
		withAuth bool
		wantCode int
	}{
		{"no credentials", "", "", false, http.StatusUnauthorized},
		{"wrong password", "admin", "nope", true, http.StatusUnauthorized},
		{"unknown user", "root", "secret123", true, http.StatusUnauthorized},
		{"valid credentials", "admin", "secret123", true, http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/tarefas/", nil)
			if tt.withAuth {
				req.SetBasicAuth(tt.username, tt.password)
			}
			rec := httptest.NewRecorder()

			protected.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantCode, rec.Code)
			if tt.wantCode == http.StatusUnauthorized {
				assert.Contains(t, rec.Header().Get("WWW-Authenticate"), `Basic realm=`)
			}
		})
	}
}
