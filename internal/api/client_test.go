package api

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"mwadmin/internal/models"
	"mwadmin/internal/session"

	"github.com/rs/zerolog"
)

func newTestClient(t *testing.T, handler http.Handler) (*Client, *session.Store) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	store := session.NewStore(t.TempDir())
	return NewClient(srv.URL, store, zerolog.Nop()), store
}

func TestDoAttachesBearerAndRequestID(t *testing.T) {
	t.Parallel()

	var gotAuth, gotRequestID string
	client, store := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotRequestID = r.Header.Get("X-Request-ID")
		w.Write([]byte(`{}`))
	}))

	if err := store.Set("abc"); err != nil {
		t.Fatalf("Set() error: %v", err)
	}

	if _, err := client.get(context.Background(), "/auth/me", nil); err != nil {
		t.Fatalf("get() error: %v", err)
	}

	if gotAuth != "Bearer abc" {
		t.Fatalf("Authorization header = %q, want %q", gotAuth, "Bearer abc")
	}
	if gotRequestID == "" {
		t.Fatal("X-Request-ID header missing")
	}
}

func TestDoUnauthenticatedSendsNoAuthHeader(t *testing.T) {
	t.Parallel()

	var sawAuth bool
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sawAuth = r.Header.Get("Authorization") != ""
		w.Write([]byte(`{}`))
	}))

	if _, err := client.get(context.Background(), "/gallery/categories", nil); err != nil {
		t.Fatalf("get() error: %v", err)
	}
	if sawAuth {
		t.Fatal("Authorization header sent without a stored token")
	}
}

func TestDo401ClearsSessionAndSignalsExpiry(t *testing.T) {
	t.Parallel()

	client, store := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"message":"token invalid"}`))
	}))

	if err := store.Set("stale"); err != nil {
		t.Fatalf("Set() error: %v", err)
	}

	_, err := client.get(context.Background(), "/projects", nil)
	if !errors.Is(err, models.ErrSessionExpired) {
		t.Fatalf("error = %v, want ErrSessionExpired", err)
	}
	if store.IsPresent() {
		t.Fatal("session still present after 401")
	}
}

func TestDo401WithoutTokenIsPlainError(t *testing.T) {
	t.Parallel()

	client, store := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"message":"bad credentials"}`))
	}))

	_, err := client.post(context.Background(), "/auth/admin/login", map[string]string{"email": "a@b.com"})
	if errors.Is(err, models.ErrSessionExpired) {
		t.Fatal("unauthenticated 401 must not signal session expiry")
	}

	var apiErr *models.APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("error = %v, want *models.APIError", err)
	}
	if apiErr.StatusCode != http.StatusUnauthorized || apiErr.Message != "bad credentials" {
		t.Fatalf("APIError = %+v, want status 401 with backend message", apiErr)
	}
	if store.IsPresent() {
		t.Fatal("session store touched by login-path 401")
	}
}

func TestDoSurfacesBackendErrors(t *testing.T) {
	t.Parallel()

	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"success":false,"message":"Project not found"}`))
	}))

	err := client.DeleteProject(context.Background(), "missing-id")
	if err == nil {
		t.Fatal("DeleteProject() of missing id succeeded, want error")
	}

	var apiErr *models.APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("error = %v, want *models.APIError", err)
	}
	if apiErr.StatusCode != http.StatusNotFound {
		t.Fatalf("StatusCode = %d, want 404", apiErr.StatusCode)
	}
	if apiErr.Message != "Project not found" {
		t.Fatalf("Message = %q, want backend message", apiErr.Message)
	}
	if apiErr.Path != "/projects/missing-id" {
		t.Fatalf("Path = %q, want /projects/missing-id", apiErr.Path)
	}
}

func TestDoTransportError(t *testing.T) {
	t.Parallel()

	store := session.NewStore(t.TempDir())
	// Nothing listens here.
	client := NewClient("http://127.0.0.1:1", store, zerolog.Nop())

	if _, err := client.get(context.Background(), "/projects", nil); err == nil {
		t.Fatal("get() against dead server succeeded, want error")
	}
}
