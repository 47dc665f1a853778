package session

import (
	"os"
	"testing"
)

func TestStoreRoundTrip(t *testing.T) {
	t.Parallel()

	store := NewStore(t.TempDir())

	if store.IsPresent() {
		t.Fatal("IsPresent() = true before any token was stored")
	}

	if err := store.Set("abc123"); err != nil {
		t.Fatalf("Set() error: %v", err)
	}

	if !store.IsPresent() {
		t.Fatal("IsPresent() = false after Set()")
	}

	token, err := store.Get()
	if err != nil {
		t.Fatalf("Get() error: %v", err)
	}
	if token != "abc123" {
		t.Fatalf("Get() = %q, want %q", token, "abc123")
	}

	info, err := os.Stat(store.TokenFile)
	if err != nil {
		t.Fatalf("stat token file: %v", err)
	}
	if perm := info.Mode().Perm(); perm != 0600 {
		t.Fatalf("token file permissions = %o, want 0600", perm)
	}
}

func TestStoreClear(t *testing.T) {
	t.Parallel()

	store := NewStore(t.TempDir())

	if err := store.Set("abc123"); err != nil {
		t.Fatalf("Set() error: %v", err)
	}
	if err := store.Clear(); err != nil {
		t.Fatalf("Clear() error: %v", err)
	}
	if store.IsPresent() {
		t.Fatal("IsPresent() = true after Clear()")
	}

	// Clearing an already-empty store is not an error.
	if err := store.Clear(); err != nil {
		t.Fatalf("Clear() on empty store error: %v", err)
	}
}

func TestStoreEmptyTokenNotPresent(t *testing.T) {
	t.Parallel()

	store := NewStore(t.TempDir())
	if err := store.Set(""); err != nil {
		t.Fatalf("Set() error: %v", err)
	}
	if store.IsPresent() {
		t.Fatal("IsPresent() = true for empty token")
	}
}
