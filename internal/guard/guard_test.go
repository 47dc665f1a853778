package guard

import (
	"context"
	"errors"
	"testing"

	"mwadmin/internal/models"

	"github.com/rs/zerolog"
)

type fakeAuthAPI struct {
	authenticated    bool
	user             *models.User
	userErr          error
	currentUserCalls int
	clearCalls       int
}

func (f *fakeAuthAPI) IsAuthenticated() bool {
	return f.authenticated
}

func (f *fakeAuthAPI) CurrentUser(ctx context.Context) (*models.User, error) {
	f.currentUserCalls++
	return f.user, f.userErr
}

func (f *fakeAuthAPI) ClearSession() error {
	f.clearCalls++
	f.authenticated = false
	return nil
}

func TestCheckWithoutTokenSkipsCurrentUser(t *testing.T) {
	t.Parallel()

	api := &fakeAuthAPI{authenticated: false}
	g := New(api, zerolog.Nop())

	_, err := g.Check(context.Background())
	if !errors.Is(err, models.ErrNotAuthenticated) {
		t.Fatalf("error = %v, want ErrNotAuthenticated", err)
	}
	if api.currentUserCalls != 0 {
		t.Fatalf("CurrentUser called %d times with no token", api.currentUserCalls)
	}
	if g.State() != StateUnauthorized {
		t.Fatalf("State() = %v, want unauthorized", g.State())
	}
}

func TestCheckNonAdminClearsSession(t *testing.T) {
	t.Parallel()

	api := &fakeAuthAPI{
		authenticated: true,
		user:          &models.User{Email: "u@b.com", Role: models.RoleUser},
	}
	g := New(api, zerolog.Nop())

	_, err := g.Check(context.Background())
	if !errors.Is(err, models.ErrAccessDenied) {
		t.Fatalf("error = %v, want ErrAccessDenied", err)
	}
	if api.clearCalls != 1 {
		t.Fatalf("ClearSession called %d times, want 1", api.clearCalls)
	}
	if g.State() != StateUnauthorized {
		t.Fatalf("State() = %v, want unauthorized", g.State())
	}
}

func TestCheckFetchFailureClearsSession(t *testing.T) {
	t.Parallel()

	api := &fakeAuthAPI{
		authenticated: true,
		userErr:       errors.New("connection refused"),
	}
	g := New(api, zerolog.Nop())

	if _, err := g.Check(context.Background()); err == nil {
		t.Fatal("Check() succeeded despite fetch failure")
	}
	if api.clearCalls != 1 {
		t.Fatalf("ClearSession called %d times, want 1", api.clearCalls)
	}
}

func TestCheckSessionExpiredDoesNotClearTwice(t *testing.T) {
	t.Parallel()

	api := &fakeAuthAPI{
		authenticated: true,
		userErr:       models.ErrSessionExpired,
	}
	g := New(api, zerolog.Nop())

	_, err := g.Check(context.Background())
	if !errors.Is(err, models.ErrSessionExpired) {
		t.Fatalf("error = %v, want ErrSessionExpired", err)
	}
	// The API client clears the session on 401; the guard must not
	// issue a second clear.
	if api.clearCalls != 0 {
		t.Fatalf("ClearSession called %d times, want 0", api.clearCalls)
	}
}

func TestCheckAdminAuthorized(t *testing.T) {
	t.Parallel()

	api := &fakeAuthAPI{
		authenticated: true,
		user:          &models.User{Email: "a@b.com", Role: models.RoleAdmin},
	}
	g := New(api, zerolog.Nop())

	user, err := g.Check(context.Background())
	if err != nil {
		t.Fatalf("Check() error: %v", err)
	}
	if user.Email != "a@b.com" {
		t.Fatalf("user = %+v, want a@b.com", user)
	}
	if g.State() != StateAuthorized {
		t.Fatalf("State() = %v, want authorized", g.State())
	}
	if api.clearCalls != 0 {
		t.Fatalf("ClearSession called %d times for an admin", api.clearCalls)
	}
}

// Each check re-verifies; there is no cross-check cache.
func TestCheckRerunsEveryTime(t *testing.T) {
	t.Parallel()

	api := &fakeAuthAPI{
		authenticated: true,
		user:          &models.User{Email: "a@b.com", Role: models.RoleAdmin},
	}
	g := New(api, zerolog.Nop())

	for i := 0; i < 3; i++ {
		if _, err := g.Check(context.Background()); err != nil {
			t.Fatalf("Check() #%d error: %v", i+1, err)
		}
	}
	if api.currentUserCalls != 3 {
		t.Fatalf("CurrentUser called %d times, want 3", api.currentUserCalls)
	}
}
