// Package guard gates protected surfaces behind the backend's current
// authorization answer. Every entry re-verifies from scratch; there is
// no cached decision, so the backend is always trusted over local
// state.
package guard

import (
	"context"
	"errors"

	"mwadmin/internal/models"

	"github.com/rs/zerolog"
)

// State tracks one authorization check. Terminal per check; a new
// Check starts over from StateChecking.
type State int

const (
	StateUnknown State = iota
	StateChecking
	StateAuthorized
	StateUnauthorized
)

func (s State) String() string {
	switch s {
	case StateChecking:
		return "checking"
	case StateAuthorized:
		return "authorized"
	case StateUnauthorized:
		return "unauthorized"
	default:
		return "unknown"
	}
}

// AuthAPI is the slice of the API client the guard needs.
type AuthAPI interface {
	IsAuthenticated() bool
	CurrentUser(ctx context.Context) (*models.User, error)
	ClearSession() error
}

type Guard struct {
	api   AuthAPI
	state State
	log   zerolog.Logger
}

func New(api AuthAPI, logger zerolog.Logger) *Guard {
	return &Guard{api: api, state: StateUnknown, log: logger}
}

// State returns the outcome of the most recent check.
func (g *Guard) State() State {
	return g.state
}

// Check verifies the session end to end: token present, identity
// fetchable, role is admin. Without a token it fails fast with no
// network call. A fetch failure or a non-admin role clears the session
// and denies — this console has exactly one privilege tier, so "not
// admin" means "not logged in".
func (g *Guard) Check(ctx context.Context) (*models.User, error) {
	g.state = StateChecking

	if !g.api.IsAuthenticated() {
		g.state = StateUnauthorized
		return nil, models.ErrNotAuthenticated
	}

	user, err := g.api.CurrentUser(ctx)
	if err != nil {
		// A 401 already cleared the session in the client; anything
		// else still holds a token we no longer trust.
		if !errors.Is(err, models.ErrSessionExpired) {
			if clearErr := g.api.ClearSession(); clearErr != nil {
				g.log.Error().Err(clearErr).Msg("failed to clear session")
			}
		}
		g.log.Warn().Err(err).Msg("auth check failed")
		g.state = StateUnauthorized
		return nil, err
	}

	if !user.IsAdmin() {
		if clearErr := g.api.ClearSession(); clearErr != nil {
			g.log.Error().Err(clearErr).Msg("failed to clear session")
		}
		g.log.Warn().Str("role", string(user.Role)).Msg("user is not admin")
		g.state = StateUnauthorized
		return nil, models.ErrAccessDenied
	}

	g.state = StateAuthorized
	return user, nil
}
