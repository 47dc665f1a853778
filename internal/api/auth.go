package api

import (
	"context"
	"encoding/json"
	"fmt"

	"mwadmin/internal/models"
)

// Login exchanges credentials for a session token. The token is stored
// as a side effect; the user object from the response is returned when
// the backend includes one, and may be nil otherwise.
func (c *Client) Login(ctx context.Context, email, password string) (*models.User, error) {
	body, err := c.post(ctx, "/auth/admin/login", map[string]string{
		"email":    email,
		"password": password,
	})
	if err != nil {
		c.log.Error().Str("email", email).Err(err).Msg("login failed")
		return nil, err
	}

	token := extractToken(body)
	if token == "" {
		return nil, models.ErrNoToken
	}

	if err := c.session.Set(token); err != nil {
		return nil, fmt.Errorf("failed to save auth token: %w", err)
	}

	var user models.User
	if err := json.Unmarshal(extractUser(body), &user); err != nil || user.Email == "" {
		return nil, nil
	}
	return &user, nil
}

// CurrentUser fetches the identity the backend associates with the
// stored token.
func (c *Client) CurrentUser(ctx context.Context) (*models.User, error) {
	body, err := c.get(ctx, "/auth/me", nil)
	if err != nil {
		c.log.Error().Err(err).Msg("getCurrentUser failed")
		return nil, err
	}

	var user models.User
	if err := json.Unmarshal(extractUser(body), &user); err != nil {
		return nil, fmt.Errorf("error decoding response: %w", err)
	}
	return &user, nil
}

// Logout notifies the server, then clears the local session. The
// remote call is best-effort: the local token is dropped even when the
// server is unreachable.
func (c *Client) Logout(ctx context.Context) error {
	if c.session.IsPresent() {
		if _, err := c.post(ctx, "/auth/logout", nil); err != nil {
			c.log.Warn().Err(err).Msg("server logout failed, clearing local session anyway")
		}
	}

	// Always clear the local token regardless of the server response.
	// A 401 above already cleared it; Clear is idempotent.
	return c.session.Clear()
}

// UserList is the unwrapped users listing payload.
type UserList struct {
	Users      []models.User     `json:"users"`
	Pagination models.Pagination `json:"pagination"`
}

// ListUsers fetches the paginated user listing, optionally filtered by
// role.
func (c *Client) ListUsers(ctx context.Context, params models.UserListParams) (*UserList, error) {
	body, err := c.get(ctx, "/auth/admin/all", params.Query())
	if err != nil {
		c.log.Error().Err(err).Msg("failed to fetch users")
		return nil, err
	}

	var list UserList
	if err := json.Unmarshal(unwrapData(body), &list); err != nil {
		return nil, fmt.Errorf("error decoding response: %w", err)
	}
	return &list, nil
}
