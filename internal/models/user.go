package models

import (
	"net/url"
	"strconv"
	"strings"
	"time"
)

// Role is the server-asserted attribute gating access to the console.
type Role string

const (
	RoleAdmin Role = "admin"
	RoleUser  Role = "user"
)

// User represents a registered user as the backend reports it. The
// console holds a transient in-memory copy only; nothing beyond the
// session token is persisted.
type User struct {
	ID        string    `json:"_id"`
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
	Email     string    `json:"email"`
	Role      Role      `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
}

// FullName joins first and last name, tolerating either being empty.
func (u *User) FullName() string {
	return strings.TrimSpace(u.FirstName + " " + u.LastName)
}

// IsAdmin reports whether the user holds the admin role claim.
func (u *User) IsAdmin() bool {
	return u != nil && u.Role == RoleAdmin
}

// UserListParams are the query parameters for the users listing.
type UserListParams struct {
	Page  int
	Limit int
	Role  Role
}

func (p UserListParams) Query() url.Values {
	q := url.Values{}
	if p.Page > 0 {
		q.Set("page", strconv.Itoa(p.Page))
	}
	if p.Limit > 0 {
		q.Set("limit", strconv.Itoa(p.Limit))
	}
	if p.Role != "" {
		q.Set("role", string(p.Role))
	}
	return q
}

// Pagination is the envelope's paging block for listing endpoints.
type Pagination struct {
	Page          int `json:"page"`
	TotalPages    int `json:"totalPages"`
	TotalUsers    int `json:"totalUsers"`
	TotalProjects int `json:"totalProjects"`
	TotalItems    int `json:"totalItems"`
}
