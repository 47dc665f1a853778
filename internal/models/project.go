package models

import (
	"net/url"
	"strconv"
	"time"
)

// ProjectStatus enumerates the states a project submission moves through.
type ProjectStatus string

const (
	StatusPending    ProjectStatus = "pending"
	StatusInReview   ProjectStatus = "in-review"
	StatusApproved   ProjectStatus = "approved"
	StatusRejected   ProjectStatus = "rejected"
	StatusInProgress ProjectStatus = "in-progress"
	StatusCompleted  ProjectStatus = "completed"
)

// AllProjectStatuses lists every valid status, in workflow order.
var AllProjectStatuses = []ProjectStatus{
	StatusPending,
	StatusInReview,
	StatusApproved,
	StatusRejected,
	StatusInProgress,
	StatusCompleted,
}

func (s ProjectStatus) Valid() bool {
	for _, known := range AllProjectStatuses {
		if s == known {
			return true
		}
	}
	return false
}

// Project represents a customer project submission. Submissions are
// created by the public-facing site; this console only transitions
// their status or deletes them.
type Project struct {
	ID          string        `json:"_id"`
	UserName    string        `json:"userName"`
	UserEmail   string        `json:"userEmail"`
	ProjectType string        `json:"projectType"`
	Budget      string        `json:"budget,omitempty"`
	Timeline    string        `json:"timeline,omitempty"`
	Description string        `json:"description,omitempty"`
	Status      ProjectStatus `json:"status"`
	SubmittedAt time.Time     `json:"submittedAt"`
}

// ProjectListParams are the query parameters for the project listing.
type ProjectListParams struct {
	Page      int
	Limit     int
	SortBy    string
	SortOrder string
	Status    ProjectStatus
}

func (p ProjectListParams) Query() url.Values {
	q := url.Values{}
	if p.Page > 0 {
		q.Set("page", strconv.Itoa(p.Page))
	}
	if p.Limit > 0 {
		q.Set("limit", strconv.Itoa(p.Limit))
	}
	if p.SortBy != "" {
		q.Set("sortBy", p.SortBy)
	}
	if p.SortOrder != "" {
		q.Set("sortOrder", p.SortOrder)
	}
	if p.Status != "" {
		q.Set("status", string(p.Status))
	}
	return q
}
