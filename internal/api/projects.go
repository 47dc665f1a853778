package api

import (
	"context"
	"encoding/json"
	"fmt"

	"mwadmin/internal/models"
)

// ProjectList is the unwrapped project listing payload.
type ProjectList struct {
	Projects   []models.Project  `json:"projects"`
	Pagination models.Pagination `json:"pagination"`
}

// ListProjects fetches the paginated, sortable, status-filterable
// project submission queue.
func (c *Client) ListProjects(ctx context.Context, params models.ProjectListParams) (*ProjectList, error) {
	body, err := c.get(ctx, "/projects", params.Query())
	if err != nil {
		c.log.Error().Err(err).Msg("failed to fetch projects")
		return nil, err
	}

	var list ProjectList
	if err := json.Unmarshal(unwrapData(body), &list); err != nil {
		return nil, fmt.Errorf("error decoding response: %w", err)
	}
	return &list, nil
}

// UpdateProjectStatus transitions a project to the given status.
func (c *Client) UpdateProjectStatus(ctx context.Context, id string, status models.ProjectStatus) (*models.Project, error) {
	if !status.Valid() {
		return nil, fmt.Errorf("%w: %q", models.ErrInvalidStatus, status)
	}

	body, err := c.patch(ctx, "/projects/"+id+"/status", map[string]models.ProjectStatus{
		"status": status,
	})
	if err != nil {
		c.log.Error().Str("id", id).Str("status", string(status)).Err(err).Msg("failed to update project status")
		return nil, err
	}

	var project models.Project
	if raw, ok := extractField(body, "project"); ok {
		err = json.Unmarshal(raw, &project)
	} else {
		err = json.Unmarshal(unwrapData(body), &project)
	}
	if err != nil {
		return nil, fmt.Errorf("error decoding response: %w", err)
	}
	return &project, nil
}

// DeleteProject removes a project submission. Deleting an id the
// backend no longer knows is an error, surfaced unchanged.
func (c *Client) DeleteProject(ctx context.Context, id string) error {
	if _, err := c.delete(ctx, "/projects/"+id); err != nil {
		c.log.Error().Str("id", id).Err(err).Msg("failed to delete project")
		return err
	}
	return nil
}
