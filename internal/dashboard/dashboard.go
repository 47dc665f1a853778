// Package dashboard aggregates the summary view's numbers from three
// independent backend reads.
package dashboard

import (
	"context"

	"mwadmin/internal/api"
	"mwadmin/internal/models"

	"golang.org/x/sync/errgroup"
)

const recentProjectCount = 5

// Stats holds the combined dashboard figures.
type Stats struct {
	TotalProjects    int
	PendingProjects  int
	ApprovedProjects int
	RejectedProjects int
	TotalGallery     int
	ActiveGallery    int
	TotalUsers       int
	RecentProjects   []models.Project
}

// Load issues the projects, gallery, and user-count reads concurrently
// and waits for all three. A user-count failure is tolerated and
// defaults to zero; a failure of either other read fails the whole
// load.
func Load(ctx context.Context, client *api.Client) (*Stats, error) {
	g, ctx := errgroup.WithContext(ctx)

	var projects []models.Project
	var items []models.GalleryItem
	var userCount int

	g.Go(func() error {
		list, err := client.ListProjects(ctx, models.ProjectListParams{
			Limit:     100,
			SortBy:    "submittedAt",
			SortOrder: "desc",
		})
		if err != nil {
			return err
		}
		projects = list.Projects
		return nil
	})

	g.Go(func() error {
		list, err := client.ListGalleryItems(ctx, models.GalleryListParams{Limit: 100})
		if err != nil {
			return err
		}
		items = list.Items
		return nil
	})

	g.Go(func() error {
		list, err := client.ListUsers(ctx, models.UserListParams{Limit: 1})
		if err != nil {
			// Tolerated: the users endpoint is newer than the rest of
			// the backend and the dashboard still works without it.
			userCount = 0
			return nil
		}
		userCount = list.Pagination.TotalUsers
		if userCount == 0 {
			userCount = len(list.Users)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return compute(projects, items, userCount), nil
}

// compute derives the stat figures from raw listings. Approved counts
// everything past approval, matching the public site's definition.
func compute(projects []models.Project, items []models.GalleryItem, userCount int) *Stats {
	stats := &Stats{
		TotalProjects: len(projects),
		TotalGallery:  len(items),
		TotalUsers:    userCount,
	}

	for _, p := range projects {
		switch p.Status {
		case models.StatusPending:
			stats.PendingProjects++
		case models.StatusApproved, models.StatusInProgress, models.StatusCompleted:
			stats.ApprovedProjects++
		case models.StatusRejected:
			stats.RejectedProjects++
		}
	}

	for _, item := range items {
		if item.IsActive {
			stats.ActiveGallery++
		}
	}

	recent := recentProjectCount
	if len(projects) < recent {
		recent = len(projects)
	}
	stats.RecentProjects = projects[:recent]

	return stats
}
