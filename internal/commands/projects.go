package commands

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"mwadmin/internal/models"
	"mwadmin/internal/util"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var (
	projectStatusFilter string
	projectPage         int
	projectLimit        int
	projectSortBy       string
	projectSortOrder    string
	projectDeleteForce  bool
)

var projectsCmd = &cobra.Command{
	Use:   "projects",
	Short: "Manage project submissions",
	Long:  "List, transition, and delete customer project submissions",
}

var projectsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List project submissions",
	RunE: func(cmd *cobra.Command, args []string) error {
		_, client, err := requireAdmin(cmd)
		if err != nil {
			return err
		}

		params := models.ProjectListParams{
			Page:      projectPage,
			Limit:     projectLimit,
			SortBy:    projectSortBy,
			SortOrder: projectSortOrder,
		}
		if projectStatusFilter != "" && projectStatusFilter != "all" {
			status := models.ProjectStatus(projectStatusFilter)
			if !status.Valid() {
				return fmt.Errorf("%w: %q (valid: %s)", models.ErrInvalidStatus, projectStatusFilter, statusList())
			}
			params.Status = status
		}

		list, err := client.ListProjects(cmd.Context(), params)
		if err != nil {
			return fmt.Errorf("failed to list projects: %w", err)
		}

		if len(list.Projects) == 0 {
			fmt.Println("No projects found")
			return nil
		}

		fmt.Printf("%-24s  %-20s  %-14s  %-12s  %-12s\n", "ID", "NAME", "TYPE", "STATUS", "SUBMITTED")
		for _, p := range list.Projects {
			fmt.Printf("%-24s  %-20s  %-14s  ", p.ID, util.Truncate(p.UserName, 20), util.Truncate(p.ProjectType, 14))
			statusColor(p.Status).Printf("%-12s", p.Status)
			fmt.Printf("  %s\n", p.SubmittedAt.Local().Format("2006-01-02"))
		}

		if list.Pagination.TotalProjects > 0 {
			fmt.Printf("\n%d projects total\n", list.Pagination.TotalProjects)
		}
		return nil
	},
}

var projectsShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show one project submission in full",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		_, client, err := requireAdmin(cmd)
		if err != nil {
			return err
		}

		// There is no single-project endpoint; filter the listing.
		list, err := client.ListProjects(cmd.Context(), models.ProjectListParams{Limit: 100})
		if err != nil {
			return fmt.Errorf("failed to fetch projects: %w", err)
		}

		for _, p := range list.Projects {
			if p.ID != args[0] {
				continue
			}
			fmt.Printf("ID:        %s\n", p.ID)
			fmt.Printf("Name:      %s\n", p.UserName)
			fmt.Printf("Email:     %s\n", p.UserEmail)
			fmt.Printf("Type:      %s\n", p.ProjectType)
			fmt.Printf("Budget:    %s\n", orNA(p.Budget))
			fmt.Printf("Timeline:  %s\n", orNA(p.Timeline))
			fmt.Print("Status:    ")
			statusColor(p.Status).Println(string(p.Status))
			fmt.Printf("Submitted: %s\n", p.SubmittedAt.Local().Format("2006-01-02 15:04"))
			if p.Description != "" {
				fmt.Printf("\n%s\n", p.Description)
			}
			return nil
		}

		return fmt.Errorf("project %s not found", args[0])
	},
}

var projectsStatusCmd = &cobra.Command{
	Use:   "status <id> <status>",
	Short: "Transition a project's status",
	Long:  "Move a project submission to one of: " + statusList(),
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, status := args[0], models.ProjectStatus(args[1])

		if !util.IsObjectID(id) {
			return fmt.Errorf("%q does not look like a project id", id)
		}
		if !status.Valid() {
			return fmt.Errorf("%w: %q (valid: %s)", models.ErrInvalidStatus, args[1], statusList())
		}

		_, client, err := requireAdmin(cmd)
		if err != nil {
			return err
		}

		project, err := client.UpdateProjectStatus(cmd.Context(), id, status)
		if err != nil {
			return fmt.Errorf("failed to update status: %w", err)
		}

		color.Green("Project %s is now %s", project.ID, project.Status)
		return nil
	},
}

var projectsDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a project submission",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id := args[0]
		if !util.IsObjectID(id) {
			return fmt.Errorf("%q does not look like a project id", id)
		}

		if !projectDeleteForce && !confirm(fmt.Sprintf("Delete project %s?", id)) {
			fmt.Println("Aborted")
			return nil
		}

		_, client, err := requireAdmin(cmd)
		if err != nil {
			return err
		}

		if err := client.DeleteProject(cmd.Context(), id); err != nil {
			return fmt.Errorf("failed to delete project: %w", err)
		}

		color.Green("Project %s deleted", id)
		return nil
	},
}

func statusColor(s models.ProjectStatus) *color.Color {
	switch s {
	case models.StatusPending:
		return color.New(color.FgYellow)
	case models.StatusInReview:
		return color.New(color.FgCyan)
	case models.StatusApproved, models.StatusCompleted:
		return color.New(color.FgGreen)
	case models.StatusInProgress:
		return color.New(color.FgBlue)
	case models.StatusRejected:
		return color.New(color.FgRed)
	}
	return color.New(color.FgWhite)
}

func statusList() string {
	names := make([]string, len(models.AllProjectStatuses))
	for i, s := range models.AllProjectStatuses {
		names[i] = string(s)
	}
	return strings.Join(names, ", ")
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}

func confirm(prompt string) bool {
	fmt.Printf("%s [y/N]: ", prompt)
	scanner := bufio.NewScanner(os.Stdin)
	if !scanner.Scan() {
		return false
	}
	answer := strings.ToLower(strings.TrimSpace(scanner.Text()))
	return answer == "y" || answer == "yes"
}

func init() {
	rootCmd.AddCommand(projectsCmd)
	projectsCmd.AddCommand(projectsListCmd)
	projectsCmd.AddCommand(projectsShowCmd)
	projectsCmd.AddCommand(projectsStatusCmd)
	projectsCmd.AddCommand(projectsDeleteCmd)

	projectsListCmd.Flags().StringVar(&projectStatusFilter, "status", "", "Filter by status ("+statusList()+")")
	projectsListCmd.Flags().IntVar(&projectPage, "page", 0, "Page number")
	projectsListCmd.Flags().IntVar(&projectLimit, "limit", 50, "Page size")
	projectsListCmd.Flags().StringVar(&projectSortBy, "sort", "submittedAt", "Sort field")
	projectsListCmd.Flags().StringVar(&projectSortOrder, "order", "desc", "Sort order (asc|desc)")

	projectsDeleteCmd.Flags().BoolVarP(&projectDeleteForce, "force", "f", false, "Skip confirmation")
}
