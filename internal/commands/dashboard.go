package commands

import (
	"fmt"

	"mwadmin/internal/dashboard"
	"mwadmin/internal/ui"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var dashboardPlain bool

var dashboardCmd = &cobra.Command{
	Use:   "dashboard",
	Short: "Show the aggregate dashboard",
	Long:  "Combined view of project, gallery, and user figures, refreshed live in the terminal",
	RunE: func(cmd *cobra.Command, args []string) error {
		admin, client, err := requireAdmin(cmd)
		if err != nil {
			return err
		}

		if dashboardPlain {
			stats, err := dashboard.Load(cmd.Context(), client)
			if err != nil {
				return fmt.Errorf("failed to load dashboard: %w", err)
			}
			printStats(stats)
			return nil
		}

		model := ui.NewModel(client, admin, globalConfig.Theme)
		program := tea.NewProgram(model, tea.WithAltScreen())
		if _, err := program.Run(); err != nil {
			return fmt.Errorf("error running dashboard: %w", err)
		}
		return nil
	},
}

func printStats(stats *dashboard.Stats) {
	fmt.Printf("Total projects:   %d\n", stats.TotalProjects)
	color.Yellow("Pending review:   %d", stats.PendingProjects)
	color.Green("Approved:         %d", stats.ApprovedProjects)
	color.Red("Rejected:         %d", stats.RejectedProjects)
	fmt.Printf("Gallery items:    %d (%d visible)\n", stats.TotalGallery, stats.ActiveGallery)
	fmt.Printf("Registered users: %d\n", stats.TotalUsers)

	if len(stats.RecentProjects) > 0 {
		fmt.Println("\nRecent submissions:")
		for _, p := range stats.RecentProjects {
			fmt.Printf("  %-20s  %-14s  ", p.UserName, p.ProjectType)
			statusColor(p.Status).Println(string(p.Status))
		}
	}
}

func init() {
	rootCmd.AddCommand(dashboardCmd)
	dashboardCmd.Flags().BoolVar(&dashboardPlain, "plain", false, "Print once instead of the interactive view")
}
