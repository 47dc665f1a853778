package commands

import (
	"fmt"

	"mwadmin/internal/models"
	"mwadmin/internal/util"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var (
	userRoleFilter string
	userPage       int
	userLimit      int
)

var usersCmd = &cobra.Command{
	Use:   "users",
	Short: "Browse registered users",
}

var usersListCmd = &cobra.Command{
	Use:   "list",
	Short: "List registered users",
	RunE: func(cmd *cobra.Command, args []string) error {
		_, client, err := requireAdmin(cmd)
		if err != nil {
			return err
		}

		params := models.UserListParams{Page: userPage, Limit: userLimit}
		if userRoleFilter != "" && userRoleFilter != "all" {
			role := models.Role(userRoleFilter)
			if role != models.RoleAdmin && role != models.RoleUser {
				return fmt.Errorf("unknown role %q (valid: admin, user)", userRoleFilter)
			}
			params.Role = role
		}

		list, err := client.ListUsers(cmd.Context(), params)
		if err != nil {
			return fmt.Errorf("failed to list users: %w", err)
		}

		if len(list.Users) == 0 {
			fmt.Println("No users found")
			return nil
		}

		fmt.Printf("%-24s  %-24s  %-28s  %-6s  %s\n", "ID", "NAME", "EMAIL", "ROLE", "JOINED")
		admins := 0
		for _, u := range list.Users {
			fmt.Printf("%-24s  %-24s  %-28s  ", u.ID, util.Truncate(u.FullName(), 24), util.Truncate(u.Email, 28))
			if u.Role == models.RoleAdmin {
				admins++
				color.New(color.FgYellow).Printf("%-6s", u.Role)
			} else {
				fmt.Printf("%-6s", u.Role)
			}
			fmt.Printf("  %s\n", u.CreatedAt.Local().Format("2006-01-02"))
		}

		fmt.Printf("\n%d shown (%d admins, %d users)", len(list.Users), admins, len(list.Users)-admins)
		if list.Pagination.TotalUsers > 0 {
			fmt.Printf(", %d total", list.Pagination.TotalUsers)
		}
		fmt.Println()
		return nil
	},
}

func init() {
	rootCmd.AddCommand(usersCmd)
	usersCmd.AddCommand(usersListCmd)

	usersListCmd.Flags().StringVar(&userRoleFilter, "role", "", "Filter by role (admin|user)")
	usersListCmd.Flags().IntVar(&userPage, "page", 0, "Page number")
	usersListCmd.Flags().IntVar(&userLimit, "limit", 50, "Page size")
}
