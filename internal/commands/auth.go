package commands

import (
	"fmt"
	"syscall"
	"time"

	"mwadmin/internal/api"
	"mwadmin/internal/config"
	"mwadmin/internal/guard"
	"mwadmin/internal/models"

	"github.com/charmbracelet/x/term"
	"github.com/fatih/color"
	"github.com/golang-jwt/jwt/v5"
	"github.com/spf13/cobra"
)

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Log in to the MustardWorks backend",
	Long:  "Authenticate with admin credentials to enable the other console commands",
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newClient()
		if err != nil {
			return err
		}

		var email string
		fmt.Print("Email: ")
		fmt.Scanln(&email)

		fmt.Print("Password: ")
		passwordBytes, err := term.ReadPassword(uintptr(syscall.Stdin))
		if err != nil {
			return fmt.Errorf("error reading password: %w", err)
		}
		fmt.Println() // Add a newline after password input

		if _, err := client.Login(cmd.Context(), email, string(passwordBytes)); err != nil {
			return fmt.Errorf("login failed: %w", err)
		}

		// The token alone does not prove admin access; verify the role
		// claim before treating the login as successful.
		admin, err := client.CurrentUser(cmd.Context())
		if err != nil {
			if clearErr := client.ClearSession(); clearErr != nil {
				logger.Error().Err(clearErr).Msg("failed to clear session")
			}
			return fmt.Errorf("could not verify identity: %w", err)
		}

		if !admin.IsAdmin() {
			if clearErr := client.ClearSession(); clearErr != nil {
				logger.Error().Err(clearErr).Msg("failed to clear session")
			}
			color.Red("Access denied. Admin privileges required.")
			return fmt.Errorf("%w", models.ErrAccessDenied)
		}

		globalConfig.AdminID = admin.ID
		globalConfig.Email = admin.Email
		globalConfig.Name = admin.FullName()

		if err := config.SaveGlobalConfig(globalConfig); err != nil {
			return fmt.Errorf("error saving config: %w", err)
		}

		color.Green("Successfully logged in as %s", admin.Email)
		return nil
	},
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Log out from the MustardWorks backend",
	Long:  "Invalidate the session server-side and remove the saved token",
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newClient()
		if err != nil {
			return err
		}

		if err := client.Logout(cmd.Context()); err != nil {
			return fmt.Errorf("error during logout: %w", err)
		}

		globalConfig.AdminID = ""
		globalConfig.Email = ""
		globalConfig.Name = ""

		if err := config.SaveGlobalConfig(globalConfig); err != nil {
			return fmt.Errorf("error saving config: %w", err)
		}

		fmt.Println("Successfully logged out")
		return nil
	},
}

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show current admin information",
	Long:  "Display information about the currently logged in admin",
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newClient()
		if err != nil {
			return err
		}

		if !client.IsAuthenticated() {
			fmt.Println("You are not logged in")
			return nil
		}

		admin, err := guard.New(client, logger).Check(cmd.Context())
		if err != nil {
			fmt.Println("You are not logged in")
			return nil
		}

		fmt.Printf("Logged in as: %s\n", admin.Email)
		if name := admin.FullName(); name != "" {
			fmt.Printf("Name: %s\n", name)
		}
		fmt.Printf("Role: %s\n", admin.Role)
		fmt.Printf("Server: %s\n", globalConfig.ResolveServerURL())

		printTokenClaims(client)
		return nil
	},
}

// printTokenClaims decodes the stored token for display. The decode is
// unverified; the backend remains the authority on validity.
func printTokenClaims(client *api.Client) {
	tokenString, err := client.Token()
	if err != nil || tokenString == "" {
		return
	}

	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(tokenString, claims); err != nil {
		return
	}

	if exp, err := claims.GetExpirationTime(); err == nil && exp != nil {
		fmt.Printf("Token expires: %s\n", exp.Local().Format(time.RFC1123))
	}
	if iat, err := claims.GetIssuedAt(); err == nil && iat != nil {
		fmt.Printf("Token issued: %s\n", iat.Local().Format(time.RFC1123))
	}
}

func init() {
	rootCmd.AddCommand(loginCmd)
	rootCmd.AddCommand(logoutCmd)
	rootCmd.AddCommand(whoamiCmd)
}
