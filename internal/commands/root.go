package commands

import (
	"errors"
	"fmt"
	"os"

	"mwadmin/internal/api"
	"mwadmin/internal/config"
	"mwadmin/internal/guard"
	"mwadmin/internal/models"
	"mwadmin/internal/session"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

var globalConfig *config.Config

var logger zerolog.Logger

var rootCmd = &cobra.Command{
	Use:   "mwadmin",
	Short: "MustardWorks Admin - console for the MustardWorks site",
	Long: `MustardWorks Admin (mwadmin) is a command-line console for MustardWorks staff.
It manages the queue of customer project submissions, curates the public image
gallery, and browses registered users. All data lives in the MustardWorks
backend; this tool is a thin authenticated client.`,
	Version: "0.1.0",
}

// Execute runs the root command
func Execute(cfg *config.Config, log zerolog.Logger) error {
	globalConfig = cfg
	logger = log
	return rootCmd.Execute()
}

// newClient builds the API client from the resolved server URL and the
// session store under the global config directory.
func newClient() (*api.Client, error) {
	configDir, err := config.GetGlobalConfigDir()
	if err != nil {
		return nil, err
	}

	if err := os.MkdirAll(configDir, 0755); err != nil {
		return nil, fmt.Errorf("error creating config directory: %w", err)
	}

	store := session.NewStore(configDir)
	return api.NewClient(globalConfig.ResolveServerURL(), store, logger), nil
}

// requireAdmin re-verifies authorization before a protected command
// runs. Every protected command goes through this independently; no
// decision is cached between commands.
func requireAdmin(cmd *cobra.Command) (*models.User, *api.Client, error) {
	client, err := newClient()
	if err != nil {
		return nil, nil, err
	}

	admin, err := guard.New(client, logger).Check(cmd.Context())
	if err != nil {
		switch {
		case errors.Is(err, models.ErrNotAuthenticated):
			return nil, nil, fmt.Errorf("you are not logged in; run 'mwadmin login' first")
		case errors.Is(err, models.ErrSessionExpired):
			return nil, nil, fmt.Errorf("your session has expired; run 'mwadmin login' again")
		case errors.Is(err, models.ErrAccessDenied):
			return nil, nil, fmt.Errorf("access denied: admin privileges required")
		}
		return nil, nil, fmt.Errorf("authorization check failed: %w", err)
	}

	return admin, client, nil
}
