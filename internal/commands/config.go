package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"mwadmin/internal/config"

	"github.com/spf13/cobra"
)

var (
	// Variables to hold flag values
	serverURL string
	theme     string
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage console configuration",
	Long:  "View and update console configuration settings",
}

var configGetCmd = &cobra.Command{
	Use:   "get [key]",
	Short: "Get configuration value",
	Long:  "Display specific configuration value or all configuration",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadGlobalConfig()
		if err != nil {
			return fmt.Errorf("failed to load configuration: %w", err)
		}

		// If no argument is provided, show all config
		if len(args) == 0 {
			fmt.Println("Current configuration:")
			fmt.Printf("Server URL: %s\n", cfg.ResolveServerURL())
			if cfg.Email != "" {
				fmt.Printf("Email: %s\n", cfg.Email)
			}
			if cfg.Theme != "" {
				fmt.Printf("Theme: %s\n", cfg.Theme)
			}
			if envURL := os.Getenv(config.EnvServerURL); envURL != "" {
				fmt.Printf("(%s overrides the saved server URL)\n", config.EnvServerURL)
			}
			return nil
		}

		// Show specific config value
		switch args[0] {
		case "server-url":
			fmt.Println(cfg.ResolveServerURL())
		case "email":
			fmt.Println(cfg.Email)
		case "theme":
			fmt.Println(cfg.Theme)
		default:
			return fmt.Errorf("unknown configuration key: %s", args[0])
		}

		return nil
	},
}

var configSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Set configuration values",
	Long:  "Update configuration settings like server URL and theme",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadGlobalConfig()
		if err != nil {
			return fmt.Errorf("failed to load configuration: %w", err)
		}

		configUpdated := false

		if serverURL != "" {
			oldURL := cfg.ServerURL
			cfg.ServerURL = serverURL
			fmt.Printf("Server URL updated: %s -> %s\n", oldURL, serverURL)
			configUpdated = true
		}

		if theme != "" {
			if theme != "light" && theme != "dark" {
				return fmt.Errorf("unknown theme %q (valid: light, dark)", theme)
			}
			cfg.Theme = theme
			fmt.Printf("Theme set to %s\n", theme)
			configUpdated = true
		}

		if configUpdated {
			if err := config.SaveGlobalConfig(cfg); err != nil {
				return fmt.Errorf("failed to save configuration: %w", err)
			}
			fmt.Println("Configuration updated successfully.")
		} else {
			fmt.Println("No changes were made to the configuration.")
		}

		return nil
	},
}

var configPathsCmd = &cobra.Command{
	Use:   "paths",
	Short: "Show configuration file paths",
	Long:  "Display paths to the configuration and session token files",
	RunE: func(cmd *cobra.Command, args []string) error {
		configDir, err := config.GetGlobalConfigDir()
		if err != nil {
			return err
		}
		configPath := filepath.Join(configDir, "config.json")
		tokenPath := filepath.Join(configDir, ".admin_token")

		fmt.Printf("Config directory: %s\n", configDir)
		fmt.Printf("Config file: %s\n", configPath)
		fmt.Printf("Session token file: %s\n", tokenPath)

		fmt.Println("\nExistence status:")
		if _, err := os.Stat(configPath); os.IsNotExist(err) {
			fmt.Println("- Config file: Does not exist")
		} else {
			fmt.Println("- Config file: Exists")
		}
		if _, err := os.Stat(tokenPath); os.IsNotExist(err) {
			fmt.Println("- Session token: Does not exist")
		} else {
			fmt.Println("- Session token: Exists")
		}

		return nil
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configGetCmd)
	configCmd.AddCommand(configSetCmd)
	configCmd.AddCommand(configPathsCmd)

	configSetCmd.Flags().StringVar(&serverURL, "server-url", "", "Set API server URL")
	configSetCmd.Flags().StringVar(&theme, "theme", "", "Set dashboard theme (light|dark)")
}
