package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/coderanger/linodectl/internal/linodectl/config"
	"github.com/coderanger/linodectl/internal/linodectl/util"
)

// newConfigCmd creates the config command that manages CLI settings.
func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage CLI configuration",
		Long: `The config command provides subcommands for viewing and modifying
linodectl's configuration, including the API key and endpoint used for
all commands.`,
	}

	cmd.AddCommand(
		newConfigViewCmd(),
		newConfigSetCmd(),
	)

	return cmd
}

// newConfigViewCmd creates a command for displaying the merged configuration.
func newConfigViewCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "view",
		Short: "Display merged configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			// Never print the full key
			redacted := *cfg
			if len(redacted.APIKey) > 6 {
				redacted.APIKey = redacted.APIKey[:6] + "..."
			}

			if done, err := util.Print(os.Stdout, output, redacted); done || err != nil {
				return err
			}
			return util.PrintYAML(os.Stdout, redacted)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "Output format (yaml, json)")

	return cmd
}

// newConfigSetCmd creates a command for updating and saving configuration.
func newConfigSetCmd() *cobra.Command {
	var (
		apiKey string
		server string
	)

	cmd := &cobra.Command{
		Use:   "set",
		Short: "Update and save configuration",
		Example: `  # Store an API key
  linodectl config set --api-key=yourkey

  # Point at a different endpoint
  linodectl config set --server=https://api.example.com/`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if apiKey == "" && server == "" {
				return fmt.Errorf("nothing to set - pass --api-key and/or --server")
			}

			if apiKey != "" {
				cfg.APIKey = apiKey
			}
			if server != "" {
				cfg.Server = server
			}

			if err := config.Save(cfg, cfgFile); err != nil {
				return fmt.Errorf("error saving config: %w", err)
			}

			fmt.Println("Configuration updated")
			return nil
		},
	}

	cmd.Flags().StringVar(&apiKey, "api-key", "", "Linode API key")
	cmd.Flags().StringVar(&server, "server", "", "API endpoint URL")

	return cmd
}
