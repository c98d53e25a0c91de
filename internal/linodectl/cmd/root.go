// Package cmd implements the linodectl CLI commands
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/coderanger/linodectl/internal/linodectl/config"
)

var (
	cfgFile string
	cfg     *config.Config
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "linodectl",
	Short: "Linode API control tool",
	Long: `linodectl is a command line tool for managing Linode instances through
the legacy Linode API. It can list and power-cycle instances and show the
plans and datacenters available to the account.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.linodectl/config.yaml)")
	rootCmd.PersistentFlags().String("api-key", "", "Linode API key")
	rootCmd.PersistentFlags().Bool("debug", false, "Enable request debug logging")

	// Add commands
	rootCmd.AddCommand(newLinodeCmd())
	rootCmd.AddCommand(newAvailCmd())
	rootCmd.AddCommand(newConfigCmd())
	rootCmd.AddCommand(newVersionCmd())
}

// initConfig reads in config file and ENV variables if set
func initConfig() {
	var err error
	cfg, err = config.Load(cfgFile)
	if err != nil {
		fmt.Println("Error loading config:", err)
		os.Exit(1)
	}

	// Allow command line flags to override config file
	if apiKey, _ := rootCmd.PersistentFlags().GetString("api-key"); apiKey != "" {
		cfg.APIKey = apiKey
	}
	if debug, _ := rootCmd.PersistentFlags().GetBool("debug"); debug {
		cfg.Debug = true
	}
}
