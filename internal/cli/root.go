// Package cli provides the command-line interface for user administration.
package cli

import (
	"docuchat/internal/api"
	"docuchat/internal/config"
	"github.com/spf13/cobra"
)

var (
	// Version is set at build time.
	Version = "0.1.0"

	// Global flags
	adminURL string

	// Global config and admin client
	cfg         config.Config
	adminClient *api.AdminClient
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "docuchat-admin",
	Short: "User administration for the DocuChat services",
	Long: `docuchat-admin manages users, tokens and Q/A history through the
DocuChat admin service. Every subcommand performs one request against the
remote API; nothing is stored locally.

Run without a subcommand to enter the interactive menu.`,
	Version: Version,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if cmd.Name() == "version" || cmd.Name() == "help" {
			return nil
		}

		cfg = config.Load()
		if adminURL != "" {
			cfg.AdminURL = adminURL
		}

		adminClient = api.NewAdmin(cfg.AdminURL, cfg.Timeout)
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runMenu(cmd.Context())
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	// cobra skips PersistentPostRun when RunE fails, so the client is
	// released here to cover every exit path.
	defer func() {
		if adminClient != nil {
			adminClient.Close()
		}
	}()
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&adminURL, "url", "", "admin service base URL (default from DOCUCHAT_ADMIN_URL)")

	rootCmd.AddCommand(createCmd)
	rootCmd.AddCommand(getCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(refreshTokenCmd)
	rootCmd.AddCommand(addQACmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(deleteCmd)
	rootCmd.AddCommand(listCmd)
}
