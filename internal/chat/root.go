// Package chat provides the command-line interface for the DocuChat agent
// service: an interactive question-answering shell plus one-shot subcommands.
package chat

import (
	"fmt"

	"docuchat/internal/api"
	"docuchat/internal/config"
	"github.com/spf13/cobra"
)

var (
	// Version is set at build time.
	Version = "0.1.0"

	// Global flags
	agentURL   string
	token      string
	sessionID  string
	noGreeting bool

	// Global config and agent client
	cfg         config.Config
	agentClient *api.AgentClient
	theme       = defaultTheme
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "docuchat",
	Short: "Ask questions about your documents",
	Long: `docuchat talks to the DocuChat agent service: ask questions, upload and
manage documents, and request summaries and topics.

Run without a subcommand for the interactive shell. Authentication for
document operations comes from --token or the APP_API_TOKEN environment
variable.`,
	Version: Version,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if cmd.Name() == "version" || cmd.Name() == "help" {
			return nil
		}

		cfg = config.Load()
		if agentURL != "" {
			cfg.AgentURL = agentURL
		}
		if token != "" {
			cfg.Token = token
		}

		agentClient = api.NewAgent(cfg.AgentURL, cfg.Token, sessionID, cfg.Timeout)
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Print(header())
		if !noGreeting {
			if err := startupGreeting(cmd.Context()); err != nil {
				return err
			}
		}
		return runShell(cmd.Context())
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	// cobra skips PersistentPostRun when RunE fails, so the client is
	// released here to cover every exit path.
	defer func() {
		if agentClient != nil {
			agentClient.Close()
		}
	}()
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&agentURL, "url", "", "agent service base URL (default from DOCUCHAT_AGENT_URL)")
	rootCmd.PersistentFlags().StringVarP(&token, "token", "t", "", "bearer token (default from APP_API_TOKEN)")
	rootCmd.PersistentFlags().StringVar(&sessionID, "session", "", "session identifier (default "+api.DefaultSessionID+")")
	rootCmd.Flags().BoolVar(&noGreeting, "no-greeting", false, "skip the startup greeting")

	rootCmd.AddCommand(askCmd)
	rootCmd.AddCommand(docsCmd)
	rootCmd.AddCommand(uploadCmd)
	rootCmd.AddCommand(deleteDocCmd)
	rootCmd.AddCommand(summaryCmd)
	rootCmd.AddCommand(topicsCmd)
	rootCmd.AddCommand(healthCmd)
}
