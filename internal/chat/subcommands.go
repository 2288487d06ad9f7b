package chat

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	askDocID      string
	summaryLength int
)

var askCmd = &cobra.Command{
	Use:   "ask <question>",
	Short: "Ask the agent a question",
	Long: `Ask the agent a single question and print the answer.

Examples:
  docuchat ask "What can you do?"
  docuchat ask --doc 12345 "What is this document about?"`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		askQuestion(cmd.Context(), args[0], askDocID, false)
		return nil
	},
}

var docsCmd = &cobra.Command{
	Use:   "docs",
	Short: "List available documents",
	RunE: func(cmd *cobra.Command, args []string) error {
		showDocuments(cmd.Context())
		return nil
	},
}

var uploadCmd = &cobra.Command{
	Use:   "upload <file>",
	Short: "Upload a document for ingestion",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		uploadDocument(cmd.Context(), args[0])
		return nil
	},
}

var deleteDocCmd = &cobra.Command{
	Use:   "delete <filename>",
	Short: "Delete a document",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		deleteDocument(cmd.Context(), args[0])
		return nil
	},
}

var summaryCmd = &cobra.Command{
	Use:   "summary <doc-id>",
	Short: "Get a document summary",
	Long: `Generate a summary for a document.

Examples:
  docuchat summary 12345
  docuchat summary 12345 --length 300`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		showSummary(cmd.Context(), args[0], summaryLength)
		return nil
	},
}

var topicsCmd = &cobra.Command{
	Use:   "topics <doc-id>",
	Short: "Get document topics",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		showTopics(cmd.Context(), args[0])
		return nil
	},
}

var healthCmd = &cobra.Command{
	Use:   "health",
	Short: "Check the agent service is reachable",
	RunE: func(cmd *cobra.Command, args []string) error {
		if !agentClient.Health(cmd.Context()) {
			return fmt.Errorf("agent service at %s is not reachable", agentClient.BaseURL())
		}
		fmt.Println("OK")
		return nil
	},
}

func init() {
	askCmd.Flags().StringVar(&askDocID, "doc", "", "scope the question to one document ID")
	summaryCmd.Flags().IntVar(&summaryLength, "length", DefaultSummaryLength, "summary length in words")
}
