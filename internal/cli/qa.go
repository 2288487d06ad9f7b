package cli

import (
	"context"
	"fmt"

	"docuchat/internal/api"
	"github.com/spf13/cobra"
)

var (
	qaUserID     string
	qaQuestion   string
	qaAnswer     string
	histUserID   string
	histLimit    int
)

var addQACmd = &cobra.Command{
	Use:   "add-qa",
	Short: "Append a Q/A pair to a user's history",
	Long: `Append a question/answer pair to a user's history on the admin service.

Example:
  docuchat-admin add-qa --user-id 42 --question "What is X?" --answer "X is ..."`,
	RunE: runAddQA,
}

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show a user's Q/A history",
	Long: `Show a user's Q/A history as a table. Long questions and answers are
shortened for display.

Examples:
  docuchat-admin history --user-id 42
  docuchat-admin history --user-id 42 --limit 20`,
	RunE: runHistory,
}

func init() {
	addQACmd.Flags().StringVar(&qaUserID, "user-id", "", "user ID")
	addQACmd.Flags().StringVar(&qaQuestion, "question", "", "question text")
	addQACmd.Flags().StringVar(&qaAnswer, "answer", "", "answer text")
	addQACmd.MarkFlagRequired("user-id")
	addQACmd.MarkFlagRequired("question")
	addQACmd.MarkFlagRequired("answer")

	historyCmd.Flags().StringVar(&histUserID, "user-id", "", "user ID")
	historyCmd.Flags().IntVarP(&histLimit, "limit", "n", 100, "max entries to fetch")
	historyCmd.MarkFlagRequired("user-id")
}

func runAddQA(cmd *cobra.Command, args []string) error {
	addQA(cmd.Context(), qaUserID, qaQuestion, qaAnswer)
	return nil
}

func runHistory(cmd *cobra.Command, args []string) error {
	showHistory(cmd.Context(), histUserID, histLimit)
	return nil
}

// addQA appends a Q/A pair and prints the outcome. Returns the updated count,
// or nil on failure.
func addQA(ctx context.Context, userID, question, answer string) *api.AddQAResult {
	res, err := adminClient.AddQA(ctx, userID, question, answer)
	if err != nil {
		fmt.Println(errorLine("add Q/A", err))
		return nil
	}
	if res == nil {
		fmt.Printf("User with ID %s not found.\n", userID)
		return nil
	}

	fmt.Printf("Q/A added to history. Total history items: %d\n", res.TotalHistoryItems)
	return res
}

// showHistory fetches and prints a user's history. Returns the page, or nil
// if the user does not exist or the request failed.
func showHistory(ctx context.Context, userID string, limit int) *api.HistoryPage {
	page, err := adminClient.History(ctx, userID, limit)
	if err != nil {
		fmt.Println(errorLine("get history", err))
		return nil
	}
	if page == nil {
		fmt.Printf("User with ID %s not found.\n", userID)
		return nil
	}

	fmt.Print(renderHistory(page))
	return page
}
