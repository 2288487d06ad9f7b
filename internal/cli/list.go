package cli

import (
	"context"
	"fmt"

	"docuchat/internal/api"
	"github.com/spf13/cobra"
)

var (
	listLimit int
	listSkip  int
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List users",
	Long: `List users known to the admin service.

Examples:
  docuchat-admin list
  docuchat-admin list --limit 10 --skip 20`,
	RunE: runList,
}

func init() {
	listCmd.Flags().IntVarP(&listLimit, "limit", "n", 50, "max users to list")
	listCmd.Flags().IntVar(&listSkip, "skip", 0, "users to skip")
}

func runList(cmd *cobra.Command, args []string) error {
	listUsers(cmd.Context(), listLimit, listSkip)
	return nil
}

// listUsers fetches and prints a page of users. Returns the page, or nil on
// failure.
func listUsers(ctx context.Context, limit, skip int) *api.UserPage {
	page, err := adminClient.ListUsers(ctx, limit, skip)
	if err != nil {
		fmt.Println(errorLine("list users", err))
		return nil
	}

	fmt.Print(renderUserList(page))
	return page
}
