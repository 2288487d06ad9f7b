package cli

import (
	"context"
	"fmt"

	"docuchat/internal/api"
	"github.com/spf13/cobra"
)

var (
	createEmail      string
	createName       string
	createTokenHours int
)

var createCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a new user",
	Long: `Create a new user on the admin service.

The service returns the new user's ID and an access token; both are printed
in full so they can be handed to the user.

Examples:
  docuchat-admin create --email jane@example.com --name "Jane Doe"
  docuchat-admin create --email jane@example.com --name "Jane Doe" --token-hours 72`,
	RunE: runCreate,
}

func init() {
	createCmd.Flags().StringVar(&createEmail, "email", "", "user email address")
	createCmd.Flags().StringVar(&createName, "name", "", "user display name")
	createCmd.Flags().IntVar(&createTokenHours, "token-hours", 24, "token validity in hours")
	createCmd.MarkFlagRequired("email")
	createCmd.MarkFlagRequired("name")
}

func runCreate(cmd *cobra.Command, args []string) error {
	createUser(cmd.Context(), createEmail, createName, createTokenHours)
	return nil
}

// createUser performs the request and prints the outcome. Returns the created
// user, or nil on failure.
func createUser(ctx context.Context, email, name string, tokenHours int) *api.CreatedUser {
	res, err := adminClient.CreateUser(ctx, email, name, tokenHours)
	if err != nil {
		fmt.Println(errorLine("create user", err))
		return nil
	}
	fmt.Print(renderCreatedUser(res))
	return res
}
