package cli

import (
	"context"
	"fmt"

	"docuchat/internal/api"
	"github.com/spf13/cobra"
)

var (
	getUserID string
	getEmail  string
)

var getCmd = &cobra.Command{
	Use:   "get",
	Short: "Get a user by ID or email",
	Long: `Look up a single user by ID or by email address.

Exactly one of --user-id and --email must be given.

Examples:
  docuchat-admin get --user-id 42
  docuchat-admin get --email jane@example.com`,
	RunE: runGet,
}

func init() {
	getCmd.Flags().StringVar(&getUserID, "user-id", "", "user ID")
	getCmd.Flags().StringVar(&getEmail, "email", "", "user email address")
	getCmd.MarkFlagsOneRequired("user-id", "email")
	getCmd.MarkFlagsMutuallyExclusive("user-id", "email")
}

func runGet(cmd *cobra.Command, args []string) error {
	if getUserID != "" {
		getUserByID(cmd.Context(), getUserID)
	} else {
		getUserByEmail(cmd.Context(), getEmail)
	}
	return nil
}

// getUserByID fetches and prints one user. Returns nil if the user does not
// exist or the request failed.
func getUserByID(ctx context.Context, id string) *api.User {
	user, err := adminClient.UserByID(ctx, id)
	if err != nil {
		fmt.Println(errorLine("get user", err))
		return nil
	}
	if user == nil {
		fmt.Printf("User with ID %s not found.\n", id)
		return nil
	}
	fmt.Print(renderUser(user))
	return user
}

func getUserByEmail(ctx context.Context, email string) *api.User {
	user, err := adminClient.UserByEmail(ctx, email)
	if err != nil {
		fmt.Println(errorLine("get user", err))
		return nil
	}
	if user == nil {
		fmt.Printf("User with email %s not found.\n", email)
		return nil
	}
	fmt.Print(renderUser(user))
	return user
}
