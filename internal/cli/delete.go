package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

var (
	deleteUserID  string
	deleteConfirm bool
)

var deleteCmd = &cobra.Command{
	Use:   "delete",
	Short: "Delete a user",
	Long: `Delete a user from the admin service, including their history.

Requires confirmation unless --confirm is given.

Examples:
  docuchat-admin delete --user-id 42
  docuchat-admin delete --user-id 42 --confirm`,
	RunE: runDelete,
}

func init() {
	deleteCmd.Flags().StringVar(&deleteUserID, "user-id", "", "user ID")
	deleteCmd.Flags().BoolVar(&deleteConfirm, "confirm", false, "skip confirmation prompt")
	deleteCmd.MarkFlagRequired("user-id")
}

func runDelete(cmd *cobra.Command, args []string) error {
	if !deleteConfirm {
		ok, err := confirm(os.Stdin, fmt.Sprintf("Delete user %s?", deleteUserID))
		if err != nil {
			return fmt.Errorf("read input: %w", err)
		}
		if !ok {
			fmt.Println("Cancelled.")
			return nil
		}
	}

	deleteUser(cmd.Context(), deleteUserID)
	return nil
}

// confirm asks a yes/no question on in and accepts y/yes (case-insensitive).
func confirm(in io.Reader, prompt string) (bool, error) {
	fmt.Printf("%s [y/N]: ", prompt)

	reader := bufio.NewReader(in)
	response, err := reader.ReadString('\n')
	if err != nil && err != io.EOF {
		return false, err
	}
	response = strings.TrimSpace(strings.ToLower(response))

	return response == "y" || response == "yes", nil
}

// deleteUser performs the deletion and prints the outcome. Returns whether a
// user was deleted.
func deleteUser(ctx context.Context, userID string) bool {
	res, err := adminClient.DeleteUser(ctx, userID)
	if err != nil {
		fmt.Println(errorLine("delete user", err))
		return false
	}
	if res == nil {
		fmt.Printf("User with ID %s not found.\n", userID)
		return false
	}

	fmt.Println("User deleted.")
	if res.DeletedUser != nil {
		fmt.Printf("  Deleted: %s (%s)\n", res.DeletedUser.Name, res.DeletedUser.Email)
	}
	return true
}
