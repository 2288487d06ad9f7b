package cli

import (
	"context"
	"fmt"

	"docuchat/internal/api"
	"github.com/spf13/cobra"
)

var (
	validateToken     string
	refreshUserID     string
	refreshTokenHours int
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate an access token",
	Long: `Check whether an access token is known to the admin service and still
valid, and show which user it belongs to.

Example:
  docuchat-admin validate --token dc_Yx31...`,
	RunE: runValidate,
}

var refreshTokenCmd = &cobra.Command{
	Use:   "refresh-token",
	Short: "Issue a new access token for a user",
	Long: `Issue a new access token for a user, invalidating the old one.

Examples:
  docuchat-admin refresh-token --user-id 42
  docuchat-admin refresh-token --user-id 42 --token-hours 168`,
	RunE: runRefreshToken,
}

func init() {
	validateCmd.Flags().StringVar(&validateToken, "token", "", "access token to validate")
	validateCmd.MarkFlagRequired("token")

	refreshTokenCmd.Flags().StringVar(&refreshUserID, "user-id", "", "user ID")
	refreshTokenCmd.Flags().IntVar(&refreshTokenHours, "token-hours", 24, "token validity in hours")
	refreshTokenCmd.MarkFlagRequired("user-id")
}

func runValidate(cmd *cobra.Command, args []string) error {
	doValidateToken(cmd.Context(), validateToken)
	return nil
}

func runRefreshToken(cmd *cobra.Command, args []string) error {
	refreshUserToken(cmd.Context(), refreshUserID, refreshTokenHours)
	return nil
}

// doValidateToken checks a token and prints the outcome. Returns whether the
// token is valid.
func doValidateToken(ctx context.Context, token string) bool {
	res, err := adminClient.ValidateToken(ctx, token)
	if err != nil {
		fmt.Println(errorLine("validate token", err))
		return false
	}
	if !res.Valid {
		fmt.Println("Token is invalid or expired.")
		return false
	}

	fmt.Println("Token is valid.")
	if res.User != nil {
		fmt.Printf("  Belongs to: %s (%s)\n", res.User.Name, res.User.Email)
		fmt.Printf("  Expires:    %s\n", formatTimestamp(res.User.TokenExpires))
	}
	return true
}

// refreshUserToken issues a new token and prints the outcome. Returns the new
// token, or nil on failure.
func refreshUserToken(ctx context.Context, userID string, tokenHours int) *api.RefreshedToken {
	res, err := adminClient.RefreshToken(ctx, userID, tokenHours)
	if err != nil {
		fmt.Println(errorLine("refresh token", err))
		return nil
	}
	if res == nil {
		fmt.Printf("User with ID %s not found.\n", userID)
		return nil
	}

	fmt.Println("Token refreshed.")
	fmt.Printf("  New token: %s\n", res.NewToken)
	fmt.Printf("  Expires:   %s\n", res.ExpiresAt)
	return res
}
