package cli

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"docuchat/internal/api"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

// tableMaxText is the widest a question or answer cell may grow before it is
// cut with an ellipsis.
const tableMaxText = 50

// timestampLayouts are tried in order when rendering service timestamps.
var timestampLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04:05",
}

// formatTimestamp renders an ISO timestamp as "YYYY-MM-DD HH:MM:SS".
// Strings the service sends that don't parse are passed through unchanged.
func formatTimestamp(s string) string {
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Format("2006-01-02 15:04:05")
		}
	}
	return s
}

// truncate cuts s to max runes, marking the cut with an ellipsis.
func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max]) + "..."
}

// errorLine converts any failure into the single formatted line commands
// print instead of terminating.
func errorLine(op string, err error) string {
	return fmt.Sprintf("Error: %s: %v", op, err)
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}

// renderUser formats a full user record.
func renderUser(u *api.User) string {
	var b strings.Builder
	b.WriteString("User:\n")
	fmt.Fprintf(&b, "  ID:            %s\n", u.ID)
	fmt.Fprintf(&b, "  Email:         %s\n", u.Email)
	fmt.Fprintf(&b, "  Name:          %s\n", u.Name)
	fmt.Fprintf(&b, "  Token valid:   %s\n", yesNo(u.TokenValid))
	fmt.Fprintf(&b, "  Token expires: %s\n", formatTimestamp(u.TokenExpires))
	fmt.Fprintf(&b, "  History items: %d\n", u.HistoryCount)
	fmt.Fprintf(&b, "  Created:       %s\n", formatTimestamp(u.CreatedAt))
	fmt.Fprintf(&b, "  Updated:       %s\n", formatTimestamp(u.UpdatedAt))
	return b.String()
}

// renderCreatedUser formats a create-user confirmation with every field the
// service returned.
func renderCreatedUser(u *api.CreatedUser) string {
	var b strings.Builder
	b.WriteString("User created.\n")
	fmt.Fprintf(&b, "  ID:      %s\n", u.ID)
	fmt.Fprintf(&b, "  Email:   %s\n", u.Email)
	fmt.Fprintf(&b, "  Name:    %s\n", u.Name)
	fmt.Fprintf(&b, "  Token:   %s\n", u.Token)
	fmt.Fprintf(&b, "  Expires: %s\n", u.ExpiresAt)
	return b.String()
}

// renderHistory formats a user's Q/A history as a bordered table.
func renderHistory(page *api.HistoryPage) string {
	if len(page.History) == 0 {
		return "User history is empty.\n"
	}

	total := page.TotalCount
	if total == 0 {
		total = len(page.History)
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderRow(true).
		Headers("#", "Question", "Answer", "Timestamp")
	for i, qa := range page.History {
		t.Row(
			strconv.Itoa(i+1),
			truncate(qa.Question, tableMaxText),
			truncate(qa.Answer, tableMaxText),
			formatTimestamp(qa.Timestamp),
		)
	}

	return fmt.Sprintf("User history (%d items):\n%s\n", total, t.Render())
}

// renderUserList formats a page of the user listing.
func renderUserList(page *api.UserPage) string {
	if len(page.Users) == 0 {
		return "No users found.\n"
	}

	total := page.TotalCount
	if total == 0 {
		total = len(page.Users)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Users (%d total):\n", total)
	for _, u := range page.Users {
		fmt.Fprintf(&b, "- %s  %s (%s)  history: %d\n", u.ID, u.Name, u.Email, u.HistoryCount)
	}
	return b.String()
}
