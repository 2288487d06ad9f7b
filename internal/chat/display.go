package chat

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"docuchat/internal/api"
	"github.com/charmbracelet/lipgloss"
)

// Theme holds the color scheme for shell output.
type Theme struct {
	Status  lipgloss.Color
	Success lipgloss.Color
	Error   lipgloss.Color
	Hint    lipgloss.Color
}

// defaultTheme provides default colors.
var defaultTheme = Theme{
	Status:  lipgloss.Color("#5FAFD7"), // light blue
	Success: lipgloss.Color("#00D787"), // green
	Error:   lipgloss.Color("#FF005F"), // red
	Hint:    lipgloss.Color("#6C6C6C"), // dim gray
}

func (t Theme) statusStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(t.Status)
}

func (t Theme) successStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(t.Success).Bold(true)
}

func (t Theme) errorStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(t.Error)
}

func (t Theme) hintStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(t.Hint).Italic(true)
}

const separator = "----------------------------------------"

func header() string {
	line := strings.Repeat("=", 60)
	return fmt.Sprintf("%s\nDocuChat CLI\n%s\n", line, line)
}

// renderAnswer formats an agent response.
func renderAnswer(theme Theme, a *api.Answer) string {
	var b strings.Builder
	b.WriteString(separator + "\n")
	b.WriteString(theme.statusStyle().Render("Agent response:") + "\n")
	if a.DocID != "" {
		fmt.Fprintf(&b, "Document: %s\n", a.DocID)
	}
	if a.SessionID != "" {
		fmt.Fprintf(&b, "Session:  %s\n", a.SessionID)
	}
	b.WriteString("\n")
	answer := a.Answer
	if answer == "" {
		answer = "No answer received."
	}
	b.WriteString(answer + "\n")
	b.WriteString(separator + "\n")
	return b.String()
}

// renderDocuments formats the document listing.
func renderDocuments(list *api.DocumentList) string {
	if list == nil || len(list.Documents) == 0 {
		return "No documents available.\n"
	}

	var b strings.Builder
	b.WriteString("Available documents:\n")
	for _, doc := range list.Documents {
		fmt.Fprintf(&b, "  - %s: %s\n", doc.ID, doc.Filename)
	}
	return b.String()
}

// renderTopics formats a document's topics.
func renderTopics(docID string, topics *api.Topics) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Topics for document %s:\n", docID)
	if topics == nil || len(topics.Topics) == 0 {
		b.WriteString("  No topics found.\n")
		return b.String()
	}
	for _, topic := range topics.Topics {
		fmt.Fprintf(&b, "  - %s\n", topic)
	}
	return b.String()
}

// errorLine converts any failure into one human-readable line, special-casing
// the situations a shell user can act on.
func errorLine(err error) string {
	var remote *api.RemoteError
	switch {
	case errors.Is(err, api.ErrNoToken):
		return "Authentication required. Provide a token with --token or APP_API_TOKEN."
	case errors.Is(err, fs.ErrNotExist):
		var pathErr *fs.PathError
		if errors.As(err, &pathErr) {
			return fmt.Sprintf("File not found: %s", pathErr.Path)
		}
		return "File not found."
	case errors.As(err, &remote):
		if remote.Unauthorized() {
			return "Authentication failed. Please check your token."
		}
		if remote.TooLarge() {
			return "File too large (max 2 MiB)."
		}
		return remote.Error()
	default:
		return fmt.Sprintf("Error: %v", err)
	}
}

const helpText = separator + `
Available commands:

  help, h                    Show this help message
  docs, documents            List available documents
  doc:DOC_ID your question   Ask a question about a specific document
  upload:/path/to/file       Upload a document
  delete:filename            Delete a document
  summary:DOC_ID             Get a document summary (150 words)
  summary:DOC_ID:LENGTH      Get a document summary (custom length)
  topics:DOC_ID              Get document topics
  clear                      Clear the screen
  quit, exit, q              Exit

Anything else is sent to the agent as a question.

Examples:
  What can you do?
  doc:12345 What is this document about?
  upload:/home/user/document.pdf
  summary:12345:300

Authentication:
  Use --token or set APP_API_TOKEN. Document operations (upload, delete,
  summary, topics, docs) require authentication.
` + separator + "\n"
