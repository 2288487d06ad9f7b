package chat

import (
	"strconv"
	"strings"
)

// DefaultSummaryLength is the word count used when a summary request doesn't
// name one.
const DefaultSummaryLength = 150

// Kind classifies one line of shell input.
type Kind int

const (
	// KindEmpty is a blank line; the shell re-prompts.
	KindEmpty Kind = iota
	// KindQuit ends the shell.
	KindQuit
	// KindHelp prints the command reference.
	KindHelp
	// KindClear clears the screen.
	KindClear
	// KindListDocs lists available documents.
	KindListDocs
	// KindUpload uploads the file at Path.
	KindUpload
	// KindSummary requests a summary of DocID with Length words.
	KindSummary
	// KindTopics requests topics for DocID.
	KindTopics
	// KindDeleteDoc deletes the document named Path.
	KindDeleteDoc
	// KindAsk sends Question, scoped to DocID when set.
	KindAsk
	// KindInvalid is a malformed prefixed form; Usage carries the hint.
	KindInvalid
)

// Command is one parsed line of shell input, produced before any dispatch so
// the grammar is testable on its own.
type Command struct {
	Kind     Kind
	DocID    string
	Path     string
	Question string
	Length   int
	Usage    string
}

// Parse classifies one line of free-text input. Command words and prefixes
// are matched case-insensitively; arguments keep their original case.
func Parse(line string) Command {
	line = strings.TrimSpace(line)
	if line == "" {
		return Command{Kind: KindEmpty}
	}

	switch strings.ToLower(line) {
	case "quit", "exit", "q":
		return Command{Kind: KindQuit}
	case "help", "h":
		return Command{Kind: KindHelp}
	case "docs", "documents":
		return Command{Kind: KindListDocs}
	case "clear":
		return Command{Kind: KindClear}
	}

	lower := strings.ToLower(line)
	switch {
	case strings.HasPrefix(lower, "upload:"):
		path := strings.TrimSpace(line[len("upload:"):])
		if path == "" {
			return Command{Kind: KindInvalid, Usage: "Please provide a file path. Use: upload:/path/to/file"}
		}
		return Command{Kind: KindUpload, Path: path}

	case strings.HasPrefix(lower, "summary:"):
		rest := strings.TrimSpace(line[len("summary:"):])
		parts := strings.Split(rest, ":")
		if parts[0] == "" {
			return Command{Kind: KindInvalid, Usage: "Please provide a document ID. Use: summary:DOC_ID or summary:DOC_ID:LENGTH"}
		}
		length := DefaultSummaryLength
		if len(parts) >= 2 {
			if n, err := strconv.Atoi(parts[1]); err == nil && n > 0 {
				length = n
			}
		}
		return Command{Kind: KindSummary, DocID: parts[0], Length: length}

	case strings.HasPrefix(lower, "topics:"):
		docID := strings.TrimSpace(line[len("topics:"):])
		if docID == "" {
			return Command{Kind: KindInvalid, Usage: "Please provide a document ID. Use: topics:DOC_ID"}
		}
		return Command{Kind: KindTopics, DocID: docID}

	case strings.HasPrefix(lower, "delete:"):
		filename := strings.TrimSpace(line[len("delete:"):])
		if filename == "" {
			return Command{Kind: KindInvalid, Usage: "Please provide a filename. Use: delete:filename.pdf"}
		}
		return Command{Kind: KindDeleteDoc, Path: filename}

	case strings.HasPrefix(lower, "doc:"):
		rest := strings.TrimSpace(line[len("doc:"):])
		docID, question, found := strings.Cut(rest, " ")
		if !found || docID == "" || strings.TrimSpace(question) == "" {
			return Command{Kind: KindInvalid, Usage: "Invalid format. Use: doc:DOC_ID your question"}
		}
		return Command{Kind: KindAsk, DocID: docID, Question: strings.TrimSpace(question)}
	}

	return Command{Kind: KindAsk, Question: line}
}
