package chat

import (
	"context"
	"errors"
	"fmt"

	"docuchat/internal/api"
)

// askQuestion sends one question and prints the response. With animated set,
// a spinner runs while the request is in flight. Returns the answer, or nil
// on failure.
func askQuestion(ctx context.Context, question, docID string, animated bool) *api.Answer {
	var (
		answer *api.Answer
		err    error
	)

	if animated {
		var result any
		result, err = runWithSpinner(ctx, theme, "Thinking...", func(ctx context.Context) (any, error) {
			return agentClient.Ask(ctx, question, docID)
		})
		if err == nil {
			answer = result.(*api.Answer)
		}
	} else {
		answer, err = agentClient.Ask(ctx, question, docID)
	}

	if errors.Is(err, context.Canceled) {
		fmt.Println(theme.hintStyle().Render("Cancelled."))
		return nil
	}
	if errors.Is(err, api.ErrNotFound) {
		fmt.Printf("Document not found: %s\n", docID)
		return nil
	}
	if err != nil {
		fmt.Println(theme.errorStyle().Render(errorLine(err)))
		return nil
	}

	fmt.Print(renderAnswer(theme, answer))
	return answer
}

// showDocuments lists the documents on the agent service.
func showDocuments(ctx context.Context) *api.DocumentList {
	list, err := agentClient.ListDocuments(ctx)
	if err != nil {
		fmt.Println(theme.errorStyle().Render(errorLine(err)))
		return nil
	}
	fmt.Print(renderDocuments(list))
	return list
}

// uploadDocument uploads a local file for ingestion.
func uploadDocument(ctx context.Context, path string) *api.UploadResult {
	fmt.Printf("Uploading %s...\n", path)
	result, err := agentClient.UploadDocument(ctx, path)
	if err != nil {
		fmt.Println(theme.errorStyle().Render(errorLine(err)))
		return nil
	}

	fmt.Println(theme.successStyle().Render("File uploaded."))
	fmt.Printf("  Path:   %s\n", result.FilePath)
	fmt.Printf("  Status: %s\n", result.Status)
	fmt.Println(theme.hintStyle().Render("The file will be ingested by the document watcher shortly."))
	return result
}

// deleteDocument removes a document by filename.
func deleteDocument(ctx context.Context, filename string) bool {
	result, err := agentClient.DeleteDocument(ctx, filename)
	if err != nil {
		fmt.Println(theme.errorStyle().Render(errorLine(err)))
		return false
	}
	if result == nil {
		fmt.Printf("File not found: %s\n", filename)
		return false
	}

	status := result.Status
	if status == "" {
		status = "completed"
	}
	fmt.Printf("Document deleted: %s (status: %s)\n", filename, status)
	return true
}

// showSummary fetches and prints a document summary of roughly length words.
func showSummary(ctx context.Context, docID string, length int) *api.Summary {
	fmt.Printf("Generating summary for document %s (%d words)...\n", docID, length)
	summary, err := agentClient.Summary(ctx, docID, length)
	if err != nil {
		fmt.Println(theme.errorStyle().Render(errorLine(err)))
		return nil
	}
	if summary == nil {
		fmt.Printf("Document not found: %s\n", docID)
		return nil
	}

	fmt.Println(separator)
	fmt.Printf("Summary for document %s (%d words):\n\n", docID, length)
	fmt.Println(summary.Summary)
	fmt.Println(separator)
	return summary
}

// showTopics fetches and prints a document's topics.
func showTopics(ctx context.Context, docID string) *api.Topics {
	topics, err := agentClient.Topics(ctx, docID)
	if err != nil {
		fmt.Println(theme.errorStyle().Render(errorLine(err)))
		return nil
	}
	if topics == nil {
		fmt.Printf("Document not found: %s\n", docID)
		return nil
	}

	fmt.Print(renderTopics(docID, topics))
	return topics
}
