package chat

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"docuchat/internal/api"
)

const capabilityQuestion = "Hello! Please tell me what capabilities do you have?"

// startupGreeting checks the agent service is reachable, probes the token if
// one is configured, and asks the agent about its capabilities. An
// unreachable service or a rejected token is a fatal startup error.
func startupGreeting(ctx context.Context) error {
	fmt.Println("Checking agent service...")
	if !agentClient.Health(ctx) {
		return fmt.Errorf("could not reach the agent service at %s; make sure it is running", agentClient.BaseURL())
	}
	fmt.Println(theme.successStyle().Render("Connected."))

	if !agentClient.HasToken() {
		fmt.Println(theme.hintStyle().Render("No authentication token provided."))
		fmt.Println(theme.hintStyle().Render("Set APP_API_TOKEN or use --token; document operations require it."))
	}

	answer, err := agentClient.Ask(ctx, capabilityQuestion, "")
	if err != nil {
		var remote *api.RemoteError
		if errors.As(err, &remote) && remote.Unauthorized() {
			// A rejected token is fatal; a 401 without any token just means
			// the greeting is unavailable, the shell still works.
			if agentClient.HasToken() {
				return fmt.Errorf("authentication failed, please check your token")
			}
			fmt.Println(theme.hintStyle().Render("Authentication required for this operation."))
			return nil
		}
		var connErr *api.ConnectionError
		if errors.As(err, &connErr) {
			return connErr
		}
		// A degraded agent is not fatal; the operator can still use the shell.
		fmt.Println(theme.errorStyle().Render(errorLine(err)))
		return nil
	}

	fmt.Print(renderAnswer(theme, answer))
	return nil
}

// runShell reads one line at a time, dispatches it, and loops until quit,
// end of input, or an interrupt. Each line is fully processed (including the
// remote response) before the next prompt.
func runShell(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	fmt.Println("Type your questions below. Use 'help' for commands or 'quit' to exit.")
	fmt.Println()

	reader := bufio.NewReader(os.Stdin)

	for {
		line, ok := readLine(ctx, reader, "> ")
		if !ok {
			fmt.Println("\nGoodbye!")
			return nil
		}

		if quit := dispatch(ctx, Parse(line)); quit {
			fmt.Println("Goodbye!")
			return nil
		}
	}
}

// dispatch executes one parsed command. Returns true when the shell should
// terminate. Failures print and leave the shell running.
func dispatch(ctx context.Context, cmd Command) (quit bool) {
	switch cmd.Kind {
	case KindEmpty:
	case KindQuit:
		return true
	case KindHelp:
		fmt.Print(helpText)
	case KindClear:
		fmt.Print("\033[2J\033[H")
		fmt.Print(header())
	case KindListDocs:
		showDocuments(ctx)
	case KindUpload:
		uploadDocument(ctx, cmd.Path)
	case KindSummary:
		showSummary(ctx, cmd.DocID, cmd.Length)
	case KindTopics:
		showTopics(ctx, cmd.DocID)
	case KindDeleteDoc:
		deleteDocument(ctx, cmd.Path)
	case KindAsk:
		askQuestion(ctx, cmd.Question, cmd.DocID, true)
	case KindInvalid:
		fmt.Println(cmd.Usage)
	}
	return false
}

// readLine prompts and reads one line, returning false when input is
// exhausted or the context (interrupt) is done.
func readLine(ctx context.Context, reader *bufio.Reader, prompt string) (string, bool) {
	if ctx.Err() != nil {
		return "", false
	}
	fmt.Print(prompt)

	type result struct {
		line string
		err  error
	}
	ch := make(chan result, 1)
	go func() {
		line, err := reader.ReadString('\n')
		ch <- result{line, err}
	}()

	select {
	case <-ctx.Done():
		return "", false
	case r := <-ch:
		if r.err != nil {
			return "", false
		}
		return strings.TrimSpace(r.line), true
	}
}
