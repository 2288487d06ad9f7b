package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"

	"golang.org/x/term"
)

const menuText = `
Available commands:
  1. Create user
  2. Get user by ID
  3. Get user by email
  4. Validate token
  5. Refresh token
  6. Add Q/A to history
  7. Show user history
  8. Delete user
  9. List users
  0. Exit
`

// runMenu runs the interactive user-management menu until the operator exits
// or interrupts. Every iteration is one request/response round trip; a failed
// command reports and re-prompts.
func runMenu(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	fmt.Println("DocuChat user management")
	fmt.Printf("Admin service: %s\n", adminClient.BaseURL())

	reader := bufio.NewReader(os.Stdin)

	for {
		fmt.Print(menuText)

		line, ok := readLine(ctx, reader, "Select an option: ")
		if !ok {
			fmt.Println("\nGoodbye!")
			return nil
		}

		choice, err := strconv.Atoi(strings.TrimSpace(line))
		if err != nil {
			fmt.Println("Invalid option. Please enter a number between 0 and 9.")
			continue
		}

		switch choice {
		case 0:
			fmt.Println("Goodbye!")
			return nil
		case 1:
			menuCreateUser(ctx, reader)
		case 2:
			menuGetUserByID(ctx, reader)
		case 3:
			menuGetUserByEmail(ctx, reader)
		case 4:
			menuValidateToken(ctx)
		case 5:
			menuRefreshToken(ctx, reader)
		case 6:
			menuAddQA(ctx, reader)
		case 7:
			menuShowHistory(ctx, reader)
		case 8:
			menuDeleteUser(ctx, reader)
		case 9:
			menuListUsers(ctx, reader)
		default:
			fmt.Println("Invalid option. Please try again.")
		}
	}
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

func readInt(ctx context.Context, reader *bufio.Reader, prompt string, defaultVal int) (int, bool) {
	line, ok := readLine(ctx, reader, fmt.Sprintf("%s [%d]: ", prompt, defaultVal))
	if !ok {
		return 0, false
	}
	if line == "" {
		return defaultVal, true
	}
	n, err := strconv.Atoi(line)
	if err != nil {
		fmt.Println("Not a number, using default.")
		return defaultVal, true
	}
	return n, true
}

func menuCreateUser(ctx context.Context, reader *bufio.Reader) {
	email, ok := readLine(ctx, reader, "Email address: ")
	if !ok || email == "" {
		fmt.Println("Email is required.")
		return
	}
	name, ok := readLine(ctx, reader, "Display name: ")
	if !ok || name == "" {
		fmt.Println("Name is required.")
		return
	}
	hours, ok := readInt(ctx, reader, "Token validity (hours)", 24)
	if !ok {
		return
	}
	createUser(ctx, email, name, hours)
}

func menuGetUserByID(ctx context.Context, reader *bufio.Reader) {
	id, ok := readLine(ctx, reader, "User ID: ")
	if !ok || id == "" {
		return
	}
	getUserByID(ctx, id)
}

func menuGetUserByEmail(ctx context.Context, reader *bufio.Reader) {
	email, ok := readLine(ctx, reader, "Email address: ")
	if !ok || email == "" {
		return
	}
	getUserByEmail(ctx, email)
}

func menuValidateToken(ctx context.Context) {
	fmt.Print("Access token: ")
	// Hidden input so the token doesn't land in terminal scrollback.
	tokenBytes, err := term.ReadPassword(int(os.Stdin.Fd()))
	fmt.Println()
	if err != nil {
		fmt.Println(errorLine("read token", err))
		return
	}
	token := strings.TrimSpace(string(tokenBytes))
	if token == "" {
		fmt.Println("Token is required.")
		return
	}
	doValidateToken(ctx, token)
}

func menuRefreshToken(ctx context.Context, reader *bufio.Reader) {
	id, ok := readLine(ctx, reader, "User ID: ")
	if !ok || id == "" {
		return
	}
	hours, ok := readInt(ctx, reader, "Token validity (hours)", 24)
	if !ok {
		return
	}
	refreshUserToken(ctx, id, hours)
}

func menuAddQA(ctx context.Context, reader *bufio.Reader) {
	id, ok := readLine(ctx, reader, "User ID: ")
	if !ok || id == "" {
		return
	}
	question, ok := readLine(ctx, reader, "Question: ")
	if !ok || question == "" {
		return
	}
	answer, ok := readLine(ctx, reader, "Answer: ")
	if !ok || answer == "" {
		return
	}
	addQA(ctx, id, question, answer)
}

func menuShowHistory(ctx context.Context, reader *bufio.Reader) {
	id, ok := readLine(ctx, reader, "User ID: ")
	if !ok || id == "" {
		return
	}
	showHistory(ctx, id, 100)
}

func menuDeleteUser(ctx context.Context, reader *bufio.Reader) {
	id, ok := readLine(ctx, reader, "User ID: ")
	if !ok || id == "" {
		return
	}
	answer, ok := readLine(ctx, reader, fmt.Sprintf("Delete user %s? [y/N]: ", id))
	if !ok {
		return
	}
	answer = strings.ToLower(answer)
	if answer != "y" && answer != "yes" {
		fmt.Println("Cancelled.")
		return
	}
	deleteUser(ctx, id)
}

func menuListUsers(ctx context.Context, reader *bufio.Reader) {
	limit, ok := readInt(ctx, reader, "Limit", 50)
	if !ok {
		return
	}
	skip, ok := readInt(ctx, reader, "Skip", 0)
	if !ok {
		return
	}
	listUsers(ctx, limit, skip)
}
