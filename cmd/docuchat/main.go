// Package main provides the entry point for the docuchat agent CLI.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"docuchat/internal/chat"
	"docuchat/internal/config"
)

func main() {
	cfg := config.Load()

	// Setup logger (dual output: stderr text + rotated file JSON)
	logger, cleanup := config.SetupLogger(cfg.LogFile, cfg.LogLevel)
	defer cleanup()
	slog.SetDefault(logger)

	if err := chat.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
