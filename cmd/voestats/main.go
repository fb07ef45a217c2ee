// Package main is the entry point for the voestats terminal dashboard.
// It fetches the vote statistics endpoints and renders the winner,
// tally, and recent votes the way the web stats page does.
package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"

	"github.com/sgoral/voe/internal/config"
	"github.com/sgoral/voe/internal/statsclient"
	"github.com/sgoral/voe/internal/tui"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Load .env file if it exists
	_ = godotenv.Load()

	cfg := config.LoadClient()

	client := statsclient.New(cfg.ServerURL, cfg.RequestTimeout)
	model := tui.New(client, cfg.RefreshInterval)

	p := tea.NewProgram(model, tea.WithAltScreen())

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		p.Send(tea.Quit())
	}()

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running TUI: %w", err)
	}

	return nil
}
