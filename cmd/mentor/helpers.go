package main

import (
	"errors"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	"github.com/joho/godotenv"
)

var (
	errorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#cf222e"))
	dimStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#656d76"))
)

// renderWidth is the word-wrap width for markdown replies.
const renderWidth = 100

// loadDotEnv loads environment variables from path. If the file does not exist
// it is silently ignored so that .env files remain optional.
func loadDotEnv(path string) error {
	err := godotenv.Load(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	return err
}

// renderMarkdown renders a markdown reply for the terminal. On any renderer
// failure the raw text is returned unchanged.
func renderMarkdown(text string) string {
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(renderWidth),
	)
	if err != nil {
		return text + "\n"
	}

	out, err := r.Render(text)
	if err != nil {
		return text + "\n"
	}

	return out
}
