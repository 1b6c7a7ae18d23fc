package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/glamour"
	"go.uber.org/zap"
)

// isBlank reports whether a required field is empty or whitespace-only.
// Blank fields never reach the network; the command surfaces the panel's
// validation message instead.
func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

// featureError logs the underlying failure for diagnostics and returns
// the feature's generic retry-suggesting message. The raw error never
// reaches the user unless they asked for verbose output.
func featureError(message string, err error) error {
	if logger != nil {
		logger.Debug("feature call failed", zap.Error(err))
	}
	return errors.New(message)
}

// renderMarkdown pretty-prints model output for the terminal, falling
// back to the raw text when the renderer cannot be built.
func renderMarkdown(text string) string {
	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(100),
	)
	if err != nil {
		return text
	}
	out, err := renderer.Render(text)
	if err != nil {
		return text
	}
	return out
}

// readInput resolves a positional argument or --file flag into the text
// payload of a command. Exactly one of the two must be provided.
func readInput(args []string, filePath string) (string, error) {
	if filePath != "" {
		data, err := os.ReadFile(filePath)
		if err != nil {
			return "", fmt.Errorf("no se pudo leer el archivo %s: %w", filePath, err)
		}
		return string(data), nil
	}
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}
	return "", nil
}
