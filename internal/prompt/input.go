// Package prompt wraps line editing for the interactive init command.
package prompt

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/peterh/liner"
)

// ErrCancelled is returned when the user aborts a prompt with Ctrl+C or EOF.
var ErrCancelled = errors.New("cancelled by user")

// Prompter interface wraps basic prompting functionality for testability
type Prompter interface {
	Prompt(string) (string, error)
	Close() error
}

// LinerPrompter wraps liner.State to implement Prompter interface
type LinerPrompter struct {
	*liner.State
}

// NewLinerPrompter creates a new liner-based prompter
func NewLinerPrompter() Prompter {
	line := liner.NewLiner()
	line.SetCtrlCAborts(true)
	return &LinerPrompter{State: line}
}

// readLine shows prompt and returns the trimmed answer.
func readLine(prompter Prompter, prompt string) (string, error) {
	result, err := prompter.Prompt(prompt)
	if err != nil {
		if errors.Is(err, liner.ErrPromptAborted) || errors.Is(err, io.EOF) {
			return "", ErrCancelled
		}
		return "", fmt.Errorf("text input failed: %w", err)
	}
	return strings.TrimSpace(result), nil
}

// TextInputWithDefault asks for a value, showing def in brackets. An empty
// answer selects def. Surrounding whitespace is trimmed.
func TextInputWithDefault(prompter Prompter, prompt, def string) (string, error) {
	result, err := readLine(prompter, color.CyanString(prompt)+" ["+def+"]: ")
	if err != nil {
		return "", err
	}
	if result == "" {
		return def, nil
	}
	return result, nil
}

// Confirm asks a yes/no question with a "[y/N]" hint. Only "y" and "yes" (any
// case) confirm; an empty answer declines.
func Confirm(prompter Prompter, prompt string) (bool, error) {
	answer, err := readLine(prompter, color.CyanString(prompt)+" [y/N]: ")
	if err != nil {
		return false, err
	}

	if answer == "" {
		return false, nil
	}

	switch strings.ToLower(answer) {
	case "y", "yes":
		return true, nil
	default:
		return false, nil
	}
}
